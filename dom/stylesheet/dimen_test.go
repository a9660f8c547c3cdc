package stylesheet

import (
	"testing"

	mhparser "github.com/npillmayer/minihtml/parser"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDimenBasic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.css")
	defer teardown()
	//
	ten := Px(10)
	var px float64
	switch m := ten.Match(); m {
	case m.Just(&px):
		t.Logf("px = %g", px)
	default:
		t.Errorf("expected Px(10) to be a fixed value, isn't: %#v", ten)
	}
	assert.Equal(t, 10.0, px)

	auto := Auto()
	switch m := auto.Match(); m {
	case m.IsKind(Auto()):
		t.Logf("dimen is auto")
	default:
		t.Errorf("expected dimen auto to match auto, isn't: %#v", auto)
	}
	assert.Nil(t, auto.Match().IsKind(Inherit()))

	pcnt := Percentage(80)
	var p float64
	switch m := pcnt.Match(); m {
	case m.Percentage(&p):
		t.Logf("percent = %g", p)
	default:
		t.Errorf("expected Percentage(80) to be a percentage value, isn't: %#v", pcnt)
	}
	assert.Equal(t, 80.0, p)
	em, err := ParseDimen("2em")
	require.NoError(t, err)
	assert.Nil(t, pcnt.Match().IsKind(em))
	assert.NotNil(t, em.Match().IsKind(Dimen{value: 1, flags: dimenVW}))
}

func TestParseDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.css")
	defer teardown()
	//
	for input, expected := range map[string]string{
		"15px":        "15px",
		" 12PT ":      "16px",
		"1in":         "96px",
		"0":           "0px",
		"-1.5em":      "-1.5em",
		"80%":         "80%",
		"3vmin":       "3vmin",
		"auto":        "auto",
		"inherit":     "inherit",
		"max-content": "max-content",
	} {
		d, err := ParseDimen(input)
		if assert.NoError(t, err, input) {
			assert.Equal(t, expected, d.String(), input)
		}
	}
	for _, input := range []string{"", "12", "px", "3 px", "red", "1e3px"} {
		_, err := ParseDimen(input)
		assert.ErrorIs(t, err, ErrNotADimen, input)
	}
	d, _ := ParseDimen("1.5rem")
	assert.True(t, d.IsRelative())
	assert.False(t, d.IsAbsolute())
	assert.Equal(t, 1.5, d.Value())
}

func TestDimenPattern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.css")
	defer teardown()
	//
	m := DimenPattern[int](Px(10))
	ten := m.OneOf(DimenPatterns[int]{
		Just:    10,
		Auto:    0,
		Default: -1,
	})
	assert.Equal(t, 10, ten)
	assert.Equal(t, -1, DimenPattern[int](Percentage(5)).OneOf(DimenPatterns[int]{Just: 10, Default: -1}))
	assert.Equal(t, 0, DimenPattern[int](Auto()).OneOf(DimenPatterns[int]{Just: 10, Auto: 0, Default: -1}))
	//
	var px float64
	e := DimenPattern[float64](Px(10)).With(&px)
	distance := e.OneOf(DimenPatterns[float64]{
		Just:    e.Const(2 * px),
		Default: -1,
	})
	assert.Equal(t, 20.0, distance)
}

func TestRuleDimen(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.css")
	defer teardown()
	//
	doc, err := mhparser.ParseString(page)
	require.NoError(t, err)
	rules, err := Rules(doc)
	require.NoError(t, err)
	d, err := rules[0].Dimen("margin-top")
	require.NoError(t, err)
	assert.Equal(t, 15.0, d.Value())
	_, err = rules[0].Dimen("color")
	assert.ErrorIs(t, err, ErrNotADimen)
	_, err = rules[1].Dimen("width")
	assert.ErrorIs(t, err, ErrNotADimen, "missing property")
}
