package config

import (
	"errors"
	"testing"
	"time"

	"github.com/npillmayer/minihtml/parser"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestDefaults(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.config")
	defer teardown()
	//
	opts := FromConfiguration(nil)
	assert.Equal(t, Defaults(), opts)
	opts = FromConfiguration(testconfig.Conf{})
	assert.Equal(t, Defaults(), opts)
	assert.Equal(t, parser.DefaultMaxDepth, opts.MaxDepth)
	assert.False(t, opts.Pretty)
}

func TestFromConfiguration(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "minihtml.config")
	defer teardown()
	//
	conf := testconfig.Conf{}
	conf.Set(KeyMaxDepth, "2")
	conf.Set(KeyUserAgent, "bot/2")
	conf.Set(KeyTimeout, "5")
	conf.Set(KeyMaxRedirects, "0")
	conf.Set(KeyMaxBody, "-1")
	conf.Set(KeyPretty, "true")
	opts := FromConfiguration(conf)
	assert.Equal(t, 2, opts.MaxDepth)
	assert.Equal(t, "bot/2", opts.UserAgent)
	assert.Equal(t, 5*time.Second, opts.Timeout)
	assert.Equal(t, 0, opts.MaxRedirects)
	assert.Equal(t, Defaults().MaxBodySize, opts.MaxBodySize, "invalid value selects default")
	assert.True(t, opts.Pretty)
	assert.Len(t, opts.FetchOptions(), 4)
	//
	_, err := parser.ParseString("<a><b><c></c></b></a>", opts.ParserOptions()...)
	assert.True(t, errors.Is(err, parser.ErrNestingTooDeep))
}
