package stylesheet

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrNotADimen is returned for property values which are not CSS lengths.
var ErrNotADimen = errors.New("not a CSS dimension")

const (
	dimenNone uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenInherit  uint32 = 0x0003
	dimenInitial  uint32 = 0x0004
	kindMask      uint32 = 0x000f

	// Flags for content dependent dimensions
	DimenContentMax uint32 = 0x0010
	DimenContentMin uint32 = 0x0020
	DimenContentFit uint32 = 0x0030
	contentMask     uint32 = 0x00f0

	dimenEM      uint32 = 0x0100
	dimenEX      uint32 = 0x0200
	dimenCH      uint32 = 0x0300
	dimenREM     uint32 = 0x0400
	dimenVW      uint32 = 0x0500
	dimenVH      uint32 = 0x0600
	dimenVMIN    uint32 = 0x0700
	dimenVMAX    uint32 = 0x0800
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// Dimen is an option type for CSS lengths, as found in property values like
// "15px", "2em", "80%" or "auto". Absolute lengths are held in CSS pixels.
//
//    type Dimen
//        = Auto | Inherit | Initial
//        | Px float
//        | Relative float unit     (em, rem, ex, ch, vw, vh, vmin, vmax, %)
//        | Content min|max|fit
type Dimen struct {
	value float64
	flags uint32
}

// Auto is the dimension "auto".
func Auto() Dimen {
	return Dimen{flags: dimenAuto}
}

// Inherit is the dimension "inherit".
func Inherit() Dimen {
	return Dimen{flags: dimenInherit}
}

// Initial is the dimension "initial".
func Initial() Dimen {
	return Dimen{flags: dimenInitial}
}

// Px creates a dimension with a fixed value of x CSS pixels.
func Px(x float64) Dimen {
	return Dimen{value: x, flags: dimenAbsolute}
}

// Percentage creates a %-relative dimension.
func Percentage(p float64) Dimen {
	return Dimen{value: p, flags: dimenPercent}
}

// pixels per absolute unit, as a fraction
var absoluteUnits = map[string][2]float64{
	"px": {1, 1},
	"pt": {96, 72},
	"pc": {16, 1},
	"in": {96, 1},
	"cm": {96, 2.54},
	"mm": {96, 25.4},
}

var relativeUnits = map[string]uint32{
	"em":   dimenEM,
	"ex":   dimenEX,
	"ch":   dimenCH,
	"rem":  dimenREM,
	"vw":   dimenVW,
	"vh":   dimenVH,
	"vmin": dimenVMIN,
	"vmax": dimenVMAX,
	"%":    dimenPercent,
}

var keywords = map[string]Dimen{
	"auto":        Auto(),
	"inherit":     Inherit(),
	"initial":     Initial(),
	"min-content": {flags: DimenContentMin},
	"max-content": {flags: DimenContentMax},
	"fit-content": {flags: DimenContentFit},
}

// ParseDimen parses a CSS length. A number without a unit is accepted
// for zero only.
func ParseDimen(s string) (Dimen, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if d, ok := keywords[s]; ok {
		return d, nil
	}
	i := strings.IndexFunc(s, func(r rune) bool {
		return (r < '0' || r > '9') && r != '.' && r != '-' && r != '+'
	})
	if i < 0 {
		i = len(s)
	}
	x, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return Dimen{}, fmt.Errorf("%q: %w", s, ErrNotADimen)
	}
	unit := s[i:]
	if f, ok := absoluteUnits[unit]; ok {
		return Px(x * f[0] / f[1]), nil
	}
	if flag, ok := relativeUnits[unit]; ok {
		return Dimen{value: x, flags: flag}, nil
	}
	if unit == "" && x == 0 {
		return Px(0), nil
	}
	return Dimen{}, fmt.Errorf("%q: %w", s, ErrNotADimen)
}

// Dimen parses the value of a property as a CSS length.
func (r Rule) Dimen(key string) (Dimen, error) {
	return ParseDimen(r.Value(key))
}

// IsAbsolute is true for dimensions with a fixed value.
func (d Dimen) IsAbsolute() bool {
	return d.flags&kindMask == dimenAbsolute
}

// IsRelative is true for font-, viewport- and %-relative dimensions.
func (d Dimen) IsRelative() bool {
	return d.flags&relativeMask > 0
}

// Value returns the numeric part of a dimension: pixels for absolute
// dimensions, a factor for relative ones and 0 otherwise.
func (d Dimen) Value() float64 {
	return d.value
}

func (d Dimen) String() string {
	switch {
	case d.flags&kindMask == dimenAbsolute:
		return strconv.FormatFloat(d.value, 'f', -1, 64) + "px"
	case d.flags&relativeMask > 0:
		for unit, flag := range relativeUnits {
			if flag == d.flags&relativeMask {
				return strconv.FormatFloat(d.value, 'f', -1, 64) + unit
			}
		}
	}
	for kw, k := range keywords {
		if k.flags == d.flags {
			return kw
		}
	}
	return "none"
}

// ---------------------------------------------------------------------------

// Match starts a type switch on the kind of a dimension:
//
//    switch m := d.Match(); m {
//    case m.Just(&px):
//        …
//    case m.IsKind(stylesheet.Auto()):
//        …
//    }
func (d Dimen) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher matches dimensions by kind. Its methods return the matcher itself
// on success and nil otherwise.
type Matcher struct {
	dimen Dimen
}

// IsKind matches if the dimension is of the same kind as d. All relative
// dimensions except percentages are of the same kind, as are all content
// dependent dimensions.
func (m *Matcher) IsKind(d Dimen) *Matcher {
	switch {
	case m.dimen.flags&(relativeMask|contentMask) == 0 && d.flags&(relativeMask|contentMask) == 0:
		if m.dimen.flags&kindMask == d.flags&kindMask {
			return m
		}
	case m.dimen.flags&relativeMask > 0 && d.flags&relativeMask > 0:
		if (m.dimen.flags&relativeMask == dimenPercent) == (d.flags&relativeMask == dimenPercent) {
			return m
		}
	case m.dimen.flags&contentMask > 0 && d.flags&contentMask > 0:
		return m
	}
	return nil
}

// Just matches absolute dimensions and stores their value in px, if px is
// non-nil.
func (m *Matcher) Just(px *float64) *Matcher {
	if m.dimen.IsAbsolute() {
		if px != nil {
			*px = m.dimen.value
		}
		return m
	}
	return nil
}

// Percentage matches %-relative dimensions and stores the percentage in p,
// if p is non-nil.
func (m *Matcher) Percentage(p *float64) *Matcher {
	if m.dimen.flags&relativeMask == dimenPercent {
		if p != nil {
			*p = m.dimen.value
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns holds the results for the kinds of dimensions.
type DimenPatterns[T any] struct {
	Auto    T
	Inherit T
	Initial T
	Just    T
	Default T
}

// DimenPattern starts an expression selecting a value by the kind of a
// dimension.
func DimenPattern[T any](d Dimen) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

// MatchExpr evaluates dimension patterns.
type MatchExpr[T any] struct {
	dimen Dimen
}

// OneOf returns the pattern for the kind of the dimension.
func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch {
	case m.dimen.flags&(relativeMask|contentMask) != 0:
		return patterns.Default
	case m.dimen.flags&kindMask == dimenAuto:
		return patterns.Auto
	case m.dimen.flags&kindMask == dimenAbsolute:
		return patterns.Just
	case m.dimen.flags&kindMask == dimenInitial:
		return patterns.Initial
	case m.dimen.flags&kindMask == dimenInherit:
		return patterns.Inherit
	}
	return patterns.Default
}

// With stores the pixel value of an absolute dimension in px.
func (m *MatchExpr[T]) With(px *float64) *MatchExpr[T] {
	*px = m.dimen.value
	return m
}

// Const returns x.
func (m *MatchExpr[T]) Const(x T) T {
	return x
}
