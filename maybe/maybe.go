/*
Package maybe implements optional values, modelled after Elm's Maybe type.

A Maybe either holds a value (Just) or is empty (Nothing). Clients
destructure a Maybe with a type switch-like construct:

    var v string
    switch m := x.Match(); m {
    case m.Just(&v):
        … use v
    case m.Nothing():
        …
    }

Attribute values of HTML elements are optional: a boolean attribute like
`<input disabled>` carries no value at all, which is different from
`<input value="">`. This is why attributes store their values as
Maybe[string].

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package maybe

// Maybe is an optional value of type T.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	IsNothing() bool
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps a value.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing creates an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// Of converts a value/ok-pair, as returned from map lookups and the like,
// into a Maybe.
func Of[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) IsNothing() bool {
	return !m.tag
}

// Equal compares two Maybes of a comparable type. Two Nothings are equal.
func Equal[T comparable](x, y Maybe[T]) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	if x.IsNothing() || y.IsNothing() {
		return x.IsNothing() && y.IsNothing()
	}
	var a, b T
	a = x.WithDefault(a)
	b = y.WithDefault(b)
	return a == b
}

// --- Matching --------------------------------------------------------------

// Matcher destructures a Maybe, see package documentation.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		*v = mm.m.value
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
