package validkit

import (
	"strings"
	"unicode/utf8"
)

// Adapters giving Go builtins the property interfaces. Wrapping is free: all
// adapters are defined types over the builtin shape.

// Str adapts a string. Length counts bytes, CharCount counts runes.
type Str string

func (s Str) IsEmptyValue() bool { return len(s) == 0 }

func (s Str) Length() int { return len(s) }

func (s Str) CharCount() int { return utf8.RuneCountInString(string(s)) }

func (s Str) HasMember(element string) bool { return strings.Contains(string(s), element) }

// Chars adapts a rune slice, where length and character count coincide.
type Chars []rune

func (c Chars) IsEmptyValue() bool { return len(c) == 0 }

func (c Chars) Length() int { return len(c) }

func (c Chars) CharCount() int { return len(c) }

func (c Chars) HasMember(element rune) bool {
	for _, r := range c {
		if r == element {
			return true
		}
	}
	return false
}

// List adapts a slice of any element type. Element types that support
// equality should use Items instead to gain the membership property.
type List[E any] []E

func (l List[E]) IsEmptyValue() bool { return len(l) == 0 }

func (l List[E]) Length() int { return len(l) }

// Items adapts a slice of comparable elements.
type Items[E comparable] []E

func (i Items[E]) IsEmptyValue() bool { return len(i) == 0 }

func (i Items[E]) Length() int { return len(i) }

func (i Items[E]) HasMember(element E) bool {
	for _, e := range i {
		if e == element {
			return true
		}
	}
	return false
}

// Set adapts a set represented as map keys.
type Set[E comparable] map[E]struct{}

// NewSet builds a Set from the given elements.
func NewSet[E comparable](elements ...E) Set[E] {
	s := make(Set[E], len(elements))
	for _, e := range elements {
		s[e] = struct{}{}
	}
	return s
}

func (s Set[E]) IsEmptyValue() bool { return len(s) == 0 }

func (s Set[E]) Length() int { return len(s) }

func (s Set[E]) HasMember(element E) bool {
	_, ok := s[element]
	return ok
}

// Dict adapts a map. Membership is keyed on the map's keys.
type Dict[K comparable, V any] map[K]V

func (d Dict[K, V]) IsEmptyValue() bool { return len(d) == 0 }

func (d Dict[K, V]) Length() int { return len(d) }

func (d Dict[K, V]) HasMember(element K) bool {
	_, ok := d[element]
	return ok
}

// Optional adapts a possibly missing value. A nil pointer is empty; a
// present value delegates to its own emptiness.
type Optional[T HasEmptyValue] struct {
	value *T
}

// Some wraps a present value.
func Some[T HasEmptyValue](value T) Optional[T] {
	return Optional[T]{value: &value}
}

// None represents a missing value.
func None[T HasEmptyValue]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsEmptyValue() bool {
	if o.value == nil {
		return true
	}
	return (*o.value).IsEmptyValue()
}

// Flag adapts a bool for the AssertTrue and AssertFalse constraints.
type Flag bool

func (f Flag) IsCheckedValue() bool { return bool(f) }
