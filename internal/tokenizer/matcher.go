package tokenizer

import "github.com/sukalov/periodiclyrics/internal/periodic"

// Matcher tries to produce an item at position i of word. It returns the
// item, the number of runes consumed and whether it matched.
type Matcher interface {
	Match(word []rune, i int) (Item, int, bool)
}

// MatcherFunc adapts a function to Matcher.
type MatcherFunc func(word []rune, i int) (Item, int, bool)

func (f MatcherFunc) Match(word []rune, i int) (Item, int, bool) {
	return f(word, i)
}

// TwoLetterElement matches a two letter element code starting at i.
func TwoLetterElement(t *periodic.Tables) Matcher {
	return MatcherFunc(func(word []rune, i int) (Item, int, bool) {
		if i+1 >= len(word) {
			return Item{}, 0, false
		}
		src := string(word[i : i+2])
		e, ok := t.LookupElement(src)
		if !ok {
			return Item{}, 0, false
		}
		return ElementItem(src, e), 2, true
	})
}

// OneLetterElement matches a single letter element code at i.
func OneLetterElement(t *periodic.Tables) Matcher {
	return MatcherFunc(func(word []rune, i int) (Item, int, bool) {
		src := string(word[i])
		e, ok := t.LookupElement(src)
		if !ok {
			return Item{}, 0, false
		}
		return ElementItem(src, e), 1, true
	})
}

// Symbol matches a mathematical or physics symbol at i.
func Symbol(t *periodic.Tables) Matcher {
	return MatcherFunc(func(word []rune, i int) (Item, int, bool) {
		src := string(word[i])
		s, ok := t.LookupSymbol(src)
		if !ok {
			return Item{}, 0, false
		}
		return ElementItem(src, periodic.SyntheticSymbol(s)), 1, true
	})
}

// Fallback always matches, emitting the character verbatim as an unknown tile.
func Fallback() Matcher {
	return MatcherFunc(func(word []rune, i int) (Item, int, bool) {
		src := string(word[i])
		return ElementItem(src, periodic.Unknown(src)), 1, true
	})
}

// DefaultMatchers returns the priority chain: two letter elements before one
// letter elements, then symbols, then the fallback. "He" must stay Helium, so
// the order is not interchangeable.
func DefaultMatchers(t *periodic.Tables) []Matcher {
	return []Matcher{
		TwoLetterElement(t),
		OneLetterElement(t),
		Symbol(t),
		Fallback(),
	}
}
