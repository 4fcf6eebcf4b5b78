package tokenizer

import (
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/sukalov/periodiclyrics/internal/periodic"
)

var parenRegex = regexp.MustCompile(`\([^)]*\)`)

// Tokenizer turns lyric lines into display items. It holds no mutable state
// and is safe for concurrent use.
type Tokenizer struct {
	tables   *periodic.Tables
	matchers []Matcher
}

// New creates a tokenizer over tables. Without matchers the default priority
// chain is used. A chain is always terminated by Fallback so every character
// produces an item.
func New(tables *periodic.Tables, matchers ...Matcher) *Tokenizer {
	if len(matchers) == 0 {
		matchers = DefaultMatchers(tables)
	} else {
		matchers = append(append([]Matcher(nil), matchers...), Fallback())
	}
	return &Tokenizer{tables: tables, matchers: matchers}
}

var (
	defaultOnce sync.Once
	defaultTok  *Tokenizer
)

// Default returns a tokenizer over periodic.Default().
func Default() *Tokenizer {
	defaultOnce.Do(func() {
		defaultTok = New(periodic.Default())
	})
	return defaultTok
}

// TokenizeLine tokenizes text with the default tables.
func TokenizeLine(text string) []Item {
	return Default().TokenizeLine(text)
}

// Preprocess replaces hyphens with spaces and blanks out parenthetical
// groups, keeping the rune count of the line unchanged.
func Preprocess(text string) string {
	text = strings.ReplaceAll(text, "-", " ")
	return parenRegex.ReplaceAllStringFunc(text, func(m string) string {
		return strings.Repeat(" ", utf8.RuneCountInString(m))
	})
}

// Words splits a preprocessed line into word candidates. Consecutive spaces
// yield empty candidates.
func Words(text string) []string {
	return strings.Split(Preprocess(text), " ")
}

// TokenizeLine returns the display items for one lyric line, in source order.
// It never fails.
func (t *Tokenizer) TokenizeLine(text string) []Item {
	var items []Item
	for idx, word := range Words(text) {
		if strings.TrimSpace(word) == "" {
			space := SpaceItem()
			space.WordIndex = idx
			items = append(items, space)
			continue
		}
		if emoji, ok := t.tables.LookupEmojiWord(word); ok {
			item := EmojiItem(word, emoji)
			item.WordIndex = idx
			items = append(items, item)
			continue
		}
		items = t.appendText(items, idx, word)
	}
	return items
}

// appendText runs the matchers over each valid UTF-8 run of word. Each byte
// that is not valid UTF-8 becomes an unknown tile carrying that raw byte.
func (t *Tokenizer) appendText(items []Item, idx int, word string) []Item {
	start := 0
	for i := 0; i < len(word); {
		r, size := utf8.DecodeRuneInString(word[i:])
		if r != utf8.RuneError || size != 1 {
			i += size
			continue
		}
		if start < i {
			items = t.appendWord(items, idx, []rune(word[start:i]))
		}
		raw := word[i : i+1]
		item := ElementItem(raw, periodic.Unknown(raw))
		item.WordIndex = idx
		items = append(items, item)
		i++
		start = i
	}
	if start < len(word) {
		items = t.appendWord(items, idx, []rune(word[start:]))
	}
	return items
}

func (t *Tokenizer) appendWord(items []Item, idx int, word []rune) []Item {
	for i := 0; i < len(word); {
		for _, m := range t.matchers {
			item, n, ok := m.Match(word, i)
			if !ok || n <= 0 {
				continue
			}
			item.WordIndex = idx
			items = append(items, item)
			i += n
			break
		}
	}
	return items
}

// FilterRenderable drops unknown-character tiles. The tokenizer output keeps
// them; renderers that only want real tiles apply this.
func FilterRenderable(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if !it.Unknown() {
			out = append(out, it)
		}
	}
	return out
}

// GroupWords splits items into per-word groups and applies FilterRenderable
// to each. Space items and words left empty produce no group.
func GroupWords(items []Item) [][]Item {
	var words [][]Item
	last := -1
	for _, it := range items {
		if it.Kind == KindSpace || it.Unknown() {
			continue
		}
		if it.WordIndex != last || len(words) == 0 {
			words = append(words, nil)
			last = it.WordIndex
		}
		words[len(words)-1] = append(words[len(words)-1], it)
	}
	return words
}
