package periodic

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"
)

// Category classifies an element record for tile coloring.
type Category string

const (
	CategoryAlkali     Category = "alkali"
	CategoryAlkaline   Category = "alkaline"
	CategoryTransition Category = "transition"
	CategoryPost       Category = "post"
	CategoryMetalloid  Category = "metalloid"
	CategoryNonmetal   Category = "nonmetal"
	CategoryNoble      Category = "noble"
	CategoryLanthanide Category = "lanthanide"
	CategoryActinide   Category = "actinide"
	CategorySymbol     Category = "symbol"
	CategoryUnknown    Category = "unknown"
)

// NoWeight is the atomic weight of synthetic records.
const NoWeight = "N/A"

// Element is a real or synthetic periodic table entry.
type Element struct {
	Symbol       string   `json:"symbol"`
	Name         string   `json:"name"`
	AtomicNumber int      `json:"atomic_number"`
	AtomicWeight string   `json:"atomic_weight"`
	Category     Category `json:"category"`
}

// Synthetic reports whether e stands for something that is not a chemical element.
func (e Element) Synthetic() bool {
	return e.AtomicNumber == 0
}

// EmojiMapping replaces a whole lowercase word with an emoji.
type EmojiMapping struct {
	Word  string `json:"word"`
	Emoji string `json:"emoji"`
}

// SymbolMapping maps a single letter or punctuation character to a
// mathematical or physics symbol.
type SymbolMapping struct {
	Char     string   `json:"char"`
	Symbol   string   `json:"symbol"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
}

// Tables holds the three lookup tables. A Tables value is read-only once
// built and is safe for concurrent use.
type Tables struct {
	elements map[string]Element
	emoji    map[string]string
	symbols  map[string]SymbolMapping
}

// NewTables copies the given records into a new frozen Tables. Element keys
// are stored in standard case, emoji words in lowercase. Symbol keys are
// stored as given.
func NewTables(elements []Element, emoji []EmojiMapping, symbols []SymbolMapping) *Tables {
	t := &Tables{
		elements: make(map[string]Element, len(elements)),
		emoji:    make(map[string]string, len(emoji)),
		symbols:  make(map[string]SymbolMapping, len(symbols)),
	}
	for _, e := range elements {
		t.elements[StandardCase(e.Symbol)] = e
	}
	for _, m := range emoji {
		t.emoji[strings.ToLower(m.Word)] = m.Emoji
	}
	for _, s := range symbols {
		if s.Category == "" {
			s.Category = CategorySymbol
		}
		t.symbols[s.Char] = s
	}
	return t
}

var (
	defaultOnce   sync.Once
	defaultTables *Tables
)

// Builtin returns copies of the built-in records that back Default.
func Builtin() ([]Element, []EmojiMapping, []SymbolMapping) {
	return append([]Element(nil), builtinElements...),
		append([]EmojiMapping(nil), builtinEmoji...),
		append([]SymbolMapping(nil), builtinSymbols...)
}

// Default returns the built-in tables.
func Default() *Tables {
	defaultOnce.Do(func() {
		defaultTables = NewTables(builtinElements, builtinEmoji, builtinSymbols)
	})
	return defaultTables
}

// LookupElement resolves a one or two letter code in any case.
// "fe", "FE" and "Fe" all resolve to Iron.
func (t *Tables) LookupElement(code string) (Element, bool) {
	e, ok := t.elements[StandardCase(code)]
	return e, ok
}

// LookupEmojiWord matches an entire word, ignoring case.
func (t *Tables) LookupEmojiWord(word string) (string, bool) {
	emoji, ok := t.emoji[strings.ToLower(word)]
	return emoji, ok
}

// LookupSymbol resolves a single character after uppercasing it. Keys that
// are stored in lowercase can never match.
func (t *Tables) LookupSymbol(char string) (SymbolMapping, bool) {
	if utf8.RuneCountInString(char) != 1 {
		return SymbolMapping{}, false
	}
	s, ok := t.symbols[strings.ToUpper(char)]
	return s, ok
}

// Len returns the sizes of the element, emoji and symbol tables.
func (t *Tables) Len() (elements, emoji, symbols int) {
	return len(t.elements), len(t.emoji), len(t.symbols)
}

// StandardCase upper-cases the first letter of code and lower-cases the rest.
func StandardCase(code string) string {
	r, size := utf8.DecodeRuneInString(code)
	if size == 0 {
		return code
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(code[size:])
}

// SyntheticSymbol wraps a symbol mapping in an element-shaped record.
func SyntheticSymbol(s SymbolMapping) Element {
	return Element{
		Symbol:       s.Symbol,
		Name:         s.Name,
		AtomicNumber: 0,
		AtomicWeight: NoWeight,
		Category:     CategorySymbol,
	}
}

// Unknown returns the placeholder record for a character nothing matched.
func Unknown(char string) Element {
	return Element{
		Symbol:       char,
		Name:         "Unknown",
		AtomicNumber: 0,
		AtomicWeight: NoWeight,
		Category:     CategoryUnknown,
	}
}
