package tokenizer

import "github.com/sukalov/periodiclyrics/internal/periodic"

// Kind tags a display item.
type Kind string

const (
	KindElement Kind = "element"
	KindEmoji   Kind = "emoji"
	KindSpace   Kind = "space"
)

// Item is one renderable unit of a lyric line. Which fields are set depends
// on Kind: Text and Element for elements, Word and Emoji for emoji, nothing
// for spaces. Source holds the characters of the line the item consumed and
// WordIndex the position of its word candidate in the split line.
type Item struct {
	Kind      Kind              `json:"type"`
	Text      string            `json:"text,omitempty"`
	Element   *periodic.Element `json:"element,omitempty"`
	Word      string            `json:"word,omitempty"`
	Emoji     string            `json:"emoji,omitempty"`
	WordIndex int               `json:"word_index"`
	Source    string            `json:"-"`
}

func ElementItem(source string, e periodic.Element) Item {
	return Item{Kind: KindElement, Text: e.Symbol, Element: &e, Source: source}
}

func EmojiItem(word, emoji string) Item {
	return Item{Kind: KindEmoji, Word: word, Emoji: emoji, Source: word}
}

func SpaceItem() Item {
	return Item{Kind: KindSpace}
}

// Unknown reports whether the item is an element tile for a character
// nothing matched.
func (it Item) Unknown() bool {
	return it.Kind == KindElement && it.Element != nil && it.Element.Category == periodic.CategoryUnknown
}
