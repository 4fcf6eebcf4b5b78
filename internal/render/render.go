package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sukalov/periodiclyrics/internal/periodic"
	"github.com/sukalov/periodiclyrics/internal/tokenizer"
)

// WordSeparator goes between words in Text output.
const WordSeparator = " / "

// Text renders items for chat messages: element tiles as [Sym], emoji as
// themselves, words separated by WordSeparator. Unknown characters are
// dropped.
func Text(items []tokenizer.Item) string {
	words := tokenizer.GroupWords(items)
	parts := make([]string, 0, len(words))
	for _, word := range words {
		var b strings.Builder
		for _, it := range word {
			switch it.Kind {
			case tokenizer.KindEmoji:
				b.WriteString(it.Emoji)
			case tokenizer.KindElement:
				b.WriteString("[" + it.Text + "]")
			}
		}
		parts = append(parts, b.String())
	}
	return strings.Join(parts, WordSeparator)
}

var (
	ink      = lipgloss.Color("#2E3440")
	snow     = lipgloss.Color("#ECEFF4")
	tileBase = lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(ink)

	palette = map[periodic.Category]lipgloss.Color{
		periodic.CategoryAlkali:     lipgloss.Color("#BF616A"),
		periodic.CategoryAlkaline:   lipgloss.Color("#D08770"),
		periodic.CategoryTransition: lipgloss.Color("#EBCB8B"),
		periodic.CategoryPost:       lipgloss.Color("#A3BE8C"),
		periodic.CategoryMetalloid:  lipgloss.Color("#8FBCBB"),
		periodic.CategoryNonmetal:   lipgloss.Color("#88C0D0"),
		periodic.CategoryNoble:      lipgloss.Color("#B48EAD"),
		periodic.CategoryLanthanide: lipgloss.Color("#81A1C1"),
		periodic.CategoryActinide:   lipgloss.Color("#5E81AC"),
		periodic.CategorySymbol:     lipgloss.Color("#D8DEE9"),
	}
)

// TileStyle returns the style for an element tile of the given category.
func TileStyle(c periodic.Category) lipgloss.Style {
	bg, ok := palette[c]
	if !ok {
		bg = snow
	}
	return tileBase.Background(bg)
}

// Terminal renders items as colored tiles on one row, a wider gap between
// words. Unknown characters are dropped.
func Terminal(items []tokenizer.Item) string {
	words := tokenizer.GroupWords(items)
	blocks := make([]string, 0, 2*len(words))
	for i, word := range words {
		if i > 0 {
			blocks = append(blocks, "   ")
		}
		tiles := make([]string, 0, len(word))
		for _, it := range word {
			switch it.Kind {
			case tokenizer.KindEmoji:
				tiles = append(tiles, " "+it.Emoji+" ")
			case tokenizer.KindElement:
				tiles = append(tiles, TileStyle(it.Element.Category).Render(it.Text))
			}
		}
		blocks = append(blocks, lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, blocks...)
}

// Legend lists the distinct elements in items as "Sym  Name (Z)" rows, in
// order of first appearance.
func Legend(items []tokenizer.Item) string {
	seen := make(map[string]bool)
	var rows []string
	for _, it := range tokenizer.FilterRenderable(items) {
		if it.Kind != tokenizer.KindElement || seen[it.Text] {
			continue
		}
		seen[it.Text] = true
		row := TileStyle(it.Element.Category).Render(it.Text) + "  " + it.Element.Name
		if !it.Element.Synthetic() {
			row += " (" + strconv.Itoa(it.Element.AtomicNumber) + ")"
		}
		rows = append(rows, row)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
