package common

import (
	"testing"

	"github.com/sukalov/periodiclyrics/internal/tokenizer"
)

func TestSpell(t *testing.T) {
	tok := tokenizer.Default()
	if got := Spell(tok, "He Na"); got != "[He] / [Na]" {
		t.Errorf("Spell(He Na) = %q", got)
	}
	if got := Spell(tok, "(1)"); got != "nothing in there i can spell" {
		t.Errorf("Spell((1)) = %q", got)
	}
}

func TestCommandHandlers(t *testing.T) {
	h := GetCommandHandlers()
	for _, cmd := range []string{"start", "help"} {
		if _, ok := h[cmd]; !ok {
			t.Errorf("missing /%s handler", cmd)
		}
	}
}
