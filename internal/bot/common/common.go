package common

import (
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/sukalov/periodiclyrics/internal/bot"
	"github.com/sukalov/periodiclyrics/internal/render"
	"github.com/sukalov/periodiclyrics/internal/tokenizer"
)

const HelpText = `i spell lyrics with periodic table elements.

/render <text> - spell any text
/search <artist> - <title> - find lyrics
/lyrics <id, url or #n> - load lyrics into this chat
/at <mm:ss> - show the line sung at that moment

or just send me a line.`

type CommonHandlers struct {
	tok *tokenizer.Tokenizer
}

func GetCommandHandlers() map[string]bot.HandlerFunc {
	return map[string]bot.HandlerFunc{
		"start": helpHandler,
		"help":  helpHandler,
	}
}

// GetMessageHandlers returns handlers for plain messages: any text that is
// not a command gets spelled.
func GetMessageHandlers(tok *tokenizer.Tokenizer) []bot.HandlerFunc {
	h := &CommonHandlers{tok: tok}
	return []bot.HandlerFunc{h.spellHandler}
}

func GetCallbackHandlers() map[string]bot.HandlerFunc {
	return map[string]bot.HandlerFunc{}
}

func helpHandler(b *bot.Bot, update tgbotapi.Update) error {
	return b.SendMessage(update.Message.Chat.ID, HelpText)
}

func (h *CommonHandlers) spellHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	if message == nil || message.IsCommand() || strings.TrimSpace(message.Text) == "" {
		return nil
	}
	return b.SendMessage(message.Chat.ID, Spell(h.tok, message.Text))
}

// Spell renders text as chat tiles, with a note when nothing could be spelled.
func Spell(tok *tokenizer.Tokenizer, text string) string {
	out := render.Text(tok.TokenizeLine(text))
	if out == "" {
		return "nothing in there i can spell"
	}
	return out
}
