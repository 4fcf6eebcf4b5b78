package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/sukalov/periodiclyrics/internal/bot"
	"github.com/sukalov/periodiclyrics/internal/bot/common"
	"github.com/sukalov/periodiclyrics/internal/logger"
	"github.com/sukalov/periodiclyrics/internal/lyrics"
	"github.com/sukalov/periodiclyrics/internal/player"
	"github.com/sukalov/periodiclyrics/internal/render"
	"github.com/sukalov/periodiclyrics/internal/state"
	"github.com/sukalov/periodiclyrics/internal/tokenizer"
	"github.com/sukalov/periodiclyrics/internal/utils"
)

const (
	maxMatches     = 5
	requestTimeout = 30 * time.Second
)

type ClientHandlers struct {
	tok     *tokenizer.Tokenizer
	service *lyrics.Service
	states  *state.StateManager
}

func NewClientHandlers(tok *tokenizer.Tokenizer, service *lyrics.Service, states *state.StateManager) *ClientHandlers {
	return &ClientHandlers{
		tok:     tok,
		service: service,
		states:  states,
	}
}

func (h *ClientHandlers) renderHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	text := strings.TrimSpace(message.CommandArguments())
	if text == "" {
		return b.SendMessage(message.Chat.ID, "usage: /render <text>")
	}
	return b.SendMessage(message.Chat.ID, common.Spell(h.tok, text))
}

func (h *ClientHandlers) searchHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	artist, title, err := ParseSearch(message.CommandArguments())
	if err != nil {
		return b.SendMessage(message.Chat.ID, "usage: /search <artist> - <title>")
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	matches, err := h.service.Search(ctx, artist, title)
	if err != nil {
		logger.Error(fmt.Sprintf("search failed for %q - %q: %v", artist, title, err))
		return b.SendMessage(message.Chat.ID, "search failed, try again later")
	}
	if len(matches) == 0 {
		return b.SendMessage(message.Chat.ID, "nothing found")
	}
	if len(matches) > maxMatches {
		matches = matches[:maxMatches]
	}
	h.states.SetMatches(message.Chat.ID, matches)

	var rows [][]tgbotapi.InlineKeyboardButton
	for i, m := range matches {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(fmt.Sprintf("%d. %s", i+1, m.Title), "lyrics:"+m.ID),
		))
	}
	return b.SendMessageWithButtons(message.Chat.ID, FormatMatches(matches), tgbotapi.NewInlineKeyboardMarkup(rows...))
}

func (h *ClientHandlers) lyricsHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	ref := strings.TrimSpace(message.CommandArguments())
	if ref == "" {
		return b.SendMessage(message.Chat.ID, "usage: /lyrics <id, url or #n>")
	}
	if strings.HasPrefix(ref, "#") {
		n, err := strconv.Atoi(ref[1:])
		if err != nil {
			return b.SendMessage(message.Chat.ID, "usage: /lyrics #<number from the last search>")
		}
		m, ok := h.states.Match(message.Chat.ID, n)
		if !ok {
			return b.SendMessage(message.Chat.ID, "no such search result")
		}
		ref = m.ID
	}
	return h.load(b, message.Chat.ID, ref)
}

func (h *ClientHandlers) lyricsCallback(b *bot.Bot, update tgbotapi.Update) error {
	query := update.CallbackQuery
	chatID, ok := CallbackChat(query)
	if !ok {
		return b.AnswerCallback(query, "open a chat with the bot to load lyrics")
	}
	if err := b.AnswerCallback(query, "loading..."); err != nil {
		logger.Error(fmt.Sprintf("failed to answer callback: %v", err))
	}
	return h.load(b, chatID, bot.CallbackPayload(query.Data))
}

// CallbackChat returns the chat a callback's button was pressed in.
// Callbacks from inline-mode messages carry no message and report false.
func CallbackChat(query *tgbotapi.CallbackQuery) (int64, bool) {
	if query == nil || query.Message == nil || query.Message.Chat == nil {
		return 0, false
	}
	return query.Message.Chat.ID, true
}

func (h *ClientHandlers) load(b *bot.Bot, chatID int64, ref string) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	res, err := h.service.Fetch(ctx, ref)
	switch {
	case errors.Is(err, lyrics.ErrNotFound):
		return b.SendMessage(chatID, "no lyrics found for "+ref)
	case errors.Is(err, lyrics.ErrUnsupportedSource):
		return b.SendMessage(chatID, "i don't know where to get "+ref)
	case err != nil:
		return b.SendMessage(chatID, "failed to load lyrics, try again later")
	}

	cs := h.states.Load(chatID, res)
	return b.SendMessage(chatID, FormatLoaded(res)+"\n\n"+FormatFrame(cs.Session.At(0)))
}

func (h *ClientHandlers) atHandler(b *bot.Bot, update tgbotapi.Update) error {
	message := update.Message
	ms, err := utils.ParseTimestamp(message.CommandArguments())
	if err != nil {
		return b.SendMessage(message.Chat.ID, "usage: /at <mm:ss>")
	}
	cs := h.states.Get(message.Chat.ID)
	if cs.Session.Lyrics() == nil {
		return b.SendMessage(message.Chat.ID, "load lyrics first with /lyrics")
	}
	return b.SendMessage(message.Chat.ID, FormatFrame(cs.Session.At(ms)))
}

// ParseSearch splits "artist - title".
func ParseSearch(args string) (artist, title string, err error) {
	artist, title, ok := strings.Cut(args, " - ")
	artist, title = strings.TrimSpace(artist), strings.TrimSpace(title)
	if !ok || artist == "" || title == "" {
		return "", "", fmt.Errorf("expected artist - title, got %q", args)
	}
	return artist, title, nil
}

func FormatMatches(matches []lyrics.Match) string {
	var sb strings.Builder
	sb.WriteString("found:\n\n")
	for i, m := range matches {
		synced := ""
		if m.Synced {
			synced = " (synced)"
		}
		sb.WriteString(fmt.Sprintf("%d. %s - %s%s\n", i+1, m.Artist, m.Title, synced))
	}
	return sb.String()
}

func FormatLoaded(res *lyrics.Result) string {
	return fmt.Sprintf("loaded %d lines (%s) from %s",
		len(res.Lyrics.Lines), res.Lyrics.SyncType, res.Source)
}

// FormatFrame renders the line of f with its time, or says nothing is sung.
func FormatFrame(f player.Frame) string {
	stamp := utils.FormatTimestamp(f.TimeMs)
	if f.Line == nil {
		return fmt.Sprintf("[%s] nothing is sung here", stamp)
	}
	spelled := render.Text(f.Items)
	if spelled == "" {
		spelled = "(nothing to spell)"
	}
	return fmt.Sprintf("[%s] %s\n%s", stamp, f.Line.Text, spelled)
}

// SetupHandlers registers the lyrics commands next to the common ones and
// starts processing updates.
func SetupHandlers(clientBot *bot.Bot, handlers *ClientHandlers) {
	commandHandlers := common.GetCommandHandlers()
	commandHandlers["render"] = handlers.renderHandler
	commandHandlers["search"] = handlers.searchHandler
	commandHandlers["lyrics"] = handlers.lyricsHandler
	commandHandlers["at"] = handlers.atHandler

	callbackHandlers := common.GetCallbackHandlers()
	callbackHandlers["lyrics"] = handlers.lyricsCallback

	go clientBot.Start(bot.Handlers{
		Commands:  commandHandlers,
		Messages:  common.GetMessageHandlers(handlers.tok),
		Callbacks: callbackHandlers,
	})
}
