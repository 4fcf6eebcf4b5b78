package bot

import (
	"fmt"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/sukalov/periodiclyrics/internal/logger"
)

// HandlerFunc handles one update.
type HandlerFunc func(b *Bot, update tgbotapi.Update) error

// Handlers routes updates. Commands are keyed by command name and callbacks
// by CallbackKey of their data. Updates neither of them claims go to every
// message handler.
type Handlers struct {
	Commands  map[string]HandlerFunc
	Messages  []HandlerFunc
	Callbacks map[string]HandlerFunc
}

// Route returns the handlers for update and a label used in logs.
func (h Handlers) Route(update tgbotapi.Update) (string, []HandlerFunc) {
	if msg := update.Message; msg != nil && msg.IsCommand() {
		if handler, ok := h.Commands[msg.Command()]; ok {
			return "command /" + msg.Command(), []HandlerFunc{handler}
		}
	}
	if query := update.CallbackQuery; query != nil {
		key := CallbackKey(query.Data)
		if handler, ok := h.Callbacks[key]; ok {
			return "callback " + key, []HandlerFunc{handler}
		}
	}
	return "message", h.Messages
}

// Bot wraps a Telegram client with a long-polling update loop.
type Bot struct {
	Client   *tgbotapi.BotAPI
	updates  tgbotapi.UpdatesChannel
	stop     chan struct{}
	stopOnce sync.Once
	name     string
}

// New connects to Telegram and starts long polling.
func New(name, token string) (*Bot, error) {
	client, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", name, err)
	}

	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = 60

	return &Bot{
		Client:  client,
		updates: client.GetUpdatesChan(cfg),
		stop:    make(chan struct{}),
		name:    name,
	}, nil
}

// Start dispatches updates to h, each in its own goroutine, until Stop.
func (b *Bot) Start(h Handlers) {
	logger.Info(fmt.Sprintf("[%s] authorized on account %s", b.name, b.Client.Self.UserName))

	for {
		select {
		case update := <-b.updates:
			go b.dispatch(h, update)
		case <-b.stop:
			b.Client.StopReceivingUpdates()
			return
		}
	}
}

func (b *Bot) dispatch(h Handlers, update tgbotapi.Update) {
	label, handlers := h.Route(update)
	for _, handler := range handlers {
		if err := handler(b, update); err != nil {
			logger.Error(fmt.Sprintf("[%s] %s handler error: %v", b.name, label, err))
		}
	}
}

// CallbackKey returns the handler key of callback data "key:payload".
func CallbackKey(data string) string {
	key, _, _ := strings.Cut(data, ":")
	return key
}

// CallbackPayload returns the payload of callback data "key:payload".
func CallbackPayload(data string) string {
	_, payload, _ := strings.Cut(data, ":")
	return payload
}

// Stop ends the update loop. It is safe to call more than once.
func (b *Bot) Stop() {
	b.stopOnce.Do(func() { close(b.stop) })
}

func (b *Bot) SendMessage(chatID int64, text string) error {
	return b.send(tgbotapi.NewMessage(chatID, text))
}

func (b *Bot) SendMessageWithButtons(chatID int64, text string, markup tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = markup
	return b.send(msg)
}

func (b *Bot) send(msg tgbotapi.MessageConfig) error {
	if _, err := b.Client.Send(msg); err != nil {
		return fmt.Errorf("send to chat %d: %w", msg.ChatID, err)
	}
	return nil
}

// AnswerCallback acknowledges a callback query so the client stops its
// loading indicator.
func (b *Bot) AnswerCallback(query *tgbotapi.CallbackQuery, text string) error {
	_, err := b.Client.Request(tgbotapi.NewCallback(query.ID, text))
	return err
}
