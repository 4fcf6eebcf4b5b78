package logger

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// Level orders log messages by importance.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelSuccess
	LevelError
)

var prefixes = map[Level]string{
	LevelDebug:   "🔍 DEBUG",
	LevelInfo:    "ℹ️ INFO",
	LevelSuccess: "✅ SUCCESS",
	LevelError:   "❌ ERROR",
}

func (l Level) String() string {
	return prefixes[l]
}

// BotClient forwards log lines to a chat.
type BotClient interface {
	SendMessage(chatID int64, text string) error
}

var (
	mu             sync.RWMutex
	botClient      BotClient
	channelIDValue int64
	forwardLevel   = LevelInfo

	debug atomic.Bool
)

func init() {
	debug.Store(true)
}

// Init forwards messages at LevelInfo and above to the Telegram chat
// channelID. Without it messages only go to the standard logger.
func Init(client BotClient, channelID string) error {
	if channelID == "" {
		return errors.New("log channel id is empty")
	}
	id, err := strconv.ParseInt(channelID, 10, 64)
	if err != nil {
		return fmt.Errorf("failed to parse log channel id: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	botClient = client
	channelIDValue = id
	return nil
}

// SetForwardLevel sets the lowest level sent to the log channel.
func SetForwardLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	forwardLevel = l
}

// SetDebug turns debug messages on or off.
func SetDebug(enabled bool) {
	debug.Store(enabled)
}

func Info(message string) {
	write(LevelInfo, message)
}

func Error(message string) {
	write(LevelError, message)
}

func Debug(message string) {
	if !debug.Load() {
		return
	}
	write(LevelDebug, message)
}

func Success(message string) {
	write(LevelSuccess, message)
}

func write(level Level, message string) {
	log.Printf("%s %s", level, message)

	mu.RLock()
	client, chat, threshold := botClient, channelIDValue, forwardLevel
	mu.RUnlock()
	if client == nil || level < threshold {
		return
	}

	text := fmt.Sprintf("[%s] %s\n%s", time.Now().Format("2006-01-02 15:04:05"), level, message)
	go func() {
		if err := client.SendMessage(chat, text); err != nil {
			log.Printf("failed to send log to channel: %v\nlog was: %s", err, text)
		}
	}()
}

// LogWithErr logs message at info level when err is nil and at error level
// otherwise, returning err wrapped with message.
func LogWithErr(message string, err error) error {
	if err == nil {
		Info(message)
		return nil
	}

	Error(fmt.Sprintf("%s\nError: %v", message, err))
	return fmt.Errorf("%s: %w", message, err)
}
