package main

import (
	"context"
	"fmt"
	"log"
	"os/signal"
	"syscall"

	"github.com/sukalov/periodiclyrics/internal/app"
	"github.com/sukalov/periodiclyrics/internal/bot"
	"github.com/sukalov/periodiclyrics/internal/bot/client"
	"github.com/sukalov/periodiclyrics/internal/config"
	"github.com/sukalov/periodiclyrics/internal/logger"
	"github.com/sukalov/periodiclyrics/internal/state"
	"github.com/sukalov/periodiclyrics/internal/utils"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	tokens, err := utils.LoadEnv([]string{"BOT_TOKEN"})
	if err != nil {
		log.Fatalf("required env missing: %v", err)
	}
	cfg := config.Load()

	a, err := app.New(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to start: %v", err)
	}
	defer a.Close()

	lyricsBot, err := bot.New("lyricsbot", tokens["BOT_TOKEN"])
	if err != nil {
		log.Fatalf("failed to create bot: %v", err)
	}

	if err := logger.Init(lyricsBot, cfg.LogChannelID); err != nil {
		log.Printf("logging to channel disabled: %v", err)
	}

	states := state.NewStateManager(a.Tokenizer, state.DefaultLimit)
	client.SetupHandlers(lyricsBot, client.NewClientHandlers(a.Tokenizer, a.Lyrics, states))
	logger.Success(fmt.Sprintf("lyricsbot started with %d elements", elementCount(a)))

	<-ctx.Done()
	lyricsBot.Stop()
	logger.Info("lyricsbot stopped")
}

func elementCount(a *app.App) int {
	n, _, _ := a.Tables.Len()
	return n
}
