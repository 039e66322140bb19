package notification

import (
	"context"
	"fmt"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
	"github.com/wb-go/wbf/retry"

	"github.com/DanYankho/equipResourceBooking/internal/domain"
)

// TelegramNotifier pushes booking changes to a single operations chat.
// With an empty token it degrades to a no-op.
type TelegramNotifier struct {
	bot      *tgbotapi.BotAPI
	chatID   int64
	strategy retry.Strategy
	logger   logger.Logger
}

func NewTelegramNotifier(token string, chatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	n := &TelegramNotifier{
		chatID: chatID,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
		logger: logger,
	}

	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return n, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}
	n.bot = bot

	return n, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*New booking*\n\nResource: %s\nDate: %s\nTime: %s–%s\nBooked by: %s",
		b.Resource, b.Date, b.StartTime, b.EndTime, b.User,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingCancelled(ctx context.Context, b *domain.Booking) {
	text := fmt.Sprintf(
		"*Booking cancelled*\n\nResource: %s\nDate: %s\nTime: %s–%s",
		b.Resource, b.Date, b.StartTime, b.EndTime,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.chatID, text)
	msg.ParseMode = "Markdown"

	err := retry.Do(func() error {
		_, err := n.bot.Send(msg)
		return err
	}, n.strategy)
	if err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.chatID),
			logger.String("error", err.Error()),
		)
	}
}
