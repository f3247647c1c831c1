package notification

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
)

// TelegramNotifier pings the administrators' chat about booking activity
// so new requests are noticed without watching the dashboard.
type TelegramNotifier struct {
	bot         *tgbotapi.BotAPI
	adminChatID int64
	logger      logger.Logger
}

func NewTelegramNotifier(token string, adminChatID int64, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, admin notifications disabled")
		return &TelegramNotifier{bot: nil, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, adminChatID: adminChatID, logger: logger}, nil
}

func (n *TelegramNotifier) NotifyBookingCreated(ctx context.Context, b *domain.Booking, v *domain.Venue) {
	text := fmt.Sprintf(
		"*New booking request #%d*\n\nVenue: %s\nDate: %s, %s-%s\nClient: %s (%s)\nGuests: %d",
		b.ID, v.Name, b.EventDate.Format("2006-01-02"),
		b.StartTime, b.EndTime, b.ClientName, b.ContactEmail, b.ExpectedGuests,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) NotifyBookingStatusChanged(ctx context.Context, b *domain.Booking, v *domain.Venue) {
	text := fmt.Sprintf(
		"*Booking #%d is now %s*\n\nVenue: %s\nDate: %s, %s-%s",
		b.ID, b.Status, v.Name, b.EventDate.Format("2006-01-02"), b.StartTime, b.EndTime,
	)
	n.send(ctx, text)
}

func (n *TelegramNotifier) send(ctx context.Context, text string) {
	if n.bot == nil {
		n.logger.Debug("telegram notification skipped (bot disabled)", logger.String("text", text))
		return
	}

	if err := ctx.Err(); err != nil {
		n.logger.Debug("telegram notification skipped (context cancelled)")
		return
	}

	msg := tgbotapi.NewMessage(n.adminChatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", n.adminChatID),
			logger.String("error", err.Error()),
		)
	}
}
