package telegram

import (
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Alias1177/RateShift/internal/chart"
	"github.com/Alias1177/RateShift/internal/dashboard"
	"github.com/Alias1177/RateShift/models"
)

// captionLimit is the longest photo caption Telegram accepts
const captionLimit = 1024

var ErrNoChat = errors.New("telegram chat id is not set")

// Sender is the part of tgbotapi.BotAPI the notifier needs
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Notifier pushes a dashboard to a single chat
type Notifier struct {
	bot    Sender
	chatID int64
	chart  chart.Options
	logger zerolog.Logger
}

func NewNotifier(bot Sender, chatID int64, opts chart.Options) *Notifier {
	return &Notifier{
		bot:    bot,
		chatID: chatID,
		chart:  opts,
		logger: log.With().Str("component", "telegram").Logger(),
	}
}

// NewBot connects to the Bot API with the given token
func NewBot(token string) (*tgbotapi.BotAPI, error) {
	if token == "" {
		return nil, errors.New("TELEGRAM_BOT_TOKEN not set")
	}
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("initializing telegram bot: %w", err)
	}
	return bot, nil
}

// Send posts the chart with the summary as caption.
// Without fund history only the summary text is sent.
func (n *Notifier) Send(d models.Dashboard) error {
	if n.chatID == 0 {
		return ErrNoChat
	}

	summary := dashboard.Summary(d)

	if len(d.History) == 0 {
		if _, err := n.bot.Send(tgbotapi.NewMessage(n.chatID, summary)); err != nil {
			return fmt.Errorf("sending summary: %w", err)
		}
		n.logger.Info().Int64("chat_id", n.chatID).Msg("Summary sent without chart")
		return nil
	}

	img, err := chart.PNGBytes(d.History, n.chart)
	if err != nil {
		return fmt.Errorf("rendering chart: %w", err)
	}

	photo := tgbotapi.NewPhoto(n.chatID, tgbotapi.FileBytes{Name: "chart.png", Bytes: img})
	photo.Caption = truncate(summary, captionLimit)

	if _, err := n.bot.Send(photo); err != nil {
		return fmt.Errorf("sending chart: %w", err)
	}

	n.logger.Info().
		Int64("chat_id", n.chatID).
		Str("recommendation", string(d.Recommendation)).
		Int("bytes", len(img)).
		Msg("Dashboard sent")
	return nil
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-1]) + "…"
}
