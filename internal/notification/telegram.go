package notification

import (
	"context"
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/wb-go/wbf/logger"
)

type userLookup interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// TelegramNotifier forwards messages to recipients that linked a chat and,
// when configured, to the front desk chat.
type TelegramNotifier struct {
	bot    *tgbotapi.BotAPI
	users  userLookup
	deskID int64
	logger logger.Logger
}

func NewTelegramNotifier(token string, deskID int64, users userLookup, logger logger.Logger) (*TelegramNotifier, error) {
	if token == "" {
		logger.Warn("telegram bot token is empty, notifications disabled")
		return &TelegramNotifier{users: users, deskID: deskID, logger: logger}, nil
	}

	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return &TelegramNotifier{bot: bot, users: users, deskID: deskID, logger: logger}, nil
}

func (n *TelegramNotifier) Notify(ctx context.Context, msg domain.Message) {
	if n.bot == nil {
		n.logger.Debug("notification skipped (bot disabled)", logger.String("subject", msg.Subject))
		return
	}

	text := fmt.Sprintf("*%s*\n\n%s", msg.Subject, plainText(msg.HTML))
	for _, chatID := range n.chatIDs(ctx, msg.To) {
		n.send(ctx, chatID, text)
	}
}

func (n *TelegramNotifier) chatIDs(ctx context.Context, to []string) []int64 {
	seen := make(map[int64]struct{})
	var ids []int64
	add := func(id int64) {
		if _, ok := seen[id]; ok || id == 0 {
			return
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	for _, email := range dedupe(to) {
		user, err := n.users.GetByEmail(ctx, email)
		if err != nil {
			n.logger.Debug("notification skipped (unknown recipient)", logger.String("email", email))
			continue
		}
		if user.TelegramChatID != nil {
			add(*user.TelegramChatID)
		}
	}
	add(n.deskID)
	return ids
}

func (n *TelegramNotifier) send(ctx context.Context, chatID int64, text string) {
	if err := ctx.Err(); err != nil {
		n.logger.Debug("notification skipped (context cancelled)",
			logger.Int64("chat_id", chatID),
		)
		return
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"

	if _, err := n.bot.Send(msg); err != nil {
		n.logger.Error("failed to send telegram notification",
			logger.Int64("chat_id", chatID),
			logger.String("error", err.Error()),
		)
	}
}

var (
	breakTags = regexp.MustCompile(`(?i)<br\s*/?>|</div>`)
	anyTag    = regexp.MustCompile(`<[^>]*>`)
	blankRuns = regexp.MustCompile(`\n{3,}`)
)

// plainText flattens the email body for chat clients.
func plainText(body string) string {
	s := breakTags.ReplaceAllString(body, "\n")
	s = anyTag.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	s = blankRuns.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}
