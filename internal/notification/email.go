package notification

import (
	"context"
	"strings"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
	"github.com/wb-go/wbf/logger"
	"gopkg.in/gomail.v2"
)

type mailSender interface {
	DialAndSend(m ...*gomail.Message) error
}

type EmailNotifier struct {
	sender mailSender
	from   string
	logger logger.Logger
}

// NewEmailNotifier returns a disabled notifier when host is empty.
func NewEmailNotifier(host string, port int, user, password, from string, logger logger.Logger) *EmailNotifier {
	if host == "" {
		logger.Warn("smtp host is empty, email notifications disabled")
		return &EmailNotifier{from: from, logger: logger}
	}

	return &EmailNotifier{
		sender: gomail.NewDialer(host, port, user, password),
		from:   from,
		logger: logger,
	}
}

func (n *EmailNotifier) Notify(ctx context.Context, msg domain.Message) {
	to := dedupe(msg.To)
	if n.sender == nil {
		n.logger.Debug("email skipped (smtp disabled)", logger.String("subject", msg.Subject))
		return
	}
	if len(to) == 0 {
		return
	}
	if err := ctx.Err(); err != nil {
		n.logger.Debug("email skipped (context cancelled)", logger.String("subject", msg.Subject))
		return
	}

	m := gomail.NewMessage()
	m.SetHeader("From", n.from)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/html", msg.HTML)

	if err := n.sender.DialAndSend(m); err != nil {
		n.logger.Error("failed to send email",
			logger.String("to", strings.Join(to, ",")),
			logger.String("subject", msg.Subject),
			logger.String("error", err.Error()),
		)
	}
}

// dedupe drops blanks and repeated addresses, keeping first-seen order.
func dedupe(addrs []string) []string {
	seen := make(map[string]struct{}, len(addrs))
	out := make([]string, 0, len(addrs))
	for _, a := range addrs {
		a = strings.TrimSpace(a)
		key := strings.ToLower(a)
		if a == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, a)
	}
	return out
}
