package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/arnavb2004/Guest-House-Portal/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
	"gopkg.in/gomail.v2"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	f.sent = append(f.sent, m...)
	return f.err
}

type fakeUsers map[string]*domain.User

func (f fakeUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := f[email]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func TestEmailNotifier_Notify(t *testing.T) {
	sender := &fakeSender{}
	n := &EmailNotifier{sender: sender, from: "desk@iitrpr.ac.in", logger: newTestLogger(t)}

	n.Notify(context.Background(), domain.Message{
		To:      []string{"guest@iitrpr.ac.in", "", "GUEST@iitrpr.ac.in", "admin@iitrpr.ac.in"},
		Subject: "New Reservation Request",
		HTML:    "<div>hi</div>",
	})

	require.Len(t, sender.sent, 1)
	m := sender.sent[0]
	assert.Equal(t, []string{"guest@iitrpr.ac.in", "admin@iitrpr.ac.in"}, m.GetHeader("To"))
	assert.Equal(t, []string{"New Reservation Request"}, m.GetHeader("Subject"))
	assert.Equal(t, []string{"desk@iitrpr.ac.in"}, m.GetHeader("From"))
}

func TestEmailNotifier_Notify_Skips(t *testing.T) {
	sender := &fakeSender{err: errors.New("smtp down")}
	n := &EmailNotifier{sender: sender, from: "desk@iitrpr.ac.in", logger: newTestLogger(t)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n.Notify(ctx, domain.Message{To: []string{"guest@iitrpr.ac.in"}})
	n.Notify(context.Background(), domain.Message{To: []string{" "}})
	assert.Empty(t, sender.sent)

	// a failing send is logged, not propagated
	n.Notify(context.Background(), domain.Message{To: []string{"guest@iitrpr.ac.in"}})
	assert.Len(t, sender.sent, 1)

	disabled := NewEmailNotifier("", 587, "", "", "desk@iitrpr.ac.in", newTestLogger(t))
	disabled.Notify(context.Background(), domain.Message{To: []string{"guest@iitrpr.ac.in"}})
}

func TestTelegramNotifier_ChatIDs(t *testing.T) {
	guestChat, adminChat := int64(11), int64(22)
	users := fakeUsers{
		"guest@iitrpr.ac.in":  {Email: "guest@iitrpr.ac.in", TelegramChatID: &guestChat},
		"admin@iitrpr.ac.in":  {Email: "admin@iitrpr.ac.in", TelegramChatID: &adminChat},
		"nochat@iitrpr.ac.in": {Email: "nochat@iitrpr.ac.in"},
	}
	n := &TelegramNotifier{users: users, deskID: adminChat, logger: newTestLogger(t)}

	ids := n.chatIDs(context.Background(), []string{
		"guest@iitrpr.ac.in", "nochat@iitrpr.ac.in", "stranger@iitrpr.ac.in", "admin@iitrpr.ac.in",
	})

	assert.Equal(t, []int64{11, 22}, ids)
}

func TestTelegramNotifier_Disabled(t *testing.T) {
	n, err := NewTelegramNotifier("", 0, fakeUsers{}, newTestLogger(t))
	require.NoError(t, err)

	n.Notify(context.Background(), domain.Message{To: []string{"guest@iitrpr.ac.in"}, Subject: "s"})
}

func TestPlainText(t *testing.T) {
	body := "<div>Your reservation status is now APPROVED</div><br><div>Comments: R&amp;D &lt;ok&gt;</div>"

	assert.Equal(t, "Your reservation status is now APPROVED\n\nComments: R&D <ok>", plainText(body))
}

type recordingNotifier struct {
	got []domain.Message
}

func (r *recordingNotifier) Notify(_ context.Context, msg domain.Message) {
	r.got = append(r.got, msg)
}

func TestMulti_Notify(t *testing.T) {
	a, b := &recordingNotifier{}, &recordingNotifier{}
	msg := domain.Message{To: []string{"guest@iitrpr.ac.in"}, Subject: "s"}

	Multi{a, b}.Notify(context.Background(), msg)

	assert.Equal(t, []domain.Message{msg}, a.got)
	assert.Equal(t, []domain.Message{msg}, b.got)
}
