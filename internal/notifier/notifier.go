package notifier

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/Roma7-7-7/tg-notifier/internal/retry"
	"github.com/Roma7-7-7/tg-notifier/pkg/clock"
)

//go:generate mockgen -package mocks -destination mocks/messaging.go . MessagingClient

const (
	DefaultRetryDelay   = 5 * time.Second
	DefaultPollInterval = 10 * time.Second

	confirmPrompt = "Please reply Y/N"
	answerYes     = "Y"
	answerNo      = "N"
)

type (
	// MessagingClient delivers messages to a single chat and reads incoming updates.
	// Implementations report transient failures with ErrRateLimited or ErrTimeout
	// and rejected requests with ErrBadRequest.
	MessagingClient interface {
		SendText(ctx context.Context, chatID, text string, disablePreview bool) error
		SendPhoto(ctx context.Context, chatID, photoURL, caption string) error
		SendMediaGroup(ctx context.Context, chatID string, media []InputPhoto) error
		SendVideo(ctx context.Context, chatID, videoURL, caption string) error
		// GetUpdates returns updates starting from offset. Zero offset means no offset.
		GetUpdates(ctx context.Context, offset int) ([]Update, error)
	}

	Clock interface {
		Now() time.Time
	}

	Option func(*Notifier)

	// Notifier sends messages to a fixed list of destinations. It is not safe for concurrent use.
	Notifier struct {
		client       MessagingClient
		destinations []string
		trusted      map[string]struct{}

		clock        Clock
		retryDelay   time.Duration
		pollInterval time.Duration

		log *slog.Logger
	}
)

func WithClock(c Clock) Option {
	return func(n *Notifier) {
		n.clock = c
	}
}

func WithRetryDelay(d time.Duration) Option {
	return func(n *Notifier) {
		n.retryDelay = d
	}
}

func WithPollInterval(d time.Duration) Option {
	return func(n *Notifier) {
		n.pollInterval = d
	}
}

func New(client MessagingClient, destinations []string, log *slog.Logger, opts ...Option) (*Notifier, error) {
	if client == nil {
		return nil, ErrNilClient
	}
	if len(destinations) == 0 {
		return nil, ErrNoDestinations
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	trusted := make(map[string]struct{}, len(destinations))
	for i, d := range destinations {
		if strings.TrimSpace(d) == "" {
			return nil, fmt.Errorf("%w: index %d", ErrEmptyDestination, i)
		}
		key := destinationKey(d)
		if _, ok := trusted[key]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDestination, d)
		}
		trusted[key] = struct{}{}
	}

	res := &Notifier{
		client:       client,
		destinations: append([]string(nil), destinations...),
		trusted:      trusted,

		clock:        clock.NewWithLocation(time.UTC),
		retryDelay:   DefaultRetryDelay,
		pollInterval: DefaultPollInterval,

		log: log.With("component", "notifier"),
	}
	for _, opt := range opts {
		opt(res)
	}

	res.log.Info("Init telegram notifier succeed", "destinations", res.destinations)
	return res, nil
}

// SendMessage delivers msg to every destination. A failure on one destination does not
// prevent delivery to the others; such failures are joined into the returned error.
// Media rejected by the API is resent as plain text and never reported.
func (n *Notifier) SendMessage(ctx context.Context, msg Message) error {
	var errs []error
	for _, chatID := range n.destinations {
		err := n.sendToChat(ctx, chatID, msg)
		if err == nil {
			continue
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return errors.Join(append(errs, ctxErr)...)
		}

		n.log.ErrorContext(ctx, "Failed to send message", "chatID", chatID, "error", err)
		errs = append(errs, fmt.Errorf("send message to %s: %w", chatID, err))
	}

	return errors.Join(errs...)
}

func (n *Notifier) sendToChat(ctx context.Context, chatID string, msg Message) error {
	log := n.log.With("chatID", chatID)

	err := n.deliver(ctx, chatID, msg)
	if !errors.Is(err, ErrBadRequest) {
		return err
	}
	if !msg.hasMedia() {
		log.ErrorContext(ctx, "Message rejected as malformed", "error", err)
		return nil
	}

	log.ErrorContext(ctx, "Failed to send media, trying to send message without media", "error", err)
	err = n.deliver(ctx, chatID, msg.TextOnly())
	if errors.Is(err, ErrBadRequest) {
		log.ErrorContext(ctx, "Message without media rejected as malformed", "error", err)
		return nil
	}
	return err
}

func (n *Notifier) deliver(ctx context.Context, chatID string, msg Message) error {
	return retry.Do(ctx, n.retryPolicy("send", chatID), func(ctx context.Context) error {
		switch {
		case len(msg.VideoURLs) > 0:
			return n.client.SendVideo(ctx, chatID, msg.VideoURLs[0], msg.Text)
		case len(msg.PhotoURLs) == 1:
			return n.client.SendPhoto(ctx, chatID, msg.PhotoURLs[0], msg.Text)
		case len(msg.PhotoURLs) > 1:
			return n.client.SendMediaGroup(ctx, chatID, msg.mediaGroup())
		default:
			return n.client.SendText(ctx, chatID, msg.Text, msg.DisablePreview)
		}
	})
}

// Confirm sends text to every destination and blocks until one of them replies Y or N.
// Replies sent before the prompt and replies from other chats are ignored.
// There is no internal timeout; cancel ctx to stop waiting.
func (n *Notifier) Confirm(ctx context.Context, text string) (bool, error) {
	// drop replies accumulated before the prompt
	updates, err := n.getUpdates(ctx, 0)
	if err != nil {
		return false, fmt.Errorf("get pending updates: %w", err)
	}
	offset := nextOffset(updates, 0)

	if err := n.SendMessage(ctx, NewMessage(text+"\n"+confirmPrompt)); err != nil {
		return false, fmt.Errorf("send confirmation request: %w", err)
	}
	sentAt := n.clock.Now().UTC()
	n.log.InfoContext(ctx, "Waiting for confirmation", "sentAt", sentAt, "offset", offset)

	for {
		updates, err := n.getUpdates(ctx, offset)
		if err != nil {
			return false, fmt.Errorf("get updates: %w", err)
		}
		offset = nextOffset(updates, offset)

		if answer, ok := n.findAnswer(ctx, updates, sentAt); ok {
			return answer, nil
		}

		if err := retry.Sleep(ctx, n.pollInterval); err != nil {
			return false, err //nolint:wrapcheck // it's ok
		}
	}
}

func (n *Notifier) findAnswer(ctx context.Context, updates []Update, sentAt time.Time) (bool, bool) {
	for _, u := range updates {
		if u.Time.Before(sentAt) {
			continue
		}
		if !n.isTrusted(u) {
			n.log.DebugContext(ctx, "Ignoring reply from unknown chat", "chatID", u.ChatID, "updateID", u.ID)
			continue
		}

		switch strings.ToUpper(strings.TrimSpace(u.Text)) {
		case answerYes:
			n.log.InfoContext(ctx, "Confirmed", "chatID", u.ChatID, "updateID", u.ID)
			return true, true
		case answerNo:
			n.log.InfoContext(ctx, "Declined", "chatID", u.ChatID, "updateID", u.ID)
			return false, true
		}
	}
	return false, false
}

func (n *Notifier) isTrusted(u Update) bool {
	if _, ok := n.trusted[destinationKey(u.ChatID)]; ok {
		return true
	}
	if u.ChatUsername == "" {
		return false
	}
	_, ok := n.trusted[destinationKey("@"+u.ChatUsername)]
	return ok
}

func (n *Notifier) getUpdates(ctx context.Context, offset int) ([]Update, error) {
	return retry.DoValue(ctx, n.retryPolicy("get updates", ""), func(ctx context.Context) ([]Update, error) {
		return n.client.GetUpdates(ctx, offset)
	})
}

func (n *Notifier) retryPolicy(op, chatID string) retry.Policy {
	return retry.Policy{
		Retryable: []error{ErrRateLimited, ErrTimeout},
		Delay:     n.retryDelay,
		OnRetry: func(attempt int, err error) {
			n.log.Warn("Transient error, retrying",
				"op", op,
				"chatID", chatID,
				"attempt", attempt,
				"delay", n.retryDelay,
				"error", err)
		},
	}
}

// nextOffset returns one past the last update id, or current when there are no updates.
func nextOffset(updates []Update, current int) int {
	if len(updates) == 0 {
		return current
	}
	return updates[len(updates)-1].ID + 1
}

// destinationKey normalizes destinations: numeric ids are compared by value
// and usernames are case-insensitive.
func destinationKey(d string) string {
	d = strings.TrimSpace(d)
	if id, err := strconv.ParseInt(d, 10, 64); err == nil {
		return strconv.FormatInt(id, 10)
	}
	if strings.HasPrefix(d, "@") {
		return strings.ToLower(d)
	}
	return d
}
