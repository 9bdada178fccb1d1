package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	tb "gopkg.in/telebot.v3"

	"github.com/Roma7-7-7/tg-notifier/internal/notifier"
)

const (
	DefaultAPIURL         = tb.DefaultApiURL
	DefaultRequestTimeout = 60 * time.Second
)

var ErrEmptyToken = errors.New("telegram token is required")

type (
	Settings struct {
		Token          string
		APIURL         string
		RequestTimeout time.Duration
		// Offline skips the getMe call on start, used in tests.
		Offline bool
	}

	// Client implements notifier.MessagingClient on top of the Bot API.
	// telebot does not accept a context, so ctx is only checked before each request
	// and the request itself is bounded by Settings.RequestTimeout.
	Client struct {
		bot *tb.Bot

		log *slog.Logger
	}

	username string
)

func (u username) Recipient() string {
	return string(u)
}

func NewClient(settings Settings, log *slog.Logger) (*Client, error) {
	if strings.TrimSpace(settings.Token) == "" {
		return nil, ErrEmptyToken
	}
	if settings.APIURL == "" {
		settings.APIURL = DefaultAPIURL
	}
	if settings.RequestTimeout <= 0 {
		settings.RequestTimeout = DefaultRequestTimeout
	}

	bot, err := tb.NewBot(tb.Settings{
		URL:     settings.APIURL,
		Token:   settings.Token,
		Client:  &http.Client{Timeout: settings.RequestTimeout},
		Offline: settings.Offline,
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", classify(err))
	}

	return &Client{
		bot: bot,

		log: log.With("component", "telegram"),
	}, nil
}

func (c *Client) SendText(ctx context.Context, chatID, text string, disablePreview bool) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck // it's ok
	}

	_, err := c.bot.Send(recipient(chatID), text, &tb.SendOptions{DisableWebPagePreview: disablePreview})
	if err != nil {
		return fmt.Errorf("send text: %w", classify(err))
	}

	c.log.DebugContext(ctx, "Text sent", "chatID", chatID)
	return nil
}

func (c *Client) SendPhoto(ctx context.Context, chatID, photoURL, caption string) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck // it's ok
	}

	_, err := c.bot.Send(recipient(chatID), &tb.Photo{File: tb.FromURL(photoURL), Caption: caption})
	if err != nil {
		return fmt.Errorf("send photo: %w", classify(err))
	}

	c.log.DebugContext(ctx, "Photo sent", "chatID", chatID, "url", photoURL)
	return nil
}

func (c *Client) SendMediaGroup(ctx context.Context, chatID string, media []notifier.InputPhoto) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck // it's ok
	}

	album := make(tb.Album, 0, len(media))
	for _, m := range media {
		album = append(album, &tb.Photo{File: tb.FromURL(m.URL), Caption: m.Caption})
	}

	_, err := c.bot.SendAlbum(recipient(chatID), album, &tb.SendOptions{})
	if err != nil {
		return fmt.Errorf("send media group: %w", classify(err))
	}

	c.log.DebugContext(ctx, "Media group sent", "chatID", chatID, "size", len(album))
	return nil
}

func (c *Client) SendVideo(ctx context.Context, chatID, videoURL, caption string) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck // it's ok
	}

	_, err := c.bot.Send(recipient(chatID), &tb.Video{File: tb.FromURL(videoURL), Caption: caption})
	if err != nil {
		return fmt.Errorf("send video: %w", classify(err))
	}

	c.log.DebugContext(ctx, "Video sent", "chatID", chatID, "url", videoURL)
	return nil
}

// GetUpdates fetches updates without long polling. Zero offset fetches all pending updates.
func (c *Client) GetUpdates(ctx context.Context, offset int) ([]notifier.Update, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck // it's ok
	}

	params := map[string]string{
		"timeout": "0",
	}
	if offset > 0 {
		params["offset"] = strconv.Itoa(offset)
	}

	data, err := c.bot.Raw("getUpdates", params)
	if err != nil {
		return nil, fmt.Errorf("get updates: %w", classify(err))
	}

	var resp struct {
		Result []tb.Update `json:"result"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("unmarshal updates: %w", err)
	}

	res := make([]notifier.Update, 0, len(resp.Result))
	for _, u := range resp.Result {
		res = append(res, toUpdate(u))
	}

	c.log.DebugContext(ctx, "Updates fetched", "offset", offset, "count", len(res))
	return res, nil
}

func toUpdate(u tb.Update) notifier.Update {
	res := notifier.Update{ID: u.ID}

	msg := u.Message
	if msg == nil {
		msg = u.ChannelPost
	}
	if msg == nil {
		return res
	}

	res.Time = msg.Time().UTC()
	res.Text = msg.Text
	if msg.Chat != nil {
		res.ChatID = strconv.FormatInt(msg.Chat.ID, 10)
		res.ChatUsername = msg.Chat.Username
	}
	return res
}

// recipient maps a destination to a telebot recipient: numeric ids are chats, anything else is a @username.
func recipient(chatID string) tb.Recipient {
	if id, err := strconv.ParseInt(chatID, 10, 64); err == nil {
		return tb.ChatID(id)
	}
	return username(chatID)
}
