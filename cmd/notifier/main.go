package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/Roma7-7-7/tg-notifier/internal/config"
	"github.com/Roma7-7-7/tg-notifier/internal/notifier"
	"github.com/Roma7-7-7/tg-notifier/internal/telegram"
)

const (
	exitDeclined = 1
	exitFailure  = 2
)

var (
	version = "dev"
	commit  = "unknown"
)

var errDeclined = errors.New("declined")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	rootCmd := &cobra.Command{
		Use:   "notifier",
		Short: "Send Telegram notifications and wait for Y/N confirmations",
		Long: `notifier delivers a message to every chat listed in TELEGRAM_CHAT_IDS.
The confirm command additionally blocks until one of those chats replies Y or N.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, _ []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "notifier version %s (commit: %s)\n", version, commit)
			},
		},
		newSendCmd(),
		newConfirmCmd(),
	)

	err := rootCmd.ExecuteContext(ctx)
	switch {
	case err == nil:
	case errors.Is(err, errDeclined):
		cancel()
		os.Exit(exitDeclined) //nolint:gocritic // cancel is called above
	default:
		slog.Error("Command failed", "error", err)
		cancel()
		os.Exit(exitFailure) //nolint:gocritic // cancel is called above
	}
}

func newSendCmd() *cobra.Command {
	var (
		photos  []string
		videos  []string
		preview bool
	)

	cmd := &cobra.Command{
		Use:   "send TEXT...",
		Short: "Send a message to every configured chat",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			n, err := newNotifier(ctx)
			if err != nil {
				return err
			}

			msg := notifier.NewMessage(strings.Join(args, " ")).
				WithPhotos(photos...).
				WithVideos(videos...)
			if preview {
				msg = msg.WithPreview()
			}

			if err := n.SendMessage(ctx, msg); err != nil {
				return fmt.Errorf("send message: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVar(&photos, "photo", nil, "Photo URL to attach (repeatable, at most 10 are sent)")
	cmd.Flags().StringArrayVar(&videos, "video", nil, "Video URL to attach (repeatable, only the first is sent)")
	cmd.Flags().BoolVar(&preview, "preview", false, "Enable link previews for text messages")

	return cmd
}

func newConfirmCmd() *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "confirm TEXT...",
		Short: "Ask every configured chat a Y/N question and wait for the answer",
		Long: `confirm prints "yes" and exits with 0 when a chat replies Y,
prints "no" and exits with 1 when a chat replies N. Without --timeout it waits forever.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}

			n, err := newNotifier(ctx)
			if err != nil {
				return err
			}

			confirmed, err := n.Confirm(ctx, strings.Join(args, " "))
			if err != nil {
				return fmt.Errorf("confirm: %w", err)
			}
			if !confirmed {
				fmt.Fprintln(cmd.OutOrStdout(), "no")
				return errDeclined
			}
			fmt.Fprintln(cmd.OutOrStdout(), "yes")
			return nil
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Stop waiting for the answer after this duration (0 waits forever)")

	return cmd
}

func newNotifier(ctx context.Context) (*notifier.Notifier, error) {
	conf, err := config.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := mustLogger(conf.Dev).With("logger", conf.LoggerName)

	client, err := telegram.NewClient(telegram.Settings{
		Token:          conf.TelegramToken,
		APIURL:         conf.APIURL,
		RequestTimeout: conf.RequestTimeout,
	}, log)
	if err != nil {
		return nil, fmt.Errorf("create telegram client: %w", err)
	}

	n, err := notifier.New(client, conf.ChatIDs, log,
		notifier.WithRetryDelay(conf.RetryDelay),
		notifier.WithPollInterval(conf.PollInterval),
	)
	if err != nil {
		return nil, fmt.Errorf("create notifier: %w", err)
	}

	return n, nil
}

func mustLogger(dev bool) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if dev {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
