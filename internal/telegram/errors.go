package telegram

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"strings"

	tb "gopkg.in/telebot.v3"

	"github.com/Roma7-7-7/tg-notifier/internal/notifier"
)

// classify maps telebot errors onto the notifier error taxonomy.
func classify(err error) error {
	if err == nil {
		return nil
	}

	switch code := errorCode(err); {
	case code == http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", notifier.ErrRateLimited, err)
	case code == http.StatusBadRequest:
		return fmt.Errorf("%w: %w", notifier.ErrBadRequest, err)
	case isTimeout(err):
		return fmt.Errorf("%w: %w", notifier.ErrTimeout, err)
	default:
		return err
	}
}

// errorCode returns the Bot API error code of err, or zero for non-API errors.
func errorCode(err error) int {
	var apiErr *tb.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code
	}

	// flood and unknown API errors render as "telegram: <description> (<code>)"
	msg := err.Error()
	if !strings.HasSuffix(msg, ")") {
		return 0
	}
	open := strings.LastIndex(msg, "(")
	if open < 0 {
		return 0
	}
	code, convErr := strconv.Atoi(msg[open+1 : len(msg)-1])
	if convErr != nil {
		return 0
	}
	return code
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return strings.Contains(err.Error(), "Client.Timeout exceeded")
}
