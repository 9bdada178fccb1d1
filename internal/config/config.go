package config

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/kelseyhightower/envconfig"
)

//go:generate mockgen -package mocks -destination mocks/ssm.go . ParameterGetter

var (
	ErrTokenRequired   = errors.New("telegram token is required")
	ErrChatIDsRequired = errors.New("at least one telegram chat id is required")
)

type Config struct {
	Dev               bool          `envconfig:"DEV" default:"false"`
	TelegramToken     string        `envconfig:"TELEGRAM_TOKEN"`
	TokenSSMParameter string        `envconfig:"TELEGRAM_TOKEN_SSM_PARAMETER"`
	ChatIDs           []string      `envconfig:"TELEGRAM_CHAT_IDS"`
	APIURL            string        `envconfig:"TELEGRAM_API_URL" default:"https://api.telegram.org"`
	LoggerName        string        `envconfig:"LOGGER_NAME" default:"telegram-notifier"`
	RequestTimeout    time.Duration `envconfig:"REQUEST_TIMEOUT" default:"60s"`
	RetryDelay        time.Duration `envconfig:"RETRY_DELAY" default:"5s"`
	PollInterval      time.Duration `envconfig:"POLL_INTERVAL" default:"10s"`
}

// ParameterGetter is the subset of the SSM client used to read the token.
type ParameterGetter interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// New reads the configuration from the environment. Outside of dev mode the token is
// read from SSM Parameter Store when TELEGRAM_TOKEN_SSM_PARAMETER is set.
func New(ctx context.Context) (*Config, error) {
	res, err := fromEnv()
	if err != nil {
		return nil, err
	}

	if !res.Dev && res.TokenSSMParameter != "" {
		client, err := newSSMClient(ctx)
		if err != nil {
			return nil, err
		}
		if res.TelegramToken, err = GetSSMToken(ctx, client, res.TokenSSMParameter); err != nil {
			return nil, err
		}
	}

	if err := res.Validate(); err != nil {
		return nil, err
	}

	return res, nil
}

func fromEnv() (*Config, error) {
	res := &Config{}
	if err := envconfig.Process("", res); err != nil {
		return nil, fmt.Errorf("envconfig process: %w", err)
	}
	return res, nil
}

func (c *Config) Validate() error {
	if strings.TrimSpace(c.TelegramToken) == "" {
		return ErrTokenRequired
	}

	ids := make([]string, 0, len(c.ChatIDs))
	for _, id := range c.ChatIDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return ErrChatIDsRequired
	}
	c.ChatIDs = ids

	return nil
}

func newSSMClient(ctx context.Context) (*ssm.Client, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return ssm.NewFromConfig(cfg), nil
}

func GetSSMToken(ctx context.Context, client ParameterGetter, name string) (string, error) {
	param, err := client.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("get SSM token: %w", err)
	}
	if param.Parameter == nil || param.Parameter.Value == nil {
		return "", errors.New("SSM Token not found")
	}

	return *param.Parameter.Value, nil
}
