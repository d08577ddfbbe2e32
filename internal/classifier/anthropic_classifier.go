package classifier

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"go-gin-calendar/config"
	apperrors "go-gin-calendar/pkg/app_errors"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

type AnthropicClassifierImpl struct {
	client    anthropic.Client
	model     string
	maxTokens int64
	timeout   time.Duration
}

// NewAnthropicClassifier 單次呼叫、不重試；額外的 option 用於測試時替換 base URL
func NewAnthropicClassifier(cfg *config.ClassifierConfig, opts ...option.RequestOption) ImageClassifier {
	base := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	return &AnthropicClassifierImpl{
		client:    anthropic.NewClient(append(base, opts...)...),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		timeout:   cfg.Timeout,
	}
}

func (c *AnthropicClassifierImpl) Analyze(ctx context.Context, image []byte, mediaType string) (string, error) {
	if !IsSupportedMediaType(mediaType) {
		return "", fmt.Errorf("%w: unsupported media type %s", apperrors.ErrInvalidInput, mediaType)
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	msg, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewImageBlockBase64(mediaType, base64.StdEncoding.EncodeToString(image)),
				anthropic.NewTextBlock(Prompt),
			),
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: messages api: %w", apperrors.ErrExtractionFailed, err)
	}

	for _, block := range msg.Content {
		if block.Type == "text" {
			return block.Text, nil
		}
	}
	return "", fmt.Errorf("%w: response has no text content", apperrors.ErrExtractionFailed)
}
