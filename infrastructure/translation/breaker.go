package translation

import (
	"context"
	"errors"
	"time"

	"games-backend/application/ports"
	pkgerrors "games-backend/pkg/errors"

	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// BreakerConfig holds the circuit breaker settings for the translator
type BreakerConfig struct {
	Name        string
	MaxFailures uint32
	OpenTimeout time.Duration
}

// BreakerTranslator stops calling a failing translator until it recovers.
// Open-state rejections surface as translation failures.
type BreakerTranslator struct {
	next ports.Translator
	cb   *gobreaker.CircuitBreaker
}

// NewBreakerTranslator wraps next with a circuit breaker
func NewBreakerTranslator(next ports.Translator, cfg BreakerConfig, logger *zap.Logger) *BreakerTranslator {
	if cfg.Name == "" {
		cfg.Name = "translator"
	}
	if cfg.MaxFailures == 0 {
		cfg.MaxFailures = 5
	}
	if cfg.OpenTimeout == 0 {
		cfg.OpenTimeout = 30 * time.Second
	}

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: 1,
		Timeout:     cfg.OpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("Circuit breaker state changed",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
		IsSuccessful: func(err error) bool {
			// A cancelled request says nothing about the translator's health
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return &BreakerTranslator{next: next, cb: cb}
}

var _ ports.Translator = (*BreakerTranslator)(nil)

// TranslateText calls the wrapped translator through the breaker
func (b *BreakerTranslator) TranslateText(ctx context.Context, text, sourceLanguage, targetLanguage string) (string, error) {
	out, err := b.cb.Execute(func() (interface{}, error) {
		return b.next.TranslateText(ctx, text, sourceLanguage, targetLanguage)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return "", pkgerrors.NewTranslationFailureError("translator temporarily unavailable", err).
				WithCode("TRANSLATOR_CIRCUIT_OPEN")
		}
		return "", err
	}

	return out.(string), nil
}
