package clipboard

import (
	"context"
	"errors"
	"fmt"
	"log"
)

var (
	// ErrUnavailable возвращается, когда ни один способ копирования недоступен.
	ErrUnavailable = errors.New("clipboard unavailable")
	// ErrManualCopy возвращается, когда текст только выведен для ручного копирования.
	ErrManualCopy = errors.New("text left for manual copy")
)

// Clipboard: способ положить текст в буфер обмена.
type Clipboard interface {
	Available() bool
	WriteText(ctx context.Context, text string) error
}

// Copier копирует текст основным способом, а при его отсутствии или ошибке запасным.
type Copier struct {
	primary  Clipboard
	fallback Clipboard
	logger   *log.Logger
}

func NewCopier(primary, fallback Clipboard, logger *log.Logger) *Copier {
	if logger == nil {
		logger = log.Default()
	}
	return &Copier{primary: primary, fallback: fallback, logger: logger}
}

// Copy возвращает nil, только если текст попал в буфер обмена.
// Запасной способ буфер не заполняет, поэтому после него возвращается ErrManualCopy.
func (c *Copier) Copy(ctx context.Context, text string) error {
	if c.primary != nil && c.primary.Available() {
		err := c.primary.WriteText(ctx, text)
		if err == nil {
			return nil
		}
		c.logger.Printf("primary clipboard failed, falling back: %v", err)
	}

	if c.fallback == nil || !c.fallback.Available() {
		return ErrUnavailable
	}
	if err := c.fallback.WriteText(ctx, text); err != nil {
		return fmt.Errorf("fallback copy: %w", err)
	}
	return ErrManualCopy
}

// SelectionFunc: запасной способ: текст выводится на страницу выделенным
// для ручного копирования.
type SelectionFunc func(text string) error

func (f SelectionFunc) Available() bool {
	return f != nil
}

func (f SelectionFunc) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return f(text)
}
