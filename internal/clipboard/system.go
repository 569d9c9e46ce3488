package clipboard

import (
	"context"

	"github.com/atotto/clipboard"
)

// System пишет в системный буфер обмена машины, на которой запущена консоль.
// Имеет смысл только при локальном запуске, поэтому включается конфигурацией.
type System struct {
	enabled bool
}

func NewSystem(enabled bool) *System {
	return &System{enabled: enabled}
}

func (s *System) Available() bool {
	return s.enabled && !clipboard.Unsupported
}

func (s *System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return clipboard.WriteAll(text)
}
