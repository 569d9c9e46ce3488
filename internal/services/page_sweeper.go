package services

import (
	"context"
	"log"
	"time"
)

// PageSweeper периодически удаляет страницы, к которым давно не обращались.
type PageSweeper struct {
	pages    PageStorage
	ttl      time.Duration
	interval time.Duration
	now      func() time.Time
	logger   *log.Logger
}

func NewPageSweeper(pages PageStorage, ttl, interval time.Duration, logger *log.Logger) *PageSweeper {
	if interval <= 0 {
		interval = time.Minute
	}
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	if logger == nil {
		logger = log.Default()
	}
	return &PageSweeper{
		pages:    pages,
		ttl:      ttl,
		interval: interval,
		now:      time.Now,
		logger:   logger,
	}
}

// Start запускает очистку в отдельной горутине и останавливается по ctx.Done().
func (w *PageSweeper) Start(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := w.Sweep(ctx); err != nil {
					w.logger.Printf("page sweeper error: %v", err)
				}
			}
		}
	}()
}

// Sweep удаляет страницы, простаивающие дольше ttl, и возвращает их число.
func (w *PageSweeper) Sweep(ctx context.Context) (int, error) {
	n, err := w.pages.DeleteIdle(ctx, w.now().Add(-w.ttl))
	if err != nil {
		return 0, err
	}
	if n > 0 {
		w.logger.Printf("evicted %d idle pages", n)
	}
	return n, nil
}
