package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPageNotFound      = errors.New("page not found")
	ErrPageAlreadyExists = errors.New("page already exists")
)

// PageStorage определяет интерфейс хранилища открытых страниц.
type PageStorage[T any] interface {
	Save(ctx context.Context, id uuid.UUID, page T) error
	Get(ctx context.Context, id uuid.UUID) (T, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteIdle(ctx context.Context, idleSince time.Time) (int, error)
}

type pageEntry[T any] struct {
	page     T
	lastSeen time.Time
}

// MemoryStorage хранит страницы в памяти процесса. Get отмечает страницу как активную.
type MemoryStorage[T any] struct {
	mu    sync.Mutex
	pages map[uuid.UUID]*pageEntry[T]
	now   func() time.Time
}

// NewMemoryStorage создаёт новый экземпляр MemoryStorage.
func NewMemoryStorage[T any]() *MemoryStorage[T] {
	return &MemoryStorage[T]{
		pages: make(map[uuid.UUID]*pageEntry[T]),
		now:   time.Now,
	}
}

// Save сохраняет новую страницу.
func (s *MemoryStorage[T]) Save(ctx context.Context, id uuid.UUID, page T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pages[id]; ok {
		return ErrPageAlreadyExists
	}
	s.pages[id] = &pageEntry[T]{page: page, lastSeen: s.now()}
	return nil
}

// Get возвращает страницу и продлевает её жизнь.
func (s *MemoryStorage[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.pages[id]
	if !ok {
		return zero, ErrPageNotFound
	}
	entry.lastSeen = s.now()
	return entry.page, nil
}

// Delete удаляет страницу.
func (s *MemoryStorage[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.pages[id]; !ok {
		return ErrPageNotFound
	}
	delete(s.pages, id)
	return nil
}

// DeleteIdle удаляет страницы, к которым не обращались с момента idleSince,
// и возвращает их число.
func (s *MemoryStorage[T]) DeleteIdle(ctx context.Context, idleSince time.Time) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	n := 0
	for id, entry := range s.pages {
		if entry.lastSeen.Before(idleSince) {
			delete(s.pages, id)
			n++
		}
	}
	return n, nil
}
