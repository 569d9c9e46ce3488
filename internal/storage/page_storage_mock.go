package storage

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// MockPageStorage - мок для тестирования (экспортируемый для использования в других пакетах)
type MockPageStorage[T any] struct {
	SaveFunc       func(ctx context.Context, id uuid.UUID, page T) error
	GetFunc        func(ctx context.Context, id uuid.UUID) (T, error)
	DeleteFunc     func(ctx context.Context, id uuid.UUID) error
	DeleteIdleFunc func(ctx context.Context, idleSince time.Time) (int, error)
}

func (m *MockPageStorage[T]) Save(ctx context.Context, id uuid.UUID, page T) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, id, page)
	}
	return nil
}

func (m *MockPageStorage[T]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, id)
	}
	var zero T
	return zero, ErrPageNotFound
}

func (m *MockPageStorage[T]) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockPageStorage[T]) DeleteIdle(ctx context.Context, idleSince time.Time) (int, error) {
	if m.DeleteIdleFunc != nil {
		return m.DeleteIdleFunc(ctx, idleSince)
	}
	return 0, nil
}
