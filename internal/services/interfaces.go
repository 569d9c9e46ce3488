package services

import (
	"github.com/agamariel/paymall-console/internal/paymall"
	"github.com/agamariel/paymall-console/internal/storage"
)

// PageStorage хранит открытые страницы консоли.
type PageStorage = storage.PageStorage[*Page]

// ClientFactory создаёт клиент pay-mall для базового адреса.
type ClientFactory func(baseURL string) paymall.Client
