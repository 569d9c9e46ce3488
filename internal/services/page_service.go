package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"time"

	"github.com/agamariel/paymall-console/internal/auth"
	"github.com/agamariel/paymall-console/internal/clipboard"
	"github.com/agamariel/paymall-console/internal/controllers"
	"github.com/agamariel/paymall-console/internal/models"
	"github.com/agamariel/paymall-console/internal/notify"
	"github.com/agamariel/paymall-console/internal/paymall"
	"github.com/agamariel/paymall-console/internal/storage"
	"github.com/agamariel/paymall-console/internal/utils"
	"github.com/agamariel/paymall-console/internal/view"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DefaultTokenLifetime: срок жизни токена страницы.
const DefaultTokenLifetime = 24 * time.Hour

var (
	ErrPageNotFound     = errors.New("page not found")
	ErrPageKindMismatch = errors.New("page kind mismatch")
)

// Page: открытая страница консоли со своим контроллером и состоянием отображения.
type Page struct {
	ID     uuid.UUID
	Kind   models.PageKind
	UserID string

	Orders     *controllers.OrderListController
	OrdersView *view.OrderListPage

	Callback     *controllers.CallbackTestController
	CallbackView *view.CallbackTestPage
}

// PageService определяет интерфейс работы с открытыми страницами.
type PageService interface {
	OpenOrderList(ctx context.Context, pageURL *url.URL, host string) (*Page, string, error)
	OpenCallbackTest(ctx context.Context, host string) (*Page, string, error)
	Get(ctx context.Context, claims *auth.PageClaims, kind models.PageKind) (*Page, error)
}

// PageServiceConfig: настройки открываемых страниц.
type PageServiceConfig struct {
	PayMallURL      string
	PageSecret      string
	TokenLifetime   time.Duration
	RequestTimeout  time.Duration
	SystemClipboard bool
	Location        *time.Location
}

// PageServiceImpl реализует PageService.
type PageServiceImpl struct {
	pages     PageStorage
	cfg       PageServiceConfig
	newClient ClientFactory
	validate  *validator.Validate
	logger    *log.Logger
}

// NewPageService создаёт новый сервис страниц. newClient может быть nil,
// тогда используется HTTP-клиент pay-mall с таймаутом из конфигурации.
func NewPageService(pages PageStorage, cfg PageServiceConfig, newClient ClientFactory, logger *log.Logger) *PageServiceImpl {
	if cfg.TokenLifetime <= 0 {
		cfg.TokenLifetime = DefaultTokenLifetime
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if logger == nil {
		logger = log.Default()
	}
	if newClient == nil {
		timeout := cfg.RequestTimeout
		newClient = func(baseURL string) paymall.Client {
			return paymall.NewHTTPClient(baseURL, timeout)
		}
	}
	return &PageServiceImpl{
		pages:     pages,
		cfg:       cfg,
		newClient: newClient,
		validate:  validator.New(),
		logger:    logger,
	}
}

// OpenOrderList открывает страницу списка заказов и загружает первую страницу.
func (s *PageServiceImpl) OpenOrderList(ctx context.Context, pageURL *url.URL, host string) (*Page, string, error) {
	page := &Page{
		ID:         uuid.New(),
		Kind:       models.PageKindOrders,
		OrdersView: view.NewOrderListPage(notify.NewSlotToaster(notify.RealScheduler{}, notify.ToastLifetime)),
	}

	page.Orders = controllers.NewOrderListController(controllers.OrderListDeps{
		Client:    s.client(host),
		View:      page.OrdersView,
		Alerts:    page.OrdersView,
		Toaster:   page.OrdersView.Toaster(),
		Copier:    s.copier(page.OrdersView.SetSelection),
		Formatter: view.NewFormatter(s.cfg.Location),
		Logger:    s.logger,
	})
	page.Orders.Initialize(ctx, pageURL)
	page.UserID = page.Orders.UserID()

	token, err := s.save(ctx, page)
	if err != nil {
		return nil, "", err
	}
	return page, token, nil
}

// OpenCallbackTest открывает страницу проверки уведомлений.
func (s *PageServiceImpl) OpenCallbackTest(ctx context.Context, host string) (*Page, string, error) {
	page := &Page{
		ID:           uuid.New(),
		Kind:         models.PageKindCallback,
		CallbackView: view.NewCallbackTestPage(notify.NewStackToaster(notify.RealScheduler{}, notify.ToastLifetime)),
	}

	page.Callback = controllers.NewCallbackTestController(controllers.CallbackTestDeps{
		Client:    s.client(host),
		View:      page.CallbackView,
		Toaster:   page.CallbackView.Toaster(),
		Copier:    s.copier(page.CallbackView.SetSelection),
		Scheduler: notify.RealScheduler{},
		Validate:  s.validate,
		Logger:    s.logger,
	})

	token, err := s.save(ctx, page)
	if err != nil {
		return nil, "", err
	}
	return page, token, nil
}

// Get возвращает страницу по claims токена и продлевает её жизнь.
func (s *PageServiceImpl) Get(ctx context.Context, claims *auth.PageClaims, kind models.PageKind) (*Page, error) {
	if claims.Kind != kind {
		return nil, ErrPageKindMismatch
	}
	page, err := s.pages.Get(ctx, claims.PageID)
	if err != nil {
		if errors.Is(err, storage.ErrPageNotFound) {
			return nil, ErrPageNotFound
		}
		return nil, fmt.Errorf("get page: %w", err)
	}
	if page.Kind != kind {
		return nil, ErrPageKindMismatch
	}
	return page, nil
}

func (s *PageServiceImpl) save(ctx context.Context, page *Page) (string, error) {
	if err := s.pages.Save(ctx, page.ID, page); err != nil {
		return "", fmt.Errorf("save page: %w", err)
	}
	token, err := auth.GeneratePageToken(page.ID, page.Kind, s.cfg.PageSecret, s.cfg.TokenLifetime)
	if err != nil {
		_ = s.pages.Delete(ctx, page.ID)
		return "", fmt.Errorf("generate page token: %w", err)
	}
	return token, nil
}

func (s *PageServiceImpl) client(host string) paymall.Client {
	baseURL, degraded := utils.ResolveBaseURL(s.cfg.PayMallURL, host)
	if degraded {
		s.logger.Printf("pay-mall address is not configured, using %s", baseURL)
	}
	return s.newClient(baseURL)
}

func (s *PageServiceImpl) copier(selection clipboard.SelectionFunc) *clipboard.Copier {
	return clipboard.NewCopier(clipboard.NewSystem(s.cfg.SystemClipboard), selection, s.logger)
}
