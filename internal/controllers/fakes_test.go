package controllers

import (
	"context"
	"errors"
	"io"
	"log"
	"sync"
	"time"

	"github.com/agamariel/paymall-console/internal/models"
	"github.com/agamariel/paymall-console/internal/notify"
	"github.com/agamariel/paymall-console/internal/view"
)

var discardLogger = log.New(io.Discard, "", 0)

type fakeClient struct {
	mu         sync.Mutex
	listReqs   []models.OrderListRequest
	refundReqs []models.RefundRequest
	notifyArgs []string

	ListFunc   func(ctx context.Context, req models.OrderListRequest) (*models.Response[models.OrderListData], error)
	RefundFunc func(ctx context.Context, req models.RefundRequest) (*models.Response[models.RefundData], error)
	NotifyFunc func(ctx context.Context, outTradeNo string) (*models.NotifyResponse, error)
}

func (f *fakeClient) QueryUserOrderList(ctx context.Context, req models.OrderListRequest) (*models.Response[models.OrderListData], error) {
	f.mu.Lock()
	f.listReqs = append(f.listReqs, req)
	f.mu.Unlock()
	if f.ListFunc != nil {
		return f.ListFunc(ctx, req)
	}
	return &models.Response[models.OrderListData]{Code: models.SuccessCode, Data: &models.OrderListData{}}, nil
}

func (f *fakeClient) RefundOrder(ctx context.Context, req models.RefundRequest) (*models.Response[models.RefundData], error) {
	f.mu.Lock()
	f.refundReqs = append(f.refundReqs, req)
	f.mu.Unlock()
	if f.RefundFunc != nil {
		return f.RefundFunc(ctx, req)
	}
	return &models.Response[models.RefundData]{Code: models.SuccessCode, Data: &models.RefundData{Success: true}}, nil
}

func (f *fakeClient) ActivePayNotify(ctx context.Context, outTradeNo string) (*models.NotifyResponse, error) {
	f.mu.Lock()
	f.notifyArgs = append(f.notifyArgs, outTradeNo)
	f.mu.Unlock()
	if f.NotifyFunc != nil {
		return f.NotifyFunc(ctx, outTradeNo)
	}
	return &models.NotifyResponse{Code: models.SuccessCode}, nil
}

func (f *fakeClient) ListRequests() []models.OrderListRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.OrderListRequest(nil), f.listReqs...)
}

func (f *fakeClient) RefundRequests() []models.RefundRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.RefundRequest(nil), f.refundReqs...)
}

func (f *fakeClient) NotifyArgs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.notifyArgs...)
}

type fakeCopier struct {
	err    error
	copied []string
}

func (f *fakeCopier) Copy(ctx context.Context, text string) error {
	if f.err != nil {
		return f.err
	}
	f.copied = append(f.copied, text)
	return nil
}

var errCopyDenied = errors.New("denied")

func cursor(v string) *models.Cursor {
	c := models.Cursor(v)
	return &c
}

func orderPage(hasMore bool, lastID *models.Cursor, orders ...models.Order) *models.Response[models.OrderListData] {
	return &models.Response[models.OrderListData]{
		Code: models.SuccessCode,
		Info: "ok",
		Data: &models.OrderListData{OrderList: orders, HasMore: hasMore, LastID: lastID},
	}
}

type orderListFixture struct {
	client *fakeClient
	page   *view.OrderListPage
	sched  *notify.ManualScheduler
	copier *fakeCopier
	ctrl   *OrderListController
}

func newOrderListFixture(client *fakeClient) *orderListFixture {
	sched := notify.NewManualScheduler()
	page := view.NewOrderListPage(notify.NewSlotToaster(sched, notify.ToastLifetime))
	copier := &fakeCopier{}
	ctrl := NewOrderListController(OrderListDeps{
		Client:    client,
		View:      page,
		Alerts:    page,
		Toaster:   page.Toaster(),
		Copier:    copier,
		Formatter: view.NewFormatter(time.UTC),
		Logger:    discardLogger,
	})
	return &orderListFixture{client: client, page: page, sched: sched, copier: copier, ctrl: ctrl}
}

type callbackFixture struct {
	client *fakeClient
	page   *view.CallbackTestPage
	sched  *notify.ManualScheduler
	copier *fakeCopier
	ctrl   *CallbackTestController
}

func newCallbackFixture(client *fakeClient) *callbackFixture {
	sched := notify.NewManualScheduler()
	page := view.NewCallbackTestPage(notify.NewStackToaster(sched, notify.ToastLifetime))
	copier := &fakeCopier{}
	ctrl := NewCallbackTestController(CallbackTestDeps{
		Client:    client,
		View:      page,
		Toaster:   page.Toaster(),
		Copier:    copier,
		Scheduler: sched,
		Logger:    discardLogger,
	})
	return &callbackFixture{client: client, page: page, sched: sched, copier: copier, ctrl: ctrl}
}
