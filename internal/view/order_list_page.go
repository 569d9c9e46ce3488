package view

import (
	"sync"

	"github.com/agamariel/paymall-console/internal/notify"
)

// OrderListPage хранит отображаемое состояние страницы списка заказов.
// Контроллер пишет в него, шаблон читает снимок.
type OrderListPage struct {
	mu              sync.Mutex
	banner          string
	loading         bool
	cards           []OrderCard
	emptyVisible    bool
	loadMoreVisible bool
	loadMoreLabel   string
	refundOpen      bool
	alerts          []Alert
	selection       string
	toaster         *notify.SlotToaster
}

// OrderListSnapshot: снимок страницы для шаблона.
type OrderListSnapshot struct {
	Banner          string
	Loading         bool
	Cards           []OrderCard
	EmptyVisible    bool
	LoadMoreVisible bool
	LoadMoreLabel   string
	RefundOpen      bool
	Alerts          []Alert
	Selection       string
	Toasts          []notify.Toast
}

func NewOrderListPage(toaster *notify.SlotToaster) *OrderListPage {
	return &OrderListPage{toaster: toaster}
}

func (p *OrderListPage) Toaster() *notify.SlotToaster {
	return p.toaster
}

func (p *OrderListPage) SetBanner(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.banner = text
}

func (p *OrderListPage) SetLoading(loading bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loading = loading
}

func (p *OrderListPage) ClearOrders() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cards = nil
}

func (p *OrderListPage) AppendOrders(cards []OrderCard) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cards = append(p.cards, cards...)
}

func (p *OrderListPage) SetEmptyState(visible bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.emptyVisible = visible
}

func (p *OrderListPage) SetLoadMore(visible bool, label string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.loadMoreVisible = visible
	p.loadMoreLabel = label
}

func (p *OrderListPage) SetRefundDialog(open bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.refundOpen = open
}

func (p *OrderListPage) Error(message string) {
	p.addAlert(AlertError, message)
}

func (p *OrderListPage) Success(message string) {
	p.addAlert(AlertSuccess, message)
}

func (p *OrderListPage) addAlert(level AlertLevel, message string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.alerts = append(p.alerts, Alert{Level: level, Message: message})
}

// SetSelection выводит текст в поле ручного копирования.
func (p *OrderListPage) SetSelection(text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selection = text
	return nil
}

// Snapshot возвращает текущее состояние. Сообщения и поле копирования
// показываются один раз и очищаются.
func (p *OrderListPage) Snapshot() OrderListSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := OrderListSnapshot{
		Banner:          p.banner,
		Loading:         p.loading,
		Cards:           append([]OrderCard(nil), p.cards...),
		EmptyVisible:    p.emptyVisible,
		LoadMoreVisible: p.loadMoreVisible,
		LoadMoreLabel:   p.loadMoreLabel,
		RefundOpen:      p.refundOpen,
		Alerts:          p.alerts,
		Selection:       p.selection,
	}
	p.alerts = nil
	p.selection = ""
	if p.toaster != nil {
		snap.Toasts = p.toaster.Active()
	}
	return snap
}
