package view

import (
	"strconv"
	"strings"
	"time"

	"github.com/agamariel/paymall-console/internal/models"
	"github.com/shopspring/decimal"
)

const (
	refundLabel       = "申请退单"
	refundClosedLabel = "已关闭"
	timeLayout        = "2006-01-02 15:04"
)

// OrderCard: карточка заказа на странице списка.
type OrderCard struct {
	OrderID        string
	Status         string
	StatusLabel    string
	StatusClass    string
	ProductName    string
	OrderTime      string
	Amount         string
	RefundDisabled bool
	RefundLabel    string
}

// Formatter переводит заказы в карточки. Время показывается в заданной зоне.
type Formatter struct {
	loc *time.Location
}

func NewFormatter(loc *time.Location) Formatter {
	if loc == nil {
		loc = time.Local
	}
	return Formatter{loc: loc}
}

func (f Formatter) OrderCard(o models.Order) OrderCard {
	card := OrderCard{
		OrderID:        o.OrderID,
		Status:         string(o.Status),
		StatusLabel:    o.Status.Label(),
		StatusClass:    "status-" + string(o.Status),
		ProductName:    o.DisplayProductName(),
		OrderTime:      f.FormatTime(o.OrderTime),
		Amount:         FormatAmount(o.Amount()),
		RefundDisabled: !o.Status.Refundable(),
		RefundLabel:    refundLabel,
	}
	if card.RefundDisabled {
		card.RefundLabel = refundClosedLabel
	}
	return card
}

func (f Formatter) OrderCards(orders []models.Order) []OrderCard {
	cards := make([]OrderCard, 0, len(orders))
	for _, o := range orders {
		cards = append(cards, f.OrderCard(o))
	}
	return cards
}

var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.000-0700",
	"2006-01-02T15:04:05-0700",
}

var localLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.000",
	"2006-01-02T15:04:05.000",
	"2006-01-02 15:04",
	"2006-01-02",
}

// FormatTime приводит время заказа к виду YYYY-MM-DD HH:MM.
// Пустая строка остаётся пустой, нераспознанная возвращается как есть.
func (f Formatter) FormatTime(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.In(f.loc).Format(timeLayout)
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, raw, f.loc); err == nil {
			return t.Format(timeLayout)
		}
	}
	// миллисекунды эпохи
	if ms, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return time.UnixMilli(ms).In(f.loc).Format(timeLayout)
	}
	return raw
}

// FormatAmount форматирует сумму заказа.
func FormatAmount(d decimal.Decimal) string {
	return "¥" + d.StringFixed(2)
}
