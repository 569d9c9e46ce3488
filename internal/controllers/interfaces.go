package controllers

import (
	"context"

	"github.com/agamariel/paymall-console/internal/view"
)

// OrderListView: поверхность отрисовки страницы списка заказов.
type OrderListView interface {
	SetBanner(text string)
	SetLoading(loading bool)
	ClearOrders()
	AppendOrders(cards []view.OrderCard)
	SetEmptyState(visible bool)
	SetLoadMore(visible bool, label string)
	SetRefundDialog(open bool)
}

// CallbackTestView: поверхность отрисовки страницы проверки уведомлений.
type CallbackTestView interface {
	SetBusy(busy bool)
	SetInput(value string)
	HideResult()
	ShowResult(text string, style view.ResultStyle)
	ResultText() string
}

// Alerter показывает пользователю сообщения об ошибке и успехе.
type Alerter interface {
	Error(message string)
	Success(message string)
}

// Toaster показывает всплывающие сообщения.
type Toaster interface {
	Show(message string)
}

// Copier копирует текст в буфер обмена.
type Copier interface {
	Copy(ctx context.Context, text string) error
}
