package models

// PageKind: тип открытой страницы консоли.
type PageKind string

const (
	PageKindOrders   PageKind = "orders"
	PageKindCallback PageKind = "callback"
)
