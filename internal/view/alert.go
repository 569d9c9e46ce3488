package view

// AlertLevel: тип сообщения.
type AlertLevel string

const (
	AlertError   AlertLevel = "error"
	AlertSuccess AlertLevel = "success"
)

// Alert: сообщение, которое показывается один раз.
type Alert struct {
	Level   AlertLevel
	Message string
}

// Text возвращает сообщение с префиксом уровня.
func (a Alert) Text() string {
	if a.Level == AlertSuccess {
		return "成功: " + a.Message
	}
	return "错误: " + a.Message
}
