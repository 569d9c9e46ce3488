package view

import (
	"sync"

	"github.com/agamariel/paymall-console/internal/notify"
)

// CallbackTestPage хранит отображаемое состояние страницы проверки уведомлений.
type CallbackTestPage struct {
	mu            sync.Mutex
	busy          bool
	input         string
	resultVisible bool
	resultText    string
	resultStyle   ResultStyle
	selection     string
	toaster       *notify.StackToaster
}

// CallbackTestSnapshot: снимок страницы для шаблона.
type CallbackTestSnapshot struct {
	Busy          bool
	Input         string
	ResultVisible bool
	ResultText    string
	ResultStyle   ResultStyle
	Selection     string
	Toasts        []notify.Toast
}

func NewCallbackTestPage(toaster *notify.StackToaster) *CallbackTestPage {
	return &CallbackTestPage{toaster: toaster}
}

func (p *CallbackTestPage) Toaster() *notify.StackToaster {
	return p.toaster
}

func (p *CallbackTestPage) SetBusy(busy bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.busy = busy
}

func (p *CallbackTestPage) SetInput(value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.input = value
}

func (p *CallbackTestPage) HideResult() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resultVisible = false
}

func (p *CallbackTestPage) ShowResult(text string, style ResultStyle) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.resultVisible = true
	p.resultText = text
	p.resultStyle = style
}

// ResultText возвращает последний выведенный результат.
func (p *CallbackTestPage) ResultText() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.resultText
}

// SetSelection выводит текст в поле ручного копирования.
func (p *CallbackTestPage) SetSelection(text string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selection = text
	return nil
}

func (p *CallbackTestPage) Snapshot() CallbackTestSnapshot {
	p.mu.Lock()
	defer p.mu.Unlock()

	snap := CallbackTestSnapshot{
		Busy:          p.busy,
		Input:         p.input,
		ResultVisible: p.resultVisible,
		ResultText:    p.resultText,
		ResultStyle:   p.resultStyle,
		Selection:     p.selection,
	}
	p.selection = ""
	if p.toaster != nil {
		snap.Toasts = p.toaster.Active()
	}
	return snap
}
