package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/agamariel/paymall-console/internal/models"
	"github.com/agamariel/paymall-console/internal/notify"
	"github.com/agamariel/paymall-console/internal/paymall"
	"github.com/agamariel/paymall-console/internal/view"
	"github.com/go-playground/validator/v10"
)

// InputErrorLifetime: сколько показывается ошибка ввода.
const InputErrorLifetime = 3 * time.Second

type notifyForm struct {
	OutTradeNo string `validate:"required,min=6"`
}

// CallbackTestDeps: зависимости контроллера проверки уведомлений.
type CallbackTestDeps struct {
	Client    paymall.Client
	View      CallbackTestView
	Toaster   Toaster
	Copier    Copier
	Scheduler notify.Scheduler
	Validate  *validator.Validate
	Logger    *log.Logger
}

// CallbackTestController повторно отправляет уведомление об оплате по номеру
// заказа продавца и показывает ответ pay-mall.
type CallbackTestController struct {
	client   paymall.Client
	view     CallbackTestView
	toaster  Toaster
	copier   Copier
	sched    notify.Scheduler
	validate *validator.Validate
	logger   *log.Logger

	mu        sync.Mutex
	busy      bool
	hideSeq   uint64
	hideTimer notify.Timer
}

func NewCallbackTestController(deps CallbackTestDeps) *CallbackTestController {
	c := &CallbackTestController{
		client:   deps.Client,
		view:     deps.View,
		toaster:  deps.Toaster,
		copier:   deps.Copier,
		sched:    deps.Scheduler,
		validate: deps.Validate,
		logger:   deps.Logger,
	}
	if c.sched == nil {
		c.sched = notify.RealScheduler{}
	}
	if c.validate == nil {
		c.validate = validator.New()
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	return c
}

// Submit проверяет номер заказа и отправляет уведомление.
// Некорректный ввод показывается сразу, без обращения к pay-mall.
func (c *CallbackTestController) Submit(ctx context.Context, outTradeNo string) {
	outTradeNo = strings.TrimSpace(outTradeNo)
	c.view.SetInput(outTradeNo)

	if msg := c.validateOutTradeNo(outTradeNo); msg != "" {
		c.showInputError(msg)
		return
	}

	c.mu.Lock()
	if c.busy {
		c.mu.Unlock()
		return
	}
	c.busy = true
	c.cancelHideLocked()
	c.mu.Unlock()

	c.view.SetBusy(true)
	c.view.HideResult()
	defer func() {
		c.mu.Lock()
		c.busy = false
		c.mu.Unlock()
		c.view.SetBusy(false)
	}()

	resp, err := c.client.ActivePayNotify(ctx, outTradeNo)
	if err != nil {
		c.logger.Printf("active pay notify %s: %v", outTradeNo, err)
		detail, _ := json.Marshal(err.Error())
		c.RenderResult(&models.NotifyResponse{
			Code: transportErrCode,
			Info: requestFailed,
			Data: detail,
		}, false)
		return
	}
	c.RenderResult(resp, true)
}

// RenderResult выводит ответ. Успех, только при успешном транспорте и коде 0000.
func (c *CallbackTestController) RenderResult(resp *models.NotifyResponse, transportOK bool) {
	c.mu.Lock()
	c.cancelHideLocked()
	c.mu.Unlock()

	if resp == nil {
		resp = &models.NotifyResponse{}
	}
	if transportOK && resp.Code == models.SuccessCode {
		c.view.ShowResult(view.SuccessResultText(resp.Code, resp.Info, resp.DataText()), view.ResultSuccess)
		return
	}
	c.view.ShowResult(view.FailureResultText(resp.Code, resp.Info, resp.DataText()), view.ResultError)
}

// CopyResult копирует выведенный результат.
func (c *CallbackTestController) CopyResult(ctx context.Context) {
	if err := c.copier.Copy(ctx, c.view.ResultText()); err != nil {
		c.logger.Printf("copy notify result: %v", err)
		c.toaster.Show(copyFailed)
		return
	}
	c.toaster.Show(resultCopied)
}

// Busy сообщает, идёт ли запрос.
func (c *CallbackTestController) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

func (c *CallbackTestController) validateOutTradeNo(outTradeNo string) string {
	err := c.validate.Struct(notifyForm{OutTradeNo: outTradeNo})
	if err == nil {
		return ""
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 && verrs[0].Tag() == "required" {
		return emptyOutTradeNo
	}
	return badOutTradeNo
}

// showInputError выводит ошибку ввода и скрывает её через InputErrorLifetime,
// если к тому времени не появился другой результат.
func (c *CallbackTestController) showInputError(msg string) {
	c.mu.Lock()
	c.cancelHideLocked()
	seq := c.hideSeq
	c.view.ShowResult(view.InputErrorText(msg), view.ResultError)
	c.hideTimer = c.sched.AfterFunc(InputErrorLifetime, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.hideSeq == seq {
			c.hideTimer = nil
			c.view.HideResult()
		}
	})
	c.mu.Unlock()
}

func (c *CallbackTestController) cancelHideLocked() {
	c.hideSeq++
	if c.hideTimer != nil {
		c.hideTimer.Stop()
		c.hideTimer = nil
	}
}
