package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/agamariel/paymall-console/internal/models"
	"github.com/agamariel/paymall-console/internal/notify"
	"github.com/agamariel/paymall-console/internal/paymall"
	"github.com/agamariel/paymall-console/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallbackTestController_InputValidation(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantInput string
		wantText  string
	}{
		{
			name:      "empty",
			input:     "",
			wantInput: "",
			wantText:  "❌ 输入错误\n\n请输入商户订单号",
		},
		{
			name:      "only spaces",
			input:     "   ",
			wantInput: "",
			wantText:  "❌ 输入错误\n\n请输入商户订单号",
		},
		{
			name:      "too short",
			input:     " abc ",
			wantInput: "abc",
			wantText:  "❌ 输入错误\n\n商户订单号格式不正确",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCallbackFixture(&fakeClient{})

			f.ctrl.Submit(context.Background(), tt.input)

			assert.Empty(t, f.client.NotifyArgs())
			snap := f.page.Snapshot()
			assert.Equal(t, tt.wantInput, snap.Input)
			assert.True(t, snap.ResultVisible)
			assert.Equal(t, tt.wantText, snap.ResultText)
			assert.Equal(t, view.ResultError, snap.ResultStyle)
			assert.False(t, snap.Busy)

			f.sched.Advance(InputErrorLifetime - 1)
			assert.True(t, f.page.Snapshot().ResultVisible)

			f.sched.Advance(1)
			assert.False(t, f.page.Snapshot().ResultVisible)
		})
	}
}

func TestCallbackTestController_SubmitSuccess(t *testing.T) {
	client := &fakeClient{
		NotifyFunc: func(ctx context.Context, outTradeNo string) (*models.NotifyResponse, error) {
			return &models.NotifyResponse{Code: "0000", Info: "调用成功", Data: json.RawMessage(`"processed"`)}, nil
		},
	}
	f := newCallbackFixture(client)

	f.ctrl.Submit(context.Background(), "  ORDER123456 ")

	assert.Equal(t, []string{"ORDER123456"}, client.NotifyArgs())
	snap := f.page.Snapshot()
	assert.True(t, snap.ResultVisible)
	assert.Equal(t, view.ResultSuccess, snap.ResultStyle)
	assert.Contains(t, snap.ResultText, "响应码: 0000")
	assert.Contains(t, snap.ResultText, "响应信息: 调用成功")
	assert.Contains(t, snap.ResultText, "处理结果: processed")
	assert.False(t, snap.Busy)
	assert.False(t, f.ctrl.Busy())
}

func TestCallbackTestController_SubmitFailureResponse(t *testing.T) {
	tests := []struct {
		name     string
		resp     *models.NotifyResponse
		contains []string
	}{
		{
			name:     "application failure",
			resp:     &models.NotifyResponse{Code: "FAIL", Info: "bad id"},
			contains: []string{"响应码: FAIL", "响应信息: bad id", "错误详情: 请检查订单号是否正确"},
		},
		{
			name:     "empty response",
			resp:     &models.NotifyResponse{},
			contains: []string{"响应码: ERROR", "响应信息: 未知错误"},
		},
		{
			name:     "structured data",
			resp:     &models.NotifyResponse{Code: "0001", Info: "订单不存在", Data: json.RawMessage(`{"reason":"missing"}`)},
			contains: []string{"错误详情: {\"reason\":\"missing\"}"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newCallbackFixture(&fakeClient{
				NotifyFunc: func(ctx context.Context, outTradeNo string) (*models.NotifyResponse, error) {
					return tt.resp, nil
				},
			})

			f.ctrl.Submit(context.Background(), "ORDER123456")

			snap := f.page.Snapshot()
			assert.Equal(t, view.ResultError, snap.ResultStyle)
			for _, s := range tt.contains {
				assert.Contains(t, snap.ResultText, s)
			}
		})
	}
}

func TestCallbackTestController_TransportFailure(t *testing.T) {
	f := newCallbackFixture(&fakeClient{
		NotifyFunc: func(ctx context.Context, outTradeNo string) (*models.NotifyResponse, error) {
			return nil, &paymall.StatusError{StatusCode: http.StatusBadGateway}
		},
	})

	f.ctrl.Submit(context.Background(), "ORDER123456")

	snap := f.page.Snapshot()
	assert.Equal(t, view.ResultError, snap.ResultStyle)
	assert.Contains(t, snap.ResultText, "响应码: ERROR")
	assert.Contains(t, snap.ResultText, "响应信息: 请求失败")
	assert.Contains(t, snap.ResultText, "错误详情: HTTP 502: Bad Gateway")
	assert.False(t, snap.Busy)
}

func TestCallbackTestController_RenderResultRequiresTransport(t *testing.T) {
	f := newCallbackFixture(&fakeClient{})

	f.ctrl.RenderResult(&models.NotifyResponse{Code: models.SuccessCode}, false)
	assert.Equal(t, view.ResultError, f.page.Snapshot().ResultStyle)

	f.ctrl.RenderResult(&models.NotifyResponse{Code: models.SuccessCode}, true)
	assert.Equal(t, view.ResultSuccess, f.page.Snapshot().ResultStyle)

	f.ctrl.RenderResult(nil, true)
	assert.Equal(t, view.ResultError, f.page.Snapshot().ResultStyle)
}

func TestCallbackTestController_ValidSubmitCancelsPendingHide(t *testing.T) {
	f := newCallbackFixture(&fakeClient{})
	ctx := context.Background()

	f.ctrl.Submit(ctx, "abc")
	require.Equal(t, 1, f.sched.Pending())

	f.ctrl.Submit(ctx, "ORDER123456")
	assert.Equal(t, 0, f.sched.Pending())

	f.sched.Advance(InputErrorLifetime)
	snap := f.page.Snapshot()
	assert.True(t, snap.ResultVisible, "result of the valid submit must stay visible")
	assert.Equal(t, view.ResultSuccess, snap.ResultStyle)
}

func TestCallbackTestController_RepeatedInputErrorRestartsHide(t *testing.T) {
	f := newCallbackFixture(&fakeClient{})
	ctx := context.Background()

	f.ctrl.Submit(ctx, "abc")
	f.sched.Advance(2 * InputErrorLifetime / 3)
	f.ctrl.Submit(ctx, "")
	f.sched.Advance(2 * InputErrorLifetime / 3)

	snap := f.page.Snapshot()
	assert.True(t, snap.ResultVisible)
	assert.Equal(t, "❌ 输入错误\n\n请输入商户订单号", snap.ResultText)

	f.sched.Advance(InputErrorLifetime)
	assert.False(t, f.page.Snapshot().ResultVisible)
}

func TestCallbackTestController_AcceptsMultibyteInput(t *testing.T) {
	f := newCallbackFixture(&fakeClient{})

	f.ctrl.Submit(context.Background(), "订单号一二三")

	assert.Equal(t, []string{"订单号一二三"}, f.client.NotifyArgs())
}

func TestCallbackTestController_SubmitWhileBusyIsDropped(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	client := &fakeClient{
		NotifyFunc: func(ctx context.Context, outTradeNo string) (*models.NotifyResponse, error) {
			close(started)
			<-release
			return &models.NotifyResponse{Code: models.SuccessCode}, nil
		},
	}
	f := newCallbackFixture(client)
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		f.ctrl.Submit(ctx, "ORDER123456")
		close(done)
	}()
	<-started

	assert.True(t, f.ctrl.Busy())
	assert.True(t, f.page.Snapshot().Busy)
	f.ctrl.Submit(ctx, "ORDER654321")

	close(release)
	<-done

	assert.Equal(t, []string{"ORDER123456"}, client.NotifyArgs())
	assert.False(t, f.ctrl.Busy())
}

func TestCallbackTestController_CopyResult(t *testing.T) {
	f := newCallbackFixture(&fakeClient{})
	ctx := context.Background()

	f.ctrl.Submit(ctx, "ORDER123456")
	f.ctrl.CopyResult(ctx)
	require.Len(t, f.copier.copied, 1)
	assert.Contains(t, f.copier.copied[0], "✅ 测试成功")

	f.copier.err = errCopyDenied
	f.ctrl.CopyResult(ctx)

	toasts := f.page.Snapshot().Toasts
	require.Len(t, toasts, 2, "toasts on this page stack")
	assert.Equal(t, "结果已复制到剪贴板", toasts[0].Message)
	assert.Equal(t, "复制失败，请手动复制", toasts[1].Message)

	f.sched.Advance(notify.ToastLifetime)
	assert.Empty(t, f.page.Snapshot().Toasts)
}
