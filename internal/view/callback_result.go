package view

import "fmt"

// ResultStyle: оформление блока результата.
type ResultStyle string

const (
	ResultSuccess ResultStyle = "result-success"
	ResultError   ResultStyle = "result-error"
)

// SuccessResultText: текст успешной отправки уведомления.
func SuccessResultText(code, info, data string) string {
	return fmt.Sprintf("✅ 测试成功\n\n响应码: %s\n响应信息: %s\n处理结果: %s\n\n🎉 订单状态已成功更新！", code, info, data)
}

// FailureResultText: текст неуспешной отправки; пустые поля заменяются заглушками.
func FailureResultText(code, info, data string) string {
	return fmt.Sprintf("❌ 测试失败\n\n响应码: %s\n响应信息: %s\n错误详情: %s\n",
		orDefault(code, "ERROR"),
		orDefault(info, "未知错误"),
		orDefault(data, "请检查订单号是否正确"),
	)
}

// InputErrorText: текст ошибки ввода.
func InputErrorText(message string) string {
	return "❌ 输入错误\n\n" + message
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
