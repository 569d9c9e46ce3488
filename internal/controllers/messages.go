package controllers

const (
	networkErrorMessage = "网络错误，请稍后重试"
	unknownErrorMessage = "未知错误"

	loadOrdersFailedPrefix = "加载订单列表失败: "
	refundFailedPrefix     = "退单失败: "
	refundSucceeded        = "退单成功"
	loadMoreLabel          = "加载更多"
	userBannerPrefix       = "用户ID: "

	orderIDCopied    = "订单号已复制到剪贴板"
	resultCopied     = "结果已复制到剪贴板"
	copyFailed       = "复制失败，请手动复制"
	emptyOutTradeNo  = "请输入商户订单号"
	badOutTradeNo    = "商户订单号格式不正确"
	requestFailed    = "请求失败"
	transportErrCode = "ERROR"
)

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
