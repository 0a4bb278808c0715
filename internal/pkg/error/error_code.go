package error

const (
	// 0 ~ 999: 成功類別
	SUCCESS = 0 // 200 OK

	// 40000 ~ 49999: 用戶請求錯誤 (400 系列)
	BAD_REQUEST_BODY   = 40000 // 400 - 無效的請求體
	BAD_REQUEST_PARAMS = 40001 // 400 - 無效的請求參數
	BAD_REQUEST_QUERY  = 40002 // 400 - 無效的查詢參數

	// 40400 ~ 40499: 資源錯誤 (404 系列)
	NOT_FOUND          = 40400 // 404 - 資源未找到
	METHOD_NOT_ALLOWED = 40500 // 405 - 方法不允許

	// 42900 ~ 42999: 流量限制錯誤 (429 系列)
	RATE_LIMIT_EXCEEDED = 42900 // 429 - 速率限制超過

	// 50000 ~ 50199: 伺服器內部錯誤 (500 系列)
	INTERNAL_ERROR      = 50000 // 500 - 內部錯誤
	DATABASE_ERROR      = 50001 // 500 - 資料庫錯誤
	SERVICE_UNAVAILABLE = 50002 // 503 - 服務暫停
	REFRESH_FAILED      = 50003 // 500 - 儀表板重算失敗
	DATASET_UNAVAILABLE = 50300 // 503 - 尚未產生任何儀表板資料
)
