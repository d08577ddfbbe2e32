package apperrors

import "errors"

// ErrInvalidInput: 缺少必要欄位或欄位格式錯誤 (400)
// ErrExtractionFailed: 圖片辨識呼叫失敗，或回傳內容不是預期的 JSON (422)
// ErrStorageUnavailable: 事件資料庫無法連線或操作失敗 (503)
// ErrServerUnavailable: 用戶端收到非預期的 5xx
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidDate        = errors.New("invalid date")
	ErrEventNotFound      = errors.New("event not found")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrExtractionFailed   = errors.New("extraction failed")
	ErrServerUnavailable  = errors.New("server unavailable")
)

// IsValidation 判斷是否為使用者輸入錯誤
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrInvalidDate)
}
