package model

import "time"

// Event 行事曆事件，建立後不會再修改
type Event struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Date          string    `json:"date"`
	Image         *string   `json:"image"`
	ImageAnalysis *string   `json:"imageAnalysis"`
	CreatedAt     time.Time `json:"createdAt"`
}

// HasImage 檢查事件是否附有上傳圖片
func (e *Event) HasImage() bool {
	return e.Image != nil && *e.Image != ""
}

// ImageUpload 建立事件時附帶的圖片
type ImageUpload struct {
	Filename  string
	MediaType string
	Data      []byte
}

// CreateEventInput 建立事件請求；有圖片時 title/date 由圖片辨識結果決定
type CreateEventInput struct {
	Title string
	Date  string
	Image *ImageUpload
}

// OrphanedUpload 建立事件失敗後留下、需要刪除的上傳檔
type OrphanedUpload struct {
	Ref      string    `json:"ref"`
	Reason   string    `json:"reason"`
	FailedAt time.Time `json:"failed_at"`
}

// StringPtr 空字串回傳 nil
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
