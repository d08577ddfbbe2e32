package classifier

import (
	"encoding/json"
	"fmt"
	"strings"

	apperrors "go-gin-calendar/pkg/app_errors"
)

// Extraction 從圖片辨識出的事件欄位；值可能為空字串
type Extraction struct {
	Title string
	Date  string
}

// ParseExtraction 驗證模型回傳內容：必須是只有 title、date 兩個字串欄位的 JSON 物件
func ParseExtraction(raw string) (Extraction, error) {
	body := stripCodeFence(strings.TrimSpace(raw))

	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(body), &fields); err != nil {
		return Extraction{}, fmt.Errorf("%w: response is not a JSON object", apperrors.ErrExtractionFailed)
	}
	if len(fields) != 2 {
		return Extraction{}, fmt.Errorf("%w: expected keys title and date, got %d keys", apperrors.ErrExtractionFailed, len(fields))
	}

	title, err := stringField(fields, "title")
	if err != nil {
		return Extraction{}, err
	}
	date, err := stringField(fields, "date")
	if err != nil {
		return Extraction{}, err
	}
	return Extraction{Title: strings.TrimSpace(title), Date: strings.TrimSpace(date)}, nil
}

func stringField(fields map[string]json.RawMessage, key string) (string, error) {
	rawValue, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("%w: missing key %s", apperrors.ErrExtractionFailed, key)
	}
	// null 視為辨識不到
	var value *string
	if err := json.Unmarshal(rawValue, &value); err != nil {
		return "", fmt.Errorf("%w: key %s is not a string", apperrors.ErrExtractionFailed, key)
	}
	if value == nil {
		return "", nil
	}
	return *value, nil
}

// stripCodeFence 去掉 ```json ... ``` 包裝
func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = ""
	}
	s = strings.TrimSpace(s)
	return strings.TrimSpace(strings.TrimSuffix(s, "```"))
}
