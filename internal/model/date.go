package model

import (
	"fmt"
	"strings"
	"time"

	apperrors "go-gin-calendar/pkg/app_errors"
)

// DateLayout 事件日期的標準格式
const DateLayout = "2006-01-02"

// 帶時區的格式先轉成 UTC 再取日期
var zonedLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
}

var localLayouts = []string{
	DateLayout,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	"January 2, 2006",
	"Jan 2, 2006",
	"Monday, January 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// NormalizeDate 將可接受的日期表示法轉成 YYYY-MM-DD
func NormalizeDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", fmt.Errorf("%w: empty", apperrors.ErrInvalidDate)
	}
	for _, layout := range zonedLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC().Format(DateLayout), nil
		}
	}
	for _, layout := range localLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout), nil
		}
	}
	return "", fmt.Errorf("%w: %q", apperrors.ErrInvalidDate, s)
}

// DateKey 取得某個時間點在其時區下的日期字串
func DateKey(t time.Time) string {
	return t.Format(DateLayout)
}
