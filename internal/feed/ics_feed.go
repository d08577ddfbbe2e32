package feed

import (
	"strings"
	"time"

	"go-gin-calendar/internal/model"
	"go-gin-calendar/pkg/logger"

	ical "github.com/arran4/golang-ical"
	"go.uber.org/zap"
)

const ProductID = "-//go-gin-calendar//Events//EN"

// BuildICS 將所有事件輸出成全天 VEVENT；日期無法解析的事件略過
// baseURL 用來把 /uploads/<name> 補成完整連結，可為空
func BuildICS(events []*model.Event, baseURL string, now time.Time) string {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)
	cal.SetXWRCalName("Calendar")

	stamp := now.UTC()
	for _, e := range events {
		day, err := time.Parse(model.DateLayout, e.Date)
		if err != nil {
			logger.WithComponent("feed").Warn("skip event with invalid date",
				zap.String("id", e.ID), zap.String("date", e.Date))
			continue
		}

		ve := cal.AddEvent(e.ID)
		ve.SetDtStampTime(stamp)
		if !e.CreatedAt.IsZero() {
			ve.SetCreatedTime(e.CreatedAt.UTC())
		}
		ve.SetSummary(e.Title)
		ve.SetAllDayStartAt(day)
		ve.SetAllDayEndAt(day.AddDate(0, 0, 1))
		if e.HasImage() {
			ve.SetURL(strings.TrimRight(baseURL, "/") + *e.Image)
		}
	}
	return cal.Serialize()
}
