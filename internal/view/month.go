package view

import (
	"fmt"
	"io"
	"strings"
	"time"

	"go-gin-calendar/internal/model"
)

type Cell struct {
	Day     time.Time
	InMonth bool
	Events  int
}

// MonthGrid 以週日為一週開始，回傳涵蓋整個月份的 4~6 週
func MonthGrid(month time.Time, events []*model.Event) [][]Cell {
	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, month.Location())
	start := first.AddDate(0, 0, -int(first.Weekday()))
	next := first.AddDate(0, 1, 0)

	counts := make(map[string]int, len(events))
	for _, e := range events {
		counts[e.Date]++
	}

	var weeks [][]Cell
	for day := start; day.Before(next); {
		week := make([]Cell, 7)
		for i := range week {
			week[i] = Cell{
				Day:     day,
				InMonth: day.Month() == first.Month(),
				Events:  counts[model.DateKey(day)],
			}
			day = day.AddDate(0, 0, 1)
		}
		weeks = append(weeks, week)
	}
	return weeks
}

// RenderMonth 選取的日期以 [] 標示，有事件的日期後面加 *
func RenderMonth(w io.Writer, month time.Time, events []*model.Event, selected time.Time) error {
	var b strings.Builder
	title := month.Format("January 2006")
	fmt.Fprintf(&b, "%s%s\n", strings.Repeat(" ", (35-len(title))/2), title)
	b.WriteString("  Su   Mo   Tu   We   Th   Fr   Sa\n")

	selectedKey := model.DateKey(selected)
	for _, week := range MonthGrid(month, events) {
		for _, c := range week {
			b.WriteString(cellText(c, model.DateKey(c.Day) == selectedKey))
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func cellText(c Cell, selected bool) string {
	if !c.InMonth {
		return "     "
	}
	mark := " "
	if c.Events > 0 {
		mark = "*"
	}
	if selected {
		return fmt.Sprintf("[%2d]%s", c.Day.Day(), mark)
	}
	return fmt.Sprintf(" %2d %s", c.Day.Day(), mark)
}

// RenderDay 列出某天的事件；imageURL 可為 nil
func RenderDay(w io.Writer, day time.Time, events []*model.Event, imageURL func(string) string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "Events for %s\n", day.Format("Monday, January 2, 2006"))
	visible := EventsOn(events, day)
	if len(visible) == 0 {
		b.WriteString("  No events.\n")
	}
	for _, e := range visible {
		fmt.Fprintf(&b, "  - %s  (id: %s)\n", e.Title, e.ID)
		if e.HasImage() {
			ref := *e.Image
			if imageURL != nil {
				ref = imageURL(ref)
			}
			fmt.Fprintf(&b, "    image: %s\n", ref)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}
