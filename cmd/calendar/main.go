package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go-gin-calendar/internal/client"
	"go-gin-calendar/internal/model"
	"go-gin-calendar/internal/view"
	apperrors "go-gin-calendar/pkg/app_errors"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "calendar",
		Usage: "Browse and edit events on the calendar server.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "server",
				Value:   "http://localhost:5000",
				Usage:   "calendar server base URL",
				EnvVars: []string{"CALENDAR_SERVER"},
			},
			&cli.DurationFlag{
				Name:  "timeout",
				Value: client.DefaultTimeout,
				Usage: "request timeout (image uploads wait for the classifier)",
			},
		},
		Commands: []*cli.Command{
			monthCommand(),
			dayCommand(),
			addCommand(),
			deleteCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, userMessage(err))
		os.Exit(1)
	}
}

func dateFlag() *cli.StringFlag {
	return &cli.StringFlag{Name: "date", Aliases: []string{"d"}, Usage: "selected day (YYYY-MM-DD), defaults to today"}
}

// newSession 載入事件並選取 --date 指定的日期
func newSession(c *cli.Context) (*view.Session, *client.Client, error) {
	selected, err := selectedDay(c.String("date"))
	if err != nil {
		return nil, nil, err
	}
	api := client.New(c.String("server"), c.Duration("timeout"))
	s := view.NewSession(api, selected)
	if err := s.Load(c.Context); err != nil {
		return nil, nil, err
	}
	return s, api, nil
}

func selectedDay(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	normalized, err := model.NormalizeDate(value)
	if err != nil {
		return time.Time{}, err
	}
	return time.ParseInLocation(model.DateLayout, normalized, time.Local)
}

func monthCommand() *cli.Command {
	return &cli.Command{
		Name:  "month",
		Usage: "Show the month around the selected day and that day's events.",
		Flags: []cli.Flag{dateFlag()},
		Action: func(c *cli.Context) error {
			s, api, err := newSession(c)
			if err != nil {
				return err
			}
			if err := view.RenderMonth(os.Stdout, s.Selected(), s.Events(), s.Selected()); err != nil {
				return err
			}
			fmt.Println()
			return view.RenderDay(os.Stdout, s.Selected(), s.Visible(), api.ImageURL)
		},
	}
}

func dayCommand() *cli.Command {
	return &cli.Command{
		Name:  "day",
		Usage: "List the events of the selected day.",
		Flags: []cli.Flag{dateFlag()},
		Action: func(c *cli.Context) error {
			s, api, err := newSession(c)
			if err != nil {
				return err
			}
			return view.RenderDay(os.Stdout, s.Selected(), s.Visible(), api.ImageURL)
		},
	}
}

func addCommand() *cli.Command {
	return &cli.Command{
		Name:      "add",
		Usage:     "Add an event on the selected day from a title, an image, or both.",
		ArgsUsage: "[title]",
		Flags: []cli.Flag{
			dateFlag(),
			&cli.StringFlag{Name: "image", Aliases: []string{"i"}, Usage: "image file to read the event from"},
		},
		Action: func(c *cli.Context) error {
			draft := view.Draft{Title: c.Args().First(), ImagePath: c.String("image")}
			if err := draft.Validate(); err != nil {
				return err
			}
			if draft.ImagePath != "" {
				p, err := view.PreviewImage(draft.ImagePath)
				if err != nil {
					return fmt.Errorf("%w: %w", apperrors.ErrInvalidInput, err)
				}
				fmt.Printf("Uploading %s\n", p)
			}

			s, api, err := newSession(c)
			if err != nil {
				return err
			}
			event, err := s.Create(c.Context, draft)
			if err != nil {
				return err
			}
			fmt.Printf("Added %q on %s (id: %s)\n\n", event.Title, event.Date, event.ID)

			if day, err := time.ParseInLocation(model.DateLayout, event.Date, time.Local); err == nil {
				s.Select(day)
			}
			return view.RenderDay(os.Stdout, s.Selected(), s.Visible(), api.ImageURL)
		},
	}
}

func deleteCommand() *cli.Command {
	return &cli.Command{
		Name:      "delete",
		Usage:     "Delete an event by id.",
		ArgsUsage: "<id>",
		Action: func(c *cli.Context) error {
			id := c.Args().First()
			if id == "" {
				return fmt.Errorf("%w: event id is required", apperrors.ErrInvalidInput)
			}
			api := client.New(c.String("server"), c.Duration("timeout"))
			if err := api.Delete(c.Context, id); err != nil {
				return err
			}
			fmt.Printf("Deleted %s\n", id)
			return nil
		},
	}
}

// userMessage 區分使用者輸入錯誤與伺服器／辨識服務無法使用
func userMessage(err error) string {
	switch {
	case apperrors.IsValidation(err):
		return fmt.Sprintf("Invalid input: %v", err)
	case errors.Is(err, apperrors.ErrEventNotFound):
		return "That event no longer exists."
	case errors.Is(err, apperrors.ErrExtractionFailed):
		return "Could not read an event from that image. Try a clearer image or enter the title yourself."
	case errors.Is(err, apperrors.ErrServerUnavailable):
		return "The calendar server is unavailable right now. Please try again later."
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}
