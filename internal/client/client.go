package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	"go-gin-calendar/internal/model"
	apperrors "go-gin-calendar/pkg/app_errors"
)

// DefaultTimeout 需涵蓋伺服器端呼叫圖片辨識的時間
const DefaultTimeout = 90 * time.Second

// Client 事件 API 的 HTTP 用戶端
type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	tr := &http.Transport{
		Proxy:               http.ProxyFromEnvironment,
		DialContext:         (&net.Dialer{Timeout: 5 * time.Second, KeepAlive: 60 * time.Second}).DialContext,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout, Transport: tr},
	}
}

func (c *Client) List(ctx context.Context) ([]*model.Event, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/events", nil)
	if err != nil {
		return nil, err
	}
	var events []*model.Event
	if err := c.do(req, http.StatusOK, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Create 以 multipart/form-data 上傳；空白欄位不送出
func (c *Client) Create(ctx context.Context, input model.CreateEventInput) (*model.Event, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	if input.Title != "" {
		if err := w.WriteField("title", input.Title); err != nil {
			return nil, err
		}
	}
	if input.Date != "" {
		if err := w.WriteField("date", input.Date); err != nil {
			return nil, err
		}
	}
	if input.Image != nil {
		part, err := w.CreateFormFile("image", filepath.Base(input.Image.Filename))
		if err != nil {
			return nil, err
		}
		if _, err := part.Write(input.Image.Data); err != nil {
			return nil, err
		}
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/events", body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var event model.Event
	if err := c.do(req, http.StatusCreated, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

func (c *Client) Delete(ctx context.Context, id string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/events/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return c.do(req, http.StatusNoContent, nil)
}

// ImageURL 將事件的 /uploads/<name> 轉成完整網址
func (c *Client) ImageURL(ref string) string {
	return c.baseURL + ref
}

type errorBody struct {
	Error string `json:"error"`
}

func (c *Client) do(req *http.Request, want int, out interface{}) error {
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", apperrors.ErrServerUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != want {
		return statusError(resp)
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %w", apperrors.ErrServerUnavailable, err)
	}
	return nil
}

// statusError 把 HTTP 狀態碼轉回錯誤分類，訊息沿用伺服器回傳的 error 欄位
func statusError(resp *http.Response) error {
	var body errorBody
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if json.Unmarshal(raw, &body) != nil || body.Error == "" {
		body.Error = resp.Status
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: %s", apperrors.ErrInvalidInput, body.Error)
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", apperrors.ErrEventNotFound, body.Error)
	case resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", apperrors.ErrExtractionFailed, body.Error)
	default:
		return fmt.Errorf("%w: %d %s", apperrors.ErrServerUnavailable, resp.StatusCode, body.Error)
	}
}
