package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"go-gin-calendar/internal/model"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
)

var (
	errUploadTooLarge = errors.New("upload too large")
	errBadForm        = errors.New("malformed form")
)

func BindUri(c *gin.Context, obj interface{}) error {
	if err := c.ShouldBindUri(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return err
	}
	return nil
}

// parseForm 接受 multipart/form-data 或 urlencoded 表單；總大小受 maxBytes 限制
func parseForm(c *gin.Context, maxBytes int64) error {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

	var err error
	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		err = c.Request.ParseMultipartForm(maxBytes)
	} else {
		err = c.Request.ParseForm()
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return errUploadTooLarge
	}
	if err != nil {
		return fmt.Errorf("%w: %w", errBadForm, err)
	}
	return nil
}

// readImage 沒有上傳圖片時回傳 nil；媒體類型以檔案內容判斷，不信任用戶端的 Content-Type
func readImage(c *gin.Context, field string) (*model.ImageUpload, error) {
	if c.ContentType() != gin.MIMEMultipartPOSTForm {
		return nil, nil
	}
	fh, err := c.FormFile(field)
	if errors.Is(err, http.ErrMissingFile) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", errBadForm, err)
	}
	// 瀏覽器沒選檔案時會送出空的 file part
	if fh.Filename == "" && fh.Size == 0 {
		return nil, nil
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return &model.ImageUpload{
		Filename:  fh.Filename,
		MediaType: mimetype.Detect(data).String(),
		Data:      data,
	}, nil
}
