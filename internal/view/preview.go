package view

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
)

// Preview 上傳前在本機顯示的圖片資訊
type Preview struct {
	Name      string
	MediaType string
	Width     int
	Height    int
	Size      int64
}

func (p Preview) String() string {
	if p.Width == 0 || p.Height == 0 {
		return fmt.Sprintf("%s (%s, %s)", p.Name, p.MediaType, humanSize(p.Size))
	}
	return fmt.Sprintf("%s (%s, %dx%d, %s)", p.Name, p.MediaType, p.Width, p.Height, humanSize(p.Size))
}

// PreviewImage 不需要伺服器；無法解碼尺寸的格式 (例如 webp) 只回傳類型與大小
func PreviewImage(path string) (Preview, error) {
	f, err := os.Open(path)
	if err != nil {
		return Preview{}, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return Preview{}, err
	}
	mt, err := mimetype.DetectReader(f)
	if err != nil {
		return Preview{}, err
	}
	p := Preview{Name: filepath.Base(path), MediaType: mt.String(), Size: info.Size()}
	if !mt.Is("image/png") && !mt.Is("image/jpeg") && !mt.Is("image/gif") && !mt.Is("image/webp") {
		return p, fmt.Errorf("%s is not a supported image (%s)", p.Name, p.MediaType)
	}

	if _, err := f.Seek(0, 0); err != nil {
		return p, err
	}
	if cfg, _, err := image.DecodeConfig(f); err == nil {
		p.Width, p.Height = cfg.Width, cfg.Height
	}
	return p, nil
}

func humanSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MiB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KiB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
