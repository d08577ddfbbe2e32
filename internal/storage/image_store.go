package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// URLPrefix 上傳檔對外的路徑前綴，同時也是事件 image 欄位的前綴
const URLPrefix = "/uploads/"

// StoredFile 上傳目錄中的一個檔案
type StoredFile struct {
	Ref     string
	ModTime time.Time
}

type ImageStore interface {
	// Save 以上傳時間 (Unix 毫秒) + 原始副檔名命名並寫入磁碟，回傳 /uploads/<name>
	Save(ctx context.Context, originalName string, data []byte) (string, error)
	Remove(ctx context.Context, ref string) error
	List(ctx context.Context) ([]StoredFile, error)
	Dir() string
}

type LocalImageStoreImpl struct {
	dir string
	now func() time.Time
}

func NewLocalImageStore(dir string) (ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalImageStoreImpl{dir: dir, now: time.Now}, nil
}

func (s *LocalImageStoreImpl) Dir() string {
	return s.dir
}

func (s *LocalImageStoreImpl) Save(ctx context.Context, originalName string, data []byte) (string, error) {
	ext := strings.ToLower(filepath.Ext(filepath.Base(originalName)))
	base := strconv.FormatInt(s.now().UnixMilli(), 10)

	// 同一毫秒的上傳加上序號避免覆蓋
	for i := 0; i < 100; i++ {
		name := base + ext
		if i > 0 {
			name = fmt.Sprintf("%s-%d%s", base, i, ext)
		}
		f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create upload file: %w", err)
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			os.Remove(f.Name())
			return "", fmt.Errorf("write upload file: %w", err)
		}
		if err := f.Close(); err != nil {
			os.Remove(f.Name())
			return "", fmt.Errorf("close upload file: %w", err)
		}
		return URLPrefix + name, nil
	}
	return "", fmt.Errorf("no free upload name for %s", base+ext)
}

func (s *LocalImageStoreImpl) Remove(ctx context.Context, ref string) error {
	name, err := nameFromRef(ref)
	if err != nil {
		return err
	}
	err = os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove upload %s: %w", name, err)
	}
	return nil
}

func (s *LocalImageStoreImpl) List(ctx context.Context) ([]StoredFile, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read upload dir: %w", err)
	}
	files := make([]StoredFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			// 列目錄後被刪除
			continue
		}
		files = append(files, StoredFile{Ref: URLPrefix + entry.Name(), ModTime: info.ModTime()})
	}
	return files, nil
}

// nameFromRef 只接受 /uploads/<name>，不允許跳出上傳目錄
func nameFromRef(ref string) (string, error) {
	if !strings.HasPrefix(ref, URLPrefix) {
		return "", fmt.Errorf("invalid upload ref %q", ref)
	}
	name := strings.TrimPrefix(ref, URLPrefix)
	if name == "" || name != path.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid upload ref %q", ref)
	}
	return name, nil
}
