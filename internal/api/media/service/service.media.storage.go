package mediasvc

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Storage trừu tượng hóa nơi lưu file media. Hiện có bản local disk;
// thay bằng object storage chỉ cần implement lại interface này.
type Storage interface {
	// Save ghi nội dung file dưới tên lưu trữ đã cho, trả về URL public
	Save(ctx context.Context, storedName string, r io.Reader) (string, error)
	// Delete xóa file theo tên lưu trữ; file không tồn tại không phải lỗi
	Delete(ctx context.Context, storedName string) error
}

// LocalStorage lưu file trên đĩa, phục vụ qua route tĩnh /uploads.
type LocalStorage struct {
	dir     string // Thư mục gốc chứa file
	baseURL string // URL gốc để build link public
}

// NewLocalStorage tạo LocalStorage và bảo đảm thư mục tồn tại
func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create media dir %s: %w", dir, err)
	}
	return &LocalStorage{
		dir:     dir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// Save ghi file qua file tạm rồi rename để không bao giờ phục vụ file ghi dở
func (s *LocalStorage) Save(ctx context.Context, storedName string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	target := filepath.Join(s.dir, filepath.Base(storedName))
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("write upload: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("close upload: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("finalize upload: %w", err)
	}

	return s.baseURL + "/uploads/" + filepath.Base(storedName), nil
}

// Delete xóa file; bỏ qua nếu đã không còn trên đĩa
func (s *LocalStorage) Delete(ctx context.Context, storedName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(s.dir, filepath.Base(storedName)))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("delete upload: %w", err)
	}
	return nil
}
