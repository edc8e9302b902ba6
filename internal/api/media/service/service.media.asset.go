// Package mediasvc chứa service upload/xóa file media và quản lý Asset.
package mediasvc

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	basesvc "cashmitra/internal/api/base/service"
	mediamodels "cashmitra/internal/api/media/models"
	"cashmitra/internal/common"
	"cashmitra/internal/global"
	"cashmitra/internal/utility"
)

// Số upload chạy song song tối đa trong một batch
const batchConcurrency = 4

// Các loại MIME được chấp nhận, ánh xạ sang phần mở rộng lưu trữ
var allowedMimeTypes = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"application/pdf": ".pdf", // Giấy tờ KYC
}

// UploadResult là kết quả upload một file trong batch
type UploadResult struct {
	FileName string             `json:"fileName"`        // Tên file gốc
	Asset    *mediamodels.Asset `json:"asset,omitempty"` // Asset đã tạo (nil nếu lỗi)
	Error    string             `json:"error,omitempty"` // Thông báo lỗi (rỗng nếu thành công)
}

// MediaService là service upload file media: kiểm tra loại/kích thước,
// lưu qua Storage và ghi Asset document.
type MediaService struct {
	*basesvc.BaseServiceMongoImpl[mediamodels.Asset]
	storage  Storage
	maxBytes int64
}

// NewMediaService tạo mới MediaService với LocalStorage từ cấu hình
func NewMediaService() (*MediaService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Assets)
	if !exist {
		return nil, fmt.Errorf("failed to get assets collection: %v", common.ErrNotFound)
	}

	cfg := global.MongoDB_ServerConfig
	storage, err := NewLocalStorage(cfg.MediaStorageDir, cfg.MediaBaseURL)
	if err != nil {
		return nil, err
	}

	return &MediaService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[mediamodels.Asset](collection),
		storage:              storage,
		maxBytes:             int64(cfg.MediaMaxSizeMB) * 1024 * 1024,
	}, nil
}

// Upload kiểm tra, lưu một file và ghi Asset document
func (s *MediaService) Upload(ctx context.Context, file *multipart.FileHeader, kind string) (mediamodels.Asset, error) {
	var zero mediamodels.Asset

	ext, err := s.validate(file)
	if err != nil {
		return zero, err
	}
	if kind == "" {
		kind = mediamodels.AssetKindOther
	}

	src, err := file.Open()
	if err != nil {
		return zero, common.ErrInvalidInput.WithMessage("Không đọc được file upload: %s", file.Filename)
	}
	defer src.Close()

	publicID := uuid.NewString()
	url, err := s.storage.Save(ctx, publicID+ext, src)
	if err != nil {
		return zero, common.ErrInvalidOperation.WithMessage("Lưu file thất bại: %v", err)
	}

	asset := mediamodels.Asset{
		PublicID: publicID,
		FileName: file.Filename,
		MimeType: file.Header.Get("Content-Type"),
		Size:     file.Size,
		URL:      url,
		Kind:     kind,
	}
	inserted, err := s.InsertOne(ctx, asset)
	if err != nil {
		// Không giữ file mồ côi khi ghi document thất bại
		_ = s.storage.Delete(ctx, publicID+ext)
		return zero, err
	}
	return inserted, nil
}

// UploadBatch upload nhiều file song song có giới hạn, trả kết quả theo
// từng file. File lỗi không làm hỏng các file còn lại.
func (s *MediaService) UploadBatch(ctx context.Context, files []*multipart.FileHeader, kind string) []UploadResult {
	results := make([]UploadResult, len(files))
	sem := make(chan struct{}, batchConcurrency)
	var wg sync.WaitGroup

	for i, file := range files {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, file *multipart.FileHeader) {
			defer wg.Done()
			defer func() { <-sem }()

			asset, err := s.Upload(ctx, file, kind)
			if err != nil {
				results[i] = UploadResult{FileName: file.Filename, Error: err.Error()}
				return
			}
			results[i] = UploadResult{FileName: file.Filename, Asset: &asset}
		}(i, file)
	}
	wg.Wait()
	return results
}

// Delete xóa file khỏi storage và xóa Asset document theo publicId
func (s *MediaService) Delete(ctx context.Context, publicID string) error {
	asset, err := s.FindOne(ctx, bson.M{"publicId": publicID}, nil)
	if err != nil {
		return err
	}

	storedName := publicID + filepath.Ext(asset.URL)
	if err := s.storage.Delete(ctx, storedName); err != nil {
		return common.ErrInvalidOperation.WithMessage("Xóa file thất bại: %v", err)
	}
	return s.DeleteById(ctx, asset.ID)
}

// validate kiểm tra kích thước và loại MIME, trả về phần mở rộng lưu trữ
func (s *MediaService) validate(file *multipart.FileHeader) (string, error) {
	if file.Size <= 0 {
		return "", common.ErrInvalidInput.WithMessage("File rỗng: %s", file.Filename)
	}
	if file.Size > s.maxBytes {
		return "", common.ErrInvalidInput.WithMessage("File %s (%s) vượt kích thước tối đa %s",
			file.Filename, utility.FormatBytes(uint64(file.Size)), utility.FormatBytes(uint64(s.maxBytes)))
	}

	mimeType := strings.TrimSpace(strings.Split(file.Header.Get("Content-Type"), ";")[0])
	ext, ok := allowedMimeTypes[mimeType]
	if !ok {
		return "", common.ErrInvalidFormat.WithMessage("Loại file không được hỗ trợ: %q", mimeType)
	}
	return ext, nil
}
