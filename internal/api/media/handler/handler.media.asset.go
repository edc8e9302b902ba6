// Package mediahdl chứa HTTP handler cho domain media.
package mediahdl

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "cashmitra/internal/api/base/handler"
	mediamodels "cashmitra/internal/api/media/models"
	mediasvc "cashmitra/internal/api/media/service"
	"cashmitra/internal/common"
	"cashmitra/internal/logger"
)

// Số file tối đa trong một batch upload
const maxBatchFiles = 20

// MediaHandler xử lý upload/xóa file media. Asset chỉ đọc qua CRUD,
// ghi đi qua các route upload/delete chuyên biệt.
type MediaHandler struct {
	*basehdl.BaseHandler[mediamodels.Asset, mediamodels.Asset, mediamodels.Asset]
	MediaService *mediasvc.MediaService
}

// NewMediaHandler tạo mới MediaHandler
func NewMediaHandler() (*MediaHandler, error) {
	service, err := mediasvc.NewMediaService()
	if err != nil {
		return nil, fmt.Errorf("failed to create media service: %v", err)
	}

	hdl := &MediaHandler{MediaService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[mediamodels.Asset, mediamodels.Asset, mediamodels.Asset](service)
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields: []string{},
		AllowedOperators: []string{
			"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists",
		},
		MaxFields: 10,
	})
	return hdl, nil
}

// HandleUpload upload một file (multipart field "file", query "kind" tùy chọn)
func (h *MediaHandler) HandleUpload(c fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil {
		h.HandleResponse(c, nil, common.ErrRequiredField.WithMessage("Thiếu file upload (field \"file\")"))
		return nil
	}

	data, err := h.MediaService.Upload(context.Background(), file, c.Query("kind"))
	h.HandleResponse(c, data, err)
	return nil
}

// HandleUploadBatch upload nhiều file (multipart field "files"),
// trả kết quả theo từng file
func (h *MediaHandler) HandleUploadBatch(c fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		h.HandleResponse(c, nil, common.ErrInvalidInput.WithMessage("Body multipart không hợp lệ"))
		return nil
	}

	files := form.File["files"]
	if len(files) == 0 {
		h.HandleResponse(c, nil, common.ErrRequiredField.WithMessage("Thiếu file upload (field \"files\")"))
		return nil
	}
	if len(files) > maxBatchFiles {
		h.HandleResponse(c, nil, common.ErrInvalidInput.WithMessage("Tối đa %d file mỗi batch", maxBatchFiles))
		return nil
	}

	results := h.MediaService.UploadBatch(context.Background(), files, c.Query("kind"))
	h.HandleResponse(c, results, nil)
	return nil
}

// HandleDelete xóa file và Asset theo publicId
func (h *MediaHandler) HandleDelete(c fiber.Ctx) error {
	publicID := c.Params("publicId")
	if publicID == "" {
		h.HandleResponse(c, nil, common.ErrRequiredField.WithMessage("Thiếu publicId"))
		return nil
	}

	err := h.MediaService.Delete(context.Background(), publicID)
	if err == nil {
		logger.LogAdminAction(c, "media_delete", "media", publicID, nil)
	}
	h.HandleResponse(c, map[string]interface{}{"publicId": publicID}, err)
	return nil
}
