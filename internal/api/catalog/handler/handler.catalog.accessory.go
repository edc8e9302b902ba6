package cataloghdl

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "cashmitra/internal/api/base/handler"
	catalogdto "cashmitra/internal/api/catalog/dto"
	catalogmodels "cashmitra/internal/api/catalog/models"
	catalogsvc "cashmitra/internal/api/catalog/service"
	"cashmitra/internal/common"
	"cashmitra/internal/logger"
)

// AccessoryHandler xử lý các request liên quan đến phụ kiện, gồm các thao tác bulk
type AccessoryHandler struct {
	*basehdl.BaseHandler[catalogmodels.Accessory, catalogdto.AccessoryCreateInput, catalogdto.AccessoryUpdateInput]
	AccessoryService *catalogsvc.AccessoryService
}

// NewAccessoryHandler tạo mới AccessoryHandler
func NewAccessoryHandler() (*AccessoryHandler, error) {
	service, err := catalogsvc.NewAccessoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create accessory service: %v", err)
	}

	hdl := &AccessoryHandler{AccessoryService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[catalogmodels.Accessory, catalogdto.AccessoryCreateInput, catalogdto.AccessoryUpdateInput](service)
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields: []string{},
		AllowedOperators: []string{
			"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists",
		},
		MaxFields: 10,
	})
	return hdl, nil
}

// HandleBulkInsert tạo nhiều phụ kiện trong một request
func (h *AccessoryHandler) HandleBulkInsert(c fiber.Ctx) error {
	input := new(catalogdto.AccessoryBulkInsertInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	items := make([]catalogmodels.Accessory, 0, len(input.Items))
	for _, item := range input.Items {
		status := item.Status
		if status == "" {
			status = catalogmodels.AccessoryStatusActive
		}
		items = append(items, catalogmodels.Accessory{
			Name:        item.Name,
			Brand:       item.Brand,
			CategoryID:  item.CategoryID,
			Description: item.Description,
			Price:       item.Price,
			Stock:       item.Stock,
			Status:      status,
			Images:      item.Images,
		})
	}

	data, err := h.AccessoryService.BulkInsert(context.Background(), items)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleBulkUpdateStatus đổi trạng thái hàng loạt theo danh sách ID
func (h *AccessoryHandler) HandleBulkUpdateStatus(c fiber.Ctx) error {
	input := new(catalogdto.AccessoryBulkStatusInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	ids, err := parseObjectIDs(input.IDs)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	count, err := h.AccessoryService.BulkUpdateStatus(context.Background(), ids, input.Status)
	h.HandleResponse(c, map[string]interface{}{"matched": len(ids), "modified": count}, err)
	return nil
}

// HandleBulkDelete xóa hàng loạt theo danh sách ID
func (h *AccessoryHandler) HandleBulkDelete(c fiber.Ctx) error {
	input := new(catalogdto.AccessoryBulkDeleteInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	ids, err := parseObjectIDs(input.IDs)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	count, err := h.AccessoryService.BulkDelete(context.Background(), ids)
	if err == nil {
		logger.LogAdminAction(c, "accessory_bulk_delete", "accessory", "", map[string]interface{}{
			"ids":     input.IDs,
			"deleted": count,
		})
	}
	h.HandleResponse(c, map[string]interface{}{"deleted": count}, err)
	return nil
}

// parseObjectIDs chuyển danh sách hex string sang ObjectID, lỗi nếu có phần tử không hợp lệ
func parseObjectIDs(hexIDs []string) ([]primitive.ObjectID, error) {
	ids := make([]primitive.ObjectID, 0, len(hexIDs))
	for _, hex := range hexIDs {
		id, err := primitive.ObjectIDFromHex(hex)
		if err != nil {
			return nil, common.ErrInvalidInput.WithMessage("ID không hợp lệ: %s", hex)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
