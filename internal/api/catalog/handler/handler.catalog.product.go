// Package cataloghdl chứa HTTP handler cho domain catalog.
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
	"cashmitra/internal/formstate"
)

// ProductHandler xử lý các request liên quan đến sản phẩm thu mua
type ProductHandler struct {
	*basehdl.BaseHandler[catalogmodels.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput]
	ProductService *catalogsvc.ProductService
}

// NewProductHandler tạo mới ProductHandler
func NewProductHandler() (*ProductHandler, error) {
	service, err := catalogsvc.NewProductService()
	if err != nil {
		return nil, fmt.Errorf("failed to create product service: %v", err)
	}

	hdl := &ProductHandler{ProductService: service}
	hdl.BaseHandler = basehdl.NewBaseHandler[catalogmodels.Product, catalogdto.ProductCreateInput, catalogdto.ProductUpdateInput](service)
	hdl.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields: []string{},
		AllowedOperators: []string{
			"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists",
		},
		MaxFields: 10,
	})
	return hdl, nil
}

// HandleTemplate trả về skeleton mặc định của form sản phẩm
func (h *ProductHandler) HandleTemplate(c fiber.Ctx) error {
	h.HandleResponse(c, h.ProductService.Template(), nil)
	return nil
}

// HandleEditForm trả về bản ghi sản phẩm đã reconcile lên template để mở form sửa
func (h *ProductHandler) HandleEditForm(c fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
	if err != nil {
		h.HandleResponse(c, nil, common.ErrInvalidInput.WithMessage("ID sản phẩm không hợp lệ"))
		return nil
	}
	data, err := h.ProductService.EditForm(context.Background(), id)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleUpdateField cập nhật một trường theo dot-path
func (h *ProductHandler) HandleUpdateField(c fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
	if err != nil {
		h.HandleResponse(c, nil, common.ErrInvalidInput.WithMessage("ID sản phẩm không hợp lệ"))
		return nil
	}

	input := new(catalogdto.ProductUpdateFieldInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	data, err := h.ProductService.UpdateField(context.Background(), id, input.Path, input.Value)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleSubmit nhận cây form sản phẩm, normalize và lưu (insert hoặc update theo trường id)
func (h *ProductHandler) HandleSubmit(c fiber.Ctx) error {
	form := formstate.State{}
	if err := h.ParseRequestBody(c, &form); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	data, err := h.ProductService.Submit(context.Background(), form)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleDuplicate nhân bản một sản phẩm về trạng thái draft
func (h *ProductHandler) HandleDuplicate(c fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
	if err != nil {
		h.HandleResponse(c, nil, common.ErrInvalidInput.WithMessage("ID sản phẩm không hợp lệ"))
		return nil
	}
	data, err := h.ProductService.Duplicate(context.Background(), id)
	h.HandleResponse(c, data, err)
	return nil
}

// HandleUpdateStatus đổi trạng thái vòng đời của sản phẩm
func (h *ProductHandler) HandleUpdateStatus(c fiber.Ctx) error {
	id, err := primitive.ObjectIDFromHex(h.GetIDFromContext(c))
	if err != nil {
		h.HandleResponse(c, nil, common.ErrInvalidInput.WithMessage("ID sản phẩm không hợp lệ"))
		return nil
	}

	input := new(catalogdto.ProductStatusInput)
	if err := h.ParseRequestBody(c, input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if err := h.ValidateInput(input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	data, err := h.ProductService.UpdateStatus(context.Background(), id, input.Status)
	h.HandleResponse(c, data, err)
	return nil
}
