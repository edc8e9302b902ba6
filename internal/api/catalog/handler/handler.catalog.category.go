package cataloghdl

import (
	"fmt"

	basehdl "cashmitra/internal/api/base/handler"
	catalogdto "cashmitra/internal/api/catalog/dto"
	catalogmodels "cashmitra/internal/api/catalog/models"
	catalogsvc "cashmitra/internal/api/catalog/service"
)

// CategoryHandler xử lý các request liên quan đến danh mục sản phẩm (CRUD)
type CategoryHandler struct {
	basehdl.BaseHandler[catalogmodels.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput]
}

// NewCategoryHandler tạo mới CategoryHandler
func NewCategoryHandler() (*CategoryHandler, error) {
	service, err := catalogsvc.NewCategoryService()
	if err != nil {
		return nil, fmt.Errorf("failed to create category service: %v", err)
	}

	baseHandler := basehdl.NewBaseHandler[catalogmodels.Category, catalogdto.CategoryCreateInput, catalogdto.CategoryUpdateInput](service)
	h := &CategoryHandler{
		BaseHandler: *baseHandler,
	}
	h.SetFilterOptions(basehdl.FilterOptions{
		DeniedFields: []string{},
		AllowedOperators: []string{
			"$eq", "$gt", "$gte", "$lt", "$lte", "$in", "$nin", "$exists",
		},
		MaxFields: 10,
	})
	return h, nil
}
