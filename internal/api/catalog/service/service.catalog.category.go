package catalogsvc

import (
	"fmt"

	basesvc "cashmitra/internal/api/base/service"
	catalogmodels "cashmitra/internal/api/catalog/models"
	"cashmitra/internal/common"
	"cashmitra/internal/global"
)

// CategoryService là service quản lý danh mục sản phẩm (CRUD).
// Slug duy nhất được bảo đảm bởi unique index trên collection.
type CategoryService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Category]
}

// NewCategoryService tạo mới CategoryService
func NewCategoryService() (*CategoryService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Categories)
	if !exist {
		return nil, fmt.Errorf("failed to get categories collection: %v", common.ErrNotFound)
	}

	return &CategoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Category](collection),
	}, nil
}
