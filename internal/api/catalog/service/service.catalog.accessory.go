package catalogsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "cashmitra/internal/api/base/service"
	catalogmodels "cashmitra/internal/api/catalog/models"
	"cashmitra/internal/common"
	"cashmitra/internal/global"
)

// AccessoryService là service quản lý phụ kiện, gồm các thao tác bulk
// (insert / update-status / delete hàng loạt) dưới dạng một batch duy nhất.
type AccessoryService struct {
	*basesvc.BaseServiceMongoImpl[catalogmodels.Accessory]
}

// NewAccessoryService tạo mới AccessoryService
func NewAccessoryService() (*AccessoryService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Accessories)
	if !exist {
		return nil, fmt.Errorf("failed to get accessories collection: %v", common.ErrNotFound)
	}

	return &AccessoryService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[catalogmodels.Accessory](collection),
	}, nil
}

// BulkInsert tạo nhiều phụ kiện trong một lần ghi
func (s *AccessoryService) BulkInsert(ctx context.Context, items []catalogmodels.Accessory) ([]catalogmodels.Accessory, error) {
	if len(items) == 0 {
		return []catalogmodels.Accessory{}, nil
	}
	return s.InsertMany(ctx, items)
}

// BulkUpdateStatus đổi trạng thái hàng loạt theo danh sách ID, trả về số bản ghi đã đổi
func (s *AccessoryService) BulkUpdateStatus(ctx context.Context, ids []primitive.ObjectID, status string) (int64, error) {
	if status != catalogmodels.AccessoryStatusActive && status != catalogmodels.AccessoryStatusInactive {
		return 0, common.ErrInvalidInput.WithMessage("Trạng thái phụ kiện không hợp lệ: %s", status)
	}
	if len(ids) == 0 {
		return 0, nil
	}
	filter := bson.M{"_id": bson.M{"$in": ids}}
	update := &basesvc.UpdateData{Set: map[string]interface{}{"status": status}}
	return s.UpdateMany(ctx, filter, update, nil)
}

// BulkDelete xóa hàng loạt theo danh sách ID, trả về số bản ghi đã xóa
func (s *AccessoryService) BulkDelete(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	return s.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
}
