package catalogmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái của Accessory
const (
	AccessoryStatusActive   = "active"
	AccessoryStatusInactive = "inactive"
)

// Accessory là phụ kiện bán kèm (ốp lưng, sạc, tai nghe) trong catalog.
// Khác Product, phụ kiện là bản ghi phẳng và được quản lý hàng loạt (bulk).
type Accessory struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`                  // ID của phụ kiện
	Name        string             `json:"name" bson:"name" index:"text"`            // Tên phụ kiện
	Brand       string             `json:"brand" bson:"brand"`                       // Thương hiệu
	CategoryID  string             `json:"categoryId" bson:"categoryId"`             // ID danh mục
	Description string             `json:"description" bson:"description"`           // Mô tả
	Price       float64            `json:"price" bson:"price"`                       // Giá bán
	Stock       int64              `json:"stock" bson:"stock"`                       // Số lượng tồn kho
	Status      string             `json:"status" bson:"status" default:"active"`    // Trạng thái: active | inactive
	Images      []string           `json:"images" bson:"images"`                     // Danh sách URL ảnh

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
