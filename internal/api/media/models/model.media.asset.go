package mediamodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các loại asset
const (
	AssetKindProduct   = "product"   // Ảnh sản phẩm
	AssetKindDocument  = "document"  // Giấy tờ KYC của đối tác
	AssetKindAccessory = "accessory" // Ảnh phụ kiện
	AssetKindOther     = "other"
)

// Asset là một file media đã upload (ảnh sản phẩm, giấy tờ KYC...).
// PublicID là UUID dùng trong URL và để xóa file.
type Asset struct {
	ID       primitive.ObjectID `json:"id" bson:"_id,omitempty"`                  // ID của asset
	PublicID string             `json:"publicId" bson:"publicId" index:"unique"`  // UUID công khai của file
	FileName string             `json:"fileName" bson:"fileName"`                 // Tên file gốc khi upload
	MimeType string             `json:"mimeType" bson:"mimeType"`                 // Loại MIME đã kiểm tra
	Size     int64              `json:"size" bson:"size"`                         // Kích thước (byte)
	URL      string             `json:"url" bson:"url"`                           // URL public của file
	Kind     string             `json:"kind" bson:"kind" default:"other"`         // Mục đích sử dụng

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian upload
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
