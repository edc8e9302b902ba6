package catalogmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các trạng thái vòng đời của Product
const (
	ProductStatusDraft    = "draft"
	ProductStatusActive   = "active"
	ProductStatusArchived = "archived"
)

// Product là bản ghi sản phẩm thu mua (điện thoại, laptop) trong catalog.
// Các nhóm lồng nhau (pricing, productDetails, ...) giữ dạng cây tự do để
// form admin chỉnh sửa qua dot-path; cấu trúc chuẩn do form template định nghĩa.
type Product struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`                  // ID của sản phẩm
	Name        string             `json:"name" bson:"name" index:"text"`            // Tên sản phẩm
	Slug        string             `json:"slug" bson:"slug" index:"unique"`          // Slug định danh trên URL
	Brand       string             `json:"brand" bson:"brand" index:"single:1"`      // Thương hiệu
	CategoryID  string             `json:"categoryId" bson:"categoryId"`             // ID danh mục (hex string, form giữ dạng chuỗi)
	Description string             `json:"description" bson:"description"`           // Mô tả sản phẩm
	Status      string             `json:"status" bson:"status" default:"draft"`     // Trạng thái: draft | active | archived
	IsActive    bool               `json:"isActive" bson:"isActive" default:"true"`  // Hiển thị trên trang khách
	SortOrder   int64              `json:"sortOrder" bson:"sortOrder"`               // Thứ tự hiển thị

	Pricing        map[string]interface{} `json:"pricing" bson:"pricing"`               // Nhóm giá: originalPrice, discountedPrice, discount, emi
	ProductDetails map[string]interface{} `json:"productDetails" bson:"productDetails"` // Nhóm thông số kỹ thuật: camera, display, memory, battery, ...
	Availability   map[string]interface{} `json:"availability" bson:"availability"`     // Nhóm tồn kho: inStock, quantity, estimatedDelivery, location
	PaymentOptions map[string]interface{} `json:"paymentOptions" bson:"paymentOptions"` // Nhóm thanh toán: cod, online, emi, exchange, emiPlans, methods
	TrustMetrics   map[string]interface{} `json:"trustMetrics" bson:"trustMetrics"`     // Nhóm cam kết: warranty, returnPolicy, authenticity
	Images         map[string]interface{} `json:"images" bson:"images"`                 // Ảnh sau normalize: {main, gallery, thumbnail}

	ConditionOptions []interface{} `json:"conditionOptions" bson:"conditionOptions"` // Lựa chọn tình trạng máy: label, price, description
	Variants         []interface{} `json:"variants" bson:"variants"`                 // Biến thể: storage, color, price, stock
	AddOns           []interface{} `json:"addOns" bson:"addOns"`                     // Dịch vụ kèm theo: name, cost, description
	Offers           []interface{} `json:"offers" bson:"offers"`                     // Ưu đãi: title, discount, validUntil
	TopSpecs         []interface{} `json:"topSpecs" bson:"topSpecs"`                 // Thông số nổi bật (chuỗi thuần)
	RelatedProducts  []interface{} `json:"relatedProducts" bson:"relatedProducts"`   // ID sản phẩm liên quan
	Deductions       []interface{} `json:"deductions" bson:"deductions"`             // Mức trừ giá theo câu trả lời questionnaire

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}

// Category là danh mục sản phẩm thu mua (Điện thoại, Laptop, Tablet...).
type Category struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`                 // ID của danh mục
	Name        string             `json:"name" bson:"name" index:"text"`           // Tên danh mục
	Slug        string             `json:"slug" bson:"slug" index:"unique"`         // Slug định danh, duy nhất
	Description string             `json:"description" bson:"description"`          // Mô tả danh mục
	Icon        string             `json:"icon" bson:"icon"`                        // URL icon hiển thị
	IsActive    bool               `json:"isActive" bson:"isActive" default:"true"` // Trạng thái hoạt động
	SortOrder   int64              `json:"sortOrder" bson:"sortOrder"`              // Thứ tự hiển thị

	CreatedAt int64 `json:"createdAt" bson:"createdAt"` // Thời gian tạo
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"` // Thời gian cập nhật
}
