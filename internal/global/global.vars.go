package global

import (
	"cashmitra/config"
	"cashmitra/internal/registry"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoDB_CollectionName chứa tên các collection trong MongoDB
type MongoDB_CollectionName struct {
	Products     string // Tên collection cho sản phẩm thu mua
	Categories   string // Tên collection cho danh mục sản phẩm
	Accessories  string // Tên collection cho phụ kiện
	Questions      string // Tên collection cho câu hỏi đánh giá tình trạng máy
	Questionnaires string // Tên collection cho bộ câu hỏi đánh giá
	Partners     string // Tên collection cho đối tác thu mua
	PickupOrders string // Tên collection cho đơn lấy hàng tận nơi
	SellSessions string // Tên collection cho phiên bán máy của khách
	Assets       string // Tên collection cho media đã upload
}

// Các biến toàn cục
var Validate *validator.Validate                  // Biến để xác thực dữ liệu
var MongoDB_Session *mongo.Client                 // Phiên kết nối tới MongoDB
var MongoDB_ServerConfig *config.Configuration    // Cấu hình của server
var MongoDB_ColNames = MongoDB_CollectionName{}   // Tên các collection

// Các Registry
var RegistryCollections = registry.NewRegistry[*mongo.Collection]() // Registry chứa các collections
var RegistryDatabase = registry.NewRegistry[*mongo.Database]()      // Registry chứa các databases
