package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng
// Nó chứa thông tin cơ sở dữ liệu và các dịch vụ bên ngoài
type Configuration struct {
	InitMode              bool   `env:"INITMODE" envDefault:"false"`               // Chế độ khởi tạo dữ liệu mẫu
	Address               string `env:"ADDRESS" envDefault:":8080"`                // Địa chỉ server
	JwtSecret             string `env:"JWT_SECRET,required"`                       // Bí mật JWT cho token admin
	MongoDB_ConnectionURI string `env:"MONGODB_CONNECTION_URI,required"`           // URL kết nối cơ sở dữ liệu
	MongoDB_DBName        string `env:"MONGODB_DBNAME,required"`                   // Tên cơ sở dữ liệu chính
	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials
	RateLimit_Max         int    `env:"RATE_LIMIT_MAX" envDefault:"100"`           // Số request tối đa trong window (0 = disable rate limit)
	RateLimit_Window      int    `env:"RATE_LIMIT_WINDOW" envDefault:"60"`         // Thời gian window (giây)
	RateLimit_Enabled     bool   `env:"RATE_LIMIT_ENABLED" envDefault:"true"`      // Bật/tắt rate limiting

	// Media upload
	MediaStorageDir string `env:"MEDIA_STORAGE_DIR" envDefault:"./uploads"`            // Thư mục lưu file upload
	MediaBaseURL    string `env:"MEDIA_BASE_URL" envDefault:"http://localhost:8080"`   // URL gốc để build link public cho asset
	MediaMaxSizeMB  int    `env:"MEDIA_MAX_SIZE_MB" envDefault:"10"`                   // Kích thước file tối đa (MB)

	// SMTP cho thông báo đối tác (optional)
	SMTPHost     string `env:"SMTP_HOST"`                              // Địa chỉ SMTP server
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`             // Cổng SMTP
	SMTPUser     string `env:"SMTP_USER"`                              // Tài khoản SMTP
	SMTPPassword string `env:"SMTP_PASSWORD"`                          // Mật khẩu SMTP
	SMTPFrom     string `env:"SMTP_FROM" envDefault:"no-reply@cashmitra.local"` // Địa chỉ gửi

	// Webhook thông báo (optional - gửi sự kiện duyệt đối tác / gán đơn lấy hàng)
	NotifyWebhookURL string `env:"NOTIFY_WEBHOOK_URL"` // URL webhook nhận sự kiện (rỗng = tắt)

	// Phiên bán máy
	SessionTTLMinutes     int `env:"SESSION_TTL_MINUTES" envDefault:"30"`      // Thời gian sống mặc định của phiên bán máy
	SessionCleanupSeconds int `env:"SESSION_CLEANUP_SECONDS" envDefault:"60"`  // Chu kỳ worker dọn phiên hết hạn

	// Frontend URL
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"` // URL trang quản trị
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường
func getEnvPath() string {
	// Mặc định sử dụng môi trường development
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Tìm thư mục config
	currentDir, err := os.Getwd()
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Tìm thư mục config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			// Tìm thấy thư mục config/env
			envPath := filepath.Join(envDir, fmt.Sprintf("%s.env", env))
			return envPath
		}

		// Đi lên thư mục cha
		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig sẽ đọc dữ liệu cấu hình từ file env được cung cấp
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	err := godotenv.Load(envPath)
	if err != nil {
		// Sử dụng fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	err = env.Parse(&cfg)
	if err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
