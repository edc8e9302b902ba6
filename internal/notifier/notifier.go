// Package notifier gửi thông báo nghiệp vụ (duyệt hồ sơ đối tác, gán đơn
// lấy hàng) qua email và webhook. Notifier chạy ngoài request path: đăng ký
// vào event bus dữ liệu, gửi lỗi chỉ log chứ không fail thao tác gốc.
package notifier

import (
	"context"

	"cashmitra/internal/logger"
)

// Message là một thông báo cần gửi
type Message struct {
	Event   string                 // Loại sự kiện: partner_verified | pickup_assigned
	To      string                 // Địa chỉ nhận (email) — channel không dùng thì bỏ qua
	Subject string                 // Tiêu đề
	Body    string                 // Nội dung text
	Meta    map[string]interface{} // Dữ liệu kèm theo cho webhook
}

// Channel là một kênh gửi thông báo
type Channel interface {
	Name() string
	Send(ctx context.Context, msg Message) error
}

// Dispatcher fan-out một message ra mọi channel đã đăng ký
type Dispatcher struct {
	channels []Channel
}

// NewDispatcher tạo Dispatcher với danh sách channel (nil được bỏ qua)
func NewDispatcher(channels ...Channel) *Dispatcher {
	d := &Dispatcher{}
	for _, ch := range channels {
		if ch != nil {
			d.channels = append(d.channels, ch)
		}
	}
	return d
}

// Dispatch gửi message qua từng channel; lỗi từng kênh chỉ log
func (d *Dispatcher) Dispatch(ctx context.Context, msg Message) {
	log := logger.GetAppLogger()
	for _, ch := range d.channels {
		if err := ch.Send(ctx, msg); err != nil {
			log.WithError(err).WithFields(map[string]interface{}{
				"channel": ch.Name(),
				"event":   msg.Event,
			}).Warn("🔔 [NOTIFIER] Gửi thông báo thất bại")
			continue
		}
		log.WithFields(map[string]interface{}{
			"channel": ch.Name(),
			"event":   msg.Event,
		}).Info("🔔 [NOTIFIER] Đã gửi thông báo")
	}
}
