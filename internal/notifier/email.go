package notifier

import (
	"context"

	"gopkg.in/gomail.v2"

	"cashmitra/config"
)

// EmailChannel gửi thông báo qua SMTP
type EmailChannel struct {
	dialer *gomail.Dialer
	from   string
}

// NewEmailChannel tạo EmailChannel từ cấu hình SMTP.
// Trả về nil khi SMTP_HOST chưa cấu hình (kênh email tắt).
// Trả về kiểu Channel để nil là nil interface thật sự, Dispatcher lọc được.
func NewEmailChannel(cfg *config.Configuration) Channel {
	if cfg.SMTPHost == "" {
		return nil
	}
	return &EmailChannel{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

// Name trả về tên kênh
func (e *EmailChannel) Name() string {
	return "email"
}

// Send gửi message qua email. Message không có địa chỉ nhận thì bỏ qua.
func (e *EmailChannel) Send(ctx context.Context, msg Message) error {
	if msg.To == "" {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetHeader("From", e.from)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)

	return e.dialer.DialAndSend(m)
}
