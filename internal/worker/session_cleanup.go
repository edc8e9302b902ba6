package worker

import (
	"context"
	"time"

	sessionsvc "cashmitra/internal/api/session/service"
	"cashmitra/internal/logger"
)

// SessionCleanupWorker worker dọn các phiên bán hàng quá hạn.
// Chạy định kỳ: tìm phiên active/extended đã quá expiresAt và chuyển sang expired.
type SessionCleanupWorker struct {
	sessionService *sessionsvc.SessionService
	interval       time.Duration // Khoảng thời gian giữa các lần chạy
}

// NewSessionCleanupWorker tạo mới SessionCleanupWorker.
// Tham số:
//   - interval: Khoảng thời gian giữa các lần chạy (mặc định: 1 phút)
func NewSessionCleanupWorker(interval time.Duration) (*SessionCleanupWorker, error) {
	sessionService, err := sessionsvc.NewSessionService()
	if err != nil {
		return nil, err
	}

	if interval < 10*time.Second {
		interval = 1 * time.Minute
	}

	return &SessionCleanupWorker{
		sessionService: sessionService,
		interval:       interval,
	}, nil
}

// Start chạy worker trong vòng lặp cho tới khi ctx bị hủy.
// Panic trong một lần chạy được recover để không ảnh hưởng các lần sau.
func (w *SessionCleanupWorker) Start(ctx context.Context) {
	log := logger.GetAppLogger()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithFields(map[string]interface{}{
		"interval": w.interval.String(),
	}).Info("🕒 [SESSION_CLEANUP] Starting Session Cleanup Worker...")

	for {
		select {
		case <-ctx.Done():
			log.Info("🕒 [SESSION_CLEANUP] Session Cleanup Worker stopped")
			return
		case <-ticker.C:
			func() {
				defer func() {
					if r := recover(); r != nil {
						log.WithFields(map[string]interface{}{
							"panic": r,
						}).Error("🕒 [SESSION_CLEANUP] Panic khi dọn phiên quá hạn, sẽ tiếp tục ở lần chạy tiếp theo")
					}
				}()

				expiredCount, err := w.sessionService.ExpireOverdue(ctx)
				if err != nil {
					log.WithError(err).Error("🕒 [SESSION_CLEANUP] Lỗi khi dọn phiên quá hạn")
					return
				}

				if expiredCount > 0 {
					log.WithFields(map[string]interface{}{
						"expiredCount": expiredCount,
					}).Info("🕒 [SESSION_CLEANUP] Đã chuyển phiên quá hạn sang expired")
				}
				// expiredCount = 0 thì không log (giảm log noise)
			}()
		}
	}
}
