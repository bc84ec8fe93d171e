package notify

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/campuspay/smartcard-backend/internal/worker"
)

type mockProvider struct {
	mu     sync.Mutex
	starts []string

	StartVerificationFunc func(ctx context.Context, phone string) error
	CheckVerificationFunc func(ctx context.Context, phone, code, serviceSID string) (bool, error)
}

func (m *mockProvider) StartVerification(ctx context.Context, phone string) error {
	m.mu.Lock()
	m.starts = append(m.starts, phone)
	m.mu.Unlock()
	if m.StartVerificationFunc != nil {
		return m.StartVerificationFunc(ctx, phone)
	}
	return nil
}

func (m *mockProvider) CheckVerification(ctx context.Context, phone, code, serviceSID string) (bool, error) {
	if m.CheckVerificationFunc != nil {
		return m.CheckVerificationFunc(ctx, phone, code, serviceSID)
	}
	return false, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSendPaymentNotification(t *testing.T) {
	p := &mockProvider{}
	b := NewBridge(p, nil, discardLogger())

	if !b.SendPaymentNotification(context.Background(), "+919999999999", "Payment Alert: test") {
		t.Fatal("expected success")
	}
	if len(p.starts) != 1 || p.starts[0] != "+919999999999" {
		t.Fatalf("provider not called as expected: %v", p.starts)
	}

	p.StartVerificationFunc = func(context.Context, string) error { return errors.New("provider down") }
	if b.SendPaymentNotification(context.Background(), "+919999999999", "Payment Alert: test") {
		t.Fatal("provider failure must report false")
	}
}

func TestDispatchRunsOnPool(t *testing.T) {
	done := make(chan struct{})
	p := &mockProvider{StartVerificationFunc: func(context.Context, string) error {
		close(done)
		return nil
	}}
	wp := worker.NewPool(1)
	defer wp.Stop()
	b := NewBridge(p, wp, discardLogger())

	b.Dispatch("+911234567890", "Payment Alert: queued")
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("dispatched notification never ran")
	}
}

func TestVerifyOtp(t *testing.T) {
	p := &mockProvider{}
	b := NewBridge(p, nil, discardLogger())

	p.CheckVerificationFunc = func(_ context.Context, phone, code, sid string) (bool, error) {
		if phone != "+911234567890" || code != "123456" || sid != "VA123" {
			t.Fatalf("arguments not forwarded: %s %s %s", phone, code, sid)
		}
		return true, nil
	}
	if !b.VerifyOtp(context.Background(), "+911234567890", "123456", "VA123") {
		t.Fatal("approved check must return true")
	}

	p.CheckVerificationFunc = func(context.Context, string, string, string) (bool, error) {
		return false, nil
	}
	if b.VerifyOtp(context.Background(), "+911234567890", "000000", "VA123") {
		t.Fatal("pending check must return false")
	}

	p.CheckVerificationFunc = func(context.Context, string, string, string) (bool, error) {
		return false, errors.New("timeout")
	}
	if b.VerifyOtp(context.Background(), "+911234567890", "123456", "VA123") {
		t.Fatal("provider error must collapse to false")
	}
}
