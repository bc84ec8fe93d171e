package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/sony/gobreaker"
)

// Provider is the SMS/OTP service: it starts an out-of-band verification to a
// phone number and later checks the code the recipient received.
type Provider interface {
	StartVerification(ctx context.Context, phone string) error
	CheckVerification(ctx context.Context, phone, code, serviceSID string) (bool, error)
}

type twilioProvider struct {
	rest       *resty.Client
	breaker    *gobreaker.CircuitBreaker
	accountSID string
}

func NewTwilioProvider(baseURL, accountSID, authToken string) Provider {
	rest := resty.New().
		SetBaseURL(baseURL).
		SetBasicAuth(accountSID, authToken).
		SetTimeout(10 * time.Second).
		SetRetryCount(0)

	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "sms-provider",
		MaxRequests: 3,
		Interval:    15 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
	})

	return &twilioProvider{rest: rest, breaker: cb, accountSID: accountSID}
}

type serviceResp struct {
	SID string `json:"sid"`
}

type verificationResp struct {
	Status string `json:"status"`
}

func (p *twilioProvider) StartVerification(ctx context.Context, phone string) error {
	_, err := p.breaker.Execute(func() (interface{}, error) {
		var svc serviceResp
		resp, err := p.rest.R().
			SetContext(ctx).
			SetFormData(map[string]string{"FriendlyName": "Smart Card Payment System"}).
			SetResult(&svc).
			Post("/v2/Services")
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("create verify service: %s", resp.Status())
		}

		var v verificationResp
		resp, err = p.rest.R().
			SetContext(ctx).
			SetFormData(map[string]string{"To": phone, "Channel": "sms"}).
			SetResult(&v).
			Post("/v2/Services/" + svc.SID + "/Verifications")
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("send verification: %s", resp.Status())
		}
		return nil, nil
	})
	return err
}

func (p *twilioProvider) CheckVerification(ctx context.Context, phone, code, serviceSID string) (bool, error) {
	res, err := p.breaker.Execute(func() (interface{}, error) {
		var v verificationResp
		resp, err := p.rest.R().
			SetContext(ctx).
			SetFormData(map[string]string{"To": phone, "Code": code}).
			SetResult(&v).
			Post("/v2/Services/" + serviceSID + "/VerificationCheck")
		if err != nil {
			return nil, err
		}
		if resp.IsError() {
			return nil, fmt.Errorf("verification check: %s", resp.Status())
		}
		return v.Status, nil
	})
	if err != nil {
		return false, err
	}
	return res.(string) == "approved", nil
}
