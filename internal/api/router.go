package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/campuspay/smartcard-backend/internal/api/handlers"
	"github.com/campuspay/smartcard-backend/internal/api/httpx"
	"github.com/campuspay/smartcard-backend/internal/config"
	"github.com/campuspay/smartcard-backend/internal/metrics"
	"github.com/campuspay/smartcard-backend/internal/middleware"
)

type RouterDeps struct {
	Payments *handlers.PaymentHandler
	Students *handlers.StudentHandler
	Vendors  *handlers.VendorHandler
	OTP      *handlers.OTPHandler
}

func NewRouter(cfg config.Config, deps RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"message": "Smart Card Payment System API"})
	})
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", metrics.Handler())

	// payment flow
	r.Post("/create_recharge_order", deps.Payments.CreateRechargeOrder)
	r.Post("/verify_recharge_payment", deps.Payments.VerifyRechargePayment)
	r.Post("/process_student_payment", deps.Payments.ProcessStudentPayment)

	// students
	r.Get("/student/transactions/{student_id}", deps.Students.Transactions)
	r.Get("/student/{student_id}", deps.Students.Get)
	r.Get("/get_student_qr/{student_id}", deps.Students.QR)
	r.Post("/update_parent_phone", deps.Students.UpdateParentPhone)

	// vendors
	r.Get("/vendor/transactions/{vendor_id}", deps.Vendors.Transactions)
	r.Get("/vendor/{vendor_id}", deps.Vendors.Get)
	r.Get("/get_vendor_qr/{vendor_id}", deps.Vendors.QR)

	// otp
	r.Post("/verify_otp", deps.OTP.Verify)

	return r
}
