package postgres

import (
	"context"
	"errors"

	"github.com/campuspay/smartcard-backend/internal/models"
	repo "github.com/campuspay/smartcard-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type vendorsRepo struct{ pool *pgxpool.Pool }

func (r *vendorsRepo) GetByID(ctx context.Context, vendorID string) (models.Vendor, error) {
	var v models.Vendor
	err := r.pool.QueryRow(ctx,
		`SELECT vendor_id, name, upi_id, COALESCE(balance_paise, 0), created_at, updated_at
		   FROM vendors
		  WHERE vendor_id=$1`,
		vendorID,
	).Scan(&v.VendorID, &v.Name, &v.UPIID, &v.BalancePaise, &v.CreatedAt, &v.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Vendor{}, repo.ErrNotFound
	}
	return v, err
}
