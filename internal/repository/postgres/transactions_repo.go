package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/campuspay/smartcard-backend/internal/models"
	repo "github.com/campuspay/smartcard-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type transactionsRepo struct{ pool *pgxpool.Pool }

const txnColumns = `id, order_id, payment_id, student_id, vendor_id, amount_paise, type, status,
       description, student_balance_paise, vendor_balance_paise, formatted_date, created_at, completed_at`

func scanTxn(row pgx.Row) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(&t.ID, &t.OrderID, &t.PaymentID, &t.StudentID, &t.VendorID, &t.AmountPaise,
		&t.Type, &t.Status, &t.Description, &t.StudentBalancePaise, &t.VendorBalancePaise,
		&t.FormattedDate, &t.CreatedAt, &t.CompletedAt)
	return t, err
}

func (r *transactionsRepo) Create(ctx context.Context, txn models.Transaction) (models.Transaction, error) {
	if txn.ID == "" {
		txn.ID = uuid.NewString()
	}
	return scanTxn(r.pool.QueryRow(ctx,
		`INSERT INTO transactions (id, order_id, payment_id, student_id, vendor_id, amount_paise, type, status,
		                           description, student_balance_paise, vendor_balance_paise, formatted_date, created_at, completed_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		 RETURNING `+txnColumns,
		txn.ID, txn.OrderID, txn.PaymentID, txn.StudentID, txn.VendorID, txn.AmountPaise, txn.Type, txn.Status,
		txn.Description, txn.StudentBalancePaise, txn.VendorBalancePaise, txn.FormattedDate, txn.CreatedAt, txn.CompletedAt,
	))
}

func (r *transactionsRepo) GetByOrderID(ctx context.Context, orderID string) (models.Transaction, error) {
	t, err := scanTxn(r.pool.QueryRow(ctx,
		`SELECT `+txnColumns+` FROM transactions WHERE order_id=$1`, orderID))
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Transaction{}, repo.ErrNotFound
	}
	return t, err
}

func (r *transactionsRepo) ListByStudent(ctx context.Context, studentID string) ([]models.Transaction, error) {
	return r.list(ctx,
		`SELECT `+txnColumns+` FROM transactions WHERE student_id=$1 ORDER BY created_at DESC`, studentID)
}

func (r *transactionsRepo) ListByVendor(ctx context.Context, vendorID string) ([]models.Transaction, error) {
	return r.list(ctx,
		`SELECT `+txnColumns+` FROM transactions WHERE vendor_id=$1`, vendorID)
}

func (r *transactionsRepo) list(ctx context.Context, query, key string) ([]models.Transaction, error) {
	rows, err := r.pool.Query(ctx, query, key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Transaction
	for rows.Next() {
		t, err := scanTxn(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *transactionsRepo) SettleRecharge(ctx context.Context, orderID, paymentID, studentID, vendorID string, completedAt time.Time, formattedDate string) (repo.RechargeSettlement, error) {
	var out repo.RechargeSettlement
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		var amount int64
		var status models.TransactionStatus
		err := tx.QueryRow(ctx,
			`SELECT amount_paise, status FROM transactions WHERE order_id=$1 FOR UPDATE`, orderID,
		).Scan(&amount, &status)
		if errors.Is(err, pgx.ErrNoRows) {
			return repo.ErrNotFound
		}
		if err != nil {
			return err
		}
		if status != models.TxnPending {
			return repo.ErrAlreadySettled
		}

		if err := tx.QueryRow(ctx,
			`UPDATE students SET wallet_balance_paise = wallet_balance_paise + $2, updated_at=now()
			  WHERE student_id=$1 RETURNING wallet_balance_paise`,
			studentID, amount,
		).Scan(&out.WalletBalancePaise); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return repo.ErrNotFound
			}
			return err
		}

		if err := tx.QueryRow(ctx,
			`UPDATE vendors SET balance_paise = balance_paise + $2, updated_at=now()
			  WHERE vendor_id=$1 RETURNING balance_paise`,
			vendorID, amount,
		).Scan(&out.VendorBalancePaise); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return repo.ErrNotFound
			}
			return err
		}

		t, err := scanTxn(tx.QueryRow(ctx,
			`UPDATE transactions
			    SET status=$2, payment_id=$3, completed_at=$4, formatted_date=$5
			  WHERE order_id=$1 AND status=$6
			  RETURNING `+txnColumns,
			orderID, models.TxnCompleted, paymentID, completedAt, formattedDate, models.TxnPending,
		))
		if err != nil {
			return err
		}
		out.Transaction = t
		return nil
	})
	return out, err
}

func (r *transactionsRepo) RecordPurchase(ctx context.Context, p repo.Purchase) (repo.PurchaseResult, error) {
	var out repo.PurchaseResult
	err := withTx(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx,
			`UPDATE students SET balance_paise = balance_paise - $2, updated_at=now()
			  WHERE student_id=$1 AND balance_paise >= $2
			  RETURNING balance_paise`,
			p.StudentID, p.AmountPaise,
		).Scan(&out.StudentBalancePaise)
		if errors.Is(err, pgx.ErrNoRows) {
			return repo.ErrInsufficientStudentBalance
		}
		if err != nil {
			return err
		}

		err = tx.QueryRow(ctx,
			`UPDATE vendors SET balance_paise = balance_paise - $2, updated_at=now()
			  WHERE vendor_id=$1 AND balance_paise >= $2
			  RETURNING balance_paise`,
			p.VendorID, p.AmountPaise,
		).Scan(&out.VendorBalancePaise)
		if errors.Is(err, pgx.ErrNoRows) {
			return repo.ErrInsufficientVendorBalance
		}
		if err != nil {
			return err
		}

		id := p.ID
		if id == "" {
			id = uuid.NewString()
		}
		t, err := scanTxn(tx.QueryRow(ctx,
			`INSERT INTO transactions (id, student_id, vendor_id, amount_paise, type, status,
			                           description, student_balance_paise, vendor_balance_paise, formatted_date, created_at, completed_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$11)
			 RETURNING `+txnColumns,
			id, p.StudentID, p.VendorID, p.AmountPaise, models.TxnPurchase, models.TxnCompleted,
			p.Description, out.StudentBalancePaise, out.VendorBalancePaise, p.FormattedDate, p.Now,
		))
		if err != nil {
			return err
		}
		out.Transaction = t
		return nil
	})
	return out, err
}
