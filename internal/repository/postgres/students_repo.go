package postgres

import (
	"context"
	"errors"

	"github.com/campuspay/smartcard-backend/internal/models"
	repo "github.com/campuspay/smartcard-backend/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type studentsRepo struct{ pool *pgxpool.Pool }

func (r *studentsRepo) GetByID(ctx context.Context, studentID string) (models.Student, error) {
	var s models.Student
	err := r.pool.QueryRow(ctx,
		`SELECT student_id, name, balance_paise, wallet_balance_paise, pin_hash, parent_phone, parent_name, created_at, updated_at
		   FROM students
		  WHERE student_id=$1`,
		studentID,
	).Scan(&s.StudentID, &s.Name, &s.BalancePaise, &s.WalletBalancePaise, &s.PINHash, &s.ParentPhone, &s.ParentName, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return models.Student{}, repo.ErrNotFound
	}
	return s, err
}

func (r *studentsRepo) UpdateParentPhone(ctx context.Context, studentID, phone string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE students SET parent_phone=$2, updated_at=now() WHERE student_id=$1`,
		studentID, phone,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return repo.ErrNotFound
	}
	return nil
}
