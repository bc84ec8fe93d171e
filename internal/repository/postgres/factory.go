package postgres

import (
	repo "github.com/campuspay/smartcard-backend/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repositories struct {
	Students     repo.Students
	Vendors      repo.Vendors
	Transactions repo.Transactions
}

func NewRepositories(pool *pgxpool.Pool) Repositories {
	return Repositories{
		Students:     &studentsRepo{pool},
		Vendors:      &vendorsRepo{pool},
		Transactions: &transactionsRepo{pool},
	}
}
