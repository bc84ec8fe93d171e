package services

import (
	"context"
	"encoding/json"

	"github.com/campuspay/smartcard-backend/internal/models"
	"github.com/campuspay/smartcard-backend/internal/money"
	"github.com/campuspay/smartcard-backend/internal/qr"
	repo "github.com/campuspay/smartcard-backend/internal/repository"
)

type StudentService struct {
	students repo.Students
	txns     repo.Transactions
}

func NewStudentService(s repo.Students, t repo.Transactions) *StudentService {
	return &StudentService{students: s, txns: t}
}

func (s *StudentService) Get(ctx context.Context, studentID string) (models.Student, error) {
	st, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return models.Student{}, mapNotFound(err, ErrStudentNotFound)
	}
	return st, nil
}

// TransactionSummary is the display shape of a student's transaction: dates
// pre-formatted, amounts as currency-prefixed strings.
type TransactionSummary struct {
	ID          string `json:"_id"`
	Date        string `json:"date"`
	StudentID   string `json:"student_id"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	Status      string `json:"status"`
}

// Transactions lists a student's transactions newest first.
func (s *StudentService) Transactions(ctx context.Context, studentID string) ([]TransactionSummary, error) {
	if _, err := s.students.GetByID(ctx, studentID); err != nil {
		return nil, mapNotFound(err, ErrStudentNotFound)
	}
	txns, err := s.txns.ListByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	out := make([]TransactionSummary, 0, len(txns))
	for _, t := range txns {
		desc := "Transaction"
		if t.Description != nil && *t.Description != "" {
			desc = *t.Description
		}
		out = append(out, TransactionSummary{
			ID:          t.ID,
			Date:        t.FormattedDate,
			StudentID:   t.StudentID,
			Amount:      money.Format(t.AmountPaise),
			Description: desc,
			Status:      string(t.Status),
		})
	}
	return out, nil
}

type StudentQR struct {
	QRCode       string
	StudentName  string
	BalancePaise int64
}

// QR encodes the bare student identifier for vendors to scan at checkout.
func (s *StudentService) QR(ctx context.Context, studentID string) (StudentQR, error) {
	st, err := s.students.GetByID(ctx, studentID)
	if err != nil {
		return StudentQR{}, mapNotFound(err, ErrStudentNotFound)
	}
	payload, err := json.Marshal(map[string]string{"student_id": studentID})
	if err != nil {
		return StudentQR{}, err
	}
	uri, err := qr.DataURI(string(payload))
	if err != nil {
		return StudentQR{}, err
	}
	return StudentQR{QRCode: uri, StudentName: st.Name, BalancePaise: st.BalancePaise}, nil
}

func (s *StudentService) UpdateParentPhone(ctx context.Context, studentID, phone string) error {
	if err := s.students.UpdateParentPhone(ctx, studentID, phone); err != nil {
		return mapNotFound(err, ErrStudentNotFound)
	}
	return nil
}
