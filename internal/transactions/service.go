// Package transactions holds the ledger business logic between the HTTP
// layer and the repository.
package transactions

import (
	"context"
	"log/slog"

	"github.com/pfa-labs/finance-tracker/internal/entity"
	"github.com/pfa-labs/finance-tracker/internal/repository"
)

type Service struct {
	repo   repository.TransactionRepository
	logger *slog.Logger
}

func NewService(repo repository.TransactionRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Create validates the raw JSON body and persists a new transaction.
func (s *Service) Create(ctx context.Context, userID int64, raw []byte) (*entity.Transaction, error) {
	p, err := decodeAndValidate(raw, createSchema)
	if err != nil {
		return nil, err
	}
	t := &entity.Transaction{
		UserID:   userID,
		Type:     *p.Type,
		Amount:   *p.Amount,
		Category: *p.Category,
		Date:     *p.Date,
		Note:     p.Note,
	}
	created, err := s.repo.Create(ctx, t)
	if err != nil {
		return nil, err
	}
	s.logger.Info("transaction created", "user_id", userID, "transaction_id", created.ID, "type", created.Type)
	return created, nil
}

// Update applies a validated partial payload over the stored transaction.
func (s *Service) Update(ctx context.Context, userID, id int64, raw []byte) (*entity.Transaction, error) {
	p, err := decodeAndValidate(raw, updateSchema)
	if err != nil {
		return nil, err
	}
	existing, err := s.repo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if p.Type != nil {
		existing.Type = *p.Type
	}
	if p.Amount != nil {
		existing.Amount = *p.Amount
	}
	if p.Category != nil {
		existing.Category = *p.Category
	}
	if p.Date != nil {
		existing.Date = *p.Date
	}
	if p.Note != nil {
		existing.Note = p.Note
	}
	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}
	s.logger.Info("transaction updated", "user_id", userID, "transaction_id", id)
	return updated, nil
}

func (s *Service) Get(ctx context.Context, userID, id int64) (*entity.Transaction, error) {
	return s.repo.GetByID(ctx, userID, id)
}

func (s *Service) List(ctx context.Context, userID int64) ([]*entity.Transaction, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, userID, id int64) error {
	if err := s.repo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.logger.Info("transaction deleted", "user_id", userID, "transaction_id", id)
	return nil
}

func (s *Service) SummaryByCategory(ctx context.Context, userID int64, r repository.DateRange) ([]entity.CategorySummary, error) {
	return s.repo.SummaryByCategory(ctx, userID, r)
}

func (s *Service) SummaryByDate(ctx context.Context, userID int64, r repository.DateRange) ([]entity.DateSummary, error) {
	return s.repo.SummaryByDate(ctx, userID, r)
}
