// Package export produces XLSX reports from a user's transactions.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/pfa-labs/finance-tracker/internal/entity"
	"github.com/pfa-labs/finance-tracker/internal/repository"
)

// Service is a tiny façade over the transaction repository that produces
// XLSX bytes for exports.
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

// ExportTransactionsXLSX returns an XLSX workbook (as bytes) with all of the
// user's transactions, newest first as the repository returns them.
func (s *Service) ExportTransactionsXLSX(ctx context.Context, userID int64) ([]byte, error) {
	start := time.Now()

	txs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Transactions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{"Date", "Type", "Category", "Amount", "Note"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, t := range txs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, t.Date)
		write(2, t.Type)
		write(3, t.Category)
		write(4, t.Amount)
		write(5, noteOrEmpty(t))
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 14)
	_ = f.SetColWidth(sheet, "B", "B", 10)
	_ = f.SetColWidth(sheet, "C", "C", 22)
	_ = f.SetColWidth(sheet, "D", "D", 14)
	_ = f.SetColWidth(sheet, "E", "E", 48)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"user_id", userID,
		"rows", len(txs),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func noteOrEmpty(t *entity.Transaction) string {
	if t.Note == nil {
		return ""
	}
	return *t.Note
}
