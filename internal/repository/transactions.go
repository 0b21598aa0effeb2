package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/pfa-labs/finance-tracker/internal/common"
	"github.com/pfa-labs/finance-tracker/internal/entity"
)

// DateRange filters aggregation queries; nil means unbounded. Dates are
// compared lexically, which is correct for the stored ISO layout.
type DateRange struct {
	From *string
	To   *string
}

// TransactionRepository is the behavior the HTTP layer depends on.
type TransactionRepository interface {
	Create(ctx context.Context, t *entity.Transaction) (*entity.Transaction, error)
	GetByID(ctx context.Context, userID, id int64) (*entity.Transaction, error)
	ListByUser(ctx context.Context, userID int64) ([]*entity.Transaction, error)
	Update(ctx context.Context, t *entity.Transaction) (*entity.Transaction, error)
	Delete(ctx context.Context, userID, id int64) error
	SummaryByCategory(ctx context.Context, userID int64, r DateRange) ([]entity.CategorySummary, error)
	SummaryByDate(ctx context.Context, userID int64, r DateRange) ([]entity.DateSummary, error)
}

type SQLTransactionRepository struct {
	db *DB
}

func NewTransactionRepository(db *DB) *SQLTransactionRepository {
	return &SQLTransactionRepository{db: db}
}

const txColumns = `id, user_id, type, amount, category, date, note, created_at, updated_at`

func (r *SQLTransactionRepository) Create(ctx context.Context, t *entity.Transaction) (*entity.Transaction, error) {
	now := nowRFC3339()
	t.CreatedAt = now
	t.UpdatedAt = now
	q := r.db.Rebind(`INSERT INTO transactions (user_id, type, amount, category, date, note, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?) RETURNING id`)
	err := r.db.QueryRowContext(ctx, q,
		t.UserID, t.Type, t.Amount, t.Category, t.Date, t.Note, t.CreatedAt, t.UpdatedAt,
	).Scan(&t.ID)
	if err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	return t, nil
}

func (r *SQLTransactionRepository) GetByID(ctx context.Context, userID, id int64) (*entity.Transaction, error) {
	q := r.db.Rebind(`SELECT ` + txColumns + ` FROM transactions WHERE id = ? AND user_id = ?`)
	t, err := scanTransaction(r.db.QueryRowContext(ctx, q, id, userID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return t, nil
}

func (r *SQLTransactionRepository) ListByUser(ctx context.Context, userID int64) ([]*entity.Transaction, error) {
	q := r.db.Rebind(`SELECT ` + txColumns + ` FROM transactions WHERE user_id = ? ORDER BY date DESC, id DESC`)
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()

	out := make([]*entity.Transaction, 0)
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *SQLTransactionRepository) Update(ctx context.Context, t *entity.Transaction) (*entity.Transaction, error) {
	t.UpdatedAt = nowRFC3339()
	q := r.db.Rebind(`UPDATE transactions SET type = ?, amount = ?, category = ?, date = ?, note = ?, updated_at = ?
		WHERE id = ? AND user_id = ?`)
	res, err := r.db.ExecContext(ctx, q, t.Type, t.Amount, t.Category, t.Date, t.Note, t.UpdatedAt, t.ID, t.UserID)
	if err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return nil, common.ErrNotFound
	}
	return t, nil
}

func (r *SQLTransactionRepository) Delete(ctx context.Context, userID, id int64) error {
	q := r.db.Rebind(`DELETE FROM transactions WHERE id = ? AND user_id = ?`)
	res, err := r.db.ExecContext(ctx, q, id, userID)
	if err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *SQLTransactionRepository) SummaryByCategory(ctx context.Context, userID int64, rng DateRange) ([]entity.CategorySummary, error) {
	q := `SELECT category, ROUND(SUM(amount), 2) AS total FROM transactions WHERE type = 'expense' AND user_id = ?`
	args := []any{userID}
	q, args = appendRange(q, args, rng)
	q += ` GROUP BY category ORDER BY total DESC`

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(q), args...)
	if err != nil {
		return nil, fmt.Errorf("summary by category: %w", err)
	}
	defer rows.Close()

	out := make([]entity.CategorySummary, 0)
	for rows.Next() {
		var s entity.CategorySummary
		var category sql.NullString
		if err := rows.Scan(&category, &s.Total); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		s.Category = category.String
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *SQLTransactionRepository) SummaryByDate(ctx context.Context, userID int64, rng DateRange) ([]entity.DateSummary, error) {
	q := `SELECT date,
		SUM(CASE WHEN type = 'expense' THEN amount ELSE 0 END) AS expenses,
		SUM(CASE WHEN type = 'income' THEN amount ELSE 0 END) AS income
		FROM transactions WHERE user_id = ?`
	args := []any{userID}
	q, args = appendRange(q, args, rng)
	q += ` GROUP BY date ORDER BY date ASC`

	rows, err := r.db.QueryContext(ctx, r.db.Rebind(q), args...)
	if err != nil {
		return nil, fmt.Errorf("summary by date: %w", err)
	}
	defer rows.Close()

	out := make([]entity.DateSummary, 0)
	for rows.Next() {
		var s entity.DateSummary
		var date sql.NullString
		if err := rows.Scan(&date, &s.Expenses, &s.Income); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		s.Date = date.String
		out = append(out, s)
	}
	return out, rows.Err()
}

func appendRange(q string, args []any, rng DateRange) (string, []any) {
	if rng.From != nil {
		q += ` AND date >= ?`
		args = append(args, *rng.From)
	}
	if rng.To != nil {
		q += ` AND date <= ?`
		args = append(args, *rng.To)
	}
	return q, args
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTransaction(row rowScanner) (*entity.Transaction, error) {
	var t entity.Transaction
	var category, date sql.NullString
	err := row.Scan(&t.ID, &t.UserID, &t.Type, &t.Amount, &category, &date, &t.Note, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.Category = category.String
	t.Date = date.String
	return &t, nil
}
