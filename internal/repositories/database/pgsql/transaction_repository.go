package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/SscSPs/expense_tracker/internal/apperrors"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/SscSPs/expense_tracker/internal/models"
	"github.com/SscSPs/expense_tracker/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const transactionSelect = `
	SELECT t.transaction_id, t.type, t.amount, t.category_id, t.description, t.date,
	       t.account, t.currency, t.tags, t.note, t.is_recurring, t.recurring_schedule_id,
	       t.created_at, t.last_updated_at,
	       c.name AS category_name, c.icon AS category_icon, c.color AS category_color, c.type AS category_type
	FROM transactions t
	LEFT JOIN categories c ON c.category_id = t.category_id`

const insertTransactionQuery = `
	INSERT INTO transactions (
		transaction_id, type, amount, category_id, description, date, account, currency,
		tags, note, is_recurring, recurring_schedule_id, created_at, last_updated_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
`

// transactionOrder maps the allow-listed sort keys to ORDER BY clauses.
var transactionOrder = map[domain.TransactionSort]string{
	domain.SortDateDesc:   "t.date DESC, t.created_at DESC",
	domain.SortDateAsc:    "t.date ASC, t.created_at ASC",
	domain.SortAmountDesc: "t.amount DESC, t.date DESC",
	domain.SortAmountAsc:  "t.amount ASC, t.date DESC",
}

type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryWithTx {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransactionRepositoryWithTx = (*PgxTransactionRepository)(nil)

func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	rows, err := r.Pool.Query(ctx, transactionSelect+` WHERE t.transaction_id = $1;`, transactionID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query transaction", err)
	}
	m, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("transaction", transactionID)
		}
		return nil, apperrors.NewAppError(500, "failed to scan transaction", err)
	}

	txn := mapping.ToDomainTransaction(m)
	return &txn, nil
}

func transactionConditions(filter domain.TransactionFilter) *conditions {
	c := &conditions{}
	if filter.Type != nil {
		c.add("t.type = %s", string(*filter.Type))
	}
	if filter.CategoryID != nil {
		c.add("t.category_id = %s", *filter.CategoryID)
	}
	if filter.Account != nil {
		c.add("t.account = %s", string(*filter.Account))
	}
	if filter.Currency != nil {
		c.add("t.currency = %s", *filter.Currency)
	}
	if filter.StartDate != nil {
		c.add("t.date >= %s", *filter.StartDate)
	}
	if filter.EndDate != nil {
		c.add("t.date <= %s", *filter.EndDate)
	}
	return c
}

func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, int, error) {
	c := transactionConditions(filter)

	var total int
	countQuery := `SELECT COUNT(*) FROM transactions t` + c.where()
	if err := r.Pool.QueryRow(ctx, countQuery, c.args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count transactions", err)
	}

	order, ok := transactionOrder[filter.Sort]
	if !ok {
		order = transactionOrder[domain.SortDateDesc]
	}
	query := transactionSelect + c.where() + " ORDER BY " + order + ", t.transaction_id"
	if filter.Limit > 0 {
		query += " LIMIT " + c.next(filter.Limit) + " OFFSET " + c.next(filter.Offset)
	}

	rows, err := r.Pool.Query(ctx, query, c.args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to list transactions", err)
	}
	ms, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Transaction])
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to scan transactions", err)
	}
	return mapping.ToDomainTransactionSlice(ms), total, nil
}

func (r *PgxTransactionRepository) SumExpenses(ctx context.Context, categoryID, currency string, from, to time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM transactions
		WHERE type = 'expense' AND category_id = $1 AND currency = $2 AND date >= $3 AND date <= $4;
	`
	var spent decimal.Decimal
	if err := r.Pool.QueryRow(ctx, query, categoryID, currency, from, to).Scan(&spent); err != nil {
		return decimal.Zero, apperrors.NewAppError(500, "failed to sum expenses for category "+categoryID, err)
	}
	return spent, nil
}

func transactionArgs(m models.Transaction) []any {
	return []any{
		m.TransactionID, m.Type, m.Amount, m.CategoryID, m.Description, m.Date, m.Account, m.Currency,
		m.Tags, m.Note, m.IsRecurring, m.RecurringScheduleID, m.CreatedAt, m.LastUpdatedAt,
	}
}

func (r *PgxTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	if _, err := r.Pool.Exec(ctx, insertTransactionQuery, transactionArgs(m)...); err != nil {
		return apperrors.NewAppError(500, "failed to save transaction "+m.TransactionID, err)
	}
	return nil
}

// SaveTransactionTx inserts the transaction on the caller's database transaction.
func (r *PgxTransactionRepository) SaveTransactionTx(ctx context.Context, tx pgx.Tx, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	if _, err := tx.Exec(ctx, insertTransactionQuery, transactionArgs(m)...); err != nil {
		return apperrors.NewAppError(500, "failed to save transaction "+m.TransactionID, err)
	}
	return nil
}

func (r *PgxTransactionRepository) UpdateTransaction(ctx context.Context, txn domain.Transaction) error {
	m := mapping.ToModelTransaction(txn)
	query := `
		UPDATE transactions
		SET type = $2, amount = $3, category_id = $4, description = $5, date = $6, account = $7,
		    currency = $8, tags = $9, note = $10, last_updated_at = $11
		WHERE transaction_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.TransactionID, m.Type, m.Amount, m.CategoryID, m.Description, m.Date, m.Account,
		m.Currency, m.Tags, m.Note, m.LastUpdatedAt,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to update transaction "+m.TransactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction", m.TransactionID)
	}
	return nil
}

func (r *PgxTransactionRepository) DeleteTransaction(ctx context.Context, transactionID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM transactions WHERE transaction_id = $1;`, transactionID)
	if err != nil {
		return apperrors.NewAppError(500, "failed to delete transaction "+transactionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("transaction", transactionID)
	}
	return nil
}
