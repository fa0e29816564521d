package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// reportingRepository implements the ReportingRepository interface
type reportingRepository struct {
	BaseRepository
}

// newReportingRepository creates a new reporting repository
func newReportingRepository(db *pgxpool.Pool) portsrepo.ReportingRepository {
	return &reportingRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

var trendBuckets = map[domain.TrendPeriod]string{
	domain.TrendDaily:   "day",
	domain.TrendWeekly:  "week",
	domain.TrendMonthly: "month",
}

func reportConditions(filter domain.ReportFilter) *conditions {
	c := &conditions{}
	c.add("t.currency = %s", filter.Currency)
	if filter.Type != nil {
		c.add("t.type = %s", string(*filter.Type))
	}
	if filter.StartDate != nil {
		c.add("t.date >= %s", *filter.StartDate)
	}
	if filter.EndDate != nil {
		c.add("t.date <= %s", *filter.EndDate)
	}
	return c
}

// GetTotalsByType sums amounts per transaction type
func (r *reportingRepository) GetTotalsByType(ctx context.Context, filter domain.ReportFilter) (map[domain.TransactionType]decimal.Decimal, map[domain.TransactionType]int, error) {
	c := reportConditions(filter)
	query := `SELECT t.type, COALESCE(SUM(t.amount), 0), COUNT(*) FROM transactions t` + c.where() + ` GROUP BY t.type`

	rows, err := r.Pool.Query(ctx, query, c.args...)
	if err != nil {
		return nil, nil, fmt.Errorf("error querying totals by type: %w", err)
	}
	defer rows.Close()

	totals := map[domain.TransactionType]decimal.Decimal{}
	counts := map[domain.TransactionType]int{}
	for rows.Next() {
		var (
			txnType string
			total   decimal.Decimal
			count   int
		)
		if err := rows.Scan(&txnType, &total, &count); err != nil {
			return nil, nil, fmt.Errorf("error scanning totals row: %w", err)
		}
		totals[domain.TransactionType(txnType)] = total
		counts[domain.TransactionType(txnType)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating totals rows: %w", err)
	}
	return totals, counts, nil
}

// GetTotalsByCategory sums amounts per category, largest first
func (r *reportingRepository) GetTotalsByCategory(ctx context.Context, filter domain.ReportFilter) ([]domain.CategoryTotal, error) {
	c := reportConditions(filter)
	query := `
		SELECT t.category_id, COALESCE(c.name, ''), COALESCE(c.icon, ''), COALESCE(c.color, ''), t.type,
		       SUM(t.amount) AS total, COUNT(*)
		FROM transactions t
		LEFT JOIN categories c ON c.category_id = t.category_id` + c.where() + `
		GROUP BY t.category_id, c.name, c.icon, c.color, t.type
		ORDER BY total DESC, t.category_id`

	rows, err := r.Pool.Query(ctx, query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("error querying totals by category: %w", err)
	}
	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.CategoryTotal, error) {
		var ct domain.CategoryTotal
		var txnType string
		err := row.Scan(&ct.CategoryID, &ct.Name, &ct.Icon, &ct.Color, &txnType, &ct.Total, &ct.Count)
		ct.Type = domain.TransactionType(txnType)
		return ct, err
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning totals by category: %w", err)
	}
	return result, nil
}

// GetTrend buckets totals by date_trunc of the period and type
func (r *reportingRepository) GetTrend(ctx context.Context, filter domain.ReportFilter, period domain.TrendPeriod) ([]domain.TrendPoint, error) {
	bucket, ok := trendBuckets[period]
	if !ok {
		bucket = trendBuckets[domain.TrendDaily]
	}
	c := reportConditions(filter)
	unit := c.next(bucket)
	query := `
		SELECT date_trunc(` + unit + `, t.date::timestamp)::date AS bucket, t.type, SUM(t.amount)
		FROM transactions t` + c.where() + `
		GROUP BY bucket, t.type
		ORDER BY bucket, t.type`

	rows, err := r.Pool.Query(ctx, query, c.args...)
	if err != nil {
		return nil, fmt.Errorf("error querying trend: %w", err)
	}
	result, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.TrendPoint, error) {
		var p domain.TrendPoint
		var txnType string
		err := row.Scan(&p.PeriodStart, &txnType, &p.Total)
		p.Type = domain.TransactionType(txnType)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning trend: %w", err)
	}
	return result, nil
}
