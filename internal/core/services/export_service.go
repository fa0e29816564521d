package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SscSPs/expense_tracker/internal/core/calendar"
	"github.com/SscSPs/expense_tracker/internal/core/domain"
	portsrepo "github.com/SscSPs/expense_tracker/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/SscSPs/expense_tracker/internal/utils"
	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

const exportSheet = "Transactions"

var exportHeadings = []any{"Date", "Type", "Category", "Amount", "Currency", "Account", "Description", "Note"}

type exportService struct {
	BaseService
	transactionRepo portsrepo.TransactionReader
	fontPath        string
	now             func() time.Time
}

// NewExportService creates the spreadsheet and PDF exporter. fontPath names
// an optional TTF used for non-Latin text in PDFs.
func NewExportService(repo portsrepo.TransactionReader, fontPath string) portssvc.ExportService {
	return &exportService{
		transactionRepo: repo,
		fontPath:        fontPath,
		now:             time.Now,
	}
}

var _ portssvc.ExportService = (*exportService)(nil)

// exportTotals accumulates per-currency income and expense.
type exportTotals struct {
	currencies []string
	income     map[string]decimal.Decimal
	expense    map[string]decimal.Decimal
}

func newExportTotals(txns []domain.Transaction) exportTotals {
	t := exportTotals{income: map[string]decimal.Decimal{}, expense: map[string]decimal.Decimal{}}
	seen := map[string]bool{}
	for _, txn := range txns {
		if !seen[txn.Currency] {
			seen[txn.Currency] = true
			t.currencies = append(t.currencies, txn.Currency)
		}
		if txn.Type == domain.Income {
			t.income[txn.Currency] = t.income[txn.Currency].Add(txn.Amount)
		} else {
			t.expense[txn.Currency] = t.expense[txn.Currency].Add(txn.Amount)
		}
	}
	return t
}

func (s *exportService) load(ctx context.Context, params dto.ExportParams) ([]domain.Transaction, error) {
	filter, err := transactionFilter(dto.ListTransactionsParams{
		Type:      params.Type,
		StartDate: params.StartDate,
		EndDate:   params.EndDate,
	})
	if err != nil {
		return nil, err
	}
	filter.Sort = domain.SortDateAsc

	txns, _, err := s.transactionRepo.ListTransactions(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to load transactions for export")
		return nil, fmt.Errorf("failed to load transactions: %w", err)
	}
	return txns, nil
}

func categoryName(txn domain.Transaction) string {
	if txn.Category == nil {
		return ""
	}
	return txn.Category.Name
}

func (s *exportService) ExportExcel(ctx context.Context, params dto.ExportParams, w io.Writer) error {
	txns, err := s.load(ctx, params)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return fmt.Errorf("failed to prepare sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	if err := f.SetSheetRow(exportSheet, "A1", &exportHeadings); err != nil {
		return fmt.Errorf("failed to write headings: %w", err)
	}
	_ = f.SetCellStyle(exportSheet, "A1", "H1", bold)
	_ = f.SetColWidth(exportSheet, "A", "B", 12)
	_ = f.SetColWidth(exportSheet, "C", "F", 16)
	_ = f.SetColWidth(exportSheet, "G", "H", 32)

	row := 2
	for _, txn := range txns {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		values := []any{
			txn.Date.Format(calendar.Layout),
			string(txn.Type),
			categoryName(txn),
			txn.Amount.InexactFloat64(),
			txn.Currency,
			string(txn.Account),
			txn.Description,
			txn.Note,
		}
		if err := f.SetSheetRow(exportSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row, err)
		}
		row++
	}

	totals := newExportTotals(txns)
	row++
	for _, cur := range totals.currencies {
		for _, line := range []struct {
			label  string
			amount decimal.Decimal
		}{
			{"Total income", totals.income[cur]},
			{"Total expense", totals.expense[cur]},
			{"Balance", totals.income[cur].Sub(totals.expense[cur])},
		} {
			labelCell, _ := excelize.CoordinatesToCellName(3, row)
			values := []any{line.label, line.amount.InexactFloat64(), cur}
			if err := f.SetSheetRow(exportSheet, labelCell, &values); err != nil {
				return fmt.Errorf("failed to write totals: %w", err)
			}
			_ = f.SetCellStyle(exportSheet, labelCell, labelCell, bold)
			row++
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write spreadsheet: %w", err)
	}
	s.LogInfo(ctx, "Spreadsheet exported", slog.Int("rows", len(txns)))
	return nil
}

func (s *exportService) ExportPDF(ctx context.Context, params dto.ExportParams, w io.Writer) error {
	txns, err := s.load(ctx, params)
	if err != nil {
		return err
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	family := "Helvetica"
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	if s.fontPath != "" {
		pdf.AddUTF8Font("body", "", s.fontPath)
		pdf.AddUTF8Font("body", "B", s.fontPath)
		family = "body"
		tr = func(s string) string { return s }
	}
	pdf.SetTitle("Transactions", true)
	pdf.AddPage()

	pdf.SetFont(family, "B", 16)
	pdf.CellFormat(0, 10, tr("Transactions report"), "", 1, "L", false, 0, "")
	pdf.SetFont(family, "", 10)
	period := "All dates"
	if params.StartDate != "" || params.EndDate != "" {
		period = fmt.Sprintf("%s to %s", params.StartDate, params.EndDate)
	}
	pdf.CellFormat(0, 6, tr("Period: "+period), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 6, tr("Generated: "+s.now().Format(time.RFC3339)), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	totals := newExportTotals(txns)
	pdf.SetFont(family, "B", 11)
	pdf.CellFormat(0, 7, tr("Summary"), "", 1, "L", false, 0, "")
	pdf.SetFont(family, "", 10)
	for _, cur := range totals.currencies {
		line := fmt.Sprintf("Income %s   Expense %s   Balance %s",
			utils.FormatAmount(totals.income[cur], cur),
			utils.FormatAmount(totals.expense[cur], cur),
			utils.FormatAmount(totals.income[cur].Sub(totals.expense[cur]), cur))
		pdf.CellFormat(0, 6, tr(line), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	widths := []float64{24, 20, 45, 40, 22, 100}
	headings := []string{"Date", "Type", "Category", "Amount", "Account", "Description"}
	pdf.SetFont(family, "B", 10)
	pdf.SetFillColor(230, 230, 240)
	for i, h := range headings {
		pdf.CellFormat(widths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont(family, "", 9)
	for _, txn := range txns {
		cells := []string{
			txn.Date.Format(calendar.Layout),
			string(txn.Type),
			categoryName(txn),
			utils.FormatAmount(txn.Amount, txn.Currency),
			string(txn.Account),
			txn.Description,
		}
		for i, c := range cells {
			align := "L"
			if i == 3 {
				align = "R"
			}
			pdf.CellFormat(widths[i], 6, tr(c), "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("failed to render pdf: %w", err)
	}
	s.LogInfo(ctx, "PDF exported", slog.Int("rows", len(txns)))
	return nil
}
