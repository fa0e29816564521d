package services

import (
	"context"
	"io"

	"github.com/SscSPs/expense_tracker/internal/dto"
)

// ExportService renders filtered transactions as downloadable files.
type ExportService interface {
	ExportExcel(ctx context.Context, params dto.ExportParams, w io.Writer) error
	ExportPDF(ctx context.Context, params dto.ExportParams, w io.Writer) error
}
