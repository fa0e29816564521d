package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/expense_tracker/internal/core/ports/services"
	"github.com/SscSPs/expense_tracker/internal/dto"
	"github.com/gin-gonic/gin"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	pdfContentType  = "application/pdf"
)

// exportHandler streams transaction exports as file downloads.
type exportHandler struct {
	exportService portssvc.ExportService
}

func registerExportRoutes(rg *gin.RouterGroup, exportService portssvc.ExportService) {
	h := &exportHandler{exportService: exportService}

	export := rg.Group("/export")
	{
		export.GET("/excel", h.exportExcel)
		export.GET("/pdf", h.exportPDF)
	}
}

// exportExcel godoc
// @Summary Export transactions to Excel
// @Tags export
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param type query string false "income or expense"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /export/excel [get]
func (h *exportHandler) exportExcel(c *gin.Context) {
	var params dto.ExportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	// Rendered into memory first so a failure can still produce a JSON error.
	var buf bytes.Buffer
	if err := h.exportService.ExportExcel(c.Request.Context(), params, &buf); err != nil {
		respondError(c, err, "Failed to export spreadsheet")
		return
	}
	sendFile(c, buf.Bytes(), xlsxContentType, "xlsx")
}

// exportPDF godoc
// @Summary Export transactions to PDF
// @Tags export
// @Produce application/pdf
// @Param type query string false "income or expense"
// @Param startDate query string false "YYYY-MM-DD"
// @Param endDate query string false "YYYY-MM-DD"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /export/pdf [get]
func (h *exportHandler) exportPDF(c *gin.Context) {
	var params dto.ExportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	var buf bytes.Buffer
	if err := h.exportService.ExportPDF(c.Request.Context(), params, &buf); err != nil {
		respondError(c, err, "Failed to export PDF")
		return
	}
	sendFile(c, buf.Bytes(), pdfContentType, "pdf")
}

func sendFile(c *gin.Context, body []byte, contentType, ext string) {
	name := fmt.Sprintf("transactions-%s.%s", time.Now().Format("20060102"), ext)
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, name))
	c.Data(http.StatusOK, contentType, body)
}
