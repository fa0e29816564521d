package dto

// ExportParams defines query parameters for the spreadsheet and PDF exports.
type ExportParams struct {
	Type      string `form:"type" binding:"omitempty,oneof=income expense"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}
