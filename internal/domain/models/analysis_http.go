package models

// Requests for the analysis HTTP endpoints. Defined in domain for consistency
// and reuse.

type AnalyzeRequest struct {
	Symbol string `param:"symbol" json:"symbol" validate:"required"`
}
