package dto

// BlockRequest is the body for POST /api/block.
type BlockRequest struct {
	BlockedID string `json:"blocked_id" validate:"required,uuid"`
}

// ReportRequest is the body for POST /api/report.
type ReportRequest struct {
	ReportedID  string `json:"reported_id" validate:"required,uuid"`
	Reason      string `json:"reason" validate:"required,max=100"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}
