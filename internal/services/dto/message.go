package dto

// SendMessageRequest is the body for POST /api/messages.
type SendMessageRequest struct {
	MatchID string `json:"match_id" validate:"required,uuid"`
	Content string `json:"content" validate:"required,max=4000"`
	Type    string `json:"type" validate:"omitempty,oneof=text image"`
}
