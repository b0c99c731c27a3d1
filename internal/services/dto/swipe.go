package dto

import "amora_backend/internal/models"

// SwipeRequest is the body for POST /api/swipe.
type SwipeRequest struct {
	SwipedID string `json:"swiped_id" validate:"required,uuid"`
	Action   string `json:"action" validate:"required,swipe_action"`
}

// SwipeResponse is the created swipe record plus the transient mutual
// match flag the client uses to show the "It's a match" screen.
type SwipeResponse struct {
	models.Swipe
	IsMatch bool          `json:"isMatch"`
	Match   *models.Match `json:"match,omitempty"`
}
