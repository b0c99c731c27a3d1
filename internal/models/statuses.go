package models

// SwipeAction is a one-directional decision by one profile on another.
type SwipeAction string

const (
	SwipeActionLike SwipeAction = "like"
	SwipeActionPass SwipeAction = "pass"
)

// VerificationStatus of a profile (mirrors the provider's enum).
const (
	VerificationStatusUnverified = "unverified"
	VerificationStatusPending    = "pending"
	VerificationStatusVerified   = "verified"
)

// Verification document review states.
const (
	VerificationPending  = "pending"
	VerificationApproved = "approved"
	VerificationRejected = "rejected"
)

// Report review states.
const (
	ReportStatusPending  = "pending"
	ReportStatusReviewed = "reviewed"
)

// MessageTypeText is the default message payload type.
const MessageTypeText = "text"
