package handlers

// AppHandlers aggregates every handler for route registration.
type AppHandlers struct {
	HealthHandler       *HealthHandler
	ProfileHandler      *ProfileHandler
	DiscoveryHandler    *DiscoveryHandler
	SwipeHandler        *SwipeHandler
	MatchHandler        *MatchHandler
	MessageHandler      *MessageHandler
	ModerationHandler   *ModerationHandler
	InterestHandler     *InterestHandler
	PhotoHandler        *PhotoHandler
	VerificationHandler *VerificationHandler
}
