package services

// ServiceContainer aggregates every service for dependency injection
// into the handler layer.
type ServiceContainer struct {
	ProfileService      ProfileService
	DiscoveryService    DiscoveryService
	SwipeService        SwipeService
	MatchService        MatchService
	MessageService      MessageService
	ModerationService   ModerationService
	PhotoService        PhotoService
	VerificationService VerificationService
	InterestService     InterestService
}
