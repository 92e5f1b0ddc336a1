package services

// ServiceContainer groups all business services for wiring.
type ServiceContainer struct {
	AuthService AuthService
	UserService UserService
	AdService   AdService
}
