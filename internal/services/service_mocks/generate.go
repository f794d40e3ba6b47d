package service_mocks

//go:generate mockgen -source=../interfaces.go -destination=service_mocks.go -package=service_mocks

// Mocks for the service interfaces. Regenerate after changing interfaces.go:
//   go generate ./internal/services/service_mocks
