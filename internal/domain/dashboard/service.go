package dashboard

import "context"

//go:generate mockgen -destination=mock/service_mock.go -package=mock . DashboardService

// DashboardService defines the interface for dashboard operations
type DashboardService interface {
	// GetStats returns the acting user's dashboard, querying in parallel
	GetStats(ctx context.Context) (*StatsResponse, error)
}
