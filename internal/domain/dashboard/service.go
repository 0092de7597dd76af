package dashboard

import "context"

// DashboardService defines business logic for the admin dashboard summary
type DashboardService interface {
	// GetSummary computes headcount and visa severity aggregates
	GetSummary(ctx context.Context) (DashboardResponse, error)
}
