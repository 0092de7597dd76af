package postgresql

import (
	"context"
	"fmt"

	"github.com/universitio/hr-backend-go/internal/domain/dashboard"
	"github.com/universitio/hr-backend-go/internal/domain/leave"
	"github.com/universitio/hr-backend-go/internal/pkg/database"
)

type dashboardRepository struct {
	db database.Querier
}

func NewDashboardRepository(db database.Querier) dashboard.DashboardRepository {
	return &dashboardRepository{db: db}
}

// CountPendingLeaveRequests implements dashboard.DashboardRepository.
func (r *dashboardRepository) CountPendingLeaveRequests(ctx context.Context) (int, error) {
	q := database.QuerierFromContext(ctx, r.db)

	var count int
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM leave_requests WHERE status = $1`,
		leave.LeaveRequestStatusPending,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending leave requests: %w", err)
	}

	return count, nil
}
