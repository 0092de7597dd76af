package dashboard

import "github.com/universitio/hr-backend-go/internal/domain/employee"

// DashboardResponse is the admin landing-page aggregate: headcount plus
// visa severity counts, with the employees whose visas demand attention
// listed out.
type DashboardResponse struct {
	TotalEmployees  int `json:"total_employees"`
	ActiveEmployees int `json:"active_employees"`

	VisaExpired  int `json:"visa_expired"`
	VisaCritical int `json:"visa_critical"`
	VisaWarning  int `json:"visa_warning"`
	VisaValid    int `json:"visa_valid"`

	CriticalEmployees []employee.EmployeeResponse `json:"critical_employees"`

	PendingLeaveRequests int `json:"pending_leave_requests"`
}
