package employee

import "time"

// ========================================
// EMPLOYEE DTOs
// ========================================

type EmployeeResponse struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Position    string        `json:"position"`
	Department  string        `json:"department"`
	Nationality string        `json:"nationality"`
	Status      string        `json:"status"`
	JoinDate    string        `json:"join_date"`
	VisaExpiry  string        `json:"visa_expiry"`
	VisaTier    VisaTier      `json:"visa_tier"`
	VisaTime    VisaCountdown `json:"visa_time_remaining"`
	Phone       *string       `json:"phone,omitempty"`
	Email       *string       `json:"email,omitempty"`
	PhotoURL    *string       `json:"photo,omitempty"`
}

type ListEmployeesResponse struct {
	TotalCount        int                `json:"total_count"`
	CriticalVisaCount int                `json:"critical_visa_count"`
	ExpiredVisaCount  int                `json:"expired_visa_count"`
	Employees         []EmployeeResponse `json:"employees"`
}

// MapEmployeeToResponse converts an Employee entity to EmployeeResponse,
// classifying the visa against now.
func MapEmployeeToResponse(emp Employee, now time.Time) EmployeeResponse {
	return EmployeeResponse{
		ID:          emp.ID,
		Name:        emp.Name,
		Position:    emp.Position,
		Department:  emp.Department,
		Nationality: emp.Nationality,
		Status:      string(emp.Status),
		JoinDate:    emp.JoinDate.Format("2006-01-02"),
		VisaExpiry:  emp.VisaExpiry.Format("2006-01-02"),
		VisaTier:    ClassifyVisa(emp.VisaExpiry, now),
		VisaTime:    VisaTimeRemaining(emp.VisaExpiry, now),
		Phone:       emp.Phone,
		Email:       emp.Email,
		PhotoURL:    emp.PhotoURL,
	}
}
