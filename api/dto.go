/*
dto.go - Request/response data structures

All request bodies are validated with go-playground/validator before they
reach the store. Date and month fields are re-checked there against the
canonical layouts so malformed strings fail at the HTTP boundary instead of
deep inside a statistics pass.
*/
package api

import (
	"github.com/emsdesk/hr-engine/auth"
	"github.com/emsdesk/hr-engine/hr"
)

// =============================================================================
// REQUESTS
// =============================================================================

// LoginRequest picks a demo identity: either a role or a specific seeded
// employee id. EmployeeID wins when both are present.
type LoginRequest struct {
	Role       string `json:"role" validate:"omitempty,oneof=owner team_lead employee"`
	EmployeeID string `json:"employeeId" validate:"omitempty"`
}

// ClockRequest covers both clock-in and clock-out. Empty employeeId means
// the caller; empty date/time default to today/now in the store.
type ClockRequest struct {
	EmployeeID string `json:"employeeId" validate:"omitempty"`
	Date       string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Time       string `json:"time" validate:"omitempty,datetime=15:04"`
}

type ApplyLeaveRequest struct {
	EmployeeID string `json:"employeeId" validate:"omitempty"`
	From       string `json:"from" validate:"required,datetime=2006-01-02"`
	To         string `json:"to" validate:"required,datetime=2006-01-02"`
	Type       string `json:"type" validate:"required,oneof=casual sick earned unpaid"`
	Reason     string `json:"reason" validate:"required"`
}

type ReviewLeaveRequest struct {
	Comments string `json:"comments" validate:"omitempty,max=500"`
}

type AddHolidayRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Name string `json:"name" validate:"required"`
	Type string `json:"type" validate:"required,oneof=holiday restricted"`
}

// =============================================================================
// RESPONSES
// =============================================================================

type LoginResponse struct {
	Token     string         `json:"token"`
	Principal auth.Principal `json:"principal"`
}

// EmployeeView decorates an employee with its team name for display.
type EmployeeView struct {
	hr.Employee
	TeamName string `json:"teamName"`
}

// StatsResponse pairs a month breakdown with its subject.
type StatsResponse struct {
	EmployeeID string        `json:"employeeId"`
	Month      string        `json:"month"`
	Stats      hr.MonthStats `json:"stats"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
