/*
handlers.go - HTTP handlers for the HR core

PURPOSE:
  Exposes the record store and the derived computations over REST. Handles
  JSON (de)serialization, input validation, and the role/team authorization
  that the store itself deliberately does not perform.

ENDPOINTS:
  Auth:
    POST   /api/auth/login                 Demo login (role or employee id)

  Employees:
    GET    /api/employees                  List employees
    GET    /api/employees/{id}             Employee details
    GET    /api/employees/{id}/stats       Month statistics (?month=YYYY-MM)
    GET    /api/employees/{id}/payslip     Derived payslip (?month=YYYY-MM)

  Attendance:
    POST   /api/attendance/clock-in        Record in-punch
    POST   /api/attendance/clock-out       Record out-punch
    GET    /api/attendance                 Records (?employee=&month=)

  Leaves:
    GET    /api/leaves                     Role-scoped leave list
    POST   /api/leaves                     Apply for leave
    POST   /api/leaves/{id}/approve        Approve (owner / own-team lead)
    POST   /api/leaves/{id}/reject         Reject  (owner / own-team lead)

  Holidays:
    GET    /api/holidays                   List holidays
    POST   /api/holidays                   Declare holiday (owner only)

ERROR HANDLING:
  - 400: Validation errors, malformed dates/months
  - 401: Missing/invalid session token
  - 403: Role/team policy rejection
  - 404: Unknown employee or leave id (where the operation is not a
         store-level silent no-op)
  - 500: Persistence failures

AUTHORIZATION:
  The store trusts its caller. Clocking another employee requires the owner;
  leave review runs through hr.CanReviewLeave; holiday creation is owner
  only. Everything else defaults the subject to the session principal.
*/
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/emsdesk/hr-engine/auth"
	"github.com/emsdesk/hr-engine/calendar"
	"github.com/emsdesk/hr-engine/hr"
)

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store    *hr.Store
	Auth     *auth.Service
	validate *validator.Validate
}

// NewHandler creates a handler backed by the given store and session service.
func NewHandler(store *hr.Store, authSvc *auth.Service) *Handler {
	return &Handler{
		Store:    store,
		Auth:     authSvc,
		validate: validator.New(),
	}
}

// =============================================================================
// HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// decode parses and validates a JSON request body.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// monthParam reads ?month=, defaulting to the current month.
func monthParam(r *http.Request) string {
	if m := r.URL.Query().Get("month"); m != "" {
		return m
	}
	return calendar.ThisMonth()
}

func principal(r *http.Request) auth.Principal {
	p, _ := auth.FromContext(r.Context())
	return p
}

// =============================================================================
// AUTH
// =============================================================================

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !h.decode(w, r, &req) {
		return
	}
	if req.Role == "" && req.EmployeeID == "" {
		writeError(w, http.StatusBadRequest, "role or employeeId required")
		return
	}

	snap := h.Store.Snapshot()
	var (
		p   auth.Principal
		err error
	)
	if req.EmployeeID != "" {
		p, err = auth.LoginAsEmployee(snap, req.EmployeeID)
	} else {
		p, err = auth.LoginAsRole(snap, hr.Role(req.Role))
	}
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error())
		return
	}

	token, err := h.Auth.Token(p)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to issue token")
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{Token: token, Principal: p})
}

// =============================================================================
// EMPLOYEES
// =============================================================================

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	snap := h.Store.Snapshot()
	views := make([]EmployeeView, 0, len(snap.Employees))
	for _, e := range snap.Employees {
		views = append(views, EmployeeView{Employee: e, TeamName: hr.TeamName(e.TeamID)})
	}
	writeJSON(w, http.StatusOK, views)
}

func (h *Handler) GetEmployee(w http.ResponseWriter, r *http.Request) {
	snap := h.Store.Snapshot()
	emp, ok := snap.Employee(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "unknown employee")
		return
	}
	writeJSON(w, http.StatusOK, EmployeeView{Employee: emp, TeamName: hr.TeamName(emp.TeamID)})
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	month := monthParam(r)

	stats, err := h.Store.Snapshot().MonthStatsFor(id, month)
	if err != nil {
		writeError(w, statusFromErr(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, StatsResponse{EmployeeID: id, Month: month, Stats: stats})
}

func (h *Handler) GetPayslip(w http.ResponseWriter, r *http.Request) {
	slip, err := h.Store.Snapshot().PayslipFor(chi.URLParam(r, "id"), monthParam(r))
	if err != nil {
		writeError(w, statusFromErr(err), err.Error())
		return
	}
	writeJSON(w, http.StatusOK, slip)
}

// =============================================================================
// ATTENDANCE
// =============================================================================

// clockTarget resolves who the punch is for. Clocking someone else requires
// the owner.
func clockTarget(w http.ResponseWriter, r *http.Request, requested string) (string, bool) {
	p := principal(r)
	if requested == "" || requested == p.ID {
		return p.ID, true
	}
	if p.Role != hr.RoleOwner {
		writeError(w, http.StatusForbidden, "cannot clock another employee")
		return "", false
	}
	return requested, true
}

func (h *Handler) ClockIn(w http.ResponseWriter, r *http.Request) {
	var req ClockRequest
	if !h.decode(w, r, &req) {
		return
	}
	target, ok := clockTarget(w, r, req.EmployeeID)
	if !ok {
		return
	}
	if err := h.Store.ClockIn(target, req.Date, req.Time); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	rec, _ := h.Store.Snapshot().AttendanceFor(target, h.orToday(req.Date))
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) ClockOut(w http.ResponseWriter, r *http.Request) {
	var req ClockRequest
	if !h.decode(w, r, &req) {
		return
	}
	target, ok := clockTarget(w, r, req.EmployeeID)
	if !ok {
		return
	}
	if err := h.Store.ClockOut(target, req.Date, req.Time); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	rec, _ := h.Store.Snapshot().AttendanceFor(target, h.orToday(req.Date))
	writeJSON(w, http.StatusOK, rec)
}

func (h *Handler) orToday(date string) string {
	if date != "" {
		return date
	}
	return h.Store.Today()
}

func (h *Handler) ListAttendance(w http.ResponseWriter, r *http.Request) {
	p := principal(r)
	employeeID := r.URL.Query().Get("employee")
	if employeeID == "" {
		employeeID = p.ID
	}
	monthPrefix := monthParam(r) + "-"

	records := make([]hr.AttendanceRecord, 0)
	for _, rec := range h.Store.Snapshot().Attendance {
		if rec.EmployeeID == employeeID && strings.HasPrefix(rec.Date, monthPrefix) {
			records = append(records, rec)
		}
	}
	writeJSON(w, http.StatusOK, records)
}

// =============================================================================
// LEAVES
// =============================================================================

// ListLeaves is role-scoped: the owner sees everything, a team lead sees
// their own requests plus their team's, an employee only their own.
func (h *Handler) ListLeaves(w http.ResponseWriter, r *http.Request) {
	p := principal(r)
	snap := h.Store.Snapshot()

	if p.Role == hr.RoleOwner {
		writeJSON(w, http.StatusOK, snap.Leaves)
		return
	}

	visible := make([]hr.LeaveRequest, 0)
	for _, l := range snap.Leaves {
		if l.EmployeeID == p.ID {
			visible = append(visible, l)
			continue
		}
		if p.Role == hr.RoleTeamLead {
			if emp, ok := snap.Employee(l.EmployeeID); ok && emp.TeamID == p.TeamID {
				visible = append(visible, l)
			}
		}
	}
	writeJSON(w, http.StatusOK, visible)
}

func (h *Handler) ApplyLeave(w http.ResponseWriter, r *http.Request) {
	var req ApplyLeaveRequest
	if !h.decode(w, r, &req) {
		return
	}
	p := principal(r)
	employeeID := req.EmployeeID
	if employeeID == "" {
		employeeID = p.ID
	}
	if req.From > req.To {
		writeError(w, http.StatusBadRequest, "from must not be after to")
		return
	}

	leave, err := h.Store.ApplyLeave(hr.LeaveDraft{
		EmployeeID: employeeID,
		From:       req.From,
		To:         req.To,
		Type:       hr.LeaveType(req.Type),
		Reason:     req.Reason,
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, leave)
}

func (h *Handler) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	h.reviewLeave(w, r, hr.LeaveApproved, "Approved")
}

func (h *Handler) RejectLeave(w http.ResponseWriter, r *http.Request) {
	h.reviewLeave(w, r, hr.LeaveRejected, "Rejected")
}

func (h *Handler) reviewLeave(w http.ResponseWriter, r *http.Request, status hr.LeaveStatus, defaultComment string) {
	var req ReviewLeaveRequest
	if r.ContentLength > 0 && !h.decode(w, r, &req) {
		return
	}
	if req.Comments == "" {
		req.Comments = defaultComment
	}

	id := chi.URLParam(r, "id")
	p := principal(r)
	snap := h.Store.Snapshot()

	leave, ok := snap.Leave(id)
	if !ok {
		writeError(w, http.StatusNotFound, "unknown leave")
		return
	}
	target, known := snap.Employee(leave.EmployeeID)
	if !hr.CanReviewLeave(p.Role, p.TeamID, target, known) {
		writeError(w, http.StatusForbidden, "not allowed to review this leave")
		return
	}

	if err := h.Store.ReviewLeave(id, status, p.ID, req.Comments); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	updated, _ := h.Store.Snapshot().Leave(id)
	writeJSON(w, http.StatusOK, updated)
}

// =============================================================================
// HOLIDAYS
// =============================================================================

func (h *Handler) ListHolidays(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.Store.Snapshot().Holidays)
}

func (h *Handler) AddHoliday(w http.ResponseWriter, r *http.Request) {
	var req AddHolidayRequest
	if !h.decode(w, r, &req) {
		return
	}
	holiday, err := h.Store.AddHoliday(hr.HolidayDraft{
		Date: req.Date,
		Name: req.Name,
		Type: hr.HolidayType(req.Type),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, holiday)
}

// statusFromErr maps domain errors onto HTTP statuses.
func statusFromErr(err error) int {
	if errors.Is(err, calendar.ErrInvalidDate) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
