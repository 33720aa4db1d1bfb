package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emsdesk/hr-engine/auth"
	"github.com/emsdesk/hr-engine/hr"
)

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func seedSnap() *hr.Snapshot {
	return hr.SeedSnapshot(fixedClock{t: time.Date(2026, 2, 2, 9, 0, 0, 0, time.Local)})
}

func TestLoginAsRole(t *testing.T) {
	snap := seedSnap()

	owner, err := auth.LoginAsRole(snap, hr.RoleOwner)
	require.NoError(t, err)
	assert.Equal(t, auth.OwnerID, owner.ID)
	assert.Equal(t, hr.RoleOwner, owner.Role)
	assert.Empty(t, owner.TeamID)

	lead, err := auth.LoginAsRole(snap, hr.RoleTeamLead)
	require.NoError(t, err)
	assert.Equal(t, "e101", lead.ID, "first seeded team lead")
	assert.Equal(t, "t1", lead.TeamID)
	assert.Equal(t, "Platform", lead.TeamName)

	emp, err := auth.LoginAsRole(snap, hr.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, "e102", emp.ID)
}

func TestLoginAsEmployee(t *testing.T) {
	snap := seedSnap()

	p, err := auth.LoginAsEmployee(snap, "e103")
	require.NoError(t, err)
	assert.Equal(t, "Mohit Verma", p.Name)
	assert.Equal(t, hr.RoleEmployee, p.Role)

	_, err = auth.LoginAsEmployee(snap, "ghost")
	assert.ErrorIs(t, err, auth.ErrUnknownIdentity)
}

func TestTokenRoundTrip(t *testing.T) {
	svc := auth.NewService("test-secret", time.Hour)
	in := auth.Principal{ID: "e101", Name: "Ajay Kumar", Role: hr.RoleTeamLead, TeamID: "t1", TeamName: "Platform"}

	token, err := svc.Token(in)
	require.NoError(t, err)

	out, err := svc.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParse_RejectsBadTokens(t *testing.T) {
	svc := auth.NewService("test-secret", time.Hour)

	_, err := svc.Parse("not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	// Token signed with a different secret.
	other := auth.NewService("other-secret", time.Hour)
	token, err := other.Token(auth.Principal{ID: "e101", Role: hr.RoleEmployee})
	require.NoError(t, err)
	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	// Expired token.
	expired := auth.NewService("test-secret", -time.Minute)
	token, err = expired.Token(auth.Principal{ID: "e101", Role: hr.RoleEmployee})
	require.NoError(t, err)
	_, err = svc.Parse(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestMiddleware(t *testing.T) {
	svc := auth.NewService("test-secret", time.Hour)

	var got auth.Principal
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := svc.Middleware(next)

	// No header.
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Valid token.
	token, err := svc.Token(auth.Principal{ID: "e102", Name: "Riya Sharma", Role: hr.RoleEmployee, TeamID: "t1", TeamName: "Platform"})
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "e102", got.ID)
	assert.Equal(t, "t1", got.TeamID)
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	guard := auth.RequireRole(hr.RoleOwner)(next)

	// Owner passes.
	req := httptest.NewRequest("POST", "/", nil)
	req = req.WithContext(auth.WithPrincipal(req.Context(), auth.Principal{ID: auth.OwnerID, Role: hr.RoleOwner}))
	rec := httptest.NewRecorder()
	guard.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Employee is rejected.
	req = httptest.NewRequest("POST", "/", nil)
	req = req.WithContext(auth.WithPrincipal(req.Context(), auth.Principal{ID: "e102", Role: hr.RoleEmployee}))
	rec = httptest.NewRecorder()
	guard.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// No principal at all.
	rec = httptest.NewRecorder()
	guard.ServeHTTP(rec, httptest.NewRequest("POST", "/", nil))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
