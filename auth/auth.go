/*
Package auth is the session collaborator: demo logins and JWT sessions.

PURPOSE:
  The core trusts whatever identity the caller presents; this package is
  where that identity comes from. Login is demo-style (pick a role or a
  seeded employee, no passwords), the session is a signed HS256 token with
  role and team claims, and the HTTP middleware turns a Bearer token back
  into a Principal on the request context.

The store itself never sees this package. Authorization for leave review is
a caller-side policy check (hr.CanReviewLeave) fed from the Principal.
*/
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/emsdesk/hr-engine/hr"
)

var (
	ErrUnknownIdentity = errors.New("unknown identity")
	ErrInvalidToken    = errors.New("invalid token")
)

// OwnerID is the pseudo-identity for the owner role; it is not an employee.
const OwnerID = "owner"

// Principal is the authenticated caller.
type Principal struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Role     hr.Role `json:"role"`
	TeamID   string  `json:"teamId,omitempty"`
	TeamName string  `json:"teamName,omitempty"`
}

// Service issues and verifies session tokens.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

// =============================================================================
// DEMO LOGIN
// =============================================================================

// LoginAsRole resolves a role to a principal: the owner pseudo-identity, or
// the first seeded employee holding that role.
func LoginAsRole(snap *hr.Snapshot, role hr.Role) (Principal, error) {
	if role == hr.RoleOwner {
		return Principal{ID: OwnerID, Name: "Owner (Admin)", Role: hr.RoleOwner}, nil
	}
	for _, e := range snap.Employees {
		if e.Role == role {
			return principalFor(e), nil
		}
	}
	return Principal{}, fmt.Errorf("%w: no employee with role %q", ErrUnknownIdentity, role)
}

// LoginAsEmployee resolves an employee id to a principal.
func LoginAsEmployee(snap *hr.Snapshot, employeeID string) (Principal, error) {
	emp, ok := snap.Employee(employeeID)
	if !ok {
		return Principal{}, fmt.Errorf("%w: employee %q", ErrUnknownIdentity, employeeID)
	}
	return principalFor(emp), nil
}

func principalFor(e hr.Employee) Principal {
	return Principal{
		ID:       e.ID,
		Name:     e.Name,
		Role:     e.Role,
		TeamID:   e.TeamID,
		TeamName: hr.TeamName(e.TeamID),
	}
}

// =============================================================================
// TOKENS
// =============================================================================

// Token signs a session token for p.
func (s *Service) Token(p Principal) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  p.ID,
		"name": p.Name,
		"role": string(p.Role),
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}
	if p.TeamID != "" {
		claims["team"] = p.TeamID
		claims["team_name"] = p.TeamName
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Parse verifies a token and reconstructs the principal.
func (s *Service) Parse(tokenStr string) (Principal, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return Principal{}, ErrInvalidToken
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, ErrInvalidToken
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return Principal{}, ErrInvalidToken
	}
	name, _ := claims["name"].(string)
	roleStr, _ := claims["role"].(string)
	team, _ := claims["team"].(string)
	teamName, _ := claims["team_name"].(string)

	return Principal{
		ID:       sub,
		Name:     name,
		Role:     hr.Role(roleStr),
		TeamID:   team,
		TeamName: teamName,
	}, nil
}

// =============================================================================
// REQUEST CONTEXT
// =============================================================================

type ctxKey struct{}

// WithPrincipal attaches p to ctx.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// FromContext returns the request principal, if any.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(Principal)
	return p, ok
}

// Middleware validates the Bearer token and sets the principal in context.
func (s *Service) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			writeAuthError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		p, err := s.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			writeAuthError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), p)))
	})
}

// RequireRole ensures the principal holds one of the allowed roles.
func RequireRole(roles ...hr.Role) func(http.Handler) http.Handler {
	allowed := make(map[hr.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := FromContext(r.Context())
			if !ok {
				writeAuthError(w, http.StatusForbidden, "forbidden")
				return
			}
			if _, ok := allowed[p.Role]; !ok {
				writeAuthError(w, http.StatusForbidden, "forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"error":%q}`, msg)
}
