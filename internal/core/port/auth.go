package port

import (
	"github.com/google/uuid"
	"github.com/velstore/orderflow/internal/core/domain"
)

type SessionPayload struct {
	UserID string
	Role   domain.Role
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock

// TokenService verifies bearer session tokens issued by the auth collaborator.
type TokenService interface {
	CreateSessionToken(userID string, role domain.Role) (string, error)
	VerifySessionToken(token string) (*SessionPayload, error)
}

// OrderTokenService issues and validates the opaque per-order tokens that let
// an owner act without a login session.
type OrderTokenService interface {
	IssueOrderToken(orderID uuid.UUID) (string, error)
	VerifyOrderToken(token string) (uuid.UUID, error)
}
