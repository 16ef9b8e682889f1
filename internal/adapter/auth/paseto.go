package auth

import (
	"time"

	"aidanwoods.dev/go-paseto"
	"github.com/google/uuid"
	"github.com/velstore/orderflow/internal/core/domain"
	"github.com/velstore/orderflow/internal/core/port"
)

const (
	sessionDuration = 72 * time.Hour
	// Owner tokens travel by email and may sit in an inbox for a while.
	orderTokenDuration = 30 * 24 * time.Hour
)

// SessionTokens verifies the bearer tokens carried by admin and customer
// requests. V4-local paseto with a symmetric key.
type SessionTokens struct {
	parser *paseto.Parser
	key    *paseto.V4SymmetricKey
}

func NewSessionTokens() (port.TokenService, error) {
	parser := paseto.NewParser()
	key := paseto.NewV4SymmetricKey()

	return &SessionTokens{
		parser: &parser,
		key:    &key,
	}, nil
}

func (s *SessionTokens) CreateSessionToken(userID string, role domain.Role) (string, error) {
	token := paseto.NewToken()
	token.SetExpiration(time.Now().Add(sessionDuration))

	payload := port.SessionPayload{UserID: userID, Role: role}
	if err := token.Set("payload", payload); err != nil {
		return "", domain.ErrTokenCreation
	}

	return token.V4Encrypt(*s.key, nil), nil
}

func (s *SessionTokens) VerifySessionToken(token string) (*port.SessionPayload, error) {
	parsedToken, err := s.parser.ParseV4Local(*s.key, token, nil)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	payload := port.SessionPayload{}
	if err := parsedToken.Get("payload", &payload); err != nil {
		return nil, domain.ErrInvalidToken
	}
	return &payload, nil
}

// OrderTokens issues the opaque per-order tokens embedded in owner approval
// links. A separate key from sessions: leaking one never unlocks the other.
type OrderTokens struct {
	parser *paseto.Parser
	key    *paseto.V4SymmetricKey
}

func NewOrderTokens() (port.OrderTokenService, error) {
	parser := paseto.NewParser()
	key := paseto.NewV4SymmetricKey()

	return &OrderTokens{
		parser: &parser,
		key:    &key,
	}, nil
}

func (o *OrderTokens) IssueOrderToken(orderID uuid.UUID) (string, error) {
	token := paseto.NewToken()
	token.SetExpiration(time.Now().Add(orderTokenDuration))

	if err := token.Set("order_id", orderID.String()); err != nil {
		return "", domain.ErrTokenCreation
	}

	return token.V4Encrypt(*o.key, nil), nil
}

func (o *OrderTokens) VerifyOrderToken(token string) (uuid.UUID, error) {
	parsedToken, err := o.parser.ParseV4Local(*o.key, token, nil)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidToken
	}

	var raw string
	if err := parsedToken.Get("order_id", &raw); err != nil {
		return uuid.Nil, domain.ErrInvalidToken
	}

	orderID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.ErrInvalidToken
	}
	return orderID, nil
}
