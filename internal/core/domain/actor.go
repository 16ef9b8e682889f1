package domain

type Role string

const (
	RoleCustomer   Role = "CUSTOMER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPER_ADMIN"
)

// AuthMode declares how a request authenticated itself. Error handling is a
// function of this tag, never of the route path: a 401 under AuthModeOwnerToken
// means the order token is bad, not that a session expired.
type AuthMode string

const (
	AuthModeSession    AuthMode = "session"
	AuthModeOwnerToken AuthMode = "ownerToken"
	AuthModeNone       AuthMode = "none"
)

// Actor identifies who is acting on an order. It is passed explicitly into
// every service operation instead of living in ambient request state.
type Actor struct {
	Mode       AuthMode
	UserID     string
	Role       Role
	OrderToken string
}

func SessionActor(userID string, role Role) Actor {
	return Actor{Mode: AuthModeSession, UserID: userID, Role: role}
}

func OwnerActor(orderToken string) Actor {
	return Actor{Mode: AuthModeOwnerToken, OrderToken: orderToken}
}

func AnonymousActor() Actor {
	return Actor{Mode: AuthModeNone}
}

func (a Actor) IsAdmin() bool {
	return a.Mode == AuthModeSession && (a.Role == RoleAdmin || a.Role == RoleSuperAdmin)
}

func (a Actor) IsOwner() bool {
	return a.Mode == AuthModeOwnerToken && a.OrderToken != ""
}

func (a Actor) IsCustomer() bool {
	return a.Mode == AuthModeSession && a.Role == RoleCustomer
}
