package models

import "strconv"

// IdentityKind tells which claim identified the user.
type IdentityKind int

const (
	IdentityByID IdentityKind = iota + 1
	IdentityByLogin
)

// Identity is the user's identifying claim resolved once from the token.
// Exactly one of ID or Login is meaningful, depending on Kind.
type Identity struct {
	Kind  IdentityKind
	ID    int64
	Login string
}

func ByID(id int64) Identity {
	return Identity{Kind: IdentityByID, ID: id}
}

func ByLogin(login string) Identity {
	return Identity{Kind: IdentityByLogin, Login: login}
}

func (i Identity) IsZero() bool {
	return i.Kind == 0
}

func (i Identity) String() string {
	switch i.Kind {
	case IdentityByID:
		return "id:" + strconv.FormatInt(i.ID, 10)
	case IdentityByLogin:
		return "login:" + i.Login
	default:
		return "unknown"
	}
}
