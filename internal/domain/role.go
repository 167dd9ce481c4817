package domain

import "strings"

type RoleKind string

const (
	RoleAdmin         RoleKind = "ADMIN"
	RoleCashier       RoleKind = "CASHIER"
	RoleUser          RoleKind = "USER"
	RoleDirector      RoleKind = "DIRECTOR"
	RoleRegistrar     RoleKind = "REGISTRAR"
	RoleChairman      RoleKind = "CHAIRMAN"
	RoleDean          RoleKind = "DEAN"
	RoleAssociateDean RoleKind = "ASSOCIATE_DEAN"
	RoleHOD           RoleKind = "HOD"
)

// rolePrefixes is matched longest first so "ASSOCIATE DEAN X" never parses as a DEAN.
var rolePrefixes = []struct {
	prefix string
	kind   RoleKind
}{
	{"ASSOCIATE DEAN", RoleAssociateDean},
	{"ASSOCIATE_DEAN", RoleAssociateDean},
	{"DIRECTOR", RoleDirector},
	{"REGISTRAR", RoleRegistrar},
	{"CHAIRMAN", RoleChairman},
	{"CASHIER", RoleCashier},
	{"ADMIN", RoleAdmin},
	{"USER", RoleUser},
	{"DEAN", RoleDean},
	{"HOD", RoleHOD},
}

// Role is an authority identifier split into its kind and an optional
// office or department qualifier, e.g. "HOD COMPUTER SCIENCE".
type Role struct {
	Kind      RoleKind
	Qualifier string
}

// ParseRole never fails; unknown strings come back with an empty Kind.
func ParseRole(s string) Role {
	s = strings.ToUpper(strings.Join(strings.Fields(s), " "))
	for _, p := range rolePrefixes {
		if s == p.prefix {
			return Role{Kind: p.kind}
		}
		if strings.HasPrefix(s, p.prefix+" ") {
			return Role{Kind: p.kind, Qualifier: strings.TrimPrefix(s, p.prefix+" ")}
		}
	}
	return Role{Qualifier: s}
}

func (r Role) String() string {
	name := string(r.Kind)
	if r.Kind == RoleAssociateDean {
		name = "ASSOCIATE DEAN"
	}
	if r.Qualifier == "" {
		return name
	}
	if name == "" {
		return r.Qualifier
	}
	return name + " " + r.Qualifier
}

func (r Role) Known() bool {
	return r.Kind != ""
}

// IsAuthority reports whether the role can sit in a reviewer chain besides ADMIN.
func (r Role) IsAuthority() bool {
	switch r.Kind {
	case RoleDirector, RoleRegistrar, RoleChairman, RoleDean, RoleAssociateDean, RoleHOD:
		return true
	}
	return false
}

// Matches reports whether a principal holding role p may act on a reviewer
// entry holding r. Kinds must be equal; a qualified principal must also
// match the qualifier.
func (r Role) Matches(p Role) bool {
	if !r.Known() || r.Kind != p.Kind {
		return false
	}
	return p.Qualifier == "" || p.Qualifier == r.Qualifier
}
