package auth

import "strings"

// AccessKind tags the three requirement variants a rule can carry.
type AccessKind int

const (
	// Public requests pass without credentials.
	Public AccessKind = iota
	// Authenticated requests need valid credentials, any role.
	Authenticated
	// RoleGated requests need valid credentials with one of the listed roles.
	RoleGated
)

// Requirement is what a matched rule demands from the request.
type Requirement struct {
	Kind  AccessKind
	Roles []string
}

func (r Requirement) Satisfied(role string) bool {
	switch r.Kind {
	case Public, Authenticated:
		return true
	default:
		for _, allowed := range r.Roles {
			if role == allowed {
				return true
			}
		}
		return false
	}
}

// Rule binds an HTTP method and path pattern to a requirement. Method "*"
// matches any method. Patterns are segment-wise: "*" matches exactly one
// segment, a trailing "**" matches any remainder (including none), and a
// trailing "*" on the last segment matches any segment prefix
// (e.g. "/login*").
type Rule struct {
	Method  string
	Pattern string
	Require Requirement
}

// Rules is an ordered table evaluated top to bottom, first match wins.
type Rules []Rule

// DefaultRules is the authorization table for the employee API. Reads are
// open to both roles, writes are admin-only, the login and swagger surfaces
// are public, and anything unlisted still needs authentication.
func DefaultRules() Rules {
	usersAndAdmins := Requirement{Kind: RoleGated, Roles: []string{RoleUser, RoleAdmin}}
	adminsOnly := Requirement{Kind: RoleGated, Roles: []string{RoleAdmin}}

	return Rules{
		{Method: "GET", Pattern: "/api/v1/employees/*", Require: usersAndAdmins},
		{Method: "GET", Pattern: "/api/v1/employees", Require: usersAndAdmins},
		{Method: "POST", Pattern: "/api/v1/employees", Require: adminsOnly},
		{Method: "PUT", Pattern: "/api/v1/employees", Require: adminsOnly},
		{Method: "DELETE", Pattern: "/api/v1/employees/*", Require: adminsOnly},
		{Method: "*", Pattern: "/login*", Require: Requirement{Kind: Public}},
		{Method: "*", Pattern: "/swagger-ui/**", Require: Requirement{Kind: Public}},
	}
}

// Evaluate returns the requirement of the first matching rule. Requests that
// match no rule fall back to Authenticated.
func (rs Rules) Evaluate(method, path string) Requirement {
	for _, r := range rs {
		if r.Method != "*" && r.Method != method {
			continue
		}
		if matchPattern(r.Pattern, path) {
			return r.Require
		}
	}
	return Requirement{Kind: Authenticated}
}

func matchPattern(pattern, path string) bool {
	patSegs := strings.Split(strings.Trim(pattern, "/"), "/")
	pathSegs := strings.Split(strings.Trim(path, "/"), "/")

	for i, ps := range patSegs {
		if ps == "**" {
			return true
		}
		if i >= len(pathSegs) {
			return false
		}
		switch {
		case ps == "*":
			// one segment, must be present and non-empty
			if pathSegs[i] == "" {
				return false
			}
		case strings.HasSuffix(ps, "*"):
			if !strings.HasPrefix(pathSegs[i], strings.TrimSuffix(ps, "*")) {
				return false
			}
		default:
			if ps != pathSegs[i] {
				return false
			}
		}
	}
	return len(pathSegs) == len(patSegs)
}
