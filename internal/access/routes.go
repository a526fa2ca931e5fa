// Package access implements the access-control core of the marketplace:
// route classification, the session-token gatekeeper and the ownership
// predicate. Everything here is pure decision logic; transport and storage
// stay behind ports.
package access

import "strings"

// RouteClass is the access category of a request path.
type RouteClass int

const (
	// ClassAPI routes bypass the session gate entirely; they carry their
	// own bearer-token authentication.
	ClassAPI RouteClass = iota
	// ClassAuth routes are the anonymous surfaces (login, register, home).
	ClassAuth
	// ClassProtected is every other route; a valid session is required.
	ClassProtected
)

func (c RouteClass) String() string {
	switch c {
	case ClassAPI:
		return "api"
	case ClassAuth:
		return "auth"
	default:
		return "protected"
	}
}

// RouteTable classifies request paths. It is built once at startup from
// configuration; classification is a pure function of the path.
//
// A pattern ending in "*" matches any path with that prefix; any other
// pattern matches exactly. Classes are tried in priority order
// api > auth, and paths matching neither are protected.
type RouteTable struct {
	api  []string
	auth []string
}

// NewRouteTable builds a RouteTable from the api and auth pattern lists.
func NewRouteTable(apiPatterns, authPatterns []string) *RouteTable {
	return &RouteTable{
		api:  append([]string(nil), apiPatterns...),
		auth: append([]string(nil), authPatterns...),
	}
}

// Classify maps path to exactly one RouteClass.
func (t *RouteTable) Classify(path string) RouteClass {
	if matchAny(t.api, path) {
		return ClassAPI
	}
	if matchAny(t.auth, path) {
		return ClassAuth
	}
	return ClassProtected
}

func matchAny(patterns []string, path string) bool {
	for _, p := range patterns {
		if strings.HasSuffix(p, "*") {
			if strings.HasPrefix(path, strings.TrimSuffix(p, "*")) {
				return true
			}
			continue
		}
		if path == p {
			return true
		}
	}
	return false
}
