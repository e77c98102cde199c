package middleware

import (
	"net/http"
	"strings"
)

// MethodOverrideHeader lets a POST stand in for another verb
const MethodOverrideHeader = "X-HTTP-Method-Override"

// MethodOverrideParam is the query parameter HTML forms use for the same purpose
const MethodOverrideParam = "_method"

var overridableMethods = map[string]bool{
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

// MethodOverride rewrites POST requests that ask to be treated as PUT, PATCH
// or DELETE. It wraps the router because gin picks the route before any
// middleware runs.
func MethodOverride(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			method := r.Header.Get(MethodOverrideHeader)
			if method == "" {
				method = r.URL.Query().Get(MethodOverrideParam)
			}
			method = strings.ToUpper(strings.TrimSpace(method))
			if overridableMethods[method] {
				r.Method = method
			}
		}
		next.ServeHTTP(w, r)
	})
}
