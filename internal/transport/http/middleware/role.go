package middleware

import (
	"net/http"

	"github.com/DaewoongByun/sw-quality-dashboard/internal/domain"
	"github.com/DaewoongByun/sw-quality-dashboard/internal/transport/http/response"
)

// RequireRole returns middleware that allows access only to callers whose
// token carries one of the given authorities (e.g. domain.RoleAdmin).
func RequireRole(n *response.Normalizer, allowed ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFromContext(r.Context())
			if !ok {
				n.Write(w, domain.Unauthorized("no claims in context"))
				return
			}
			for _, name := range allowed {
				if claims.HasAuthority(name) {
					next.ServeHTTP(w, r)
					return
				}
			}
			n.Write(w, domain.Unauthorized("missing authority"))
		})
	}
}
