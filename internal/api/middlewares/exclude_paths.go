package middlewares

import "net/http"

type Middleware func(http.Handler) http.Handler

// MiddlewaresExcludePaths applies mw to every request except those whose
// path matches one of the excluded paths exactly.
func MiddlewaresExcludePaths(mw Middleware, excluded ...string) Middleware {
	skip := make(map[string]struct{}, len(excluded))
	for _, p := range excluded {
		skip[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		wrapped := mw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skip[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}
			wrapped.ServeHTTP(w, r)
		})
	}
}
