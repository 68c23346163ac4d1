package middleware

import (
	"net/http"

	"storefront/internal/logger"
	"storefront/internal/session"
)

// Session attaches the identity carried by a valid session token to the
// request context. Requests without a token, or with an invalid one,
// pass through anonymously.
func Session(tokens *session.Tokens) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := session.ExtractToken(r)
			if tokenStr == "" || tokens == nil {
				next.ServeHTTP(w, r)
				return
			}

			id, err := tokens.Parse(tokenStr)
			if err != nil {
				logger.FromCtx(r.Context()).Debug("ignoring session token")
				next.ServeHTTP(w, r)
				return
			}

			ctx := session.WithIdentity(r.Context(), id)
			ctx = logger.WithUserID(ctx, id.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
