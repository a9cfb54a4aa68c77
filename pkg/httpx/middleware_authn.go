package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/moodmate/auth/pkg/jwtx"
	"github.com/moodmate/auth/pkg/slogx"
)

// AuthnMiddleware requires a valid bearer access token. The verified subject
// is injected into the request context; resolving it to a live account is
// the handler's job.
func AuthnMiddleware(codec *jwtx.Codec) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w)
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			subject, err := codec.Verify(raw, jwtx.KindAccess)
			if err != nil {
				log.Warn("access token verification failed", "err", err)
				writeBearerError(w)
				return
			}

			ctx = context.WithValue(ctx, CtxKeySubject, subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeBearerError emits the uniform unauthenticated response. The message
// is fixed regardless of why verification failed.
func writeBearerError(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"detail": "Could not validate credentials",
	})
}
