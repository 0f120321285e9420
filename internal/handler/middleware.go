package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/nuraya/storefront-api/internal/repository"
	"github.com/nuraya/storefront-api/internal/sanitize"
	"github.com/nuraya/storefront-api/internal/usecase"
	"github.com/nuraya/storefront-api/shared/auth"
)

type contextKey string

const (
	requestIDKey contextKey = "request_id"
	actorKey     contextKey = "actor"
)

// maxBodyBytes bounds how much of a request body the injection guard
// will buffer for inspection.
const maxBodyBytes = 1 << 20

// RequestID assigns a unique id to every request and echoes it back in
// the X-Request-Id response header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)

		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestLogger logs one line per request with method, path, status and
// duration.
func RequestLogger(logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(ww, r)

			requestID, _ := r.Context().Value(requestIDKey).(string)
			logger.Info().
				Str("request_id", requestID).
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.status).
				Dur("duration", time.Since(start)).
				Msg("handled request")
		})
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(status int) {
	w.status = status
	w.ResponseWriter.WriteHeader(status)
}

// InjectionGuard rejects requests whose query parameters, route
// parameters or JSON body carry Mongo operator syntax. The body is
// buffered and restored so downstream handlers can decode it again.
func InjectionGuard(logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, values := range r.URL.Query() {
				for _, value := range values {
					if sanitize.ContainsOperator(value) {
						logger.Warn().Str("path", r.URL.Path).Msg("blocked query parameter injection attempt")
						writeError(w, http.StatusBadRequest, "invalid characters in request")
						return
					}
				}
			}

			if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
				for _, value := range routeCtx.URLParams.Values {
					if sanitize.ContainsOperator(value) {
						logger.Warn().Str("path", r.URL.Path).Msg("blocked route parameter injection attempt")
						writeError(w, http.StatusBadRequest, "invalid characters in request")
						return
					}
				}
			}

			if r.Body != nil && r.Body != http.NoBody {
				body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
				if err != nil {
					writeError(w, http.StatusBadRequest, "unable to read request body")
					return
				}
				r.Body = io.NopCloser(bytes.NewReader(body))

				if len(bytes.TrimSpace(body)) > 0 {
					var decoded any
					if err := json.Unmarshal(body, &decoded); err == nil && sanitize.ContainsOperator(decoded) {
						logger.Warn().Str("path", r.URL.Path).Msg("blocked request body injection attempt")
						writeError(w, http.StatusBadRequest, "invalid characters in request")
						return
					}
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Authenticate resolves the bearer token to a verified user and stores
// the resulting actor in the request context.
func Authenticate(
	jwtAuth *auth.JWTAuthenticator,
	userRepo repository.UserRepository,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				writeError(w, http.StatusUnauthorized, "not authorized, no token")
				return
			}

			claims, err := jwtAuth.ValidateToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				writeError(w, http.StatusUnauthorized, "not authorized, token failed")
				return
			}

			user, err := userRepo.GetUser(r.Context(), claims.UserID)
			if err != nil {
				if errors.Is(err, mongo.ErrNoDocuments) {
					writeError(w, http.StatusUnauthorized, "not authorized, user not found")
					return
				}
				writeError(w, http.StatusInternalServerError, "something went wrong")
				return
			}

			if !user.IsVerified {
				writeError(w, http.StatusUnauthorized, "account is not verified")
				return
			}

			actor := usecase.Actor{
				ID:      user.ID,
				Name:    user.Name,
				IsAdmin: user.IsAdmin,
			}
			ctx := context.WithValue(r.Context(), actorKey, actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin allows only admin actors through. It must run after
// Authenticate.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFrom(r.Context())
		if !ok || !actor.IsAdmin {
			writeError(w, http.StatusForbidden, "not authorized as an admin")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func actorFrom(ctx context.Context) (usecase.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(usecase.Actor)
	return actor, ok
}
