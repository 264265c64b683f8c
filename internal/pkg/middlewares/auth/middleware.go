package auth

import (
	"context"
	"net/http"
	"strings"

	"brokerage/internal/entities"
)

type contextKey struct{}

var actorKey contextKey

// Middleware достаёт Bearer-токен, резолвит его в actor и кладёт в контекст.
// Запрос без валидного токена отбивается 401 до хендлера.
func Middleware(resolver tokenResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				http.Error(w, "missing bearer token", http.StatusUnauthorized)
				return
			}

			actor, err := resolver.ResolveToken(r.Context(), token)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

func WithActor(ctx context.Context, actor entities.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// ActorFromContext — actor, положенный Middleware. Второе значение false
// означает, что запрос прошёл мимо auth-мидлвари.
func ActorFromContext(ctx context.Context) (entities.Actor, bool) {
	actor, ok := ctx.Value(actorKey).(entities.Actor)
	return actor, ok
}
