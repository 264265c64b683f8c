package auth

import (
	"context"

	"brokerage/internal/entities"
)

type tokenResolver interface {
	ResolveToken(ctx context.Context, token string) (entities.Actor, error)
}
