//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_role_put_test
package user_role_put

import (
	"context"

	"brokerage/internal/entities"
	"brokerage/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AssignRole(ctx context.Context, actor entities.Actor, userID int64, role entities.RoleType) (*entities.User, error)
}
