package auth

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"brokerage/internal/entities"
)

type Service struct {
	users     UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func New(users UserRepository, jwtSecret string, tokenTTL time.Duration) *Service {
	return &Service{
		users:     users,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

type SignUp struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      entities.RoleType
}

type claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// SignUp регистрирует пользователя. Пароль хранится только как bcrypt-хеш,
// уникальность email держит БД. Самостоятельно зарегистрироваться можно
// только клиентом или водителем, staff-роли выдаёт админ через AssignRole.
func (s *Service) SignUp(ctx context.Context, signUp SignUp) (*entities.User, error) {
	if err := validateSignUp(signUp); err != nil {
		return nil, err
	}

	role := signUp.Role
	if role == "" {
		role = entities.RoleCustomer
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(signUp.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.users.Create(ctx, entities.User{
		Email:        strings.ToLower(strings.TrimSpace(signUp.Email)),
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(signUp.FirstName),
		LastName:     strings.TrimSpace(signUp.LastName),
		Role:         role,
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// AssignRole меняет роль пользователя. Доступно только админу: это
// единственный способ получить SUPPORT_AGENT или ADMIN.
func (s *Service) AssignRole(ctx context.Context, actor entities.Actor, userID int64, role entities.RoleType) (*entities.User, error) {
	if actor.Role != entities.RoleAdmin {
		return nil, fmt.Errorf("%w: only admin can assign roles", ErrAccessDenied)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRole, role)
	}

	updated, err := s.users.UpdateRole(ctx, userID, role)
	if err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}
	return updated, nil
}

// Login проверяет пароль и выдаёт JWT. Несуществующий email и неверный пароль
// неразличимы для вызывающего.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now().UTC()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Role: user.Role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	})

	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ResolveToken валидирует JWT и возвращает actor для передачи в сервисы.
func (s *Service) ResolveToken(_ context.Context, tokenString string) (entities.Actor, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return entities.Actor{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	tokenClaims, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid {
		return entities.Actor{}, ErrInvalidToken
	}

	userID, err := strconv.ParseInt(tokenClaims.Subject, 10, 64)
	if err != nil {
		return entities.Actor{}, fmt.Errorf("%w: malformed subject", ErrInvalidToken)
	}

	role := entities.RoleType(tokenClaims.Role)
	if !role.Valid() {
		return entities.Actor{}, fmt.Errorf("%w: unknown role %s", ErrInvalidToken, tokenClaims.Role)
	}

	return entities.Actor{UserID: userID, Role: role}, nil
}

func validateSignUp(signUp SignUp) error {
	if strings.TrimSpace(signUp.Email) == "" || signUp.Password == "" {
		return fmt.Errorf("%w: email and password", ErrMissingRequiredFields)
	}
	if signUp.Role == "" {
		return nil
	}
	if !signUp.Role.Valid() {
		return fmt.Errorf("%w: %s", ErrInvalidRole, signUp.Role)
	}
	if signUp.Role != entities.RoleCustomer && signUp.Role != entities.RoleDriver {
		return fmt.Errorf("%w: %s", ErrRoleNotAllowed, signUp.Role)
	}
	return nil
}
