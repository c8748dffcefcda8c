// Package services содержит логику анонимных сессий.
//
// Учётная запись создаётся без регистрации: клиент получает UID, токен
// сессии и одноразовый ключ восстановления. Ключ хранится только в виде
// bcrypt-хэша, потерянный ключ означает потерянный набор паут.
package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/matheusvidal/gestor-pautas/internal/lib/jwt"
	"github.com/matheusvidal/gestor-pautas/internal/lib/secret"
	"github.com/matheusvidal/gestor-pautas/internal/models"
)

// ErrInvalidRecoveryKey возвращается при несовпадении ключа восстановления.
var ErrInvalidRecoveryKey = errors.New("invalid recovery key")

// UserRepository определяет методы для работы с учётными записями.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) error
	GetUser(ctx context.Context, userUID string) (*models.User, error)
}

// IdentityService выпускает и возобновляет анонимные сессии.
type IdentityService struct {
	repo   UserRepository
	tokens jwt.Maker
	log    *slog.Logger
}

// NewIdentityService создает новый экземпляр IdentityService.
func NewIdentityService(repo UserRepository, tokens jwt.Maker, log *slog.Logger) *IdentityService {
	return &IdentityService{
		repo:   repo,
		tokens: tokens,
		log:    log,
	}
}

// Ensure открывает сессию. Пустой запрос создаёт новую учётную запись,
// запрос с UID и ключом восстановления возобновляет существующую.
func (s *IdentityService) Ensure(ctx context.Context, req models.DummyIdentity) (*models.Identity, error) {
	if req.UserUID == "" {
		return s.create(ctx)
	}
	return s.resume(ctx, req)
}

func (s *IdentityService) create(ctx context.Context) (*models.Identity, error) {
	userUID := uuid.New().String()
	recoveryKey := uuid.New().String()

	hash, err := secret.GetHash(recoveryKey)
	if err != nil {
		return nil, err
	}

	if err := s.repo.CreateUser(ctx, models.User{
		UID:             userUID,
		RecoveryKeyHash: hash,
		CreatedAt:       time.Now().UTC(),
	}); err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(userUID)
	if err != nil {
		return nil, err
	}

	s.log.Info("created anonymous user", slog.String("user_uid", userUID))
	return &models.Identity{
		UserUID:     userUID,
		Token:       token,
		RecoveryKey: recoveryKey,
	}, nil
}

func (s *IdentityService) resume(ctx context.Context, req models.DummyIdentity) (*models.Identity, error) {
	user, err := s.repo.GetUser(ctx, req.UserUID)
	if err != nil {
		return nil, err
	}

	if err := secret.CompareHash(user.RecoveryKeyHash, req.RecoveryKey); err != nil {
		s.log.Warn("recovery key mismatch", slog.String("user_uid", req.UserUID))
		return nil, ErrInvalidRecoveryKey
	}

	token, err := s.tokens.GenerateToken(user.UID)
	if err != nil {
		return nil, err
	}

	return &models.Identity{
		UserUID: user.UID,
		Token:   token,
	}, nil
}
