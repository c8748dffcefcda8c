package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	jwtlib "github.com/matheusvidal/gestor-pautas/internal/lib/jwt"
	"github.com/matheusvidal/gestor-pautas/internal/lib/secret"
	"github.com/matheusvidal/gestor-pautas/internal/models"
)

type RepoMock struct{ mock.Mock }

func (m *RepoMock) CreateUser(ctx context.Context, user models.User) error {
	return m.Called(ctx, user).Error(0)
}
func (m *RepoMock) GetUser(ctx context.Context, userUID string) (*models.User, error) {
	args := m.Called(ctx, userUID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

type MakerMock struct{ mock.Mock }

func (m *MakerMock) GenerateToken(userUID string) (string, error) {
	args := m.Called(userUID)
	return args.String(0), args.Error(1)
}
func (m *MakerMock) ParseToken(tokenStr string) (*jwtlib.SessionClaims, error) {
	args := m.Called(tokenStr)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*jwtlib.SessionClaims), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	h := slog.NewTextHandler(io.Discard, &slog.HandlerOptions{})
	return slog.New(h)
}

func TestIdentityService_Create(t *testing.T) {
	repo := new(RepoMock)
	maker := new(MakerMock)
	svc := NewIdentityService(repo, maker, newNoopLogger())

	var savedUser models.User
	repo.On("CreateUser", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		savedUser = args.Get(1).(models.User)
	}).Return(nil).Once()
	maker.On("GenerateToken", mock.Anything).Return("token-abc", nil).Once()

	got, err := svc.Ensure(context.Background(), models.DummyIdentity{})
	require.NoError(t, err)

	assert.NotEmpty(t, got.UserUID)
	assert.Equal(t, "token-abc", got.Token)
	assert.NotEmpty(t, got.RecoveryKey)

	// В хранилище попадает хэш, а не сам ключ.
	assert.NotEqual(t, got.RecoveryKey, savedUser.RecoveryKeyHash)
	assert.NoError(t, secret.CompareHash(savedUser.RecoveryKeyHash, got.RecoveryKey))

	repo.AssertExpectations(t)
	maker.AssertExpectations(t)
}

func TestIdentityService_Resume(t *testing.T) {
	recoveryKey := "chave-secreta"
	hash, err := secret.GetHash(recoveryKey)
	require.NoError(t, err)

	user := &models.User{UID: "uid-1", RecoveryKeyHash: hash}

	tests := []struct {
		name       string
		req        models.DummyIdentity
		setupMocks func(r *RepoMock, m *MakerMock)
		wantErr    error
	}{
		{
			name: "успешное возобновление сессии",
			req:  models.DummyIdentity{UserUID: "uid-1", RecoveryKey: recoveryKey},
			setupMocks: func(r *RepoMock, m *MakerMock) {
				r.On("GetUser", mock.Anything, "uid-1").Return(user, nil).Once()
				m.On("GenerateToken", "uid-1").Return("token-new", nil).Once()
			},
		},
		{
			name: "неверный ключ восстановления",
			req:  models.DummyIdentity{UserUID: "uid-1", RecoveryKey: "errada"},
			setupMocks: func(r *RepoMock, _ *MakerMock) {
				r.On("GetUser", mock.Anything, "uid-1").Return(user, nil).Once()
			},
			wantErr: ErrInvalidRecoveryKey,
		},
		{
			name: "пользователь не найден",
			req:  models.DummyIdentity{UserUID: "uid-missing", RecoveryKey: recoveryKey},
			setupMocks: func(r *RepoMock, _ *MakerMock) {
				r.On("GetUser", mock.Anything, "uid-missing").Return(nil, errors.New("user not found")).Once()
			},
			wantErr: errors.New("user not found"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(RepoMock)
			maker := new(MakerMock)
			svc := NewIdentityService(repo, maker, newNoopLogger())

			tt.setupMocks(repo, maker)

			got, err := svc.Ensure(context.Background(), tt.req)
			if tt.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr.Error())
			} else {
				require.NoError(t, err)
				assert.Equal(t, "uid-1", got.UserUID)
				assert.Equal(t, "token-new", got.Token)
				// Ключ восстановления при возобновлении не возвращается.
				assert.Empty(t, got.RecoveryKey)
			}

			repo.AssertExpectations(t)
			maker.AssertExpectations(t)
		})
	}
}
