package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/go-contact-keeper/internal/config"
	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/MKhiriev/go-contact-keeper/internal/mock"
	"github.com/MKhiriev/go-contact-keeper/internal/store"
	"github.com/MKhiriev/go-contact-keeper/internal/utils"
	"github.com/MKhiriev/go-contact-keeper/internal/validators"
	"github.com/MKhiriev/go-contact-keeper/models"
)

var testAppConfig = config.App{
	PasswordHashKey: "pepper",
	TokenSignKey:    "sign-key",
	TokenIssuer:     "go-contact-keeper",
	TokenDuration:   time.Hour,
}

// newTestAuthSvc: helper building authService with a mocked repository
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	svc := NewAuthService(repo, testAppConfig, logger.Nop()).(*authService)
	svc.now = func() time.Time { return time.Date(2026, 2, 3, 4, 5, 6, 7891, time.UTC) }
	return svc, repo
}

func testPasswordHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(utils.PepperPassword(password, testAppConfig.PasswordHashKey)), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

// ── RegisterUser ──────────────────────────────────────────────────────────────

func TestAuthService_RegisterUser_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			parsed, err := uuid.Parse(u.UserID)
			require.NoError(t, err)
			assert.Equal(t, uuid.Version(7), parsed.Version())
			assert.Equal(t, "alice", u.Login)
			assert.Empty(t, u.Password, "plain password must not reach the store")
			assert.Equal(t, time.Date(2026, 2, 3, 4, 5, 6, 7000, time.UTC), u.CreatedAt)

			peppered := utils.PepperPassword("secret123", testAppConfig.PasswordHashKey)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(peppered)))
			return u, nil
		},
	)

	registered, err := svc.RegisterUser(ctx, models.User{Login: "alice", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "alice", registered.Login)
	assert.NotEmpty(t, registered.UserID)
}

func TestAuthService_RegisterUser_InvalidCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "", Password: "123"})
	require.ErrorIs(t, err, validators.ErrValidation)

	verr, ok := validators.AsValidationError(err)
	require.True(t, ok)
	assert.Len(t, verr.Fields, 2)
}

func TestAuthService_RegisterUser_LoginAlreadyExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo := newTestAuthSvc(t, ctrl)

	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrLoginAlreadyExists)

	_, err := svc.RegisterUser(context.Background(), models.User{Login: "alice", Password: "secret123"})
	require.ErrorIs(t, err, store.ErrLoginAlreadyExists)
}

// ── Login ─────────────────────────────────────────────────────────────────────

func TestAuthService_Login(t *testing.T) {
	stored := models.User{UserID: "u-1", Login: "alice", PasswordHash: testPasswordHash(t, "secret123")}

	tests := []struct {
		name     string
		input    models.User
		setup    func(repo *mock.MockUserRepository)
		wantErr  error
		wantUser string
	}{
		{
			name:  "success",
			input: models.User{Login: "alice", Password: "secret123"},
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(stored, nil)
			},
			wantUser: "u-1",
		},
		{
			name:  "wrong password",
			input: models.User{Login: "alice", Password: "nope-nope"},
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(stored, nil)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:  "unknown login",
			input: models.User{Login: "bob", Password: "secret123"},
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByLogin(gomock.Any(), "bob").Return(models.User{}, store.ErrNoUserWasFound)
			},
			wantErr: ErrInvalidCredentials,
		},
		{
			name:  "store unavailable",
			input: models.User{Login: "alice", Password: "secret123"},
			setup: func(repo *mock.MockUserRepository) {
				repo.EXPECT().FindUserByLogin(gomock.Any(), "alice").Return(models.User{}, store.ErrStoreUnavailable)
			},
			wantErr: store.ErrStoreUnavailable,
		},
		{
			name:    "empty password",
			input:   models.User{Login: "alice"},
			setup:   func(*mock.MockUserRepository) {},
			wantErr: ErrInvalidDataProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo := newTestAuthSvc(t, ctrl)
			tt.setup(repo)

			user, err := svc.Login(context.Background(), tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantUser, user.UserID)
			assert.Empty(t, user.PasswordHash)
		})
	}
}

// ── Tokens ────────────────────────────────────────────────────────────────────

func TestAuthService_CreateAndParseToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateToken(ctx, models.User{UserID: "u-1", Login: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, models.Identity{UserID: "u-1", UserName: "alice"}, parsed.Identity())
}

func TestAuthService_CreateToken_NoUserID(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	_, err := svc.CreateToken(context.Background(), models.User{Login: "alice"})
	require.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestAuthSvc(t, ctrl)

	other := NewAuthService(nil, config.App{TokenSignKey: "other", TokenIssuer: testAppConfig.TokenIssuer, TokenDuration: time.Hour}, logger.Nop())
	foreign, err := other.CreateToken(context.Background(), models.User{UserID: "u-1", Login: "alice"})
	require.NoError(t, err)

	for _, raw := range []string{"", "garbage", foreign.SignedString} {
		_, err := svc.ParseToken(context.Background(), raw)
		assert.True(t, errors.Is(err, ErrTokenIsExpiredOrInvalid), "token %q", raw)
	}
}
