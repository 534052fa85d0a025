package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/crypto"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/mock"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/token"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testSignKey = "test-sign-key-test-sign-key-0123"

type authMocks struct {
	repo     *mock.MockUserRepository
	hasher   *mock.MockPasswordHasher
	codec    *mock.MockTokenCodec
	notifier *mock.MockResetNotifier
}

func newTestAuthService(t *testing.T, expose bool) (AuthService, authMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	m := authMocks{
		repo:     mock.NewMockUserRepository(ctrl),
		hasher:   mock.NewMockPasswordHasher(ctrl),
		codec:    mock.NewMockTokenCodec(ctrl),
		notifier: mock.NewMockResetNotifier(ctrl),
	}

	svc := NewAuthService(m.repo, m.hasher, m.codec, m.notifier,
		config.App{TokenSignKey: testSignKey, ExposeResetToken: expose}, logger.Nop())

	return svc, m
}

func strPtr(s string) *string { return &s }

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	svc, m := newTestAuthService(t, false)
	ctx := context.Background()

	gomock.InOrder(
		m.repo.EXPECT().FindUserByEmail(ctx, "john@example.com").Return(models.User{}, store.ErrUserNotFound),
		m.hasher.EXPECT().Hash("password123").Return("hashed", nil),
		m.repo.EXPECT().CreateUser(ctx, models.User{
			Email:        "john@example.com",
			PasswordHash: "hashed",
			FirstName:    strPtr("John"),
		}).Return(models.User{ID: 1, Email: "john@example.com"}, nil),
	)

	err := svc.Register(ctx, models.RegisterRequest{
		Email:     "john@example.com",
		Password:  "password123",
		FirstName: "John",
	})

	require.NoError(t, err)
}

func TestAuthService_Register_EmailTakenOnPreCheck(t *testing.T) {
	svc, m := newTestAuthService(t, false)
	ctx := context.Background()

	m.repo.EXPECT().FindUserByEmail(ctx, "john@example.com").Return(models.User{ID: 7}, nil)

	err := svc.Register(ctx, models.RegisterRequest{Email: "john@example.com", Password: "password123"})

	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestAuthService_Register_UniqueViolationOnInsert(t *testing.T) {
	svc, m := newTestAuthService(t, false)
	ctx := context.Background()

	m.repo.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	m.hasher.EXPECT().Hash(gomock.Any()).Return("hashed", nil)
	m.repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	err := svc.Register(ctx, models.RegisterRequest{Email: "john@example.com", Password: "password123"})

	assert.ErrorIs(t, err, ErrEmailAlreadyRegistered)
}

func TestAuthService_Register_PasswordTooLongForHasher(t *testing.T) {
	svc, m := newTestAuthService(t, false)
	ctx := context.Background()

	m.repo.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, store.ErrUserNotFound)
	m.hasher.EXPECT().Hash(gomock.Any()).Return("", crypto.ErrPasswordTooLong)

	err := svc.Register(ctx, models.RegisterRequest{Email: "john@example.com", Password: "password123"})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Register_StoreFailure(t *testing.T) {
	svc, m := newTestAuthService(t, false)
	ctx := context.Background()
	storeErr := errors.New("connection refused")

	m.repo.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{}, storeErr)

	err := svc.Register(ctx, models.RegisterRequest{Email: "john@example.com", Password: "password123"})

	require.Error(t, err)
	assert.ErrorIs(t, err, storeErr)
	assert.NotErrorIs(t, err, ErrEmailAlreadyRegistered)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	svc, m := newTestAuthService(t, false)
	ctx := context.Background()
	user := models.User{ID: 5, Email: "john@example.com", PasswordHash: "hashed", Phone: strPtr("12345678901")}

	m.repo.EXPECT().FindUserByEmail(ctx, "john@example.com").Return(user, nil)
	m.hasher.EXPECT().Verify("password123", "hashed").Return(true)
	m.codec.EXPECT().Issue(int64(5), models.PurposeAccess).Return(models.Token{SignedString: "access"}, nil)
	m.codec.EXPECT().Issue(int64(5), models.PurposeRefresh).Return(models.Token{SignedString: "refresh"}, nil)

	got, err := svc.Login(ctx, models.LoginRequest{Email: "john@example.com", Password: "password123"})

	require.NoError(t, err)
	assert.Equal(t, "access", got.AccessToken)
	assert.Equal(t, "refresh", got.RefreshToken)
	assert.Equal(t, user.Profile(), got.User)
}

func TestAuthService_Login_FailuresAreIndistinguishable(t *testing.T) {
	ctx := context.Background()

	unknownSvc, unknown := newTestAuthService(t, false)
	unknown.repo.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrUserNotFound)
	unknown.hasher.EXPECT().Hash(gomock.Any()).Return("dummy-hash", nil)
	unknown.hasher.EXPECT().Verify("password123", "dummy-hash").Return(false)
	_, unknownErr := unknownSvc.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: "password123"})

	wrongSvc, wrong := newTestAuthService(t, false)
	wrong.repo.EXPECT().FindUserByEmail(ctx, "john@example.com").Return(models.User{ID: 1, PasswordHash: "hashed"}, nil)
	wrong.hasher.EXPECT().Verify("bad-password", "hashed").Return(false)
	_, wrongErr := wrongSvc.Login(ctx, models.LoginRequest{Email: "john@example.com", Password: "bad-password"})

	require.ErrorIs(t, unknownErr, ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, ErrInvalidCredentials)
	assert.Equal(t, unknownErr.Error(), wrongErr.Error())
}

// TestAuthService_Login_UnknownEmailVerifiesHash checks that a login for an
// unregistered email still pays for a hash comparison, and that the dummy hash
// is computed only once.
func TestAuthService_Login_UnknownEmailVerifiesHash(t *testing.T) {
	svc, m := newTestAuthService(t, false)
	ctx := context.Background()

	m.repo.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrUserNotFound).Times(3)
	m.hasher.EXPECT().Hash(gomock.Any()).Return("dummy-hash", nil).Times(1)
	m.hasher.EXPECT().Verify(gomock.Any(), "dummy-hash").Return(false).Times(3)

	for _, password := range []string{"password123", "letmein-please", "x"} {
		_, err := svc.Login(ctx, models.LoginRequest{Email: "ghost@example.com", Password: password})
		require.ErrorIs(t, err, ErrInvalidCredentials)
	}
}

func TestAuthService_Login_TokenIssueFails(t *testing.T) {
	svc, m := newTestAuthService(t, false)
	ctx := context.Background()

	m.repo.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{ID: 5, PasswordHash: "hashed"}, nil)
	m.hasher.EXPECT().Verify(gomock.Any(), gomock.Any()).Return(true)
	m.codec.EXPECT().Issue(int64(5), models.PurposeAccess).Return(models.Token{}, errors.New("boom"))

	_, err := svc.Login(ctx, models.LoginRequest{Email: "john@example.com", Password: "password123"})

	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

// ── RefreshAccessToken ───────────────────────────────────────────────────────

func TestAuthService_RefreshAccessToken(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(m authMocks)
		wantToken string
		wantErr   error
	}{
		{
			name: "success",
			setup: func(m authMocks) {
				m.codec.EXPECT().Parse("refresh", models.PurposeRefresh).Return(models.Token{UserID: 3}, nil)
				m.repo.EXPECT().FindUserByID(gomock.Any(), int64(3)).Return(models.User{ID: 3}, nil)
				m.codec.EXPECT().Issue(int64(3), models.PurposeAccess).Return(models.Token{SignedString: "new-access"}, nil)
			},
			wantToken: "new-access",
		},
		{
			name: "token rejected by codec",
			setup: func(m authMocks) {
				m.codec.EXPECT().Parse("refresh", models.PurposeRefresh).Return(models.Token{}, token.ErrTokenExpired)
			},
			wantErr: ErrInvalidRefreshToken,
		},
		{
			name: "user deleted",
			setup: func(m authMocks) {
				m.codec.EXPECT().Parse("refresh", models.PurposeRefresh).Return(models.Token{UserID: 3}, nil)
				m.repo.EXPECT().FindUserByID(gomock.Any(), int64(3)).Return(models.User{}, store.ErrUserNotFound)
			},
			wantErr: ErrInvalidRefreshToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestAuthService(t, false)
			tt.setup(m)

			got, err := svc.RefreshAccessToken(context.Background(), "refresh")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, ErrInvalidToken)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, got.AccessToken)
		})
	}
}

// ── RequestPasswordReset ─────────────────────────────────────────────────────

func TestAuthService_RequestPasswordReset_Success(t *testing.T) {
	for _, expose := range []bool{false, true} {
		t.Run(map[bool]string{false: "token hidden", true: "token exposed"}[expose], func(t *testing.T) {
			svc, m := newTestAuthService(t, expose)
			ctx := context.Background()
			user := models.User{ID: 9, Email: "john@example.com", PasswordHash: "hashed"}
			resetToken := models.Token{SignedString: "reset", UserID: 9, Purpose: models.PurposePasswordReset}

			m.repo.EXPECT().FindUserByEmail(ctx, "john@example.com").Return(user, nil)
			m.codec.EXPECT().Issue(int64(9), models.PurposePasswordReset, gomock.Any()).Return(resetToken, nil)
			m.notifier.EXPECT().DeliverResetToken(ctx, user, resetToken).Return(nil)

			got, err := svc.RequestPasswordReset(ctx, "john@example.com")

			require.NoError(t, err)
			assert.Equal(t, "Password reset link sent", got.Message)
			if expose {
				assert.Equal(t, "reset", got.ResetToken)
				assert.True(t, got.ResetTokenExposed)
			} else {
				assert.Empty(t, got.ResetToken)
				assert.False(t, got.ResetTokenExposed)
			}
		})
	}
}

func TestAuthService_RequestPasswordReset_UnknownEmail(t *testing.T) {
	svc, m := newTestAuthService(t, true)
	ctx := context.Background()

	m.repo.EXPECT().FindUserByEmail(ctx, "ghost@example.com").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.RequestPasswordReset(ctx, "ghost@example.com")

	require.ErrorIs(t, err, ErrEmailNotFound)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestAuthService_RequestPasswordReset_DeliveryFails(t *testing.T) {
	svc, m := newTestAuthService(t, true)
	ctx := context.Background()

	m.repo.EXPECT().FindUserByEmail(ctx, gomock.Any()).Return(models.User{ID: 9, PasswordHash: "hashed"}, nil)
	m.codec.EXPECT().Issue(int64(9), models.PurposePasswordReset, gomock.Any()).Return(models.Token{SignedString: "reset"}, nil)
	m.notifier.EXPECT().DeliverResetToken(ctx, gomock.Any(), gomock.Any()).Return(errors.New("webhook down"))

	got, err := svc.RequestPasswordReset(ctx, "john@example.com")

	require.ErrorIs(t, err, ErrResetDeliveryFailed)
	assert.Empty(t, got.ResetToken)
}

// ── ResetPassword ────────────────────────────────────────────────────────────

func TestAuthService_ResetPassword(t *testing.T) {
	currentHash := "current-hash"
	validFingerprint := utils.HashString(currentHash, testSignKey)
	request := models.PasswordReset{ResetToken: "reset", NewPassword: "new-password"}

	tests := []struct {
		name    string
		setup   func(m authMocks)
		wantErr error
	}{
		{
			name: "success",
			setup: func(m authMocks) {
				m.codec.EXPECT().Parse("reset", models.PurposePasswordReset).
					Return(models.Token{UserID: 4, PasswordFingerprint: validFingerprint}, nil)
				m.repo.EXPECT().FindUserByID(gomock.Any(), int64(4)).Return(models.User{ID: 4, PasswordHash: currentHash}, nil)
				m.hasher.EXPECT().Hash("new-password").Return("new-hash", nil)
				m.repo.EXPECT().UpdatePassword(gomock.Any(), int64(4), currentHash, "new-hash").Return(nil)
			},
		},
		{
			name: "token rejected by codec",
			setup: func(m authMocks) {
				m.codec.EXPECT().Parse("reset", models.PurposePasswordReset).Return(models.Token{}, token.ErrTokenInvalid)
			},
			wantErr: ErrInvalidResetToken,
		},
		{
			name: "user gone",
			setup: func(m authMocks) {
				m.codec.EXPECT().Parse("reset", models.PurposePasswordReset).
					Return(models.Token{UserID: 4, PasswordFingerprint: validFingerprint}, nil)
				m.repo.EXPECT().FindUserByID(gomock.Any(), int64(4)).Return(models.User{}, store.ErrUserNotFound)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "password changed since issuance",
			setup: func(m authMocks) {
				m.codec.EXPECT().Parse("reset", models.PurposePasswordReset).
					Return(models.Token{UserID: 4, PasswordFingerprint: validFingerprint}, nil)
				m.repo.EXPECT().FindUserByID(gomock.Any(), int64(4)).Return(models.User{ID: 4, PasswordHash: "other-hash"}, nil)
			},
			wantErr: ErrInvalidResetToken,
		},
		{
			name: "missing fingerprint",
			setup: func(m authMocks) {
				m.codec.EXPECT().Parse("reset", models.PurposePasswordReset).Return(models.Token{UserID: 4}, nil)
				m.repo.EXPECT().FindUserByID(gomock.Any(), int64(4)).Return(models.User{ID: 4, PasswordHash: currentHash}, nil)
			},
			wantErr: ErrInvalidResetToken,
		},
		{
			name: "user deleted between lookup and update",
			setup: func(m authMocks) {
				m.codec.EXPECT().Parse("reset", models.PurposePasswordReset).
					Return(models.Token{UserID: 4, PasswordFingerprint: validFingerprint}, nil)
				m.repo.EXPECT().FindUserByID(gomock.Any(), int64(4)).Return(models.User{ID: 4, PasswordHash: currentHash}, nil)
				m.hasher.EXPECT().Hash("new-password").Return("new-hash", nil)
				m.repo.EXPECT().UpdatePassword(gomock.Any(), int64(4), currentHash, "new-hash").Return(store.ErrUserNotFound)
			},
			wantErr: ErrUserNotFound,
		},
		{
			name: "concurrent reset changed the password first",
			setup: func(m authMocks) {
				m.codec.EXPECT().Parse("reset", models.PurposePasswordReset).
					Return(models.Token{UserID: 4, PasswordFingerprint: validFingerprint}, nil)
				m.repo.EXPECT().FindUserByID(gomock.Any(), int64(4)).Return(models.User{ID: 4, PasswordHash: currentHash}, nil)
				m.hasher.EXPECT().Hash("new-password").Return("new-hash", nil)
				m.repo.EXPECT().UpdatePassword(gomock.Any(), int64(4), currentHash, "new-hash").Return(store.ErrPasswordChanged)
			},
			wantErr: ErrInvalidResetToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestAuthService(t, false)
			tt.setup(m)

			err := svc.ResetPassword(context.Background(), request)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

// ── Authorize ────────────────────────────────────────────────────────────────

func TestAuthService_Authorize(t *testing.T) {
	storeErr := errors.New("db down")

	tests := []struct {
		name         string
		setup        func(m authMocks)
		wantErr      error
		wantNotToken bool
	}{
		{
			name: "success",
			setup: func(m authMocks) {
				m.codec.EXPECT().Parse("access", models.PurposeAccess).Return(models.Token{UserID: 2}, nil)
				m.repo.EXPECT().FindUserByID(gomock.Any(), int64(2)).Return(models.User{ID: 2}, nil)
			},
		},
		{
			name: "invalid token",
			setup: func(m authMocks) {
				m.codec.EXPECT().Parse("access", models.PurposeAccess).Return(models.Token{}, token.ErrTokenInvalid)
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "unknown subject",
			setup: func(m authMocks) {
				m.codec.EXPECT().Parse("access", models.PurposeAccess).Return(models.Token{UserID: 2}, nil)
				m.repo.EXPECT().FindUserByID(gomock.Any(), int64(2)).Return(models.User{}, store.ErrUserNotFound)
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "store outage is not an auth failure",
			setup: func(m authMocks) {
				m.codec.EXPECT().Parse("access", models.PurposeAccess).Return(models.Token{UserID: 2}, nil)
				m.repo.EXPECT().FindUserByID(gomock.Any(), int64(2)).Return(models.User{}, storeErr)
			},
			wantErr:      storeErr,
			wantNotToken: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestAuthService(t, false)
			tt.setup(m)

			user, err := svc.Authorize(context.Background(), "access")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				if tt.wantNotToken {
					assert.NotErrorIs(t, err, ErrInvalidToken)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(2), user.ID)
		})
	}
}

// ── Real codec and hasher ────────────────────────────────────────────────────

// memoryUsers is a minimal in-memory UserRepository.
type memoryUsers struct {
	byID map[int64]models.User
}

func (r *memoryUsers) CreateUser(_ context.Context, user models.User) (models.User, error) {
	for _, u := range r.byID {
		if u.Email == user.Email {
			return models.User{}, store.ErrEmailAlreadyExists
		}
	}
	user.ID = int64(len(r.byID) + 1)
	r.byID[user.ID] = user
	return user, nil
}

func (r *memoryUsers) FindUserByEmail(_ context.Context, email string) (models.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, store.ErrUserNotFound
}

func (r *memoryUsers) FindUserByID(_ context.Context, userID int64) (models.User, error) {
	u, ok := r.byID[userID]
	if !ok {
		return models.User{}, store.ErrUserNotFound
	}
	return u, nil
}

func (r *memoryUsers) UpdatePassword(_ context.Context, userID int64, currentHash, newHash string) error {
	u, ok := r.byID[userID]
	if !ok {
		return store.ErrUserNotFound
	}
	if u.PasswordHash != currentHash {
		return store.ErrPasswordChanged
	}
	u.PasswordHash = newHash
	r.byID[userID] = u
	return nil
}

type discardNotifier struct{}

func (discardNotifier) DeliverResetToken(context.Context, models.User, models.Token) error {
	return nil
}

func TestAuthService_ResetFlow_RealCodec(t *testing.T) {
	ctx := context.Background()
	codec, err := token.NewCodec(token.Config{
		SignKey:    testSignKey,
		Issuer:     "go-auth-keeper",
		AccessTTL:  time.Hour,
		RefreshTTL: 720 * time.Hour,
		ResetTTL:   time.Hour,
	}, nil)
	require.NoError(t, err)

	cfg := config.App{TokenSignKey: testSignKey, ExposeResetToken: true}
	core := NewAuthService(&memoryUsers{byID: map[int64]models.User{}},
		crypto.NewBcryptHasher(4), codec, discardNotifier{}, cfg, logger.Nop())
	svc := NewAuthValidationService().Wrap(core)

	require.NoError(t, svc.Register(ctx, models.RegisterRequest{Email: "john@example.com", Password: "password123"}))

	login, err := svc.Login(ctx, models.LoginRequest{Email: "john@example.com", Password: "password123"})
	require.NoError(t, err)

	_, err = svc.Authorize(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidToken, "refresh token must not authorize")

	ticket, err := svc.RequestPasswordReset(ctx, "john@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, ticket.ResetToken)

	_, err = svc.Authorize(ctx, ticket.ResetToken)
	assert.ErrorIs(t, err, ErrInvalidToken, "reset token must not authorize")

	reset := models.PasswordReset{ResetToken: ticket.ResetToken, NewPassword: "new-password-1"}
	require.NoError(t, svc.ResetPassword(ctx, reset))

	_, err = svc.Login(ctx, models.LoginRequest{Email: "john@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, models.LoginRequest{Email: "john@example.com", Password: "new-password-1"})
	assert.NoError(t, err)

	reset.NewPassword = "another-password"
	assert.ErrorIs(t, svc.ResetPassword(ctx, reset), ErrInvalidResetToken, "reset token must be single-use")
}
