// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-auth-keeper/internal/app"
	"github.com/MKhiriev/go-auth-keeper/internal/config"
	"github.com/MKhiriev/go-auth-keeper/internal/crypto"
	"github.com/MKhiriev/go-auth-keeper/internal/logger"
	"github.com/MKhiriev/go-auth-keeper/internal/store"
	"github.com/MKhiriev/go-auth-keeper/internal/token"
	"github.com/MKhiriev/go-auth-keeper/internal/utils"
	"github.com/MKhiriev/go-auth-keeper/models"
)

// authService is the concrete implementation of AuthService. Input shape is
// checked by the validation wrapper; this type applies the account rules.
type authService struct {
	userRepository store.UserRepository
	passwordHasher crypto.PasswordHasher
	tokenCodec     TokenCodec
	resetNotifier  ResetNotifier

	// fingerprintKey keys the HMAC that binds reset tokens to a password hash.
	fingerprintKey string

	// exposeResetToken returns reset tokens in the response. Never set in
	// production (enforced by config validation).
	exposeResetToken bool

	// dummyHash is compared against on unknown emails so that both login
	// failure paths cost one hash verification.
	dummyHashOnce sync.Once
	dummyHash     string

	logger *logger.Logger
}

// NewAuthService constructs the core AuthService. The returned service is
// safe for concurrent use.
func NewAuthService(
	userRepository store.UserRepository,
	passwordHasher crypto.PasswordHasher,
	tokenCodec TokenCodec,
	resetNotifier ResetNotifier,
	cfg config.App,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository:   userRepository,
		passwordHasher:   passwordHasher,
		tokenCodec:       tokenCodec,
		resetNotifier:    resetNotifier,
		fingerprintKey:   cfg.TokenSignKey,
		exposeResetToken: cfg.ExposeResetToken,
		logger:           logger,
	}
}

// Register implements [AuthService].
//
// The email pre-check gives the common case a clean answer; two concurrent
// registrations that both pass it are settled by the store's unique
// constraint, which surfaces as the same [ErrEmailAlreadyRegistered].
func (a *authService) Register(ctx context.Context, request models.RegisterRequest) error {
	log := logger.FromContext(ctx)

	_, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	switch {
	case err == nil:
		return ErrEmailAlreadyRegistered
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	passwordHash, err := a.passwordHasher.Hash(request.Password)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        request.Email,
		PasswordHash: passwordHash,
		FirstName:    optional(request.FirstName),
		LastName:     optional(request.LastName),
		Phone:        optional(request.Phone),
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return ErrEmailAlreadyRegistered
		}
		log.Err(err).Msg("user creation ended with error")
		return fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Int64("user_id", user.ID).Msg("user registered")
	return nil
}

// Login implements [AuthService]. Both failure causes return the same error
// and spend the same hashing work, so registered emails cannot be told apart.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.LoginResponse, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, request.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			a.verifyDummyPassword(request.Password)
			return models.LoginResponse{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by email failed")
		return models.LoginResponse{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.passwordHasher.Verify(request.Password, user.PasswordHash) {
		log.Debug().Int64("user_id", user.ID).Msg("wrong password")
		return models.LoginResponse{}, ErrInvalidCredentials
	}

	accessToken, err := a.issue(user.ID, models.PurposeAccess)
	if err != nil {
		return models.LoginResponse{}, err
	}
	refreshToken, err := a.issue(user.ID, models.PurposeRefresh)
	if err != nil {
		return models.LoginResponse{}, err
	}

	return models.LoginResponse{
		AccessToken:  accessToken.SignedString,
		RefreshToken: refreshToken.SignedString,
		User:         user.Profile(),
	}, nil
}

func (a *authService) verifyDummyPassword(password string) {
	a.dummyHashOnce.Do(func() {
		hash, err := a.passwordHasher.Hash("go-auth-keeper/unknown-user")
		if err != nil {
			a.logger.Err(err).Msg("dummy password hash failed")
			return
		}
		a.dummyHash = hash
	})
	a.passwordHasher.Verify(password, a.dummyHash)
}

// RefreshAccessToken implements [AuthService].
func (a *authService) RefreshAccessToken(ctx context.Context, refreshToken string) (models.AccessTokenResponse, error) {
	log := logger.FromContext(ctx)

	parsed, err := a.tokenCodec.Parse(refreshToken, models.PurposeRefresh)
	if err != nil {
		log.Debug().Err(err).Bool("expired", token.IsExpired(err)).Msg("refresh token rejected")
		return models.AccessTokenResponse{}, ErrInvalidRefreshToken
	}

	user, err := a.userRepository.FindUserByID(ctx, parsed.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.AccessTokenResponse{}, ErrInvalidRefreshToken
		}
		log.Err(err).Int64("user_id", parsed.UserID).Msg("user search by id failed")
		return models.AccessTokenResponse{}, fmt.Errorf("user search by id failed: %w", err)
	}

	accessToken, err := a.issue(user.ID, models.PurposeAccess)
	if err != nil {
		return models.AccessTokenResponse{}, err
	}

	return models.AccessTokenResponse{AccessToken: accessToken.SignedString}, nil
}

// RequestPasswordReset implements [AuthService].
func (a *authService) RequestPasswordReset(ctx context.Context, email string) (models.PasswordResetTicket, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.PasswordResetTicket{}, ErrEmailNotFound
		}
		log.Err(err).Msg("user search by email failed")
		return models.PasswordResetTicket{}, fmt.Errorf("user search by email failed: %w", err)
	}

	resetToken, err := a.issue(user.ID, models.PurposePasswordReset,
		token.WithPasswordFingerprint(a.passwordFingerprint(user.PasswordHash)))
	if err != nil {
		return models.PasswordResetTicket{}, err
	}

	if err = a.resetNotifier.DeliverResetToken(ctx, user, resetToken); err != nil {
		log.Err(err).Int64("user_id", user.ID).Msg("reset token delivery failed")
		return models.PasswordResetTicket{}, fmt.Errorf("%w: %w", ErrResetDeliveryFailed, err)
	}

	ticket := models.PasswordResetTicket{Message: app.MsgResetLinkSent}
	if a.exposeResetToken {
		ticket.ResetToken = resetToken.SignedString
		ticket.ResetTokenExposed = true
	}

	return ticket, nil
}

// ResetPassword implements [AuthService].
func (a *authService) ResetPassword(ctx context.Context, request models.PasswordReset) error {
	log := logger.FromContext(ctx)

	parsed, err := a.tokenCodec.Parse(request.ResetToken, models.PurposePasswordReset)
	if err != nil {
		log.Debug().Err(err).Bool("expired", token.IsExpired(err)).Msg("reset token rejected")
		return ErrInvalidResetToken
	}

	user, err := a.userRepository.FindUserByID(ctx, parsed.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}
		log.Err(err).Int64("user_id", parsed.UserID).Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	// A changed password invalidates every reset token issued before it.
	expected := a.passwordFingerprint(user.PasswordHash)
	if !utils.HashesEqual(expected, parsed.PasswordFingerprint) {
		log.Debug().Int64("user_id", user.ID).Msg("stale reset token")
		return ErrInvalidResetToken
	}

	passwordHash, err := a.passwordHasher.Hash(request.NewPassword)
	if err != nil {
		if errors.Is(err, crypto.ErrPasswordTooLong) {
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	if err = a.userRepository.UpdatePassword(ctx, user.ID, user.PasswordHash, passwordHash); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}
		if errors.Is(err, store.ErrPasswordChanged) {
			// a concurrent reset with the same token won
			log.Debug().Int64("user_id", user.ID).Msg("reset token already used")
			return ErrInvalidResetToken
		}
		log.Err(err).Int64("user_id", user.ID).Msg("password update failed")
		return fmt.Errorf("password update failed: %w", err)
	}

	log.Info().Int64("user_id", user.ID).Msg("password reset")
	return nil
}

// Authorize implements [AuthService]. Token failures and unknown subjects
// return [ErrInvalidToken]; store outages are passed through.
func (a *authService) Authorize(ctx context.Context, accessToken string) (models.User, error) {
	log := logger.FromContext(ctx)

	parsed, err := a.tokenCodec.Parse(accessToken, models.PurposeAccess)
	if err != nil {
		log.Debug().Err(err).Bool("expired", token.IsExpired(err)).Msg("access token rejected")
		return models.User{}, ErrInvalidToken
	}

	user, err := a.userRepository.FindUserByID(ctx, parsed.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrInvalidToken
		}
		log.Err(err).Int64("user_id", parsed.UserID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

func (a *authService) issue(userID int64, purpose models.TokenPurpose, opts ...token.IssueOption) (models.Token, error) {
	t, err := a.tokenCodec.Issue(userID, purpose, opts...)
	if err != nil {
		a.logger.Err(err).Str("purpose", purpose.String()).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}
	return t, nil
}

// passwordFingerprint is an HMAC of the stored hash, so the token payload
// does not reveal the hash itself.
func (a *authService) passwordFingerprint(passwordHash string) string {
	return utils.HashString(passwordHash, a.fingerprintKey)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
