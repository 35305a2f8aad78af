// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-task-keeper/internal/config"
	"github.com/MKhiriev/go-task-keeper/internal/crypto"
	"github.com/MKhiriev/go-task-keeper/internal/logger"
	"github.com/MKhiriev/go-task-keeper/internal/metrics"
	"github.com/MKhiriev/go-task-keeper/internal/store"
	"github.com/MKhiriev/go-task-keeper/internal/utils"
	"github.com/MKhiriev/go-task-keeper/internal/validators"
	"github.com/MKhiriev/go-task-keeper/internal/workers"
	"github.com/MKhiriev/go-task-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and a PasswordHasher for
// password digests.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher derives and verifies password digests.
	hasher crypto.PasswordHasher

	// hashPool runs hasher calls so that key derivation never occupies more
	// goroutines than the configured hashing concurrency.
	hashPool workers.Pool

	validator validators.Validator
	metrics   *metrics.Metrics

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// now is the clock used for token timestamps and user creation time.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(
	userRepository store.UserRepository,
	hasher crypto.PasswordHasher,
	hashPool workers.Pool,
	validator validators.Validator,
	cfg config.App,
	m *metrics.Metrics,
	logger *logger.Logger,
) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		hashPool:       hashPool,
		validator:      validator,
		metrics:        m,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		now:            time.Now,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// The username is looked up first so that a taken name is rejected without
// paying for a hash. The unique constraint of the users table remains the
// authority: a concurrent registration that wins the race surfaces as
// store.ErrLoginAlreadyExists and is reported the same way.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if the request fails validation.
//   - ErrUsernameAlreadyExists if the username is taken.
//   - A wrapped storage or hashing error otherwise.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Warn().Err(err).Str("username", request.Username).Msg("invalid registration data provided")
		a.metrics.ObserveAuth(metrics.OperationRegister, metrics.OutcomeInvalidInput)
		return models.User{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	_, err := a.userRepository.FindUserByUsername(ctx, request.Username)
	switch {
	case err == nil:
		log.Info().Str("username", request.Username).Msg("username is already taken")
		a.metrics.ObserveAuth(metrics.OperationRegister, metrics.OutcomeConflict)
		return models.User{}, ErrUsernameAlreadyExists
	case !errors.Is(err, store.ErrNoUserWasFound):
		log.Err(err).Str("username", request.Username).Msg("user search by username failed")
		a.metrics.ObserveAuth(metrics.OperationRegister, metrics.OutcomeError)
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	digest, err := a.hash(ctx, metrics.OperationRegister, request.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		a.metrics.ObserveAuth(metrics.OperationRegister, metrics.OutcomeError)
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.User{
		Username:     request.Username,
		Email:        request.Email,
		PasswordHash: digest,
		CreatedAt:    a.now().UTC().Truncate(time.Microsecond),
	})
	if errors.Is(err, store.ErrLoginAlreadyExists) {
		log.Info().Str("username", request.Username).Msg("username was taken concurrently")
		a.metrics.ObserveAuth(metrics.OperationRegister, metrics.OutcomeConflict)
		return models.User{}, ErrUsernameAlreadyExists
	}
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		a.metrics.ObserveAuth(metrics.OperationRegister, metrics.OutcomeError)
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	a.metrics.ObserveAuth(metrics.OperationRegister, metrics.OutcomeSuccess)
	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown username and a wrong password both yield ErrInvalidCredentials.
// For an unknown username the password is still verified against
// crypto.DummyDigest, so both failures take the same time.
//
// Returns the authenticated user record, ErrInvalidCredentials, or a wrapped
// storage error.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		log.Warn().Err(err).Msg("invalid login data provided")
		a.metrics.ObserveAuth(metrics.OperationLogin, metrics.OutcomeRejected)
		return models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, request.Username)
	if err != nil && !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("username", request.Username).Msg("user search by username failed")
		a.metrics.ObserveAuth(metrics.OperationLogin, metrics.OutcomeError)
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	digest := foundUser.PasswordHash
	if err != nil {
		digest = crypto.DummyDigest
	}

	matched, verifyErr := a.verify(ctx, request.Password, digest)
	if verifyErr != nil {
		log.Err(verifyErr).Msg("password verification was interrupted")
		a.metrics.ObserveAuth(metrics.OperationLogin, metrics.OutcomeError)
		return models.User{}, fmt.Errorf("password verification was interrupted: %w", verifyErr)
	}

	if err != nil || !matched {
		log.Info().Str("username", request.Username).Msg("invalid credentials")
		a.metrics.ObserveAuth(metrics.OperationLogin, metrics.OutcomeRejected)
		return models.User{}, ErrInvalidCredentials
	}

	a.metrics.ObserveAuth(metrics.OperationLogin, metrics.OutcomeSuccess)
	return foundUser, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim, and expires after tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey, a.now())
	if err != nil {
		logger.FromContext(ctx).Err(err).Int64("user_id", user.UserID).Msg("token creation failed")
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, bad signature, malformed)
// is normalised to ErrTokenIsExpiredOrInvalid so that callers do not need to
// inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now())
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		a.metrics.ObserveAuth(metrics.OperationToken, metrics.OutcomeRejected)
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func (a *authService) hash(ctx context.Context, operation, password string) (string, error) {
	var digest string
	err := a.hashPool.Do(ctx, func() (err error) {
		started := time.Now()
		defer func() { a.metrics.ObserveHash(operation, time.Since(started)) }()

		digest, err = a.hasher.Hash(password)
		return err
	})

	return digest, err
}

func (a *authService) verify(ctx context.Context, password, digest string) (bool, error) {
	var matched bool
	err := a.hashPool.Do(ctx, func() error {
		started := time.Now()
		defer func() { a.metrics.ObserveHash(metrics.OperationLogin, time.Since(started)) }()

		matched = a.hasher.Verify(password, digest)
		return nil
	})

	return matched, err
}
