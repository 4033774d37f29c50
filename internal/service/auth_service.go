package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"lofinight/internal/authz"
	"lofinight/internal/entity"
	"lofinight/internal/repository"
	"lofinight/internal/utils"
)

// dummy bcrypt hash compared when the account does not exist, so lookups and
// password mismatches take comparable time.
const dummyPasswordHash = "$2a$12$CwTycUXWue0Thq9StjUM0uJ8yQbWc1x9uxw2sQ2sXUNx5x9xJ9F2S"

type AuthService struct {
	users  repository.UserRepository
	emails EmailSender
	hasher PasswordHasher
	tokens TokenIssuer
	clock  Clock
	logger *logrus.Logger
	config AuthConfig
}

func NewAuthService(
	users repository.UserRepository,
	emails EmailSender,
	hasher PasswordHasher,
	tokens TokenIssuer,
	clock Clock,
	logger *logrus.Logger,
	config AuthConfig,
) *AuthService {
	return &AuthService{
		users:  users,
		emails: emails,
		hasher: hasher,
		tokens: tokens,
		clock:  clock,
		logger: logger,
		config: config,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	FullName string
}

type AuthResult struct {
	User   *entity.User
	Tokens TokenPair
}

// Register creates a user with a hashed password and issues a token pair.
// The welcome email is best-effort: a send failure is logged and swallowed.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if strings.TrimSpace(input.Email) == "" || strings.TrimSpace(input.Password) == "" {
		return nil, ErrInvalidInput
	}

	email := utils.NormalizeEmail(input.Email)
	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailAlreadyUsed
	}

	username := strings.ToLower(strings.TrimSpace(input.Username))
	existing, err = s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameAlreadyUsed
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Username: username,
		Email:    email,
		Password: hash,
		FullName: strings.TrimSpace(input.FullName),
		Role:     authz.RoleUser,
		IsActive: true,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	tokens, err := s.tokens.GenerateTokenPair(user.ID.String(), user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	if s.emails != nil {
		if err := s.emails.SendWelcomeEmail(ctx, user.Email, user.FullName); err != nil {
			s.log().WithError(err).WithField("email", user.Email).Warn("welcome email failed")
		}
	}

	return &AuthResult{User: user, Tokens: tokens}, nil
}

// Login verifies credentials and issues a fresh token pair. Five consecutive
// failures lock the account; the lock expires lazily on a later attempt.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(password) == "" {
		return nil, ErrInvalidInput
	}

	user, err := s.users.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil {
		_ = s.hasher.Verify(dummyPasswordHash, password)
		return nil, ErrInvalidCredentials
	}

	now := s.now()
	if user.IsLocked(now) {
		return nil, ErrAccountLocked
	}
	if !user.IsActive {
		return nil, ErrAccountDisabled
	}

	if !s.hasher.Verify(user.Password, password) {
		if err := s.recordFailedLogin(ctx, user); err != nil {
			return nil, err
		}
		return nil, ErrInvalidCredentials
	}

	user.LoginAttempts = 0
	user.LockUntil = nil
	user.LastLoginAt = &now
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	tokens, err := s.tokens.GenerateTokenPair(user.ID.String(), user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Tokens: tokens}, nil
}

// recordFailedLogin bumps the attempt counter and locks the account once the
// threshold is reached. An expired lock resets the counter first. The read-
// modify-write is not transactional; concurrent failures may race on the
// counter, matching the storage semantics this service was built against.
func (s *AuthService) recordFailedLogin(ctx context.Context, user *entity.User) error {
	now := s.now()
	if user.LockUntil != nil && user.LockUntil.Before(now) {
		user.LoginAttempts = 1
		user.LockUntil = nil
		return s.users.Update(ctx, user)
	}

	user.LoginAttempts++
	if user.LoginAttempts >= s.lockoutAttempts() && !user.IsLocked(now) {
		lockUntil := now.Add(s.lockoutDuration())
		user.LockUntil = &lockUntil
	}
	return s.users.Update(ctx, user)
}

func (s *AuthService) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return ErrInvalidInput
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if !s.hasher.Verify(user.Password, currentPassword) {
		return ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	user.Password = hash
	return s.users.Update(ctx, user)
}

// ForgotPassword always reports success so callers cannot probe which emails
// exist. The email send, when it happens, must succeed.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return ErrInvalidInput
	}

	user, err := s.users.FindByEmail(ctx, utils.NormalizeEmail(email))
	if err != nil {
		return err
	}
	if user == nil {
		return nil
	}

	token, err := utils.GenerateRandomToken(32)
	if err != nil {
		return err
	}
	tokenHash := utils.HashToken(token)
	expires := s.now().Add(s.resetTokenTTL())

	user.PasswordResetToken = &tokenHash
	user.PasswordResetExpires = &expires
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	if s.emails == nil {
		return ErrEmailSendFailed
	}
	if err := s.emails.SendPasswordResetEmail(ctx, user.Email, token, user.FullName); err != nil {
		return fmt.Errorf("%w: %v", ErrEmailSendFailed, err)
	}
	return nil
}

// ResetPassword consumes a reset token: the stored hash must match and the
// expiry must be in the future. The token fields are cleared on success, so
// a token works exactly once.
func (s *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	if strings.TrimSpace(token) == "" || strings.TrimSpace(newPassword) == "" {
		return ErrInvalidInput
	}

	user, err := s.users.FindByResetTokenHash(ctx, utils.HashToken(token), s.now())
	if err != nil {
		return err
	}
	if user == nil {
		return ErrInvalidToken
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}
	user.Password = hash
	user.PasswordResetToken = nil
	user.PasswordResetExpires = nil
	return s.users.Update(ctx, user)
}

// SendEmailOTP stores the hash of a fresh numeric code and emails the
// plaintext. Unlike the welcome email, a send failure here is an error.
func (s *AuthService) SendEmailOTP(ctx context.Context, userID uuid.UUID) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.IsEmailVerified {
		return ErrEmailAlreadyVerified
	}

	otp, err := utils.GenerateOTP(s.otpLength())
	if err != nil {
		return err
	}
	otpHash := utils.HashToken(otp)
	expires := s.now().Add(s.otpTTL())

	user.EmailVerificationToken = &otpHash
	user.EmailVerificationExpires = &expires
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}

	if s.emails == nil {
		return ErrEmailSendFailed
	}
	if err := s.emails.SendOTPEmail(ctx, user.Email, otp, user.FullName); err != nil {
		return fmt.Errorf("%w: %v", ErrEmailSendFailed, err)
	}
	return nil
}

// VerifyEmailOTP marks the email verified when the code's hash matches and
// the stored expiry has not passed. The fields are cleared on success, so a
// second attempt with the same code is rejected.
func (s *AuthService) VerifyEmailOTP(ctx context.Context, userID uuid.UUID, otp string) error {
	if strings.TrimSpace(otp) == "" {
		return ErrInvalidInput
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}
	if user.IsEmailVerified {
		return ErrEmailAlreadyVerified
	}
	if user.EmailVerificationToken == nil || user.EmailVerificationExpires == nil {
		return ErrInvalidOTP
	}
	if user.EmailVerificationExpires.Before(s.now()) {
		return ErrInvalidOTP
	}
	if utils.HashToken(otp) != *user.EmailVerificationToken {
		return ErrInvalidOTP
	}

	user.IsEmailVerified = true
	user.EmailVerificationToken = nil
	user.EmailVerificationExpires = nil
	return s.users.Update(ctx, user)
}

// RefreshToken verifies a refresh token against the refresh secret only and
// issues a brand-new pair from the decoded identity.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if strings.TrimSpace(refreshToken) == "" {
		return nil, ErrInvalidToken
	}

	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidToken
	}

	tokens, err := s.tokens.GenerateTokenPair(claims.UserID, claims.Email, claims.Role)
	if err != nil {
		return nil, err
	}
	return &tokens, nil
}

func (s *AuthService) now() time.Time {
	if s.clock == nil {
		return time.Now()
	}
	return s.clock.Now()
}

func (s *AuthService) log() *logrus.Logger {
	if s.logger == nil {
		return logrus.StandardLogger()
	}
	return s.logger
}

func (s *AuthService) otpLength() int {
	if s.config.OTPLength > 0 {
		return s.config.OTPLength
	}
	return 6
}

func (s *AuthService) otpTTL() time.Duration {
	if s.config.OTPTTL > 0 {
		return s.config.OTPTTL
	}
	return 5 * time.Minute
}

func (s *AuthService) resetTokenTTL() time.Duration {
	if s.config.ResetTokenTTL > 0 {
		return s.config.ResetTokenTTL
	}
	return time.Hour
}

func (s *AuthService) lockoutAttempts() int {
	if s.config.LockoutAttempts > 0 {
		return s.config.LockoutAttempts
	}
	return 5
}

func (s *AuthService) lockoutDuration() time.Duration {
	if s.config.LockoutDuration > 0 {
		return s.config.LockoutDuration
	}
	return 2 * time.Hour
}
