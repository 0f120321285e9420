package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/nuraya/storefront-api/internal/config"
	"github.com/nuraya/storefront-api/internal/model"
	"github.com/nuraya/storefront-api/internal/repository"
	"github.com/nuraya/storefront-api/internal/sanitize"
	"github.com/nuraya/storefront-api/shared/auth"
	"github.com/nuraya/storefront-api/shared/mailer"
	"github.com/nuraya/storefront-api/shared/security"
)

// AuthUsecase defines the account lifecycle: registration with email
// verification, login, and password reset.
type AuthUsecase interface {
	Register(ctx context.Context, params RegisterParams) error
	Login(ctx context.Context, params LoginParams) (*AuthenticatedUser, error)
	Verify(ctx context.Context, email, code string) error
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}

// RegisterParams defines the parameters for user registration.
type RegisterParams struct {
	Name     string
	Email    string
	Password string
	Birthday *time.Time
}

// LoginParams defines the parameters for user login.
type LoginParams struct {
	Email    string
	Password string
}

// AuthenticatedUser is the login result handed back to the client.
type AuthenticatedUser struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	Token   string `json:"token"`
}

var (
	ErrInvalidName         = errors.New("name is required")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrWeakPassword        = errors.New("password must be at least 6 characters with letters and digits")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrUserNotVerified     = errors.New("account is not verified")
	ErrInvalidVerification = errors.New("invalid or expired verification code")
	ErrUserNotFound        = errors.New("user not found")
	ErrInvalidResetToken   = errors.New("invalid or expired reset token")
)

const (
	verificationCodeTTL = 24 * time.Hour
	resetTokenTTL       = 10 * time.Minute
)

type authUsecase struct {
	userRepo repository.UserRepository
	jwtAuth  auth.JWTAuthenticator
	sender   EmailSender
	cfg      *config.Config
	logger   *zerolog.Logger
}

// NewAuthUsecase creates a new instance of AuthUsecase.
func NewAuthUsecase(
	userRepo repository.UserRepository,
	jwtAuth auth.JWTAuthenticator,
	sender EmailSender,
	cfg *config.Config,
	logger *zerolog.Logger,
) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		jwtAuth:  jwtAuth,
		sender:   sender,
		cfg:      cfg,
		logger:   logger,
	}
}

func (u *authUsecase) Register(ctx context.Context, params RegisterParams) error {
	name := sanitize.String(params.Name)
	if name == "" {
		return ErrInvalidName
	}
	if !sanitize.IsValidEmail(params.Email) {
		return ErrInvalidEmail
	}
	if !sanitize.IsStrongPassword(params.Password) {
		return ErrWeakPassword
	}

	email := sanitize.String(params.Email)

	passwordHash, err := security.HashPassword(sanitize.String(params.Password))
	if err != nil {
		return err
	}

	code, err := generateVerificationCode()
	if err != nil {
		return err
	}

	user, err := u.userRepo.CreateUser(ctx, &model.User{
		Name:                      name,
		Email:                     email,
		PasswordHash:              passwordHash,
		Birthday:                  params.Birthday,
		VerificationCode:          code,
		VerificationCodeExpiresAt: time.Now().Add(verificationCodeTTL),
		Wishlist:                  []bson.ObjectID{},
	})
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrUserAlreadyExists
		}
		return err
	}

	htmlBody := mailer.VerificationEmail(user.Name, code)
	if err := u.sender.SendHTML([]string{user.Email}, "Verify your account", htmlBody); err != nil {
		// The account is unusable without the code, so remove it and let the
		// user retry registration.
		if _, delErr := u.userRepo.DeleteUser(ctx, user.ID.Hex()); delErr != nil {
			u.logger.Error().Err(delErr).Msg("failed to remove user after email failure")
		}
		return fmt.Errorf("send verification email: %w", err)
	}

	return nil
}

func (u *authUsecase) Login(ctx context.Context, params LoginParams) (*AuthenticatedUser, error) {
	if !sanitize.IsValidEmail(params.Email) {
		return nil, ErrInvalidEmail
	}

	user, err := u.userRepo.GetUserByEmail(ctx, sanitize.String(params.Email))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if ok, err := security.VerifyPassword(sanitize.String(params.Password), user.PasswordHash); err != nil {
		return nil, err
	} else if !ok {
		return nil, ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, ErrUserNotVerified
	}

	token, err := u.jwtAuth.GenerateToken(user.ID.Hex())
	if err != nil {
		return nil, err
	}

	return &AuthenticatedUser{
		ID:      user.ID.Hex(),
		Name:    user.Name,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		Token:   token,
	}, nil
}

func (u *authUsecase) Verify(ctx context.Context, email, code string) error {
	if !sanitize.IsValidEmail(email) {
		return ErrInvalidEmail
	}

	user, err := u.userRepo.GetUserByVerification(
		ctx,
		sanitize.String(email),
		sanitize.String(code),
		time.Now(),
	)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrInvalidVerification
		}
		return err
	}

	user.IsVerified = true
	user.VerificationCode = ""
	user.VerificationCodeExpiresAt = time.Time{}

	_, err = u.userRepo.SaveUser(ctx, user)
	return err
}

func (u *authUsecase) ForgotPassword(ctx context.Context, email string) error {
	if !sanitize.IsValidEmail(email) {
		return ErrInvalidEmail
	}

	user, err := u.userRepo.GetUserByEmail(ctx, sanitize.String(email))
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrUserNotFound
		}
		return err
	}

	token, err := generateResetToken()
	if err != nil {
		return err
	}

	user.ResetPasswordToken = token
	user.ResetPasswordExpiresAt = time.Now().Add(resetTokenTTL)
	if _, err := u.userRepo.SaveUser(ctx, user); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/resetpassword/%s", u.cfg.FrontendURL, token)
	htmlBody := mailer.PasswordResetEmail(user.Name, resetURL)
	if err := u.sender.SendHTML([]string{user.Email}, "Password reset request", htmlBody); err != nil {
		user.ResetPasswordToken = ""
		user.ResetPasswordExpiresAt = time.Time{}
		if _, saveErr := u.userRepo.SaveUser(ctx, user); saveErr != nil {
			u.logger.Error().Err(saveErr).Msg("failed to clear reset token after email failure")
		}
		return fmt.Errorf("send password reset email: %w", err)
	}

	return nil
}

func (u *authUsecase) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(token) < 10 {
		return ErrInvalidResetToken
	}
	if !sanitize.IsStrongPassword(newPassword) {
		return ErrWeakPassword
	}

	user, err := u.userRepo.GetUserByResetToken(ctx, token, time.Now())
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return ErrInvalidResetToken
		}
		return err
	}

	passwordHash, err := security.HashPassword(sanitize.String(newPassword))
	if err != nil {
		return err
	}

	user.PasswordHash = passwordHash
	user.ResetPasswordToken = ""
	user.ResetPasswordExpiresAt = time.Time{}

	_, err = u.userRepo.SaveUser(ctx, user)
	return err
}

// generateVerificationCode returns a random 6-digit code.
func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// generateResetToken returns a random hex token.
func generateResetToken() (string, error) {
	bytes := make([]byte, 20)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes), nil
}
