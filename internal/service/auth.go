package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
	"golang.org/x/crypto/bcrypt"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/service/ports"
)

type AuthService struct {
	userRepo ports.UserRepo
	codes    ports.CodeStore
	sender   ports.CodeSender
	tokens   ports.TokenIssuer
	codeTTL  time.Duration
	logger   logger.Logger
}

func NewAuthService(
	userRepo ports.UserRepo,
	codes ports.CodeStore,
	sender ports.CodeSender,
	tokens ports.TokenIssuer,
	codeTTL time.Duration,
	logger logger.Logger,
) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		codes:    codes,
		sender:   sender,
		tokens:   tokens,
		codeTTL:  codeTTL,
		logger:   logger,
	}
}

func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("get user: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("user logged in", logger.String("username", username))

	return token, user, nil
}

// RequestVerification issues a one-time 6-digit code for the given admin
// email and hands it to the notifier. The code id, not the code, goes
// back to the caller.
func (s *AuthService) RequestVerification(ctx context.Context, email string) (string, error) {
	if _, err := s.userRepo.GetByEmail(ctx, email); err != nil {
		return "", fmt.Errorf("get user by email: %w", err)
	}

	code, err := generateCode()
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	codeID := uuid.New().String()

	if err = s.codes.Save(ctx, codeID, email, code, s.codeTTL); err != nil {
		return "", fmt.Errorf("save code: %w", err)
	}

	s.logger.Info("verification code issued", logger.String("email", email))

	go s.sender.SendVerificationCode(context.WithoutCancel(ctx), email, code)

	return codeID, nil
}

func (s *AuthService) VerifyCode(ctx context.Context, codeID, code string) (string, *domain.User, error) {
	email, err := s.codes.Verify(ctx, codeID, code)
	if err != nil {
		return "", nil, fmt.Errorf("verify code: %w", err)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("get user by email: %w", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info("verification completed", logger.String("email", email))

	return token, user, nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
