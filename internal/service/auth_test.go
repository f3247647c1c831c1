package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/domain"
	"github.com/JOHNMAVERICK23/event-venue-booking-system/internal/service/ports/mocks"
)

func testUser(t *testing.T) *domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.MinCost)
	require.NoError(t, err)

	return &domain.User{
		ID:           1,
		Username:     "admin",
		PasswordHash: string(hash),
		FullName:     "System Administrator",
		Email:        "admin@example.com",
		Role:         "admin",
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	codes := mocks.NewMockCodeStore(t)
	sender := mocks.NewMockCodeSender(t)
	tokens := mocks.NewMockTokenIssuer(t)
	log := newTestLogger(t)

	svc := NewAuthService(userRepo, codes, sender, tokens, 10*time.Minute, log)

	user := testUser(t)
	userRepo.EXPECT().GetByUsername(mock.Anything, "admin").Return(user, nil)
	tokens.EXPECT().Issue(user).Return("signed-token", nil)

	token, got, err := svc.Login(context.Background(), "admin", "admin123")

	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, user.Username, got.Username)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	codes := mocks.NewMockCodeStore(t)
	sender := mocks.NewMockCodeSender(t)
	tokens := mocks.NewMockTokenIssuer(t)
	log := newTestLogger(t)

	svc := NewAuthService(userRepo, codes, sender, tokens, 10*time.Minute, log)

	userRepo.EXPECT().GetByUsername(mock.Anything, "admin").Return(testUser(t), nil)

	_, _, err := svc.Login(context.Background(), "admin", "wrong")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownUser(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	codes := mocks.NewMockCodeStore(t)
	sender := mocks.NewMockCodeSender(t)
	tokens := mocks.NewMockTokenIssuer(t)
	log := newTestLogger(t)

	svc := NewAuthService(userRepo, codes, sender, tokens, 10*time.Minute, log)

	userRepo.EXPECT().GetByUsername(mock.Anything, "ghost").Return(nil, domain.ErrUserNotFound)

	_, _, err := svc.Login(context.Background(), "ghost", "whatever")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_RequestVerification_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	codes := mocks.NewMockCodeStore(t)
	sender := mocks.NewMockCodeSender(t)
	tokens := mocks.NewMockTokenIssuer(t)
	log := newTestLogger(t)

	svc := NewAuthService(userRepo, codes, sender, tokens, 10*time.Minute, log)

	user := testUser(t)
	userRepo.EXPECT().GetByEmail(mock.Anything, user.Email).Return(user, nil)

	var savedCode string
	codes.EXPECT().
		Save(mock.Anything, mock.Anything, user.Email, mock.Anything, 10*time.Minute).
		Run(func(_ context.Context, _, _, code string, _ time.Duration) {
			savedCode = code
		}).
		Return(nil)
	sender.EXPECT().SendVerificationCode(mock.Anything, user.Email, mock.Anything).Return()

	codeID, err := svc.RequestVerification(context.Background(), user.Email)

	require.NoError(t, err)
	assert.NotEmpty(t, codeID)
	assert.Len(t, savedCode, 6)

	time.Sleep(50 * time.Millisecond) // goroutine send
}

func TestAuthService_RequestVerification_UnknownEmail(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	codes := mocks.NewMockCodeStore(t)
	sender := mocks.NewMockCodeSender(t)
	tokens := mocks.NewMockTokenIssuer(t)
	log := newTestLogger(t)

	svc := NewAuthService(userRepo, codes, sender, tokens, 10*time.Minute, log)

	userRepo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrUserNotFound)

	_, err := svc.RequestVerification(context.Background(), "ghost@example.com")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestAuthService_VerifyCode_Success(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	codes := mocks.NewMockCodeStore(t)
	sender := mocks.NewMockCodeSender(t)
	tokens := mocks.NewMockTokenIssuer(t)
	log := newTestLogger(t)

	svc := NewAuthService(userRepo, codes, sender, tokens, 10*time.Minute, log)

	user := testUser(t)
	codes.EXPECT().Verify(mock.Anything, "code-id", "123456").Return(user.Email, nil)
	userRepo.EXPECT().GetByEmail(mock.Anything, user.Email).Return(user, nil)
	tokens.EXPECT().Issue(user).Return("signed-token", nil)

	token, got, err := svc.VerifyCode(context.Background(), "code-id", "123456")

	require.NoError(t, err)
	assert.Equal(t, "signed-token", token)
	assert.Equal(t, user.ID, got.ID)
}

func TestAuthService_VerifyCode_Mismatch(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	codes := mocks.NewMockCodeStore(t)
	sender := mocks.NewMockCodeSender(t)
	tokens := mocks.NewMockTokenIssuer(t)
	log := newTestLogger(t)

	svc := NewAuthService(userRepo, codes, sender, tokens, 10*time.Minute, log)

	codes.EXPECT().Verify(mock.Anything, "code-id", "000000").Return("", domain.ErrCodeMismatch)

	_, _, err := svc.VerifyCode(context.Background(), "code-id", "000000")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCodeMismatch)
}

func TestAuthService_VerifyCode_Expired(t *testing.T) {
	userRepo := mocks.NewMockUserRepo(t)
	codes := mocks.NewMockCodeStore(t)
	sender := mocks.NewMockCodeSender(t)
	tokens := mocks.NewMockTokenIssuer(t)
	log := newTestLogger(t)

	svc := NewAuthService(userRepo, codes, sender, tokens, 10*time.Minute, log)

	codes.EXPECT().Verify(mock.Anything, "stale-id", "123456").Return("", domain.ErrCodeNotFound)

	_, _, err := svc.VerifyCode(context.Background(), "stale-id", "123456")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCodeNotFound)
}

func TestGenerateCode_SixDigits(t *testing.T) {
	for range 100 {
		code, err := generateCode()
		require.NoError(t, err)
		assert.Len(t, code, 6)
		assert.GreaterOrEqual(t, code, "100000")
		assert.LessOrEqual(t, code, "999999")
	}
}
