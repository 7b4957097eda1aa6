package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"reviewhub/internal/api/models"
	"reviewhub/internal/api/security"
	"reviewhub/internal/config"
)

// MockUserRepository mocks the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(user *models.User) error {
	args := m.Called(user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(email string) (*models.User, error) {
	args := m.Called(email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByID(id string) (*models.User, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsernameAndEmail(username, email string) (*models.User, error) {
	args := m.Called(username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) List(search string, page, pageSize int) ([]models.User, int64, error) {
	args := m.Called(search, page, pageSize)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]models.User), args.Get(1).(int64), args.Error(2)
}

// MockMailer records every code it was asked to deliver.
type MockMailer struct {
	mock.Mock
	SentCodes []string
}

func (m *MockMailer) SendConfirmationCode(ctx context.Context, email, username, code string) error {
	args := m.Called(ctx, email, username, code)
	m.SentCodes = append(m.SentCodes, code)
	return args.Error(0)
}

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		TokenTTL:  24 * time.Hour,
	}
}

func TestSignUp_NewUser(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockMailer := new(MockMailer)
	authService := NewAuthService(mockUserRepo, mockMailer, testConfig())

	mockUserRepo.On("FindByUsernameAndEmail", "newbie", "newbie@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("FindByUsername", "newbie").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("FindByEmail", "newbie@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("Create", mock.AnythingOfType("*models.User")).Return(nil)
	mockUserRepo.On("Update", mock.AnythingOfType("*models.User")).Return(nil)
	mockMailer.On("SendConfirmationCode", mock.Anything, "newbie@example.com", "newbie", mock.AnythingOfType("string")).Return(nil)

	user, err := authService.SignUp(context.Background(), "newbie", "newbie@example.com")

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "newbie", user.Username)
	assert.Equal(t, models.RoleUser, user.Role)
	assert.False(t, user.IsActive)

	// the stored hash must match the code that went out, and only that code
	require.NotNil(t, user.ConfirmationCode)
	require.Len(t, mockMailer.SentCodes, 1)
	assert.NoError(t, security.VerifyConfirmationCode(*user.ConfirmationCode, mockMailer.SentCodes[0]))
	assert.Error(t, security.VerifyConfirmationCode(*user.ConfirmationCode, "not-the-code"))
	mockUserRepo.AssertExpectations(t)
	mockMailer.AssertExpectations(t)
}

func TestSignUp_RepeatResendsCode(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockMailer := new(MockMailer)
	authService := NewAuthService(mockUserRepo, mockMailer, testConfig())

	existing := &models.User{ID: "u-1", Username: "alice", Email: "alice@example.com", Role: models.RoleUser}
	mockUserRepo.On("FindByUsernameAndEmail", "alice", "alice@example.com").Return(existing, nil)
	mockUserRepo.On("Update", existing).Return(nil)
	mockMailer.On("SendConfirmationCode", mock.Anything, "alice@example.com", "alice", mock.AnythingOfType("string")).Return(nil)

	user, err := authService.SignUp(context.Background(), "alice", "alice@example.com")

	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Len(t, mockMailer.SentCodes, 1)
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything)
	mockUserRepo.AssertExpectations(t)
}

func TestSignUp_UsernameTakenByOtherEmail(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockMailer := new(MockMailer)
	authService := NewAuthService(mockUserRepo, mockMailer, testConfig())

	taken := &models.User{ID: "u-1", Username: "alice", Email: "alice@example.com"}
	mockUserRepo.On("FindByUsernameAndEmail", "alice", "other@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("FindByUsername", "alice").Return(taken, nil)

	_, err := authService.SignUp(context.Background(), "alice", "other@example.com")

	assert.ErrorIs(t, err, ErrNameInUse)
	mockMailer.AssertNotCalled(t, "SendConfirmationCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSignUp_EmailTakenByOtherUsername(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockMailer := new(MockMailer)
	authService := NewAuthService(mockUserRepo, mockMailer, testConfig())

	taken := &models.User{ID: "u-1", Username: "alice", Email: "alice@example.com"}
	mockUserRepo.On("FindByUsernameAndEmail", "bob", "alice@example.com").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("FindByUsername", "bob").Return(nil, gorm.ErrRecordNotFound)
	mockUserRepo.On("FindByEmail", "alice@example.com").Return(taken, nil)

	_, err := authService.SignUp(context.Background(), "bob", "alice@example.com")

	assert.ErrorIs(t, err, ErrEmailInUse)
	mockMailer.AssertNotCalled(t, "SendConfirmationCode", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestSignUp_ReservedUsername(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockMailer := new(MockMailer)
	authService := NewAuthService(mockUserRepo, mockMailer, testConfig())

	_, err := authService.SignUp(context.Background(), "me", "me@example.com")

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "username", fieldErr.Field)
	mockUserRepo.AssertNotCalled(t, "Create", mock.Anything)
}

func TestSignUp_MailFailureFailsSignup(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockMailer := new(MockMailer)
	authService := NewAuthService(mockUserRepo, mockMailer, testConfig())

	existing := &models.User{ID: "u-1", Username: "alice", Email: "alice@example.com"}
	mockUserRepo.On("FindByUsernameAndEmail", "alice", "alice@example.com").Return(existing, nil)
	mockUserRepo.On("Update", existing).Return(nil)
	mockMailer.On("SendConfirmationCode", mock.Anything, "alice@example.com", "alice", mock.AnythingOfType("string")).
		Return(assert.AnError)

	_, err := authService.SignUp(context.Background(), "alice", "alice@example.com")

	assert.ErrorIs(t, err, assert.AnError)
}

func TestIssueToken_Success(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockMailer := new(MockMailer)
	authService := NewAuthService(mockUserRepo, mockMailer, testConfig())

	code := "c0ffee"
	hash, err := security.HashConfirmationCode(code)
	require.NoError(t, err)

	user := &models.User{ID: "u-1", Username: "alice", Role: models.RoleUser, ConfirmationCode: &hash}
	mockUserRepo.On("FindByUsername", "alice").Return(user, nil)
	mockUserRepo.On("Update", user).Return(nil)

	token, err := authService.IssueToken(context.Background(), "alice", code)

	require.NoError(t, err)
	assert.True(t, user.IsActive)

	claims, err := security.ValidateToken(token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "u-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
}

func TestIssueToken_RepeatWithSameCode(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockMailer := new(MockMailer)
	authService := NewAuthService(mockUserRepo, mockMailer, testConfig())

	hash, err := security.HashConfirmationCode("c0ffee")
	require.NoError(t, err)

	// already active, so no state change is needed
	user := &models.User{ID: "u-1", Username: "alice", IsActive: true, ConfirmationCode: &hash}
	mockUserRepo.On("FindByUsername", "alice").Return(user, nil)

	_, err = authService.IssueToken(context.Background(), "alice", "c0ffee")
	require.NoError(t, err)
	_, err = authService.IssueToken(context.Background(), "alice", "c0ffee")
	require.NoError(t, err)

	mockUserRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestIssueToken_UnknownUser(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockMailer := new(MockMailer)
	authService := NewAuthService(mockUserRepo, mockMailer, testConfig())

	mockUserRepo.On("FindByUsername", "ghost").Return(nil, gorm.ErrRecordNotFound)

	_, err := authService.IssueToken(context.Background(), "ghost", "whatever")

	assert.ErrorIs(t, err, ErrUserUnknown)
}

func TestIssueToken_WrongCode(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockMailer := new(MockMailer)
	authService := NewAuthService(mockUserRepo, mockMailer, testConfig())

	hash, err := security.HashConfirmationCode("c0ffee")
	require.NoError(t, err)

	user := &models.User{ID: "u-1", Username: "alice", ConfirmationCode: &hash}
	mockUserRepo.On("FindByUsername", "alice").Return(user, nil)

	_, err = authService.IssueToken(context.Background(), "alice", "decafbad")

	assert.ErrorIs(t, err, ErrInvalidCode)
	assert.False(t, user.IsActive)
	mockUserRepo.AssertNotCalled(t, "Update", mock.Anything)
}

func TestIssueToken_NoCodeIssuedYet(t *testing.T) {
	mockUserRepo := new(MockUserRepository)
	mockMailer := new(MockMailer)
	authService := NewAuthService(mockUserRepo, mockMailer, testConfig())

	user := &models.User{ID: "u-1", Username: "alice"}
	mockUserRepo.On("FindByUsername", "alice").Return(user, nil)

	_, err := authService.IssueToken(context.Background(), "alice", "anything")

	assert.ErrorIs(t, err, ErrInvalidCode)
}
