package identity

import (
	"context"
	"testing"
	"time"

	"github.com/baletrack/backend/internal/domain/identity"
	"github.com/baletrack/backend/internal/domain/shared"
	"github.com/baletrack/backend/internal/infrastructure/auth"
	"github.com/baletrack/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testPassword = "Str0ngPass!"

type authServiceFixture struct {
	service     *AuthService
	userRepo    *MockUserRepository
	companyRepo *MockCompanyRepository
	blacklist   *auth.InMemoryTokenBlacklist
	jwtService  *auth.JWTService
}

func newAuthServiceFixture(t *testing.T) *authServiceFixture {
	t.Helper()

	userRepo := new(MockUserRepository)
	companyRepo := new(MockCompanyRepository)
	blacklist := auth.NewInMemoryTokenBlacklist()
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:                 "auth-service-test-secret",
		AccessTokenExpiration:  time.Hour,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "baletrack-test",
	})

	service := NewAuthService(userRepo, companyRepo, jwtService, blacklist, AuthServiceConfig{
		MaxLoginAttempts: 3,
		LockDuration:     time.Minute,
	}, zap.NewNop())

	return &authServiceFixture{
		service:     service,
		userRepo:    userRepo,
		companyRepo: companyRepo,
		blacklist:   blacklist,
		jwtService:  jwtService,
	}
}

func seedLoginUser(t *testing.T) (*identity.User, *identity.Company) {
	t.Helper()

	company, err := identity.NewCompany("ACME", "Acme Trading")
	require.NoError(t, err)

	user, err := identity.NewUser(company.ID, "supervisor@acme.test", testPassword, identity.RoleSupervisor)
	require.NoError(t, err)

	return user, company
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	return domainErr.Code
}

func TestAuthServiceSignup(t *testing.T) {
	input := SignupInput{
		CompanyCode: "ACME",
		CompanyName: "Acme Trading",
		Email:       "owner@acme.test",
		Password:    testPassword,
		DisplayName: "Owner",
	}

	t.Run("creates company with supervisor user", func(t *testing.T) {
		f := newAuthServiceFixture(t)
		f.companyRepo.On("ExistsByCode", mock.Anything, "ACME").Return(false, nil)
		f.userRepo.On("ExistsByEmail", mock.Anything, input.Email).Return(false, nil)
		f.companyRepo.On("Save", mock.Anything, mock.AnythingOfType("*identity.Company")).Return(nil)
		f.userRepo.On("Save", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

		result, err := f.service.Signup(context.Background(), input)
		require.NoError(t, err)

		assert.Equal(t, "ACME", result.Company.Code)
		assert.Equal(t, identity.RoleSupervisor, result.User.Role)
		assert.Equal(t, result.Company.ID, result.User.CompanyID)
		f.companyRepo.AssertExpectations(t)
		f.userRepo.AssertExpectations(t)
	})

	t.Run("rejects duplicate company code", func(t *testing.T) {
		f := newAuthServiceFixture(t)
		f.companyRepo.On("ExistsByCode", mock.Anything, "ACME").Return(true, nil)

		_, err := f.service.Signup(context.Background(), input)
		assert.Equal(t, "ALREADY_EXISTS", domainCode(t, err))
		f.companyRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects duplicate email", func(t *testing.T) {
		f := newAuthServiceFixture(t)
		f.companyRepo.On("ExistsByCode", mock.Anything, "ACME").Return(false, nil)
		f.userRepo.On("ExistsByEmail", mock.Anything, input.Email).Return(true, nil)

		_, err := f.service.Signup(context.Background(), input)
		assert.Equal(t, "ALREADY_EXISTS", domainCode(t, err))
	})
}

func TestAuthServiceLogin(t *testing.T) {
	t.Run("returns token pair for valid credentials", func(t *testing.T) {
		f := newAuthServiceFixture(t)
		user, company := seedLoginUser(t)
		f.userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
		f.companyRepo.On("FindByID", mock.Anything, company.ID).Return(company, nil)
		f.userRepo.On("Save", mock.Anything, user).Return(nil)

		result, err := f.service.Login(context.Background(), LoginInput{
			Email:    user.Email,
			Password: testPassword,
			IP:       "192.0.2.1",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, result.AccessToken)
		assert.NotEmpty(t, result.RefreshToken)
		assert.Equal(t, user.ID, result.User.ID)

		// The issued access token must carry the tenant and role
		claims, err := f.jwtService.ValidateAccessToken(result.AccessToken)
		require.NoError(t, err)
		assert.Equal(t, company.ID.String(), claims.CompanyID)
		assert.Equal(t, string(identity.RoleSupervisor), claims.Role)
	})

	t.Run("unknown email yields invalid credentials", func(t *testing.T) {
		f := newAuthServiceFixture(t)
		f.userRepo.On("FindByEmail", mock.Anything, "ghost@acme.test").Return(nil, shared.ErrNotFound)

		_, err := f.service.Login(context.Background(), LoginInput{Email: "ghost@acme.test", Password: testPassword})
		assert.Equal(t, "INVALID_CREDENTIALS", domainCode(t, err))
	})

	t.Run("wrong password counts toward lockout", func(t *testing.T) {
		f := newAuthServiceFixture(t)
		user, company := seedLoginUser(t)
		f.userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
		f.companyRepo.On("FindByID", mock.Anything, company.ID).Return(company, nil)
		f.userRepo.On("Save", mock.Anything, user).Return(nil)

		input := LoginInput{Email: user.Email, Password: "wrong-password"}

		for i := 0; i < 2; i++ {
			_, err := f.service.Login(context.Background(), input)
			assert.Equal(t, "INVALID_CREDENTIALS", domainCode(t, err))
		}

		// Third failure hits MaxLoginAttempts and locks the account
		_, err := f.service.Login(context.Background(), input)
		assert.Equal(t, "ACCOUNT_LOCKED", domainCode(t, err))

		// Correct password is now rejected too
		_, err = f.service.Login(context.Background(), LoginInput{Email: user.Email, Password: testPassword})
		assert.Equal(t, "ACCOUNT_LOCKED", domainCode(t, err))
	})

	t.Run("suspended company blocks login", func(t *testing.T) {
		f := newAuthServiceFixture(t)
		user, company := seedLoginUser(t)
		require.NoError(t, company.Suspend())
		f.userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)
		f.companyRepo.On("FindByID", mock.Anything, company.ID).Return(company, nil)

		_, err := f.service.Login(context.Background(), LoginInput{Email: user.Email, Password: testPassword})
		assert.Equal(t, "COMPANY_SUSPENDED", domainCode(t, err))
	})

	t.Run("deactivated account blocks login", func(t *testing.T) {
		f := newAuthServiceFixture(t)
		user, _ := seedLoginUser(t)
		require.NoError(t, user.Deactivate())
		f.userRepo.On("FindByEmail", mock.Anything, user.Email).Return(user, nil)

		_, err := f.service.Login(context.Background(), LoginInput{Email: user.Email, Password: testPassword})
		assert.Equal(t, "ACCOUNT_INACTIVE", domainCode(t, err))
	})
}

func TestAuthServiceRefreshToken(t *testing.T) {
	t.Run("rotates the refresh token", func(t *testing.T) {
		f := newAuthServiceFixture(t)
		user, _ := seedLoginUser(t)

		pair, err := f.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
			CompanyID: user.CompanyID,
			UserID:    user.ID,
			Email:     user.Email,
			Role:      string(user.Role),
		})
		require.NoError(t, err)

		f.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		result, err := f.service.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: pair.RefreshToken})
		require.NoError(t, err)
		assert.NotEmpty(t, result.AccessToken)
		assert.NotEqual(t, pair.RefreshToken, result.RefreshToken)

		// The consumed token is revoked and cannot be replayed
		_, err = f.service.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: pair.RefreshToken})
		assert.Equal(t, "TOKEN_INVALID", domainCode(t, err))
	})

	t.Run("rejects garbage tokens", func(t *testing.T) {
		f := newAuthServiceFixture(t)

		_, err := f.service.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: "not-a-jwt"})
		assert.Equal(t, "TOKEN_INVALID", domainCode(t, err))
	})

	t.Run("rejects refresh for deleted user", func(t *testing.T) {
		f := newAuthServiceFixture(t)
		user, _ := seedLoginUser(t)

		pair, err := f.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
			CompanyID: user.CompanyID,
			UserID:    user.ID,
			Email:     user.Email,
			Role:      string(user.Role),
		})
		require.NoError(t, err)

		f.userRepo.On("FindByID", mock.Anything, user.ID).Return(nil, shared.ErrNotFound)

		_, err = f.service.RefreshToken(context.Background(), RefreshTokenInput{RefreshToken: pair.RefreshToken})
		assert.Equal(t, "USER_NOT_FOUND", domainCode(t, err))
	})
}

func TestAuthServiceLogout(t *testing.T) {
	f := newAuthServiceFixture(t)

	err := f.service.Logout(context.Background(), LogoutInput{
		UserID:    uuid.New(),
		CompanyID: uuid.New(),
		TokenJTI:  "jti-123",
		TokenTTL:  time.Hour,
	})
	require.NoError(t, err)

	blacklisted, err := f.blacklist.IsBlacklisted(context.Background(), "jti-123")
	require.NoError(t, err)
	assert.True(t, blacklisted)
}

func TestAuthServiceChangePassword(t *testing.T) {
	t.Run("changes password with correct current password", func(t *testing.T) {
		f := newAuthServiceFixture(t)
		user, _ := seedLoginUser(t)
		f.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)
		f.userRepo.On("Save", mock.Anything, user).Return(nil)

		err := f.service.ChangePassword(context.Background(), ChangePasswordInput{
			UserID:      user.ID,
			OldPassword: testPassword,
			NewPassword: "NewStr0ngPass!",
		})
		require.NoError(t, err)
		assert.True(t, user.VerifyPassword("NewStr0ngPass!"))
	})

	t.Run("rejects wrong current password", func(t *testing.T) {
		f := newAuthServiceFixture(t)
		user, _ := seedLoginUser(t)
		f.userRepo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		err := f.service.ChangePassword(context.Background(), ChangePasswordInput{
			UserID:      user.ID,
			OldPassword: "wrong-password",
			NewPassword: "NewStr0ngPass!",
		})
		require.Error(t, err)
		assert.True(t, user.VerifyPassword(testPassword))
	})
}
