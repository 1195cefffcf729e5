package identity

import (
	"context"
	"errors"
	"time"

	"github.com/baletrack/backend/internal/domain/identity"
	"github.com/baletrack/backend/internal/domain/shared"
	"github.com/baletrack/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthServiceConfig contains configuration for the auth service
type AuthServiceConfig struct {
	MaxLoginAttempts int           // Maximum failed login attempts before lock
	LockDuration     time.Duration // How long to lock account after max attempts
}

// DefaultAuthServiceConfig returns default configuration
func DefaultAuthServiceConfig() AuthServiceConfig {
	return AuthServiceConfig{
		MaxLoginAttempts: 5,
		LockDuration:     15 * time.Minute,
	}
}

// AuthService handles signup, login, token refresh, and logout
type AuthService struct {
	userRepo    identity.UserRepository
	companyRepo identity.CompanyRepository
	jwtService  *auth.JWTService
	blacklist   auth.TokenBlacklist
	config      AuthServiceConfig
	logger      *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo identity.UserRepository,
	companyRepo identity.CompanyRepository,
	jwtService *auth.JWTService,
	blacklist auth.TokenBlacklist,
	config AuthServiceConfig,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		companyRepo: companyRepo,
		jwtService:  jwtService,
		blacklist:   blacklist,
		config:      config,
		logger:      logger,
	}
}

// Signup creates a new company together with its first SUPERVISOR user
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*SignupResult, error) {
	s.logger.Info("Signup attempt", zap.String("company_code", input.CompanyCode))

	company, err := identity.NewCompany(input.CompanyCode, input.CompanyName)
	if err != nil {
		return nil, err
	}

	exists, err := s.companyRepo.ExistsByCode(ctx, company.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Company with this code already exists")
	}

	exists, err = s.userRepo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "User with this email already exists")
	}

	user, err := identity.NewUser(company.ID, input.Email, input.Password, identity.RoleSupervisor)
	if err != nil {
		return nil, err
	}
	if input.DisplayName != "" {
		if err := user.SetDisplayName(input.DisplayName); err != nil {
			return nil, err
		}
	}

	if err := s.companyRepo.Save(ctx, company); err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to save first user after company creation",
			zap.String("company_id", company.ID.String()),
			zap.Error(err))
		return nil, err
	}

	s.logger.Info("Company signed up",
		zap.String("company_id", company.ID.String()),
		zap.String("user_id", user.ID.String()))

	return &SignupResult{
		Company: ToCompanyInfo(company),
		User:    ToUserInfo(user),
	}, nil
}

// Login authenticates a user and returns a token pair
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*LoginResult, error) {
	s.logger.Info("Login attempt", zap.String("email", input.Email))

	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			s.logger.Warn("User not found during login", zap.String("email", input.Email))
			return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
		}
		return nil, err
	}

	if !user.CanLogin() {
		if user.IsLocked() {
			s.logger.Warn("Login attempt for locked account", zap.String("email", input.Email))
			return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Account is locked. Please try again later")
		}
		s.logger.Warn("Login attempt for inactive account", zap.String("email", input.Email))
		return nil, shared.NewDomainError("ACCOUNT_INACTIVE", "Account is not active")
	}

	company, err := s.companyRepo.FindByID(ctx, user.CompanyID)
	if err != nil {
		return nil, err
	}
	if !company.IsActive() {
		s.logger.Warn("Login attempt for suspended company",
			zap.String("company_id", company.ID.String()))
		return nil, shared.NewDomainError("COMPANY_SUSPENDED", "Company account is suspended")
	}

	if !user.VerifyPassword(input.Password) {
		locked := user.RecordLoginFailure(s.config.MaxLoginAttempts, s.config.LockDuration)
		if err := s.userRepo.Save(ctx, user); err != nil {
			s.logger.Error("Failed to update user after login failure", zap.Error(err))
		}

		if locked {
			s.logger.Warn("Account locked after too many failed attempts",
				zap.String("email", input.Email),
				zap.Int("attempts", s.config.MaxLoginAttempts))
			return nil, shared.NewDomainError("ACCOUNT_LOCKED", "Too many failed login attempts. Account has been locked")
		}

		s.logger.Warn("Invalid password attempt",
			zap.String("email", input.Email),
			zap.Int("failed_attempts", user.FailedAttempts))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		CompanyID: user.CompanyID,
		UserID:    user.ID,
		Email:     user.Email,
		Role:      string(user.Role),
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	user.RecordLoginSuccess(input.IP)
	if err := s.userRepo.Save(ctx, user); err != nil {
		// Don't fail the login - just log the error
		s.logger.Error("Failed to update user after successful login", zap.Error(err))
	}

	s.logger.Info("User logged in",
		zap.String("email", input.Email),
		zap.String("user_id", user.ID.String()))

	return &LoginResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
		User:                  ToUserInfo(user),
	}, nil
}

// RefreshToken exchanges a valid refresh token for a fresh token pair
func (s *AuthService) RefreshToken(ctx context.Context, input RefreshTokenInput) (*RefreshTokenResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		s.logger.Warn("Refresh token validation failed", zap.Error(err))
		switch {
		case errors.Is(err, auth.ErrExpiredToken):
			return nil, shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
		default:
			return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
		}
	}

	if claims.ID != "" {
		blacklisted, err := s.blacklist.IsBlacklisted(ctx, claims.ID)
		if err != nil {
			s.logger.Error("Blacklist lookup failed during refresh", zap.Error(err))
			return nil, err
		}
		if blacklisted {
			return nil, shared.NewDomainError("TOKEN_INVALID", "Refresh token has been revoked")
		}
	}

	userID, err := claims.GetUserUUID()
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid user ID in token")
	}

	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
		}
		return nil, err
	}
	if !user.CanLogin() {
		s.logger.Warn("Token refresh for inactive user", zap.String("user_id", userID.String()))
		return nil, shared.NewDomainError("ACCOUNT_INACTIVE", "Account is no longer active")
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		CompanyID: user.CompanyID,
		UserID:    user.ID,
		Email:     user.Email,
		Role:      string(user.Role),
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair during refresh", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	// Revoke the consumed refresh token so it cannot be replayed
	if claims.ID != "" {
		if err := s.blacklist.AddToBlacklist(ctx, claims.ID, claims.GetRemainingTTL()); err != nil {
			s.logger.Error("Failed to blacklist consumed refresh token", zap.Error(err))
		}
	}

	s.logger.Info("Token refreshed", zap.String("user_id", userID.String()))

	return &RefreshTokenResult{
		AccessToken:           tokenPair.AccessToken,
		RefreshToken:          tokenPair.RefreshToken,
		AccessTokenExpiresAt:  tokenPair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: tokenPair.RefreshTokenExpiresAt,
		TokenType:             tokenPair.TokenType,
	}, nil
}

// Logout revokes the caller's access token via the blacklist
func (s *AuthService) Logout(ctx context.Context, input LogoutInput) error {
	s.logger.Info("User logout",
		zap.String("user_id", input.UserID.String()),
		zap.String("company_id", input.CompanyID.String()))

	if input.TokenJTI == "" {
		return nil
	}

	if err := s.blacklist.AddToBlacklist(ctx, input.TokenJTI, input.TokenTTL); err != nil {
		s.logger.Error("Failed to blacklist token on logout", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to revoke token")
	}

	return nil
}

// GetCurrentUser retrieves the authenticated user's information
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
		}
		return nil, err
	}

	info := ToUserInfo(user)
	return &info, nil
}

// ChangePassword changes the authenticated user's password
func (s *AuthService) ChangePassword(ctx context.Context, input ChangePasswordInput) error {
	user, err := s.userRepo.FindByID(ctx, input.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("USER_NOT_FOUND", "User not found")
		}
		return err
	}

	if err := user.ChangePassword(input.OldPassword, input.NewPassword); err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		s.logger.Error("Failed to update user after password change", zap.Error(err))
		return shared.NewDomainError("INTERNAL_ERROR", "Failed to update password")
	}

	s.logger.Info("User password changed", zap.String("user_id", input.UserID.String()))

	return nil
}
