package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vanozi/superleuk-backend/internal/apierror"
	"github.com/vanozi/superleuk-backend/internal/config"
	"github.com/vanozi/superleuk-backend/internal/dto"
	"github.com/vanozi/superleuk-backend/internal/middleware"
	"github.com/vanozi/superleuk-backend/internal/model"
	"github.com/vanozi/superleuk-backend/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Mailer is the outbound mail surface the auth flow needs; satisfied by
// infra.Mailer and stubbed in tests.
type Mailer interface {
	SendInvitation(to string) error
	SendWelcome(to, activationToken string) error
}

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error)
	ActivateAccount(ctx context.Context, token string) error
	Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)

	DeviceLogin(ctx context.Context, req dto.DeviceLoginRequest) (*dto.TokenResponse, error)
	DeviceStatus(ctx context.Context, deviceID string) (*dto.TokenResponse, error)
	DeviceLogout(ctx context.Context, deviceID string) error
}

type authService struct {
	users      repository.UserRepository
	roles      repository.RoleRepository
	allowed    repository.AllowedUserRepository
	deviceRepo repository.DeviceLoginRepository
	mailer     Mailer
	cfg        *config.Config
}

func NewAuthService(
	users repository.UserRepository,
	roles repository.RoleRepository,
	allowed repository.AllowedUserRepository,
	deviceRepo repository.DeviceLoginRepository,
	mailer Mailer,
	cfg *config.Config,
) AuthService {
	return &authService{
		users:      users,
		roles:      roles,
		allowed:    allowed,
		deviceRepo: deviceRepo,
		mailer:     mailer,
		cfg:        cfg,
	}
}

// Register creates an inactive account for an invited email address and mails
// the activation link. The invitation is consumed on success; when the welcome
// mail cannot be sent the freshly created account is removed again.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	emailAddr := strings.ToLower(req.Email)

	if _, err := s.users.FindByEmail(ctx, emailAddr); err == nil {
		return nil, apierror.BadRequest("Gebruiker bestaat al")
	}

	invitation, err := s.allowed.FindByEmail(ctx, emailAddr)
	if err != nil {
		return nil, apierror.BadRequest("Dit email adres is niet bevoegd om zich te registeren")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), 12)
	if err != nil {
		return nil, err
	}

	confirmation := uuid.New()
	user := &model.User{
		FirstName:      &req.FirstName,
		LastName:       &req.LastName,
		Email:          emailAddr,
		HashedPassword: string(hash),
		IsActive:       false,
		Confirmation:   &confirmation,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	if role, err := s.roles.FindByName(ctx, "werknemer"); err == nil {
		if err := s.users.AddRole(ctx, user, role); err != nil {
			log.Warn().Err(err).Str("email", emailAddr).Msg("register: could not attach werknemer role")
		}
	}

	activationToken, err := s.generateToken(emailAddr, middleware.ScopeRegistration,
		time.Duration(s.cfg.RegistrationTokenLifetime)*time.Minute, confirmation.String())
	if err != nil {
		_ = s.users.Delete(ctx, user)
		return nil, err
	}

	if err := s.mailer.SendWelcome(emailAddr, activationToken); err != nil {
		// Compensate: without the activation mail the account is unusable.
		_ = s.users.Delete(ctx, user)
		log.Error().Err(err).Str("email", emailAddr).Msg("register: welcome mail failed, account rolled back")
		return nil, apierror.ErrInternal
	}

	if err := s.allowed.Delete(ctx, invitation); err != nil {
		log.Warn().Err(err).Str("email", emailAddr).Msg("register: could not consume invitation")
	}

	created, err := s.users.FindByEmail(ctx, emailAddr)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(created)
	return &resp, nil
}

// ActivateAccount redeems a registration-scope token. The token's jti must
// match the confirmation UUID stored at registration time.
func (s *authService) ActivateAccount(ctx context.Context, token string) error {
	claims, err := middleware.ParseToken(token, s.cfg.SecretKey)
	if err != nil || claims.Scope != middleware.ScopeRegistration {
		return apierror.BadRequest("Verificatie van de account is mislukt")
	}

	user, err := s.users.FindByEmail(ctx, claims.Subject)
	if err != nil {
		return apierror.BadRequest("Verificatie van de account is mislukt")
	}
	if user.IsActive {
		return nil
	}
	if user.Confirmation == nil || user.Confirmation.String() != claims.ID {
		return apierror.BadRequest("Verificatie van de account is mislukt")
	}

	user.IsActive = true
	user.Confirmation = nil
	return s.users.Update(ctx, user)
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	user, err := s.authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return nil, err
	}
	return s.tokenPair(user.Email)
}

func (s *authService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := middleware.ParseToken(refreshToken, s.cfg.SecretKey)
	if err != nil || claims.Scope != middleware.ScopeRefresh {
		return nil, apierror.Unauthorized("Token ongeldig of verlopen")
	}

	user, err := s.users.FindByEmail(ctx, claims.Subject)
	if err != nil {
		return nil, apierror.Unauthorized("Token ongeldig of verlopen")
	}
	if !user.IsActive {
		return nil, apierror.Unauthorized("Gebruiker inactief")
	}
	return s.tokenPair(user.Email)
}

// DeviceLogin authenticates the mobile app and records the issued access token
// against the device, one row per device id.
func (s *authService) DeviceLogin(ctx context.Context, req dto.DeviceLoginRequest) (*dto.TokenResponse, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(req.Username))
	if err != nil {
		return nil, apierror.Unauthorized("Email en/of wachtwoord onjuist")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, apierror.Unauthorized("Email en/of wachtwoord onjuist")
	}
	if !user.IsActive {
		return nil, apierror.Unauthorized("Gebruiker is nog niet geactiveerd!")
	}

	pair, err := s.tokenPair(user.Email)
	if err != nil {
		return nil, err
	}

	status, err := s.deviceRepo.FindByDeviceID(ctx, req.DeviceID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		status = &model.DeviceLoginStatus{DeviceID: req.DeviceID}
		status.UserID = user.ID
		status.LoggedIn = true
		status.LastProvidedAccessToken = &pair.AccessToken
		if err := s.deviceRepo.Create(ctx, status); err != nil {
			return nil, err
		}
		return pair, nil
	} else if err != nil {
		return nil, err
	}

	status.UserID = user.ID
	status.LoggedIn = true
	status.LastProvidedAccessToken = &pair.AccessToken
	if err := s.deviceRepo.Update(ctx, status); err != nil {
		return nil, err
	}
	return pair, nil
}

// DeviceStatus reauthenticates a device from its stored access token and
// rotates the token when one is issued.
func (s *authService) DeviceStatus(ctx context.Context, deviceID string) (*dto.TokenResponse, error) {
	status, err := s.deviceRepo.FindByDeviceID(ctx, deviceID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apierror.NotFound("Dit device is nog niet ingelogd geweest")
	} else if err != nil {
		return nil, err
	}

	if !status.LoggedIn || status.LastProvidedAccessToken == nil {
		return nil, apierror.Unauthorized("Login status van dit device is: uitgelogd")
	}

	claims, err := middleware.ParseToken(*status.LastProvidedAccessToken, s.cfg.SecretKey)
	if err != nil || claims.Scope != middleware.ScopeLogin {
		return nil, apierror.Unauthorized("Token ongeldig of verlopen")
	}

	user, err := s.users.FindByEmail(ctx, claims.Subject)
	if err != nil || !user.IsActive {
		return nil, apierror.Unauthorized("Gebruiker inactief")
	}

	pair, err := s.tokenPair(user.Email)
	if err != nil {
		return nil, err
	}
	status.LastProvidedAccessToken = &pair.AccessToken
	if err := s.deviceRepo.Update(ctx, status); err != nil {
		return nil, err
	}
	return pair, nil
}

func (s *authService) DeviceLogout(ctx context.Context, deviceID string) error {
	status, err := s.deviceRepo.FindByDeviceID(ctx, deviceID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apierror.NotFound("Dit device is nog niet ingelogd geweest")
	} else if err != nil {
		return err
	}
	return s.deviceRepo.Delete(ctx, status)
}

func (s *authService) authenticate(ctx context.Context, emailAddr, password string) (*model.User, error) {
	user, err := s.users.FindByEmail(ctx, strings.ToLower(emailAddr))
	if err != nil {
		return nil, apierror.Unauthorized("Ongeldige combinatie gebruikersnaam en wachtwoord")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, apierror.Unauthorized("Ongeldige combinatie gebruikersnaam en wachtwoord")
	}
	if !user.IsActive {
		return nil, apierror.Unauthorized("Gebruiker inactief")
	}
	return user, nil
}

func (s *authService) tokenPair(emailAddr string) (*dto.TokenResponse, error) {
	access, err := s.generateToken(emailAddr, middleware.ScopeLogin,
		time.Duration(s.cfg.LoginTokenLifetime)*time.Minute, "")
	if err != nil {
		return nil, err
	}
	refresh, err := s.generateToken(emailAddr, middleware.ScopeRefresh,
		time.Duration(s.cfg.RefreshTokenLifetime)*time.Minute, "")
	if err != nil {
		return nil, err
	}
	return &dto.TokenResponse{AccessToken: access, RefreshToken: refresh, TokenType: "bearer"}, nil
}

func (s *authService) generateToken(subject, scope string, lifetime time.Duration, jti string) (string, error) {
	now := time.Now()
	claims := middleware.Claims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ID:        jti,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(lifetime)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}
