package services

import (
	"errors"
	"time"

	"resto_manager/internal/models"
	"resto_manager/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers unknown users, wrong passwords and
// deactivated accounts; handlers map it to 401.
var ErrInvalidCredentials = errors.New("invalid credentials")

// TokenStore persists refresh tokens between logins. Implemented by the
// redis client.
type TokenStore interface {
	SaveRefreshToken(tokenID string, userID uint, ttl time.Duration) error
	GetRefreshTokenUser(tokenID string) (uint, error)
	DeleteRefreshToken(tokenID string) error
}

type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type RegisterRequest struct {
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Phone     string `json:"phone"`
}

type LoginResult struct {
	User         *models.User `json:"user"`
	Token        string       `json:"token"`
	RefreshToken string       `json:"refreshToken"`
}

type AuthService interface {
	Register(req RegisterRequest, creator *models.User) (*LoginResult, error)
	Login(username, password string) (*LoginResult, error)
	Refresh(refreshToken string) (*LoginResult, error)
	Logout(refreshToken string) error
	ChangePassword(userID uint, currentPassword, newPassword string) error
	ParseToken(token string) (*Claims, error)
}

type authService struct {
	userRepo   repository.UserRepository
	tokens     TokenStore
	secret     []byte
	tokenTTL   time.Duration
	refreshTTL time.Duration
}

func NewAuthService(userRepo repository.UserRepository, tokens TokenStore, secret string, tokenTTL, refreshTTL time.Duration) AuthService {
	return &authService{
		userRepo:   userRepo,
		tokens:     tokens,
		secret:     []byte(secret),
		tokenTTL:   tokenTTL,
		refreshTTL: refreshTTL,
	}
}

func (s *authService) Register(req RegisterRequest, creator *models.User) (*LoginResult, error) {
	role := req.Role
	if role == "" {
		role = string(models.RoleWaiter)
	}
	if !models.ValidRole(role) {
		return nil, validationf("invalid role: %s", role)
	}
	// Only an admin may mint another admin.
	if role == string(models.RoleAdmin) && (creator == nil || creator.Role != string(models.RoleAdmin)) {
		return nil, validationf("only admin can create admin users")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         role,
		IsActive:     true,
	}
	if creator != nil {
		user.CreatedBy = &creator.ID
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return s.issueTokens(user)
}

func (s *authService) Login(username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, validationf("username and password are required")
	}

	user, err := s.userRepo.GetByUsernameOrEmail(username)
	if err != nil {
		if errors.Is(asNotFound(err), ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	user.LastLogin = &now
	if err := s.userRepo.Update(user); err != nil {
		return nil, err
	}
	return s.issueTokens(user)
}

func (s *authService) Refresh(refreshToken string) (*LoginResult, error) {
	claims, err := s.parse(refreshToken)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	userID, err := s.tokens.GetRefreshTokenUser(claims.ID)
	if err != nil || userID != claims.UserID {
		return nil, ErrInvalidCredentials
	}
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}
	// Rotate: the presented refresh token is single use.
	if err := s.tokens.DeleteRefreshToken(claims.ID); err != nil {
		return nil, err
	}
	return s.issueTokens(user)
}

func (s *authService) Logout(refreshToken string) error {
	claims, err := s.parse(refreshToken)
	if err != nil {
		return nil // already unusable
	}
	return s.tokens.DeleteRefreshToken(claims.ID)
}

func (s *authService) ChangePassword(userID uint, currentPassword, newPassword string) error {
	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		return asNotFound(err)
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)) != nil {
		return validationf("current password is incorrect")
	}
	if len(newPassword) < 6 {
		return validationf("new password must be at least 6 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.PasswordHash = string(hash)
	return s.userRepo.Update(user)
}

func (s *authService) ParseToken(token string) (*Claims, error) {
	return s.parse(token)
}

func (s *authService) issueTokens(user *models.User) (*LoginResult, error) {
	now := time.Now()

	access, err := s.sign(user, uuid.NewString(), now, s.tokenTTL)
	if err != nil {
		return nil, err
	}

	refreshID := uuid.NewString()
	refresh, err := s.sign(user, refreshID, now, s.refreshTTL)
	if err != nil {
		return nil, err
	}
	if err := s.tokens.SaveRefreshToken(refreshID, user.ID, s.refreshTTL); err != nil {
		return nil, err
	}

	return &LoginResult{User: user, Token: access, RefreshToken: refresh}, nil
}

func (s *authService) sign(user *models.User, id string, now time.Time, ttl time.Duration) (string, error) {
	claims := &Claims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        id,
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

func (s *authService) parse(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidCredentials
	}
	return claims, nil
}
