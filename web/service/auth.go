// Package service provides the business logic of the priceboard backend:
// account registration and login, token issuance, and owner-scoped CRUD for
// commodities, spot rate settings and template configurations.
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/aurify/priceboard/config"
	"github.com/aurify/priceboard/database"
	"github.com/aurify/priceboard/database/model"
	"github.com/aurify/priceboard/logger"
	"github.com/aurify/priceboard/util/crypto"
	"github.com/aurify/priceboard/util/random"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrEmailTaken         = errors.New("an account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrAccountSuspended   = errors.New("account suspended")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// devSecret backs token signing when JWT_SECRET is unset. Regenerated on
// every restart, so tokens do not survive a restart in that mode.
var devSecret = random.Seq(32)

// Claims are the token claims attached to authenticated requests.
type Claims struct {
	Id          string `json:"id"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	CompanyName string `json:"companyName"`
	jwt.RegisteredClaims
}

// AuthService handles registration, login and bearer token management.
type AuthService struct {
	secret   []byte
	lifetime time.Duration
}

func NewAuthService() *AuthService {
	secret := config.GetJWTSecret()
	if secret == "" {
		logger.Warning("JWT_SECRET is not set, using a generated secret; tokens will not survive a restart")
		secret = devSecret
	}
	return &AuthService{
		secret:   []byte(secret),
		lifetime: config.GetTokenLifetime(),
	}
}

// Register creates an account with role "user" and status "active". The
// email is stored lowercased; a duplicate yields ErrEmailTaken regardless of
// case. The unique index on email is authoritative, the pre-check only
// avoids a wasted hash.
func (s *AuthService) Register(companyName, email, phone, password string) (*model.User, error) {
	db := database.GetDB()
	email = strings.ToLower(strings.TrimSpace(email))

	var count int64
	err := db.Model(model.User{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		CompanyName:  strings.TrimSpace(companyName),
		Email:        email,
		Phone:        strings.TrimSpace(phone),
		PasswordHash: hash,
		Role:         model.RoleUser,
		Status:       model.StatusActive,
	}
	if err := db.Create(user).Error; err != nil {
		if database.IsDuplicateKey(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials by lowercased email. A missing account and a
// wrong password both yield ErrInvalidCredentials so callers cannot
// enumerate accounts. A non-active account yields ErrAccountSuspended before
// the password is checked.
func (s *AuthService) Login(email, password string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, ErrInvalidCredentials
	} else if err != nil {
		return nil, err
	}

	if user.Status != model.StatusActive {
		return nil, ErrAccountSuspended
	}

	if !crypto.CheckPasswordHash(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// IssueToken signs a bearer token for the account.
func (s *AuthService) IssueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		Id:          user.Id,
		Email:       user.Email,
		Role:        user.Role,
		CompanyName: user.CompanyName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.lifetime)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// VerifyToken parses and validates a bearer token. Any failure, including a
// wrong signing method or an expired token, yields ErrInvalidToken.
func (s *AuthService) VerifyToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
