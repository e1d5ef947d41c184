package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"healthtrack/internal/apperr"
	"healthtrack/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const defaultTokenTTL = time.Hour

// Token verification failures; the boundary responds uniformly, these exist
// for server-side logging.
var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("invalid token")
)

const msgInvalidCredentials = "Invalid credentials"

// Claims defines the JWT claim set carried by a session token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

// AuthResult is the login/refresh payload.
type AuthResult struct {
	AccessToken string       `json:"accessToken"`
	User        *models.User `json:"user"`
}

// AuthService handles registration, credential checks and token lifecycle.
// There is no revocation list: expiry is the only invalidation mechanism.
type AuthService struct {
	users    *UserService
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthService(users *UserService, secret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &AuthService{users: users, secret: []byte(secret), tokenTTL: tokenTTL}
}

// Register creates a new account; conflicts on an already-registered email.
func (s *AuthService) Register(ctx context.Context, p CreateUserParams) (*models.User, error) {
	return s.users.Create(ctx, p)
}

// Login validates credentials and returns a signed token with the user.
// A missing user and a wrong password are indistinguishable to the client.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if apperr.From(err).Kind == apperr.KindNotFound {
			return nil, apperr.Unauthorized(msgInvalidCredentials)
		}
		return nil, err
	}
	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return nil, apperr.Unauthorized(msgInvalidCredentials)
	}

	token, err := s.IssueToken(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, apperr.Internal("Error issuing token", err)
	}
	return &AuthResult{AccessToken: token, User: u}, nil
}

// Refresh verifies the presented token, reloads the user and issues a fresh
// token for the same identity.
func (s *AuthService) Refresh(ctx context.Context, accessToken string) (*AuthResult, error) {
	claims, err := s.ParseToken(accessToken)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid token").WithCause(err)
	}

	u, err := s.users.GetByID(ctx, claims.UserID)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid token").WithCause(err)
	}

	token, err := s.IssueToken(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, apperr.Internal("Error issuing token", err)
	}
	return &AuthResult{AccessToken: token, User: u}, nil
}

// IssueToken signs an HS256 JWT embedding the identity claims.
func (s *AuthService) IssueToken(userID, email, role string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   userID,
		},
		UserID: userID,
		Email:  email,
		Role:   role,
	})
	return token.SignedString(s.secret)
}

// ParseToken verifies signature and expiry, returning the embedded claims.
func (s *AuthService) ParseToken(accessToken string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}

// ExtractBearer returns the token portion of an Authorization header, or ""
// when the header is absent or not a well-formed bearer scheme. The decision
// of what an absent token means belongs to the caller.
func ExtractBearer(header string) string {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return ""
	}
	return parts[1]
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	if strings.TrimSpace(password) == "" {
		return "", errors.New("password is empty")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
