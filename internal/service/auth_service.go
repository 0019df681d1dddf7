package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"student_manager/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// Domain errors for auth flows.
var (
	// ErrInvalidCredentials covers both an unknown username and a wrong
	// password, so a login failure never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidToken       = errors.New("invalid token")
)

// AuthService handles registration and the session-token flow.
type AuthService struct {
	authRepo   repository.Authorization
	students   repository.Students
	signingKey []byte
}

func NewAuthService(authRepo repository.Authorization, students repository.Students, signingKey string) *AuthService {
	return &AuthService{
		authRepo:   authRepo,
		students:   students,
		signingKey: []byte(signingKey),
	}
}

// Register checks username and email for duplicates, hashes the password
// and creates the user plus its paired student row atomically.
// The duplicate checks yield distinct errors so the user is told which
// field to change.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (int, error) {
	existing, err := s.authRepo.GetByUsername(ctx, username)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrUsernameTaken
	}

	// Email uniqueness is checked against the student directory, not the
	// users table: every registration also adds a directory entry.
	taken, err := s.students.FindByEmail(ctx, email)
	if err != nil {
		return 0, err
	}
	if taken != nil {
		return 0, ErrEmailTaken
	}

	hash, err := hashPassword(password)
	if err != nil {
		return 0, fmt.Errorf("invalid password: %w", err)
	}
	return s.authRepo.CreateWithStudent(ctx, username, hash, email)
}

// Claims defines JWT claims
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"user_id"`
}

// GenerateToken validates credentials and returns a signed session token.
func (s *AuthService) GenerateToken(ctx context.Context, username, password string) (string, error) {
	u, err := s.authRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.issueToken(u.ID)
}

// ParseToken parses a session token and returns the user ID it carries.
func (s *AuthService) ParseToken(accessToken string) (int, error) {
	token, err := jwt.ParseWithClaims(accessToken, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure HMAC signing is used
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.signingKey, nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, ErrInvalidToken
	}

	return claims.UserID, nil
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

// helper: issue a signed JWT for a user
func (s *AuthService) issueToken(userID int) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		UserID: userID,
	})
	return token.SignedString(s.signingKey)
}
