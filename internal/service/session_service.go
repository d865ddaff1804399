package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	RoleAnonymous = "anon"
	RoleAdmin     = "admin"

	sessionTTL = 24 * time.Hour
)

// ErrInvalidAccessCode rejects a wrong or unconfigured admin access code
var ErrInvalidAccessCode = errors.New("invalid access code")

// SessionResponse carries the issued identity and its bearer token
type SessionResponse struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	Token  string `json:"token"`
}

// SessionService issues anonymous and admin sessions. An anonymous session
// is the analog of an anonymous sign-in: a fresh stable user id plus a
// token the client presents on every call.
type SessionService interface {
	SignInAnonymously(ctx context.Context) (*SessionResponse, error)
	SignInAdmin(ctx context.Context, accessCode string) (*SessionResponse, error)
}

type sessionService struct {
	secret        []byte
	adminCodeHash string
}

func NewSessionService(secret []byte, adminCodeHash string) SessionService {
	return &sessionService{secret: secret, adminCodeHash: adminCodeHash}
}

func (s *sessionService) SignInAnonymously(ctx context.Context) (*SessionResponse, error) {
	userID := uuid.NewString()
	token, err := s.issueToken(userID, RoleAnonymous)
	if err != nil {
		return nil, err
	}
	return &SessionResponse{UserID: userID, Role: RoleAnonymous, Token: token}, nil
}

// SignInAdmin verifies the configured access code and issues an admin
// session gating the statistics and history endpoints.
func (s *sessionService) SignInAdmin(ctx context.Context, accessCode string) (*SessionResponse, error) {
	if s.adminCodeHash == "" {
		return nil, ErrInvalidAccessCode
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminCodeHash), []byte(accessCode)); err != nil {
		return nil, ErrInvalidAccessCode
	}

	userID := uuid.NewString()
	token, err := s.issueToken(userID, RoleAdmin)
	if err != nil {
		return nil, err
	}
	return &SessionResponse{UserID: userID, Role: RoleAdmin, Token: token}, nil
}

func (s *sessionService) issueToken(userID, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"iat":  now.Unix(),
		"exp":  now.Add(sessionTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
