package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"fintrack/internal/database"
	"fintrack/internal/models"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

type contextKey int

const userIDKey contextKey = 0

type Service struct {
	repo       *database.Repository
	sessionTTL time.Duration
}

func NewService(repo *database.Repository, sessionTTL time.Duration) *Service {
	return &Service{repo: repo, sessionTTL: sessionTTL}
}

func (s *Service) Register(name, email, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.repo.CreateUser(name, email, string(hash))
}

// Login verifies the password and issues an opaque session token.
func (s *Service) Login(email, password string) (string, *models.User, error) {
	user, err := s.repo.GetUserByEmail(email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, ErrInvalidCredentials
	}

	token := uuid.New().String()
	expiresAt := time.Now().UTC().Add(s.sessionTTL).Format(time.RFC3339)
	if err := s.repo.CreateSession(user.ID, token, expiresAt); err != nil {
		return "", nil, err
	}
	return token, user, nil
}

func (s *Service) Logout(token string) error {
	return s.repo.DeleteSession(token)
}

// UserForToken resolves a session token to its user. Expired sessions are
// deleted on sight.
func (s *Service) UserForToken(token string) (*models.User, error) {
	session, err := s.repo.GetSession(token)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	expiresAt, err := time.Parse(time.RFC3339, session.ExpiresAt)
	if err != nil || time.Now().UTC().After(expiresAt) {
		s.repo.DeleteSession(token)
		return nil, ErrInvalidCredentials
	}
	return s.repo.GetUser(session.UserID)
}

// RequireAuth rejects requests without a valid Bearer token and stores the
// authenticated user's ID in the request context.
func (s *Service) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		user, err := s.UserForToken(token)
		if err != nil {
			http.Error(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), userIDKey, user.ID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserID returns the authenticated user's ID, or "" outside RequireAuth.
func UserID(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
