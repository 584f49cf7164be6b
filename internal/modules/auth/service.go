package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/config"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/models"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

var errBadCredentials = errors.New("invalid email or password")

// Service issues admin session tokens. Sessions are server-signed JWTs
// with expiry; the token itself is the session record, there is no
// client-writable identity store.
type Service struct {
	admin      config.AdminConfig
	adminID    string
	sessionTTL time.Duration
}

// NewService derives a stable admin identity from the configured account.
func NewService(cfg *config.AppConfig) *Service {
	return &Service{
		admin:      cfg.Admin,
		adminID:    uuid.NewSHA1(uuid.NameSpaceOID, []byte(cfg.Admin.Email)).String(),
		sessionTTL: time.Duration(cfg.SessionTTLHrs) * time.Hour,
	}
}

// AdminUserID returns the derived id, used to scope notifications.
func (s *Service) AdminUserID() string { return s.adminID }

// Login checks credentials and returns a signed session token plus the
// identity payload.
func (s *Service) Login(email, password string) (string, *models.AdminUser, error) {
	if !strings.EqualFold(strings.TrimSpace(email), s.admin.Email) {
		return "", nil, errBadCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.admin.PasswordHash), []byte(password)); err != nil {
		return "", nil, errBadCredentials
	}

	user := &models.AdminUser{
		ID:    s.adminID,
		Email: s.admin.Email,
		Name:  s.admin.Name,
		Role:  s.admin.Role,
	}
	token, err := jwt.Sign(user.ID, user.Email, user.Name, user.Role, s.sessionTTL)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
