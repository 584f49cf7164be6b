package auth

import (
	"testing"

	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/config"
	"github.com/sourcecode-S/Tesah-Capital-Website-sub001/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T, password string) *Service {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	return NewService(&config.AppConfig{
		SessionTTLHrs: 1,
		Admin: config.AdminConfig{
			Email: "admin@tesahcapital.com", Name: "Site Admin", Role: "admin",
			PasswordHash: string(hash),
		},
	})
}

func TestLoginIssuesSessionToken(t *testing.T) {
	svc := newTestService(t, "s3cret")

	token, user, err := svc.Login("admin@tesahcapital.com", "s3cret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Email != "admin@tesahcapital.com" || user.Role != "admin" {
		t.Errorf("identity payload: %+v", user)
	}
	claims, err := jwt.Parse(token)
	if err != nil {
		t.Fatalf("issued token does not parse: %v", err)
	}
	if claims.UserID != svc.AdminUserID() {
		t.Errorf("token uid = %q, want %q", claims.UserID, svc.AdminUserID())
	}
	if claims.ExpiresAt == nil {
		t.Error("token has no expiry")
	}
}

func TestLoginEmailCaseInsensitive(t *testing.T) {
	svc := newTestService(t, "s3cret")
	if _, _, err := svc.Login("  ADMIN@TesahCapital.com ", "s3cret"); err != nil {
		t.Fatalf("case/space variant rejected: %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc := newTestService(t, "s3cret")

	if _, _, err := svc.Login("admin@tesahcapital.com", "wrong"); err == nil {
		t.Fatal("wrong password accepted")
	}
	if _, _, err := svc.Login("stranger@example.com", "s3cret"); err == nil {
		t.Fatal("unknown email accepted")
	}
}

func TestAdminUserIDStable(t *testing.T) {
	a := newTestService(t, "one")
	b := newTestService(t, "two")
	if a.AdminUserID() != b.AdminUserID() {
		t.Error("admin id should be derived from email, not the password")
	}
}
