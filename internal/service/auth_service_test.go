package service

import (
	"errors"
	"testing"
	"time"

	"eduportal_backend/internal/config"
	"eduportal_backend/internal/model"
	"eduportal_backend/internal/repository"
	"eduportal_backend/internal/util"

	"gorm.io/gorm"
)

func newAuthService(db *gorm.DB) *AuthService {
	cfg := &config.Config{}
	cfg.JWT.Secret = "auth-service-test-secret-012345678"
	cfg.JWT.ExpireTime = time.Hour
	return NewAuthService(repository.NewUserRepository(db), cfg)
}

func TestRegisterHashesPassword(t *testing.T) {
	db := openTestDB(t)
	s := newAuthService(db)

	user, err := s.Register("prof@e.org", "motdepasse8", "Marie", "Curie", model.RoleProf)
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("user not persisted")
	}
	if user.Password == "motdepasse8" {
		t.Fatal("password stored in plaintext")
	}

	var stored model.User
	if err := db.First(&stored, user.ID).Error; err != nil {
		t.Fatalf("reload user: %v", err)
	}
	if stored.Password == "motdepasse8" || stored.Password == "" {
		t.Fatalf("stored password not hashed: %q", stored.Password)
	}
	if stored.Role != model.RoleProf {
		t.Fatalf("role = %q", stored.Role)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	s := newAuthService(db)

	if _, err := s.Register("prof@e.org", "motdepasse8", "Marie", "Curie", model.RoleProf); err != nil {
		t.Fatalf("Register: %v", err)
	}
	_, err := s.Register("prof@e.org", "autremotdepasse", "Pierre", "Curie", model.RoleProf)
	if !errors.Is(err, util.ErrEmailRegistered) {
		t.Fatalf("err = %v, want util.ErrEmailRegistered", err)
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	db := openTestDB(t)
	s := newAuthService(db)

	if _, err := s.Register("prof@e.org", "motdepasse8", "Marie", "Curie", model.RoleProf); err != nil {
		t.Fatalf("Register: %v", err)
	}

	user, token, err := s.Login("prof@e.org", "motdepasse8")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Email != "prof@e.org" {
		t.Fatalf("email = %q", user.Email)
	}

	claims, err := util.ParseJWT(token, s.Config.JWT.Secret)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Subject != "prof@e.org" || claims.Role != model.RoleProf {
		t.Fatalf("claims = %+v", claims)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	db := openTestDB(t)
	s := newAuthService(db)

	if _, err := s.Register("prof@e.org", "motdepasse8", "Marie", "Curie", model.RoleProf); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// A wrong password is rejected, never accepted on a non-empty value.
	if _, _, err := s.Login("prof@e.org", "mauvais"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("wrong password: err = %v, want util.ErrInvalidCredentials", err)
	}
	// Unknown email collapses into the same error.
	if _, _, err := s.Login("inconnu@e.org", "motdepasse8"); !errors.Is(err, util.ErrInvalidCredentials) {
		t.Fatalf("unknown email: err = %v, want util.ErrInvalidCredentials", err)
	}
}
