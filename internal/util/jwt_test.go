package util

import (
	"strings"
	"testing"
	"time"

	"eduportal_backend/internal/model"
)

const testSecret = "unit-test-secret-0123456789abcdef"

func testUser() *model.User {
	return &model.User{
		Email: "prof@example.org",
		Role:  model.RoleProf,
	}
}

func TestGenerateAndParseJWT(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if len(strings.Split(token, ".")) != 3 {
		t.Fatalf("expected three-segment token, got %q", token)
	}

	claims, err := ParseJWT(token, testSecret)
	if err != nil {
		t.Fatalf("ParseJWT: %v", err)
	}
	if claims.Subject != "prof@example.org" {
		t.Fatalf("subject = %q, want prof@example.org", claims.Subject)
	}
	if claims.Role != model.RoleProf {
		t.Fatalf("role = %q, want %q", claims.Role, model.RoleProf)
	}
}

func TestParseJWTExpired(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, -time.Minute)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	_, err = ParseJWT(token, testSecret)
	if err == nil {
		t.Fatal("expected expired token to fail verification")
	}
	if msg := TokenErrorMessage(err); msg != "Token expiré." {
		t.Fatalf("message = %q, want Token expiré.", msg)
	}
}

func TestParseJWTTamperedSignature(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}

	// Flip one byte in the signature segment.
	parts := strings.Split(token, ".")
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = ParseJWT(tampered, testSecret)
	if err == nil {
		t.Fatal("expected tampered token to fail verification")
	}
	if msg := TokenErrorMessage(err); msg != "Signature du token invalide." {
		t.Fatalf("message = %q, want Signature du token invalide.", msg)
	}
}

func TestParseJWTWrongSecret(t *testing.T) {
	token, err := GenerateJWT(testUser(), testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT: %v", err)
	}
	if _, err := ParseJWT(token, "another-secret-another-secret-00"); err == nil {
		t.Fatal("expected wrong-secret verification to fail")
	}
}

func TestParseJWTGarbage(t *testing.T) {
	_, err := ParseJWT("not.a.token", testSecret)
	if err == nil {
		t.Fatal("expected malformed token to fail")
	}
	if msg := TokenErrorMessage(err); msg != "Token invalide." {
		t.Fatalf("message = %q, want Token invalide.", msg)
	}
}
