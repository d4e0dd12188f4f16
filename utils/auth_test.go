package utils

import "testing"

func TestJWTRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateJWTToken("user-1", "alice@example.com")
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	claims, err := ParseJWTToken(token)
	if err != nil {
		t.Fatalf("Failed to parse token: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("Expected user-1, got %s", claims.UserID)
	}
	if claims.Email != "alice@example.com" {
		t.Errorf("Expected alice@example.com, got %s", claims.Email)
	}

	valid, email, err := ValidateTokenAndFetchEmail(token)
	if err != nil || !valid {
		t.Fatalf("Expected valid token, got valid=%v err=%v", valid, err)
	}
	if email != "alice@example.com" {
		t.Errorf("Expected alice@example.com, got %s", email)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	SetJWTSecret("test-secret")

	if _, err := ParseJWTToken("not-a-token"); err == nil {
		t.Errorf("Expected error for malformed token")
	}
}

func TestExtractNameFromEmail(t *testing.T) {
	if got := ExtractNameFromEmail("alice@example.com"); got != "alice" {
		t.Errorf("Expected alice, got %s", got)
	}
	if got := ExtractNameFromEmail("no-at-sign"); got != "no-at-sign" {
		t.Errorf("Expected no-at-sign, got %s", got)
	}
}

func TestGenerateSecretHashDeterministic(t *testing.T) {
	a := GenerateSecretHash("alice@example.com", "client", "secret")
	b := GenerateSecretHash("alice@example.com", "client", "secret")
	if a != b {
		t.Errorf("Expected identical hashes, got %s and %s", a, b)
	}
	if a == GenerateSecretHash("bob@example.com", "client", "secret") {
		t.Errorf("Expected different hashes for different usernames")
	}
}
