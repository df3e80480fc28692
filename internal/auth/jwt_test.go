package auth

import (
	"os"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func TestJWTFlow(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	employeeID := uuid.New().String()
	email := "manager@example.com"

	token, err := GenerateToken(employeeID, email, RoleManager)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	extractedID, extractedEmail, extractedRole, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("Failed to validate token: %v", err)
	}

	if extractedID != employeeID {
		t.Fatalf("Expected employeeID %s, got %s", employeeID, extractedID)
	}
	if extractedEmail != email {
		t.Fatalf("Expected email %s, got %s", email, extractedEmail)
	}
	if extractedRole != RoleManager {
		t.Fatalf("Expected role MANAGER, got %s", extractedRole)
	}
}

func TestTokenClaimsAreKeyedByEmployee(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	token, err := GenerateToken("emp-42", "cashier@example.com", RoleCashier)
	if err != nil {
		t.Fatalf("Failed to generate token: %v", err)
	}

	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret-key-12345"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("Failed to parse token: %v", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("expected map claims")
	}
	if claims["employeeID"] != "emp-42" {
		t.Fatalf("expected employeeID claim, got %v", claims)
	}
}

func TestGenerateTokenRejectsEmptyID(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, err := GenerateToken("", "x@example.com", RoleCashier); err == nil {
		t.Fatalf("expected an error for an empty employee ID")
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	os.Setenv("JWT_SECRET", "test-secret-key-12345")

	if _, _, _, err := ValidateToken("not-a-token"); err == nil {
		t.Fatalf("expected an error for a malformed token")
	}
}
