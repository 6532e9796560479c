package utils

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must not equal the plain password")
	}
	if !strings.HasPrefix(hash, "$2") {
		t.Errorf("expected a bcrypt hash, got %q", hash)
	}
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("Pass123", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("HashPassword() error = %v", err)
	}

	tests := []struct {
		name     string
		hash     string
		plain    string
		expected bool
	}{
		{"correct password", hash, "Pass123", true},
		{"wrong password", hash, "WrongPass", false},
		{"empty plain", hash, "", false},
		{"empty hash", "", "Pass123", false},
		{"garbage hash", "not-a-hash", "Pass123", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := VerifyPassword(tt.hash, tt.plain); got != tt.expected {
				t.Errorf("VerifyPassword() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestHashPasswordSalted(t *testing.T) {
	h1, err := HashPassword("same", bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	h2, err := HashPassword("same", bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password must differ (salt)")
	}
}
