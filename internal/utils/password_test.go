package utils

import (
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("12345", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
	if hash == "12345" {
		t.Fatal("hash must differ from the password")
	}

	ok, err := ComparePassword(hash, "12345")
	if err != nil || !ok {
		t.Errorf("expected match, got ok=%v err=%v", ok, err)
	}

	ok, err = ComparePassword(hash, "54321")
	if err != nil || ok {
		t.Errorf("expected mismatch without error, got ok=%v err=%v", ok, err)
	}
}

func TestHashPassword_InvalidCostFallsBack(t *testing.T) {
	hash, err := HashPassword("secret", 100)
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatal(err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("expected default cost, got %d", cost)
	}
}

func TestComparePassword_MalformedHash(t *testing.T) {
	_, err := ComparePassword("not-a-hash", "secret")
	if err == nil {
		t.Error("expected error for malformed hash")
	}
}
