package auth

import "testing"

func TestHashAndVerifyPIN(t *testing.T) {
	hash, err := HashPIN("4321")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "4321" {
		t.Fatal("pin stored in the clear")
	}
	if err := VerifyPIN("4321", hash); err != nil {
		t.Fatalf("correct pin rejected: %v", err)
	}
	if err := VerifyPIN("1234", hash); err == nil {
		t.Fatal("wrong pin accepted")
	}
}
