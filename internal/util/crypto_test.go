package util

import "testing"

func TestHashAndCheckPassphrase(t *testing.T) {
	hash, err := HashPassphrase("Sup3rS3cret")
	if err != nil {
		t.Fatalf("HashPassphrase failed: %v", err)
	}
	if hash == "Sup3rS3cret" {
		t.Fatalf("hash should not equal the passphrase")
	}
	if !CheckPassphrase(hash, "Sup3rS3cret") {
		t.Fatalf("correct passphrase rejected")
	}
	if CheckPassphrase(hash, "wrong") {
		t.Fatalf("wrong passphrase accepted")
	}
}

func TestValidatePassphrase(t *testing.T) {
	if err := ValidatePassphrase("Sup3rS3cret"); err != nil {
		t.Fatalf("strong passphrase rejected: %v", err)
	}
	for _, weak := range []string{"short1A", "alllowercase1", "ALLUPPERCASE1", "NoDigitsHere"} {
		if err := ValidatePassphrase(weak); err == nil {
			t.Fatalf("weak passphrase %q accepted", weak)
		}
	}
}
