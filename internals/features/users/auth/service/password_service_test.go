// file: internals/features/users/auth/service/password_service_test.go
package service

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("supersecret1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "supersecret1" {
		t.Fatal("hash must not equal the plain password")
	}
	if !CheckPassword(hash, "supersecret1") {
		t.Error("correct password rejected")
	}
	if CheckPassword(hash, "wrongpassword") {
		t.Error("wrong password accepted")
	}
}

func TestHashPasswordIsSalted(t *testing.T) {
	h1, err := HashPassword("supersecret1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	h2, err := HashPassword("supersecret1")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if h1 == h2 {
		t.Error("two hashes of the same password must differ")
	}
}

func TestComputeRefreshHash(t *testing.T) {
	a := ComputeRefreshHash("token-one", "secret")
	b := ComputeRefreshHash("token-one", "secret")
	if a != b {
		t.Error("hash must be deterministic for the same token and secret")
	}
	if len(a) != 64 {
		t.Errorf("hash length = %d, want 64 hex chars", len(a))
	}
	if ComputeRefreshHash("token-two", "secret") == a {
		t.Error("different tokens must hash differently")
	}
	if ComputeRefreshHash("token-one", "other-secret") == a {
		t.Error("different secrets must hash differently")
	}
}
