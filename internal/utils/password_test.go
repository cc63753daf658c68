package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher("pepper", bcrypt.MinCost)

	hash, err := h.Hash("p1")
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	if strings.Contains(hash, "p1") {
		t.Fatalf("hash leaks the password: %s", hash)
	}

	if ok, rehash := h.Verify(hash, "p1"); !ok || rehash {
		t.Errorf("Verify(correct) = %v, %v; want true, false", ok, rehash)
	}
	if ok, _ := h.Verify(hash, "p2"); ok {
		t.Error("Verify(wrong) = true")
	}

	other, _ := h.Hash("p1")
	if other == hash {
		t.Error("two hashes of one password are identical")
	}

	if ok, _ := NewPasswordHasher("other", bcrypt.MinCost).Verify(hash, "p1"); ok {
		t.Error("hash verified under a different salt")
	}
}

func TestPasswordHasherLegacyDigest(t *testing.T) {
	h := NewPasswordHasher("salt", bcrypt.MinCost)
	sum := sha256.Sum256([]byte("p1" + "salt"))
	legacy := hex.EncodeToString(sum[:])

	ok, rehash := h.Verify(legacy, "p1")
	if !ok || !rehash {
		t.Fatalf("Verify(legacy) = %v, %v; want true, true", ok, rehash)
	}
	if ok, rehash := h.Verify(legacy, "wrong"); ok || rehash {
		t.Fatalf("Verify(legacy, wrong) = %v, %v; want false, false", ok, rehash)
	}
}
