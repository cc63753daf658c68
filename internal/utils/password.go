package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// PasswordHasher stores passwords as bcrypt(HMAC-SHA256(salt, password)).
// The server-wide salt acts as a pepper; bcrypt adds the per-hash salt.
type PasswordHasher struct {
	pepper []byte
	cost   int
}

func NewPasswordHasher(salt string, cost int) *PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &PasswordHasher{pepper: []byte(salt), cost: cost}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(h.peppered(password)), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "utils:Hash: bcrypt")
	}
	return string(hashed), nil
}

// Verify checks password against a stored hash. needsRehash is set when
// the stored value is a legacy sha256(password+salt) hex digest that
// matched and should be replaced.
func (h *PasswordHasher) Verify(stored, password string) (ok, needsRehash bool) {
	if isLegacyDigest(stored) {
		sum := sha256.Sum256([]byte(password + string(h.pepper)))
		legacy := hex.EncodeToString(sum[:])
		ok = subtle.ConstantTimeCompare([]byte(legacy), []byte(strings.ToLower(stored))) == 1
		return ok, ok
	}
	err := bcrypt.CompareHashAndPassword([]byte(stored), []byte(h.peppered(password)))
	return err == nil, false
}

// hex HMAC output stays under the 72-byte bcrypt input limit
func (h *PasswordHasher) peppered(password string) string {
	mac := hmac.New(sha256.New, h.pepper)
	mac.Write([]byte(password))
	return hex.EncodeToString(mac.Sum(nil))
}

func isLegacyDigest(stored string) bool {
	if len(stored) != sha256.Size*2 {
		return false
	}
	_, err := hex.DecodeString(stored)
	return err == nil
}
