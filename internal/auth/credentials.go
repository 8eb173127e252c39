package auth

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier hashes and checks passwords. Production wiring uses
// bcrypt; tests may swap in PlainVerifier. Real credential storage belongs
// to an external identity provider; this boundary is what it plugs into.
type CredentialVerifier interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// BcryptVerifier is the default CredentialVerifier.
type BcryptVerifier struct {
	Cost int
}

func NewBcryptVerifier() BcryptVerifier {
	return BcryptVerifier{Cost: bcrypt.DefaultCost}
}

func (v BcryptVerifier) Hash(password string) (string, error) {
	cost := v.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (v BcryptVerifier) Verify(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// PlainVerifier stores the password as-is and compares in constant time.
// Test use only.
type PlainVerifier struct{}

func (PlainVerifier) Hash(password string) (string, error) {
	return password, nil
}

func (PlainVerifier) Verify(hash, password string) bool {
	return subtle.ConstantTimeCompare([]byte(hash), []byte(password)) == 1
}
