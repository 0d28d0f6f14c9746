package accounts

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

// CredentialHasher turns a plaintext password into the form kept in the
// account list and checks a candidate password against it.
type CredentialHasher interface {
	Hash(password string) (string, error)
	Verify(password, stored string) bool
}

// DefaultSuffix is appended by SuffixHasher.
const DefaultSuffix = "_hashed"

// SuffixHasher stores password+Suffix.
//
// WARNING: this is NOT a hash. Anyone who can read the store can recover every
// password by trimming the suffix. It exists only so that account lists written
// by earlier versions of the storefront keep working. Use Argon2Hasher or
// BcryptHasher for anything that holds real credentials.
type SuffixHasher struct {
	Suffix string
}

func (h SuffixHasher) suffix() string {
	if h.Suffix == "" {
		return DefaultSuffix
	}
	return h.Suffix
}

func (h SuffixHasher) Hash(password string) (string, error) {
	return password + h.suffix(), nil
}

func (h SuffixHasher) Verify(password, stored string) bool {
	return password+h.suffix() == stored
}

const (
	argonTime    = 1
	argonMemory  = 64 * 1024
	argonThreads = 4
	argonKeyLen  = 32
	argonSaltLen = 16
	argonPrefix  = "$argon2id$"
)

// Argon2Hasher derives an argon2id key from the password and a random salt.
// Stored form: $argon2id$<base64 salt>$<base64 key>.
type Argon2Hasher struct{}

func (Argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, argonSaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	key := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, argonKeyLen)

	return argonPrefix +
		base64.RawStdEncoding.EncodeToString(salt) + "$" +
		base64.RawStdEncoding.EncodeToString(key), nil
}

func (Argon2Hasher) Verify(password, stored string) bool {
	rest, ok := strings.CutPrefix(stored, argonPrefix)
	if !ok {
		return false
	}
	saltB64, keyB64, ok := strings.Cut(rest, "$")
	if !ok {
		return false
	}
	salt, err := base64.RawStdEncoding.DecodeString(saltB64)
	if err != nil {
		return false
	}
	key, err := base64.RawStdEncoding.DecodeString(keyB64)
	if err != nil || len(key) == 0 {
		return false
	}

	candidate := argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, uint32(len(key)))
	return subtle.ConstantTimeCompare(candidate, key) == 1
}

// BcryptHasher uses bcrypt at the given cost (bcrypt.DefaultCost when zero).
type BcryptHasher struct {
	Cost int
}

func (h BcryptHasher) Hash(password string) (string, error) {
	cost := h.Cost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("bcrypt: %w", err)
	}
	return string(b), nil
}

func (BcryptHasher) Verify(password, stored string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(password)) == nil
}

// Hasher names accepted by NewHasher.
const (
	HasherSuffix = "suffix"
	HasherArgon2 = "argon2"
	HasherBcrypt = "bcrypt"
)

// NewHasher maps a configuration name to a CredentialHasher.
func NewHasher(name string) (CredentialHasher, error) {
	switch name {
	case "", HasherSuffix:
		return SuffixHasher{}, nil
	case HasherArgon2:
		return Argon2Hasher{}, nil
	case HasherBcrypt:
		return BcryptHasher{}, nil
	}
	return nil, fmt.Errorf("unknown credential hasher %q", name)
}
