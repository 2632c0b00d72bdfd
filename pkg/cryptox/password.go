// Package cryptox holds the password hashing used for credential
// verification. Hashes are self-describing strings, so the scheme can be
// upgraded without invalidating stored credentials: new hashes are bcrypt,
// verification also accepts argon2id hashes produced by earlier deployments.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// ErrMismatch is returned when a password does not match its stored hash.
// Callers must not surface anything more specific than this.
var ErrMismatch = errors.New("cryptox: password does not match")

// DummyHash is a valid bcrypt hash of an unknowable random string. Verifying
// against it when a username does not exist keeps the response time of
// unknown-user and wrong-password failures indistinguishable.
const DummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

// HashPassword generates a salted bcrypt hash for storage. The plaintext is
// never logged or retained.
func HashPassword(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("cryptox: hash password: %w", err)
	}
	return string(h), nil
}

// VerifyPassword compares a plaintext password against a stored hash. The
// scheme is detected from the hash prefix, so records hashed under any
// supported scheme keep verifying after an upgrade.
func VerifyPassword(password, encodedHash string) error {
	switch {
	case strings.HasPrefix(encodedHash, "$2"):
		return verifyBcrypt(password, encodedHash)
	case strings.HasPrefix(encodedHash, "$argon2id$"):
		return verifyArgon2id(password, encodedHash)
	default:
		return errors.New("cryptox: unsupported hash scheme")
	}
}

func verifyBcrypt(password, encodedHash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return ErrMismatch
		}
		return fmt.Errorf("cryptox: invalid bcrypt hash: %w", err)
	}
	return nil
}

// verifyArgon2id parses a PHC-format string ($argon2id$v=19$m=X,t=Y,p=Z$salt$hash)
// and recomputes the key with the embedded parameters.
func verifyArgon2id(password, encodedHash string) error {
	parts := strings.Split(encodedHash, "$")

	// ["", "argon2id", "v=19", "m=X,t=Y,p=Z", "salt", "hash"]
	if len(parts) != 6 {
		return errors.New("cryptox: invalid argon2id hash: expected 6 parts")
	}
	if parts[2] != "v=19" {
		return errors.New("cryptox: invalid argon2id hash: wrong version")
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return fmt.Errorf("cryptox: invalid argon2id hash: parse parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("cryptox: invalid argon2id hash: decode salt: %w", err)
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return fmt.Errorf("cryptox: invalid argon2id hash: decode hash: %w", err)
	}

	computed := argon2.IDKey(
		[]byte(password),
		salt,
		iters,
		mem,
		par,
		uint32(len(expected)), // #nosec G115 - hash lengths are tiny
	)

	if subtle.ConstantTimeCompare(computed, expected) == 1 {
		return nil
	}
	return ErrMismatch
}

// GeneratePassword returns a random alphanumeric password. Used when an admin
// creates a user: the password is shown exactly once in the create response.
func GeneratePassword() (string, error) {
	const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	const length = 16
	password := make([]byte, length)
	for i := range password {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", fmt.Errorf("cryptox: generate password: %w", err)
		}
		password[i] = charset[n.Int64()]
	}
	return string(password), nil
}
