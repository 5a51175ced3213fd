// Package password generates and checks credentials. All randomness comes
// from crypto/rand; a general-purpose PRNG is never acceptable here.
package password

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const (
	upper   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lower   = "abcdefghijklmnopqrstuvwxyz"
	digits  = "0123456789"
	symbols = "!@#$%^&*()-_=+[]{}<>?"

	// TempLength is the length of generated temporary passwords.
	TempLength = 12

	// MinLength is the minimum accepted for caller-chosen passwords.
	MinLength = 8
)

// GenerateTemp returns a random temporary password containing at least one
// character from each class (upper, lower, digit, symbol).
func GenerateTemp() (string, error) {
	classes := []string{upper, lower, digits, symbols}
	all := upper + lower + digits + symbols

	chars := make([]byte, 0, TempLength)
	for _, class := range classes {
		c, err := pick(class)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}
	for len(chars) < TempLength {
		c, err := pick(all)
		if err != nil {
			return "", err
		}
		chars = append(chars, c)
	}

	// Fisher-Yates so the class-guaranteed characters are not positional.
	for i := len(chars) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", fmt.Errorf("failed to shuffle password: %w", err)
		}
		chars[i], chars[j.Int64()] = chars[j.Int64()], chars[i]
	}
	return string(chars), nil
}

func pick(set string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, fmt.Errorf("failed to generate random byte: %w", err)
	}
	return set[n.Int64()], nil
}

// MeetsPolicy reports whether a caller-chosen password satisfies the minimum
// length and complexity policy applied to generated credentials.
func MeetsPolicy(pw string) bool {
	if len(pw) < MinLength {
		return false
	}
	return strings.ContainsAny(pw, upper) &&
		strings.ContainsAny(pw, lower) &&
		strings.ContainsAny(pw, digits)
}

// Hash produces a bcrypt hash for storage.
func Hash(pw string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(h), nil
}

// Compare reports whether pw matches the stored bcrypt hash.
func Compare(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}
