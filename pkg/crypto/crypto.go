// Package crypto wraps the primitives exposed over the /crypto endpoint:
// secure random generation, SHA-256, HMAC-SHA256 and token issuance.
package crypto

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
)

// Service produces random material and digests. Safe for concurrent use:
// crypto/rand.Reader handles concurrent callers and the digest operations
// are stateless.
type Service struct {
	rand io.Reader
}

// New returns a Service backed by the system entropy source.
func New() *Service {
	return &Service{rand: rand.Reader}
}

// NewWithReader returns a Service reading entropy from r. Used in tests to
// simulate entropy-source failure.
func NewWithReader(r io.Reader) *Service {
	return &Service{rand: r}
}

// RandomBytes fills and returns a buffer of n random bytes.
func (s *Service) RandomBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("invalid length %d", n)
	}
	b := make([]byte, n)
	if _, err := io.ReadFull(s.rand, b); err != nil {
		return nil, fmt.Errorf("failed to generate random bytes: %w", err)
	}
	return b, nil
}

// RandomHex returns the lowercase hex encoding of n random bytes (2n chars).
func (s *Service) RandomHex(n int) (string, error) {
	b, err := s.RandomBytes(n)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// RandomBase64 returns the standard padded base64 encoding of n random bytes.
func (s *Service) RandomBase64(n int) (string, error) {
	b, err := s.RandomBytes(n)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// SHA256 returns the hex-encoded SHA-256 digest of data.
func (s *Service) SHA256(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// HMACSHA256 returns the hex-encoded HMAC-SHA256 of data under key.
func (s *Service) HMACSHA256(key, data []byte) string {
	mac := hmac.New(sha256.New, key)
	mac.Write(data)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifyHMACSHA256 recomputes the MAC and compares it against expected in
// constant time.
func (s *Service) VerifyHMACSHA256(key, data []byte, expected string) bool {
	computed := s.HMACSHA256(key, data)
	if len(computed) != len(expected) {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(computed), []byte(expected)) == 1
}

// GenerateToken base64-encodes length random bytes and truncates the encoded
// text to length characters. Truncating after encoding means the token
// carries fewer than length bytes of entropy; the behavior is kept for
// compatibility with tokens already issued.
func (s *Service) GenerateToken(length int) (string, error) {
	b, err := s.RandomBytes(length)
	if err != nil {
		return "", err
	}
	encoded := base64.StdEncoding.EncodeToString(b)
	if len(encoded) > length {
		encoded = encoded[:length]
	}
	return encoded, nil
}
