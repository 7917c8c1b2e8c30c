package service

import (
	"fmt"

	"hexforge/cryptohub/pkg/crypto"
)

// Supported /crypto operation names.
const (
	OpRandomHex    = "random_hex"
	OpRandomBase64 = "random_base64"
	OpSHA256       = "sha256"
	OpToken        = "token"
)

// Length defaults applied when the request omits the length field.
const (
	defaultRandomLength = 16
	defaultTokenLength  = 32
)

// CryptoService dispatches a named operation to the crypto primitives.
type CryptoService interface {
	Execute(operation string, data *string, length *int) (string, error)
}

type cryptoService struct {
	crypto *crypto.Service
}

func NewCryptoService(c *crypto.Service) CryptoService {
	return &cryptoService{crypto: c}
}

func (s *cryptoService) Execute(operation string, data *string, length *int) (string, error) {
	switch operation {
	case OpRandomHex:
		n, err := resolveLength(length, defaultRandomLength)
		if err != nil {
			return "", err
		}
		return s.entropy(s.crypto.RandomHex(n))
	case OpRandomBase64:
		n, err := resolveLength(length, defaultRandomLength)
		if err != nil {
			return "", err
		}
		return s.entropy(s.crypto.RandomBase64(n))
	case OpSHA256:
		if data == nil {
			return "", ErrNoData
		}
		return s.crypto.SHA256([]byte(*data)), nil
	case OpToken:
		n, err := resolveLength(length, defaultTokenLength)
		if err != nil {
			return "", err
		}
		return s.entropy(s.crypto.GenerateToken(n))
	default:
		return "", &UnknownOperationError{Op: operation}
	}
}

func resolveLength(length *int, fallback int) (int, error) {
	if length == nil {
		return fallback, nil
	}
	if *length < 0 {
		return 0, ErrInvalidLength
	}
	return *length, nil
}

// entropy tags failures from the random source so the handler can answer a
// sanitized 500 while the full cause is logged server-side.
func (s *cryptoService) entropy(result string, err error) (string, error) {
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrCrypto, err)
	}
	return result, nil
}
