package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hexforge/cryptohub/pkg/crypto"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy source unavailable")
}

func ptr[T any](v T) *T { return &v }

func TestExecuteSHA256(t *testing.T) {
	svc := NewCryptoService(crypto.New())

	result, err := svc.Execute(OpSHA256, ptr("hello world"), nil)
	require.NoError(t, err)
	assert.Equal(t, "b94d27b9934d3e08a52e52d7da7dabfac484efe37a5380ee9088f7ace2efcde9", result)
}

func TestExecuteSHA256MissingData(t *testing.T) {
	svc := NewCryptoService(crypto.New())

	_, err := svc.Execute(OpSHA256, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoData)
	assert.Equal(t, "No data provided for hash", err.Error())
}

func TestExecuteRandomHexDefaultLength(t *testing.T) {
	svc := NewCryptoService(crypto.New())

	result, err := svc.Execute(OpRandomHex, nil, nil)
	require.NoError(t, err)
	assert.Len(t, result, 32) // 16 bytes, hex-encoded
}

func TestExecuteRandomBase64ExplicitLength(t *testing.T) {
	svc := NewCryptoService(crypto.New())

	result, err := svc.Execute(OpRandomBase64, nil, ptr(9))
	require.NoError(t, err)
	assert.Len(t, result, 12) // 9 bytes encode to 12 chars
}

func TestExecuteTokenDefaultLength(t *testing.T) {
	svc := NewCryptoService(crypto.New())

	result, err := svc.Execute(OpToken, nil, nil)
	require.NoError(t, err)
	assert.Len(t, result, 32)
}

func TestExecuteUnknownOperation(t *testing.T) {
	svc := NewCryptoService(crypto.New())

	_, err := svc.Execute("bogus", nil, nil)
	require.Error(t, err)

	var unknownErr *UnknownOperationError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "Unknown operation: bogus", err.Error())
}

func TestExecuteNegativeLength(t *testing.T) {
	svc := NewCryptoService(crypto.New())

	for _, op := range []string{OpRandomHex, OpRandomBase64, OpToken} {
		_, err := svc.Execute(op, nil, ptr(-1))
		assert.ErrorIs(t, err, ErrInvalidLength, op)
	}
}

func TestExecuteEntropyFailure(t *testing.T) {
	svc := NewCryptoService(crypto.NewWithReader(failingReader{}))

	_, err := svc.Execute(OpRandomHex, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCrypto)
}
