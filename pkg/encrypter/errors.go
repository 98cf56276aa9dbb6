package encrypter

import "errors"

const (
	AESKeyLen128 = 16
	AESKeyLen192 = 24
	AESKeyLen256 = 32
)

var (
	ErrInvalidKeyLength   = errors.New("encryption key must be 16, 24, or 32 bytes")
	ErrCiphertextTooShort = errors.New("ciphertext is too short")
)
