package encrypter

// Encrypter provides symmetric encryption and password hashing.
// Implementations are safe for concurrent use.
type Encrypter interface {
	Encrypt(plaintext string) (string, error)
	Decrypt(ciphertext string) (string, error)
	HashPassword(password string) (string, error)
	ComparePassword(hashed, password string) error
}

// New creates an Encrypter backed by AES-GCM with the given key.
// Key must be 16, 24, or 32 bytes long.
func New(key string) Encrypter {
	return &implEncrypter{key: key}
}
