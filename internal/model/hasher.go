package model

// PasswordHasher is a one-way salted password hash.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(hash, plaintext string) bool
}
