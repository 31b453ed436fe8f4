package auth

import "golang.org/x/crypto/bcrypt"

// HashPassword hashes a password using bcrypt at the default work factor (10).
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword checks if a password matches a hash. bcrypt's comparison is
// constant-time with respect to the digest.
func CheckPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
