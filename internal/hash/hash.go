package hash

import "golang.org/x/crypto/bcrypt"

// HashPassword produces a salted one-way hash. The salt is generated per
// call, so hashing the same password twice yields different outputs.
func HashPassword(password string) (string, error) {
	hashBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// CheckPassword reports whether password matches hash. A malformed stored
// hash fails closed: the comparison errors and false is returned.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
