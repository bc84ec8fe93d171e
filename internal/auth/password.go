package auth

import "golang.org/x/crypto/bcrypt"

func HashPIN(pin string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	return string(b), err
}

// VerifyPIN compares in constant time via bcrypt.
func VerifyPIN(plain, hash string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
}
