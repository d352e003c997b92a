package password

import "golang.org/x/crypto/bcrypt"

// Hash produces a salted bcrypt digest of the given password. The salt and
// cost parameters are embedded in the output, so verification is
// self-contained.
func Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Verify reports whether password matches the stored hash. A malformed hash
// is a verification failure, never an error.
func Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
