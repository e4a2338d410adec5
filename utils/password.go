package utils

import (
	"github.com/matthewhartstonge/argon2"
)

// HashPassword derives an argon2id hash with the library defaults and returns
// it in the encoded form that VerifyPassword expects. The salt and parameters
// travel inside the encoded string, so nothing else needs to be stored.
func HashPassword(password string) (string, error) {
	config := argon2.DefaultConfig()
	encoded, err := config.HashEncoded([]byte(password))
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

// VerifyPassword reports whether password matches encodedHash. A mismatch is
// (false, nil); an error means the hash could not be parsed.
func VerifyPassword(encodedHash, password string) (bool, error) {
	return argon2.VerifyEncoded([]byte(password), []byte(encodedHash))
}
