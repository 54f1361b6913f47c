// Package rand wraps crypto/rand for generating secrets.
package rand

import (
	"crypto/rand"
	"encoding/base64"
)

// KeyBytes is the number of random bytes in a generated signing key.
const KeyBytes = 32

// Bytes generates n random bytes or returns an error.
func Bytes(n int) ([]byte, error) {
	b := make([]byte, n)
	_, err := rand.Read(b)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// String generates a base64-encoded string of nBytes random bytes.
func String(nBytes int) (string, error) {
	b, err := Bytes(nBytes)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(b), nil
}

// Key generates a string suitable for use as a session signing key.
func Key() (string, error) {
	return String(KeyBytes)
}
