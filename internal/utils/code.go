package utils

import (
	"crypto/rand"
	"math/big"
)

// confirmationAlphabet deliberately omits easily confused characters
// (0/O, 1/I/L) so codes can be read over the phone.
const confirmationAlphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

// ConfirmationCodeLength is the length of reservation confirmation codes.
const ConfirmationCodeLength = 8

// GenerateConfirmationCode returns a random 8-character uppercase code used
// to identify table reservations. Codes are drawn from a reduced alphabet
// and generated with crypto/rand.
func GenerateConfirmationCode() (string, error) {
	code := make([]byte, ConfirmationCodeLength)
	max := big.NewInt(int64(len(confirmationAlphabet)))
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		code[i] = confirmationAlphabet[n.Int64()]
	}
	return string(code), nil
}
