package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"unicode"
)

// otpDigits es el largo fijo del código de verificación.
const otpDigits = 8

var otpSpace = big.NewInt(100000000)

// generateOTP devuelve un código de exactamente 8 dígitos ASCII, uniforme
// sobre los 10^8 valores posibles. Los ceros a la izquierda son válidos.
func generateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, otpSpace)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%08d", n.Int64()), nil
}

func isValidOTPCode(code string) bool {
	if len(code) != otpDigits {
		return false
	}
	for _, r := range code {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
