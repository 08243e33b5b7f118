package service

import "testing"

func TestGenerateOTP_Shape(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := generateOTP()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if !isValidOTPCode(code) {
			t.Fatalf("invalid code generated: %q", code)
		}
	}
}

func TestGenerateOTP_NoPositionBias(t *testing.T) {
	// Sanidad estadística: sobre 10000 muestras cada dígito decimal debe
	// aparecer en la primera y en la última posición. Con distribución
	// uniforme la probabilidad de que falte alguno es despreciable.
	first := make(map[byte]int)
	last := make(map[byte]int)
	const trials = 10000

	for i := 0; i < trials; i++ {
		code, err := generateOTP()
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		first[code[0]]++
		last[code[len(code)-1]]++
	}

	for d := byte('0'); d <= '9'; d++ {
		if first[d] == 0 {
			t.Fatalf("digit %c never appeared in first position", d)
		}
		if last[d] == 0 {
			t.Fatalf("digit %c never appeared in last position", d)
		}
	}
}

func TestIsValidOTPCode(t *testing.T) {
	valid := []string{"00000000", "12345678", "99999999"}
	for _, code := range valid {
		if !isValidOTPCode(code) {
			t.Fatalf("expected %q valid", code)
		}
	}

	invalid := []string{"", "1234567", "123456789", "1234567a", "12 45678", "１２３４５６７８"}
	for _, code := range invalid {
		if isValidOTPCode(code) {
			t.Fatalf("expected %q invalid", code)
		}
	}
}
