package domain

import "time"

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Otp          *string   `json:"-"`
	IsVerified   bool      `json:"is_verified"`
	CreatedAt    time.Time `json:"created_at"`
}

// VerificationState representa el estado de verificación de una cuenta de
// forma explícita. El storage lo persiste como dos columnas (is_verified,
// otp) pero la lógica de transiciones trabaja sobre este enum.
type VerificationState int

const (
	// StateInvalid cubre combinaciones de columnas que el dominio no admite.
	StateInvalid VerificationState = iota
	// StatePendingVerification: cuenta creada, código OTP vigente.
	StatePendingVerification
	// StateVerified: email confirmado, código consumido.
	StateVerified
)

// State deriva el estado de verificación desde las columnas persistidas.
// Solo dos combinaciones son válidas: no verificado con OTP presente, o
// verificado con OTP nulo.
func (u User) State() VerificationState {
	switch {
	case !u.IsVerified && u.Otp != nil:
		return StatePendingVerification
	case u.IsVerified && u.Otp == nil:
		return StateVerified
	default:
		return StateInvalid
	}
}
