package service

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// sessionTTL es la vigencia fija de un token de sesión.
const sessionTTL = 24 * time.Hour

// ErrTokenSign indica que no se pudo firmar un token de sesión.
var ErrTokenSign = errors.New("token sign failed")

// Identity es la única claim que transporta un token de sesión.
type Identity struct {
	ID string `json:"id"`
}

type sessionClaims struct {
	UserID string `json:"id"`
	jwt.RegisteredClaims
}

// TokenService emite y valida tokens de sesión firmados y autocontenidos.
// El servidor no guarda sesiones: la firma y la expiración son toda la verdad.
type TokenService struct {
	secret []byte
	now    func() time.Time
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
		now:    time.Now,
	}
}

// Issue firma un token HS256 con la identidad del usuario, expirando
// exactamente 24 horas después de la emisión.
func (s *TokenService) Issue(userID string) (string, error) {
	if len(s.secret) == 0 || strings.TrimSpace(userID) == "" {
		return "", ErrTokenSign
	}
	now := s.now().UTC()
	claims := sessionClaims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify decodifica la identidad si la firma es válida y el token no expiró.
// Nunca devuelve error: token ausente, malformado, con firma inválida o
// expirado resuelven a identidad ausente. Se invoca en cada request protegido
// y no puede tumbar el pipeline.
func (s *TokenService) Verify(token string) (Identity, bool) {
	if len(s.secret) == 0 || strings.TrimSpace(token) == "" {
		return Identity{}, false
	}
	var claims sessionClaims
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(func() time.Time { return s.now().UTC() }),
	)
	if _, err := parser.ParseWithClaims(token, &claims, func(_ *jwt.Token) (any, error) {
		return s.secret, nil
	}); err != nil {
		return Identity{}, false
	}
	if strings.TrimSpace(claims.UserID) == "" {
		return Identity{}, false
	}
	return Identity{ID: claims.UserID}, true
}
