package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shop-interests/internal/service"
)

const (
	// AuthCookieName es la cookie que transporta el token de sesión.
	AuthCookieName = "auth-token"
	// AuthCookieMaxAge coincide con la vigencia del token (24h).
	AuthCookieMaxAge = 86400

	loginPath   = "/login"
	landingPath = "/"
	identityKey = "session_identity"
)

// SessionGate valida el token de sesión antes de los handlers. Hace
// exactamente una verificación de firma por request, sin I/O; su único modo
// de fallo en rutas de página es un redirect, nunca una página de error.
type SessionGate struct {
	tokens *service.TokenService
}

func NewSessionGate(tokens *service.TokenService) *SessionGate {
	return &SessionGate{tokens: tokens}
}

func (g *SessionGate) identityFromCookie(c *gin.Context) (service.Identity, bool) {
	token, err := c.Cookie(AuthCookieName)
	if err != nil {
		return service.Identity{}, false
	}
	return g.tokens.Verify(token)
}

// RequireSession protege rutas de página: sin token válido redirige a /login.
func (g *SessionGate) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := g.identityFromCookie(c)
		if !ok {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// RedirectAuthenticated aleja de los flujos de entrada (login, registro,
// verificación) cuando ya hay una sesión válida. Un token presente pero
// inválido o expirado deja pasar.
func (g *SessionGate) RedirectAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := g.identityFromCookie(c); ok {
			c.Redirect(http.StatusFound, landingPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSessionAPI protege endpoints JSON: sin token válido responde 401.
func (g *SessionGate) RequireSessionAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity, ok := g.identityFromCookie(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthenticated"})
			c.Abort()
			return
		}
		c.Set(identityKey, identity)
		c.Next()
	}
}

// GetIdentity obtiene la identidad de la sesión desde el contexto.
func GetIdentity(c *gin.Context) (service.Identity, bool) {
	val, ok := c.Get(identityKey)
	if !ok {
		return service.Identity{}, false
	}
	identity, ok := val.(service.Identity)
	return identity, ok
}

// setAuthCookie fija la cookie de sesión con los atributos del contrato:
// path /, max-age 86400, SameSite=Strict, Secure. No es HttpOnly porque el
// front-end la lee.
func setAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(AuthCookieName, token, AuthCookieMaxAge, "/", "", true, false)
}
