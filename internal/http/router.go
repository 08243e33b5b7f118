package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	gate *SessionGate,
	authH *AuthHandler,
	categoryH *CategoryHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging y recovery.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery())

	// Rutas de página bajo el session gate: / exige sesión válida; los
	// flujos de entrada redirigen a / cuando ya hay sesión.
	r.GET("/", gate.RequireSession(), categoryH.Landing)
	for _, path := range []string{"/login", "/register", "/verify"} {
		page := path
		r.GET(page, gate.RedirectAuthenticated(), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"page": page[1:]})
		})
	}

	api := r.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/verify", authH.VerifyEmail)
	auth.POST("/login", authH.Login)

	api.GET("/users/:id/email", authH.GetUserEmail)

	protected := api.Group("", gate.RequireSessionAPI())
	protected.GET("/profile", categoryH.GetProfile)
	protected.GET("/categories", categoryH.GetCategories)
	protected.PUT("/interests", categoryH.UpdateInterests)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}
