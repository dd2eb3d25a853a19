package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/riyazmahammad/dolphine-cafe/internal/http/handlers"
	"github.com/riyazmahammad/dolphine-cafe/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, jwtmw *middleware.AuthMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/signup", ah.Signup)
	auth.POST("/login", ah.Login)
	auth.POST("/verify-otp", ah.VerifyOTP)
	auth.POST("/resend-otp", ah.ResendOTP)
	auth.POST("/refresh", ah.Refresh)

	v := r.Group("/auth").Use(jwtmw.WithJWT())
	v.GET("/me", ah.Me)
	v.POST("/logout", ah.Logout)

	return r
}
