package app

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/riyazmahammad/dolphine-cafe/internal/config"
	httpx "github.com/riyazmahammad/dolphine-cafe/internal/http"
	"github.com/riyazmahammad/dolphine-cafe/internal/http/handlers"
	"github.com/riyazmahammad/dolphine-cafe/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	c, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer c.Close()

	authH := handlers.NewAuthHandlers(c.AuthSvc)
	jwtMW := middleware.NewAuthMW(c.TokenSvc, c.SessionRepo)

	r := httpx.BuildRouter(authH, jwtMW)

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
