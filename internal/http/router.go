package api

import (
	"log"
	stdhttp "net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	intconfig "github.com/niko1327/vento/internal/config"
	h "github.com/niko1327/vento/internal/http/handlers"
	"github.com/niko1327/vento/internal/http/middleware"
	"github.com/niko1327/vento/internal/repositories"
	"github.com/niko1327/vento/internal/services"
	"github.com/niko1327/vento/internal/sheets"
)

func NewRouter(env intconfig.Env, source sheets.Source) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     env.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "Accept", "Origin"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		log.Printf("warning: failed to set trusted proxies: %v", err)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(stdhttp.StatusNotFound, gin.H{
			"error":  "route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})

	clientRepo := repositories.ClientRepository{}
	settingsRepo := repositories.SettingsRepository{}
	session := &services.InvoiceSession{Clients: clientRepo, Settings: settingsRepo}

	sheetHandler := h.SheetHandler{Source: source}
	tripHandler := h.TripHandler{Source: source}
	clientHandler := h.ClientHandler{Repo: clientRepo}
	settingsHandler := h.SettingsHandler{Repo: settingsRepo}
	invoiceHandler := h.InvoiceHandler{Session: session}

	api := r.Group("/api")
	{
		api.GET("/health", h.Health)
		api.GET("/db-check", h.DBCheck)

		api.GET("/sheets", sheetHandler.GetSheet)
		api.GET("/trips", tripHandler.GetTrips)

		clients := api.Group("/clients")
		clients.GET("", clientHandler.List)
		clients.POST("", clientHandler.Upsert)
		clients.PUT("/:id", clientHandler.Upsert)
		clients.DELETE("/:id", clientHandler.Delete)

		settings := api.Group("/settings")
		settings.GET("", settingsHandler.Get)
		settings.PUT("", settingsHandler.Update)

		invoice := api.Group("/invoice")
		invoice.POST("/select", invoiceHandler.Select)
		invoice.GET("", invoiceHandler.Current)
		invoice.PATCH("", invoiceHandler.Edit)
		invoice.GET("/pdf", invoiceHandler.PDF)
	}

	return r
}
