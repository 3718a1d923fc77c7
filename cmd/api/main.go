package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/libertaapp/atendimentos-api/internal/config"
	dbpkg "github.com/libertaapp/atendimentos-api/internal/db"
	"github.com/libertaapp/atendimentos-api/internal/routes"
	"github.com/libertaapp/atendimentos-api/internal/storage"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	kv := storage.NewRedis(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, kv, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
