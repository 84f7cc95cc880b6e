package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/navalhaapp/barber-dashboard/internal/cache"
	"github.com/navalhaapp/barber-dashboard/internal/config"
	dbpkg "github.com/navalhaapp/barber-dashboard/internal/db"
	"github.com/navalhaapp/barber-dashboard/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	locker, err := cache.NewRedisLocker(cfg.RedisAddr)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer locker.Close()

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, locker)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
