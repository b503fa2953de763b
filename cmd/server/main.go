package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wordnest/api/internal/cache"
	"github.com/wordnest/api/internal/config"
	"github.com/wordnest/api/internal/database"
	"github.com/wordnest/api/internal/dict"
	"github.com/wordnest/api/internal/handler"
	"github.com/wordnest/api/internal/middleware"
	"github.com/wordnest/api/internal/ocr"
	"github.com/wordnest/api/internal/pdf"
	"github.com/wordnest/api/internal/scheduler"
	"github.com/wordnest/api/internal/store"
)

func main() {
	web := flag.Bool("web", false, "listen on all interfaces instead of localhost only")
	port := flag.Int("port", 8555, "port to listen on")
	dbPath := flag.String("db", "", "path to the vocabulary database (overrides WORDNEST_DB)")
	flag.Parse()

	cfg := config.Load()
	if *dbPath != "" {
		cfg.DatabasePath = *dbPath
	}

	db, err := database.Connect(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Redis is optional; without it dictionary lookups just skip the cache.
	var redisCache *cache.RedisCache
	if cfg.RedisURL != "" {
		redisCache, err = cache.NewRedisCache(cfg.RedisURL)
		if err != nil {
			log.Printf("Warning: Failed to connect to Redis: %v", err)
			redisCache = nil
		}
	}

	wordStore := store.New(db)
	dictClient := dict.NewClient(cfg.PrimaryDictURL, cfg.FallbackDictURL, cfg.DictTimeout, redisCache)
	ocrEngine := ocr.New(cfg.TesseractCmd)
	renderer := pdf.NewRenderer()

	wordHandler := handler.NewWordHandler(wordStore, dictClient)
	ingestHandler := handler.NewIngestHandler(wordStore, ocrEngine)
	reviewHandler := handler.NewReviewHandler(wordStore)
	gameHandler := handler.NewGameHandler(wordStore)
	exportHandler := handler.NewExportHandler(wordStore, renderer, cfg.OutputDir)

	var enricher *scheduler.EnrichScheduler
	if cfg.EnrichEnabled {
		enricher = scheduler.New(wordStore, dictClient, cfg.EnrichInterval)
		go enricher.Start(context.Background())
		log.Println("Background meaning enrichment started")
	}

	r := gin.Default()
	r.Use(middleware.MetricsMiddleware())

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/scheduler/status", func(c *gin.Context) {
		if enricher != nil {
			c.JSON(200, enricher.Status())
		} else {
			c.JSON(200, gin.H{"enabled": false, "message": "Enrichment is disabled"})
		}
	})

	api := r.Group("/api")
	{
		// Ingest
		api.POST("/extract", ingestHandler.Extract)
		api.POST("/ocr", ingestHandler.Recognize)
		api.GET("/ocr/status", ingestHandler.Status)

		// Words
		api.POST("/words", wordHandler.Create)
		api.POST("/words/batch", ingestHandler.Batch)
		api.GET("/words", wordHandler.List)
		api.GET("/words/:id", wordHandler.Get)
		api.PUT("/words/:id", wordHandler.Update)
		api.DELETE("/words/:id", wordHandler.Delete)
		api.POST("/words/:id/lookup", wordHandler.Lookup)
		api.GET("/stats", wordHandler.Stats)

		// Review sessions
		api.POST("/review/sessions", reviewHandler.Create)
		api.GET("/review/sessions/:id", reviewHandler.Get)
		api.POST("/review/sessions/:id/reveal", reviewHandler.Reveal)
		api.POST("/review/sessions/:id/answer", reviewHandler.Answer)
		api.POST("/review/sessions/:id/result", reviewHandler.Result)
		api.POST("/review/sessions/:id/next", reviewHandler.Next)
		api.DELETE("/review/sessions/:id", reviewHandler.End)

		// Matching game
		api.POST("/game/sessions", gameHandler.Create)
		api.GET("/game/sessions/:id", gameHandler.Get)
		api.POST("/game/sessions/:id/select", gameHandler.Select)
		api.POST("/game/sessions/:id/restart", gameHandler.Restart)

		// Export
		api.POST("/export", exportHandler.Export)
	}

	addr := fmt.Sprintf("127.0.0.1:%d", *port)
	if *web {
		addr = fmt.Sprintf("0.0.0.0:%d", *port)
		log.Printf("Serving on the local network: http://%s:%d", localIP(), *port)
	}

	log.Printf("API server starting on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// localIP finds the address other machines on the LAN should use. The UDP
// dial never sends a packet; it only asks the kernel for a route.
func localIP() string {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		return "127.0.0.1"
	}
	defer conn.Close()
	return conn.LocalAddr().(*net.UDPAddr).IP.String()
}
