package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"cabdesk/config"
	"cabdesk/db"
	"cabdesk/handlers"
	"cabdesk/middleware"
	"cabdesk/pricing"
	"cabdesk/stores"
	"cabdesk/utils"
)

var serverStartTime time.Time

func main() {
	serverStartTime = time.Now()

	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	utils.InitLogger()
	utils.Logger.Info("Starting CabDesk Server...")

	config.LoadAndValidate()

	// Connect to DB
	db.Connect()
	defer db.Close()

	// Auto-migrate tables
	db.Migrate()
	db.InitRedis()

	// Context for background services (cancellation)
	bgCtx, bgCancel := context.WithCancel(context.Background())
	defer bgCancel()

	utils.StartRetentionWorker(bgCtx)

	// Wire the pricing engine: pg-backed store, redis-cached distance lookups
	store := stores.NewStore(db.Pool)
	routes := stores.NewRouteCache(db.RedisClient, utils.NewDistanceMatrixClient())
	engine := pricing.NewEngine(store, routes)
	handlers.Init(store, engine)

	// Use release mode in production
	if os.Getenv("GIN_MODE") == "release" || os.Getenv("NODE_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.SetTrustedProxies(nil)

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, x-admin-secret")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	// Security Middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.SecureHeaders())
	r.Use(middleware.RateLimit())
	r.Use(middleware.TimeoutMiddleware())
	r.Use(middleware.MaxBodySize(1 * 1024 * 1024)) // 1MB limit

	// Health Check
	r.GET("/health", func(c *gin.Context) {
		dbStatus := "connected"
		dbLatency := "N/A"
		start := time.Now()
		err := db.Pool.Ping(context.Background())
		if err != nil {
			dbStatus = fmt.Sprintf("error: %v", err)
		} else {
			dbLatency = fmt.Sprintf("%dms", time.Since(start).Milliseconds())
		}

		redisStatus := "connected"
		redisLatency := "N/A"
		if db.RedisClient != nil {
			start = time.Now()
			_, err = db.RedisClient.Ping(context.Background()).Result()
			if err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
			} else {
				redisLatency = fmt.Sprintf("%dms", time.Since(start).Milliseconds())
			}
		}

		uptime := time.Since(serverStartTime)
		uptimeStr := fmt.Sprintf("%dd %dh %dm %ds",
			int(uptime.Hours())/24, int(uptime.Hours())%24, int(uptime.Minutes())%60, int(uptime.Seconds())%60)

		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"status":  "healthy",
			"server": gin.H{
				"goVersion": runtime.Version(),
				"uptime":    uptimeStr,
				"startedAt": serverStartTime.Format(time.RFC3339),
			},
			"database": gin.H{"status": dbStatus, "latency": dbLatency},
			"redis":    gin.H{"status": redisStatus, "latency": redisLatency},
		})
	})

	// Load Routes (Modular registration with middleware injection)
	handlers.RegisterCustomerRoutes(r, middleware.IsAuthenticated())
	handlers.RegisterAdminRoutes(r, middleware.IsAdmin())

	port := config.Envs.Port

	// Graceful Shutdown
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	log.Printf("CabDesk Server running on port %s", port)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	// 1. Cancel background workers
	bgCancel()

	// 2. Shutdown HTTP server (stop accepting new requests)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// 3. Wait for tracked background tasks (SafeGo) to complete
	log.Println("Waiting for background tasks to drain...")
	utils.WaitForBackgroundTasks(5 * time.Second)

	log.Println("Server exiting")
}
