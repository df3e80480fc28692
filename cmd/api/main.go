package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/MAmr9UH/Point-of-Sale-System-sub000/internal/auth"
	"github.com/MAmr9UH/Point-of-Sale-System-sub000/internal/db"
	"github.com/MAmr9UH/Point-of-Sale-System-sub000/internal/ingredient"
	"github.com/MAmr9UH/Point-of-Sale-System-sub000/internal/menuitem"
	"github.com/MAmr9UH/Point-of-Sale-System-sub000/internal/middleware"
	"github.com/MAmr9UH/Point-of-Sale-System-sub000/internal/order"
	"github.com/MAmr9UH/Point-of-Sale-System-sub000/internal/report"
	"github.com/MAmr9UH/Point-of-Sale-System-sub000/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("❌ Missing env var: %s", k)
		}
	}

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── GIN ─────────────────────────
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("❌ R2 init failed:", err)
	}

	// ───────────────────────── REDIS (OPTIONAL) ─────────────────────────
	// Margin reports recompute on every read when REDIS_ADDR is unset.
	var marginCache report.Cache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatal("❌ Redis connection failed:", err)
		}
		marginCache = report.NewRedisCache(rdb, time.Hour)
		log.Println("✅ Connected to Redis")
	}

	// ───────────────────────── AUTH ─────────────────────────
	employeeRepo := auth.NewPostgresEmployeeRepository(pgDB)
	authService := auth.NewService(employeeRepo)
	authHandler := auth.NewHandler(authService)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	// ───────────────────────── CORE REPOS ─────────────────────────
	ingredientRepo := ingredient.NewPostgresRepository(pgDB)
	menuItemRepo := menuitem.NewPostgresRepository(pgDB)
	orderRepo := order.NewPostgresRepository(pgDB)

	// ───────────────────────── SERVICES (ORDER MATTERS) ─────────────────────────
	ingredientService := ingredient.NewService(ingredientRepo)

	menuItemService := menuitem.NewService(
		menuItemRepo,
		ingredientRepo,
		r2Client,
		marginCache,
	)

	orderService := order.NewService(menuItemRepo, orderRepo)

	reportService := report.NewService(menuItemRepo, marginCache)

	// ───────────────────────── HANDLERS ─────────────────────────
	ingredientHandler := ingredient.NewHandler(ingredientService)
	menuItemHandler := menuitem.NewHandler(menuItemService)
	orderHandler := order.NewHandler(orderService)
	reportHandler := report.NewHandler(reportService)

	// ───────────────────────── INGREDIENT ROUTES ─────────────────────────
	ingredients := r.Group("/ingredients")
	ingredients.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleManager),
	)
	{
		ingredients.POST("", ingredientHandler.Create)
		ingredients.GET("", ingredientHandler.List)
		ingredients.GET("/:id", ingredientHandler.Get)
		ingredients.PUT("/:id", ingredientHandler.Update)
		ingredients.PATCH("/:id/stock", ingredientHandler.AdjustStock)
	}

	// ───────────────────────── MENU ITEM ROUTES ─────────────────────────
	menuItems := r.Group("/menu-items")
	{
		// Anyone at the register can browse the menu and its options.
		menuItems.GET("", menuItemHandler.List)
		menuItems.GET("/:id", menuItemHandler.Get)
		menuItems.GET("/:id/customizations", menuItemHandler.GetCustomizations)

		managed := menuItems.Group("")
		managed.Use(
			middleware.AuthMiddleware(),
			middleware.RequireRole(auth.RoleManager),
		)
		{
			managed.POST("", menuItemHandler.Create)
			managed.PUT("/:id/rules", menuItemHandler.SaveRules)
			managed.POST("/:id/photo", menuItemHandler.UploadPhoto)
		}
	}

	// ───────────────────────── ORDER ROUTES ─────────────────────────
	orders := r.Group("/orders")
	{
		// Price quotes are public so the menu board can show live totals.
		orders.POST("/quote", orderHandler.QuoteLine)

		placed := orders.Group("")
		placed.Use(
			middleware.AuthMiddleware(),
			middleware.RequireRole(auth.RoleManager, auth.RoleCashier),
		)
		{
			placed.POST("", orderHandler.Create)
			placed.GET("/:id", orderHandler.Get)
		}
	}

	// ───────────────────────── REPORT ROUTES ─────────────────────────
	reports := r.Group("/admin/reports/margins")
	reports.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleManager),
	)
	{
		reports.GET("", reportHandler.AllMargins)
		reports.GET("/export", reportHandler.Export)
		reports.GET("/:menu_item_id", reportHandler.ItemMargin)

		// Manual fallback when a cached report looks stale.
		reports.POST("/recompute", reportHandler.Recompute)
	}

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Println("🚀 API running at http://localhost:8000")
	r.Run(":8000")
}
