package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecommerce-backend/config"
	_ "ecommerce-backend/docs"
	"ecommerce-backend/internal/handler"
	"ecommerce-backend/internal/repository"
	"ecommerce-backend/internal/security"
	"ecommerce-backend/internal/service"

	"github.com/go-chi/chi/v5"
	_ "github.com/lib/pq"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Ecommerce-backend
// @version 1.0
// @description REST API интернет-магазина: аутентификация, каталог, корзина, купоны, аналитика

// @host localhost:8080
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		log.Fatalf("Не удалось подключиться к БД: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Ошибка при закрытии БД: %v", err)
		}
	}()

	redisClient, err := config.SetupRedis(&cfg.RedisConfig)
	if err != nil {
		log.Fatalf("Ошибка подключения к Redis: %v", err)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Printf("Ошибка при закрытии Redis: %v", err)
		}
	}()

	srv, router := config.SetupServer(cfg.ServerAddr)

	// отсутствующий секрет или кривой TTL валят процесс на старте,
	// а не первый запрос
	jwtService, err := security.NewJWTService(&cfg.JWT)
	if err != nil {
		log.Fatalf("Ошибка конфигурации JWT: %v", err)
	}
	cookies := security.NewCookieTransport(cfg.Environment, jwtService.AccessTokenTTL(), jwtService.RefreshTokenTTL())

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(redisClient, jwtService.RefreshTokenTTL())
	cacheRepo := repository.NewCacheRepository(redisClient)
	productRepo := repository.NewProductRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	s3Service, err := service.NewS3Service(ctx, &cfg.S3Config)
	if err != nil {
		log.Fatalf("Ошибка создания S3 сервиса: %v", err)
	}

	authService := service.NewAuthenticationService(userRepo, sessionRepo, jwtService)
	productService := service.NewProductService(productRepo, cacheRepo, s3Service)
	cartService := service.NewCartService(cartRepo, productRepo)
	couponService := service.NewCouponService(couponRepo)
	analyticsService := service.NewAnalyticsService(orderRepo)

	authHandler := handler.NewAuthenticationHandler(authService, cookies)
	productHandler := handler.NewProductHandler(productService)
	cartHandler := handler.NewCartHandler(cartService)
	couponHandler := handler.NewCouponHandler(couponService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsService)

	protect := security.Protect(jwtService, userRepo, cookies)

	router.Get("/swagger/*", httpSwagger.WrapHandler)

	setupAuthRoutes(router, authHandler, protect)
	setupProductRoutes(router, productHandler, protect)
	setupCartRoutes(router, cartHandler, protect)
	setupCouponRoutes(router, couponHandler, protect)
	setupAnalyticsRoutes(router, analyticsHandler, protect)

	runServer(ctx, srv)
}

func setupAuthRoutes(r chi.Router, h *handler.AuthenticationHandler, protect func(http.Handler) http.Handler) {
	r.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", h.Signup)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Post("/refresh", h.RefreshToken)

		r.Group(func(r chi.Router) {
			r.Use(protect)
			r.Get("/profile", h.GetProfile)
		})
	})
}

func setupProductRoutes(r chi.Router, h *handler.ProductHandler, protect func(http.Handler) http.Handler) {
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/featured", h.GetFeaturedProducts)
		r.Get("/category/{category}", h.GetProductsByCategory)
		r.Get("/recommendations", h.GetRecommendedProducts)

		r.Group(func(r chi.Router) {
			r.Use(protect)
			r.Use(security.AdminOnly)
			r.Get("/", h.ListProducts)
			r.Post("/", h.CreateProduct)
			r.Delete("/{id}", h.DeleteProduct)
			r.Patch("/{id}", h.ToggleFeaturedProduct)
		})
	})
}

func setupCartRoutes(r chi.Router, h *handler.CartHandler, protect func(http.Handler) http.Handler) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Use(protect)
		r.Get("/", h.GetCartProducts)
		r.Post("/", h.AddToCart)
		r.Delete("/", h.RemoveFromCart)
		r.Delete("/clear", h.ClearCart)
		r.Put("/{id}", h.UpdateQuantity)
	})
}

func setupCouponRoutes(r chi.Router, h *handler.CouponHandler, protect func(http.Handler) http.Handler) {
	r.Route("/api/coupons", func(r chi.Router) {
		r.Use(protect)
		r.Get("/", h.GetCoupon)
		r.Post("/validate", h.ValidateCoupon)
	})
}

func setupAnalyticsRoutes(r chi.Router, h *handler.AnalyticsHandler, protect func(http.Handler) http.Handler) {
	r.Route("/api/analytics", func(r chi.Router) {
		r.Use(protect)
		r.Use(security.AdminOnly)
		r.Get("/", h.GetAnalytics)
	})
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		log.Println("сервер запущен на " + server.Addr)
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil {
			log.Fatalf("ошибка работы сервера: %v", err)
		}
	case sig := <-signalChannel:
		log.Printf("получен сигнал %v остановки работы сервера ", sig)
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		log.Printf("ошибка при остановке сервера: %v", err)
	} else {
		log.Println("Сервер успешно остановлен")
	}
}
