package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"foodgram/internal/config"
	"foodgram/internal/database"
	"foodgram/internal/domain/auth"
	"foodgram/internal/domain/cart"
	"foodgram/internal/domain/catalog"
	"foodgram/internal/domain/favorite"
	"foodgram/internal/domain/recipe"
	"foodgram/internal/domain/user"
	"foodgram/internal/middleware"
	"foodgram/internal/pkg/images"
	jwtsvc "foodgram/internal/pkg/jwt"
)

func main() {
	// .env опционален: в контейнере конфигурация приходит из окружения.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := user.NewRepository(db)
	catalogRepo := catalog.NewRepository(db)
	recipeRepo := recipe.NewRepository(db)
	favoriteRepo := favorite.NewRepository(db)
	cartRepo := cart.NewRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)
	imageStore := images.NewStore(cfg.UploadsDir, cfg.StaticBase)

	userService := user.NewService(userRepo, recipeRepo)
	userHandler := user.NewHandler(userService, userRepo)

	authHandler := auth.NewHandler(userRepo, j)

	catalogHandler := catalog.NewHandler(catalogRepo)

	recipeService := recipe.NewService(recipeRepo, catalogRepo, catalogRepo, imageStore)
	recipeHandler := recipe.NewHandler(recipeService, recipeRepo, favoriteRepo, cartRepo, userRepo)

	favoriteHandler := favorite.NewHandler(favoriteRepo, recipeRepo)

	cartService := cart.NewService(cartRepo)
	cartHandler := cart.NewHandler(cartRepo, cartService, recipeRepo, userRepo)

	authRequired := middleware.JWTAuth(j)
	authOptional := middleware.OptionalJWTAuth(j)

	r := gin.New()
	r.Use(gin.Logger(), middleware.ErrorLogger(), middleware.CORS())

	r.Static(cfg.StaticBase, cfg.UploadsDir)

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterRoutes(v1, authRequired)
		userHandler.RegisterRoutes(v1, authRequired, authOptional)
		catalogHandler.RegisterRoutes(v1, authRequired, middleware.StaffOnly())
		recipeHandler.RegisterRoutes(v1, authRequired, authOptional)
		favoriteHandler.RegisterRoutes(v1, authRequired)
		cartHandler.RegisterRoutes(v1, authRequired)
	}

	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatal(err)
	}
}
