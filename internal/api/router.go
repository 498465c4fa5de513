package api

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bloghub/blog-api/internal/api/handler"
	"github.com/bloghub/blog-api/internal/api/middleware"
	"github.com/bloghub/blog-api/internal/core/domain"
	"github.com/bloghub/blog-api/internal/core/service"
	"github.com/bloghub/blog-api/internal/core/token"
	mongodb "github.com/bloghub/blog-api/internal/infrastructure/db/mongo"
	redisdb "github.com/bloghub/blog-api/internal/infrastructure/db/redis"
	"github.com/bloghub/blog-api/internal/infrastructure/storage"
)

// RouterConfig carries everything NewRouter needs to assemble the API.
type RouterConfig struct {
	DB        *mongo.Database
	Redis     *goredis.Client
	JWTSecret string
	TokenTTL  time.Duration
	UploadDir string
	// CategoryAdminOnly attaches the admin role gate to category creation.
	CategoryAdminOnly bool
	LoginMaxAttempts  int
	Logger            zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
// It also ensures the MongoDB indexes the route handlers depend on.
func NewRouter(ctx context.Context, cfg RouterConfig) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(cfg.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("blog"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(cfg.DB)
	postRepo := mongodb.NewPostRepository(cfg.DB)
	commentRepo := mongodb.NewCommentRepository(cfg.DB)
	categoryRepo := mongodb.NewCategoryRepository(cfg.DB)

	if err := ensureIndexes(ctx, userRepo, postRepo, commentRepo, categoryRepo); err != nil {
		return nil, fmt.Errorf("ensure indexes: %w", err)
	}

	// --- Services ---
	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL)
	limiter := redisdb.NewLoginLimiter(cfg.Redis, cfg.LoginMaxAttempts, cfg.Logger)
	authService := service.NewAuthService(userRepo, codec, limiter)
	postService := service.NewPostService(postRepo, userRepo, categoryRepo, cfg.Logger)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo, cfg.Logger)
	categoryService := service.NewCategoryService(categoryRepo)

	uploads, err := storage.NewUploadStore(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, cfg.TokenTTL)
	postHandler := handler.NewPostHandler(postService, uploads)
	commentHandler := handler.NewCommentHandler(commentService)
	categoryHandler := handler.NewCategoryHandler(categoryService)
	healthHandler := handler.NewHealthHandler(cfg.DB, cfg.Redis)

	protect := middleware.Auth(codec, userRepo, cfg.Logger)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.GET("/logout", authHandler.Logout)
	auth.GET("/me", authHandler.Me, protect)
	auth.PUT("/updatedetails", authHandler.UpdateDetails, protect)
	auth.PUT("/updatepassword", authHandler.UpdatePassword, protect)

	// --- Post routes ---
	posts := e.Group("/api/posts")
	posts.GET("", postHandler.List)
	posts.GET("/search", postHandler.Search)
	posts.GET("/:id", postHandler.Get)
	posts.POST("", postHandler.Create, protect)
	posts.PUT("/:id", postHandler.Update, protect)
	posts.DELETE("/:id", postHandler.Delete, protect)

	// --- Comment routes ---
	comments := e.Group("/api/comments")
	comments.GET("/:postId", commentHandler.List)
	comments.POST("/:postId", commentHandler.Add, protect)
	comments.DELETE("/:id", commentHandler.Delete, protect)

	// --- Category routes ---
	categories := e.Group("/api/categories")
	categories.GET("", categoryHandler.List)
	createCategoryMW := []echo.MiddlewareFunc{protect}
	if cfg.CategoryAdminOnly {
		createCategoryMW = append(createCategoryMW, middleware.Authorize(domain.RoleAdmin))
	}
	categories.POST("", categoryHandler.Create, createCategoryMW...)

	// --- Static uploads ---
	e.Static("/uploads", uploads.Dir())

	// --- Operational endpoints ---
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, nil
}

type indexEnsurer interface {
	EnsureIndexes(ctx context.Context) error
}

func ensureIndexes(ctx context.Context, ensurers ...indexEnsurer) error {
	for _, e := range ensurers {
		if err := e.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}
