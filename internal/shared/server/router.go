package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"visapath-backend/internal/assessments"
	googleauth "visapath-backend/internal/auth"
	"visapath-backend/internal/forms"
	"visapath-backend/internal/pathways"
	"visapath-backend/internal/questionnaire"
	"visapath-backend/internal/shared/config"
	"visapath-backend/internal/shared/metrics"
	"visapath-backend/internal/shared/server/middleware"
	"visapath-backend/internal/shared/server/respond"
	"visapath-backend/internal/shared/storage/db"
	"visapath-backend/internal/usage"
	"visapath-backend/internal/users"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Auth(cfg.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"ASSESS": {Rate: 1, Burst: 5},
			},
			GroupFor: func(c *gin.Context) string {
				if c.Request.Method == http.MethodPost && c.FullPath() == "/api/v1/assessments" {
					return "ASSESS"
				}
				return ""
			},
		}),
	)

	// Dependencies
	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var usageSvc *usage.Service
	if sqlDB != nil {
		usageSvc = usage.NewPostgresService(usage.NewPGStore(sqlDB))
	} else {
		usageSvc = usage.NewService()
	}
	usageHandler := usage.NewHandler(usageSvc)

	var userRepo users.Repo
	if sqlDB != nil {
		userRepo = &users.PGRepo{DB: sqlDB}
	} else {
		userRepo = users.NewMemoryRepo()
	}
	userSvc := users.NewService(userRepo)
	userHandler := users.NewHandler(userSvc)

	var assessmentRepo assessments.Repo
	if sqlDB != nil {
		assessmentRepo = assessments.NewPGRepo(sqlDB)
	} else {
		assessmentRepo = assessments.NewMemoryRepo()
	}
	assessmentSvc := assessments.NewService(assessmentRepo, usageSvc)
	assessmentHandler := assessments.NewHandler(assessmentSvc)

	pathwayHandler := pathways.NewHandler(pathways.Default())
	questionHandler := questionnaire.NewHandler()
	formHandler := forms.NewHandler()
	googleAuthSvc := googleauth.NewGoogleService(cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL, userSvc)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())
	googleAuthSvc.RegisterRoutes(api)
	userHandler.RegisterRoutes(api)
	pathwayHandler.RegisterRoutes(api)
	questionHandler.RegisterRoutes(api)
	formHandler.RegisterRoutes(api)
	assessmentHandler.RegisterRoutes(api)
	usageHandler.RegisterRoutes(api)
	if cfg.Env == "dev" {
		dev := api.Group("/dev")
		usageHandler.RegisterDevRoutes(dev)
	}

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
