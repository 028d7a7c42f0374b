package server

import (
	"context"
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"

	"cvreview-backend/internal/analyses"
	"cvreview-backend/internal/analysis"
	"cvreview-backend/internal/analysis/features"
	"cvreview-backend/internal/analysis/genai"
	googleauth "cvreview-backend/internal/auth"
	"cvreview-backend/internal/documents"
	"cvreview-backend/internal/llm"
	"cvreview-backend/internal/llm/openai"
	"cvreview-backend/internal/nlptag"
	"cvreview-backend/internal/services/health"
	"cvreview-backend/internal/shared/config"
	"cvreview-backend/internal/shared/metrics"
	"cvreview-backend/internal/shared/server/middleware"
	"cvreview-backend/internal/shared/server/respond"
	"cvreview-backend/internal/shared/storage/db"
	"cvreview-backend/internal/shared/storage/object"
	localstore "cvreview-backend/internal/shared/storage/object/local"
	s3store "cvreview-backend/internal/shared/storage/object/s3"
	"cvreview-backend/internal/shared/telemetry"
	"cvreview-backend/internal/uploads"
	"cvreview-backend/internal/users"
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
	)

	store := newObjectStore(cfg)
	sqlDB := connectDatabase(cfg)
	engine := newAnalysisEngine(cfg)

	var (
		docRepo      documents.DocumentsRepo
		analysisRepo analyses.Repo
		userRepo     users.Repo
	)
	if sqlDB != nil {
		docRepo = &documents.PGRepo{DB: sqlDB}
		analysisRepo = &analyses.PGRepo{DB: sqlDB}
		userRepo = &users.PGRepo{DB: sqlDB}
	} else {
		docRepo = documents.NewMemoryRepo()
		analysisRepo = analyses.NewMemoryRepo()
		userRepo = users.NewMemoryRepo()
	}

	userSvc := users.NewService(userRepo)
	docSvc := &documents.Service{Store: store, Repo: docRepo}
	analysisSvc := &analyses.Service{
		Repo:    analysisRepo,
		Docs:    docRepo,
		Store:   store,
		Engine:  engine,
		Timeout: 5 * time.Minute,
	}
	healthSvc := health.NewService(engine, sqlDB)
	googleAuthSvc := googleauth.NewGoogleService(
		cfg.GoogleClientID, cfg.GoogleClientSecret, cfg.GoogleRedirectURL, cfg.UIRedirectURL, userSvc)

	r.GET("/healthz", func(c *gin.Context) {
		respond.OK(c, healthSvc.Status(c.Request.Context()))
	})
	r.GET("/metrics", metrics.Handler())

	api := r.Group("/api/v1",
		middleware.Auth(cfg.Env),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"ANALYZE": {Rate: 0.5, Burst: 5},
			},
			GroupFor: analysisRateGroup,
		}),
	)
	googleAuthSvc.RegisterRoutes(api)
	users.NewHandler(userSvc).RegisterRoutes(api)
	documents.NewHandler(docSvc).RegisterRoutes(api)
	analyses.NewHandler(analysisSvc).RegisterRoutes(api)
	api.GET("/health", func(c *gin.Context) {
		respond.OK(c, healthSvc.Status(c.Request.Context()))
	})
	api.GET("/health/tools", func(c *gin.Context) {
		respond.OK(c, analysisSvc.Health())
	})

	if cfg.ObjectStoreType == "s3" && cfg.S3Bucket != "" {
		uploadHandler, err := uploads.NewHandler(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix)
		if err != nil {
			telemetry.Warn("server.uploads_disabled", map[string]any{"error": err.Error()})
		} else {
			uploadHandler.RegisterRoutes(api)
		}
	}

	return r
}

// analysisRateGroup throttles only the endpoints that run the full
// pipeline.
func analysisRateGroup(c *gin.Context) string {
	if c.Request.Method != "POST" {
		return ""
	}
	path := c.FullPath()
	if path == "/api/v1/analyses" || path == "/api/v1/documents/:id/analyze" {
		return "ANALYZE"
	}
	return ""
}

func newObjectStore(cfg config.Config) object.ObjectStore {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(context.Background(), cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, "")
		if err == nil {
			return store
		}
		telemetry.Warn("server.s3_store_failed", map[string]any{"error": err.Error()})
	}
	return localstore.New(cfg.LocalStoreDir)
}

func connectDatabase(cfg config.Config) *sql.DB {
	if cfg.DatabaseURL == "" {
		return nil
	}
	ctx := context.Background()
	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err != nil {
		telemetry.Warn("server.db_unavailable", map[string]any{"error": err.Error()})
		return nil
	}
	if err := db.RunMigrations(ctx, sqlDB); err != nil {
		telemetry.Warn("server.migrations_failed", map[string]any{"error": err.Error()})
		sqlDB.Close()
		return nil
	}
	return sqlDB
}

func newAnalysisEngine(cfg config.Config) *analysis.Orchestrator {
	var tagger nlptag.Tagger
	if cfg.TaggerMode != "off" {
		rt, err := nlptag.NewRuleTagger()
		if err != nil {
			telemetry.Warn("server.tagger_unavailable", map[string]any{"error": err.Error()})
		} else {
			tagger = rt
		}
	}

	var completer llm.Completer
	if cfg.LLMAPIKey != "" && cfg.LLMProvider == "openai" {
		client, err := openai.NewClient(cfg.LLMAPIKey, cfg.LLMModel, cfg.LLMTimeout)
		if err != nil {
			telemetry.Warn("server.llm_unavailable", map[string]any{"error": err.Error()})
		} else {
			completer = client
		}
	}

	return analysis.New(
		features.NewExtractor(tagger),
		genai.NewClient(completer, cfg.LLMTimeout),
	)
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
