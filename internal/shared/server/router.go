package server

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"scribe-backend/internal/agent"
	"scribe-backend/internal/clinical"
	"scribe-backend/internal/healthscribe"
	"scribe-backend/internal/shared/config"
	"scribe-backend/internal/shared/metrics"
	"scribe-backend/internal/shared/server/middleware"
	"scribe-backend/internal/shared/server/respond"
	"scribe-backend/internal/shared/storage/object"
	localstore "scribe-backend/internal/shared/storage/object/local"
	s3store "scribe-backend/internal/shared/storage/object/s3"
	"scribe-backend/internal/shared/telemetry"
	"scribe-backend/internal/transcription"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
// Collaborators with missing configuration are installed as erroring stubs so
// the problem surfaces on first use instead of failing boot.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
	)

	ctx := context.Background()

	store := buildStore(ctx, cfg)

	var jobs transcription.JobService
	if scribe, err := transcription.NewScribeClient(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.DataAccessRoleARN); err != nil {
		telemetry.Warn("boot.transcription.unavailable", map[string]any{"err": err.Error()})
		jobs = transcription.UnavailableJobs(err)
	} else {
		jobs = scribe
	}

	var invoker agent.Invoker
	if bedrock, err := agent.NewBedrockClient(ctx, cfg.AWSRegion, cfg.BedrockAgentID, cfg.BedrockAgentAlias, cfg.AgentInvokeTimeout); err != nil {
		telemetry.Warn("boot.agent.unavailable", map[string]any{"err": err.Error()})
		invoker = agent.Unavailable(err)
	} else {
		invoker = bedrock
	}

	tracker := &transcription.Tracker{Jobs: jobs, Store: store, Bucket: cfg.S3Bucket}
	analysis := clinical.NewService(invoker)
	handler := healthscribe.NewHandler(store, jobs, tracker, analysis, cfg.S3Bucket)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	handler.RegisterRoutes(api)

	return r
}

func buildStore(ctx context.Context, cfg config.Config) object.ObjectStore {
	if cfg.ObjectStoreType == "s3" {
		store, err := s3store.New(ctx, cfg.AWSRegion, cfg.S3Bucket, cfg.S3Prefix, cfg.SSEKMSKeyID)
		if err == nil {
			return store
		}
		telemetry.Warn("boot.s3_store.unavailable", map[string]any{"err": err.Error()})
	}
	return localstore.New(cfg.LocalStoreDir)
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
