package healthscribe

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"scribe-backend/internal/clinical"
	"scribe-backend/internal/shared/metrics"
	"scribe-backend/internal/shared/server/respond"
	"scribe-backend/internal/shared/storage/object"
	"scribe-backend/internal/shared/telemetry"
	"scribe-backend/internal/shared/util"
	"scribe-backend/internal/transcription"
)

const (
	inputPrefix   = "healthscribe/input"
	jobNamePrefix = "healthscribe"
)

// Handler wires the healthscribe HTTP surface to its collaborators.
type Handler struct {
	Store    object.ObjectStore
	Jobs     transcription.JobService
	Tracker  *transcription.Tracker
	Analysis *clinical.Service
	Bucket   string
}

// NewHandler constructs a Handler.
func NewHandler(store object.ObjectStore, jobs transcription.JobService, tracker *transcription.Tracker, analysis *clinical.Service, bucket string) *Handler {
	return &Handler{
		Store:    store,
		Jobs:     jobs,
		Tracker:  tracker,
		Analysis: analysis,
		Bucket:   bucket,
	}
}

// RegisterRoutes attaches healthscribe routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	hs := rg.Group("/healthscribe")
	hs.POST("/upload", h.upload)
	hs.GET("/status/:jobName", h.status)
	hs.POST("/agent/analyze", h.analyze)
}

type uploadResponse struct {
	Status  string `json:"status"`
	JobName string `json:"jobName,omitempty"`
	S3Key   string `json:"s3Key,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (h *Handler) upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "audio file is required", nil)
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "audio/") {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file must be an audio format", nil)
		return
	}

	sanitized, err := util.SanitizeFileName(fileHeader.Filename)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid file name", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "could not read uploaded file", nil)
		return
	}
	defer f.Close()

	timestamp := time.Now().UTC().Unix()
	s3Key := fmt.Sprintf("%s/%d-%s", inputPrefix, timestamp, sanitized)

	if _, err := h.Store.SaveWithKey(c.Request.Context(), s3Key, contentType, f); err != nil {
		telemetry.Error("upload.store.failed", map[string]any{
			"err":        err.Error(),
			"s3_key":     s3Key,
			"request_id": c.GetString("requestId"),
		})
		respond.JSON(c, http.StatusBadGateway, uploadResponse{
			Status: string(transcription.StatusFailed),
			Error:  "failed to store audio",
		})
		return
	}

	// Timestamp plus random suffix keeps names unique across concurrent
	// submissions in the same second.
	jobName := fmt.Sprintf("%s-%d-%s", jobNamePrefix, timestamp, uuid.NewString()[:8])
	mediaURI := fmt.Sprintf("s3://%s/%s", h.Bucket, s3Key)

	if err := h.Jobs.Start(c.Request.Context(), transcription.StartJobInput{JobName: jobName, MediaURI: mediaURI}); err != nil {
		telemetry.Error("upload.job_start.failed", map[string]any{
			"err":        err.Error(),
			"job_name":   jobName,
			"s3_key":     s3Key,
			"request_id": c.GetString("requestId"),
		})
		respond.JSON(c, http.StatusBadGateway, uploadResponse{
			Status: string(transcription.StatusFailed),
			Error:  "failed to start transcription job",
		})
		return
	}

	metrics.IncJobSubmitted()
	c.Set("jobName", jobName)
	respond.OK(c, uploadResponse{Status: "started", JobName: jobName, S3Key: s3Key})
}

func (h *Handler) status(c *gin.Context) {
	jobName := strings.TrimSpace(c.Param("jobName"))
	if jobName == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "job name is required", nil)
		return
	}

	c.Set("jobName", jobName)
	respond.OK(c, h.Tracker.GetResult(c.Request.Context(), jobName))
}

type analyzeRequest struct {
	Transcript string         `json:"transcript"`
	Patient    map[string]any `json:"patient"`
}

func (h *Handler) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if strings.TrimSpace(req.Transcript) == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "transcript is required", nil)
		return
	}

	respond.OK(c, h.Analysis.Analyze(c.Request.Context(), req.Transcript, req.Patient))
}
