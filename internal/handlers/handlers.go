// Package handlers binds the HTTP surface to the inference pipeline and the
// auth workflow.
package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/example/emotion-api/internal/auth"
	"github.com/example/emotion-api/internal/emotion"
	"github.com/example/emotion-api/internal/metrics"
	"github.com/example/emotion-api/internal/repository"
	"github.com/example/emotion-api/internal/vision"
)

// MaxUploadSize caps the multipart memory per request.
const MaxUploadSize = 10 << 20

// Detector is the slice of the pipeline the gateway needs.
type Detector interface {
	Detect(ctx context.Context, up emotion.Upload) (string, *vision.Prediction, error)
	Result(ctx context.Context, requestID string) (*repository.DetectionLog, error)
	Duplicates(ctx context.Context, log *repository.DetectionLog) []string
}

type signupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CORSMiddleware allows any origin: the browser client is served from
// elsewhere. The allow-origin header goes on every response, with or
// without an Origin header, and preflights answer 200 with the same body
// the explicit OPTIONS route serves.
func CORSMiddleware() gin.HandlerFunc {
	negotiate := cors.New(cors.Config{
		AllowAllOrigins:           true,
		AllowMethods:              []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:              []string{"Content-Type"},
		OptionsResponseStatusCode: http.StatusOK,
	})
	return func(c *gin.Context) {
		// gin-contrib only emits the header for cross-host origins, but
		// same-host fetches and non-browser callers expect it too.
		c.Header("Access-Control-Allow-Origin", "*")
		negotiate(c)
		// A preflight aborts inside negotiate with an empty body; its
		// headers are already flushed at that point, so append the body
		// directly.
		if c.Request.Method == http.MethodOptions && c.IsAborted() && c.Writer.Size() <= 0 {
			_, _ = c.Writer.WriteString(`{"status":"ok"}`)
		}
	}
}

// RegisterRoutes wires the HTTP handlers to the gin router.
func RegisterRoutes(router *gin.Engine, detector Detector, authSvc *auth.Service, logger *zap.Logger) {
	logger = logger.Named("handlers")

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Non-preflight OPTIONS probes get a plain 200 instead of the CORS 204.
	router.OPTIONS("/detect_emotion", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/detect_emotion", func(c *gin.Context) {
		var up emotion.Upload
		if file, err := c.FormFile("image"); err == nil {
			src, err := file.Open()
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "unable to open image"})
				return
			}
			defer src.Close()

			data, err := io.ReadAll(src)
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read image"})
				return
			}
			up = emotion.Upload{Filename: file.Filename, Data: data}
		}
		// A missing "image" field leaves up.Data nil; the pipeline owns
		// that failure so its metrics count it.

		requestID, pred, err := detector.Detect(c.Request.Context(), up)
		c.Header("X-Request-Id", requestID)
		if err != nil {
			status := detectStatus(err)
			if status == http.StatusInternalServerError {
				logger.Error("detection failed", zap.String("request_id", requestID), zap.Error(err))
				c.JSON(status, gin.H{"error": "internal server error"})
				return
			}
			c.JSON(status, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"emotion":    pred.Emotion,
			"confidence": pred.Confidence,
		})
	})

	router.GET("/result/:id", func(c *gin.Context) {
		requestID := c.Param("id")
		log, err := detector.Result(c.Request.Context(), requestID)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "result not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"request_id": log.RequestID,
			"filename":   log.Filename,
			"emotion":    log.Emotion,
			"confidence": log.Confidence,
			"created_at": log.CreatedAt,
			"duplicates": detector.Duplicates(c.Request.Context(), log),
		})
	})

	router.POST("/signup", func(c *gin.Context) {
		var req signupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		user, err := authSvc.Register(req.Email, req.Password, req.Name)
		if err != nil {
			metrics.AuthAttemptsTotal.WithLabelValues("signup", "error").Inc()
			respondAuthError(c, logger, "signup", err)
			return
		}

		metrics.AuthAttemptsTotal.WithLabelValues("signup", "ok").Inc()
		c.JSON(http.StatusCreated, gin.H{
			"message": "Signup successful",
			"user":    user,
		})
	})

	router.POST("/login", func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		user, err := authSvc.Login(req.Email, req.Password)
		if err != nil {
			metrics.AuthAttemptsTotal.WithLabelValues("login", "error").Inc()
			respondAuthError(c, logger, "login", err)
			return
		}

		metrics.AuthAttemptsTotal.WithLabelValues("login", "ok").Inc()
		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"user":    user,
		})
	})
}

// detectStatus maps pipeline errors onto HTTP status codes. Client-input
// failures are 400, everything else is an internal fault.
func detectStatus(err error) int {
	switch {
	case errors.Is(err, emotion.ErrMissingImage),
		errors.Is(err, emotion.ErrNoFilename),
		errors.Is(err, emotion.ErrUnreadableImage),
		errors.Is(err, emotion.ErrNoFaceDetected),
		errors.Is(err, emotion.ErrUnclassifiablePatch):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondAuthError mirrors the detect path: client failures surface their
// message, anything unexpected is logged and scrubbed.
func respondAuthError(c *gin.Context, logger *zap.Logger, operation string, err error) {
	status := authStatus(err)
	if status == http.StatusInternalServerError {
		logger.Error("auth operation failed", zap.String("operation", operation), zap.Error(err))
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func authStatus(err error) int {
	switch {
	case errors.Is(err, auth.ErrMissingFields),
		errors.Is(err, auth.ErrAlreadyRegistered),
		errors.Is(err, auth.ErrPasswordTooLong):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, auth.ErrInvalidPassword):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
