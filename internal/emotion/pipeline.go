// Package emotion implements the inference pipeline: decode the upload,
// find a face, cut and normalize the region, classify it, and report the
// dominant emotion.
package emotion

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/emotion-api/internal/imaging"
	"github.com/example/emotion-api/internal/logging"
	"github.com/example/emotion-api/internal/metrics"
	"github.com/example/emotion-api/internal/repository"
	"github.com/example/emotion-api/internal/scratch"
	"github.com/example/emotion-api/internal/vision"
)

// Upload is the raw payload of one detection request. A nil Data means no
// image was attached at all.
type Upload struct {
	Filename string
	Data     []byte
}

// Recorder defines the persistence operations needed by the pipeline.
type Recorder interface {
	SaveDetection(ctx context.Context, log *repository.DetectionLog) error
	FindByRequestID(ctx context.Context, requestID string) (*repository.DetectionLog, error)
	FindDuplicatesByHash(ctx context.Context, hash, excludeRequestID string) ([]*repository.DetectionLog, error)
}

// Pipeline orchestrates one detection from upload bytes to verdict.
// Every invocation is independent; the only shared state is the scratch
// directory and the history sinks.
type Pipeline struct {
	locator        vision.FaceLocator
	classifier     vision.Classifier
	scratch        *scratch.Dir
	repo           Recorder
	cache          Cache
	logger         *zap.Logger
	retryAttempts  int
	initialBackoff time.Duration
	maxBackoff     time.Duration
}

// NewPipeline constructs the pipeline. repo and cache may be nil, in which
// case detection history is disabled but detections still work.
func NewPipeline(locator vision.FaceLocator, classifier vision.Classifier, dir *scratch.Dir, repo Recorder, cache Cache, logger *zap.Logger) *Pipeline {
	return &Pipeline{
		locator:        locator,
		classifier:     classifier,
		scratch:        dir,
		repo:           repo,
		cache:          cache,
		logger:         logger.Named("emotion_pipeline"),
		retryAttempts:  3,
		initialBackoff: 50 * time.Millisecond,
		maxBackoff:     time.Second,
	}
}

// Detect runs the full pipeline and returns the request id and the selected
// prediction. Failures are fail-fast and never retried.
func (p *Pipeline) Detect(ctx context.Context, up Upload) (string, *vision.Prediction, error) {
	requestID := uuid.NewString()
	start := time.Now()

	pred, err := p.detect(ctx, requestID, up)

	metrics.DetectionsTotal.WithLabelValues(outcomeFor(err)).Inc()
	metrics.DetectionDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return requestID, nil, err
	}
	return requestID, pred, nil
}

func (p *Pipeline) detect(ctx context.Context, requestID string, up Upload) (*vision.Prediction, error) {
	opLogger := logging.WithOperation(p.logger, "pipeline.detect", requestID)

	if up.Data == nil {
		return nil, ErrMissingImage
	}
	if scratch.SanitizeFilename(up.Filename) == "" {
		return nil, ErrNoFilename
	}

	path, cleanup, err := p.scratch.Save(up.Filename, up.Data)
	if err != nil {
		wrapped := logging.NewOperationError("pipeline.save_upload", requestID, err)
		opLogger.Error("failed to persist upload", zap.Error(wrapped))
		return nil, wrapped
	}
	// The scratch file goes away on every exit path, not just after a
	// successful classification.
	defer cleanup()

	img, err := imaging.DecodeFile(path)
	if err != nil {
		opLogger.Info("upload did not decode", zap.Error(err))
		return nil, ErrUnreadableImage
	}
	gray := imaging.ToGray(img)

	faces, err := p.locator.Locate(ctx, gray)
	if err != nil {
		wrapped := logging.NewOperationError("pipeline.locate_faces", requestID, err)
		opLogger.Error("face locator failed", zap.Error(wrapped))
		return nil, wrapped
	}
	if len(faces) == 0 {
		return nil, ErrNoFaceDetected
	}
	// First reported region wins; the locator's order is the selection order.
	region := faces[0]

	patch, err := imaging.CropPatch(gray, region)
	if err != nil {
		wrapped := logging.NewOperationError("pipeline.crop_patch", requestID, err)
		opLogger.Error("face region unusable", zap.Error(wrapped))
		return nil, wrapped
	}
	if imaging.IntensitySum(patch) == 0 {
		return nil, ErrUnclassifiablePatch
	}

	scores, err := p.classifier.Classify(ctx, imaging.Normalize(patch))
	if err != nil {
		wrapped := logging.NewOperationError("pipeline.classify", requestID, err)
		opLogger.Error("classifier failed", zap.Error(wrapped))
		return nil, wrapped
	}
	if len(scores) != len(vision.Labels) {
		err := fmt.Errorf("classifier returned %d scores, want %d", len(scores), len(vision.Labels))
		wrapped := logging.NewOperationError("pipeline.classify", requestID, err)
		opLogger.Error("classifier contract violation", zap.Error(wrapped))
		return nil, wrapped
	}

	idx := vision.Argmax(scores)
	pred := &vision.Prediction{Emotion: vision.Labels[idx], Confidence: scores[idx]}

	p.record(ctx, requestID, up, region, pred)
	return pred, nil
}

// record persists the detection to history and cache. Best effort: history
// must never fail a detection that already succeeded.
func (p *Pipeline) record(ctx context.Context, requestID string, up Upload, region vision.Rect, pred *vision.Prediction) {
	opLogger := logging.WithOperation(p.logger, "pipeline.record", requestID)

	hash := sha1.Sum(up.Data)
	hashHex := hex.EncodeToString(hash[:])
	now := time.Now().UTC()

	if p.repo != nil {
		log := &repository.DetectionLog{
			RequestID:  requestID,
			Filename:   scratch.SanitizeFilename(up.Filename),
			SHA1Hash:   hashHex,
			Emotion:    pred.Emotion,
			Confidence: pred.Confidence,
			FaceX:      region.X,
			FaceY:      region.Y,
			FaceWidth:  region.Width,
			FaceHeight: region.Height,
			CreatedAt:  now,
		}
		if err := p.repo.SaveDetection(ctx, log); err != nil {
			opLogger.Warn("failed to persist detection", zap.Error(err))
		}
	}

	if p.cache != nil {
		cached := cachedDetection{
			RequestID:  requestID,
			Filename:   scratch.SanitizeFilename(up.Filename),
			Emotion:    pred.Emotion,
			Confidence: pred.Confidence,
			Hash:       hashHex,
			CreatedAt:  now,
		}
		serialized, err := json.Marshal(cached)
		if err != nil {
			opLogger.Warn("failed to serialize detection", zap.Error(err))
			return
		}
		if err := p.withRedisRetry(ctx, requestID, "cache.set.detection", func() error {
			return p.cache.Set(ctx, detectionKey(requestID), string(serialized), 5*time.Minute)
		}); err != nil {
			opLogger.Warn("failed to cache detection", zap.Error(err))
		}
	}
}

// Result returns the recorded detection for a request id, cache first with a
// fallback to persistence.
func (p *Pipeline) Result(ctx context.Context, requestID string) (*repository.DetectionLog, error) {
	if p.cache != nil {
		cached, err := p.withRedisGet(ctx, requestID, "cache.get.detection", detectionKey(requestID))
		if err == nil {
			var payload cachedDetection
			if err := json.Unmarshal([]byte(cached), &payload); err != nil {
				logging.WithOperation(p.logger, "pipeline.result", requestID).Warn("failed to decode cached detection", zap.Error(err))
			} else {
				return &repository.DetectionLog{
					RequestID:  requestID,
					Filename:   payload.Filename,
					SHA1Hash:   payload.Hash,
					Emotion:    payload.Emotion,
					Confidence: payload.Confidence,
					CreatedAt:  payload.CreatedAt,
				}, nil
			}
		} else if !errors.Is(err, redis.Nil) {
			logging.WithOperation(p.logger, "pipeline.result", requestID).Warn("failed to read cache", zap.Error(err))
		}
	}

	if p.repo == nil {
		return nil, ErrResultNotFound
	}
	log, err := p.repo.FindByRequestID(ctx, requestID)
	if err != nil {
		return nil, ErrResultNotFound
	}
	return log, nil
}

// Duplicates reports the request ids of other detections of the same
// uploaded bytes, newest first. Best effort: a dead history store yields an
// empty list, never an error.
func (p *Pipeline) Duplicates(ctx context.Context, log *repository.DetectionLog) []string {
	ids := []string{}
	if p.repo == nil || log.SHA1Hash == "" {
		return ids
	}

	dups, err := p.repo.FindDuplicatesByHash(ctx, log.SHA1Hash, log.RequestID)
	if err != nil {
		logging.WithOperation(p.logger, "pipeline.duplicates", log.RequestID).Warn("failed to list duplicate detections", zap.Error(err))
		return ids
	}
	for _, d := range dups {
		ids = append(ids, d.RequestID)
	}
	return ids
}

func (p *Pipeline) withRedisRetry(ctx context.Context, requestID, operation string, fn func() error) error {
	if p.retryAttempts <= 1 {
		return logging.NewOperationError(operation, requestID, fn())
	}

	backoff := p.initialBackoff
	opLogger := logging.WithOperation(p.logger, operation, requestID)
	var err error
	for attempt := 0; attempt < p.retryAttempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return logging.NewOperationError(operation, requestID, ctx.Err())
			case <-time.After(backoff):
			}
			if next := backoff * 2; next <= p.maxBackoff {
				backoff = next
			}
		}

		err = fn()
		if err == nil {
			if attempt > 0 {
				opLogger.Info("redis operation succeeded after retry", zap.Int("attempt", attempt+1))
			}
			return nil
		}

		if errors.Is(err, redis.Nil) {
			// A cache miss is a normal outcome, not a failure.
			return logging.NewOperationError(operation, requestID, err)
		}

		if !isTransientError(err) || attempt == p.retryAttempts-1 {
			opLogger.Error("redis operation failed", zap.Error(err), zap.Int("attempt", attempt+1))
			return logging.NewOperationError(operation, requestID, err)
		}

		opLogger.Warn("transient redis error", zap.Error(err), zap.Int("attempt", attempt+1))
	}
	return logging.NewOperationError(operation, requestID, err)
}

func (p *Pipeline) withRedisGet(ctx context.Context, requestID, operation, cacheKey string) (string, error) {
	var result string
	err := p.withRedisRetry(ctx, requestID, operation, func() error {
		value, err := p.cache.Get(ctx, cacheKey)
		if err != nil {
			return err
		}
		result = value
		return nil
	})
	if err != nil {
		return "", err
	}
	return result, nil
}

func isTransientError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	var temporary interface{ Temporary() bool }
	if errors.As(err, &temporary) && temporary.Temporary() {
		return true
	}

	return false
}

func outcomeFor(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrMissingImage):
		return "missing_image"
	case errors.Is(err, ErrNoFilename):
		return "no_filename"
	case errors.Is(err, ErrUnreadableImage):
		return "unreadable"
	case errors.Is(err, ErrNoFaceDetected):
		return "no_face"
	case errors.Is(err, ErrUnclassifiablePatch):
		return "unclassifiable"
	default:
		return "error"
	}
}
