package emotion

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/example/emotion-api/internal/repository"
	"github.com/example/emotion-api/internal/scratch"
	"github.com/example/emotion-api/internal/vision"
)

type stubLocator struct {
	faces []vision.Rect
	err   error
	calls int
}

func (s *stubLocator) Locate(ctx context.Context, frame *image.Gray) ([]vision.Rect, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.faces, nil
}

type stubClassifier struct {
	scores []float32
	err    error
	calls  int
}

func (s *stubClassifier) Classify(ctx context.Context, patch []float32) ([]float32, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.scores, nil
}

type stubRecorder struct {
	savedLogs  []*repository.DetectionLog
	saveErr    error
	findLog    *repository.DetectionLog
	findErr    error
	findCalls  int
	dupLogs    []*repository.DetectionLog
	dupErr     error
	dupCalls   int
	dupHash    string
	dupExclude string
}

func (s *stubRecorder) SaveDetection(ctx context.Context, log *repository.DetectionLog) error {
	s.savedLogs = append(s.savedLogs, log)
	return s.saveErr
}

func (s *stubRecorder) FindByRequestID(ctx context.Context, requestID string) (*repository.DetectionLog, error) {
	s.findCalls++
	if s.findErr != nil {
		return nil, s.findErr
	}
	if s.findLog != nil {
		return s.findLog, nil
	}
	return nil, errors.New("not found")
}

func (s *stubRecorder) FindDuplicatesByHash(ctx context.Context, hash, excludeRequestID string) ([]*repository.DetectionLog, error) {
	s.dupCalls++
	s.dupHash = hash
	s.dupExclude = excludeRequestID
	if s.dupErr != nil {
		return nil, s.dupErr
	}
	return s.dupLogs, nil
}

type stubCache struct {
	setErrs   []error
	getErrs   []error
	getValues []string
	setKeys   []string
	getKeys   []string
}

func (s *stubCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	s.setKeys = append(s.setKeys, key)
	if len(s.setErrs) == 0 {
		return nil
	}
	err := s.setErrs[0]
	s.setErrs = s.setErrs[1:]
	return err
}

func (s *stubCache) Get(ctx context.Context, key string) (string, error) {
	s.getKeys = append(s.getKeys, key)
	var value string
	if len(s.getValues) > 0 {
		value = s.getValues[0]
		s.getValues = s.getValues[1:]
	}
	var err error
	if len(s.getErrs) > 0 {
		err = s.getErrs[0]
		s.getErrs = s.getErrs[1:]
	}
	return value, err
}

// facePNG encodes a gradient frame so the cropped patch has non-zero
// intensity.
func facePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 120, 120))
	for y := 0; y < 120; y++ {
		for x := 0; x < 120; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 2), G: uint8(y * 2), B: 90, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func blackPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewGray(image.Rect(0, 0, 120, 120))); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return buf.Bytes()
}

func newTestPipeline(t *testing.T, locator *stubLocator, classifier *stubClassifier, repo Recorder, cache Cache) (*Pipeline, *scratch.Dir) {
	t.Helper()
	dir, err := scratch.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create scratch dir: %v", err)
	}
	p := NewPipeline(locator, classifier, dir, repo, cache, zap.NewNop())
	p.initialBackoff = time.Millisecond
	p.maxBackoff = 2 * time.Millisecond
	return p, dir
}

func assertScratchEmpty(t *testing.T, dir *scratch.Dir) {
	t.Helper()
	entries, err := os.ReadDir(dir.Path())
	if err != nil {
		t.Fatalf("failed to list scratch dir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected scratch dir to be empty, found %d entries", len(entries))
	}
}

func TestDetectMissingImage(t *testing.T) {
	locator := &stubLocator{}
	p, _ := newTestPipeline(t, locator, &stubClassifier{}, nil, nil)

	_, _, err := p.Detect(context.Background(), Upload{})
	if !errors.Is(err, ErrMissingImage) {
		t.Fatalf("expected ErrMissingImage, got %v", err)
	}
	if locator.calls != 0 {
		t.Fatalf("expected no locator call, got %d", locator.calls)
	}
}

func TestDetectUnusableFilename(t *testing.T) {
	p, _ := newTestPipeline(t, &stubLocator{}, &stubClassifier{}, nil, nil)

	_, _, err := p.Detect(context.Background(), Upload{Filename: "..", Data: facePNG(t)})
	if !errors.Is(err, ErrNoFilename) {
		t.Fatalf("expected ErrNoFilename, got %v", err)
	}
}

func TestDetectUnreadableBytes(t *testing.T) {
	locator := &stubLocator{}
	p, dir := newTestPipeline(t, locator, &stubClassifier{}, nil, nil)

	_, _, err := p.Detect(context.Background(), Upload{Filename: "face.png", Data: []byte("truncated")})
	if !errors.Is(err, ErrUnreadableImage) {
		t.Fatalf("expected ErrUnreadableImage, got %v", err)
	}
	if locator.calls != 0 {
		t.Fatalf("expected no locator call, got %d", locator.calls)
	}
	assertScratchEmpty(t, dir)
}

func TestDetectEmptyUploadIsUnreadable(t *testing.T) {
	p, _ := newTestPipeline(t, &stubLocator{}, &stubClassifier{}, nil, nil)

	_, _, err := p.Detect(context.Background(), Upload{Filename: "face.png", Data: []byte{}})
	if !errors.Is(err, ErrUnreadableImage) {
		t.Fatalf("expected ErrUnreadableImage, got %v", err)
	}
}

func TestDetectNoFaceSkipsClassifier(t *testing.T) {
	classifier := &stubClassifier{scores: []float32{1, 0, 0, 0, 0, 0, 0}}
	p, dir := newTestPipeline(t, &stubLocator{}, classifier, nil, nil)

	_, _, err := p.Detect(context.Background(), Upload{Filename: "face.png", Data: facePNG(t)})
	if !errors.Is(err, ErrNoFaceDetected) {
		t.Fatalf("expected ErrNoFaceDetected, got %v", err)
	}
	if classifier.calls != 0 {
		t.Fatalf("expected no classifier call, got %d", classifier.calls)
	}
	assertScratchEmpty(t, dir)
}

func TestDetectZeroPatchUnclassifiable(t *testing.T) {
	classifier := &stubClassifier{scores: []float32{1, 0, 0, 0, 0, 0, 0}}
	locator := &stubLocator{faces: []vision.Rect{{X: 10, Y: 10, Width: 60, Height: 60}}}
	p, dir := newTestPipeline(t, locator, classifier, nil, nil)

	_, _, err := p.Detect(context.Background(), Upload{Filename: "face.png", Data: blackPNG(t)})
	if !errors.Is(err, ErrUnclassifiablePatch) {
		t.Fatalf("expected ErrUnclassifiablePatch, got %v", err)
	}
	if classifier.calls != 0 {
		t.Fatalf("expected no classifier call, got %d", classifier.calls)
	}
	assertScratchEmpty(t, dir)
}

func TestDetectSuccessSelectsArgmax(t *testing.T) {
	locator := &stubLocator{faces: []vision.Rect{
		{X: 10, Y: 10, Width: 60, Height: 60},
		{X: 70, Y: 70, Width: 30, Height: 30},
	}}
	classifier := &stubClassifier{scores: []float32{0.05, 0.05, 0.1, 0.6, 0.1, 0.05, 0.05}}
	repo := &stubRecorder{}
	cache := &stubCache{}
	p, dir := newTestPipeline(t, locator, classifier, repo, cache)

	requestID, pred, err := p.Detect(context.Background(), Upload{Filename: "face.png", Data: facePNG(t)})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if requestID == "" {
		t.Fatal("expected a request id")
	}
	if pred.Emotion != "Happy" {
		t.Fatalf("expected Happy, got %s", pred.Emotion)
	}
	if pred.Confidence != 0.6 {
		t.Fatalf("expected confidence 0.6, got %f", pred.Confidence)
	}

	if len(repo.savedLogs) != 1 {
		t.Fatalf("expected one recorded detection, got %d", len(repo.savedLogs))
	}
	log := repo.savedLogs[0]
	if log.RequestID != requestID || log.Emotion != "Happy" {
		t.Fatalf("unexpected recorded detection: %+v", log)
	}
	// First reported region wins.
	if log.FaceX != 10 || log.FaceWidth != 60 {
		t.Fatalf("expected first region to be recorded, got %+v", log)
	}
	if len(cache.setKeys) == 0 {
		t.Fatal("expected detection to be cached")
	}
	assertScratchEmpty(t, dir)
}

func TestDetectIsDeterministic(t *testing.T) {
	locator := &stubLocator{faces: []vision.Rect{{X: 10, Y: 10, Width: 60, Height: 60}}}
	classifier := &stubClassifier{scores: []float32{0.2, 0.2, 0.1, 0.1, 0.2, 0.1, 0.1}}
	p, _ := newTestPipeline(t, locator, classifier, nil, nil)

	upload := Upload{Filename: "face.png", Data: facePNG(t)}

	_, first, err := p.Detect(context.Background(), upload)
	if err != nil {
		t.Fatalf("first detect failed: %v", err)
	}
	_, second, err := p.Detect(context.Background(), upload)
	if err != nil {
		t.Fatalf("second detect failed: %v", err)
	}

	if first.Emotion != second.Emotion || first.Confidence != second.Confidence {
		t.Fatalf("expected identical predictions, got %+v and %+v", first, second)
	}
	// Tied maximum resolves to the lowest index.
	if first.Emotion != "Angry" {
		t.Fatalf("expected tie to resolve to Angry, got %s", first.Emotion)
	}
}

func TestDetectClassifierContractViolation(t *testing.T) {
	locator := &stubLocator{faces: []vision.Rect{{X: 10, Y: 10, Width: 60, Height: 60}}}
	classifier := &stubClassifier{scores: []float32{0.5, 0.5}}
	p, dir := newTestPipeline(t, locator, classifier, nil, nil)

	_, _, err := p.Detect(context.Background(), Upload{Filename: "face.png", Data: facePNG(t)})
	if err == nil {
		t.Fatal("expected error for short score vector, got nil")
	}
	if errors.Is(err, ErrUnclassifiablePatch) || errors.Is(err, ErrNoFaceDetected) {
		t.Fatalf("expected an internal error, got %v", err)
	}
	assertScratchEmpty(t, dir)
}

func TestDetectSucceedsWhenHistoryFails(t *testing.T) {
	locator := &stubLocator{faces: []vision.Rect{{X: 10, Y: 10, Width: 60, Height: 60}}}
	classifier := &stubClassifier{scores: []float32{0, 0, 0, 0, 0, 0, 1}}
	repo := &stubRecorder{saveErr: errors.New("db down")}
	cache := &stubCache{setErrs: []error{errors.New("redis down")}}
	p, _ := newTestPipeline(t, locator, classifier, repo, cache)

	_, pred, err := p.Detect(context.Background(), Upload{Filename: "face.png", Data: facePNG(t)})
	if err != nil {
		t.Fatalf("expected detection to survive history failure, got %v", err)
	}
	if pred.Emotion != "Surprise" {
		t.Fatalf("expected Surprise, got %s", pred.Emotion)
	}
}

func TestDetectRetriesTransientCacheErrors(t *testing.T) {
	locator := &stubLocator{faces: []vision.Rect{{X: 10, Y: 10, Width: 60, Height: 60}}}
	classifier := &stubClassifier{scores: []float32{0, 1, 0, 0, 0, 0, 0}}
	cache := &stubCache{setErrs: []error{transientCacheError{}}}
	p, _ := newTestPipeline(t, locator, classifier, nil, cache)

	_, _, err := p.Detect(context.Background(), Upload{Filename: "face.png", Data: facePNG(t)})
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(cache.setKeys) != 2 {
		t.Fatalf("expected retry after transient error, got %d set calls", len(cache.setKeys))
	}
	if cache.setKeys[0] != cache.setKeys[1] {
		t.Fatalf("expected retry to target same key, got %s and %s", cache.setKeys[0], cache.setKeys[1])
	}
}

func TestResultFallsBackToRepositoryWhenCacheMisses(t *testing.T) {
	expected := &repository.DetectionLog{RequestID: "req", Emotion: "Neutral", Confidence: 0.9}
	repo := &stubRecorder{findLog: expected}
	cache := &stubCache{getErrs: []error{errors.New("boom")}}
	p, _ := newTestPipeline(t, &stubLocator{}, &stubClassifier{}, repo, cache)

	log, err := p.Result(context.Background(), "req")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if log != expected {
		t.Fatalf("expected %+v, got %+v", expected, log)
	}
	if repo.findCalls != 1 {
		t.Fatalf("expected repository to be queried once, got %d", repo.findCalls)
	}
}

func TestResultServedFromCache(t *testing.T) {
	repo := &stubRecorder{findErr: errors.New("should not be called")}
	cache := &stubCache{getValues: []string{`{"request_id":"req","emotion":"Happy","confidence":0.8}`}}
	p, _ := newTestPipeline(t, &stubLocator{}, &stubClassifier{}, repo, cache)

	log, err := p.Result(context.Background(), "req")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if log.Emotion != "Happy" || log.Confidence != 0.8 {
		t.Fatalf("unexpected cached detection: %+v", log)
	}
	if repo.findCalls != 0 {
		t.Fatalf("expected no repository call on cache hit, got %d", repo.findCalls)
	}
}

func TestResultCacheMissIsQuiet(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	expected := &repository.DetectionLog{RequestID: "req", Emotion: "Sad", Confidence: 0.7}
	repo := &stubRecorder{findLog: expected}
	cache := &stubCache{getErrs: []error{redis.Nil}}

	dir, err := scratch.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create scratch dir: %v", err)
	}
	p := NewPipeline(&stubLocator{}, &stubClassifier{}, dir, repo, cache, zap.New(core))

	log, err := p.Result(context.Background(), "req")
	if err != nil {
		t.Fatalf("expected repository fallback, got %v", err)
	}
	if log != expected {
		t.Fatalf("expected %+v, got %+v", expected, log)
	}
	if len(cache.getKeys) != 1 {
		t.Fatalf("expected a single cache lookup, got %d", len(cache.getKeys))
	}
	if logs.Len() != 0 {
		t.Fatalf("expected no error-level logs for a cache miss, got %d: %v", logs.Len(), logs.All())
	}
}

func TestDuplicatesListsOtherRequests(t *testing.T) {
	repo := &stubRecorder{dupLogs: []*repository.DetectionLog{{RequestID: "other"}}}
	p, _ := newTestPipeline(t, &stubLocator{}, &stubClassifier{}, repo, nil)

	ids := p.Duplicates(context.Background(), &repository.DetectionLog{RequestID: "req", SHA1Hash: "h"})
	if len(ids) != 1 || ids[0] != "other" {
		t.Fatalf("unexpected duplicates: %v", ids)
	}
	if repo.dupHash != "h" || repo.dupExclude != "req" {
		t.Fatalf("unexpected query: hash=%q exclude=%q", repo.dupHash, repo.dupExclude)
	}
}

func TestDuplicatesWithoutHashSkipsRepository(t *testing.T) {
	repo := &stubRecorder{}
	p, _ := newTestPipeline(t, &stubLocator{}, &stubClassifier{}, repo, nil)

	ids := p.Duplicates(context.Background(), &repository.DetectionLog{RequestID: "req"})
	if len(ids) != 0 {
		t.Fatalf("expected no duplicates, got %v", ids)
	}
	if repo.dupCalls != 0 {
		t.Fatalf("expected no repository call, got %d", repo.dupCalls)
	}
}

func TestDuplicatesSurvivesRepositoryFailure(t *testing.T) {
	repo := &stubRecorder{dupErr: errors.New("db down")}
	p, _ := newTestPipeline(t, &stubLocator{}, &stubClassifier{}, repo, nil)

	ids := p.Duplicates(context.Background(), &repository.DetectionLog{RequestID: "req", SHA1Hash: "h"})
	if len(ids) != 0 {
		t.Fatalf("expected empty list on repository failure, got %v", ids)
	}
}

type transientCacheError struct{}

func (transientCacheError) Error() string   { return "redis transient" }
func (transientCacheError) Timeout() bool   { return true }
func (transientCacheError) Temporary() bool { return true }
