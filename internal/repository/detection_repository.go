package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// DetectionLog records one successful emotion detection.
type DetectionLog struct {
	ID         uint      `gorm:"primaryKey"`
	RequestID  string    `gorm:"column:request_id;uniqueIndex;size:64"`
	Filename   string    `gorm:"column:filename;size:255"`
	SHA1Hash   string    `gorm:"column:sha1_hash;index;size:40"`
	Emotion    string    `gorm:"column:emotion;size:16"`
	Confidence float32   `gorm:"column:confidence"`
	FaceX      int       `gorm:"column:face_x"`
	FaceY      int       `gorm:"column:face_y"`
	FaceWidth  int       `gorm:"column:face_width"`
	FaceHeight int       `gorm:"column:face_height"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

// TableName overrides the default table name.
func (DetectionLog) TableName() string {
	return "detection_logs"
}

// DetectionRepository provides persistence APIs for detection history.
type DetectionRepository struct {
	db *gorm.DB
}

// NewDetectionRepository creates a new repository instance.
func NewDetectionRepository(db *gorm.DB) *DetectionRepository {
	return &DetectionRepository{db: db}
}

// AutoMigrate ensures the schema is available.
func (r *DetectionRepository) AutoMigrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&DetectionLog{})
}

// SaveDetection persists one detection record.
func (r *DetectionRepository) SaveDetection(ctx context.Context, log *DetectionLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// FindByRequestID retrieves the detection recorded for a request id.
func (r *DetectionRepository) FindByRequestID(ctx context.Context, requestID string) (*DetectionLog, error) {
	var log DetectionLog
	if err := r.db.WithContext(ctx).First(&log, "request_id = ?", requestID).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

// FindDuplicatesByHash lists other detections of the same uploaded bytes.
func (r *DetectionRepository) FindDuplicatesByHash(ctx context.Context, hash, excludeRequestID string) ([]*DetectionLog, error) {
	var logs []*DetectionLog
	err := r.db.WithContext(ctx).
		Where("sha1_hash = ? AND request_id <> ?", hash, excludeRequestID).
		Order("created_at DESC").
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
