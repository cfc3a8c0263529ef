// Package vision defines the contracts for the two external model
// capabilities the pipeline depends on. Both are opaque: the locator's
// rectangle order is its own, and classifier scores are only comparable
// against each other.
package vision

import (
	"context"
	"image"
)

// Labels is the fixed emotion label set, in classifier output order.
// The classifier vector is indexed by this slice; never re-sort it.
var Labels = []string{"Angry", "Disgust", "Fear", "Happy", "Neutral", "Sad", "Surprise"}

// PatchSize is the side length of the square patch the classifier expects.
const PatchSize = 48

// Rect is an axis-aligned face bounding box in frame coordinates.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Prediction is the selected label and its score.
type Prediction struct {
	Emotion    string  `json:"emotion"`
	Confidence float32 `json:"confidence"`
}

// FaceLocator reports candidate face regions in a grayscale frame, in an
// implementation-defined order the caller treats as its selection order.
type FaceLocator interface {
	Locate(ctx context.Context, frame *image.Gray) ([]Rect, error)
}

// Classifier scores a normalized PatchSize×PatchSize single-channel patch
// (row-major, values in [0,1]) against the emotion label set.
type Classifier interface {
	Classify(ctx context.Context, patch []float32) ([]float32, error)
}

// Argmax returns the index of the maximum entry. Ties resolve to the lowest
// index. Returns -1 for an empty vector.
func Argmax(scores []float32) int {
	if len(scores) == 0 {
		return -1
	}
	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}
	return best
}
