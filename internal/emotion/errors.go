package emotion

import "errors"

// Client-input failures of the inference pipeline. The messages are the
// exact strings the HTTP surface returns.
var (
	// ErrMissingImage: no image payload was attached to the request.
	ErrMissingImage = errors.New("No image provided")
	// ErrNoFilename: the upload carried no usable filename.
	ErrNoFilename = errors.New("No selected file")
	// ErrUnreadableImage: the bytes did not decode as a raster image.
	ErrUnreadableImage = errors.New("Could not read image")
	// ErrNoFaceDetected: the locator reported zero regions.
	ErrNoFaceDetected = errors.New("No face detected")
	// ErrUnclassifiablePatch: the cropped patch summed to zero intensity.
	ErrUnclassifiablePatch = errors.New("Could not process face")
)

// ErrResultNotFound: no detection is recorded under the request id.
var ErrResultNotFound = errors.New("result not found")
