// Package grpcclient implements the vision adapter contracts against the
// remote model server.
package grpcclient

import (
	"context"
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/example/emotion-api/internal/logging"
	"github.com/example/emotion-api/internal/vision"
	pb "github.com/example/emotion-api/proto"
)

// DialVision connects to the vision model server and returns an adapter that
// satisfies both vision.FaceLocator and vision.Classifier.
func DialVision(ctx context.Context, addr string, logger *zap.Logger) (*VisionClient, *grpc.ClientConn, error) {
	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(
		dialCtx,
		addr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithBlock(),
	)
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.dial_vision", "", err)
		logger.Error("failed to dial vision service", zap.Error(wrapped), zap.String("addr", addr))
		return nil, nil, wrapped
	}
	return &VisionClient{client: pb.NewVisionClient(conn), logger: logger}, conn, nil
}

// VisionClient is the gRPC-backed implementation of the vision contracts.
type VisionClient struct {
	client pb.VisionClient
	logger *zap.Logger
}

var (
	_ vision.FaceLocator = (*VisionClient)(nil)
	_ vision.Classifier  = (*VisionClient)(nil)
)

// Locate sends the grayscale frame to the model server and returns the
// reported face regions in the server's order.
func (v *VisionClient) Locate(ctx context.Context, frame *image.Gray) ([]vision.Rect, error) {
	bounds := frame.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	pixels := make([]byte, 0, w*h)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		off := frame.PixOffset(bounds.Min.X, y)
		pixels = append(pixels, frame.Pix[off:off+w]...)
	}

	resp, err := v.client.LocateFaces(ctx, &pb.LocateFacesRequest{
		Width:  int32(w),
		Height: int32(h),
		Pixels: pixels,
	})
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.locate_faces", "", err)
		v.logger.Error("locate faces call failed", zap.Error(wrapped))
		return nil, wrapped
	}

	faces := make([]vision.Rect, 0, len(resp.GetFaces()))
	for _, f := range resp.GetFaces() {
		faces = append(faces, vision.Rect{
			X:      int(f.GetX()),
			Y:      int(f.GetY()),
			Width:  int(f.GetWidth()),
			Height: int(f.GetHeight()),
		})
	}
	return faces, nil
}

// Classify scores a normalized patch against the emotion label set.
func (v *VisionClient) Classify(ctx context.Context, patch []float32) ([]float32, error) {
	resp, err := v.client.Classify(ctx, &pb.ClassifyRequest{
		Values: patch,
		Width:  vision.PatchSize,
		Height: vision.PatchSize,
	})
	if err != nil {
		wrapped := logging.NewOperationError("grpcclient.classify", "", err)
		v.logger.Error("classify call failed", zap.Error(wrapped))
		return nil, wrapped
	}

	scores := resp.GetScores()
	if len(scores) != len(vision.Labels) {
		err := fmt.Errorf("classifier returned %d scores, want %d", len(scores), len(vision.Labels))
		return nil, logging.NewOperationError("grpcclient.classify", "", err)
	}
	return scores, nil
}
