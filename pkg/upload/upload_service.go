package upload

import (
	"Fridgemate-Backend/domain"
	"Fridgemate-Backend/internal/utils/storage"
	"context"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

type (
	UploadService interface {
		UploadItemImage(ctx context.Context, req domain.UploadImageRequest) (domain.UploadImageResponse, error)
	}

	uploadService struct {
		s3 storage.AwsS3
	}
)

func NewUploadService(s3 storage.AwsS3) UploadService {
	return &uploadService{s3: s3}
}

// UploadItemImage stores a photo taken by the fridge camera. The firmware
// sends the JPEG as a base64-wrapped hex string; the stored object key is a
// generated uuid, which is what the hardware later reports as the item's
// image reference.
func (s *uploadService) UploadItemImage(_ context.Context, req domain.UploadImageRequest) (domain.UploadImageResponse, error) {
	decoded, err := base64.StdEncoding.DecodeString(req.Content)
	if err != nil {
		return domain.UploadImageResponse{}, domain.ErrInvalidImagePayload
	}

	binary, err := hex.DecodeString(strings.TrimSpace(string(decoded)))
	if err != nil {
		return domain.UploadImageResponse{}, domain.ErrInvalidImagePayload
	}

	imageUUID := uuid.New().String()
	if _, err := s.s3.UploadBytes(fmt.Sprintf("%s.jpg", imageUUID), binary, "image/jpeg"); err != nil {
		return domain.UploadImageResponse{}, err
	}

	return domain.UploadImageResponse{FileName: imageUUID}, nil
}
