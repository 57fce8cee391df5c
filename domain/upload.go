package domain

import "errors"

var (
	MessageSuccessUploadImage = "image uploaded successfully"
	MessageFailedUploadImage  = "failed to upload image"

	ErrInvalidImagePayload = errors.New("invalid image payload")
)

type (
	// Content is the base64-wrapped hex dump of the JPEG the camera unit
	// captured; the firmware sends it that way.
	UploadImageRequest struct {
		Content string `json:"content" validate:"required"`
	}

	UploadImageResponse struct {
		FileName string `json:"file_name"`
	}
)
