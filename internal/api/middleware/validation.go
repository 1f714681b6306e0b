package middleware

import (
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apierrors "turboscribe/internal/api/errors"
	"turboscribe/internal/api/v1/dto"
	"turboscribe/internal/app/media"
)

type uploadForm struct {
	File *multipart.FileHeader `form:"file" binding:"required"`
}

// ValidateUpload binds and validates the multipart upload: exactly one
// `file` field, at most media.MaxUploadSize bytes, on the accept list. On
// success the file is fully read into memory.
func ValidateUpload(c *gin.Context) (*dto.UploadedFile, error) {
	var form uploadForm
	if err := c.ShouldBind(&form); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return nil, apierrors.NewBadRequestError("No file provided")
		}
		return nil, apierrors.NewBadRequestError("Invalid upload request")
	}

	header := form.File
	if header.Size > media.MaxUploadSize {
		return nil, apierrors.NewPayloadTooLargeError("File size exceeds the limit (25MB)")
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = media.ContentType(header.Filename)
	}
	if !media.IsAccepted(contentType) {
		return nil, apierrors.NewBadRequestError("Unsupported file type. Please upload an audio or video file.")
	}

	f, err := header.Open()
	if err != nil {
		return nil, apierrors.NewBadRequestError("Invalid upload request")
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, media.MaxUploadSize+1))
	if err != nil {
		return nil, apierrors.NewInternalError(fmt.Sprintf("Failed to read upload: %v", err))
	}
	if int64(len(data)) > media.MaxUploadSize {
		// header.Size can lie; the read is the authority
		return nil, apierrors.NewPayloadTooLargeError("File size exceeds the limit (25MB)")
	}

	return &dto.UploadedFile{
		Name:        filepath.Base(header.Filename),
		ContentType: contentType,
		Size:        int64(len(data)),
		Data:        data,
	}, nil
}
