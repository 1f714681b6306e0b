package media

import (
	"path/filepath"
	"strings"
)

// MaxUploadSize is the hard per-file limit, matching the transcription
// provider's own cap.
const MaxUploadSize int64 = 25 * 1024 * 1024

var contentTypes = map[string]string{
	".mp3":  "audio/mpeg",
	".wav":  "audio/wav",
	".ogg":  "audio/ogg",
	".flac": "audio/flac",
	".mp4":  "video/mp4",
	".mov":  "video/quicktime",
}

var acceptedTypes = map[string]bool{
	"audio/mpeg":      true,
	"audio/mp4":       true,
	"audio/wav":       true,
	"audio/ogg":       true,
	"audio/flac":      true,
	"video/mp4":       true,
	"video/quicktime": true,
	"video/mpeg":      true,
	"video/webm":      true,
	"video/ogg":       true,
}

// ContentType resolves a file name to its MIME type by extension. Unknown
// extensions map to application/octet-stream.
func ContentType(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}

// IsAccepted reports whether contentType is on the upload accept list.
func IsAccepted(contentType string) bool {
	return acceptedTypes[contentType]
}

// IsSupportedFile reports whether the file name carries a known media
// extension.
func IsSupportedFile(fileName string) bool {
	ext := strings.ToLower(filepath.Ext(fileName))
	_, ok := contentTypes[ext]
	return ok
}
