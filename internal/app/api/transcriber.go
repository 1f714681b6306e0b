package api

import (
	"context"
	"io"
)

// Transcriber converts media to text through an external speech-to-text
// provider.
type Transcriber interface {
	// Transcribe reads media from r under its original file name and returns
	// the transcribed text verbatim. No partial results, no streaming.
	Transcribe(ctx context.Context, r io.Reader, fileName string) (string, error)
}
