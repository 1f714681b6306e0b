package whisper

import (
	"context"
	"fmt"
	"io"

	"github.com/sashabaranov/go-openai"
)

// language is the fixed spoken-language hint sent with every request.
const language = "en"

// RemoteTranscriber implements api.Transcriber using the OpenAI Whisper API.
type RemoteTranscriber struct {
	client *openai.Client
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client) *RemoteTranscriber {
	return &RemoteTranscriber{client: client}
}

// Transcribe uploads the media under its original file name and returns the
// text. Every provider error collapses into one generic failure; callers do
// not see provider error subtypes.
func (rt *RemoteTranscriber) Transcribe(ctx context.Context, r io.Reader, fileName string) (string, error) {
	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		Reader:   r,
		FilePath: fileName,
		Language: language,
	}
	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("createTranscription failed: %w", err)
	}

	return resp.Text, nil
}
