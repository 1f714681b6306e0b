package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apierrors "turboscribe/internal/api/errors"
	"turboscribe/internal/api/middleware"
	"turboscribe/internal/api/v1/dto"
	"turboscribe/internal/api/v1/routes"
	"turboscribe/internal/app/auth"
	"turboscribe/internal/app/media"
	"turboscribe/internal/app/testutil"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestRouter(ms *testutil.MockServices, verifier auth.SessionVerifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler(discardLogger()))

	api := router.Group("/api")
	routes.RegisterRoutes(api, &routes.ServiceContainer{
		TranscriptionService: ms.TranscriptionService,
		StatsService:         ms.StatsService,
		ExportService:        ms.ExportService,
		SessionVerifier:      verifier,
		Logger:               discardLogger(),
	})
	return router
}

func authedVerifier(userID string) *testutil.MockSessionVerifier {
	verifier := &testutil.MockSessionVerifier{}
	verifier.On("Verify", mock.Anything, "valid-token").
		Return(&auth.Session{UserID: userID}, nil)
	return verifier
}

func uploadRequest(t *testing.T, fileName string, data []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer valid-token")
	return req
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestTranscribeSuccess(t *testing.T) {
	ms := testutil.NewMockServices(t)
	ms.TranscriptionService.On("Transcribe", mock.Anything, "user-1",
		mock.MatchedBy(func(f *dto.UploadedFile) bool {
			return f.Name == "episode.mp3" &&
				f.ContentType == "audio/mpeg" &&
				string(f.Data) == "audio-bytes" &&
				f.Size == int64(len("audio-bytes"))
		})).
		Return(&dto.TranscribeResponse{Success: true, Transcription: "hello world", ID: "rec-1"}, nil)

	router := newTestRouter(ms, authedVerifier("user-1"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "episode.mp3", []byte("audio-bytes")))

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.TranscribeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "hello world", resp.Transcription)
	assert.NotEmpty(t, resp.ID)
}

func TestTranscribeNoSession(t *testing.T) {
	ms := testutil.NewMockServices(t)
	verifier := &testutil.MockSessionVerifier{}
	verifier.On("Verify", mock.Anything, "").Return(nil, auth.ErrNoSession)

	router := newTestRouter(ms, verifier)
	req := uploadRequest(t, "episode.mp3", []byte("audio-bytes"))
	req.Header.Del("Authorization")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Unauthorized request", decodeError(t, w)["error"])
	ms.TranscriptionService.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything, mock.Anything)
}

func TestTranscribeSessionStoreDown(t *testing.T) {
	ms := testutil.NewMockServices(t)
	verifier := &testutil.MockSessionVerifier{}
	verifier.On("Verify", mock.Anything, "valid-token").
		Return(nil, errors.New("dial tcp: connection refused"))

	router := newTestRouter(ms, verifier)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "episode.mp3", []byte("audio-bytes")))

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "Session service unavailable", decodeError(t, w)["error"])
}

func TestTranscribeSessionCookie(t *testing.T) {
	ms := testutil.NewMockServices(t)
	ms.TranscriptionService.On("Transcribe", mock.Anything, "user-1", mock.Anything).
		Return(&dto.TranscribeResponse{Success: true, Transcription: "hi", ID: "rec-1"}, nil)

	router := newTestRouter(ms, authedVerifier("user-1"))
	req := uploadRequest(t, "episode.mp3", []byte("audio-bytes"))
	req.Header.Del("Authorization")
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: "valid-token"})
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTranscribeQuotaExceeded(t *testing.T) {
	ms := testutil.NewMockServices(t)
	ms.TranscriptionService.On("Transcribe", mock.Anything, "user-1", mock.Anything).
		Return(nil, apierrors.NewQuotaExceededError("Daily transcription limit reached. Please upgrade your plan for unlimited transcriptions."))

	router := newTestRouter(ms, authedVerifier("user-1"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "episode.mp3", []byte("audio-bytes")))

	assert.Equal(t, http.StatusForbidden, w.Code)
	body := decodeError(t, w)
	assert.Equal(t, "Daily transcription limit reached. Please upgrade your plan for unlimited transcriptions.", body["error"])
	assert.Equal(t, "quota_exceeded", body["kind"])
}

func TestTranscribeProviderFailure(t *testing.T) {
	ms := testutil.NewMockServices(t)
	ms.TranscriptionService.On("Transcribe", mock.Anything, "user-1", mock.Anything).
		Return(nil, apierrors.NewTranscriptionFailedError("Failed to process transcription"))

	router := newTestRouter(ms, authedVerifier("user-1"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "episode.mp3", []byte("audio-bytes")))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Failed to process transcription", decodeError(t, w)["error"])
}

func TestTranscribeNoFile(t *testing.T) {
	ms := testutil.NewMockServices(t)

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	require.NoError(t, w.WriteField("note", "no file here"))
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer valid-token")

	router := newTestRouter(ms, authedVerifier("user-1"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No file provided", decodeError(t, rec)["error"])
	ms.TranscriptionService.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything, mock.Anything)
}

func TestTranscribeUnsupportedType(t *testing.T) {
	ms := testutil.NewMockServices(t)

	router := newTestRouter(ms, authedVerifier("user-1"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "notes.txt", []byte("plain text")))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Unsupported file type. Please upload an audio or video file.", decodeError(t, w)["error"])
	ms.TranscriptionService.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything, mock.Anything)
}

func TestTranscribeOversizedFile(t *testing.T) {
	ms := testutil.NewMockServices(t)

	router := newTestRouter(ms, authedVerifier("user-1"))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, uploadRequest(t, "big.mp3", make([]byte, media.MaxUploadSize+1)))

	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "File size exceeds the limit (25MB)", decodeError(t, w)["error"])
	ms.TranscriptionService.AssertNotCalled(t, "Transcribe", mock.Anything, mock.Anything, mock.Anything)
}

func TestListTranscriptions(t *testing.T) {
	newer := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	older := newer.Add(-time.Hour)
	ms := testutil.NewMockServices(t)
	ms.TranscriptionService.On("List", mock.Anything, "user-1").
		Return(&dto.ListTranscriptionsResponse{Data: []dto.TranscriptionItem{
			{ID: "rec-2", Title: "b.mp3", CreatedAt: newer},
			{ID: "rec-1", Title: "a.mp3", CreatedAt: older},
		}}, nil)

	router := newTestRouter(ms, authedVerifier("user-1"))
	req := httptest.NewRequest(http.MethodGet, "/api/transcriptions", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.ListTranscriptionsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, "rec-2", resp.Data[0].ID)
	assert.True(t, resp.Data[0].CreatedAt.After(resp.Data[1].CreatedAt))
}

func TestGetDashboardStats(t *testing.T) {
	ms := testutil.NewMockServices(t)
	ms.StatsService.On("GetDashboardStats", mock.Anything, "user-1").
		Return(&dto.DashboardStats{TotalTranscriptions: 3, TotalBytes: 4096, SubscriptionTier: "free"}, nil)

	router := newTestRouter(ms, authedVerifier("user-1"))
	req := httptest.NewRequest(http.MethodGet, "/api/stats", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.DashboardStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.TotalTranscriptions)
	assert.Equal(t, "free", resp.SubscriptionTier)
}

func TestExport(t *testing.T) {
	ms := testutil.NewMockServices(t)
	ms.ExportService.On("ExportTranscriptions", mock.Anything, "user-1", mock.Anything).
		Run(func(args mock.Arguments) {
			_, err := args.Get(2).(io.Writer).Write([]byte("xlsx-bytes"))
			require.NoError(t, err)
		}).Return(nil)

	router := newTestRouter(ms, authedVerifier("user-1"))
	req := httptest.NewRequest(http.MethodGet, "/api/export", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"),
		fmt.Sprintf("transcriptions-%s.xlsx", time.Now().UTC().Format("2006-01-02")))
	assert.Equal(t, "xlsx-bytes", w.Body.String())
}
