//go:build wireinject
// +build wireinject

package app

import (
	"log"
	"log/slog"
	"os"

	"github.com/google/wire"

	"turboscribe/internal/app/api"
	"turboscribe/internal/app/api/openai"
	"turboscribe/internal/app/api/openai/whisper"
	"turboscribe/internal/app/converter"
	"turboscribe/internal/app/repository"
	"turboscribe/internal/app/repository/sqlite"
)

// provideRemoteTranscriber uses the hosted transcription service, requires
// OPENAI_API_KEY to be set.
func provideRemoteTranscriber() api.Transcriber {
	return whisper.NewRemoteTranscriber(openai.GetClient())
}

func provideTranscriptionDAO() repository.TranscriptionDAO {
	dbPath := os.Getenv("TURBOSCRIBE_DB")
	if dbPath == "" {
		dbPath = "data/turboscribe.db"
	}

	dao, err := sqlite.NewSQLiteDB(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database %s: %v\n", dbPath, err)
	}
	return dao
}

func provideLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, nil))
}

func InitializeConverter() *converter.Converter {
	wire.Build(converter.NewConverter, provideRemoteTranscriber, provideTranscriptionDAO, provideLogger)
	return &converter.Converter{}
}
