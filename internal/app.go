package internal

import (
	"context"
	"fmt"
	"log/slog"
	"mytwitter/domain"
	"mytwitter/moderation"
	"mytwitter/repositories"
	"mytwitter/search"
	"mytwitter/services"
	"mytwitter/sink"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
)

// App holds every component of a running network. The journal and the index
// are in memory only and vanish with Close.
type App struct {
	Service *services.TwitterService
	Index   *search.TweetIndex
	Journal repositories.ActivityJournal
	IDs     *domain.Sequence

	db     *badger.DB
	writer *bluge.Writer
	log    *slog.Logger
}

func NewApp(ctx context.Context, config Config, log *slog.Logger) (*App, error) {
	replacement, err := CharacterRune(config.CensorCharacter)
	if err != nil {
		return nil, err
	}
	moderator, err := moderation.NewModerator(config.Words(), replacement, log)
	if err != nil {
		return nil, fmt.Errorf("moderator init failed: %w", err)
	}

	db, err := badger.Open(badger.DefaultOptions("").
		WithInMemory(true).
		WithLoggingLevel(badger.ERROR))
	if err != nil {
		return nil, fmt.Errorf("database opening failed: %w", err)
	}
	writer, err := search.OpenInMemory()
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("index opening failed: %w", err)
	}

	journal := repositories.NewActivityJournal(db, log)
	index := search.NewTweetIndex(writer, log)
	service := services.NewTwitterService(repositories.NewUserDirectory(), log,
		services.WithSinks(
			sink.NewJournalSink(journal, log),
			sink.NewSearchSink(index),
			sink.NewLogSink(log),
		),
		services.WithModerator(moderator),
		services.WithInactiveMarker(config.InactiveMarker),
	)

	app := &App{
		Service: service,
		Index:   index,
		Journal: journal,
		IDs:     domain.NewSequence(),
		db:      db,
		writer:  writer,
		log:     log,
	}
	if config.SeedDefaultProfiles {
		if err = Seed(ctx, service); err != nil {
			app.Close()
			return nil, err
		}
	}
	return app, nil
}

func (a *App) Close() {
	if err := a.writer.Close(); err != nil {
		a.log.Warn("Closing index failed", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.log.Warn("Closing BadgerDB failed", "error", err)
	}
}
