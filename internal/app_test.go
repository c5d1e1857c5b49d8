package internal

import (
	"context"
	"log/slog"
	"mytwitter/search"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestNewApp(t *testing.T) {
	ctx := context.Background()
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	t.Run("should seed and wire every sink", func(t *testing.T) {
		req := require.New(t)
		app, err := NewApp(ctx, Config{
			SeedDefaultProfiles: true,
			CensoredWords:       "darn",
			CensorCharacter:     "*",
			InactiveMarker:      " [off]",
		}, log)
		req.NoError(err)
		t.Cleanup(app.Close)

		tweet, err := app.Service.PostTweet(ctx, "Clara", "darn that bug", app.IDs)
		req.NoError(err)
		req.Equal("**** that bug", tweet.Text)
		req.NoError(app.Service.DeactivateProfile(ctx, "Jade"))

		entries, err := app.Journal.Recent(0)
		req.NoError(err)
		req.Len(entries, 17)
		req.Equal("profile_deactivated", entries[0].Kind)

		hits, err := app.Index.Search(ctx, search.NewQuery("bug --author clara", 5))
		req.NoError(err)
		req.Len(hits, 1)
		req.Equal(tweet.ID, hits[0].TweetID)

		req.Contains(app.Service.RegisteredUsernames(), "Jade [off]")
	})

	t.Run("should start empty without seeding", func(t *testing.T) {
		req := require.New(t)
		app, err := NewApp(ctx, Config{CensorCharacter: "*"}, log)
		req.NoError(err)
		t.Cleanup(app.Close)

		req.Empty(app.Service.RegisteredUsernames())
	})

	t.Run("should reject an invalid censor character", func(t *testing.T) {
		req := require.New(t)

		_, err := NewApp(ctx, Config{CensorCharacter: ""}, log)

		req.Error(err)
	})
}
