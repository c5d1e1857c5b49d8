package services

import (
	"context"
	"log/slog"
	"mytwitter/domain"
	"mytwitter/errors"
	"mytwitter/moderation"
	"mytwitter/repositories"
	"strings"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

// clockAt returns a clock reading the given times in order, then the last one.
func clockAt(times ...time.Time) func() time.Time {
	i := 0
	return func() time.Time {
		at := times[min(i, len(times)-1)]
		i++
		return at
	}
}

func newService(t *testing.T, opts ...Option) *TwitterService {
	t.Helper()
	svc := NewTwitterService(repositories.NewUserDirectory(), logs.GetLoggerFromLevel(slog.LevelDebug), opts...)
	ctx := context.Background()
	require.NoError(t, svc.CreateProfile(ctx, domain.NewIndividual("usuario1", "123")))
	require.NoError(t, svc.CreateProfile(ctx, domain.NewOrganization("empresa1", "456")))
	return svc
}

func TestTwitterService_UserExists(t *testing.T) {
	req := require.New(t)
	svc := newService(t)

	req.True(svc.UserExists("usuario1"))
	req.True(svc.UserExists("USUARIO1"))
	req.False(svc.UserExists("inexistente"))
}

func TestTwitterService_CreateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("should trim the username in place", func(t *testing.T) {
		req := require.New(t)
		svc := newService(t)
		profile := domain.NewIndividual("   Clara  ", "684.641.648-73")

		req.NoError(svc.CreateProfile(ctx, profile))

		req.Equal("Clara", profile.Username())
		req.True(svc.UserExists("clara"))
	})

	t.Run("should reject a name differing only in case", func(t *testing.T) {
		req := require.New(t)
		svc := newService(t)
		req.NoError(svc.CreateProfile(ctx, domain.NewIndividual("Ana", "1")))

		err := svc.CreateProfile(ctx, domain.NewIndividual("ana", "2"))

		req.ErrorIs(err, errors.ErrProfileAlreadyExists)
	})

	t.Run("should reject names out of 1 to 15 characters", func(t *testing.T) {
		svc := newService(t)
		for _, name := range []string{"", "     ", strings.Repeat("a", 16), strings.Repeat("A", 16), "  " + strings.Repeat("b", 16) + " "} {
			err := svc.CreateProfile(ctx, domain.NewIndividual(name, "123"))
			require.ErrorIs(t, err, errors.ErrInvalidNameFormat, "name %q", name)
		}
	})

	t.Run("should accept 1 and 15 characters", func(t *testing.T) {
		req := require.New(t)
		svc := newService(t)

		req.NoError(svc.CreateProfile(ctx, domain.NewIndividual("x", "1")))
		req.NoError(svc.CreateProfile(ctx, domain.NewIndividual(" "+strings.Repeat("y", 15)+" ", "2")))
	})

	t.Run("should count runes, not bytes", func(t *testing.T) {
		req := require.New(t)
		svc := newService(t)

		req.NoError(svc.CreateProfile(ctx, domain.NewIndividual(strings.Repeat("é", 15), "1")))
	})
}

func TestTwitterService_DeactivateProfile(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc := newService(t)

	req.NoError(svc.DeactivateProfile(ctx, "usuario1"))
	req.False(svc.UserExists("usuario1"))

	kind, err := svc.ProfileKind("usuario1")
	req.NoError(err)
	req.Equal(domain.KindIndividual, kind)

	req.ErrorIs(svc.DeactivateProfile(ctx, "usuario1"), errors.ErrProfileAlreadyDeactivated)
	req.ErrorIs(svc.DeactivateProfile(ctx, "inexistente"), errors.ErrProfileNotFound)
}

func TestTwitterService_PostTweet(t *testing.T) {
	ctx := context.Background()

	t.Run("should post and list the tweet", func(t *testing.T) {
		req := require.New(t)
		svc := newService(t)
		ids := domain.NewSequence()

		tweet, err := svc.PostTweet(ctx, "usuario1", "  Primeiro tweet!  ", ids)

		req.NoError(err)
		req.Equal(int64(1), tweet.ID)
		req.Equal("Primeiro tweet!", tweet.Text)
		tweets, err := svc.Tweets("usuario1")
		req.NoError(err)
		req.Equal([]domain.Tweet{tweet}, tweets)
	})

	t.Run("should use the registered username as author", func(t *testing.T) {
		req := require.New(t)
		svc := newService(t)

		tweet, err := svc.PostTweet(ctx, "USUARIO1", "hello", domain.NewSequence())

		req.NoError(err)
		req.Equal("usuario1", tweet.Author)
	})

	t.Run("should reject blank or too long messages", func(t *testing.T) {
		svc := newService(t)
		ids := domain.NewSequence()
		for _, text := range []string{"", "     ", strings.Repeat("a", 141)} {
			_, err := svc.PostTweet(ctx, "usuario1", text, ids)
			require.ErrorIs(t, err, errors.ErrInvalidMessageFormat)
		}
		tweets, err := svc.Tweets("usuario1")
		require.NoError(t, err)
		require.Empty(t, tweets)
	})

	t.Run("should accept exactly 1 and 140 characters", func(t *testing.T) {
		req := require.New(t)
		svc := newService(t)
		ids := domain.NewSequence()

		_, err := svc.PostTweet(ctx, "usuario1", " a ", ids)
		req.NoError(err)
		_, err = svc.PostTweet(ctx, "usuario1", strings.Repeat("b", 140), ids)
		req.NoError(err)
	})

	t.Run("should fail for a missing profile before checking the text", func(t *testing.T) {
		req := require.New(t)
		svc := newService(t)

		_, err := svc.PostTweet(ctx, "inexistente", "", domain.NewSequence())

		req.ErrorIs(err, errors.ErrProfileNotFound)
	})

	t.Run("should draw ids from the given source across profiles", func(t *testing.T) {
		req := require.New(t)
		svc := newService(t)
		ids := domain.NewSequence()

		first, err := svc.PostTweet(ctx, "usuario1", "one", ids)
		req.NoError(err)
		second, err := svc.PostTweet(ctx, "empresa1", "two", ids)
		req.NoError(err)
		third, err := svc.PostTweet(ctx, "usuario1", "three", ids)
		req.NoError(err)

		req.Equal([]int64{1, 2, 3}, []int64{first.ID, second.ID, third.ID})
	})

	t.Run("should mask censored words", func(t *testing.T) {
		req := require.New(t)
		moderator, err := moderation.NewModerator([]string{"badger"}, '*', slog.Default())
		req.NoError(err)
		svc := newService(t, WithModerator(moderator))

		tweet, err := svc.PostTweet(ctx, "usuario1", "a badger here", domain.NewSequence())

		req.NoError(err)
		req.Equal("a ****** here", tweet.Text)
	})
}

func TestTwitterService_Timeline(t *testing.T) {
	ctx := context.Background()

	t.Run("should order own and followed tweets newest first", func(t *testing.T) {
		req := require.New(t)
		base := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
		svc := newService(t, WithClock(clockAt(
			base,                     // usuario1 created
			base,                     // empresa1 created
			base,                     // T1 by empresa1
			base.Add(5*time.Minute),  // T2 by empresa1
			base.Add(2*time.Minute),  // T3 by usuario1
			base.Add(10*time.Minute), // follow
		)))
		ids := domain.NewSequence()
		t1, err := svc.PostTweet(ctx, "empresa1", "T1", ids)
		req.NoError(err)
		t2, err := svc.PostTweet(ctx, "empresa1", "T2", ids)
		req.NoError(err)
		t3, err := svc.PostTweet(ctx, "usuario1", "T3", ids)
		req.NoError(err)
		req.NoError(svc.Follow(ctx, "usuario1", "empresa1"))

		timeline, err := svc.Timeline("usuario1")

		req.NoError(err)
		req.Equal([]domain.Tweet{t2, t3, t1}, timeline)
	})

	t.Run("should fail for missing or deactivated profiles", func(t *testing.T) {
		req := require.New(t)
		svc := newService(t)
		req.NoError(svc.DeactivateProfile(ctx, "empresa1"))

		_, err := svc.Timeline("inexistente")
		req.ErrorIs(err, errors.ErrProfileNotFound)
		_, err = svc.Timeline("empresa1")
		req.ErrorIs(err, errors.ErrProfileDeactivated)
		_, err = svc.Tweets("empresa1")
		req.ErrorIs(err, errors.ErrProfileDeactivated)
	})
}

func TestTwitterService_FindTweet(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc := newService(t)
	tweet, err := svc.PostTweet(ctx, "usuario1", "find me", domain.NewSequence())
	req.NoError(err)

	found, err := svc.FindTweet("usuario1", tweet.ID)
	req.NoError(err)
	req.Equal(tweet, found)

	_, err = svc.FindTweet("usuario1", 99)
	req.ErrorIs(err, errors.ErrTweetNotFound)
	_, err = svc.FindTweet("inexistente", tweet.ID)
	req.ErrorIs(err, errors.ErrProfileNotFound)
}

func TestTwitterService_Follow(t *testing.T) {
	ctx := context.Background()

	t.Run("should add the symmetric edge", func(t *testing.T) {
		req := require.New(t)
		svc := newService(t)

		req.NoError(svc.Follow(ctx, "usuario1", "empresa1"))

		followers, err := svc.Followers("empresa1")
		req.NoError(err)
		req.Len(followers, 1)
		req.Equal("usuario1", followers[0].Username())
		followees, err := svc.Followees("usuario1")
		req.NoError(err)
		req.Len(followees, 1)
		req.Equal("empresa1", followees[0].Username())
		count, err := svc.FollowerCount("empresa1")
		req.NoError(err)
		req.Equal(1, count)
	})

	t.Run("should refuse to follow twice", func(t *testing.T) {
		req := require.New(t)
		svc := newService(t)
		req.NoError(svc.Follow(ctx, "usuario1", "empresa1"))

		err := svc.Follow(ctx, "usuario1", "EMPRESA1")

		req.ErrorIs(err, errors.ErrAlreadyFollowing)
		count, err := svc.FollowerCount("empresa1")
		req.NoError(err)
		req.Equal(1, count)
	})

	t.Run("should refuse to follow itself whatever the case", func(t *testing.T) {
		req := require.New(t)
		svc := newService(t)

		req.ErrorIs(svc.Follow(ctx, "usuario1", "usuario1"), errors.ErrSelfFollow)
		req.ErrorIs(svc.Follow(ctx, "usuario1", "Usuario1"), errors.ErrSelfFollow)
	})

	t.Run("should validate follower before followee", func(t *testing.T) {
		req := require.New(t)
		svc := newService(t)
		req.NoError(svc.CreateProfile(ctx, domain.NewIndividual("Nana", "1")))
		req.NoError(svc.DeactivateProfile(ctx, "Nana"))

		req.ErrorIs(svc.Follow(ctx, "inexistente", "Nana"), errors.ErrProfileNotFound)
		req.ErrorIs(svc.Follow(ctx, "Nana", "inexistente"), errors.ErrProfileDeactivated)
		req.ErrorIs(svc.Follow(ctx, "usuario1", "inexistente"), errors.ErrProfileNotFound)
		req.ErrorIs(svc.Follow(ctx, "usuario1", "Nana"), errors.ErrProfileDeactivated)
	})
}

func TestTwitterService_FollowerCount_IncludesDeactivated(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc := newService(t)
	req.NoError(svc.CreateProfile(ctx, domain.NewIndividual("A", "1")))
	req.NoError(svc.CreateProfile(ctx, domain.NewIndividual("B", "2")))
	req.NoError(svc.CreateProfile(ctx, domain.NewIndividual("C", "3")))
	req.NoError(svc.Follow(ctx, "B", "A"))
	req.NoError(svc.Follow(ctx, "C", "A"))
	req.NoError(svc.Follow(ctx, "A", "C"))
	req.NoError(svc.DeactivateProfile(ctx, "C"))

	count, err := svc.FollowerCount("A")
	req.NoError(err)
	req.Equal(2, count)

	followers, err := svc.Followers("A")
	req.NoError(err)
	req.Len(followers, 1)
	req.Equal("B", followers[0].Username())

	followees, err := svc.Followees("A")
	req.NoError(err)
	req.Empty(followees)
}

func TestTwitterService_RegisteredUsernames(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	svc := newService(t)
	req.NoError(svc.CreateProfile(ctx, domain.NewIndividual("Jade", "1")))
	req.NoError(svc.DeactivateProfile(ctx, "empresa1"))

	req.Equal([]string{"usuario1", "empresa1 (inactive)", "Jade"}, svc.RegisteredUsernames())
}

func TestTwitterService_RegisteredUsernames_CustomMarker(t *testing.T) {
	req := require.New(t)
	svc := newService(t, WithInactiveMarker(" (inativo)"))
	req.NoError(svc.DeactivateProfile(context.Background(), "usuario1"))

	req.Equal([]string{"usuario1 (inativo)", "empresa1"}, svc.RegisteredUsernames())
}

func TestTwitterService_ProfileKind(t *testing.T) {
	req := require.New(t)
	svc := newService(t)

	kind, err := svc.ProfileKind("usuario1")
	req.NoError(err)
	req.Equal(domain.KindIndividual, kind)

	kind, err = svc.ProfileKind("empresa1")
	req.NoError(err)
	req.Equal(domain.KindOrganization, kind)

	_, err = svc.ProfileKind("inexistente")
	req.ErrorIs(err, errors.ErrProfileNotFound)
}
