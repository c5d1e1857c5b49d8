package services

import (
	"context"
	"fmt"
	"log/slog"
	"mytwitter/contract"
	"mytwitter/domain"
	"mytwitter/domain/event"
	"mytwitter/errors"
	"mytwitter/moderation"
	"mytwitter/repositories"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const DefaultInactiveMarker = " (inactive)"

type ITwitterService interface {
	UserExists(username string) bool
	CreateProfile(ctx context.Context, profile *domain.Profile) error
	DeactivateProfile(ctx context.Context, username string) error
	PostTweet(ctx context.Context, username, text string, ids domain.IDSource) (domain.Tweet, error)
	Timeline(username string) ([]domain.Tweet, error)
	Tweets(username string) ([]domain.Tweet, error)
	FindTweet(username string, id int64) (domain.Tweet, error)
	Follow(ctx context.Context, follower, followee string) error
	FollowerCount(username string) (int, error)
	Followers(username string) ([]*domain.Profile, error)
	Followees(username string) ([]*domain.Profile, error)
	RegisteredUsernames() []string
	ProfileKind(username string) (domain.Kind, error)
}

// TwitterService validates input, enforces the rules of the network and
// coordinates the directory with the profiles it holds.
// Every call is serialized, so read-modify-write sequences never interleave.
type TwitterService struct {
	mu             sync.Mutex
	directory      repositories.IUserDirectory
	sinks          []contract.EventSink
	moderator      *moderation.Moderator
	now            func() time.Time
	inactiveMarker string
	log            *slog.Logger
}

type Option func(*TwitterService)

// WithSinks registers sinks receiving an event after each applied mutation.
func WithSinks(sinks ...contract.EventSink) Option {
	return func(s *TwitterService) { s.sinks = append(s.sinks, sinks...) }
}

// WithModerator masks censored words of accepted tweets.
func WithModerator(moderator *moderation.Moderator) Option {
	return func(s *TwitterService) { s.moderator = moderator }
}

func WithClock(now func() time.Time) Option {
	return func(s *TwitterService) { s.now = now }
}

func WithInactiveMarker(marker string) Option {
	return func(s *TwitterService) { s.inactiveMarker = marker }
}

func NewTwitterService(directory repositories.IUserDirectory, log *slog.Logger, opts ...Option) *TwitterService {
	s := &TwitterService{
		directory:      directory,
		now:            time.Now,
		inactiveMarker: DefaultInactiveMarker,
		log:            log,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// UserExists does not tell a missing profile from a deactivated one.
func (s *TwitterService) UserExists(username string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.directory.Find(username)
	return ok && profile.IsActive()
}

// CreateProfile trims the username of the given profile in place, then
// registers it.
func (s *TwitterService) CreateProfile(ctx context.Context, profile *domain.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	username := strings.TrimSpace(profile.Username())
	profile.SetUsername(username)
	if err := ValidateUsername(username); err != nil {
		s.log.Debug("Profile rejected", "username", username, "error", err)
		return err
	}
	if _, ok := s.directory.Find(username); ok {
		return fmt.Errorf("%w: %q", errors.ErrProfileAlreadyExists, username)
	}
	if err := s.directory.Register(profile); err != nil {
		return err
	}

	s.log.Debug("Profile created", "username", username, "kind", profile.Kind())
	s.publish(ctx, event.ProfileCreated{
		ID:       uuid.New(),
		Username: username,
		Kind:     profile.Kind().String(),
		At:       s.now(),
	})
	return nil
}

func (s *TwitterService) DeactivateProfile(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.directory.Find(username)
	if !ok {
		return fmt.Errorf("%w: %q", errors.ErrProfileNotFound, username)
	}
	if !profile.IsActive() {
		return fmt.Errorf("%w: %q", errors.ErrProfileAlreadyDeactivated, username)
	}
	profile.Deactivate()
	if err := s.directory.Replace(profile); err != nil {
		profile.Activate()
		return err
	}

	s.log.Debug("Profile deactivated", "username", profile.Username())
	s.publish(ctx, event.ProfileDeactivated{
		ID:       uuid.New(),
		Username: profile.Username(),
		At:       s.now(),
	})
	return nil
}

// PostTweet does not require the author to be active. A failed write back
// drops the tweet again; its identifier stays consumed.
func (s *TwitterService) PostTweet(ctx context.Context, username, text string, ids domain.IDSource) (domain.Tweet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	text = strings.TrimSpace(text)
	profile, ok := s.directory.Find(username)
	if !ok {
		return domain.Tweet{}, fmt.Errorf("%w: %q", errors.ErrProfileNotFound, username)
	}
	if err := ValidateTweet(text); err != nil {
		s.log.Debug("Tweet rejected", "username", username, "error", err)
		return domain.Tweet{}, err
	}
	text, _ = s.moderator.Censor(text)

	tweet := domain.NewTweet(profile.Username(), text, ids, s.now())
	profile.AddTweet(tweet)
	if err := s.directory.Replace(profile); err != nil {
		profile.RemoveTweet(tweet.ID)
		return domain.Tweet{}, err
	}

	s.log.Debug("Tweet posted", "username", tweet.Author, "tweet_id", tweet.ID)
	s.publish(ctx, event.TweetPosted{
		ID:      uuid.New(),
		TweetID: tweet.ID,
		Author:  tweet.Author,
		Text:    tweet.Text,
		At:      tweet.CreatedAt,
	})
	return tweet, nil
}

// Timeline returns own and followed tweets, most recent first.
func (s *TwitterService) Timeline(username string) ([]domain.Tweet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.activeProfile(username)
	if err != nil {
		return nil, err
	}
	return profile.Timeline(), nil
}

// Tweets returns own tweets, most recent first.
func (s *TwitterService) Tweets(username string) ([]domain.Tweet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.activeProfile(username)
	if err != nil {
		return nil, err
	}
	return profile.Tweets(), nil
}

func (s *TwitterService) FindTweet(username string, id int64) (domain.Tweet, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.activeProfile(username)
	if err != nil {
		return domain.Tweet{}, err
	}
	tweet, ok := profile.Tweet(id)
	if !ok {
		return domain.Tweet{}, fmt.Errorf("%w: %d", errors.ErrTweetNotFound, id)
	}
	return tweet, nil
}

// Follow adds the symmetric edge follower -> followee. Both profiles must be
// active and distinct, and the edge must not exist yet. Both sides are
// unlinked again when a write back fails.
func (s *TwitterService) Follow(ctx context.Context, follower, followee string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	source, err := s.activeProfile(follower)
	if err != nil {
		return err
	}
	target, err := s.activeProfile(followee)
	if err != nil {
		return err
	}
	if source == target {
		return fmt.Errorf("%w: %q", errors.ErrSelfFollow, follower)
	}
	if target.IsFollowedBy(source) {
		return fmt.Errorf("%w: %q -> %q", errors.ErrAlreadyFollowing, source.Username(), target.Username())
	}

	source.AddFollowee(target)
	target.AddFollower(source)
	for _, p := range []*domain.Profile{source, target} {
		if err = s.directory.Replace(p); err != nil {
			source.RemoveFollowee(target)
			target.RemoveFollower(source)
			return err
		}
	}

	s.log.Debug("Profile followed", "follower", source.Username(), "followee", target.Username())
	s.publish(ctx, event.ProfileFollowed{
		ID:       uuid.New(),
		Follower: source.Username(),
		Followee: target.Username(),
		At:       s.now(),
	})
	return nil
}

// FollowerCount is the raw number of followers, deactivated ones included.
func (s *TwitterService) FollowerCount(username string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.activeProfile(username)
	if err != nil {
		return 0, err
	}
	return profile.FollowerCount(), nil
}

// Followers lists active followers only, unlike FollowerCount.
func (s *TwitterService) Followers(username string) ([]*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.activeProfile(username)
	if err != nil {
		return nil, err
	}
	return onlyActive(profile.Followers()), nil
}

// Followees lists active followees only.
func (s *TwitterService) Followees(username string) ([]*domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, err := s.activeProfile(username)
	if err != nil {
		return nil, err
	}
	return onlyActive(profile.Followees()), nil
}

// RegisteredUsernames lists every username in registration order, suffixing
// deactivated ones with the inactive marker.
func (s *TwitterService) RegisteredUsernames() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return lo.Map(s.directory.List(), func(p *domain.Profile, _ int) string {
		if p.IsActive() {
			return p.Username()
		}
		return p.Username() + s.inactiveMarker
	})
}

// ProfileKind does not require the profile to be active.
func (s *TwitterService) ProfileKind(username string) (domain.Kind, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.directory.Find(username)
	if !ok {
		return domain.KindUnknown, fmt.Errorf("%w: %q", errors.ErrProfileNotFound, username)
	}
	return profile.Kind(), nil
}

func (s *TwitterService) activeProfile(username string) (*domain.Profile, error) {
	profile, ok := s.directory.Find(username)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errors.ErrProfileNotFound, username)
	}
	if !profile.IsActive() {
		return nil, fmt.Errorf("%w: %q", errors.ErrProfileDeactivated, username)
	}
	return profile, nil
}

// publish is best effort: a failing sink is logged and never undoes the mutation.
func (s *TwitterService) publish(ctx context.Context, e event.DomainEvent) {
	for _, sink := range s.sinks {
		if err := sink.Consume(ctx, e); err != nil {
			s.log.Warn("Sink failed", "event", e.Name(), "error", err)
		}
	}
}

func onlyActive(profiles []*domain.Profile) []*domain.Profile {
	return lo.Filter(profiles, func(p *domain.Profile, _ int) bool {
		return p.IsActive()
	})
}
