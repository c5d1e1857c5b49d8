package event

import (
	"time"

	"github.com/google/uuid"
)

type Name string

const (
	ProfileCreatedName     Name = "profile_created"
	ProfileDeactivatedName Name = "profile_deactivated"
	TweetPostedName        Name = "tweet_posted"
	ProfileFollowedName    Name = "profile_followed"
)

// DomainEvent is emitted once a mutation of the network has fully applied.
type DomainEvent interface {
	EventID() uuid.UUID
	Name() Name
	OccurredAt() time.Time
}

type ProfileCreated struct {
	ID       uuid.UUID
	Username string
	Kind     string
	At       time.Time
}

func (e ProfileCreated) EventID() uuid.UUID    { return e.ID }
func (ProfileCreated) Name() Name              { return ProfileCreatedName }
func (e ProfileCreated) OccurredAt() time.Time { return e.At }

type ProfileDeactivated struct {
	ID       uuid.UUID
	Username string
	At       time.Time
}

func (e ProfileDeactivated) EventID() uuid.UUID    { return e.ID }
func (ProfileDeactivated) Name() Name              { return ProfileDeactivatedName }
func (e ProfileDeactivated) OccurredAt() time.Time { return e.At }

type TweetPosted struct {
	ID      uuid.UUID
	TweetID int64
	Author  string
	Text    string
	At      time.Time
}

func (e TweetPosted) EventID() uuid.UUID    { return e.ID }
func (TweetPosted) Name() Name              { return TweetPostedName }
func (e TweetPosted) OccurredAt() time.Time { return e.At }

type ProfileFollowed struct {
	ID       uuid.UUID
	Follower string
	Followee string
	At       time.Time
}

func (e ProfileFollowed) EventID() uuid.UUID    { return e.ID }
func (ProfileFollowed) Name() Name              { return ProfileFollowedName }
func (e ProfileFollowed) OccurredAt() time.Time { return e.At }
