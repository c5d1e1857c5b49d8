// Package domain contains core concepts of the social network.
// Profiles own their tweets and reference each other through follow edges.
// No storage, console, or logging logic should be added here.
package domain

import (
	"slices"
	"time"
)

// Tweet is an immutable message authored by a profile.
// Author is captured as a name so it survives a later rename of the profile.
type Tweet struct {
	ID        int64
	Author    string
	Text      string
	CreatedAt time.Time
}

// NewTweet draws the next identifier from ids and stamps the creation time.
func NewTweet(author, text string, ids IDSource, at time.Time) Tweet {
	return Tweet{
		ID:        ids.Next(),
		Author:    author,
		Text:      text,
		CreatedAt: at,
	}
}

// SortNewestFirst orders tweets by creation time, most recent first.
// The sort is stable so equal timestamps keep their input order.
func SortNewestFirst(tweets []Tweet) {
	slices.SortStableFunc(tweets, func(a, b Tweet) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
