package sink

import (
	"context"
	"mytwitter/domain/event"
	"mytwitter/search"
)

// SearchSink feeds posted tweets to the full text index.
type SearchSink struct {
	index search.ITweetIndex
}

func NewSearchSink(index search.ITweetIndex) SearchSink {
	return SearchSink{index: index}
}

func (s SearchSink) Consume(ctx context.Context, e event.DomainEvent) error {
	evt, ok := e.(event.TweetPosted)
	if !ok {
		return nil
	}
	return s.index.Index(ctx, search.Document{
		TweetID: evt.TweetID,
		Author:  evt.Author,
		Text:    evt.Text,
		At:      evt.At,
	})
}
