package sink

import (
	"context"
	"fmt"
	"log/slog"
	"mytwitter/domain/event"
	"mytwitter/repositories"
)

// JournalSink appends every domain event to the activity journal.
type JournalSink struct {
	repository repositories.IActivityJournal
	log        *slog.Logger
}

func NewJournalSink(repository repositories.IActivityJournal, log *slog.Logger) JournalSink {
	return JournalSink{repository: repository, log: log}
}

func (j JournalSink) Consume(_ context.Context, e event.DomainEvent) error {
	entry, ok := toActivityEntry(e)
	if !ok {
		j.log.Debug(fmt.Sprintf("Not implemented event : %v", e))
		return nil
	}
	return j.repository.Record(entry)
}

func toActivityEntry(e event.DomainEvent) (repositories.ActivityEntry, bool) {
	entry := repositories.ActivityEntry{
		ID:   e.EventID(),
		Kind: string(e.Name()),
		At:   e.OccurredAt(),
	}
	switch evt := e.(type) {
	case event.ProfileCreated:
		entry.Actor = evt.Username
		entry.Detail = evt.Kind
	case event.ProfileDeactivated:
		entry.Actor = evt.Username
	case event.TweetPosted:
		entry.Actor = evt.Author
		entry.Detail = fmt.Sprintf("#%d %s", evt.TweetID, evt.Text)
	case event.ProfileFollowed:
		entry.Actor = evt.Follower
		entry.Target = evt.Followee
	default:
		return repositories.ActivityEntry{}, false
	}
	return entry, true
}
