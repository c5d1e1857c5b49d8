//go:generate go run go.uber.org/mock/mockgen -source=journal.go -destination=../mocks/mock_activity_journal.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const activityPrefix = "activity:"

type IActivityJournal interface {
	Record(entry ActivityEntry) error
	Recent(limit int) ([]ActivityEntry, error)
}

// ActivityEntry is one line of the activity log of the network.
type ActivityEntry struct {
	ID     uuid.UUID
	Kind   string
	Actor  string
	Target string
	Detail string
	At     time.Time
}

type ActivityJournal struct {
	db  *badger.DB
	log *slog.Logger
}

func NewActivityJournal(db *badger.DB, log *slog.Logger) ActivityJournal {
	return ActivityJournal{db: db, log: log}
}

// Record persists an entry under "activity:{timestamp_padded}:{uuid}" so that
// keys sort chronologically and two entries of the same nanosecond never collide.
func (j ActivityJournal) Record(entry ActivityEntry) error {
	key := fmt.Sprintf("%s%019d:%s", activityPrefix, entry.At.UnixNano(), entry.ID)
	value, err := encodeEntry(entry)
	if err != nil {
		return fmt.Errorf("encode activity failed: %w", err)
	}
	return j.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

// Recent returns at most limit entries, newest first. A limit <= 0 returns all.
func (j ActivityJournal) Recent(limit int) ([]ActivityEntry, error) {
	var entries []ActivityEntry
	err := j.db.View(func(txn *badger.Txn) error {
		prefix := []byte(activityPrefix)
		options := badger.DefaultIteratorOptions
		options.Reverse = true
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		// Reverse iteration starts from the greatest key below the seek key.
		seekKey := append([]byte(activityPrefix), []byte("9999999999999999999;")...)
		for it.Seek(seekKey); it.ValidForPrefix(prefix); it.Next() {
			if limit > 0 && len(entries) == limit {
				j.log.Debug(fmt.Sprintf("Maximum of %d activities reached", limit))
				break
			}
			err := it.Item().Value(func(value []byte) error {
				entry, err := decodeEntry(value)
				if err != nil {
					return err
				}
				entries = append(entries, entry)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func encodeEntry(entry ActivityEntry) ([]byte, error) {
	s, err := structpb.NewStruct(map[string]any{
		"id":     entry.ID.String(),
		"kind":   entry.Kind,
		"actor":  entry.Actor,
		"target": entry.Target,
		"detail": entry.Detail,
		"at":     entry.At.Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, err
	}
	return proto.Marshal(s)
}

func decodeEntry(value []byte) (ActivityEntry, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(value, &s); err != nil {
		return ActivityEntry{}, err
	}
	fields := s.GetFields()
	id, err := uuid.Parse(fields["id"].GetStringValue())
	if err != nil {
		return ActivityEntry{}, err
	}
	at, err := time.Parse(time.RFC3339Nano, fields["at"].GetStringValue())
	if err != nil {
		return ActivityEntry{}, err
	}
	return ActivityEntry{
		ID:     id,
		Kind:   fields["kind"].GetStringValue(),
		Actor:  fields["actor"].GetStringValue(),
		Target: fields["target"].GetStringValue(),
		Detail: fields["detail"].GetStringValue(),
		At:     at.UTC(),
	}, nil
}
