// Package search keeps an in-memory full text index of posted tweets.
package search

//go:generate go run go.uber.org/mock/mockgen -source=index.go -destination=../mocks/mock_tweet_index.go -package=mocks

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/abadojack/whatlanggo"
	"github.com/blugelabs/bluge"
)

const (
	fieldText   = "text"
	fieldAuthor = "author"
	fieldName   = "author_name"
	fieldLang   = "lang"
	fieldAt     = "at"
)

type ITweetIndex interface {
	Index(ctx context.Context, doc Document) error
	Search(ctx context.Context, query Query) ([]Hit, error)
}

// Document is what gets indexed for one tweet.
type Document struct {
	TweetID int64
	Author  string
	Text    string
	At      time.Time
}

type Hit struct {
	TweetID int64
	Author  string
	Text    string
	Lang    string
	At      time.Time
	Score   float64
}

type TweetIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewTweetIndex(writer *bluge.Writer, log *slog.Logger) *TweetIndex {
	return &TweetIndex{writer: writer, log: log}
}

// OpenInMemory opens a writer that lives as long as the process.
func OpenInMemory() (*bluge.Writer, error) {
	return bluge.OpenWriter(bluge.InMemoryOnlyConfig())
}

// Index stores the tweet with its detected language, keyed by tweet id.
func (i *TweetIndex) Index(_ context.Context, doc Document) error {
	lang := DetectLang(doc.Text)
	d := bluge.NewDocument(strconv.FormatInt(doc.TweetID, 10)).
		AddField(bluge.NewTextField(fieldText, doc.Text).StoreValue()).
		AddField(bluge.NewKeywordField(fieldAuthor, strings.ToLower(doc.Author))).
		AddField(bluge.NewStoredOnlyField(fieldName, []byte(doc.Author))).
		AddField(bluge.NewKeywordField(fieldLang, lang).StoreValue()).
		AddField(bluge.NewDateTimeField(fieldAt, doc.At).StoreValue().Sortable())

	if err := i.writer.Update(d.ID(), d); err != nil {
		return fmt.Errorf("index tweet %d: %w", doc.TweetID, err)
	}
	i.log.Debug("Tweet indexed", "tweet_id", doc.TweetID, "lang", lang)
	return nil
}

// Search runs the query against a fresh snapshot of the index, best match first
// and most recent first among equal scores.
func (i *TweetIndex) Search(ctx context.Context, query Query) ([]Hit, error) {
	reader, err := i.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("open index reader: %w", err)
	}
	defer func() { _ = reader.Close() }()

	limit := query.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	request := bluge.NewTopNSearch(limit, toBlugeQuery(query)).
		SortBy([]string{"-_score", "-" + fieldAt})

	matches, err := reader.Search(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("search tweets: %w", err)
	}

	var hits []Hit
	match, err := matches.Next()
	for err == nil && match != nil {
		hit := Hit{Score: match.Score}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "_id":
				hit.TweetID, _ = strconv.ParseInt(string(value), 10, 64)
			case fieldText:
				hit.Text = string(value)
			case fieldName:
				hit.Author = string(value)
			case fieldLang:
				hit.Lang = string(value)
			case fieldAt:
				hit.At, _ = bluge.DecodeDateTime(value)
			}
			return true
		})
		if err != nil {
			break
		}
		hits = append(hits, hit)
		match, err = matches.Next()
	}
	if err != nil {
		return nil, fmt.Errorf("read search results: %w", err)
	}
	return hits, nil
}

func toBlugeQuery(query Query) bluge.Query {
	q := bluge.NewBooleanQuery()
	clauses := 0
	if terms := strings.TrimSpace(query.Terms); terms != "" {
		q.AddMust(bluge.NewMatchQuery(terms).SetField(fieldText))
		clauses++
	}
	if query.Author != "" {
		q.AddMust(bluge.NewTermQuery(strings.ToLower(query.Author)).SetField(fieldAuthor))
		clauses++
	}
	if query.Lang != "" {
		q.AddMust(bluge.NewTermQuery(query.Lang).SetField(fieldLang))
		clauses++
	}
	if clauses == 0 {
		return bluge.NewMatchAllQuery()
	}
	return q
}

// DetectLang returns the ISO 639-1 code of the text, "und" when unsure.
func DetectLang(text string) string {
	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return "und"
	}
	if code := info.Lang.Iso6391(); code != "" {
		return code
	}
	return "und"
}
