package search

import (
	"strconv"
	"strings"
)

const defaultLimit = 10

// Query is the structured form of a console search line.
// Example: lunch --author Clara --lang pt --limit 5
type Query struct {
	RawInput string
	Terms    string
	Author   string
	Lang     string
	Limit    int
}

// NewQuery splits flags from free text terms. Unknown flags are dropped and
// an invalid limit keeps the given default.
func NewQuery(input string, limit int) Query {
	if limit <= 0 {
		limit = defaultLimit
	}
	query := Query{RawInput: input, Limit: limit}

	parts := strings.Fields(input)
	var terms []string
	for i := 0; i < len(parts); i++ {
		part := parts[i]
		if !strings.HasPrefix(part, "--") || i+1 >= len(parts) {
			terms = append(terms, part)
			continue
		}
		value := parts[i+1]
		switch strings.TrimPrefix(part, "--") {
		case "author":
			query.Author = value
		case "lang":
			query.Lang = strings.ToLower(value)
		case "limit":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				query.Limit = n
			}
		}
		i++
	}
	query.Terms = strings.Join(terms, " ")
	return query
}
