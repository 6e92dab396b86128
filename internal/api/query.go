package api

import (
	"net/url"
	"strconv"
	"strings"
)

// Query accumulates URL query parameters in insertion order. Absent
// values never reach the encoded string; no canonicalization or sorting
// is applied.
type Query struct {
	pairs [][2]string
}

// NewQuery returns an empty query builder.
func NewQuery() *Query {
	return &Query{}
}

// Add appends a parameter unconditionally.
func (q *Query) Add(key, value string) *Query {
	q.pairs = append(q.pairs, [2]string{key, value})
	return q
}

// AddInt appends an integer parameter.
func (q *Query) AddInt(key string, value int) *Query {
	return q.Add(key, strconv.Itoa(value))
}

// AddIfSet appends a parameter only when value is non-empty. An empty
// value models an absent optional parameter and is dropped.
func (q *Query) AddIfSet(key, value string) *Query {
	if value == "" {
		return q
	}
	return q.Add(key, value)
}

// Encode renders the query string: "" when no parameters survive,
// otherwise "?" followed by the URL-encoded pairs in insertion order.
func (q *Query) Encode() string {
	if len(q.pairs) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteByte('?')
	for i, p := range q.pairs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(url.QueryEscape(p[0]))
		sb.WriteByte('=')
		sb.WriteString(url.QueryEscape(p[1]))
	}
	return sb.String()
}
