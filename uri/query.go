package uri

import (
	"iter"
	"strings"

	"github.com/ghettovoice/urisplit/internal/util"
)

// QueryParam is a raw key/value pair of a query component.
type QueryParam struct {
	Key   string
	Value string
}

// QueryParams returns an iterator over the key/value pairs of the query q (without leading "?").
//
// Pairs are separated by "&", empty pairs are skipped. Key and value are separated by the first "=";
// a pair without "=" yields an empty value. Nothing is decoded and repeated keys are not merged.
// The iterator is restartable.
func QueryParams(q string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		rest := q
		for rest != "" {
			var pair string
			pair, rest, _ = util.CutByte(rest, '&')
			if pair == "" {
				continue
			}
			k, v, _ := util.CutByte(pair, '=')
			if !yield(k, v) {
				return
			}
		}
	}
}

// ParseQuery splits the query q into key/value pairs in order of appearance.
// See [QueryParams] for the splitting rules. An empty query yields no pairs.
func ParseQuery(q string) []QueryParam {
	if q == "" {
		return nil
	}
	params := make([]QueryParam, 0, strings.Count(q, "&")+1)
	for k, v := range QueryParams(q) {
		params = append(params, QueryParam{Key: k, Value: v})
	}
	if len(params) == 0 {
		return nil
	}
	return params
}

// QueryParams returns an iterator over the key/value pairs of the URI query.
func (u URI[S]) QueryParams() iter.Seq2[string, string] { return QueryParams(string(u.query)) }

// QueryValue returns the value of the first query pair with the given key.
// The key is compared as is, without decoding.
func (u URI[S]) QueryValue(key string) (string, bool) {
	for k, v := range QueryParams(string(u.query)) {
		if k == key {
			return v, true
		}
	}
	return "", false
}
