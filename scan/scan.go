// Package scan provides the delimiter-aware string primitives used by the
// USL parser: extracting the text between two markers (optionally matching
// nested occurrences) and splitting on a delimiter while leaving bracketed
// spans intact.
package scan

import (
	"reflect"
	"strings"
)

// Pair is an open/close marker pair, e.g. {"(", ")"}.
type Pair struct {
	Open  string
	Close string
}

// Pad returns a copy of seq that is at least n elements long, with any
// missing tail elements set to fill. It never truncates.
func Pad[T any](seq []T, n int, fill T) []T {
	size := len(seq)
	if n > size {
		size = n
	}
	out := make([]T, len(seq), size)
	copy(out, seq)
	for len(out) < n {
		out = append(out, fill)
	}
	return out
}

// Between returns the text between open and close, and whether it was found.
//
// An empty open starts at the beginning of text; an empty close runs to the
// end. Without matching, the result stops at the first close after open.
// With matching, every further open increments a depth counter and every
// close decrements it, and the result stops at the close that brings the
// depth back to zero. When open == close a close is always taken as a close,
// so the depth never exceeds one.
func Between(text, open, close string, matching bool) (string, bool) {
	start := 0
	if open != "" {
		idx := strings.Index(text, open)
		if idx < 0 {
			return "", false
		}
		start = idx + len(open)
	}

	if close == "" {
		return text[start:], true
	}

	if !matching {
		end := strings.Index(text[start:], close)
		if end < 0 {
			return "", false
		}
		return text[start : start+end], true
	}

	nests := open != "" && open != close
	depth := 1
	for i := start; i < len(text); {
		if strings.HasPrefix(text[i:], close) {
			depth--
			if depth == 0 {
				return text[start:i], true
			}
			i += len(close)
			continue
		}
		if nests && strings.HasPrefix(text[i:], open) {
			depth++
			i += len(open)
			continue
		}
		i++
	}
	return "", false
}

// SplitTopLevel splits text on every occurrence of delim that does not fall
// inside a span delimited by one of pairs. Spans are located with
// Between(..., true); when several pairs open before the next delimiter the
// earliest-starting span wins and is copied into the current segment
// verbatim. Pairs with an empty marker are ignored.
func SplitTopLevel(text, delim string, pairs []Pair) []string {
	if delim == "" {
		return []string{text}
	}

	var (
		out   []string
		batch strings.Builder
		rest  = text
	)
	for {
		next := strings.Index(rest, delim)
		if next < 0 {
			batch.WriteString(rest)
			out = append(out, batch.String())
			return out
		}

		spanStart, spanEnd := -1, -1
		for _, p := range pairs {
			if p.Open == "" || p.Close == "" {
				continue
			}
			inner, ok := Between(rest, p.Open, p.Close, true)
			if !ok {
				continue
			}
			s := strings.Index(rest, p.Open)
			if spanStart < 0 || s < spanStart {
				spanStart = s
				spanEnd = s + len(p.Open) + len(inner) + len(p.Close)
			}
		}

		if spanStart >= 0 && spanStart < next {
			batch.WriteString(rest[:spanEnd])
			rest = rest[spanEnd:]
			continue
		}

		batch.WriteString(rest[:next])
		out = append(out, batch.String())
		batch.Reset()
		rest = rest[next+len(delim):]
	}
}

// IsMultiValued reports whether v is an ordered sequence (a slice or an
// array). Strings are atomic here, never sequences of characters.
func IsMultiValued(v any) bool {
	if v == nil {
		return false
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return true
	default:
		return false
	}
}
