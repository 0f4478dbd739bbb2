// Package list applies operations to separator-delimited lists of tokens.
package list

import (
	"context"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/conneroisu/devutils/internal/action"
	"github.com/conneroisu/devutils/internal/errors"
)

type Action int

const (
	Sort Action = iota
	Lowercase
	Uppercase
	Capitalise
	Capitalize
	Reverse
	Deduplicate
	Unique
	Dedup
	Shuffle
	Slice
	Count
)

var Actions = action.NewRegistry("list", map[string]Action{
	"sort":        Sort,
	"lowercase":   Lowercase,
	"uppercase":   Uppercase,
	"capitalise":  Capitalise,
	"capitalize":  Capitalize,
	"reverse":     Reverse,
	"deduplicate": Deduplicate,
	"unique":      Unique,
	"dedup":       Dedup,
	"shuffle":     Shuffle,
	"slice":       Slice,
	"count":       Count,
})

// Unbounded as Options.Length takes every token after Index.
const Unbounded = -1

type Options struct {
	Separator string
	Index     int
	Length    int
	// Rand drives shuffle. Nil uses the global source.
	Rand *rand.Rand
}

// DefaultOptions matches the command defaults.
func DefaultOptions() Options {
	return Options{Separator: ",", Length: Unbounded}
}

var (
	lower = cases.Lower(language.Und)
	upper = cases.Upper(language.Und)
)

func Apply(_ context.Context, act Action, content string, opts Options) (string, error) {
	if opts.Separator == "" {
		return "", errors.NewParseError(errors.ErrCodeConfigInvalid, "list separator cannot be empty", nil)
	}
	sep := opts.Separator

	switch act {
	case Sort:
		return SortTokens(content, sep), nil
	case Lowercase:
		return mapTokens(content, sep, lower.String), nil
	case Uppercase:
		return mapTokens(content, sep, upper.String), nil
	case Capitalise, Capitalize:
		return mapTokens(content, sep, capitalise), nil
	case Reverse:
		tokens := strings.Split(content, sep)
		for i, j := 0, len(tokens)-1; i < j; i, j = i+1, j-1 {
			tokens[i], tokens[j] = tokens[j], tokens[i]
		}
		return strings.Join(tokens, sep), nil
	case Deduplicate, Unique, Dedup:
		return DeduplicateTokens(content, sep), nil
	case Shuffle:
		return shuffle(content, sep, opts.Rand), nil
	case Slice:
		return SliceTokens(content, sep, opts.Index, opts.Length), nil
	case Count:
		return strconv.Itoa(CountTokens(content, sep)), nil
	}
	return "", action.Unhandled(Actions, act)
}

func SortTokens(content, sep string) string {
	tokens := strings.Split(content, sep)
	sort.Strings(tokens)
	return strings.Join(tokens, sep)
}

// DeduplicateTokens keeps the first occurrence of every token.
func DeduplicateTokens(content, sep string) string {
	tokens := strings.Split(content, sep)
	seen := make(map[string]struct{}, len(tokens))
	out := tokens[:0]
	for _, tok := range tokens {
		if _, ok := seen[tok]; ok {
			continue
		}
		seen[tok] = struct{}{}
		out = append(out, tok)
	}
	return strings.Join(out, sep)
}

// SliceTokens skips index tokens and takes length of the rest. A range past
// the end is truncated rather than rejected.
func SliceTokens(content, sep string, index, length int) string {
	tokens := strings.Split(content, sep)
	if index < 0 {
		index = 0
	}
	if index > len(tokens) {
		index = len(tokens)
	}
	tokens = tokens[index:]
	if length >= 0 && length < len(tokens) {
		tokens = tokens[:length]
	}
	return strings.Join(tokens, sep)
}

// CountTokens reports 0 for empty content.
func CountTokens(content, sep string) int {
	if content == "" {
		return 0
	}
	return strings.Count(content, sep) + 1
}

func mapTokens(content, sep string, fn func(string) string) string {
	tokens := strings.Split(content, sep)
	for i, tok := range tokens {
		tokens[i] = fn(tok)
	}
	return strings.Join(tokens, sep)
}

// capitalise upper-cases the first rune and lower-cases the rest.
func capitalise(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return upper.String(string(r)) + lower.String(s[size:])
}

func shuffle(content, sep string, rng *rand.Rand) string {
	tokens := strings.Split(content, sep)
	swap := func(i, j int) { tokens[i], tokens[j] = tokens[j], tokens[i] }
	if rng != nil {
		rng.Shuffle(len(tokens), swap)
	} else {
		rand.Shuffle(len(tokens), swap)
	}
	return strings.Join(tokens, sep)
}
