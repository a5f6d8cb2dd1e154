// Package literalmatch maps a byte range to one of a small set of
// enumerated constants by exact, case-folded literal comparison. It is used
// wherever the decoder needs to recognize HTTP methods, API groups, device
// types and methods, parameter names, header names, sensor names and
// management methods.
//
// Matching is backed by a Hyperscan block database compiled once per table,
// mirroring the multi-pattern scanning approach in the reference WAF's
// hyperscan.Engine: build one database covering every literal for an
// enumeration, scan a candidate once, and take the id of whichever pattern
// matched. Because Hyperscan is run in PrefilterMode for speed, every raw
// hit is re-verified with a plain byte comparison before being trusted (see
// verify below) — the same "must be verified with another regex engine"
// caveat the WAF engine documents for its own prefiltered matches.
package literalmatch

import (
	"fmt"
	"sync"

	hs "github.com/flier/gohs/hyperscan"
)

// Entry pairs a canonical literal spelling with the value it decodes to.
type Entry[T any] struct {
	Literal string
	Value   T
}

// Table performs case-insensitive (or, if built with NewCaseSensitive,
// case-sensitive) exact matching of a byte slice against a fixed set of
// literals.
type Table[T any] struct {
	entries       []Entry[T]
	caseSensitive bool

	once    sync.Once
	buildErr error
	db      hs.BlockDatabase
	scratch *hs.Scratch
}

// New builds a case-insensitive literal table.
func New[T any](entries []Entry[T]) *Table[T] {
	return &Table[T]{entries: entries}
}

// NewCaseSensitive builds a table whose Match requires an exact byte-for-byte
// match, no case folding. Used for the API version literal "v1", which is
// matched case-sensitively unlike every other path segment.
func NewCaseSensitive[T any](entries []Entry[T]) *Table[T] {
	return &Table[T]{entries: entries, caseSensitive: true}
}

func (t *Table[T]) build() {
	patterns := make([]*hs.Pattern, len(t.entries))
	for i, e := range t.entries {
		p := hs.NewPattern(quoteLiteral(e.Literal), 0)
		p.Id = i
		// SingleMatch: only one match per pattern is reported, we only care
		// whether it matched at all. PrefilterMode: broader regex
		// compatibility at the cost of possible false positives, so every
		// hit is re-verified below with a plain byte comparison.
		p.Flags = hs.SingleMatch | hs.PrefilterMode
		if !t.caseSensitive {
			p.Flags |= hs.Caseless
		}
		patterns[i] = p
	}

	db, err := hs.NewBlockDatabase(patterns...)
	if err != nil {
		t.buildErr = fmt.Errorf("literalmatch: failed to compile database: %w", err)
		return
	}
	scratch, err := hs.NewScratch(db)
	if err != nil {
		db.Close()
		t.buildErr = fmt.Errorf("literalmatch: failed to allocate scratch: %w", err)
		return
	}
	t.db = db
	t.scratch = scratch
}

// Match reports whether candidate is exactly (not just a substring of) one
// of the table's literals, and if so which value it maps to.
func (t *Table[T]) Match(candidate []byte) (value T, ok bool) {
	t.once.Do(t.build)
	if t.buildErr != nil || len(candidate) == 0 {
		return t.fallbackMatch(candidate)
	}

	var hitID = -1
	handler := func(id uint, from, to uint64, flags uint, context interface{}) error {
		// A candidate that reached us was already isolated by the decode
		// functions to be exactly the token under consideration, so a match
		// ending at len(candidate) whose pattern length equals
		// len(candidate) can only be a match over the whole candidate: it
		// could not have started anywhere but position 0.
		if int(to) == len(candidate) && len(t.entries[id].Literal) == len(candidate) {
			hitID = int(id)
		}
		return nil
	}
	if err := t.db.Scan(candidate, t.scratch, handler, nil); err != nil {
		return t.fallbackMatch(candidate)
	}
	if hitID < 0 {
		return value, false
	}

	// Verification pass required by PrefilterMode: confirm the exact bytes,
	// not just "same length, Hyperscan says yes".
	if !verify(candidate, t.entries[hitID].Literal, t.caseSensitive) {
		return value, false
	}
	return t.entries[hitID].Value, true
}

// fallbackMatch is used if the Hyperscan database failed to build or to
// scan (e.g. the target platform lacks Hyperscan support); it performs the
// same exact-match semantics with a linear scan, so callers always get a
// correct answer even when the accelerated path is unavailable.
func (t *Table[T]) fallbackMatch(candidate []byte) (value T, ok bool) {
	for _, e := range t.entries {
		if verify(candidate, e.Literal, t.caseSensitive) {
			return e.Value, true
		}
	}
	return value, false
}

func verify(candidate []byte, literal string, caseSensitive bool) bool {
	if len(candidate) != len(literal) {
		return false
	}
	if caseSensitive {
		return string(candidate) == literal
	}
	for i := 0; i < len(candidate); i++ {
		if foldByte(candidate[i]) != foldByte(literal[i]) {
			return false
		}
	}
	return true
}

func foldByte(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// quoteLiteral escapes any Hyperscan/PCRE metacharacters in a literal
// (Alpaca's literals are all plain ASCII words, but this keeps the table
// builder correct if that ever changes).
func quoteLiteral(literal string) string {
	special := `\.+*?()|[]{}^$`
	out := make([]byte, 0, len(literal)*2)
	for i := 0; i < len(literal); i++ {
		c := literal[i]
		for _, s := range []byte(special) {
			if c == s {
				out = append(out, '\\')
				break
			}
		}
		out = append(out, c)
	}
	return string(out)
}
