package abi

import (
	"sort"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/pkg/errors"
)

// Entry pairs a selector with the strategy that decodes a payload into T.
// The payload passed to Decode still carries its 4-byte selector.
type Entry[T any] struct {
	Selector Selector
	Decode   func(data []byte) (T, error)
}

// SelectorTable is a sorted selector slice with a parallel slice of
// decoders. Lookups are binary searches.
type SelectorTable[T any] struct {
	name      string
	selectors []Selector
	decoders  []func([]byte) (T, error)
}

// NewSelectorTable sorts entries and rejects duplicate selectors. name
// identifies the interface in error messages.
func NewSelectorTable[T any](name string, entries ...Entry[T]) (*SelectorTable[T], error) {
	sorted := append([]Entry[T](nil), entries...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Selector.Compare(sorted[j].Selector) < 0
	})
	t := &SelectorTable[T]{
		name:      name,
		selectors: make([]Selector, len(sorted)),
		decoders:  make([]func([]byte) (T, error), len(sorted)),
	}
	for i, e := range sorted {
		if i > 0 && sorted[i-1].Selector == e.Selector {
			return nil, errors.Errorf("%s: duplicate selector %s", name, e.Selector)
		}
		t.selectors[i] = e.Selector
		t.decoders[i] = e.Decode
	}
	return t, nil
}

// Name is the interface name the table was built for.
func (t *SelectorTable[T]) Name() string { return t.name }

// Len is the number of selectors.
func (t *SelectorTable[T]) Len() int { return len(t.selectors) }

// Selectors returns the sorted selectors.
func (t *SelectorTable[T]) Selectors() []Selector {
	return append([]Selector(nil), t.selectors...)
}

func (t *SelectorTable[T]) index(sel Selector) (int, bool) {
	i := sort.Search(len(t.selectors), func(i int) bool {
		return t.selectors[i].Compare(sel) >= 0
	})
	return i, i < len(t.selectors) && t.selectors[i] == sel
}

// Valid reports whether sel is in the table.
func (t *SelectorTable[T]) Valid(sel Selector) bool {
	_, ok := t.index(sel)
	return ok
}

// Decode reads the leading selector of data and dispatches to its decoder.
func (t *SelectorTable[T]) Decode(data []byte) (T, error) {
	var zero T
	sel, err := ExtractSelector(data)
	if err != nil {
		return zero, err
	}
	i, ok := t.index(sel)
	if !ok {
		return zero, &UnknownSelectorError{Interface: t.name, Selector: sel}
	}
	return t.decoders[i](data)
}

// TopicEntry pairs an event topic with its log decoder.
type TopicEntry[T any] struct {
	Topic  common.Hash
	Decode func(log types.Log) (T, error)
}

// TopicTable dispatches logs on an exact match of topic 0.
type TopicTable[T any] struct {
	name    string
	entries []TopicEntry[T]
}

// NewTopicTable rejects duplicate topics.
func NewTopicTable[T any](name string, entries ...TopicEntry[T]) (*TopicTable[T], error) {
	seen := make(map[common.Hash]bool, len(entries))
	for _, e := range entries {
		if seen[e.Topic] {
			return nil, errors.Errorf("%s: duplicate topic %s", name, e.Topic.Hex())
		}
		seen[e.Topic] = true
	}
	return &TopicTable[T]{name: name, entries: append([]TopicEntry[T](nil), entries...)}, nil
}

func (t *TopicTable[T]) Len() int { return len(t.entries) }

// Topics returns the topics in registration order.
func (t *TopicTable[T]) Topics() []common.Hash {
	out := make([]common.Hash, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.Topic
	}
	return out
}

// Valid reports whether topic belongs to one of the table's events.
func (t *TopicTable[T]) Valid(topic common.Hash) bool {
	for _, e := range t.entries {
		if e.Topic == topic {
			return true
		}
	}
	return false
}

// Decode matches topic 0 of log against the table. A log with no topics or
// an unknown topic yields an *InvalidLogError carrying the raw log.
func (t *TopicTable[T]) Decode(log types.Log) (T, error) {
	var zero T
	if len(log.Topics) == 0 {
		return zero, &InvalidLogError{Interface: t.name, Log: log, Reason: "no topics"}
	}
	for _, e := range t.entries {
		if e.Topic == log.Topics[0] {
			return e.Decode(log)
		}
	}
	return zero, &InvalidLogError{Interface: t.name, Log: log, Reason: "unknown topic " + log.Topics[0].Hex()}
}
