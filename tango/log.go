package tango

import (
	"fmt"
	"time"
)

// Kind identifies the sort of event a LogRecord describes (spec §4.8).
type Kind int

const (
	KindSearchStart Kind = iota
	KindSearchSuccess
	KindSearchEnd
	KindCut
	KindJoin
)

func (k Kind) String() string {
	switch k {
	case KindSearchStart:
		return "SEARCH_START"
	case KindSearchSuccess:
		return "SEARCH_SUCCESS"
	case KindSearchEnd:
		return "SEARCH_END"
	case KindCut:
		return "CUT"
	case KindJoin:
		return "JOIN"
	default:
		return "UNKNOWN"
	}
}

// LogRecord is one append-only entry in a Tree's operation log (spec
// §4.8). Highlight marks records an external viewer may want to call out,
// currently set only on SEARCH_SUCCESS.
type LogRecord[K any] struct {
	Kind      Kind
	Text      string
	Seconds   float64
	Key       K
	Highlight bool
}

// Log returns the sequence of records appended by every Search call run on
// this Tree so far, oldest first.
func (t *Tree[K]) Log() []LogRecord[K] {
	return t.log
}

func (t *Tree[K]) appendLog(kind Kind, key K, elapsed time.Duration, highlight bool) {
	rec := LogRecord[K]{
		Kind:      kind,
		Text:      fmt.Sprintf("%s key=%v", kind, key),
		Seconds:   elapsed.Seconds(),
		Key:       key,
		Highlight: highlight,
	}
	t.log = append(t.log, rec)
	if t.debugLogger != nil {
		t.debugLogger.Debug(rec.Text, "kind", kind.String(), "seconds", rec.Seconds)
	}
	if t.metrics != nil {
		t.metrics.recordLogRecord(kind)
	}
}
