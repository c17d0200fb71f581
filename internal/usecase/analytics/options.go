package analytics

import (
	"fmt"
	"hash/fnv"
	"sort"
	"strings"
)

// Speaker sort modes for grouped views
const (
	SortSpeakersByWords = "words"
	SortSpeakersByTurns = "turns"
	SortSpeakersByName  = "name"
)

// TimeWindow is an externally supplied active time window; only words
// overlapping [Left, Right] are analyzed when it is set
type TimeWindow struct {
	Left  float64 `json:"left"`
	Right float64 `json:"right"`
}

// Options is the explicit configuration threaded through every analytics
// entry point. There is no ambient configuration: whoever calls the engine
// says exactly what it wants.
type Options struct {
	// EndIndex is the reveal cursor: how many leading elements of the
	// canonical word array are visible. Negative means "everything".
	EndIndex int

	Window *TimeWindow

	FilterStopWords bool

	// LastWordMode displays the running repeat count on the most recent
	// occurrence instead of the first; EchoMode keeps earlier occurrences'
	// counts instead of resetting them to 1
	LastWordMode bool
	EchoMode     bool

	// EnabledSpeakers limits analysis to the named speakers; nil enables all
	EnabledSpeakers []string

	SortSpeakersBy string

	// ScaleToVisibleData normalizes fingerprints against maxima found in the
	// visible selection; when false, maxima are computed once over the whole
	// transcript so fingerprint shapes stay stable while scrubbing
	ScaleToVisibleData bool

	// HasWordTimings gates the interruption heuristic, which is meaningless
	// on estimated timings
	HasWordTimings bool

	SearchTerm string
}

func (o Options) speakerEnabled(name string) bool {
	if o.EnabledSpeakers == nil {
		return true
	}
	for _, s := range o.EnabledSpeakers {
		if s == name {
			return true
		}
	}
	return false
}

// Fingerprint returns a stable digest of every field that affects computed
// results; it keys the analytics result cache.
func (o Options) Fingerprint() string {
	var b strings.Builder
	fmt.Fprintf(&b, "end=%d|stop=%t|last=%t|echo=%t|scale=%t|timed=%t|sort=%s|term=%s",
		o.EndIndex, o.FilterStopWords, o.LastWordMode, o.EchoMode,
		o.ScaleToVisibleData, o.HasWordTimings, o.SortSpeakersBy, o.SearchTerm)
	if o.Window != nil {
		fmt.Fprintf(&b, "|win=%.3f:%.3f", o.Window.Left, o.Window.Right)
	}
	if o.EnabledSpeakers != nil {
		speakers := append([]string(nil), o.EnabledSpeakers...)
		sort.Strings(speakers)
		fmt.Fprintf(&b, "|spk=%s", strings.Join(speakers, ","))
	}

	h := fnv.New64a()
	h.Write([]byte(b.String()))
	return fmt.Sprintf("%016x", h.Sum64())
}
