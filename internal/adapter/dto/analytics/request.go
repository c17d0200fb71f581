package analytics

// Query represents the shared query parameters of the analytics views.
// Pointer fields distinguish "absent" from a zero value so the server
// defaults stay in charge when the client omits a knob.
type Query struct {
	EndIndex           *int     `query:"end_index"`
	WindowLeft         *float64 `query:"window_left"`
	WindowRight        *float64 `query:"window_right"`
	FilterStopWords    *bool    `query:"filter_stop_words"`
	LastWordMode       *bool    `query:"last_word_mode"`
	EchoMode           *bool    `query:"echo_mode"`
	ScaleToVisibleData *bool    `query:"scale_to_visible"`
	Speakers           []string `query:"speakers"`
	SortBy             string   `query:"sort_by" validate:"omitempty,oneof=words turns name"`
}

// GroupQuery adds the grouping axis for the groups view
type GroupQuery struct {
	Query
	By string `query:"by" validate:"omitempty,oneof=speaker turn"`
}

// JourneyQuery adds the search term for the word journey view
type JourneyQuery struct {
	Query
	Term string `query:"term" validate:"required,max=100"`
}
