package entities

// CodeEntry is a named qualitative label applied to spans of a transcript
type CodeEntry struct {
	Name    string `json:"name"`
	Color   string `json:"color"`
	Enabled bool   `json:"enabled"`
}

// CodePalette is the fixed palette annotation codes draw their colors from.
// New codes take the first color not already in use; when every color is
// taken the scan cycles from the top.
var CodePalette = []string{
	"#e6194b", "#3cb44b", "#ffe119", "#4363d8", "#f58231",
	"#911eb4", "#46f0f0", "#f032e6", "#bcf60c", "#fabebe",
	"#008080", "#e6beff", "#9a6324", "#fffac8", "#800000",
	"#aaffc3", "#808000", "#ffd8b1", "#000075", "#808080",
}

// NextPaletteColor picks the color for a newly discovered code given the
// entries already registered
func NextPaletteColor(existing []CodeEntry) string {
	used := make(map[string]bool, len(existing))
	for _, e := range existing {
		used[e.Color] = true
	}
	for _, c := range CodePalette {
		if !used[c] {
			return c
		}
	}
	return CodePalette[len(existing)%len(CodePalette)]
}
