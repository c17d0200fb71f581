package ingest

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/convolens/convolens/internal/domain/entities"
)

// srtTimeRe matches "HH:MM:SS,mmm --> HH:MM:SS,mmm" cue timing lines
// (periods accepted as the millisecond separator for WebVTT-flavored files)
var srtTimeRe = regexp.MustCompile(`^(\d{1,2}):(\d{2}):(\d{2})[,.](\d{1,3})\s*-->\s*(\d{1,2}):(\d{2}):(\d{2})[,.](\d{1,3})`)

// ParseSubtitles converts an SRT cue list into ParsedTurns with a single
// synthetic speaker. Cue index lines and blank lines separate cues; cue
// text may span multiple lines.
func ParseSubtitles(text string) ([]entities.ParsedTurn, error) {
	var turns []entities.ParsedTurn
	var cur *entities.ParsedTurn

	flush := func() {
		if cur != nil && strings.TrimSpace(cur.Content) != "" {
			cur.Content = strings.TrimSpace(cur.Content)
			turns = append(turns, *cur)
		}
		cur = nil
	}

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(strings.TrimRight(rawLine, "\r"))
		if line == "" {
			flush()
			continue
		}

		if m := srtTimeRe.FindStringSubmatch(line); m != nil {
			flush()
			start := srtClock(m[1], m[2], m[3], m[4])
			end := srtClock(m[5], m[6], m[7], m[8])
			cur = &entities.ParsedTurn{Speaker: DefaultSpeaker, StartTime: &start, EndTime: &end}
			continue
		}

		// Bare cue index lines precede the timing line; skip them
		if cur == nil {
			if _, err := strconv.Atoi(line); err == nil {
				continue
			}
			continue
		}

		if cur.Content == "" {
			cur.Content = line
		} else {
			cur.Content += " " + line
		}
	}
	flush()

	if len(turns) == 0 {
		return nil, fmt.Errorf("no subtitle cues found")
	}
	return turns, nil
}

func srtClock(h, m, s, ms string) float64 {
	hour, _ := strconv.Atoi(h)
	minute, _ := strconv.Atoi(m)
	second, _ := strconv.Atoi(s)
	milli, _ := strconv.Atoi(ms)
	return float64(hour*3600+minute*60+second) + float64(milli)/1000
}
