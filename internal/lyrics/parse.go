package lyrics

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultLineMs is the slot given to untimed lines and to the last line of
// synced lyrics.
const DefaultLineMs = 4000

var timeTagRegex = regexp.MustCompile(`\[(\d+):(\d+)\.(\d+)\]`)

// ParseLRC parses LRC text. Lines without a time tag or without text are
// skipped. The first tag of a line gives its start. Each line ends where the
// next one starts and the last one lastLineMs after its start.
func ParseLRC(lrc string, lastLineMs int64) *Lyrics {
	result := &Lyrics{SyncType: Unsynced}

	for _, raw := range strings.Split(lrc, "\n") {
		tags := timeTagRegex.FindAllStringSubmatch(raw, -1)
		if len(tags) == 0 {
			continue
		}
		if len(tags) > 1 {
			result.SyncType = WordSynced
		} else if result.SyncType == Unsynced {
			result.SyncType = LineSynced
		}

		text := strings.TrimSpace(timeTagRegex.ReplaceAllString(raw, ""))
		if text == "" {
			continue
		}
		result.Lines = append(result.Lines, Line{
			StartTimeMs: tagMs(tags[0]),
			Text:        text,
		})
	}

	Normalize(result, lastLineMs)
	return result
}

// tagMs converts a [mm:ss.ff] match to milliseconds. The fraction is read as
// hundredths for two digits and as a decimal fraction otherwise.
func tagMs(tag []string) int64 {
	minutes, _ := strconv.ParseInt(tag[1], 10, 64)
	seconds, _ := strconv.ParseInt(tag[2], 10, 64)

	frac := tag[3]
	if len(frac) > 3 {
		frac = frac[:3]
	}
	for len(frac) < 3 {
		frac += "0"
	}
	millis, _ := strconv.ParseInt(frac, 10, 64)

	return minutes*60*1000 + seconds*1000 + millis
}

// Normalize sets every end time from the following line's start and gives
// the last line lastLineMs.
func Normalize(l *Lyrics, lastLineMs int64) {
	for i := 0; i < len(l.Lines)-1; i++ {
		l.Lines[i].EndTimeMs = ms(l.Lines[i+1].StartTimeMs)
	}
	if n := len(l.Lines); n > 0 {
		l.Lines[n-1].EndTimeMs = ms(l.Lines[n-1].StartTimeMs + lastLineMs)
	}
}

// FromPlain turns untimed text into lyrics, one lineMs slot per non-blank line.
func FromPlain(text string, lineMs int64) *Lyrics {
	result := &Lyrics{SyncType: Unsynced}
	idx := int64(0)
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		result.Lines = append(result.Lines, Line{
			StartTimeMs: idx * lineMs,
			EndTimeMs:   ms((idx + 1) * lineMs),
			Text:        line,
		})
		idx++
	}
	return result
}

// ActiveLine returns the line playing at ms. Before the first line nothing
// plays; at or past the end of the last line the last line stays on screen.
// A gap between lines yields no line.
func ActiveLine(lines []Line, ms int64) (Line, bool) {
	for _, line := range lines {
		if line.Contains(ms) {
			return line, true
		}
	}
	if len(lines) == 0 || ms < lines[0].StartTimeMs {
		return Line{}, false
	}
	last := lines[len(lines)-1]
	if end, ok := last.End(); ok && ms >= end {
		return last, true
	}
	return Line{}, false
}
