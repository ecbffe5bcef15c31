package tracker

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/balkashynov/shiftr/internal/models"
)

// Registry is the ordered list of recorded breaks. Operations return a new
// Registry and leave the receiver untouched, so a failed add or edit can
// never leave a half-applied change behind.
type Registry struct {
	breaks []models.BreakInterval
}

// EditState tracks the one break currently being edited. Only the ID is
// authoritative; Start and End are the seeded form values.
type EditState struct {
	ID    int64
	Start string
	End   string
}

// NewRegistry copies breaks into a registry, preserving their order. The
// breaks are taken as given; run loaded data through SanitizeBreaks first.
func NewRegistry(breaks []models.BreakInterval) Registry {
	return Registry{breaks: append([]models.BreakInterval(nil), breaks...)}
}

// SanitizeBreaks re-validates breaks read back from a store. Entries with
// missing or unparseable times, an end before the start, or an id already
// seen are dropped. Kept entries get normalised times and a duration
// recomputed from them.
func SanitizeBreaks(breaks []models.BreakInterval) (kept, dropped []models.BreakInterval) {
	seen := make(map[int64]bool, len(breaks))
	kept = make([]models.BreakInterval, 0, len(breaks))
	for _, b := range breaks {
		start, end, minutes, err := validateInterval(b.Start, b.End)
		if err != nil || seen[b.ID] {
			dropped = append(dropped, b)
			continue
		}
		seen[b.ID] = true
		b.Start, b.End, b.DurationMinutes = start, end, minutes
		kept = append(kept, b)
	}
	return kept, dropped
}

// Len returns the number of stored breaks across all dates
func (r Registry) Len() int {
	return len(r.breaks)
}

// All returns a copy of every break in insertion order
func (r Registry) All() []models.BreakInterval {
	return append([]models.BreakInterval{}, r.breaks...)
}

// Get looks a break up by id
func (r Registry) Get(id int64) (models.BreakInterval, bool) {
	i := r.indexOf(id)
	if i < 0 {
		return models.BreakInterval{}, false
	}
	return r.breaks[i], true
}

// AddBreak validates and appends a new break on date. The id is derived from
// now and bumped past the largest existing id so it stays unique.
func (r Registry) AddBreak(start, end, date string, now time.Time) (Registry, models.BreakInterval, error) {
	start, end, minutes, err := validateInterval(start, end)
	if err != nil {
		return r, models.BreakInterval{}, err
	}

	b := models.BreakInterval{
		ID:              r.nextID(now),
		Date:            date,
		Start:           start,
		End:             end,
		DurationMinutes: minutes,
	}

	next := make([]models.BreakInterval, len(r.breaks), len(r.breaks)+1)
	copy(next, r.breaks)
	return Registry{breaks: append(next, b)}, b, nil
}

// DeleteBreak drops the break with id. Unknown ids are ignored.
func (r Registry) DeleteBreak(id int64) Registry {
	next := make([]models.BreakInterval, 0, len(r.breaks))
	for _, b := range r.breaks {
		if b.ID != id {
			next = append(next, b)
		}
	}
	return Registry{breaks: next}
}

// BeginEdit seeds an edit from the stored break. ok is false if id is unknown.
func (r Registry) BeginEdit(id int64) (EditState, bool) {
	b, ok := r.Get(id)
	if !ok {
		return EditState{}, false
	}
	return EditState{ID: b.ID, Start: b.Start, End: b.End}, true
}

// SaveEdit replaces the start, end and duration of the edited break in place.
// ID and Date are kept.
func (r Registry) SaveEdit(edit EditState, start, end string) (Registry, error) {
	start, end, minutes, err := validateInterval(start, end)
	if err != nil {
		return r, err
	}

	i := r.indexOf(edit.ID)
	if i < 0 {
		return r, fmt.Errorf("%w: #%d", ErrBreakNotFound, edit.ID)
	}

	next := r.All()
	next[i].Start = start
	next[i].End = end
	next[i].DurationMinutes = minutes
	return Registry{breaks: next}, nil
}

// ListForDate returns the breaks on date ordered by start time
func (r Registry) ListForDate(date string) []models.BreakInterval {
	var out []models.BreakInterval
	for _, b := range r.breaks {
		if b.Date == date {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return startOffset(out[i]) < startOffset(out[j])
	})
	return out
}

// TotalMinutes sums every stored break regardless of date
func (r Registry) TotalMinutes() Minutes {
	return breakMinutes(r.breaks)
}

// TotalMinutesForDate sums the breaks recorded on date
func (r Registry) TotalMinutesForDate(date string) Minutes {
	return breakMinutesOn(r.breaks, date)
}

func (r Registry) indexOf(id int64) int {
	for i, b := range r.breaks {
		if b.ID == id {
			return i
		}
	}
	return -1
}

func (r Registry) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	for _, b := range r.breaks {
		if b.ID >= id {
			id = b.ID + 1
		}
	}
	return id
}

// validateInterval checks a start/end pair and returns them normalised to
// HH:MM:SS together with the whole-minute duration. Equal times are a valid
// zero-length break.
func validateInterval(start, end string) (string, string, int, error) {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return "", "", 0, ErrMissingField
	}

	s, err := ParseTimeOfDay(start)
	if err != nil {
		return "", "", 0, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return "", "", 0, fmt.Errorf("%w: %v", ErrInvalidInterval, err)
	}
	if e < s {
		return "", "", 0, fmt.Errorf("%w: end %s is before start %s", ErrInvalidInterval, formatOffset(e), formatOffset(s))
	}

	return formatOffset(s), formatOffset(e), int((e - s) / time.Minute), nil
}

// startOffset orders breaks by time of day. Unparseable values sort last.
func startOffset(b models.BreakInterval) time.Duration {
	d, err := ParseTimeOfDay(b.Start)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}
