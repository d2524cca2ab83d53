// Package stats aggregates completed work sessions into the fixed
// windows the reporting views render: the last 7 days, the last 7
// months, and a 6 month daily heatmap. All functions are pure over
// the record slice, so the same input always yields the same output
// regardless of record order.
package stats

import (
	"time"

	"github.com/sadopc/pomo/internal/session"
)

// Bucket is one slot in a weekly or monthly report. Zero-activity
// slots are still present so charts never have gaps.
type Bucket struct {
	Start   time.Time
	Label   string
	Count   int
	Seconds int64
}

// Day is one cell of the heatmap. Tier 0 means no activity; tiers 1
// through 4 scale Seconds against the busiest day in the window.
type Day struct {
	Date    time.Time
	Count   int
	Seconds int64
	Tier    int
}

const dayKey = "2006-01-02"

// counted reports whether rec contributes to aggregates under the
// given tag filter. Breaks never count; an empty filter matches all.
func counted(rec session.Record, tag string) bool {
	if !rec.IsWork() {
		return false
	}
	return tag == "" || rec.Tag == tag
}

// dayOf truncates a timestamp to its calendar day in the timestamp's
// own location. A session that crosses midnight belongs to the day it
// started on.
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Weekly returns 7 day buckets ending on ref's day, oldest first.
func Weekly(records []session.Record, ref time.Time, tag string) []Bucket {
	buckets := make([]Bucket, 7)
	index := make(map[string]int, 7)
	for i := range buckets {
		day := dayOf(ref).AddDate(0, 0, i-6)
		buckets[i] = Bucket{Start: day, Label: day.Format("Mon")}
		index[day.Format(dayKey)] = i
	}

	for _, rec := range records {
		if !counted(rec, tag) {
			continue
		}
		i, ok := index[dayOf(rec.StartTime).Format(dayKey)]
		if !ok {
			continue
		}
		buckets[i].Count++
		buckets[i].Seconds += rec.Duration
	}
	return buckets
}

// Monthly returns 7 month buckets ending on ref's month, oldest first.
func Monthly(records []session.Record, ref time.Time, tag string) []Bucket {
	buckets := make([]Bucket, 7)
	index := make(map[string]int, 7)
	for i := range buckets {
		month := time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location()).
			AddDate(0, i-6, 0)
		buckets[i] = Bucket{Start: month, Label: month.Format("Jan")}
		index[month.Format("2006-01")] = i
	}

	for _, rec := range records {
		if !counted(rec, tag) {
			continue
		}
		i, ok := index[rec.StartTime.Format("2006-01")]
		if !ok {
			continue
		}
		buckets[i].Count++
		buckets[i].Seconds += rec.Duration
	}
	return buckets
}

// Heatmap returns one Day per calendar day from six months before ref
// through ref inclusive, oldest first.
func Heatmap(records []session.Record, ref time.Time, tag string) []Day {
	first := dayOf(ref).AddDate(0, -6, 0)
	last := dayOf(ref)

	var days []Day
	index := make(map[string]int)
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		index[d.Format(dayKey)] = len(days)
		days = append(days, Day{Date: d})
	}

	var max int64
	for _, rec := range records {
		if !counted(rec, tag) {
			continue
		}
		i, ok := index[dayOf(rec.StartTime).Format(dayKey)]
		if !ok {
			continue
		}
		days[i].Count++
		days[i].Seconds += rec.Duration
		if days[i].Seconds > max {
			max = days[i].Seconds
		}
	}

	for i := range days {
		days[i].Tier = tier(days[i].Seconds, max)
	}
	return days
}

// tier maps a day's work seconds onto 0..4. The bands scale with the
// busiest day so a light week and a heavy month both use the full
// palette.
func tier(seconds, max int64) int {
	if seconds == 0 || max == 0 {
		return 0
	}
	ratio := float64(seconds) / float64(max)
	switch {
	case ratio <= 0.25:
		return 1
	case ratio <= 0.5:
		return 2
	case ratio <= 0.75:
		return 3
	default:
		return 4
	}
}

// Totals sums counted sessions and their seconds, for the summary line.
func Totals(records []session.Record, tag string) (count int, seconds int64) {
	for _, rec := range records {
		if !counted(rec, tag) {
			continue
		}
		count++
		seconds += rec.Duration
	}
	return count, seconds
}
