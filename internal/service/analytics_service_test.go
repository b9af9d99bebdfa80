package service

import (
	"mindmate_backend/internal/model"
	"testing"
	"time"
)

func TestPercentChange(t *testing.T) {
	cases := []struct {
		current, previous int64
		want              string
	}{
		{0, 0, "0%"},
		{5, 0, "+100%"},
		{10, 5, "+100.0%"},
		{5, 10, "-50.0%"},
		{7, 7, "+0.0%"},
	}

	for _, tc := range cases {
		if got := PercentChange(tc.current, tc.previous); got != tc.want {
			t.Errorf("PercentChange(%d, %d) = %q, want %q", tc.current, tc.previous, got, tc.want)
		}
	}
}

func TestDistributionPercentages(t *testing.T) {
	buckets := []model.MoodBucket{
		{Mood: "happy", Count: 3},
		{Mood: "sad", Count: 1},
	}

	out := DistributionPercentages(buckets)
	if out[0].Percentage != 75 || out[1].Percentage != 25 {
		t.Errorf("percentages = %d/%d, want 75/25", out[0].Percentage, out[1].Percentage)
	}

	// input must not be mutated
	if buckets[0].Percentage != 0 {
		t.Error("DistributionPercentages mutated its input")
	}
}

func TestDistributionPercentagesZeroTotal(t *testing.T) {
	out := DistributionPercentages([]model.MoodBucket{{Mood: "happy"}, {Mood: "sad"}})
	for _, b := range out {
		if b.Percentage != 0 {
			t.Errorf("bucket %q percentage = %d, want 0", b.Mood, b.Percentage)
		}
	}
}

func TestFillDailySeries(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC) // a Sunday

	points := []model.TrendPoint{
		{Date: "2025-06-15", Value: 4},
		{Date: "2025-06-13T00:00:00Z", Value: 2}, // time suffix gets trimmed
	}

	out := FillDailySeries(points, now, 7)
	if len(out) != 7 {
		t.Fatalf("got %d points, want 7", len(out))
	}

	// oldest first, ending today
	if out[0].Date != "Mon" || out[6].Date != "Sun" {
		t.Errorf("weekday labels wrong: first %q last %q", out[0].Date, out[6].Date)
	}
	if out[6].Value != 4 {
		t.Errorf("today's value = %d, want 4", out[6].Value)
	}
	if out[4].Value != 2 {
		t.Errorf("friday's value = %d, want 2", out[4].Value)
	}
	if out[0].Value != 0 || out[1].Value != 0 {
		t.Error("missing days should be zero filled")
	}
}
