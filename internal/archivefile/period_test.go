package archivefile

import (
	"testing"
	"time"
)

func TestRoundPeriod_Days(t *testing.T) {
	in := time.Date(2026, 3, 15, 13, 45, 0, 0, time.UTC)
	got := RoundPeriod(in, GranularityDays)
	want := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("RoundPeriod = %v, want %v", got, want)
	}
}

func TestRoundPeriod_Months(t *testing.T) {
	in := time.Date(2026, 3, 15, 13, 45, 0, 0, time.UTC)
	got := RoundPeriod(in, GranularityMonths)
	want := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("RoundPeriod = %v, want %v", got, want)
	}
}

func TestBeginningOfNextMonth(t *testing.T) {
	in := time.Date(2026, 3, 15, 13, 45, 0, 0, time.UTC)
	got := BeginningOfNextMonth(in)
	want := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("BeginningOfNextMonth = %v, want %v", got, want)
	}

	dec := time.Date(2026, 12, 10, 0, 0, 0, 0, time.UTC)
	gotDec := BeginningOfNextMonth(dec)
	wantDec := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	if !gotDec.Equal(wantDec) {
		t.Errorf("BeginningOfNextMonth(dec) = %v, want %v", gotDec, wantDec)
	}
}
