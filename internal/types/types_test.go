package types

import (
	"testing"
	"time"
)

func TestDirectionSymbol(t *testing.T) {
	tests := []struct {
		direction Direction
		want      string
	}{
		{DirectionUp, "▲"},
		{DirectionDown, "▼"},
		{DirectionFlat, "•"},
	}

	for _, tt := range tests {
		if got := tt.direction.Symbol(); got != tt.want {
			t.Errorf("Direction(%d).Symbol() = %q, want %q", tt.direction, got, tt.want)
		}
	}

	var zero Direction
	if zero.Symbol() != "•" {
		t.Errorf("zero Direction must render flat, got %q", zero.Symbol())
	}
}

func TestDirectionSign(t *testing.T) {
	if got := DirectionUp.Sign(); got != "+" {
		t.Errorf("DirectionUp.Sign() = %q, want %q", got, "+")
	}
	if got := DirectionDown.Sign(); got != "-" {
		t.Errorf("DirectionDown.Sign() = %q, want %q", got, "-")
	}
	if got := DirectionFlat.Sign(); got != "-" {
		t.Errorf("DirectionFlat.Sign() = %q, want %q", got, "-")
	}
}

func TestSnapshotFailed(t *testing.T) {
	ok := &CycleSnapshot{}
	if ok.Failed() {
		t.Error("snapshot without error reports Failed")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{"zero", 0, "0s"},
		{"seconds only", 45 * time.Second, "45s"},
		{"whole minute", time.Minute, "1m"},
		{"minute and seconds", 90 * time.Second, "1m30s"},
		{"whole hour", time.Hour, "1h"},
		{"all units", time.Hour + time.Minute + time.Second, "1h1m1s"},
		{"hours and minutes", 2*time.Hour + 2*time.Minute, "2h2m"},
		{"sub-second rounds", 1500 * time.Millisecond, "2s"},
		{"sub-second rounds down", 1400 * time.Millisecond, "1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatDuration(tt.duration); got != tt.want {
				t.Errorf("FormatDuration(%v) = %q, want %q", tt.duration, got, tt.want)
			}
		})
	}
}
