package core

import (
	"testing"
	"time"
)

func TestTickDuration(t *testing.T) {
	tests := []struct {
		rate int
		want time.Duration
	}{
		{60, time.Second / 60},
		{30, time.Second / 30},
		{0, time.Second / 60},
		{-5, time.Second / 60},
	}

	for _, tc := range tests {
		cfg := RuntimeConfig{TickRate: tc.rate}
		if got := cfg.TickDuration(); got != tc.want {
			t.Errorf("TickDuration() with rate %d = %v, expected %v", tc.rate, got, tc.want)
		}
	}
}
