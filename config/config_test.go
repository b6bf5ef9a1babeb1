package config

import (
	"strings"
	"testing"
)

func defaults(t *testing.T) *Config {
	t.Helper()
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("loading embedded defaults: %v", err)
	}
	return cfg
}

func TestLoadDefaults(t *testing.T) {
	cfg := defaults(t)

	if cfg.Screen.Width != 1280 || cfg.Screen.Height != 720 {
		t.Errorf("unexpected screen size %dx%d", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Derived.CellW != 64 {
		t.Errorf("CellW = %v, want 64", cfg.Derived.CellW)
	}
	if cfg.Derived.CellH != 60 {
		t.Errorf("CellH = %v, want 60", cfg.Derived.CellH)
	}
	if cfg.Derived.PerimeterSlots != 60 {
		t.Errorf("PerimeterSlots = %d, want 60", cfg.Derived.PerimeterSlots)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantMsg string
	}{
		{
			name:    "width not divisible by cols",
			mutate:  func(c *Config) { c.Grid.Cols = 23 },
			wantMsg: "not divisible",
		},
		{
			name:    "height not divisible by rows",
			mutate:  func(c *Config) { c.Grid.Rows = 11 },
			wantMsg: "not divisible",
		},
		{
			name:    "too many agents for perimeter beds",
			mutate:  func(c *Config) { c.Population.Kinder = 500 },
			wantMsg: "bed allocation impossible",
		},
		{
			name:    "zero speed",
			mutate:  func(c *Config) { c.Population.Speed = 0 },
			wantMsg: "speed",
		},
		{
			name:    "snatch tick past contest end",
			mutate:  func(c *Config) { c.Contest.SnatchTick = 90 },
			wantMsg: "snatch_tick",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaults(t)
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() = nil, want error")
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("error %q does not mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestPerimeterSlots(t *testing.T) {
	tests := []struct {
		rows, cols, want int
	}{
		{12, 20, 60},
		{2, 2, 4},
		{1, 10, 10},
		{10, 1, 10},
		{3, 3, 8},
	}
	for _, tt := range tests {
		if got := perimeterSlots(tt.rows, tt.cols); got != tt.want {
			t.Errorf("perimeterSlots(%d, %d) = %d, want %d", tt.rows, tt.cols, got, tt.want)
		}
	}
}
