package main

import (
	"log/slog"
	"testing"
)

func TestNewRootCmdSubcommands(t *testing.T) {
	cmd := NewRootCmd()

	want := []string{"generate", "stopwords", "doctor", "bench"}
	for _, name := range want {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "info", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "WARN", want: slog.LevelWarn},
		{input: "warning", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: " Error ", want: slog.LevelError},
		{input: "verbose", wantErr: true},
	}

	for _, tc := range tests {
		got, err := parseLogLevel(tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("parseLogLevel(%q) = nil error; want error", tc.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseLogLevel(%q) unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("parseLogLevel(%q) = %v; want %v", tc.input, got, tc.want)
		}
	}
}

func TestRequireConfigBeforeLoad(t *testing.T) {
	prev := cfgLoaded
	t.Cleanup(func() { cfgLoaded = prev })

	cfgLoaded = false
	if _, err := requireConfig(); err == nil {
		t.Error("requireConfig() = nil error before load")
	}
}
