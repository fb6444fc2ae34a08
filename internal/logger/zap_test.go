package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestToZapLevel(t *testing.T) {
	cases := []struct {
		in   string
		want zapcore.Level
	}{
		{InfoLevel, zapcore.InfoLevel},
		{WarnLevel, zapcore.WarnLevel},
		{ErrorLevel, zapcore.ErrorLevel},
		{DebugLevel, zapcore.DebugLevel},
		{"bogus", defaultZapLevel},
	}
	for _, tc := range cases {
		if got := toZapLevel(tc.in); got != tc.want {
			t.Fatalf("toZapLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestNewZapLogger_Formats(t *testing.T) {
	for _, f := range []string{FormatConsole, FormatJSON, "other"} {
		l := newZapLogger(InfoLevel, f)
		if l == nil || l.SugaredLogger == nil {
			t.Fatalf("nil logger for format %q", f)
		}
	}
	if Nop().SugaredLogger == nil {
		t.Fatalf("nop logger must wrap a sugared logger")
	}
}
