package level

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestOrdering(t *testing.T) {
	ordered := []Level{Trace, Debug, Info, Warn, Error, Fatal, Off}
	for i := 1; i < len(ordered); i++ {
		if ordered[i-1] >= ordered[i] {
			t.Errorf("expected %v < %v", ordered[i-1], ordered[i])
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Level
		ok   bool
	}{
		{"trace", Trace, true},
		{"TRACE", Trace, true},
		{"Debug", Debug, true},
		{"info", Info, true},
		{"warn", Warn, true},
		{"warning", Warn, true},
		{"ERROR", Error, true},
		{"fatal", Fatal, true},
		{"off", Off, true},
		{"OFF", Off, true},
		{"  info  ", Info, true},
		{"verbose", Info, false},
		{"", Info, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			if ok != tt.ok {
				t.Fatalf("Parse(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, l := range []Level{Trace, Debug, Info, Warn, Error, Fatal, Off} {
		got, ok := Parse(l.String())
		if !ok || got != l {
			t.Errorf("Parse(%q) = %v, %v; want %v", l.String(), got, ok, l)
		}
	}
}

func TestEnabled(t *testing.T) {
	tests := []struct {
		msg  Level
		min  Level
		want bool
	}{
		{Debug, Trace, true},
		{Debug, Debug, true},
		{Debug, Info, false},
		{Fatal, Error, true},
		{Fatal, Off, false},
		{Off, Trace, false},
		{Trace, Trace, true},
	}

	for _, tt := range tests {
		if got := tt.msg.Enabled(tt.min); got != tt.want {
			t.Errorf("%v.Enabled(%v) = %v, want %v", tt.msg, tt.min, got, tt.want)
		}
	}
}

func TestZapMapping(t *testing.T) {
	tests := []struct {
		in   Level
		want zapcore.Level
	}{
		{Trace, zapcore.DebugLevel},
		{Debug, zapcore.DebugLevel},
		{Info, zapcore.InfoLevel},
		{Warn, zapcore.WarnLevel},
		{Error, zapcore.ErrorLevel},
		{Fatal, zapcore.FatalLevel},
	}

	for _, tt := range tests {
		if got := tt.in.Zap(); got != tt.want {
			t.Errorf("%v.Zap() = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTextMarshalling(t *testing.T) {
	b, err := Warn.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if string(b) != "WARN" {
		t.Errorf("MarshalText = %q, want WARN", b)
	}

	var l Level
	if err := l.UnmarshalText([]byte("trace")); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if l != Trace {
		t.Errorf("UnmarshalText = %v, want Trace", l)
	}

	if err := l.UnmarshalText([]byte("loud")); err == nil {
		t.Error("UnmarshalText should fail for unknown level name")
	}
}
