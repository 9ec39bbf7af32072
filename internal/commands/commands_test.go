package commands

import (
	"errors"
	"flag"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		line   string
		args   []string
		wantOK bool
	}{
		{"cmd grid --show", []string{"grid", "--show"}, true},
		{"cmd    reset  ", []string{"reset"}, true},
		{"cmd ", nil, true},
		{"hello there", nil, false},
		{"CMD grid", nil, false},
	}
	for _, tc := range tests {
		args, ok := Parse(tc.line)
		if ok != tc.wantOK || strings.Join(args, ",") != strings.Join(tc.args, ",") {
			t.Errorf("Parse(%q) = %v, %v; want %v, %v", tc.line, args, ok, tc.args, tc.wantOK)
		}
	}
}

func TestExecute_Toggle(t *testing.T) {
	r := NewRegistry()
	var state []bool
	r.Register("grid", "show/hide grid", Toggle("show", "hide", func(v bool) error {
		state = append(state, v)
		return nil
	}))

	if err := r.Execute([]string{"grid", "--show"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if err := r.Execute([]string{"grid", "--hide"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(state) != 2 || !state[0] || state[1] {
		t.Errorf("Expected [true false], got %v (flags leaked between runs?)", state)
	}
	if err := r.Execute([]string{"grid"}); err == nil {
		t.Error("Expected error without a flag")
	}
	if err := r.Execute([]string{"grid", "--show", "--hide"}); err == nil {
		t.Error("Expected error with both flags")
	}
}

func TestExecute_Errors(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("boom")
	r.Register("fail", "always fails", func(*flag.FlagSet) func([]string) error {
		return func([]string) error { return boom }
	})

	if err := r.Execute(nil); err == nil {
		t.Error("Expected error for missing subcommand")
	}
	if err := r.Execute([]string{"nope"}); err == nil || !strings.Contains(err.Error(), "unknown command") {
		t.Errorf("Expected unknown command error, got %v", err)
	}
	if err := r.Execute([]string{"fail"}); !errors.Is(err, boom) {
		t.Errorf("Expected command error, got %v", err)
	}
	if err := r.Execute([]string{"fail", "--bogus"}); err == nil {
		t.Error("Expected flag parse error")
	}
}

func TestExecute_PositionalArgs(t *testing.T) {
	r := NewRegistry()
	var got []string
	r.Register("echo", "echo args", func(*flag.FlagSet) func([]string) error {
		return func(args []string) error {
			got = args
			return nil
		}
	})
	if err := r.Execute([]string{"echo", "a", "b"}); err != nil {
		t.Fatal(err)
	}
	if strings.Join(got, " ") != "a b" {
		t.Errorf("Expected positional args [a b], got %v", got)
	}
}

func TestHelp(t *testing.T) {
	r := NewRegistry()
	noop := func(*flag.FlagSet) func([]string) error { return func([]string) error { return nil } }
	r.Register("reset", "reset camera", noop)
	r.Register("grid", "toggle grid", noop)

	help := r.Help()
	if len(help) != 2 || help[0] != "grid: toggle grid" || help[1] != "reset: reset camera" {
		t.Errorf("Unexpected help %v", help)
	}
}
