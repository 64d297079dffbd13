package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestDemoCommand_PrintsTimeline(t *testing.T) {
	var out bytes.Buffer
	demoCmd.SetOut(&out)
	defer demoCmd.SetOut(nil)

	if err := runDemoCmd(demoCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	for _, want := range []string{
		"Now",
		"Book the cabin (~30m)",
		"Blocked",
		"Pack the car",
		"Done",
		"Do laundry",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, output)
		}
	}
}

func TestGroomCommand_LocalFallback(t *testing.T) {
	t.Setenv("HF_API_KEY", "")

	var out, errOut bytes.Buffer
	groomCmd.SetIn(strings.NewReader("buy milk\nBuy Milk\ncall dentist\n"))
	groomCmd.SetOut(&out)
	groomCmd.SetErr(&errOut)
	groomCmd.SetContext(context.Background())
	defer func() {
		groomCmd.SetIn(nil)
		groomCmd.SetOut(nil)
		groomCmd.SetErr(nil)
	}()

	if err := runGroom(groomCmd, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	output := out.String()
	if !strings.Contains(output, "1. buy milk") {
		t.Errorf("expected numbered task list, got:\n%s", output)
	}
	if !strings.Contains(output, "call dentist") {
		t.Errorf("expected both tasks, got:\n%s", output)
	}
	if !strings.Contains(output, "removed 1 duplicates") {
		t.Errorf("expected duplicate note, got:\n%s", output)
	}
}

func TestGroomCommand_FallbackDisabled(t *testing.T) {
	t.Setenv("HF_API_KEY", "")
	t.Setenv("AI_FALLBACK_ENABLED", "false")

	groomCmd.SetIn(strings.NewReader("buy milk\n"))
	groomCmd.SetOut(new(bytes.Buffer))
	groomCmd.SetErr(new(bytes.Buffer))
	groomCmd.SetContext(context.Background())
	defer func() {
		groomCmd.SetIn(nil)
		groomCmd.SetOut(nil)
		groomCmd.SetErr(nil)
	}()

	if err := runGroom(groomCmd, nil); err == nil {
		t.Fatal("expected error when fallback is disabled without an API key")
	}
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	if !names["groom"] {
		t.Error("expected groom subcommand")
	}
	if !names["demo"] {
		t.Error("expected demo subcommand")
	}
}
