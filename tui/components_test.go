package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/crask/mote/core"
)

func TestStatusBarRender(t *testing.T) {
	bar := newStatusBar(Theme{})
	bar.Resize(core.Size{Width: 60})
	bar.SetFileName("notes.txt")
	bar.SetStatus(core.DocumentStatus{LineCount: 12, Position: core.Position{Row: 4}, Modified: true})

	out := bar.Render()
	if !strings.Contains(out, "notes.txt") {
		t.Fatalf("missing file name: %q", out)
	}
	if !strings.Contains(out, "(modified)") {
		t.Fatalf("missing modified marker: %q", out)
	}
	if !strings.Contains(out, "5/12") {
		t.Fatalf("missing position indicator: %q", out)
	}
}

func TestStatusBarDefaultFileName(t *testing.T) {
	bar := newStatusBar(Theme{})
	bar.Resize(core.Size{Width: 40})
	bar.SetFileName("")

	if out := bar.Render(); !strings.Contains(out, "[No Name]") {
		t.Fatalf("unnamed buffer label missing: %q", out)
	}
}

func TestMessageBarErrorTakesOverMessage(t *testing.T) {
	bar := newMessageBar(Theme{})
	bar.Resize(core.Size{Width: 40})

	bar.SetMessage("saved")
	bar.SetError(errors.New("disk full"))

	out := bar.Render()
	if !strings.Contains(out, "disk full") {
		t.Fatalf("missing error text: %q", out)
	}
	if strings.Contains(out, "saved") {
		t.Fatalf("stale message still rendered: %q", out)
	}

	bar.Clear()
	if out := strings.TrimSpace(bar.Render()); out != "" {
		t.Fatalf("cleared bar should be blank, got %q", out)
	}
}

func TestCommandBarPrompt(t *testing.T) {
	bar := newCommandBar(Theme{})
	bar.Resize(core.Size{Width: 40})

	if bar.Active() {
		t.Fatal("fresh command bar should be inactive")
	}

	bar.SetPrompt("Search: ", "needle", "2/5")
	if !bar.Active() {
		t.Fatal("bar with a prompt should be active")
	}

	out := bar.Render()
	if !strings.Contains(out, "Search: needle") {
		t.Fatalf("missing prompt and value: %q", out)
	}
	if !strings.Contains(out, "2/5") {
		t.Fatalf("missing hint: %q", out)
	}

	bar.Clear()
	if bar.Active() {
		t.Fatal("cleared bar should be inactive")
	}
}
