package render

import (
	"image/color"
	"testing"

	"github.com/rook-computer/clockicon/internal/render/layout"
)

func TestNewGeometry48(t *testing.T) {
	g := NewGeometry(48)

	if g.Center != layout.Pt(24, 24) {
		t.Errorf("Center = %v, want (24,24)", g.Center)
	}
	if g.Radius != 16 {
		t.Errorf("Radius = %v, want 16", g.Radius)
	}
	if g.TickLength != 1 {
		t.Errorf("TickLength = %v, want 1", g.TickLength)
	}

	wantTicks := [4]Segment{
		{From: layout.Pt(24, 9), To: layout.Pt(24, 8)},
		{From: layout.Pt(39, 24), To: layout.Pt(40, 24)},
		{From: layout.Pt(24, 39), To: layout.Pt(24, 40)},
		{From: layout.Pt(9, 24), To: layout.Pt(8, 24)},
	}
	if g.Ticks != wantTicks {
		t.Errorf("Ticks = %v, want %v", g.Ticks, wantTicks)
	}

	// hour: length 8 at -60°, minute: length 11 at -30°
	if want := (Segment{From: layout.Pt(24, 24), To: layout.Pt(28, 18)}); g.HourHand != want {
		t.Errorf("HourHand = %v, want %v", g.HourHand, want)
	}
	if want := (Segment{From: layout.Pt(24, 24), To: layout.Pt(33, 19)}); g.MinuteHand != want {
		t.Errorf("MinuteHand = %v, want %v", g.MinuteHand, want)
	}
}

func TestStrokeWidths(t *testing.T) {
	tests := []struct {
		size                         int
		rim, tick, hour, minute, dot float64
	}{
		{10, 3, 2, 3, 2, 3},
		{48, 3, 2, 3, 2, 3},
		{72, 3, 2, 3, 2, 3},
		{96, 3, 2, 3, 2, 3},
		{144, 4, 2, 5, 4, 3},
		{192, 6, 3, 7, 5, 4},
		{1024, 34, 20, 40, 29, 25},
	}
	for _, tt := range tests {
		g := NewGeometry(tt.size)
		got := [5]float64{g.RimWidth, g.TickWidth, g.HourWidth, g.MinuteWidth, g.DotRadius}
		want := [5]float64{tt.rim, tt.tick, tt.hour, tt.minute, tt.dot}
		if got != want {
			t.Errorf("NewGeometry(%d) widths = %v, want %v", tt.size, got, want)
		}
	}
}

func TestStrokeWidthFloors(t *testing.T) {
	for size := 1; size <= 256; size++ {
		g := NewGeometry(size)
		if g.RimWidth < 3 || g.TickWidth < 2 || g.HourWidth < 3 || g.MinuteWidth < 2 || g.DotRadius < 3 {
			t.Fatalf("NewGeometry(%d) broke a width floor: %+v", size, g)
		}
	}
}

func TestTicksEndOnRim(t *testing.T) {
	for _, size := range []int{48, 72, 96, 144, 192, 1024} {
		g := NewGeometry(size)
		for i, tick := range g.Ticks {
			if d := tick.To.Sub(g.Center).Len(); d != g.Radius {
				t.Errorf("size %d tick %d ends %v from centre, want %v", size, i, d, g.Radius)
			}
			if d := tick.From.Sub(g.Center).Len(); d != g.Radius-g.TickLength {
				t.Errorf("size %d tick %d starts %v from centre, want %v", size, i, d, g.Radius-g.TickLength)
			}
		}
	}
}

// recordingDrawer logs primitive calls in order.
type recordingDrawer struct {
	canvas
	calls []string
}

func (d *recordingDrawer) FillBackground(c color.Color) {
	d.calls = append(d.calls, "background")
	d.canvas.FillBackground(c)
}

func (d *recordingDrawer) StrokeRing(layout.Point, float64, float64, color.Color) {
	d.calls = append(d.calls, "ring")
}

func (d *recordingDrawer) StrokeLine(_, _ layout.Point, _ float64, _ color.Color) {
	d.calls = append(d.calls, "line")
}

func (d *recordingDrawer) FillCircle(layout.Point, float64, color.Color) {
	d.calls = append(d.calls, "dot")
}

func TestClockFaceDrawOrder(t *testing.T) {
	d := &recordingDrawer{canvas: newCanvas(48, 48)}
	DefaultClockFace().Draw(d)

	want := []string{"background", "ring", "line", "line", "line", "line", "line", "line", "dot"}
	if len(d.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", d.calls, want)
	}
	for i := range want {
		if d.calls[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, d.calls[i], want[i])
		}
	}
}
