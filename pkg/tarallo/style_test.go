package tarallo

import (
	"math"
	"testing"
)

func styleTestConfig() Config {
	cfg := DefaultConfig()
	cfg.TextSize = 14
	cfg.IconSize = 28
	cfg.ItemPadding = 4
	cfg.InactiveTint = RGB(0x404040)
	cfg.ActiveTint = RGB(0xFFFFFF)
	return cfg
}

func TestStackedAtRest(t *testing.T) {
	cfg := styleTestConfig()
	g := StyleStacked.ItemGeometry(0, cfg, 60)

	if g.IconOffsetY != 0 {
		t.Errorf("IconOffsetY = %v, want 0 at rest", g.IconOffsetY)
	}
	if g.LabelShown {
		t.Error("label shown at fraction 0 without AlwaysShowText")
	}
	if g.IconColor != cfg.InactiveTint {
		t.Errorf("IconColor = %v, want inactive tint", g.IconColor)
	}
}

func TestStackedSelected(t *testing.T) {
	cfg := styleTestConfig()
	g := StyleStacked.ItemGeometry(1, cfg, 60)

	rise := cfg.TextSize / 1.4
	if math.Abs(g.IconOffsetY-(-rise)) > 1e-9 {
		t.Errorf("IconOffsetY = %v, want %v", g.IconOffsetY, -rise)
	}
	if !g.LabelShown {
		t.Error("label hidden at fraction 1")
	}
	if g.LabelSize != cfg.TextSize {
		t.Errorf("LabelSize = %v, want full %v", g.LabelSize, cfg.TextSize)
	}
	if g.LabelColor != cfg.ActiveTint {
		t.Errorf("LabelColor = %v, want active tint", g.LabelColor)
	}
	if g.IconColor != cfg.ActiveTint {
		t.Errorf("IconColor = %v, want active tint", g.IconColor)
	}
}

func TestStackedLabelThreshold(t *testing.T) {
	cfg := styleTestConfig()
	if g := StyleStacked.ItemGeometry(0.2, cfg, 60); g.LabelShown {
		t.Error("label shown at exactly 0.2; threshold is exclusive")
	}
	if g := StyleStacked.ItemGeometry(0.21, cfg, 60); !g.LabelShown {
		t.Error("label hidden at 0.21")
	}
}

func TestStackedAlwaysShowText(t *testing.T) {
	cfg := styleTestConfig()
	cfg.AlwaysShowText = true

	atRest := StyleStacked.ItemGeometry(0, cfg, 60)
	if !atRest.LabelShown {
		t.Error("label hidden at rest with AlwaysShowText")
	}
	if atRest.LabelSize != cfg.TextSize*0.85 {
		t.Errorf("LabelSize = %v, want %v", atRest.LabelSize, cfg.TextSize*0.85)
	}
	if atRest.LabelColor != cfg.InactiveTint {
		t.Errorf("LabelColor = %v, want inactive tint", atRest.LabelColor)
	}
	// The icon keeps its full lift so the permanent label has room.
	if atRest.IconOffsetY != -cfg.TextSize/1.4 {
		t.Errorf("IconOffsetY = %v, want fixed lift", atRest.IconOffsetY)
	}

	selected := StyleStacked.ItemGeometry(1, cfg, 60)
	if selected.LabelSize != cfg.TextSize {
		t.Errorf("selected LabelSize = %v, want %v", selected.LabelSize, cfg.TextSize)
	}
}

func TestSideBySideUnfold(t *testing.T) {
	cfg := styleTestConfig()

	atRest := StyleSideBySide.ItemGeometry(0, cfg, 60)
	if atRest.ContentWidth != cfg.IconSize {
		t.Errorf("ContentWidth = %v, want bare icon %v", atRest.ContentWidth, cfg.IconSize)
	}
	if atRest.IconOffsetX != 0 {
		t.Errorf("IconOffsetX = %v, want centered icon", atRest.IconOffsetX)
	}
	if atRest.LabelShown {
		t.Error("label shown at rest")
	}

	selected := StyleSideBySide.ItemGeometry(1, cfg, 60)
	wantWidth := cfg.IconSize + cfg.ItemPadding + 60
	if selected.ContentWidth != wantWidth {
		t.Errorf("ContentWidth = %v, want %v", selected.ContentWidth, wantWidth)
	}
	// Icon shifts left to make room, label sits to its right.
	if selected.IconOffsetX >= 0 {
		t.Errorf("IconOffsetX = %v, want negative", selected.IconOffsetX)
	}
	if selected.LabelOffsetX <= 0 {
		t.Errorf("LabelOffsetX = %v, want positive", selected.LabelOffsetX)
	}
	// Icon and label ends stay symmetric around the cell center.
	left := selected.IconOffsetX - cfg.IconSize/2
	right := selected.LabelOffsetX + 30
	if math.Abs(-left-right) > 1e-9 {
		t.Errorf("content not centered: left %v right %v", left, right)
	}
}

func TestSideBySideLabelThreshold(t *testing.T) {
	cfg := styleTestConfig()
	if g := StyleSideBySide.ItemGeometry(0.05, cfg, 60); g.LabelShown {
		t.Error("label shown at exactly 0.05; threshold is exclusive")
	}
	if g := StyleSideBySide.ItemGeometry(0.06, cfg, 60); !g.LabelShown {
		t.Error("label hidden at 0.06")
	}
}

func TestSideBySideAlwaysShowTextAlpha(t *testing.T) {
	cfg := styleTestConfig()
	cfg.AlwaysShowText = true

	atRest := StyleSideBySide.ItemGeometry(0, cfg, 60)
	if !atRest.LabelShown {
		t.Error("label hidden at rest with AlwaysShowText")
	}
	// Alpha dims to 30% while folded.
	if want := uint8(float64(cfg.InactiveTint.A) * 0.3); atRest.LabelColor.A != want {
		t.Errorf("label alpha = %d, want %d", atRest.LabelColor.A, want)
	}

	selected := StyleSideBySide.ItemGeometry(1, cfg, 60)
	if selected.LabelColor.A != cfg.ActiveTint.A {
		t.Errorf("selected label alpha = %d, want %d", selected.LabelColor.A, cfg.ActiveTint.A)
	}
}

func TestStyleNames(t *testing.T) {
	if StyleStacked.Name() != "stacked" {
		t.Errorf("StyleStacked.Name() = %q", StyleStacked.Name())
	}
	if StyleSideBySide.Name() != "side_by_side" {
		t.Errorf("StyleSideBySide.Name() = %q", StyleSideBySide.Name())
	}
}
