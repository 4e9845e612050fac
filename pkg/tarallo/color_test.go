package tarallo

import "testing"

func TestBlendColorEndpoints(t *testing.T) {
	a := ARGB(0x00000000)
	b := ARGB(0xFFFFFFFF)
	if got := BlendColor(0, a, b); got != a {
		t.Errorf("BlendColor(0) = %v, want %v", got, a)
	}
	if got := BlendColor(1, a, b); got != b {
		t.Errorf("BlendColor(1) = %v, want %v", got, b)
	}
}

func TestBlendColorTruncatesPerChannel(t *testing.T) {
	a := RGB(0x000000)
	b := RGB(0x0000FF)
	// 0 + 0.5*255 = 127.5, truncated to 127.
	got := BlendColor(0.5, a, b)
	if got.B != 127 {
		t.Errorf("blue channel = %d, want 127", got.B)
	}
	if got.R != 0 || got.G != 0 {
		t.Errorf("untouched channels moved: %v", got)
	}
	if got.A != 255 {
		t.Errorf("alpha = %d, want 255", got.A)
	}
}

func TestBlendColorMidpoint(t *testing.T) {
	a := ARGB(0x00102030)
	b := ARGB(0xFF304050)
	got := BlendColor(0.5, a, b)
	want := Color{A: 127, R: 0x20, G: 0x30, B: 0x40}
	if got != want {
		t.Errorf("BlendColor(0.5) = %v, want %v", got, want)
	}
}

func TestBlendValue(t *testing.T) {
	if got := BlendValue(0.25, 0, 100); got != 25 {
		t.Errorf("BlendValue = %v, want 25", got)
	}
	if got := BlendValue(0.5, 10, 20); got != 15 {
		t.Errorf("BlendValue = %v, want 15", got)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#FFFFFF", Color{A: 0xFF, R: 0xFF, G: 0xFF, B: 0xFF}, false},
		{"#2D6CDF", Color{A: 0xFF, R: 0x2D, G: 0x6C, B: 0xDF}, false},
		{"802D6CDF", Color{A: 0x80, R: 0x2D, G: 0x6C, B: 0xDF}, false},
		{" #000000 ", Color{A: 0xFF}, false},
		{"#FFF", Color{}, true},
		{"#GGGGGG", Color{}, true},
		{"", Color{}, true},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseColor(%q) expected error, got %v", tt.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorWithAlpha(t *testing.T) {
	c := RGB(0x2D6CDF).WithAlpha(0x40)
	if c.A != 0x40 || c.R != 0x2D {
		t.Errorf("WithAlpha = %v", c)
	}
}
