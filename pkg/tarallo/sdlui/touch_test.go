package sdlui

import "testing"

func TestAbsAxisScale(t *testing.T) {
	tests := []struct {
		name string
		axis absAxis
		raw  int32
		span float64
		want float64
	}{
		{"minimum maps to zero", absAxis{0, 4095}, 0, 640, 0},
		{"maximum maps to span", absAxis{0, 4095}, 4095, 640, 640},
		{"midpoint", absAxis{0, 4096}, 2048, 640, 320},
		{"offset range", absAxis{100, 1100}, 600, 480, 240},
		{"no range passes raw through", absAxis{0, 0}, 123, 640, 123},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.axis.scale(tt.raw, tt.span)
			if got != tt.want {
				t.Errorf("scale(%d, %v) = %v, want %v", tt.raw, tt.span, got, tt.want)
			}
		})
	}
}

func TestFrameKind(t *testing.T) {
	tests := []struct {
		name     string
		down     bool
		edge     bool
		touched  bool
		wantKind PointerKind
		wantOK   bool
	}{
		{"touch begins", true, true, true, PointerDown, true},
		{"touch begins without coordinates yet", true, true, false, PointerDown, true},
		{"touch ends", false, true, false, PointerUp, true},
		{"motion while down", true, false, true, PointerMove, true},
		{"empty frame while down", true, false, false, 0, false},
		{"empty frame while up", false, false, false, 0, false},
		{"stray coordinates while up", false, false, true, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := frameKind(tt.down, tt.edge, tt.touched)
			if ok != tt.wantOK {
				t.Fatalf("frameKind(%v, %v, %v) ok = %v, want %v",
					tt.down, tt.edge, tt.touched, ok, tt.wantOK)
			}
			if ok && kind != tt.wantKind {
				t.Errorf("frameKind(%v, %v, %v) = %v, want %v",
					tt.down, tt.edge, tt.touched, kind, tt.wantKind)
			}
		})
	}
}
