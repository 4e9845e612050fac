package sdlui

import "testing"

func TestLooksLikeSVG(t *testing.T) {
	tests := []struct {
		name string
		data string
		want bool
	}{
		{"bare svg", `<svg xmlns="http://www.w3.org/2000/svg"/>`, true},
		{"xml declaration first", "<?xml version=\"1.0\"?>\n<svg/>", true},
		{"leading whitespace", "\n\t <svg/>", true},
		{"comment before root", "<!-- icon -->\n<svg/>", true},
		{"html is not svg", "<html><body/></html>", false},
		{"png magic", "\x89PNG\r\n\x1a\n", false},
		{"empty", "", false},
		{"text mentioning svg", "this is an svg icon", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := looksLikeSVG([]byte(tt.data)); got != tt.want {
				t.Errorf("looksLikeSVG(%q) = %v, want %v", tt.data, got, tt.want)
			}
		})
	}
}

func TestContentKeyStable(t *testing.T) {
	a := contentKey([]byte("icon-bytes"))
	b := contentKey([]byte("icon-bytes"))
	c := contentKey([]byte("other-bytes"))

	if a != b {
		t.Errorf("same content hashed differently: %s vs %s", a, b)
	}
	if a == c {
		t.Errorf("different content collided on %s", a)
	}
}

func TestRasterizeSVG(t *testing.T) {
	const circle = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
		<circle cx="12" cy="12" r="10" fill="#FF0000"/>
	</svg>`

	rgba, err := rasterizeSVG([]byte(circle), 28)
	if err != nil {
		t.Fatalf("rasterizeSVG: %v", err)
	}
	if got := rgba.Bounds().Dx(); got != 28 {
		t.Errorf("width = %d, want 28", got)
	}
	if got := rgba.Bounds().Dy(); got != 28 {
		t.Errorf("height = %d, want 28", got)
	}

	// The shape center must be opaque red, the corners untouched.
	if r, _, _, a := rgba.At(14, 14).RGBA(); r == 0 || a == 0 {
		t.Errorf("center pixel is empty, want filled")
	}
	if _, _, _, a := rgba.At(0, 0).RGBA(); a != 0 {
		t.Errorf("corner pixel alpha = %d, want 0", a)
	}

	if _, err := rasterizeSVG([]byte(`<svg xmlns="x`), 28); err == nil {
		t.Error("rasterizeSVG accepted an unterminated tag")
	}
}
