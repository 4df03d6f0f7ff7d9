package repchart

import (
	"bytes"
	"encoding/binary"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

func TestEncodePNG_CarriesPhysChunk(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	var buf bytes.Buffer
	if err := EncodePNG(&buf, img, 300); err != nil {
		t.Fatalf("encode: %v", err)
	}
	raw := buf.Bytes()
	// pHYs sits right after IHDR: length at 33..37, type at 37..41.
	if string(raw[37:41]) != "pHYs" {
		t.Fatalf("expected pHYs after IHDR, got %q", raw[37:41])
	}
	ppm := binary.BigEndian.Uint32(raw[41:45])
	if ppm != 11811 { // 300 dpi in pixels per metre
		t.Fatalf("x density %d ppm, want 11811", ppm)
	}
	if raw[49] != 1 {
		t.Fatalf("unit specifier %d, want 1 (metre)", raw[49])
	}
	// The stdlib decoder checks every chunk CRC; a clean decode validates ours.
	decoded, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("decode after pHYs splice: %v", err)
	}
	if decoded.Bounds() != img.Bounds() {
		t.Fatalf("bounds changed: %v", decoded.Bounds())
	}
}

func TestSavePNG_WritesFile(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	path := filepath.Join(t.TempDir(), "out.png")
	if err := SavePNG(path, img, 300); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if _, err := png.Decode(bytes.NewReader(raw)); err != nil {
		t.Fatalf("saved file not a valid PNG: %v", err)
	}
}

func TestUpscale_Factor(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 30))
	big := Upscale(img, 3)
	if b := big.Bounds(); b.Dx() != 120 || b.Dy() != 90 {
		t.Fatalf("upscaled bounds %v", b)
	}
	if same := Upscale(img, 1); same != image.Image(img) {
		t.Fatalf("factor 1 should return the input unchanged")
	}
}

func TestWithPhys_RejectsGarbage(t *testing.T) {
	if _, err := withPhys([]byte("not a png at all, definitely"), 300); err == nil {
		t.Fatalf("expected error for non-PNG input")
	}
}
