package repchart

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	xdraw "golang.org/x/image/draw"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}

// Upscale resizes img by an integer factor with Catmull-Rom interpolation.
// Charts are composed on a logical 100 px/inch canvas and upscaled to the
// full print raster just before saving.
func Upscale(img image.Image, factor int) image.Image {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*factor, b.Dy()*factor))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
	return dst
}

// SavePNG writes img to path as a PNG declaring the given print resolution.
func SavePNG(path string, img image.Image, dpi int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := EncodePNG(f, img, dpi); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// EncodePNG encodes img and stamps a pHYs chunk so the file carries a
// physical resolution. The stdlib encoder never emits pHYs itself, so the
// chunk is spliced in directly after IHDR.
func EncodePNG(w io.Writer, img image.Image, dpi int) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	out, err := withPhys(buf.Bytes(), dpi)
	if err != nil {
		return err
	}
	_, err = w.Write(out)
	return err
}

// withPhys inserts a pHYs chunk after the IHDR chunk of a PNG byte stream.
// Resolution is stored as pixels per metre (unit specifier 1).
func withPhys(raw []byte, dpi int) ([]byte, error) {
	if len(raw) < 33 || !bytes.Equal(raw[:8], pngSignature) {
		return nil, fmt.Errorf("not a PNG stream")
	}
	if string(raw[12:16]) != "IHDR" {
		return nil, fmt.Errorf("unexpected first chunk %q", raw[12:16])
	}
	// IHDR occupies bytes 8..33: length(4) + type(4) + data(13) + crc(4).
	const ihdrEnd = 33

	ppm := uint32(math.Round(float64(dpi) * 1000.0 / 25.4))
	data := make([]byte, 9)
	binary.BigEndian.PutUint32(data[0:4], ppm)
	binary.BigEndian.PutUint32(data[4:8], ppm)
	data[8] = 1 // metre

	chunk := make([]byte, 0, 4+4+9+4)
	var length [4]byte
	binary.BigEndian.PutUint32(length[:], uint32(len(data)))
	chunk = append(chunk, length[:]...)
	chunk = append(chunk, "pHYs"...)
	chunk = append(chunk, data...)
	var crc [4]byte
	binary.BigEndian.PutUint32(crc[:], crc32.ChecksumIEEE(chunk[4:]))
	chunk = append(chunk, crc[:]...)

	out := make([]byte, 0, len(raw)+len(chunk))
	out = append(out, raw[:ihdrEnd]...)
	out = append(out, chunk...)
	out = append(out, raw[ihdrEnd:]...)
	return out, nil
}
