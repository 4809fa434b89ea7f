// Package imageprep normalizes captured images before they are sent to
// the vision model: large photos are downscaled and re-encoded as JPEG,
// then wrapped in a data URL.
package imageprep

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"io"
	"os"

	"github.com/disintegration/imaging"
)

const (
	// vision models don't need more than this; keeping uploads small
	// keeps request latency predictable
	maxDimension = 1280
	jpegQuality  = 85
)

// PrepareFile reads an image from disk and returns it as a JPEG data URL.
func PrepareFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	return Prepare(f)
}

// Prepare decodes an image, fits it into maxDimension on the long side
// and re-encodes it as a base64 JPEG data URL.
func Prepare(r io.Reader) (string, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDimension || bounds.Dy() > maxDimension {
		img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}

	return "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
