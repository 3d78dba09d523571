package httpapi

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
)

// maxPhotoEdge bounds the longest edge of an uploaded photo. Phone camera
// originals routinely run 4000px; the backend just stores bytes, so the
// client downscales before the upload.
const maxPhotoEdge = 1600

const jpegQuality = 85

// preparePhoto loads the file at path and downscales oversized JPEG/PNG
// images. Content that does not decode as an image is sent untouched.
// Returns the upload bytes and the filename to send.
func preparePhoto(path string) ([]byte, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read photo: %w", err)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data, filepath.Base(path), nil
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxPhotoEdge && bounds.Dy() <= maxPhotoEdge {
		return data, filepath.Base(path), nil
	}

	scaled := resize.Thumbnail(maxPhotoEdge, maxPhotoEdge, img, resize.Lanczos3)
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, scaled, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, "", fmt.Errorf("encode scaled photo: %w", err)
	}

	base := filepath.Base(path)
	name := strings.TrimSuffix(base, filepath.Ext(base)) + ".jpg"
	return buf.Bytes(), name, nil
}
