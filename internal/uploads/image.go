package uploads

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// maxDimension caps the longer side of stored images.
const maxDimension = 1920

// jpegQuality is the fixed re-encode quality factor.
const jpegQuality = 85

var formatByMime = map[string]imaging.Format{
	"image/jpeg": imaging.JPEG,
	"image/png":  imaging.PNG,
	"image/gif":  imaging.GIF,
}

// optimizeImage decodes, downsizes (preserving aspect ratio) and re-encodes
// an uploaded image in its original format. Decoding converts indexed and
// alpha color modes to truecolor NRGBA. Formats we cannot encode again
// (webp) are reported as an error so the caller keeps the original bytes.
func optimizeImage(data []byte, contentType string) ([]byte, error) {
	format, ok := formatByMime[contentType]
	if !ok {
		return nil, fmt.Errorf("no encoder for %s", contentType)
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	bounds := img.Bounds()
	if bounds.Dx() > maxDimension || bounds.Dy() > maxDimension {
		img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
	}
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, img, format, imaging.JPEGQuality(jpegQuality)); err != nil {
		return nil, fmt.Errorf("encode image: %w", err)
	}
	return buf.Bytes(), nil
}
