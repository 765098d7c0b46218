package easel

import (
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	"github.com/gogpu/gg"
	_ "golang.org/x/image/bmp"  // BMP decoder
	_ "golang.org/x/image/webp" // WebP decoder
)

// loadImage decodes the file at path once per canvas. Later calls with the
// same path reuse the decoded buffer until ClearAll.
func (c *canvas) loadImage(path string) (*gg.ImageBuf, error) {
	if buf, ok := c.images[path]; ok {
		return buf, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("easel: load image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("easel: decode image %s: %w", path, err)
	}
	buf := gg.ImageBufFromImage(img)
	c.images[path] = buf
	Logger().Debug("easel: image loaded", "path", path, "format", format,
		"width", buf.Width(), "height", buf.Height())
	return buf, nil
}
