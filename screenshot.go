package easel

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// jpegQuality is the quality of .jpg screenshots.
const jpegQuality = 90

// Screenshot saves the canvas as it will look after the next Refresh. The
// format follows the extension of path: .jpg/.jpeg for JPEG, PNG otherwise.
// A path without extension gets ".png" appended. The written path is returned.
func (s *Session) Screenshot(path string) (string, error) {
	if err := s.check(); err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		path += ".png"
		ext = ".png"
	}
	if s.canvas.dirty {
		if _, err := s.canvas.render(); err != nil {
			return "", err
		}
		// rendered but not yet shown
		s.canvas.dirty = true
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("easel: screenshot: %w", err)
	}
	switch ext {
	case ".jpg", ".jpeg":
		err = s.canvas.ctx.EncodeJPEG(f, jpegQuality)
	default:
		err = s.canvas.ctx.EncodePNG(f)
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return "", fmt.Errorf("easel: screenshot %s: %w", path, err)
	}
	Logger().Debug("easel: screenshot saved", "path", path)
	return path, nil
}
