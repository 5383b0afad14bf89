package images

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/jpeg"
	"net/http"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

const previewJPEGQuality = 90

// Previewer turns image bytes into a data URL for immediate display.
type Previewer struct {
	// MaxWidth scales previews down to at most this width. Zero keeps the
	// original bytes.
	MaxWidth int
}

func NewPreviewer(maxWidth int) *Previewer {
	return &Previewer{MaxWidth: maxWidth}
}

// Preview returns a data URL for content. contentType may be empty, in which
// case it is sniffed.
func (p *Previewer) Preview(ctx context.Context, contentType string, content []byte) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if len(content) == 0 {
		return "", fmt.Errorf("empty file")
	}

	if p.MaxWidth > 0 {
		if scaled, err := p.scale(content); err == nil {
			return DataURL("image/jpeg", scaled), nil
		}
	}

	if len(contentType) == 0 {
		contentType = http.DetectContentType(content)
	}

	return DataURL(contentType, content), nil
}

func (p *Previewer) scale(content []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(content), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	if img.Bounds().Dx() > p.MaxWidth {
		img = imaging.Resize(img, p.MaxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: previewJPEGQuality}); err != nil {
		return nil, fmt.Errorf("encode preview: %w", err)
	}

	return buf.Bytes(), nil
}

func DataURL(contentType string, content []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(content))
}
