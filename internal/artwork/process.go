// Package artwork validates and normalizes downloaded cover images before
// they are stored.
package artwork

import (
	"bytes"
	"fmt"
	"image/png"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/gabriel-vasile/mimetype"
)

// MaxWidth is the widest cover stored. SteamGridDB grids are requested at
// 600x900 but the image host occasionally serves larger originals.
const MaxWidth = 600

// Process checks that data is an image and downscales anything wider than
// MaxWidth. Smaller images pass through untouched so repeated syncs store
// byte-identical artwork.
func Process(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty artwork payload")
	}

	kind := mimetype.Detect(data)
	if !strings.HasPrefix(kind.String(), "image/") {
		return nil, fmt.Errorf("unexpected artwork type %s", kind.String())
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode artwork: %w", err)
	}

	if img.Bounds().Dx() <= MaxWidth {
		return data, nil
	}

	resized := imaging.Resize(img, MaxWidth, 0, imaging.Lanczos)

	var buf bytes.Buffer
	if err := png.Encode(&buf, resized); err != nil {
		return nil, fmt.Errorf("failed to encode artwork: %w", err)
	}

	return buf.Bytes(), nil
}
