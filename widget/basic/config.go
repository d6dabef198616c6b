// SPDX-License-Identifier: Unlicense OR MIT

package basic

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// ImageSource loads a sprite sheet.
type ImageSource func(ctx context.Context) (image.Image, error)

// FontSource loads the font of every text.
type FontSource func(ctx context.Context) (*opentype.Font, error)

// Configuration of a Renderer.
type Configuration struct {
	Sprites ImageSource
	Font    FontSource
	// Logger receives debug information while loading. It
	// defaults to slog.Default.
	Logger *slog.Logger
}

var (
	ErrNoSprites = errors.New("basic: no sprite sheet source")
	ErrNoFont    = errors.New("basic: no font source")
)

// DefaultConfiguration returns a configuration using a sprite sheet
// generated from NewTheme and the Go Regular font.
func DefaultConfiguration() Configuration {
	return Configuration{
		Sprites: ThemeSprites(NewTheme()),
		Font:    FontBytes(goregular.TTF),
	}
}

// ThemeSprites generates the sprite sheet of t.
func ThemeSprites(t *Theme) ImageSource {
	return func(ctx context.Context) (image.Image, error) {
		return t.Sprites(), ctx.Err()
	}
}

// ImageFile decodes a sprite sheet from a PNG file.
func ImageFile(path string) ImageSource {
	return func(ctx context.Context) (image.Image, error) {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("basic: %w", err)
		}
		return ImageBytes(b)(ctx)
	}
}

// ImageBytes decodes a sprite sheet from encoded image data.
func ImageBytes(b []byte) ImageSource {
	return func(ctx context.Context) (image.Image, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("basic: decode sprites: %w", err)
		}
		return img, nil
	}
}

// FontFile parses an OpenType or TrueType font file.
func FontFile(path string) FontSource {
	return func(ctx context.Context) (*opentype.Font, error) {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("basic: %w", err)
		}
		return FontBytes(b)(ctx)
	}
}

// FontBytes parses OpenType or TrueType font data.
func FontBytes(b []byte) FontSource {
	return func(ctx context.Context) (*opentype.Font, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		f, err := opentype.Parse(b)
		if err != nil {
			return nil, fmt.Errorf("basic: parse font: %w", err)
		}
		return f, nil
	}
}
