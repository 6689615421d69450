package render

import (
	"bufio"
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
)

// DecodePNG reads a PNG stream.
func DecodePNG(r io.Reader) (image.Image, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("render: decode png: %w", err)
	}
	return img, nil
}

// DecodePNGLimit reads a PNG stream after checking its header: images with
// more than maxPixels pixels fail with ErrImageTooLarge before any pixel
// buffer is allocated. maxPixels <= 0 disables the check.
func DecodePNGLimit(r io.Reader, maxPixels int) (image.Image, error) {
	if maxPixels <= 0 {
		return DecodePNG(r)
	}
	var head bytes.Buffer
	cfg, err := png.DecodeConfig(io.TeeReader(r, &head))
	if err != nil {
		return nil, fmt.Errorf("render: decode png: %w", err)
	}
	if cfg.Width*cfg.Height > maxPixels {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrImageTooLarge, cfg.Width, cfg.Height, maxPixels)
	}
	return DecodePNG(io.MultiReader(&head, r))
}

// EncodePNG writes img as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	if img == nil {
		return ErrNilImage
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// LoadPNG opens and decodes the PNG at path.
func LoadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	defer f.Close()
	return DecodePNG(bufio.NewReader(f))
}

// SavePNG encodes img to path, truncating any existing file.
func SavePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("render: %w", cerr)
		}
	}()
	w := bufio.NewWriter(f)
	if err = EncodePNG(w, img); err != nil {
		return err
	}
	return w.Flush()
}
