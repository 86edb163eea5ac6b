package service

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// ErrNotImage marks an upload whose payload could not be decoded as an image.
var ErrNotImage = errors.New("payload is not a valid image")

const thumbnailWidth = 320

// SaveRecipeImage decodes the upload, re-encodes it as JPEG under
// mediaRoot/recipes and returns the path relative to mediaRoot.
func SaveRecipeImage(src io.Reader, mediaRoot string) (string, error) {
	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", ErrNotImage
	}

	dir := filepath.Join(mediaRoot, "recipes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("SaveRecipeImage: %w", err)
	}

	name := uuid.NewString() + ".jpg"
	if err := imaging.Save(img, filepath.Join(dir, name)); err != nil {
		return "", fmt.Errorf("SaveRecipeImage: %w", err)
	}
	return filepath.ToSlash(filepath.Join("recipes", name)), nil
}

// GenerateThumbnail writes a fixed-width thumbnail next to the stored image.
// It runs on the worker pool, so failures are logged rather than returned.
func GenerateThumbnail(mediaRoot, imagePath string) {
	full := filepath.Join(mediaRoot, filepath.FromSlash(imagePath))
	img, err := imaging.Open(full)
	if err != nil {
		log.Printf("thumbnail: open %s: %v", imagePath, err)
		return
	}
	thumb := imaging.Resize(img, thumbnailWidth, 0, imaging.Lanczos)
	out := strings.TrimSuffix(full, filepath.Ext(full)) + ".thumb.jpg"
	if err := imaging.Save(thumb, out); err != nil {
		log.Printf("thumbnail: save %s: %v", out, err)
	}
}
