// file: internals/helpers/photo.go
package helper

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"time"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	photoMaxDim     = 512 // foto santri dipakai kecil, cukup 512px sisi terpanjang
	photoQuality    = 80
	photoUploadDir  = "uploads/photos"
	photoURLPattern = "/uploads/photos/%s"
)

// SaveStudentPhoto decode JPEG/PNG, kecilkan, encode WebP, simpan ke disk.
// Return path publik yang disimpan di kolom foto santri.
func SaveStudentPhoto(fileHeader *multipart.FileHeader) (string, error) {
	src, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("gagal membuka file foto: %w", err)
	}
	defer src.Close()

	img, _, err := image.Decode(src)
	if err != nil {
		return "", fmt.Errorf("format foto tidak dikenal: %w", err)
	}

	img = imaging.Fit(img, photoMaxDim, photoMaxDim, imaging.Lanczos)

	buf := new(bytes.Buffer)
	if err := webp.Encode(buf, img, &webp.Options{Lossless: false, Quality: photoQuality}); err != nil {
		return "", fmt.Errorf("gagal encode webp: %w", err)
	}

	if err := os.MkdirAll(photoUploadDir, 0o755); err != nil {
		return "", fmt.Errorf("gagal membuat folder upload: %w", err)
	}

	filename := generatePhotoFilename(fileHeader.Filename)
	if err := os.WriteFile(filepath.Join(photoUploadDir, filename), buf.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("gagal menyimpan foto: %w", err)
	}

	return fmt.Sprintf(photoURLPattern, filename), nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)

func generatePhotoFilename(original string) string {
	base := unsafeFilenameChars.ReplaceAllString(filepath.Base(original), "_")
	ext := filepath.Ext(base)
	name := base[:len(base)-len(ext)]
	if name == "" {
		name = "foto"
	}
	return fmt.Sprintf("%s-%s-%s.webp", time.Now().Format("20060102"), uuid.New().String(), name)
}
