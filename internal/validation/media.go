package validation

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
)

// MediaConstraints defines validation rules for share attachments
type MediaConstraints struct {
	Kind              string
	AllowedMimeTypes  map[string]bool
	AllowedExtensions map[string]bool
	MaxSize           int64
}

var (
	PhotoConstraints = MediaConstraints{
		Kind: "photo",
		AllowedMimeTypes: map[string]bool{
			"image/jpeg": true,
			"image/png":  true,
			"image/webp": true,
		},
		AllowedExtensions: map[string]bool{
			".jpg":  true,
			".jpeg": true,
			".png":  true,
			".webp": true,
		},
		MaxSize: 10 << 20,
	}

	// Content sniffing reports m4a/aac recordings as video/mp4 or application/octet-stream
	// depending on the container, so both are accepted together with the extension check.
	AudioConstraints = MediaConstraints{
		Kind: "audio",
		AllowedMimeTypes: map[string]bool{
			"audio/mpeg":               true,
			"audio/wave":               true,
			"audio/aiff":               true,
			"video/mp4":                true,
			"application/octet-stream": true,
		},
		AllowedExtensions: map[string]bool{
			".mp3": true,
			".m4a": true,
			".aac": true,
			".wav": true,
		},
		MaxSize: 20 << 20,
	}
)

// ValidateMedia checks an upload against one or more constraint sets and returns
// the set it matched. The file must satisfy at least one.
func ValidateMedia(header *multipart.FileHeader, maxBytes int64, constraints ...MediaConstraints) (MediaConstraints, string, error) {
	if len(constraints) == 0 {
		return MediaConstraints{}, "", fmt.Errorf("no media constraints provided")
	}

	var lastErr error
	for _, c := range constraints {
		if maxBytes > 0 && maxBytes < c.MaxSize {
			c.MaxSize = maxBytes
		}
		contentType, err := validateAgainst(header, c)
		if err == nil {
			return c, contentType, nil
		}
		lastErr = err
	}

	return MediaConstraints{}, "", lastErr
}

func validateAgainst(header *multipart.FileHeader, c MediaConstraints) (string, error) {
	if header.Size > c.MaxSize {
		maxMB := c.MaxSize / (1 << 20)
		return "", fmt.Errorf("file too large: maximum size is %d MB", maxMB)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if !c.AllowedExtensions[ext] {
		return "", fmt.Errorf("invalid file extension: %s", ext)
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// http.DetectContentType reads at most 512 bytes
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	detected := http.DetectContentType(buffer[:n])
	if i := strings.Index(detected, ";"); i >= 0 {
		detected = detected[:i]
	}
	if !c.AllowedMimeTypes[detected] {
		return "", fmt.Errorf("invalid file type (detected: %s)", detected)
	}

	return detected, nil
}
