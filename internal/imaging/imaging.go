package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"mime"
	"net/http"
	"strings"

	_ "golang.org/x/image/webp"
)

var (
	ErrEmpty       = errors.New("image is empty")
	ErrUnsupported = errors.New("unsupported image type")
	ErrInvalidData = errors.New("invalid data url")
)

var accepted = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"webp": "image/webp",
}

// Normalize validates an uploaded image and returns its canonical MIME type.
// The declared type is only a hint; the decoder decides.
func Normalize(data []byte, declared string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmpty
	}

	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnsupported, describe(data, declared))
	}

	mimeType, ok := accepted[format]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnsupported, format)
	}
	return mimeType, nil
}

// CleanMimeType strips parameters and falls back to content sniffing.
func CleanMimeType(declared string, data []byte) string {
	mimeType := stripParams(declared)
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = stripParams(http.DetectContentType(data))
	}
	if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = "image/jpeg"
	}
	return mimeType
}

// Family returns the top-level media type, e.g. "image".
func Family(mimeType string) string {
	mimeType = stripParams(mimeType)
	if idx := strings.IndexByte(mimeType, '/'); idx > 0 {
		return mimeType[:idx]
	}
	return mimeType
}

func DataURL(mimeType string, data []byte) string {
	return DataURLBase64(mimeType, base64.StdEncoding.EncodeToString(data))
}

func DataURLBase64(mimeType string, b64 string) string {
	return fmt.Sprintf("data:%s;base64,%s", mimeType, b64)
}

// ParseDataURL decodes a base64 data URL. A bare base64 payload is
// accepted and reported with the fallback MIME type.
func ParseDataURL(value string, fallbackMime string) (string, []byte, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil, ErrInvalidData
	}

	mimeType := fallbackMime
	payload := value
	if strings.HasPrefix(value, "data:") {
		meta, rest, ok := strings.Cut(strings.TrimPrefix(value, "data:"), ",")
		if !ok {
			return "", nil, ErrInvalidData
		}
		metaParts := strings.Split(meta, ";")
		if m := strings.TrimSpace(metaParts[0]); m != "" {
			mimeType = m
		}
		payload = rest
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrInvalidData, err)
	}
	return mimeType, data, nil
}

// Extension picks a file extension for a MIME type.
func Extension(mimeType string) string {
	switch stripParams(mimeType) {
	case "image/png":
		return ".png"
	case "image/jpeg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	}
	if exts, _ := mime.ExtensionsByType(mimeType); len(exts) > 0 {
		return exts[0]
	}
	return ".png"
}

func stripParams(value string) string {
	value = strings.TrimSpace(value)
	if idx := strings.IndexByte(value, ';'); idx >= 0 {
		value = strings.TrimSpace(value[:idx])
	}
	return strings.ToLower(value)
}

func describe(data []byte, declared string) string {
	if d := stripParams(declared); d != "" {
		return d
	}
	return stripParams(http.DetectContentType(data))
}
