// Package imaging converts uploaded photo bytes into a representation the
// feed can render inline.
package imaging

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	// ErrTooLarge indicates the uploaded photo exceeds the configured size limit.
	ErrTooLarge = errors.New("image exceeds size limit")

	// ErrEmpty indicates the upload contained no bytes at all.
	ErrEmpty = errors.New("image is empty")
)

// Encoded is an inline-renderable representation of an uploaded photo.
type Encoded struct {
	DataURL     string // data:<mime>;base64,<payload>
	ContentType string // Sniffed MIME type
	Size        int64  // Original payload size in bytes
}

// Encode reads the photo from r, capped at maxBytes, sniffs its content
// type and returns a base64 data-URL. The encoding is lossless: decoding
// the payload yields exactly the uploaded bytes, so display quality is
// never degraded.
func Encode(r io.Reader, maxBytes int64) (*Encoded, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	if int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("%w (max %d bytes)", ErrTooLarge, maxBytes)
	}
	if len(data) == 0 {
		return nil, ErrEmpty
	}

	contentType := http.DetectContentType(data)

	return &Encoded{
		DataURL:     fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data)),
		ContentType: contentType,
		Size:        int64(len(data)),
	}, nil
}
