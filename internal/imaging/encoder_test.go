package imaging

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// pngHeader is the 8-byte PNG signature followed by padding so the sniffer
// has enough to work with.
var pngHeader = append([]byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 24)...)

func TestEncode_SniffsPNG(t *testing.T) {
	encoded, err := Encode(bytes.NewReader(pngHeader), 1<<20)
	require.NoError(t, err)

	require.Equal(t, "image/png", encoded.ContentType)
	require.True(t, strings.HasPrefix(encoded.DataURL, "data:image/png;base64,"))
	require.Equal(t, int64(len(pngHeader)), encoded.Size)
}

func TestEncode_IsLossless(t *testing.T) {
	payload := []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00, 0x01, 0x02, 0x03}

	encoded, err := Encode(bytes.NewReader(payload), 1<<20)
	require.NoError(t, err)

	_, b64, found := strings.Cut(encoded.DataURL, ";base64,")
	require.True(t, found)

	decoded, err := base64.StdEncoding.DecodeString(b64)
	require.NoError(t, err)
	require.Equal(t, payload, decoded, "decoding the data-URL must yield the original bytes")
}

func TestEncode_UnknownPayloadStillEncodes(t *testing.T) {
	// The engine accepts any binary payload; sniffing falls back to a
	// generic content type rather than rejecting.
	payload := []byte{0x00, 0x01, 0x02, 0x03, 0x04}

	encoded, err := Encode(bytes.NewReader(payload), 1<<20)
	require.NoError(t, err)
	require.Equal(t, "application/octet-stream", encoded.ContentType)
}

func TestEncode_TooLarge(t *testing.T) {
	payload := make([]byte, 101)

	_, err := Encode(bytes.NewReader(payload), 100)
	require.ErrorIs(t, err, ErrTooLarge)
}

func TestEncode_ExactlyAtLimit(t *testing.T) {
	payload := make([]byte, 100)

	encoded, err := Encode(bytes.NewReader(payload), 100)
	require.NoError(t, err)
	require.Equal(t, int64(100), encoded.Size)
}

func TestEncode_Empty(t *testing.T) {
	_, err := Encode(bytes.NewReader(nil), 1<<20)
	require.ErrorIs(t, err, ErrEmpty)
}

// failingReader always errors, simulating an unreadable upload.
type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestEncode_ReadFailure(t *testing.T) {
	_, err := Encode(failingReader{}, 1<<20)
	require.Error(t, err)
	require.Contains(t, err.Error(), "reading image")
}
