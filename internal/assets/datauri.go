package assets

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidDataURI = errors.New("invalid data URI")

// Payload is a decoded data-URI image as produced by the editor's
// capture/crop utility.
type Payload struct {
	MIME string
	Ext  string
	Data []byte
}

// DecodeDataURI parses a base64 data URI ("data:image/png;base64,...").
// The content itself is opaque: size and dimension limits are the capture
// utility's job, not this layer's.
func DecodeDataURI(uri string) (Payload, error) {
	rest, ok := strings.CutPrefix(uri, "data:")
	if !ok {
		return Payload{}, fmt.Errorf("%w: missing data: scheme", ErrInvalidDataURI)
	}

	meta, encoded, ok := strings.Cut(rest, ",")
	if !ok {
		return Payload{}, fmt.Errorf("%w: missing payload", ErrInvalidDataURI)
	}

	mime, b64 := meta, false
	if m, found := strings.CutSuffix(meta, ";base64"); found {
		mime, b64 = m, true
	}
	if !b64 {
		return Payload{}, fmt.Errorf("%w: only base64 payloads are supported", ErrInvalidDataURI)
	}
	if mime == "" {
		mime = "application/octet-stream"
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return Payload{}, fmt.Errorf("%w: %v", ErrInvalidDataURI, err)
	}

	return Payload{MIME: mime, Ext: extFor(mime), Data: data}, nil
}

func extFor(mime string) string {
	switch mime {
	case "image/png":
		return ".png"
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	case "image/svg+xml":
		return ".svg"
	default:
		return ".bin"
	}
}
