// Package qr renders strings as base64 PNG data URLs.
package qr

import (
	"encoding/base64"
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const dataURLPrefix = "data:image/png;base64,"

// ErrEmptyContent is returned when asked to encode an empty string.
var ErrEmptyContent = errors.New("qr: empty content")

// Encoder renders QR codes at a fixed size and recovery level.
type Encoder struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewEncoder creates an encoder producing size×size pixel images.
func NewEncoder(size int) *Encoder {
	if size <= 0 {
		size = 256
	}
	return &Encoder{size: size, level: qrcode.Medium}
}

// Encode renders text as a PNG and returns it as a data URL. Output is a pure function of text.
func (e *Encoder) Encode(text string) (string, error) {
	if text == "" {
		return "", ErrEmptyContent
	}
	png, err := qrcode.Encode(text, e.level, e.size)
	if err != nil {
		return "", fmt.Errorf("qr encode: %w", err)
	}
	return dataURLPrefix + base64.StdEncoding.EncodeToString(png), nil
}
