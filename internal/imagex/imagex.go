// Package imagex validates that a byte buffer holds a decodable image before
// it is sent anywhere. Supported formats: png, jpeg, gif, webp.
package imagex

import (
	"bytes"
	"errors"
	"image"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

var ErrNotAnImage = errors.New("file is not a supported image")

// Sniff decodes the image header and returns the detected format name
// ("png", "jpeg", "gif", "webp"). It reads only the header, never the full
// pixel data.
func Sniff(data []byte) (string, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return "", ErrNotAnImage
	}
	return format, nil
}
