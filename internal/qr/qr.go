package qr

import (
	"encoding/base64"

	qrcode "github.com/skip2/go-qrcode"
)

// DataURI encodes payload as a PNG QR image embeddable in an <img> tag.
func DataURI(payload string) (string, error) {
	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
