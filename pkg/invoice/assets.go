package invoice

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	qrcode "github.com/skip2/go-qrcode"
)

// Asset is a raster image embedded in the record: an owned byte buffer plus
// the decoded format name ("png", "jpeg", "gif"). Assets are validated on
// load, so the record never holds a partially-read or undecodable image.
type Asset struct {
	Data   []byte
	Format string
}

// ReadAsset drains r into an owned buffer and verifies it decodes as a
// supported raster image. The returned asset is safe to merge into the
// record; a failed read or decode leaves the record untouched.
func ReadAsset(r io.Reader) (*Asset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading asset: %w", err)
	}
	_, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding asset: %w", err)
	}
	return &Asset{Data: data, Format: format}, nil
}

// LoadAssetFile reads a user-selected image file into an Asset.
func LoadAssetFile(path string) (*Asset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening asset %s: %w", path, err)
	}
	defer f.Close()
	return ReadAsset(f)
}

// qrCodeSize is the rendered pixel size of generated QR codes.
const qrCodeSize = 256

// QRCodeAsset renders data (typically a payment link) as a PNG QR code,
// for records where the user did not upload one.
func QRCodeAsset(data string) (*Asset, error) {
	if data == "" {
		return nil, fmt.Errorf("generating qr code: empty data")
	}
	png, err := qrcode.Encode(data, qrcode.Medium, qrCodeSize)
	if err != nil {
		return nil, fmt.Errorf("generating qr code: %w", err)
	}
	return &Asset{Data: png, Format: "png"}, nil
}
