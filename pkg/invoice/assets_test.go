package invoice_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicekit/invoicekit/pkg/invoice"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestReadAsset_ValidPNG(t *testing.T) {
	data := pngBytes(t)

	asset, err := invoice.ReadAsset(bytes.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, "png", asset.Format)
	assert.Equal(t, data, asset.Data)
}

func TestReadAsset_OwnsItsBuffer(t *testing.T) {
	data := pngBytes(t)

	asset, err := invoice.ReadAsset(bytes.NewReader(data))
	require.NoError(t, err)

	data[0] = 0xff
	assert.NotEqual(t, data[0], asset.Data[0])
}

func TestReadAsset_RejectsCorruptImage(t *testing.T) {
	_, err := invoice.ReadAsset(bytes.NewReader([]byte("definitely not an image")))
	assert.Error(t, err)
}

func TestReadAsset_RejectsTruncatedPNG(t *testing.T) {
	data := pngBytes(t)

	_, err := invoice.ReadAsset(bytes.NewReader(data[:len(data)/2]))
	assert.Error(t, err)
}

func TestQRCodeAsset(t *testing.T) {
	asset, err := invoice.QRCodeAsset("https://pay.example.com/INV-2024-001")
	require.NoError(t, err)

	assert.Equal(t, "png", asset.Format)

	img, format, err := image.Decode(bytes.NewReader(asset.Data))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeAsset_EmptyData(t *testing.T) {
	_, err := invoice.QRCodeAsset("")
	assert.Error(t, err)
}
