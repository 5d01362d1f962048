package pdf_test

import (
	"bytes"
	"encoding/base64"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invoicekit/invoicekit/pkg/invoice"
	"github.com/invoicekit/invoicekit/pkg/pdf"
)

func TestGenerate_ExampleRecord(t *testing.T) {
	doc, err := pdf.Generate(invoice.Example(), pdf.Options{})
	require.NoError(t, err)

	data := doc.Bytes()
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")), "output should be a PDF")
	// Legal/terms/footer are forced onto a second page.
	assert.Contains(t, string(data), "/Count 2")
}

func TestGenerate_NoAssetsUsesTextOnlyHeader(t *testing.T) {
	inv := invoice.Example()
	inv.CompanyLogo = nil
	inv.QRCode = nil
	inv.Signature = nil

	doc, err := pdf.Generate(inv, pdf.Options{})
	require.NoError(t, err)
	assert.NotEmpty(t, doc.Bytes())
}

func TestGenerate_CorruptAssetsDegradeGracefully(t *testing.T) {
	inv := invoice.Example()
	// Constructed directly to simulate corruption slipping past load-time
	// validation; the generator must absorb it.
	inv.CompanyLogo = &invoice.Asset{Data: []byte("garbage"), Format: "png"}
	inv.QRCode = &invoice.Asset{Data: []byte("also garbage"), Format: "jpeg"}
	inv.Signature = &invoice.Asset{Data: []byte{0x00, 0x01}, Format: "gif"}

	doc, err := pdf.Generate(inv, pdf.Options{})
	require.NoError(t, err, "asset failures must never abort the document")
	assert.True(t, bytes.HasPrefix(doc.Bytes(), []byte("%PDF-")))
	assert.Contains(t, string(doc.Bytes()), "/Count 2")
}

func TestGenerate_EmptyRecordUsesPlaceholders(t *testing.T) {
	doc, err := pdf.Generate(invoice.Invoice{}, pdf.Options{})
	require.NoError(t, err, "missing fields are placeholders, not errors")
	assert.NotEmpty(t, doc.Bytes())
}

func TestGenerate_ValidAssetsEmbed(t *testing.T) {
	qr, err := invoice.QRCodeAsset("https://pay.example.com/INV-2024-001")
	require.NoError(t, err)

	inv := invoice.Example()
	inv.QRCode = qr

	withQR, err := pdf.Generate(inv, pdf.Options{})
	require.NoError(t, err)

	inv.QRCode = nil
	withoutQR, err := pdf.Generate(inv, pdf.Options{})
	require.NoError(t, err)

	assert.Greater(t, len(withQR.Bytes()), len(withoutQR.Bytes()),
		"embedded image should grow the document")
}

func TestExportViews_ShareOneBuffer(t *testing.T) {
	doc, err := pdf.Generate(invoice.Example(), pdf.Options{})
	require.NoError(t, err)

	raw := doc.Bytes()

	dataURL := doc.DataURL()
	require.True(t, strings.HasPrefix(dataURL, "data:application/pdf;base64,"))
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(dataURL, "data:application/pdf;base64,"))
	require.NoError(t, err)
	assert.Equal(t, raw, decoded)

	path := filepath.Join(t.TempDir(), "out.pdf")
	require.NoError(t, doc.WriteFile(path))
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, raw, written)
}

func TestGenerate_PaymentSelectionDoesNotChangeDocument(t *testing.T) {
	// The exported payment-instructions text is static while the form and
	// preview track per-method selection. This pins the export-path
	// divergence rather than silently relying on it.
	plain := invoice.Example()

	selected := invoice.Example()
	selected.PaymentMethods = invoice.PaymentMethods{BankTransfer: true, PayPal: true, Crypto: true}
	selected.PaymentInfo.CryptoWallet = "0xABCDEF"

	a, err := pdf.Generate(plain, pdf.Options{})
	require.NoError(t, err)
	b, err := pdf.Generate(selected, pdf.Options{})
	require.NoError(t, err)

	assert.Equal(t, len(a.Bytes()), len(b.Bytes()))
}

func TestDocument_FilenameDerivation(t *testing.T) {
	doc, err := pdf.Generate(invoice.Example(), pdf.Options{})
	require.NoError(t, err)
	assert.Equal(t, "invoice-INV-2024-001.pdf", doc.Filename())

	inv := invoice.Example()
	inv.InvoiceNumber = "INV-9"
	doc, err = pdf.Generate(inv, pdf.Options{})
	require.NoError(t, err)
	assert.Equal(t, "invoice-INV-9.pdf", doc.Filename())

	doc, err = pdf.Generate(invoice.Invoice{}, pdf.Options{})
	require.NoError(t, err)
	assert.Equal(t, "invoice-INV-2024-001.pdf", doc.Filename(), "missing number falls back to the literal default")
}

func TestDownload_WritesDerivedFilename(t *testing.T) {
	dir := t.TempDir()

	err := pdf.Download(invoice.Example(), filepath.Join(dir, "my-invoice.pdf"), pdf.Options{})
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "my-invoice.pdf"))
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestGenerator_IsReusable(t *testing.T) {
	g := pdf.New(pdf.Options{})

	first, err := g.Generate(invoice.Example())
	require.NoError(t, err)
	second, err := g.Generate(invoice.Example())
	require.NoError(t, err)

	assert.Equal(t, len(first.Bytes()), len(second.Bytes()))
}
