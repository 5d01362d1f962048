package pdf

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/invoicekit/invoicekit/pkg/invoice"
)

const defaultInvoiceNumber = "INV-2024-001"

func deriveFilename(invoiceNumber string) string {
	if invoiceNumber == "" {
		invoiceNumber = defaultInvoiceNumber
	}
	return fmt.Sprintf("invoice-%s.pdf", invoiceNumber)
}

// Document is a finished invoice PDF. Its three views (raw bytes, data URL,
// written file) are all backed by the same generated buffer.
type Document struct {
	data     []byte
	filename string
}

// Bytes returns the raw PDF.
func (d *Document) Bytes() []byte {
	out := make([]byte, len(d.data))
	copy(out, d.data)
	return out
}

// Filename returns the download name derived from the invoice number,
// invoice-<number>.pdf.
func (d *Document) Filename() string {
	return d.filename
}

// DataURL returns the document as a self-contained data: URL suitable for
// inline embedding.
func (d *Document) DataURL() string {
	return "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(d.data)
}

// WriteFile saves the document to path, or to the derived filename in the
// current directory when path is empty.
func (d *Document) WriteFile(path string) error {
	if path == "" {
		path = d.filename
	}
	if err := os.WriteFile(path, d.data, 0o644); err != nil {
		return fmt.Errorf("writing document: %w", err)
	}
	return nil
}

// Generate renders the record with a one-off Generator.
func Generate(inv invoice.Invoice, opts Options) (*Document, error) {
	return New(opts).Generate(inv)
}

// Download renders the record and saves it, using the derived filename when
// filename is empty.
func Download(inv invoice.Invoice, filename string, opts Options) error {
	doc, err := Generate(inv, opts)
	if err != nil {
		return err
	}
	return doc.WriteFile(filename)
}
