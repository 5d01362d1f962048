// Package pdf lays an invoice record out as a paginated PDF document and
// exposes the result as bytes, a data URL, or a saved file.
package pdf

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
	"go.uber.org/zap"

	"github.com/invoicekit/invoicekit/pkg/invoice"
)

// Options configures page geometry and metadata for generated documents.
// Zero values fall back to portrait A4 in millimeters.
type Options struct {
	Orientation string // "P" or "L"
	Unit        string // "mm", "cm", "in", "pt"
	Format      string // "A4", "Letter", "Legal"
	Logger      *zap.Logger
}

func (o Options) withDefaults() Options {
	if o.Orientation == "" {
		o.Orientation = "P"
	}
	if o.Unit == "" {
		o.Unit = "mm"
	}
	if o.Format == "" {
		o.Format = "A4"
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

type rgb struct{ r, g, b int }

var (
	colorText    = rgb{17, 24, 39}
	colorMuted   = rgb{107, 114, 128}
	colorFaint   = rgb{156, 163, 175}
	colorRule    = rgb{229, 231, 235}
	colorRowRule = rgb{243, 244, 246}
	colorBox     = rgb{249, 250, 251}
	colorWhite   = rgb{255, 255, 255}
	defaultBrand = rgb{26, 115, 232}
)

const fontFamily = "Helvetica"

// Generator renders invoice records into documents. A Generator is reusable;
// each Generate call builds a fresh document.
type Generator struct {
	opts   Options
	logger *zap.Logger

	pdf        *gofpdf.Fpdf
	tr         func(string) string
	y          float64
	pageW      float64
	pageH      float64
	margin     float64
	lineHeight float64
	brand      rgb
	imageSeq   int
}

// New returns a Generator with the given options.
func New(opts Options) *Generator {
	opts = opts.withDefaults()
	return &Generator{opts: opts, logger: opts.Logger}
}

// Generate lays the record out across two pages and returns the finished
// document. Missing fields render as literal placeholders and broken image
// assets degrade to fallback layouts; the only errors returned are document
// encoding failures.
func (g *Generator) Generate(inv invoice.Invoice) (*Document, error) {
	g.begin(inv)

	g.drawHeader(inv)
	g.drawBillTo(inv)
	g.drawItemsTable(inv)
	g.drawPaymentSections(inv)
	g.drawImageRow(inv)

	// Legal, terms and footer always start on a fresh page.
	g.pdf.AddPage()
	g.y = g.margin
	g.drawLegal(inv)
	g.drawTerms(inv)
	g.drawFooter(inv)

	var buf bytes.Buffer
	if err := g.pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("encoding document: %w", err)
	}
	return &Document{data: buf.Bytes(), filename: deriveFilename(inv.InvoiceNumber)}, nil
}

func (g *Generator) begin(inv invoice.Invoice) {
	g.pdf = gofpdf.New(g.opts.Orientation, g.opts.Unit, g.opts.Format, "")
	g.pdf.SetTitle("Invoice", false)
	g.pdf.SetSubject("Professional Invoice", false)
	g.pdf.SetAuthor("Invoice Generator", false)
	g.pdf.SetCreator("Invoice Generator", false)
	g.pdf.SetAutoPageBreak(false, 0)
	g.pdf.SetFont(fontFamily, "", 12)
	// Core fonts are cp1252; user text arrives as UTF-8.
	g.tr = g.pdf.UnicodeTranslatorFromDescriptor("")
	g.pdf.AddPage()

	g.pageW, g.pageH = g.pdf.GetPageSize()
	g.margin = 20
	g.lineHeight = 6
	g.y = 20
	g.imageSeq = 0
	g.brand = parseHexColor(inv.BrandColor, defaultBrand)
}

func (g *Generator) contentWidth() float64 {
	return g.pageW - 2*g.margin
}

// text draws s at (x, y) in the given size and color.
func (g *Generator) text(s string, x, y float64, size float64, color rgb, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	g.pdf.SetFont(fontFamily, style, size)
	g.pdf.SetTextColor(color.r, color.g, color.b)
	g.pdf.Text(x, y, g.tr(s))
}

// textCentered draws s horizontally centered on x.
func (g *Generator) textCentered(s string, x, y float64, size float64, color rgb, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	g.pdf.SetFont(fontFamily, style, size)
	t := g.tr(s)
	w := g.pdf.GetStringWidth(t)
	g.pdf.SetTextColor(color.r, color.g, color.b)
	g.pdf.Text(x-w/2, y, t)
}

// sectionHeader draws a brand-colored band with a white bold label.
func (g *Generator) sectionHeader(label string, x, y, width float64) {
	g.pdf.SetFillColor(g.brand.r, g.brand.g, g.brand.b)
	g.pdf.Rect(x, y, width, 8, "F")
	g.text(label, x+2, y+6, 12, colorWhite, true)
}

// shadedBox fills the standard light-gray content box.
func (g *Generator) shadedBox(x, y, width, height float64) {
	g.pdf.SetFillColor(colorBox.r, colorBox.g, colorBox.b)
	g.pdf.Rect(x, y, width, height, "F")
}

// embedImage registers and places an asset. A nil asset or any registration
// or placement failure returns false with the document error state cleared,
// so a broken asset never poisons the rest of the layout.
func (g *Generator) embedImage(a *invoice.Asset, x, y, w, h float64) bool {
	if a == nil || len(a.Data) == 0 {
		return false
	}
	g.imageSeq++
	name := fmt.Sprintf("asset-%d", g.imageSeq)
	opt := gofpdf.ImageOptions{ImageType: imageType(a.Format)}
	g.pdf.RegisterImageOptionsReader(name, opt, bytes.NewReader(a.Data))
	if g.pdf.Err() {
		g.logger.Warn("skipping image asset", zap.Error(g.pdf.Error()))
		g.pdf.ClearError()
		return false
	}
	g.pdf.ImageOptions(name, x, y, w, h, false, opt, 0, "")
	if g.pdf.Err() {
		g.logger.Warn("skipping image asset", zap.Error(g.pdf.Error()))
		g.pdf.ClearError()
		return false
	}
	return true
}

func imageType(format string) string {
	switch strings.ToLower(format) {
	case "jpg", "jpeg":
		return "JPEG"
	case "gif":
		return "GIF"
	default:
		return "PNG"
	}
}
