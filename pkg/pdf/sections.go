package pdf

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/invoicekit/invoicekit/pkg/invoice"
)

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// drawHeader renders the company identity block on the left and the INVOICE
// title with its metadata rows on the right. A logo that fails to embed (or
// is absent) falls back to a text-only layout at a lower offset.
func (g *Generator) drawHeader(inv invoice.Invoice) {
	leftX := g.margin
	rightX := g.pageW - g.margin - 60
	name := orDefault(inv.CompanyName, "Company Name")

	detailsX := leftX
	if g.embedImage(inv.CompanyLogo, leftX, g.y, 20, 12) {
		// Company name sits beside the logo, aligned with its top edge.
		g.text(name, leftX+25, g.y+2, 16, g.brand, true)
		g.y += 4
		detailsX = leftX + 25
	} else {
		g.text(name, leftX, g.y+10, 16, g.brand, true)
		g.y += 16
	}

	if inv.CompanyAddress != "" {
		for _, line := range strings.Split(inv.CompanyAddress, "\n") {
			g.text(line, detailsX, g.y, 10, colorMuted, false)
			g.y += 3
		}
	}
	for _, line := range []string{inv.CompanyPhone, inv.CompanyEmail, inv.CompanyWebsite} {
		if line != "" {
			g.text(line, detailsX, g.y, 10, colorMuted, false)
			g.y += 3
		}
	}
	if inv.CompanyTaxID != "" {
		g.text("Tax ID: "+inv.CompanyTaxID, detailsX, g.y, 10, colorMuted, false)
		g.y += 3
	}

	g.text("INVOICE", rightX, 20, 18, g.brand, true)
	g.y = 28

	details := []struct{ label, value string }{
		{"INV #", orDefault(inv.InvoiceNumber, "INV-2024-001")},
		{"Date", formatDateOr(inv.InvoiceDate, "1/15/2024")},
		{"Customer ID", orDefault(inv.CustomerID, "276")},
		{"PO Number", orDefault(inv.PONumber, "-")},
		{"Project", orDefault(inv.Project, "-")},
		{"Due Date", formatDateOr(inv.DueDate, "2/15/2024")},
	}
	for _, d := range details {
		g.text(d.label, rightX, g.y, 10, colorMuted, true)
		g.text(d.value, rightX+40, g.y, 10, colorText, false)
		g.y += 4
	}

	g.y += 15
}

// drawBillTo renders the BILL TO band and the shaded client block.
func (g *Generator) drawBillTo(inv invoice.Invoice) {
	leftX := g.margin
	g.sectionHeader("BILL TO", leftX, g.y, g.contentWidth())
	g.y += 12

	g.shadedBox(leftX, g.y, g.contentWidth(), 25)
	g.y += 5

	g.text(orDefault(inv.ClientName, "Name"), leftX+5, g.y, 10, colorText, true)
	g.y += 4
	g.text("Company Name", leftX+5, g.y, 10, colorText, false)
	g.y += 4

	if inv.ClientAddress != "" {
		for _, line := range strings.Split(inv.ClientAddress, "\n") {
			g.text(line, leftX+5, g.y, 10, colorText, false)
			g.y += 4
		}
	} else {
		g.text("Address", leftX+5, g.y, 10, colorText, false)
		g.y += 4
		g.text("City, ST ZIP", leftX+5, g.y, 10, colorText, false)
		g.y += 4
	}

	g.text(orDefault(inv.ClientPhone, "Phone"), leftX+5, g.y, 10, colorText, false)
	g.y += 4

	if inv.ClientEmail != "" {
		g.text(inv.ClientEmail, leftX+5, g.y, 10, colorText, false)
		g.y += 8
	}
}

// Minimum number of blank filler rows padding the table to a constant
// visual height regardless of item count.
const tableFillerRows = 4

// drawItemsTable renders the ITEMIZED CHARGES band, the column headers, one
// row per item (or a single placeholder row), and the filler rows.
func (g *Generator) drawItemsTable(inv invoice.Invoice) {
	leftX := g.margin
	g.sectionHeader("ITEMIZED CHARGES", leftX, g.y, g.contentWidth())
	g.y += 20

	tableX := leftX
	const (
		descWidth = 80.0
		qtyWidth  = 20.0
		rateWidth = 30.0
	)

	g.text("DESCRIPTION", tableX, g.y, 10, colorMuted, true)
	g.text("QTY", tableX+descWidth, g.y, 10, colorMuted, true)
	g.text("RATE", tableX+descWidth+qtyWidth, g.y, 10, colorMuted, true)
	g.text("AMOUNT", tableX+descWidth+qtyWidth+rateWidth, g.y, 10, colorMuted, true)
	g.y += 5

	g.pdf.SetDrawColor(colorRule.r, colorRule.g, colorRule.b)
	g.pdf.Line(tableX, g.y-5, g.pageW-g.margin, g.y-5)
	g.pdf.Line(tableX, g.y-5, tableX, g.y+60)
	g.pdf.Line(g.pageW-g.margin, g.y-5, g.pageW-g.margin, g.y+60)

	if len(inv.Items) > 0 {
		for i, item := range inv.Items {
			qty := item.Quantity
			if qty == 0 {
				qty = 1
			}
			rate := item.Rate
			if rate == 0 {
				rate = item.Amount
			}
			g.text(item.Description, tableX+2, g.y, 10, colorText, false)
			g.text(formatQuantity(qty), tableX+descWidth+2, g.y, 10, colorText, false)
			g.text(formatCurrency(rate), tableX+descWidth+qtyWidth+2, g.y, 10, colorText, false)
			g.text(formatCurrency(qty*rate), tableX+descWidth+qtyWidth+rateWidth+2, g.y, 10, colorText, true)
			g.y += 6

			if i < len(inv.Items)-1 {
				g.pdf.SetDrawColor(colorRowRule.r, colorRowRule.g, colorRowRule.b)
				g.pdf.Line(tableX, g.y, g.pageW-g.margin, g.y)
			}
		}
	} else {
		g.text("Service Fee", tableX+2, g.y, 10, colorFaint, false)
		g.text("1", tableX+descWidth+2, g.y, 10, colorFaint, false)
		g.text("$150.00", tableX+descWidth+qtyWidth+2, g.y, 10, colorFaint, false)
		g.text("$150.00", tableX+descWidth+qtyWidth+rateWidth+2, g.y, 10, colorFaint, false)
		g.y += 6
	}

	g.y += tableFillerRows * g.lineHeight
	g.y += 10
}

// drawPaymentSections renders the side-by-side payment instructions and
// payment summary boxes. The instructional text is static in the document
// regardless of the payment methods selected on the form; the interactive
// preview tracks the selection, so this is a known divergence of the export
// path.
func (g *Generator) drawPaymentSections(inv invoice.Invoice) {
	leftX := g.margin
	summaryX := g.pageW - g.margin - 60
	const sectionWidth = 60.0
	sectionY := g.y

	g.sectionHeader("PAYMENT INSTRUCTIONS", leftX, sectionY, g.contentWidth())
	instructionsY := sectionY + 12

	instructionsBoxH := 3*g.lineHeight + 10
	g.shadedBox(leftX, instructionsY, sectionWidth, instructionsBoxH)

	textY := instructionsY + 5
	g.text("1. Total payment due in 30 days.", leftX+2, textY, 10, colorText, false)
	textY += g.lineHeight
	g.text("2. Please include the invoice", leftX+2, textY, 10, colorText, false)
	textY += g.lineHeight
	g.text("   number on your check.", leftX+2, textY, 10, colorText, false)

	g.sectionHeader("PAYMENT SUMMARY", summaryX, sectionY, sectionWidth)
	summaryY := sectionY + 12
	g.shadedBox(summaryX, summaryY, sectionWidth, 35)

	rowY := summaryY + 5
	g.text("Subtotal", summaryX+2, rowY, 10, colorMuted, false)
	g.text(formatCurrency(inv.Subtotal), summaryX+40, rowY, 10, colorText, true)
	rowY += 4

	g.text("Tax", summaryX+2, rowY, 10, colorMuted, false)
	g.text(formatCurrency(inv.Tax), summaryX+40, rowY, 10, colorText, true)
	rowY += 4

	g.text("Total", summaryX+2, rowY, 10, colorMuted, false)
	g.text(formatCurrency(inv.Total), summaryX+40, rowY, 10, colorText, true)
	rowY += 6

	g.pdf.SetDrawColor(colorRule.r, colorRule.g, colorRule.b)
	g.pdf.Line(summaryX+2, rowY, summaryX+sectionWidth-2, rowY)
	rowY += 4

	g.text("Balance Due", summaryX+2, rowY, 10, colorText, true)
	g.text(formatCurrency(inv.Total), summaryX+40, rowY, 10, colorText, true)

	g.y = summaryY + 35 + 20
	g.y += 20
}

// drawImageRow centers the QR code and digital signature as a pair within
// the content width, each with a caption. Either image failing to embed is
// skipped; the layout continues.
func (g *Generator) drawImageRow(inv invoice.Invoice) {
	leftX := g.margin
	const (
		qrSize    = 32.0
		sigWidth  = 60.0
		sigHeight = 24.0
		gap       = 32.0
	)

	totalWidth := qrSize + gap + sigWidth
	startX := leftX + (g.contentWidth()-totalWidth)/2
	qrX := startX
	sigX := startX + qrSize + gap

	if g.embedImage(inv.QRCode, qrX, g.y, qrSize, qrSize) {
		g.textCentered("Scan for payment details", qrX+qrSize/2, g.y+qrSize+8, 8, colorFaint, false)
	}
	if g.embedImage(inv.Signature, sigX, g.y, sigWidth, sigHeight) {
		g.textCentered("Authorized signature", sigX+sigWidth/2, g.y+sigHeight+8, 8, colorFaint, false)
	}

	g.y += qrSize + 16
}

// drawLegal renders the LEGAL / COMPLIANCE band and text box at the top of
// the second page.
func (g *Generator) drawLegal(inv invoice.Invoice) {
	leftX := g.margin
	g.sectionHeader("LEGAL / COMPLIANCE", leftX, g.y, g.contentWidth())
	g.y += 12

	g.shadedBox(leftX, g.y, g.contentWidth(), 20)
	g.y += 5

	legal := orDefault(inv.LegalCompliance,
		"All services provided are subject to applicable laws and regulations.\nPlease ensure compliance with all relevant legal requirements.")
	lines := strings.Split(strings.ReplaceAll(legal, "\r\n", "\n"), "\n")
	for i, line := range lines {
		g.text(line, leftX+2, g.y, 10, colorText, false)
		if i < len(lines)-1 {
			g.y += g.lineHeight
		}
	}

	g.y += 15
}

// drawTerms renders the optional TERMS & CONDITIONS section.
func (g *Generator) drawTerms(inv invoice.Invoice) {
	if inv.TermsConditions == "" {
		return
	}
	leftX := g.margin
	g.sectionHeader("TERMS & CONDITIONS", leftX, g.y, 80)
	g.y += 12

	g.shadedBox(leftX, g.y, g.contentWidth(), 20)
	g.y += 5
	g.text(inv.TermsConditions, leftX+2, g.y, 10, colorText, false)
	g.y += 15
}

// drawFooter renders the COMPANY INFORMATION band, the payable/contact
// lines, the thank-you block, and the centered copyright.
func (g *Generator) drawFooter(inv invoice.Invoice) {
	leftX := g.margin
	g.sectionHeader("COMPANY INFORMATION", leftX, g.y, g.contentWidth())
	g.y += 12

	g.text("Make all checks payable to: "+orDefault(inv.CompanyName, "Your Company Name"),
		leftX, g.y, 10, colorMuted, false)
	g.y += 6
	g.text("If you have any questions about this invoice, please contact "+orDefault(inv.CompanyName, "Name, Phone & Email"),
		leftX, g.y, 10, colorMuted, false)
	g.y += 10

	centerX := leftX + g.contentWidth()/2
	g.text("Thank You For Your Business!", centerX, g.y, 14, colorText, true)
	g.y += 6

	if strings.TrimSpace(inv.ThankYouMessage) != "" {
		g.textCentered(inv.ThankYouMessage, centerX, g.y, 10, colorMuted, false)
		g.y += 8
	}

	g.textCentered(orDefault(inv.CompanyName, "Your Company"), centerX, g.y, 8, colorFaint, false)
	g.y += 4
	g.textCentered(fmt.Sprintf("© %d All rights reserved", time.Now().Year()), centerX, g.y, 8, colorFaint, false)
}

func formatQuantity(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
