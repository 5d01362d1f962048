// Package invoice holds the invoice record model, the mutable record store,
// and the pure totals calculator that keeps the derived figures in sync with
// the item list.
package invoice

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// Item represents a single line item on the invoice. Amount tracks
// Quantity * Rate whenever quantity or rate was last edited through the
// store, but may be overridden directly, so it is not re-derived at read
// time.
type Item struct {
	ID          string  `yaml:"id"`
	Description string  `yaml:"description"`
	Quantity    float64 `yaml:"quantity"`
	Rate        float64 `yaml:"rate"`
	Amount      float64 `yaml:"amount"`
}

// NewItem returns an empty line item with a fresh unique id, ready to be
// passed to Store.AddItem.
func NewItem() Item {
	return Item{ID: uuid.NewString()}
}

// PaymentMethods flags which payment methods the author enabled on the form.
type PaymentMethods struct {
	BankTransfer bool `yaml:"bankTransfer"`
	PayPal       bool `yaml:"paypal"`
	Venmo        bool `yaml:"venmo"`
	CashApp      bool `yaml:"cashApp"`
	Zelle        bool `yaml:"zelle"`
	Check        bool `yaml:"check"`
	Crypto       bool `yaml:"crypto"`
}

// PaymentInfo carries the per-method credential and address fields matching
// the PaymentMethods flags.
type PaymentInfo struct {
	BankName       string `yaml:"bankName"`
	AccountNumber  string `yaml:"accountNumber"`
	RoutingNumber  string `yaml:"routingNumber"`
	PayPalEmail    string `yaml:"paypalEmail"`
	VenmoUsername  string `yaml:"venmoUsername"`
	CashAppCashtag string `yaml:"cashAppCashtag"`
	ZelleEmail     string `yaml:"zelleEmail"`
	CryptoWallet   string `yaml:"cryptoWallet"`
}

// Invoice is the single aggregate record for one authoring session. The
// Subtotal/Discount/Tax/Total fields are derived from Items by the store
// after every item mutation and are never authoritative on their own.
type Invoice struct {
	ID string `yaml:"id"`

	CompanyName    string `yaml:"companyName"`
	CompanyAddress string `yaml:"companyAddress"`
	CompanyPhone   string `yaml:"companyPhone"`
	CompanyEmail   string `yaml:"companyEmail"`
	CompanyWebsite string `yaml:"companyWebsite"`
	CompanyTaxID   string `yaml:"companyTaxId"`
	CompanyLogo    *Asset `yaml:"-"`
	BrandColor     string `yaml:"brandColor"`

	InvoiceNumber string `yaml:"invoiceNumber"`
	InvoiceDate   string `yaml:"invoiceDate"`
	DueDate       string `yaml:"dueDate"`
	PONumber      string `yaml:"poNumber"`
	Project       string `yaml:"project"`
	CustomerID    string `yaml:"customerId"`

	// Selected on the form but not wired into totals or rendering; totals
	// always use the fixed rates and USD formatting.
	Currency string `yaml:"currency"`

	Items []Item `yaml:"items"`

	Subtotal float64 `yaml:"subtotal"`
	Discount float64 `yaml:"discount"`
	Tax      float64 `yaml:"tax"`
	Total    float64 `yaml:"total"`

	ClientName    string `yaml:"clientName"`
	ClientEmail   string `yaml:"clientEmail"`
	ClientAddress string `yaml:"clientAddress"`
	ClientPhone   string `yaml:"clientPhone"`

	QRCodeData string `yaml:"qrCodeData"`
	QRCode     *Asset `yaml:"-"`
	Signature  *Asset `yaml:"-"`

	PaymentMethods PaymentMethods `yaml:"selectedPaymentMethods"`
	PaymentInfo    PaymentInfo    `yaml:"paymentInfo"`

	ThankYouMessage string `yaml:"thankYouMessage"`
	TermsConditions string `yaml:"termsConditions"`
	LegalCompliance string `yaml:"legalCompliance"`
}

// Clone returns a deep copy of the record. Items are copied; assets are
// shared, since they are immutable once loaded.
func (inv Invoice) Clone() Invoice {
	out := inv
	if inv.Items != nil {
		out.Items = make([]Item, len(inv.Items))
		copy(out.Items, inv.Items)
	}
	return out
}

// ParseNumber coerces free-form numeric input from a form field. Anything
// that does not parse as a number is treated as zero rather than propagated
// as an error.
func ParseNumber(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}
