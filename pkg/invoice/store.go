package invoice

import (
	"go.uber.org/zap"
)

// Store owns the single Invoice aggregate for an editing session. All
// mutations go through its methods; readers take snapshots via Invoice or
// register with Subscribe. The store is single-writer and synchronous: every
// mutation runs to completion before any reader observes the new state, so
// no locking is involved.
type Store struct {
	logger      *zap.Logger
	initial     Invoice
	current     Invoice
	subscribers []func(Invoice)
	initialized bool
}

// StoreOption configures a Store at construction time.
type StoreOption func(*Store)

// WithInitial replaces the canned example as the record the session starts
// from and returns to on Reset.
func WithInitial(inv Invoice) StoreOption {
	return func(s *Store) {
		s.initial = inv
	}
}

// WithLogger attaches a logger for debug-level mutation tracing.
func WithLogger(logger *zap.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewStore creates a record store seeded with the example invoice unless
// WithInitial overrides it.
func NewStore(opts ...StoreOption) *Store {
	s := &Store{
		logger:      zap.NewNop(),
		initial:     Example(),
		initialized: true,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.current = s.initial.Clone()
	return s
}

// checkInit guards against the zero value. Using a Store that did not come
// from NewStore is a wiring defect, not a data condition, so it aborts.
func (s *Store) checkInit() {
	if s == nil || !s.initialized {
		panic("invoice: Store must be created with NewStore")
	}
}

// Invoice returns a snapshot copy of the current record.
func (s *Store) Invoice() Invoice {
	s.checkInit()
	return s.current.Clone()
}

// Subscribe registers fn to run after every committed mutation, receiving a
// snapshot of the new state.
func (s *Store) Subscribe(fn func(Invoice)) {
	s.checkInit()
	s.subscribers = append(s.subscribers, fn)
}

func (s *Store) notify() {
	snapshot := s.current.Clone()
	for _, fn := range s.subscribers {
		fn(snapshot)
	}
}

// Patch is a shallow partial update of the directly-editable Invoice fields.
// Nil fields are left untouched. Items and the derived totals are not
// patchable; they move only through the item methods and RecomputeTotals.
type Patch struct {
	CompanyName    *string
	CompanyAddress *string
	CompanyPhone   *string
	CompanyEmail   *string
	CompanyWebsite *string
	CompanyTaxID   *string
	CompanyLogo    **Asset
	BrandColor     *string

	InvoiceNumber *string
	InvoiceDate   *string
	DueDate       *string
	PONumber      *string
	Project       *string
	CustomerID    *string
	Currency      *string

	ClientName    *string
	ClientEmail   *string
	ClientAddress *string
	ClientPhone   *string

	QRCodeData *string
	QRCode     **Asset
	Signature  **Asset

	PaymentMethods *PaymentMethods
	PaymentInfo    *PaymentInfo

	ThankYouMessage *string
	TermsConditions *string
	LegalCompliance *string
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setAsset(dst **Asset, src **Asset) {
	if src != nil {
		*dst = *src
	}
}

// Update shallow-merges the patch into the record and notifies readers. An
// empty patch is a valid no-op; readers are still notified, matching the
// unconditional commit of the interactive form.
func (s *Store) Update(p Patch) {
	s.checkInit()

	setString(&s.current.CompanyName, p.CompanyName)
	setString(&s.current.CompanyAddress, p.CompanyAddress)
	setString(&s.current.CompanyPhone, p.CompanyPhone)
	setString(&s.current.CompanyEmail, p.CompanyEmail)
	setString(&s.current.CompanyWebsite, p.CompanyWebsite)
	setString(&s.current.CompanyTaxID, p.CompanyTaxID)
	setAsset(&s.current.CompanyLogo, p.CompanyLogo)
	setString(&s.current.BrandColor, p.BrandColor)

	setString(&s.current.InvoiceNumber, p.InvoiceNumber)
	setString(&s.current.InvoiceDate, p.InvoiceDate)
	setString(&s.current.DueDate, p.DueDate)
	setString(&s.current.PONumber, p.PONumber)
	setString(&s.current.Project, p.Project)
	setString(&s.current.CustomerID, p.CustomerID)
	setString(&s.current.Currency, p.Currency)

	setString(&s.current.ClientName, p.ClientName)
	setString(&s.current.ClientEmail, p.ClientEmail)
	setString(&s.current.ClientAddress, p.ClientAddress)
	setString(&s.current.ClientPhone, p.ClientPhone)

	setString(&s.current.QRCodeData, p.QRCodeData)
	setAsset(&s.current.QRCode, p.QRCode)
	setAsset(&s.current.Signature, p.Signature)

	if p.PaymentMethods != nil {
		s.current.PaymentMethods = *p.PaymentMethods
	}
	if p.PaymentInfo != nil {
		s.current.PaymentInfo = *p.PaymentInfo
	}

	setString(&s.current.ThankYouMessage, p.ThankYouMessage)
	setString(&s.current.TermsConditions, p.TermsConditions)
	setString(&s.current.LegalCompliance, p.LegalCompliance)

	s.logger.Debug("record updated")
	s.notify()
}

// AddItem appends the item (caller supplies the id, see NewItem) and
// recomputes the totals. Insertion order is display order.
func (s *Store) AddItem(item Item) {
	s.checkInit()
	s.current.Items = append(s.current.Items, item)
	s.logger.Debug("item added", zap.String("id", item.ID))
	s.recompute()
	s.notify()
}

// ItemPatch is a shallow partial update of one line item.
type ItemPatch struct {
	Description *string
	Quantity    *float64
	Rate        *float64
	Amount      *float64
}

// UpdateItem merges the patch into the item with the given id; unknown ids
// are a no-op. When quantity or rate changes, the item's amount is re-derived
// as quantity * rate before the aggregate totals recompute, so the totals
// always reflect the just-updated amount. A direct Amount edit is applied
// as-is.
func (s *Store) UpdateItem(id string, p ItemPatch) {
	s.checkInit()
	for i := range s.current.Items {
		it := &s.current.Items[i]
		if it.ID != id {
			continue
		}
		setString(&it.Description, p.Description)
		if p.Quantity != nil {
			it.Quantity = *p.Quantity
		}
		if p.Rate != nil {
			it.Rate = *p.Rate
		}
		if p.Amount != nil {
			it.Amount = *p.Amount
		}
		if p.Quantity != nil || p.Rate != nil {
			it.Amount = it.Quantity * it.Rate
		}
		s.logger.Debug("item updated", zap.String("id", id))
		s.recompute()
		s.notify()
		return
	}
}

// RemoveItem deletes the item with the given id and recomputes the totals;
// unknown ids are a no-op.
func (s *Store) RemoveItem(id string) {
	s.checkInit()
	for i, it := range s.current.Items {
		if it.ID != id {
			continue
		}
		s.current.Items = append(s.current.Items[:i], s.current.Items[i+1:]...)
		s.logger.Debug("item removed", zap.String("id", id))
		s.recompute()
		s.notify()
		return
	}
}

// RecomputeTotals re-derives the totals from the current item list and
// merges them into the record.
func (s *Store) RecomputeTotals() {
	s.checkInit()
	s.recompute()
	s.notify()
}

func (s *Store) recompute() {
	t := ComputeTotals(s.current.Items)
	s.current.Subtotal = t.Subtotal
	s.current.Discount = t.Discount
	s.current.Tax = t.Tax
	s.current.Total = t.Total
}

// Reset replaces the record wholesale with the initial example.
func (s *Store) Reset() {
	s.checkInit()
	s.current = s.initial.Clone()
	s.logger.Debug("record reset")
	s.notify()
}
