package billing_test

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/vconf-api/internal/application/billing"
	"github.com/jhoicas/vconf-api/internal/domain/entity"
	"github.com/jhoicas/vconf-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Usuarios y catálogo
// ──────────────────────────────────────────────────────────────────────────────

type userRepoFake struct {
	users map[string]*entity.User
	err   error
	calls int
}

func (f *userRepoFake) GetByID(_ context.Context, id string) (*entity.User, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.users[id], nil
}

func (f *userRepoFake) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type catalogFake struct {
	models     map[string]*entity.Model
	defaults   map[string][]*entity.DefaultConfig
	alternates map[string][]*entity.AlternateComponent
}

func (f *catalogFake) GetByID(_ context.Context, id string) (*entity.Model, error) {
	return f.models[id], nil
}

func (f *catalogFake) ExistsAlternatesByModel(_ context.Context, modelID string) (bool, error) {
	return len(f.alternates[modelID]) > 0, nil
}

func (f *catalogFake) ListAlternatesByModel(_ context.Context, modelID string) ([]*entity.AlternateComponent, error) {
	return f.alternates[modelID], nil
}

func (f *catalogFake) ListDefaultsByModel(_ context.Context, modelID string) ([]*entity.DefaultConfig, error) {
	return f.defaults[modelID], nil
}

func comp(id, name, price string) *entity.Component {
	return &entity.Component{ID: id, Name: name, Type: "interior", Price: decimal.RequireFromString(price)}
}

// ──────────────────────────────────────────────────────────────────────────────
// Facturas: store con transacción simulada (staging + commit solo si fn no falla)
// ──────────────────────────────────────────────────────────────────────────────

type invoiceStore struct {
	mu       sync.Mutex
	invoices []*entity.Invoice
	details  []*entity.InvoiceDetail
	seq      int

	failCreate  error
	failDetails error
	txCount     int
}

var (
	_ repository.InvoiceRepository = (*invoiceStore)(nil)
	_ billing.InvoiceTxRunner      = (*invoiceStore)(nil)
)

func (s *invoiceStore) RunInvoice(ctx context.Context, fn func(invoiceRepo repository.InvoiceRepository) error) error {
	s.mu.Lock()
	s.txCount++
	s.mu.Unlock()

	tx := &invoiceTx{parent: s}
	if err := fn(tx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = append(s.invoices, tx.invoices...)
	s.details = append(s.details, tx.details...)
	return nil
}

func (s *invoiceStore) nextID(prefix string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	return fmt.Sprintf("%s-%d", prefix, s.seq)
}

func (s *invoiceStore) Create(_ context.Context, inv *entity.Invoice) error {
	if inv.ID == "" {
		inv.ID = s.nextID("inv")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.invoices = append(s.invoices, inv)
	return nil
}

func (s *invoiceStore) CreateDetails(_ context.Context, details []*entity.InvoiceDetail) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.details = append(s.details, details...)
	return nil
}

func (s *invoiceStore) GetByID(_ context.Context, id string) (*entity.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inv := range s.invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return nil, nil
}

func (s *invoiceStore) GetDetailsByInvoiceID(_ context.Context, invoiceID string) ([]*entity.InvoiceDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*entity.InvoiceDetail
	for _, d := range s.details {
		if d.InvoiceID == invoiceID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *invoiceStore) ListByUser(_ context.Context, userID string, limit, offset int) ([]*entity.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var mine []*entity.Invoice
	for i := len(s.invoices) - 1; i >= 0; i-- {
		if s.invoices[i].UserID == userID {
			mine = append(mine, s.invoices[i])
		}
	}
	if offset >= len(mine) {
		return nil, nil
	}
	mine = mine[offset:]
	if len(mine) > limit {
		mine = mine[:limit]
	}
	return mine, nil
}

func (s *invoiceStore) committed() ([]*entity.Invoice, []*entity.InvoiceDetail) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*entity.Invoice(nil), s.invoices...), append([]*entity.InvoiceDetail(nil), s.details...)
}

type invoiceTx struct {
	parent   *invoiceStore
	invoices []*entity.Invoice
	details  []*entity.InvoiceDetail
}

func (t *invoiceTx) Create(_ context.Context, inv *entity.Invoice) error {
	if t.parent.failCreate != nil {
		return t.parent.failCreate
	}
	if inv.ID == "" {
		inv.ID = t.parent.nextID("inv")
	}
	t.invoices = append(t.invoices, inv)
	return nil
}

func (t *invoiceTx) CreateDetails(_ context.Context, details []*entity.InvoiceDetail) error {
	if t.parent.failDetails != nil {
		return t.parent.failDetails
	}
	for _, d := range details {
		if d.ID == "" {
			d.ID = t.parent.nextID("det")
		}
	}
	t.details = append(t.details, details...)
	return nil
}

func (t *invoiceTx) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	return t.parent.GetByID(ctx, id)
}

func (t *invoiceTx) GetDetailsByInvoiceID(ctx context.Context, invoiceID string) ([]*entity.InvoiceDetail, error) {
	return t.parent.GetDetailsByInvoiceID(ctx, invoiceID)
}

func (t *invoiceTx) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Invoice, error) {
	return t.parent.ListByUser(ctx, userID, limit, offset)
}

// ──────────────────────────────────────────────────────────────────────────────
// Notificación y PDF
// ──────────────────────────────────────────────────────────────────────────────

type notifierFake struct {
	mu      sync.Mutex
	docs    []billing.InvoiceDocument
	ctxErrs []error
	err     error
	done    chan struct{}
	block   chan struct{}
}

func newNotifierFake() *notifierFake {
	return &notifierFake{done: make(chan struct{}, 8)}
}

func (n *notifierFake) NotifyInvoiceConfirmed(ctx context.Context, doc billing.InvoiceDocument) error {
	n.mu.Lock()
	n.docs = append(n.docs, doc)
	n.ctxErrs = append(n.ctxErrs, ctx.Err())
	n.mu.Unlock()
	if n.block != nil {
		<-n.block
	}
	n.done <- struct{}{}
	return n.err
}

func (n *notifierFake) calls() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.docs)
}

type pdfFake struct {
	got billing.InvoiceDocument
	err error
}

func (p *pdfFake) GenerateInvoicePDF(_ context.Context, doc billing.InvoiceDocument) ([]byte, error) {
	p.got = doc
	if p.err != nil {
		return nil, p.err
	}
	return []byte("%PDF-fake"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// Fixture
// ──────────────────────────────────────────────────────────────────────────────

var fixedNow = time.Date(2026, 5, 4, 9, 30, 0, 0, time.UTC)

type fixture struct {
	users    *userRepoFake
	catalog  *catalogFake
	invoices *invoiceStore
	notifier *notifierFake
}

// newFixture: usuario u-1, modelo m-1 (20000, mínimo 1) con dos componentes estándar.
func newFixture() *fixture {
	return &fixture{
		users: &userRepoFake{users: map[string]*entity.User{
			"u-1": {ID: "u-1", Email: "ana@example.com", Name: "Ana", Role: entity.RoleCustomer, Status: "active"},
		}},
		catalog: &catalogFake{
			models: map[string]*entity.Model{
				"m-1": {ID: "m-1", Name: "Sedan LX", Price: decimal.RequireFromString("20000"), MinQty: 1},
				"m-5": {ID: "m-5", Name: "Fleet Van", Price: decimal.RequireFromString("30000"), MinQty: 5},
			},
			defaults: map[string][]*entity.DefaultConfig{
				"m-1": {
					{ID: "d1", ModelID: "m-1", ComponentID: "c1", Component: comp("c1", "Cloth seats", "500")},
					{ID: "d2", ModelID: "m-1", ComponentID: "c2", Component: comp("c2", "Steel wheels", "300")},
				},
			},
			alternates: map[string][]*entity.AlternateComponent{},
		},
		invoices: &invoiceStore{},
		notifier: newNotifierFake(),
	}
}

func (f *fixture) addAlternate(modelID, id, name, price string) {
	f.catalog.alternates[modelID] = append(f.catalog.alternates[modelID], &entity.AlternateComponent{
		ID: "a-" + id, ModelID: modelID, AltComponentID: id, AltComponent: comp(id, name, price),
	})
}
