package billing

import (
	"context"
	"testing"

	"github.com/garage/backend/internal/domain/billing"
	"github.com/garage/backend/internal/domain/party"
	"github.com/garage/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// =============================================================================
// Mock Repositories
// =============================================================================

type MockMoneyReceiptRepository struct {
	mock.Mock
}

func (m *MockMoneyReceiptRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.MoneyReceipt, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.MoneyReceipt), args.Error(1)
}

func (m *MockMoneyReceiptRepository) Save(ctx context.Context, receipt *billing.MoneyReceipt) error {
	args := m.Called(ctx, receipt)
	return args.Error(0)
}

func (m *MockMoneyReceiptRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockMoneyReceiptRepository) UpdateAllRecycled(ctx context.Context, recycled bool) (shared.BulkResult, error) {
	args := m.Called(ctx, recycled)
	return args.Get(0).(shared.BulkResult), args.Error(1)
}

func (m *MockMoneyReceiptRepository) NextReceiptSeq(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByInvoiceOrJobNo(ctx context.Context, invoiceNo, jobNo string) (*billing.Invoice, error) {
	args := m.Called(ctx, invoiceNo, jobNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) Save(ctx context.Context, invoice *billing.Invoice) error {
	args := m.Called(ctx, invoice)
	return args.Error(0)
}

func (m *MockInvoiceRepository) AttachReceipt(ctx context.Context, invoiceID, receiptID uuid.UUID) error {
	args := m.Called(ctx, invoiceID, receiptID)
	return args.Error(0)
}

func (m *MockInvoiceRepository) ReceiptIDs(ctx context.Context, invoiceID uuid.UUID) ([]uuid.UUID, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*party.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByChassisNo(ctx context.Context, chassisNo string) (*party.Vehicle, error) {
	args := m.Called(ctx, chassisNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) FindByOwnerRef(ctx context.Context, externalID string) ([]*party.Vehicle, error) {
	args := m.Called(ctx, externalID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*party.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Save(ctx context.Context, vehicle *party.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) DeleteByOwnerRef(ctx context.Context, externalID string) (int64, error) {
	args := m.Called(ctx, externalID)
	return args.Get(0).(int64), args.Error(1)
}

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*party.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByExternalID(ctx context.Context, customerID string) (*party.Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *party.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}

func (m *MockCustomerRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCompanyRepository struct {
	mock.Mock
}

func (m *MockCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*party.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Company), args.Error(1)
}

func (m *MockCompanyRepository) FindByExternalID(ctx context.Context, companyID string) (*party.Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.Company), args.Error(1)
}

func (m *MockCompanyRepository) Save(ctx context.Context, company *party.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}

func (m *MockCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCompanyRepository) UpdateAllRecycled(ctx context.Context, recycled bool) (shared.BulkResult, error) {
	args := m.Called(ctx, recycled)
	return args.Get(0).(shared.BulkResult), args.Error(1)
}

func (m *MockCompanyRepository) NextCompanySeq(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type MockShowRoomRepository struct {
	mock.Mock
}

func (m *MockShowRoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*party.ShowRoom, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.ShowRoom), args.Error(1)
}

func (m *MockShowRoomRepository) FindByExternalID(ctx context.Context, showRoomID string) (*party.ShowRoom, error) {
	args := m.Called(ctx, showRoomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*party.ShowRoom), args.Error(1)
}

func (m *MockShowRoomRepository) Save(ctx context.Context, showRoom *party.ShowRoom) error {
	args := m.Called(ctx, showRoom)
	return args.Error(0)
}

func (m *MockShowRoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReceiptIndex struct {
	mock.Mock
}

func (m *MockReceiptIndex) Attach(ctx context.Context, owner party.Owner, receiptID uuid.UUID) error {
	args := m.Called(ctx, owner, receiptID)
	return args.Error(0)
}

func (m *MockReceiptIndex) Detach(ctx context.Context, owner party.Owner, receiptID uuid.UUID) error {
	args := m.Called(ctx, owner, receiptID)
	return args.Error(0)
}

func (m *MockReceiptIndex) ReceiptIDs(ctx context.Context, owner party.Owner) ([]uuid.UUID, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

type MockReceiptQuery struct {
	mock.Mock
}

func (m *MockReceiptQuery) Search(ctx context.Context, q billing.ReceiptSearch) ([]*billing.MoneyReceipt, int64, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*billing.MoneyReceipt), args.Get(1).(int64), args.Error(2)
}

type MockReceiptRenderer struct {
	mock.Mock
}

func (m *MockReceiptRenderer) RenderReceipt(ctx context.Context, receipt *billing.MoneyReceipt, vehicle *party.Vehicle, assetBaseURL string) ([]byte, error) {
	args := m.Called(ctx, receipt, vehicle, assetBaseURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// =============================================================================
// Test Fixture
// =============================================================================

type serviceFixture struct {
	service   *MoneyReceiptService
	receipts  *MockMoneyReceiptRepository
	invoices  *MockInvoiceRepository
	vehicles  *MockVehicleRepository
	customers *MockCustomerRepository
	companies *MockCompanyRepository
	showRooms *MockShowRoomRepository
	index     *MockReceiptIndex
	query     *MockReceiptQuery
	renderer  *MockReceiptRenderer
}

func newServiceFixture() *serviceFixture {
	f := &serviceFixture{
		receipts:  new(MockMoneyReceiptRepository),
		invoices:  new(MockInvoiceRepository),
		vehicles:  new(MockVehicleRepository),
		customers: new(MockCustomerRepository),
		companies: new(MockCompanyRepository),
		showRooms: new(MockShowRoomRepository),
		index:     new(MockReceiptIndex),
		query:     new(MockReceiptQuery),
		renderer:  new(MockReceiptRenderer),
	}
	resolver := party.NewResolver(f.customers, f.companies, f.showRooms, f.index)
	scope := NewNoOpTransactionScope(f.receipts, f.invoices, f.vehicles, resolver)

	inWords := func(d decimal.Decimal) string { return "words(" + d.String() + ")" }
	format := func(d decimal.Decimal) string { return d.StringFixed(2) }

	f.service = NewMoneyReceiptService(
		scope, f.query, f.receipts, f.vehicles,
		inWords, format, f.renderer, zap.NewNop(),
	)
	return f
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

// =============================================================================
// Create
// =============================================================================

func TestMoneyReceiptService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("advance payment links owner and reconciles invoice", func(t *testing.T) {
		f := newServiceFixture()
		customer, err := party.NewCustomer("C-55", "Karim")
		require.NoError(t, err)
		invoice, err := billing.NewInvoice("INV-9", "JOB-9", dec("10000"))
		require.NoError(t, err)
		vehicle, err := party.NewVehicle("CH-777")
		require.NoError(t, err)
		vehicle.FullRegNo = "DHAKA METRO GA 11-2233"

		f.receipts.On("NextReceiptSeq", ctx).Return(int64(7), nil)
		f.customers.On("FindByExternalID", ctx, "C-55").Return(customer, nil)
		f.index.On("Attach", ctx, customer.Owner(), mock.Anything).Return(nil)
		f.vehicles.On("FindByChassisNo", ctx, "CH-777").Return(vehicle, nil)
		f.invoices.On("FindByInvoiceOrJobNo", ctx, "INV-9", "JOB-9").Return(invoice, nil)
		f.invoices.On("Save", ctx, invoice).Return(nil)
		f.invoices.On("AttachReceipt", ctx, invoice.ID, mock.Anything).Return(nil)
		f.receipts.On("Save", ctx, mock.AnythingOfType("*billing.MoneyReceipt")).Return(nil)

		resp, err := f.service.Create(ctx, CreateMoneyReceiptRequest{
			UserType:      "customer",
			ExternalID:    "C-55",
			ChassisNo:     "CH-777",
			InvoiceNo:     "INV-9",
			JobNo:         "JOB-9",
			AgainstBillNo: billing.MethodAdvanceAgainstBill,
			TotalAmount:   dec("3000"),
			Advance:       decPtr("3000"),
			Remaining:     decPtr("7000"),
		})

		require.NoError(t, err)
		assert.Equal(t, "M-0007", resp.ReceiptNo)
		assert.Equal(t, "advance", resp.PaymentStatus)
		assert.Equal(t, "words(3000)", resp.TotalInWords)
		assert.Equal(t, "words(3000)", resp.AdvanceInWords)
		assert.Equal(t, "words(7000)", resp.RemainingInWords)
		assert.Equal(t, "DHAKA METRO GA 11-2233", resp.FullRegNo)
		require.NotNil(t, resp.OwnerPartyID)
		assert.Equal(t, customer.ID, *resp.OwnerPartyID)

		assert.True(t, dec("3000").Equal(invoice.Advance))
		assert.True(t, dec("7000").Equal(invoice.Due))
	})

	t.Run("final payment settles the invoice", func(t *testing.T) {
		f := newServiceFixture()
		invoice, err := billing.NewInvoice("INV-2", "JOB-2", dec("10000"))
		require.NoError(t, err)
		invoice.Advance = dec("3000")
		invoice.Due = dec("7000")

		f.receipts.On("NextReceiptSeq", ctx).Return(int64(8), nil)
		f.customers.On("FindByExternalID", ctx, "C-55").Return(nil, nil)
		f.invoices.On("FindByInvoiceOrJobNo", ctx, "INV-2", "JOB-2").Return(invoice, nil)
		f.invoices.On("Save", ctx, invoice).Return(nil)
		f.invoices.On("AttachReceipt", ctx, invoice.ID, mock.Anything).Return(nil)
		f.receipts.On("Save", ctx, mock.AnythingOfType("*billing.MoneyReceipt")).Return(nil)

		resp, err := f.service.Create(ctx, CreateMoneyReceiptRequest{
			UserType:      "customer",
			ExternalID:    "C-55",
			InvoiceNo:     "INV-2",
			JobNo:         "JOB-2",
			AgainstBillNo: billing.MethodFinalAgainstBill,
			TotalAmount:   dec("7000"),
		})

		require.NoError(t, err)
		assert.Equal(t, "final", resp.PaymentStatus)
		assert.True(t, invoice.Due.IsZero())
		assert.True(t, invoice.IsSettled())
	})

	t.Run("missing owner leaves receipt unlinked without error", func(t *testing.T) {
		f := newServiceFixture()
		f.receipts.On("NextReceiptSeq", ctx).Return(int64(9), nil)
		f.showRooms.On("FindByExternalID", ctx, "SR-404").Return(nil, nil)
		f.invoices.On("FindByInvoiceOrJobNo", ctx, "", "").Return(nil, nil)
		f.receipts.On("Save", ctx, mock.AnythingOfType("*billing.MoneyReceipt")).Return(nil)

		resp, err := f.service.Create(ctx, CreateMoneyReceiptRequest{
			UserType:    "showRoom",
			ExternalID:  "SR-404",
			TotalAmount: dec("500"),
		})

		require.NoError(t, err)
		assert.Nil(t, resp.OwnerPartyID)
		f.index.AssertNotCalled(t, "Attach", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("blank advance reads Zero and blank remaining reads empty", func(t *testing.T) {
		f := newServiceFixture()
		f.receipts.On("NextReceiptSeq", ctx).Return(int64(10), nil)
		f.customers.On("FindByExternalID", ctx, "C-1").Return(nil, nil)
		f.invoices.On("FindByInvoiceOrJobNo", ctx, "", "").Return(nil, nil)
		f.receipts.On("Save", ctx, mock.AnythingOfType("*billing.MoneyReceipt")).Return(nil)

		resp, err := f.service.Create(ctx, CreateMoneyReceiptRequest{
			UserType:    "customer",
			ExternalID:  "C-1",
			TotalAmount: dec("100"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Zero", resp.AdvanceInWords)
		assert.Equal(t, "", resp.RemainingInWords)
	})

	t.Run("invalid user type rejected", func(t *testing.T) {
		f := newServiceFixture()
		f.receipts.On("NextReceiptSeq", ctx).Return(int64(11), nil)

		_, err := f.service.Create(ctx, CreateMoneyReceiptRequest{
			UserType:    "vendor",
			ExternalID:  "V-1",
			TotalAmount: dec("100"),
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_USER_TYPE", domainErr.Code)
	})
}

// =============================================================================
// Update / Delete
// =============================================================================

func TestMoneyReceiptService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		f := newServiceFixture()
		id := uuid.New()
		f.receipts.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := f.service.Update(ctx, id, UpdateMoneyReceiptRequest{})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})

	t.Run("re-derives words and relinks owner", func(t *testing.T) {
		f := newServiceFixture()
		receipt, err := billing.NewMoneyReceipt("M-0001", party.OwnerKindCustomer, "C-1", dec("100"))
		require.NoError(t, err)
		customer, err := party.NewCustomer("C-1", "Karim")
		require.NoError(t, err)

		f.receipts.On("FindByID", ctx, receipt.ID).Return(receipt, nil)
		f.customers.On("FindByExternalID", ctx, "C-1").Return(customer, nil)
		f.index.On("Attach", ctx, customer.Owner(), receipt.ID).Return(nil)
		f.receipts.On("Save", ctx, receipt).Return(nil)

		resp, err := f.service.Update(ctx, receipt.ID, UpdateMoneyReceiptRequest{
			TotalAmount: decPtr("250"),
			Advance:     decPtr("50"),
		})

		require.NoError(t, err)
		assert.Equal(t, "words(250)", resp.TotalInWords)
		assert.Equal(t, "words(50)", resp.AdvanceInWords)
		f.index.AssertCalled(t, "Attach", ctx, customer.Owner(), receipt.ID)
	})
}

func TestMoneyReceiptService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("detaches owner and hard deletes", func(t *testing.T) {
		f := newServiceFixture()
		receipt, err := billing.NewMoneyReceipt("M-0001", party.OwnerKindCompany, "CO-1", dec("100"))
		require.NoError(t, err)
		company, err := party.NewCompany("CO-1", "Dhaka Motors", party.OwnerKindCompany)
		require.NoError(t, err)

		f.receipts.On("FindByID", ctx, receipt.ID).Return(receipt, nil)
		f.companies.On("FindByExternalID", ctx, "CO-1").Return(company, nil)
		f.index.On("Detach", ctx, company.Owner(), receipt.ID).Return(nil)
		f.receipts.On("Delete", ctx, receipt.ID).Return(nil)

		require.NoError(t, f.service.Delete(ctx, receipt.ID))
		f.receipts.AssertCalled(t, "Delete", ctx, receipt.ID)
	})

	t.Run("permanently delete behaves identically", func(t *testing.T) {
		f := newServiceFixture()
		receipt, err := billing.NewMoneyReceipt("M-0002", party.OwnerKindCompany, "CO-9", dec("100"))
		require.NoError(t, err)

		f.receipts.On("FindByID", ctx, receipt.ID).Return(receipt, nil)
		f.companies.On("FindByExternalID", ctx, "CO-9").Return(nil, nil)
		f.receipts.On("Delete", ctx, receipt.ID).Return(nil)

		require.NoError(t, f.service.PermanentlyDelete(ctx, receipt.ID))
		f.index.AssertNotCalled(t, "Detach", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("not found", func(t *testing.T) {
		f := newServiceFixture()
		id := uuid.New()
		f.receipts.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		err := f.service.Delete(ctx, id)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})
}

// =============================================================================
// Recycle bin
// =============================================================================

func TestMoneyReceiptService_RecycleBin(t *testing.T) {
	ctx := context.Background()

	t.Run("move and restore single receipt", func(t *testing.T) {
		f := newServiceFixture()
		receipt, err := billing.NewMoneyReceipt("M-0001", party.OwnerKindCustomer, "C-1", dec("100"))
		require.NoError(t, err)

		f.receipts.On("FindByID", ctx, receipt.ID).Return(receipt, nil)
		f.receipts.On("Save", ctx, receipt).Return(nil)

		resp, err := f.service.MoveToRecycleBin(ctx, receipt.ID)
		require.NoError(t, err)
		assert.True(t, resp.IsRecycled)
		assert.NotNil(t, resp.RecycledAt)

		resp, err = f.service.RestoreFromRecycleBin(ctx, receipt.ID)
		require.NoError(t, err)
		assert.False(t, resp.IsRecycled)
		assert.NotNil(t, resp.RecycledAt)
	})

	t.Run("bulk operations report counts", func(t *testing.T) {
		f := newServiceFixture()
		f.receipts.On("UpdateAllRecycled", ctx, true).Return(shared.BulkResult{Matched: 5, Modified: 5}, nil)
		f.receipts.On("UpdateAllRecycled", ctx, false).Return(shared.BulkResult{Matched: 5, Modified: 5}, nil)

		res, err := f.service.MoveAllToRecycleBin(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(5), res.Modified)

		res, err = f.service.RestoreAllFromRecycleBin(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(5), res.Matched)
	})
}

// =============================================================================
// Listings
// =============================================================================

func listReceipt(t *testing.T, receiptNo, jobNo, total string, remaining *string) *billing.MoneyReceipt {
	t.Helper()
	mr, err := billing.NewMoneyReceipt(receiptNo, party.OwnerKindCustomer, "C-1", dec(total))
	require.NoError(t, err)
	mr.JobNo = jobNo
	if remaining != nil {
		mr.Remaining = decPtr(*remaining)
	}
	return mr
}

func strPtr(s string) *string { return &s }

func TestMoneyReceiptService_List(t *testing.T) {
	ctx := context.Background()

	t.Run("annotates job groups with payment colors", func(t *testing.T) {
		f := newServiceFixture()
		page := []*billing.MoneyReceipt{
			listReceipt(t, "M-0001", "JOB-A", "3000", strPtr("7000")),
			listReceipt(t, "M-0002", "JOB-A", "7000", nil),
			listReceipt(t, "M-0003", "JOB-B", "500", strPtr("0")),
			listReceipt(t, "M-0004", "JOB-C", "800", strPtr("800")),
			listReceipt(t, "M-0005", "", "100", nil),
		}
		f.query.On("Search", ctx, mock.AnythingOfType("billing.ReceiptSearch")).Return(page, int64(5), nil)

		resp, err := f.service.List(ctx, ListMoneyReceiptsRequest{Limit: 10, Page: 1})
		require.NoError(t, err)
		require.Len(t, resp.Receipts, 5)

		// JOB-A: first remaining 7000, group total 10000 -> partial
		assert.Equal(t, "#ffad46", resp.Receipts[0].PaymentColor)
		assert.Equal(t, "#ffad46", resp.Receipts[1].PaymentColor)
		// JOB-B: remaining 0 -> paid
		assert.Equal(t, "#2dce89", resp.Receipts[2].PaymentColor)
		// JOB-C: remaining equals total -> unpaid
		assert.Equal(t, "#f5365c", resp.Receipts[3].PaymentColor)
		// no job number -> uncolored
		assert.Equal(t, "", resp.Receipts[4].PaymentColor)

		assert.Equal(t, int64(5), resp.Meta.TotalData)
		assert.Equal(t, 1, resp.Meta.TotalPages)
	})

	t.Run("due listing narrows the search", func(t *testing.T) {
		f := newServiceFixture()
		f.query.On("Search", ctx, mock.MatchedBy(func(q billing.ReceiptSearch) bool {
			return q.DueOnly
		})).Return([]*billing.MoneyReceipt{}, int64(0), nil)

		_, err := f.service.ListDue(ctx, ListMoneyReceiptsRequest{})
		require.NoError(t, err)
		f.query.AssertExpectations(t)
	})
}

// =============================================================================
// Get / RenderPDF
// =============================================================================

func TestMoneyReceiptService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("formats amounts for display", func(t *testing.T) {
		f := newServiceFixture()
		receipt, err := billing.NewMoneyReceipt("M-0001", party.OwnerKindCustomer, "C-1", dec("123456.5"))
		require.NoError(t, err)
		receipt.Advance = decPtr("1000")

		f.receipts.On("FindByID", ctx, receipt.ID).Return(receipt, nil)

		detail, err := f.service.Get(ctx, receipt.ID)
		require.NoError(t, err)
		assert.Equal(t, "123456.50", detail.TotalAmountDisplay)
		assert.Equal(t, "1000.00", detail.AdvanceDisplay)
		assert.Equal(t, "", detail.RemainingDisplay)
	})

	t.Run("not found", func(t *testing.T) {
		f := newServiceFixture()
		id := uuid.New()
		f.receipts.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := f.service.Get(ctx, id)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NOT_FOUND", domainErr.Code)
	})
}

func TestMoneyReceiptService_RenderPDF(t *testing.T) {
	ctx := context.Background()

	t.Run("renders linked vehicle", func(t *testing.T) {
		f := newServiceFixture()
		receipt, err := billing.NewMoneyReceipt("M-0001", party.OwnerKindCustomer, "C-1", dec("100"))
		require.NoError(t, err)
		vehicle, err := party.NewVehicle("CH-1")
		require.NoError(t, err)
		receipt.LinkVehicle(vehicle, "DHAKA METRO 1")

		f.receipts.On("FindByID", ctx, receipt.ID).Return(receipt, nil)
		f.vehicles.On("FindByID", ctx, vehicle.ID).Return(vehicle, nil)
		f.renderer.On("RenderReceipt", ctx, receipt, vehicle, "https://assets.example.com").
			Return([]byte("%PDF-1.4"), nil)

		pdf, err := f.service.RenderPDF(ctx, receipt.ID, "https://assets.example.com")
		require.NoError(t, err)
		assert.NotEmpty(t, pdf)
	})

	t.Run("renderer failure maps to rendering failure", func(t *testing.T) {
		f := newServiceFixture()
		receipt, err := billing.NewMoneyReceipt("M-0001", party.OwnerKindCustomer, "C-1", dec("100"))
		require.NoError(t, err)

		f.receipts.On("FindByID", ctx, receipt.ID).Return(receipt, nil)
		f.renderer.On("RenderReceipt", ctx, receipt, (*party.Vehicle)(nil), "base").
			Return(nil, assert.AnError)

		_, err = f.service.RenderPDF(ctx, receipt.ID, "base")

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "RENDERING_FAILURE", domainErr.Code)
	})
}
