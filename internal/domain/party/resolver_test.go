package party

import (
	"context"
	"errors"
	"testing"

	"github.com/garage/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Mock Repositories
// =============================================================================

type MockCustomerRepository struct {
	mock.Mock
}

func (m *MockCustomerRepository) FindByID(ctx context.Context, id uuid.UUID) (*Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Customer), args.Error(1)
}

func (m *MockCustomerRepository) FindByExternalID(ctx context.Context, customerID string) (*Customer, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Customer), args.Error(1)
}

func (m *MockCustomerRepository) Save(ctx context.Context, customer *Customer) error {
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

func (m *MockCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Company), args.Error(1)
}

func (m *MockCompanyRepository) FindByExternalID(ctx context.Context, companyID string) (*Company, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Company), args.Error(1)
}

func (m *MockCompanyRepository) Save(ctx context.Context, company *Company) error {
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

func (m *MockShowRoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*ShowRoom, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ShowRoom), args.Error(1)
}

func (m *MockShowRoomRepository) FindByExternalID(ctx context.Context, showRoomID string) (*ShowRoom, error) {
	args := m.Called(ctx, showRoomID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ShowRoom), args.Error(1)
}

func (m *MockShowRoomRepository) Save(ctx context.Context, showRoom *ShowRoom) error {
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

func (m *MockReceiptIndex) Attach(ctx context.Context, owner Owner, receiptID uuid.UUID) error {
	args := m.Called(ctx, owner, receiptID)
	return args.Error(0)
}

func (m *MockReceiptIndex) Detach(ctx context.Context, owner Owner, receiptID uuid.UUID) error {
	args := m.Called(ctx, owner, receiptID)
	return args.Error(0)
}

func (m *MockReceiptIndex) ReceiptIDs(ctx context.Context, owner Owner) ([]uuid.UUID, error) {
	args := m.Called(ctx, owner)
	return args.Get(0).([]uuid.UUID), args.Error(1)
}

func newTestResolver() (*Resolver, *MockCustomerRepository, *MockCompanyRepository, *MockShowRoomRepository, *MockReceiptIndex) {
	customers := new(MockCustomerRepository)
	companies := new(MockCompanyRepository)
	showRooms := new(MockShowRoomRepository)
	index := new(MockReceiptIndex)
	return NewResolver(customers, companies, showRooms, index), customers, companies, showRooms, index
}

// =============================================================================
// Resolver Tests
// =============================================================================

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("resolves customer by external id", func(t *testing.T) {
		resolver, customers, _, _, _ := newTestResolver()
		customer, err := NewCustomer("C-100", "Rahim")
		require.NoError(t, err)
		customers.On("FindByExternalID", ctx, "C-100").Return(customer, nil)

		owner, err := resolver.Resolve(ctx, OwnerKindCustomer, "C-100")

		require.NoError(t, err)
		assert.True(t, owner.IsLinked())
		assert.Equal(t, OwnerKindCustomer, owner.Kind)
		assert.Equal(t, customer.ID, owner.PartyID)
	})

	t.Run("missing party resolves to no owner without error", func(t *testing.T) {
		resolver, _, companies, _, _ := newTestResolver()
		companies.On("FindByExternalID", ctx, "CO-404").Return(nil, nil)

		owner, err := resolver.Resolve(ctx, OwnerKindCompany, "CO-404")

		require.NoError(t, err)
		assert.False(t, owner.IsLinked())
	})

	t.Run("blank external id resolves to no owner", func(t *testing.T) {
		resolver, _, _, _, _ := newTestResolver()

		owner, err := resolver.Resolve(ctx, OwnerKindShowRoom, "")

		require.NoError(t, err)
		assert.False(t, owner.IsLinked())
	})

	t.Run("repository error propagates", func(t *testing.T) {
		resolver, _, _, showRooms, _ := newTestResolver()
		showRooms.On("FindByExternalID", ctx, "SR-1").Return(nil, errors.New("db down"))

		_, err := resolver.Resolve(ctx, OwnerKindShowRoom, "SR-1")

		assert.Error(t, err)
	})
}

func TestResolver_Attach(t *testing.T) {
	ctx := context.Background()
	receiptID := uuid.New()

	t.Run("attaches receipt to resolved owner", func(t *testing.T) {
		resolver, customers, _, _, index := newTestResolver()
		customer, err := NewCustomer("C-100", "Rahim")
		require.NoError(t, err)
		customers.On("FindByExternalID", ctx, "C-100").Return(customer, nil)
		index.On("Attach", ctx, customer.Owner(), receiptID).Return(nil)

		owner, err := resolver.Attach(ctx, OwnerKindCustomer, "C-100", receiptID)

		require.NoError(t, err)
		assert.Equal(t, customer.ID, owner.PartyID)
		index.AssertCalled(t, "Attach", ctx, customer.Owner(), receiptID)
	})

	t.Run("missing owner attaches nothing", func(t *testing.T) {
		resolver, customers, _, _, index := newTestResolver()
		customers.On("FindByExternalID", ctx, "C-404").Return(nil, nil)

		owner, err := resolver.Attach(ctx, OwnerKindCustomer, "C-404", receiptID)

		require.NoError(t, err)
		assert.False(t, owner.IsLinked())
		index.AssertNotCalled(t, "Attach", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestResolver_Detach(t *testing.T) {
	ctx := context.Background()
	receiptID := uuid.New()

	t.Run("detaches from resolved owner", func(t *testing.T) {
		resolver, _, companies, _, index := newTestResolver()
		company, err := NewCompany("CO-7", "Dhaka Motors", OwnerKindCompany)
		require.NoError(t, err)
		companies.On("FindByExternalID", ctx, "CO-7").Return(company, nil)
		index.On("Detach", ctx, company.Owner(), receiptID).Return(nil)

		err = resolver.Detach(ctx, OwnerKindCompany, "CO-7", receiptID)

		require.NoError(t, err)
		index.AssertCalled(t, "Detach", ctx, company.Owner(), receiptID)
	})

	t.Run("missing party at detach is not an error", func(t *testing.T) {
		resolver, _, companies, _, index := newTestResolver()
		companies.On("FindByExternalID", ctx, "CO-404").Return(nil, nil)

		err := resolver.Detach(ctx, OwnerKindCompany, "CO-404", receiptID)

		require.NoError(t, err)
		index.AssertNotCalled(t, "Detach", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestOwnerKind_IsValid(t *testing.T) {
	assert.True(t, OwnerKindCustomer.IsValid())
	assert.True(t, OwnerKindCompany.IsValid())
	assert.True(t, OwnerKindShowRoom.IsValid())
	assert.False(t, OwnerKind("vendor").IsValid())
	assert.False(t, OwnerKind("").IsValid())
}
