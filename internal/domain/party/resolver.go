package party

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Resolver locates the owning party for a kind tag plus external id and
// maintains the receipt back-reference index. A missing party is never an
// error: the receipt simply stays unlinked.
type Resolver struct {
	customers CustomerRepository
	companies CompanyRepository
	showRooms ShowRoomRepository
	index     ReceiptIndex
}

// NewResolver creates a new Resolver
func NewResolver(
	customers CustomerRepository,
	companies CompanyRepository,
	showRooms ShowRoomRepository,
	index ReceiptIndex,
) *Resolver {
	return &Resolver{
		customers: customers,
		companies: companies,
		showRooms: showRooms,
		index:     index,
	}
}

// Resolve looks up the party of the given kind by external id and returns its
// owner reference, or NoOwner when no party matches.
func (r *Resolver) Resolve(ctx context.Context, kind OwnerKind, externalID string) (Owner, error) {
	if externalID == "" || !kind.IsValid() {
		return NoOwner(), nil
	}

	switch kind {
	case OwnerKindCustomer:
		customer, err := r.customers.FindByExternalID(ctx, externalID)
		if err != nil {
			return NoOwner(), fmt.Errorf("failed to resolve customer: %w", err)
		}
		if customer == nil {
			return NoOwner(), nil
		}
		return customer.Owner(), nil
	case OwnerKindCompany:
		company, err := r.companies.FindByExternalID(ctx, externalID)
		if err != nil {
			return NoOwner(), fmt.Errorf("failed to resolve company: %w", err)
		}
		if company == nil {
			return NoOwner(), nil
		}
		return company.Owner(), nil
	case OwnerKindShowRoom:
		showRoom, err := r.showRooms.FindByExternalID(ctx, externalID)
		if err != nil {
			return NoOwner(), fmt.Errorf("failed to resolve showroom: %w", err)
		}
		if showRoom == nil {
			return NoOwner(), nil
		}
		return showRoom.Owner(), nil
	}
	return NoOwner(), nil
}

// Attach resolves the owner and records the receipt in its back-reference
// index. Attaching the same receipt twice leaves a single index row.
func (r *Resolver) Attach(ctx context.Context, kind OwnerKind, externalID string, receiptID uuid.UUID) (Owner, error) {
	owner, err := r.Resolve(ctx, kind, externalID)
	if err != nil {
		return NoOwner(), err
	}
	if !owner.IsLinked() {
		return NoOwner(), nil
	}
	if err := r.index.Attach(ctx, owner, receiptID); err != nil {
		return NoOwner(), fmt.Errorf("failed to attach receipt to %s: %w", kind, err)
	}
	return owner, nil
}

// Detach removes the receipt from the owner's index. A missing party is not
// an error; deletion cleanup is best-effort.
func (r *Resolver) Detach(ctx context.Context, kind OwnerKind, externalID string, receiptID uuid.UUID) error {
	owner, err := r.Resolve(ctx, kind, externalID)
	if err != nil {
		return err
	}
	if !owner.IsLinked() {
		return nil
	}
	return r.index.Detach(ctx, owner, receiptID)
}
