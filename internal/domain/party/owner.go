package party

import "github.com/google/uuid"

// OwnerKind tags the concrete kind of a receipt or vehicle owner.
type OwnerKind string

const (
	OwnerKindCustomer OwnerKind = "customer"
	OwnerKindCompany  OwnerKind = "company"
	OwnerKindShowRoom OwnerKind = "showRoom"
)

// IsValid checks if the kind is a known OwnerKind
func (k OwnerKind) IsValid() bool {
	switch k {
	case OwnerKindCustomer, OwnerKindCompany, OwnerKindShowRoom:
		return true
	}
	return false
}

// String returns the string representation of OwnerKind
func (k OwnerKind) String() string {
	return string(k)
}

// Owner is the resolved polymorphic owner reference: exactly one party of the
// tagged kind, or none. The zero value means "unlinked", which is a valid
// state for a receipt whose external id matched no party.
type Owner struct {
	Kind    OwnerKind
	PartyID uuid.UUID
}

// NoOwner returns the unlinked owner reference.
func NoOwner() Owner {
	return Owner{}
}

// IsLinked reports whether the reference points at a party.
func (o Owner) IsLinked() bool {
	return o.PartyID != uuid.Nil
}
