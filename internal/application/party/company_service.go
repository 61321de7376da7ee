package party

import (
	"context"
	"fmt"

	"github.com/garage/backend/internal/domain/party"
	"github.com/garage/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CompanyService handles the corporate account lifecycle. A company is
// created together with its first vehicle; its fleet is keyed by the
// company's external id and is deleted with it.
type CompanyService struct {
	scope     TransactionScope
	companies party.CompanyRepository
	vehicles  party.VehicleRepository
	query     party.CompanyQuery
	index     party.ReceiptIndex
	logger    *zap.Logger
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(
	scope TransactionScope,
	companies party.CompanyRepository,
	vehicles party.VehicleRepository,
	query party.CompanyQuery,
	index party.ReceiptIndex,
	logger *zap.Logger,
) *CompanyService {
	return &CompanyService{
		scope:     scope,
		companies: companies,
		vehicles:  vehicles,
		query:     query,
		index:     index,
		logger:    logger,
	}
}

// CreateWithVehicle creates a company and its first vehicle atomically. The
// payload must carry user_type "company" and a vehicle; anything else
// conflicts and nothing is persisted.
func (s *CompanyService) CreateWithVehicle(ctx context.Context, req CreateCompanyRequest) (*CompanyResponse, error) {
	var created *party.Company
	var fleet []*party.Vehicle

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		seq, err := repos.Companies().NextCompanySeq(ctx)
		if err != nil {
			return fmt.Errorf("failed to generate company id: %w", err)
		}

		company, err := party.NewCompany(
			formatCompanyID(seq),
			req.Company.Name,
			party.OwnerKind(req.Company.UserType),
		)
		if err != nil {
			return err
		}
		applyCompanyPayload(company, req.Company)

		if err := repos.Companies().Save(ctx, company); err != nil {
			return fmt.Errorf("failed to save company: %w", err)
		}

		if company.UserType != party.OwnerKindCompany || req.Vehicle == nil {
			return shared.NewDomainError("CONFLICT", "Company requires user_type company and a vehicle")
		}

		vehicle, err := newCompanyVehicle(company, *req.Vehicle)
		if err != nil {
			return err
		}
		if err := repos.Vehicles().Save(ctx, vehicle); err != nil {
			return fmt.Errorf("failed to save vehicle: %w", err)
		}

		created = company
		fleet = []*party.Vehicle{vehicle}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("company created",
		zap.String("company_id", created.CompanyID),
		zap.String("company_name", created.Name),
	)
	return toCompanyResponse(created, fleet), nil
}

// Get returns a company with its fleet and the ids of its money receipts.
func (s *CompanyService) Get(ctx context.Context, id uuid.UUID) (*CompanyDetailResponse, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	fleet, err := s.vehicles.FindByOwnerRef(ctx, company.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list vehicles: %w", err)
	}
	receiptIDs, err := s.index.ReceiptIDs(ctx, company.Owner())
	if err != nil {
		return nil, fmt.Errorf("failed to list receipts: %w", err)
	}

	return &CompanyDetailResponse{
		CompanyResponse: toCompanyResponse(company, fleet),
		MoneyReceiptIDs: receiptIDs,
	}, nil
}

// Update rewrites the company fields and upserts the vehicle by chassis
// number: an existing vehicle is updated in place, a new one binds to the
// company's external id.
func (s *CompanyService) Update(ctx context.Context, id uuid.UUID, req UpdateCompanyRequest) (*CompanyResponse, error) {
	var updated *party.Company

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		company, err := repos.Companies().FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get company: %w", err)
		}

		applyCompanyPayload(company, req.Company)
		if err := repos.Companies().Save(ctx, company); err != nil {
			return fmt.Errorf("failed to save company: %w", err)
		}

		if req.Vehicle != nil && req.Vehicle.ChassisNo != "" {
			existing, err := repos.Vehicles().FindByChassisNo(ctx, req.Vehicle.ChassisNo)
			if err != nil {
				return fmt.Errorf("failed to look up vehicle: %w", err)
			}
			if existing != nil {
				applyVehiclePayload(existing, *req.Vehicle)
				if err := repos.Vehicles().Save(ctx, existing); err != nil {
					return fmt.Errorf("failed to save vehicle: %w", err)
				}
			} else {
				vehicle, err := newCompanyVehicle(company, *req.Vehicle)
				if err != nil {
					return err
				}
				if err := repos.Vehicles().Save(ctx, vehicle); err != nil {
					return fmt.Errorf("failed to save vehicle: %w", err)
				}
			}
		}

		updated = company
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toCompanyResponse(updated, nil), nil
}

// Delete removes the company and every vehicle keyed by its external id. A
// recycled company deletes the same way as a live one.
func (s *CompanyService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		company, err := repos.Companies().FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get company: %w", err)
		}

		deleted, err := repos.Vehicles().DeleteByOwnerRef(ctx, company.CompanyID)
		if err != nil {
			return fmt.Errorf("failed to delete vehicles: %w", err)
		}
		if err := repos.Companies().Delete(ctx, company.ID); err != nil {
			return fmt.Errorf("failed to delete company: %w", err)
		}

		s.logger.Info("company deleted",
			zap.String("company_id", company.CompanyID),
			zap.Int64("vehicles_deleted", deleted),
		)
		return nil
	})
}

// PermanentlyDelete removes the company. It is the same operation as Delete;
// both entry points of the public API perform an identical hard delete.
func (s *CompanyService) PermanentlyDelete(ctx context.Context, id uuid.UUID) error {
	return s.Delete(ctx, id)
}

// MoveToRecycleBin marks the company as recycled.
func (s *CompanyService) MoveToRecycleBin(ctx context.Context, id uuid.UUID) (*CompanyResponse, error) {
	return s.setRecycled(ctx, id, true)
}

// RestoreFromRecycleBin returns the company to the live set. The recycle
// timestamp records the restore time.
func (s *CompanyService) RestoreFromRecycleBin(ctx context.Context, id uuid.UUID) (*CompanyResponse, error) {
	return s.setRecycled(ctx, id, false)
}

func (s *CompanyService) setRecycled(ctx context.Context, id uuid.UUID, recycled bool) (*CompanyResponse, error) {
	company, err := s.companies.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get company: %w", err)
	}

	if recycled {
		company.MoveToRecycleBin()
	} else {
		company.RestoreFromRecycleBin()
	}
	if err := s.companies.Save(ctx, company); err != nil {
		return nil, fmt.Errorf("failed to save company: %w", err)
	}
	return toCompanyResponse(company, nil), nil
}

// MoveAllToRecycleBin recycles every company.
func (s *CompanyService) MoveAllToRecycleBin(ctx context.Context) (shared.BulkResult, error) {
	return s.companies.UpdateAllRecycled(ctx, true)
}

// RestoreAllFromRecycleBin restores every recycled company and clears its
// recycle timestamp. Live companies are untouched.
func (s *CompanyService) RestoreAllFromRecycleBin(ctx context.Context) (shared.BulkResult, error) {
	return s.companies.UpdateAllRecycled(ctx, false)
}

// List returns a page of companies with their fleets, newest first. The meta
// includes the explicit page-number list.
func (s *CompanyService) List(ctx context.Context, q shared.ListQuery) (*ListCompaniesResponse, error) {
	rows, total, err := s.query.Search(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}

	companies := make([]*CompanyResponse, len(rows))
	for i, row := range rows {
		companies[i] = toCompanyResponse(row.Company, row.Vehicles)
	}

	return &ListCompaniesResponse{
		Companies: companies,
		Meta:      shared.NewPageMeta(total, q.Limit, q.Page).WithPageNumbers(),
	}, nil
}

func formatCompanyID(seq int64) string {
	return fmt.Sprintf("C-%04d", seq)
}

func applyCompanyPayload(c *party.Company, p CompanyPayload) {
	if p.UserType != "" {
		c.UserType = party.OwnerKind(p.UserType)
	}
	if p.Name != "" {
		c.Name = p.Name
	}
	if p.VehicleUser != "" {
		c.VehicleUser = p.VehicleUser
	}
	if p.Contact != "" {
		c.Contact = p.Contact
	}
	if p.CountryCode != "" {
		c.CountryCode = p.CountryCode
	}
	if p.Email != "" {
		c.Email = p.Email
	}
	if p.Address != "" {
		c.Address = p.Address
	}
}

func applyVehiclePayload(v *party.Vehicle, p VehiclePayload) {
	if p.FullRegNo != "" {
		v.FullRegNo = p.FullRegNo
	}
	if p.VehicleName != "" {
		v.VehicleName = p.VehicleName
	}
	if p.VehicleModel != 0 {
		v.VehicleModel = p.VehicleModel
	}
}

func newCompanyVehicle(company *party.Company, p VehiclePayload) (*party.Vehicle, error) {
	vehicle, err := party.NewVehicle(p.ChassisNo)
	if err != nil {
		return nil, err
	}
	applyVehiclePayload(vehicle, p)
	if err := vehicle.AssignOwner(party.OwnerKindCompany, company.CompanyID, company.ID); err != nil {
		return nil, err
	}
	return vehicle, nil
}
