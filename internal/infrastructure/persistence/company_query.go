package persistence

import (
	"context"
	"strconv"
	"strings"

	"github.com/garage/backend/internal/domain/party"
	"github.com/garage/backend/internal/domain/shared"
	"github.com/garage/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// companyTextColumns are matched by case-insensitive substring across the
// company row and its joined fleet.
var companyTextColumns = []string{
	"companies.company_id",
	"companies.name",
	"companies.vehicle_user",
	"companies.contact",
	"companies.email",
	"companies.address",
	"vehicles.chassis_no",
	"vehicles.full_reg_no",
	"vehicles.vehicle_name",
}

// GormCompanyQuery implements the company read side using GORM. Each result
// row carries the company plus its fleet, so the search joins vehicles and
// collapses back to distinct companies.
type GormCompanyQuery struct {
	db *gorm.DB
}

// NewGormCompanyQuery creates a new GormCompanyQuery
func NewGormCompanyQuery(db *gorm.DB) *GormCompanyQuery {
	return &GormCompanyQuery{db: db}
}

// Search returns the matching page of companies newest first, each with its
// vehicles, plus the total match count.
func (q *GormCompanyQuery) Search(ctx context.Context, search shared.ListQuery) ([]*party.CompanyWithVehicles, int64, error) {
	var total int64
	countQuery := q.applyFilter(q.db.WithContext(ctx).Model(&models.CompanyModel{}), search).
		Distinct("companies.id")
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := q.applyFilter(q.db.WithContext(ctx).Model(&models.CompanyModel{}), search).
		Distinct("companies.*").
		Order("companies.created_at DESC")
	if search.Paginate() {
		listQuery = listQuery.Offset(search.Offset()).Limit(search.Limit)
	}

	var companyModels []models.CompanyModel
	if err := listQuery.Find(&companyModels).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]*party.CompanyWithVehicles, len(companyModels))
	if len(companyModels) == 0 {
		return rows, total, nil
	}

	externalIDs := make([]string, len(companyModels))
	for i := range companyModels {
		externalIDs[i] = companyModels[i].CompanyID
	}

	var vehicleModels []models.VehicleModel
	if err := q.db.WithContext(ctx).
		Where("owner_ref_id IN ?", externalIDs).
		Order("created_at ASC").
		Find(&vehicleModels).Error; err != nil {
		return nil, 0, err
	}

	fleets := make(map[string][]*party.Vehicle, len(companyModels))
	for i := range vehicleModels {
		v := vehicleModels[i].ToDomain()
		fleets[v.OwnerRefID] = append(fleets[v.OwnerRefID], v)
	}

	for i := range companyModels {
		company := companyModels[i].ToDomain()
		rows[i] = &party.CompanyWithVehicles{
			Company:  company,
			Vehicles: fleets[company.CompanyID],
		}
	}
	return rows, total, nil
}

// applyFilter translates the listing parameters into joins and WHERE clauses
func (q *GormCompanyQuery) applyFilter(query *gorm.DB, search shared.ListQuery) *gorm.DB {
	query = query.Joins("LEFT JOIN vehicles ON vehicles.owner_ref_id = companies.company_id")

	if search.IsRecycled != nil {
		query = query.Where("companies.is_recycled = ?", *search.IsRecycled)
	}

	if term := strings.TrimSpace(search.SearchTerm); term != "" {
		pattern := "%" + escapeLike(term) + "%"
		var clauses []string
		var args []interface{}
		for _, col := range companyTextColumns {
			clauses = append(clauses, col+" ILIKE ?")
			args = append(args, pattern)
		}
		if model, err := strconv.Atoi(term); err == nil {
			clauses = append(clauses, "vehicles.vehicle_model = ?")
			args = append(args, model)
		}
		query = query.Where(strings.Join(clauses, " OR "), args...)
	}

	return query
}

// Ensure GormCompanyQuery implements CompanyQuery
var _ party.CompanyQuery = (*GormCompanyQuery)(nil)
