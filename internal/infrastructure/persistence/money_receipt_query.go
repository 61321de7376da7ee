package persistence

import (
	"context"
	"strings"

	"github.com/garage/backend/internal/domain/billing"
	"github.com/garage/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// likeEscaper neutralizes LIKE metacharacters in user-supplied search terms.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike returns the term with LIKE wildcards escaped so it matches
// literally inside an ILIKE pattern.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

// receiptTextColumns are the columns the free-text receipt search matches by
// case-insensitive substring.
var receiptTextColumns = []string{
	"receipt_no",
	"job_no",
	"chassis_no",
	"full_reg_no",
	"payment_method",
	"bank_name",
	"date",
}

// receiptNumericColumns are matched by exact value when the search term
// parses as a number.
var receiptNumericColumns = []string{
	"total_amount",
	"remaining",
}

// GormMoneyReceiptQuery implements the receipt read side using GORM
type GormMoneyReceiptQuery struct {
	db *gorm.DB
}

// NewGormMoneyReceiptQuery creates a new GormMoneyReceiptQuery
func NewGormMoneyReceiptQuery(db *gorm.DB) *GormMoneyReceiptQuery {
	return &GormMoneyReceiptQuery{db: db}
}

// Search returns the matching page of receipts newest first plus the total
// match count. The count shares the filter but ignores pagination.
func (q *GormMoneyReceiptQuery) Search(ctx context.Context, search billing.ReceiptSearch) ([]*billing.MoneyReceipt, int64, error) {
	var total int64
	countQuery := q.applyFilter(q.db.WithContext(ctx).Model(&models.MoneyReceiptModel{}), search)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	listQuery := q.applyFilter(q.db.WithContext(ctx).Model(&models.MoneyReceiptModel{}), search).
		Order("created_at DESC")
	if search.Paginate() {
		listQuery = listQuery.Offset(search.Offset()).Limit(search.Limit)
	}

	var receiptModels []models.MoneyReceiptModel
	if err := listQuery.Find(&receiptModels).Error; err != nil {
		return nil, 0, err
	}

	receipts := make([]*billing.MoneyReceipt, len(receiptModels))
	for i := range receiptModels {
		receipts[i] = receiptModels[i].ToDomain()
	}
	return receipts, total, nil
}

// applyFilter translates the search parameters into WHERE clauses
func (q *GormMoneyReceiptQuery) applyFilter(query *gorm.DB, search billing.ReceiptSearch) *gorm.DB {
	if search.IsRecycled != nil {
		query = query.Where("is_recycled = ?", *search.IsRecycled)
	}
	if search.OwnerID != nil {
		query = query.Where("owner_party_id = ? OR vehicle_id = ?", *search.OwnerID, *search.OwnerID)
	}
	if search.DueOnly {
		query = query.Where("remaining > 0")
	}

	if term := strings.TrimSpace(search.SearchTerm); term != "" {
		pattern := "%" + escapeLike(term) + "%"
		var clauses []string
		var args []interface{}
		for _, col := range receiptTextColumns {
			clauses = append(clauses, col+" ILIKE ?")
			args = append(args, pattern)
		}
		if amount, err := decimal.NewFromString(term); err == nil {
			for _, col := range receiptNumericColumns {
				clauses = append(clauses, col+" = ?")
				args = append(args, amount)
			}
		}
		query = query.Where(strings.Join(clauses, " OR "), args...)
	}

	return query
}

// Ensure GormMoneyReceiptQuery implements MoneyReceiptQuery
var _ billing.MoneyReceiptQuery = (*GormMoneyReceiptQuery)(nil)
