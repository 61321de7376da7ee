package billing

import (
	"context"
	"fmt"

	"github.com/garage/backend/internal/domain/billing"
	"github.com/garage/backend/internal/domain/party"
	"github.com/garage/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ReceiptRenderer renders a money receipt into a printable PDF document.
// The vehicle is the receipt's linked vehicle, nil when none is linked.
type ReceiptRenderer interface {
	RenderReceipt(ctx context.Context, receipt *billing.MoneyReceipt, vehicle *party.Vehicle, assetBaseURL string) ([]byte, error)
}

// FormatCurrency renders a monetary amount for display.
type FormatCurrency func(decimal.Decimal) string

// MoneyReceiptService handles the money receipt lifecycle: creation with
// owner/vehicle/invoice linkage and invoice reconciliation, updates, the
// recycle bin, listings and PDF rendering.
type MoneyReceiptService struct {
	scope    TransactionScope
	query    billing.MoneyReceiptQuery
	receipts billing.MoneyReceiptRepository
	vehicles party.VehicleRepository
	inWords  billing.AmountInWords
	format   FormatCurrency
	renderer ReceiptRenderer
	logger   *zap.Logger
}

// NewMoneyReceiptService creates a new MoneyReceiptService
func NewMoneyReceiptService(
	scope TransactionScope,
	query billing.MoneyReceiptQuery,
	receipts billing.MoneyReceiptRepository,
	vehicles party.VehicleRepository,
	inWords billing.AmountInWords,
	format FormatCurrency,
	renderer ReceiptRenderer,
	logger *zap.Logger,
) *MoneyReceiptService {
	return &MoneyReceiptService{
		scope:    scope,
		query:    query,
		receipts: receipts,
		vehicles: vehicles,
		inWords:  inWords,
		format:   format,
		renderer: renderer,
		logger:   logger,
	}
}

// Create records a payment: generates the receipt number, derives the payment
// status and the in-words amounts, links the owner party, vehicle and invoice
// when they exist, and reconciles the invoice balance. Everything happens in
// one transaction; a missing owner, vehicle or invoice skips its linkage step
// without failing the receipt.
func (s *MoneyReceiptService) Create(ctx context.Context, req CreateMoneyReceiptRequest) (*MoneyReceiptResponse, error) {
	var created *billing.MoneyReceipt

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		seq, err := repos.Receipts().NextReceiptSeq(ctx)
		if err != nil {
			return fmt.Errorf("failed to generate receipt number: %w", err)
		}

		receipt, err := billing.NewMoneyReceipt(
			formatReceiptNo(seq),
			party.OwnerKind(req.UserType),
			req.ExternalID,
			req.TotalAmount,
		)
		if err != nil {
			return err
		}
		if err := receipt.SetAmounts(req.Advance, req.Remaining); err != nil {
			return err
		}
		receipt.ChassisNo = req.ChassisNo
		receipt.InvoiceNo = req.InvoiceNo
		receipt.JobNo = req.JobNo
		receipt.Date = req.Date
		receipt.AgainstBillNo = req.AgainstBillNo
		receipt.PaymentMethod = req.PaymentMethod
		receipt.AccountNo = req.AccountNo
		receipt.TransactionNo = req.TransactionNo
		receipt.CheckNo = req.CheckNo
		receipt.BankName = req.BankName
		receipt.PaymentStatus = billing.DerivePaymentStatus(req.AgainstBillNo)
		receipt.DeriveWords(s.inWords)

		owner, err := repos.Parties().Attach(ctx, receipt.OwnerKind, receipt.ExternalID, receipt.ID)
		if err != nil {
			return err
		}
		if err := receipt.LinkOwner(owner); err != nil {
			return err
		}

		if receipt.ChassisNo != "" {
			vehicle, err := repos.Vehicles().FindByChassisNo(ctx, receipt.ChassisNo)
			if err != nil {
				return fmt.Errorf("failed to look up vehicle: %w", err)
			}
			if vehicle != nil {
				receipt.LinkVehicle(vehicle, vehicle.FullRegNo)
			}
		}

		invoice, err := repos.Invoices().FindByInvoiceOrJobNo(ctx, receipt.InvoiceNo, receipt.JobNo)
		if err != nil {
			return fmt.Errorf("failed to look up invoice: %w", err)
		}
		if invoice != nil {
			receipt.PaymentStatus = billing.Reconcile(invoice, receipt.PaymentDraft())
			receipt.LinkInvoice(invoice)
			if err := repos.Invoices().Save(ctx, invoice); err != nil {
				return fmt.Errorf("failed to save invoice: %w", err)
			}
			if err := repos.Invoices().AttachReceipt(ctx, invoice.ID, receipt.ID); err != nil {
				return fmt.Errorf("failed to index receipt on invoice: %w", err)
			}
		}

		if err := repos.Receipts().Save(ctx, receipt); err != nil {
			return fmt.Errorf("failed to save money receipt: %w", err)
		}
		created = receipt
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("money receipt created",
		zap.String("receipt_no", created.ReceiptNo),
		zap.String("user_type", created.OwnerKind.String()),
		zap.String("total_amount", created.TotalAmount.String()),
	)
	return toMoneyReceiptResponse(created), nil
}

// Update rewrites the editable receipt fields, re-derives the in-words
// amounts and payment status, and re-links owner and vehicle. The receipt
// index attach is idempotent, so repeated updates leave a single back
// reference. Invoice balances are not re-reconciled on update.
func (s *MoneyReceiptService) Update(ctx context.Context, id uuid.UUID, req UpdateMoneyReceiptRequest) (*MoneyReceiptResponse, error) {
	var updated *billing.MoneyReceipt

	err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		receipt, err := repos.Receipts().FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get money receipt: %w", err)
		}

		if req.UserType != "" {
			receipt.OwnerKind = party.OwnerKind(req.UserType)
		}
		if req.ExternalID != "" {
			receipt.ExternalID = req.ExternalID
		}
		if req.ChassisNo != "" {
			receipt.ChassisNo = req.ChassisNo
		}
		if req.InvoiceNo != "" {
			receipt.InvoiceNo = req.InvoiceNo
		}
		if req.JobNo != "" {
			receipt.JobNo = req.JobNo
		}
		if req.Date != "" {
			receipt.Date = req.Date
		}
		if req.AgainstBillNo != "" {
			receipt.AgainstBillNo = req.AgainstBillNo
			receipt.PaymentStatus = billing.DerivePaymentStatus(req.AgainstBillNo)
		}
		if req.TotalAmount != nil {
			if req.TotalAmount.IsNegative() {
				return shared.NewDomainError("INVALID_AMOUNT", "Total amount cannot be negative")
			}
			receipt.TotalAmount = *req.TotalAmount
		}
		if req.Advance != nil || req.Remaining != nil {
			advance, remaining := receipt.Advance, receipt.Remaining
			if req.Advance != nil {
				advance = req.Advance
			}
			if req.Remaining != nil {
				remaining = req.Remaining
			}
			if err := receipt.SetAmounts(advance, remaining); err != nil {
				return err
			}
		}
		if req.PaymentMethod != "" {
			receipt.PaymentMethod = req.PaymentMethod
		}
		if req.AccountNo != "" {
			receipt.AccountNo = req.AccountNo
		}
		if req.TransactionNo != "" {
			receipt.TransactionNo = req.TransactionNo
		}
		if req.CheckNo != "" {
			receipt.CheckNo = req.CheckNo
		}
		if req.BankName != "" {
			receipt.BankName = req.BankName
		}
		receipt.DeriveWords(s.inWords)

		owner, err := repos.Parties().Attach(ctx, receipt.OwnerKind, receipt.ExternalID, receipt.ID)
		if err != nil {
			return err
		}
		if err := receipt.LinkOwner(owner); err != nil {
			return err
		}

		if receipt.ChassisNo != "" {
			vehicle, err := repos.Vehicles().FindByChassisNo(ctx, receipt.ChassisNo)
			if err != nil {
				return fmt.Errorf("failed to look up vehicle: %w", err)
			}
			if vehicle != nil {
				receipt.LinkVehicle(vehicle, vehicle.FullRegNo)
			}
		}

		if err := repos.Receipts().Save(ctx, receipt); err != nil {
			return fmt.Errorf("failed to save money receipt: %w", err)
		}
		updated = receipt
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toMoneyReceiptResponse(updated), nil
}

// Delete removes the receipt permanently and detaches it from its owner's
// receipt index. A receipt in the recycle bin and a live receipt delete the
// same way.
func (s *MoneyReceiptService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
		receipt, err := repos.Receipts().FindByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to get money receipt: %w", err)
		}

		if err := repos.Parties().Detach(ctx, receipt.OwnerKind, receipt.ExternalID, receipt.ID); err != nil {
			return err
		}
		if err := repos.Receipts().Delete(ctx, receipt.ID); err != nil {
			return fmt.Errorf("failed to delete money receipt: %w", err)
		}
		return nil
	})
}

// PermanentlyDelete removes the receipt. It is the same operation as Delete;
// both entry points of the public API perform an identical hard delete.
func (s *MoneyReceiptService) PermanentlyDelete(ctx context.Context, id uuid.UUID) error {
	return s.Delete(ctx, id)
}

// MoveToRecycleBin marks the receipt as recycled.
func (s *MoneyReceiptService) MoveToRecycleBin(ctx context.Context, id uuid.UUID) (*MoneyReceiptResponse, error) {
	return s.setRecycled(ctx, id, true)
}

// RestoreFromRecycleBin returns the receipt to the live set. The recycle
// timestamp records the restore time.
func (s *MoneyReceiptService) RestoreFromRecycleBin(ctx context.Context, id uuid.UUID) (*MoneyReceiptResponse, error) {
	return s.setRecycled(ctx, id, false)
}

func (s *MoneyReceiptService) setRecycled(ctx context.Context, id uuid.UUID, recycled bool) (*MoneyReceiptResponse, error) {
	receipt, err := s.receipts.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get money receipt: %w", err)
	}

	if recycled {
		receipt.MoveToRecycleBin()
	} else {
		receipt.RestoreFromRecycleBin()
	}
	if err := s.receipts.Save(ctx, receipt); err != nil {
		return nil, fmt.Errorf("failed to save money receipt: %w", err)
	}
	return toMoneyReceiptResponse(receipt), nil
}

// MoveAllToRecycleBin recycles every receipt.
func (s *MoneyReceiptService) MoveAllToRecycleBin(ctx context.Context) (shared.BulkResult, error) {
	return s.receipts.UpdateAllRecycled(ctx, true)
}

// RestoreAllFromRecycleBin restores every recycled receipt and clears its
// recycle timestamp. Live receipts are untouched.
func (s *MoneyReceiptService) RestoreAllFromRecycleBin(ctx context.Context) (shared.BulkResult, error) {
	return s.receipts.UpdateAllRecycled(ctx, false)
}

// List returns a page of receipts newest first, annotated with the job
// group's traffic-light payment color.
func (s *MoneyReceiptService) List(ctx context.Context, req ListMoneyReceiptsRequest) (*ListMoneyReceiptsResponse, error) {
	return s.list(ctx, req, false)
}

// ListDue lists only receipts with an outstanding balance.
func (s *MoneyReceiptService) ListDue(ctx context.Context, req ListMoneyReceiptsRequest) (*ListMoneyReceiptsResponse, error) {
	return s.list(ctx, req, true)
}

func (s *MoneyReceiptService) list(ctx context.Context, req ListMoneyReceiptsRequest, dueOnly bool) (*ListMoneyReceiptsResponse, error) {
	search := billing.ReceiptSearch{
		ListQuery: shared.ListQuery{
			Limit:      req.Limit,
			Page:       req.Page,
			SearchTerm: req.SearchTerm,
			IsRecycled: req.IsRecycled,
		},
		OwnerID: req.OwnerID,
		DueOnly: dueOnly,
	}

	receipts, total, err := s.query.Search(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("failed to list money receipts: %w", err)
	}

	responses := make([]*MoneyReceiptResponse, len(receipts))
	for i, mr := range receipts {
		responses[i] = toMoneyReceiptResponse(mr)
	}
	annotatePaymentColors(responses)

	return &ListMoneyReceiptsResponse{
		Receipts: responses,
		Meta:     shared.NewPageMeta(total, req.Limit, req.Page),
	}, nil
}

// Get returns a single receipt with its amounts formatted for display.
func (s *MoneyReceiptService) Get(ctx context.Context, id uuid.UUID) (*MoneyReceiptDetailResponse, error) {
	receipt, err := s.receipts.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get money receipt: %w", err)
	}

	detail := &MoneyReceiptDetailResponse{
		MoneyReceiptResponse: toMoneyReceiptResponse(receipt),
		TotalAmountDisplay:   s.format(receipt.TotalAmount),
	}
	if receipt.Advance != nil {
		detail.AdvanceDisplay = s.format(*receipt.Advance)
	}
	if receipt.Remaining != nil {
		detail.RemainingDisplay = s.format(*receipt.Remaining)
	}
	return detail, nil
}

// RenderPDF renders the receipt as a PDF. Rendering failures are reported as
// RENDERING_FAILURE, distinct from the NOT_FOUND of a missing receipt.
func (s *MoneyReceiptService) RenderPDF(ctx context.Context, id uuid.UUID, assetBaseURL string) ([]byte, error) {
	receipt, err := s.receipts.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get money receipt: %w", err)
	}

	var vehicle *party.Vehicle
	if receipt.VehicleID != nil {
		vehicle, err = s.vehicles.FindByID(ctx, *receipt.VehicleID)
		if err != nil {
			return nil, fmt.Errorf("failed to get vehicle: %w", err)
		}
	}

	pdf, err := s.renderer.RenderReceipt(ctx, receipt, vehicle, assetBaseURL)
	if err != nil {
		s.logger.Error("receipt pdf rendering failed",
			zap.String("receipt_no", receipt.ReceiptNo),
			zap.Error(err),
		)
		return nil, shared.NewDomainError("RENDERING_FAILURE", "PDF generation failed")
	}
	return pdf, nil
}

func formatReceiptNo(seq int64) string {
	return fmt.Sprintf("M-%04d", seq)
}

// annotatePaymentColors groups the page's receipts by job number and colors
// each group by its outstanding balance: green when nothing remains, amber
// for a partial balance, red when the full group total is still owed. The
// group's remaining is taken from its first receipt only; receipts without a
// job number stay uncolored. The grouping is page-local and is not
// re-aggregated across pages.
func annotatePaymentColors(receipts []*MoneyReceiptResponse) {
	const (
		colorPaid    = "#2dce89"
		colorPartial = "#ffad46"
		colorUnpaid  = "#f5365c"
	)

	type jobGroup struct {
		members   []*MoneyReceiptResponse
		total     decimal.Decimal
		remaining decimal.Decimal
	}

	groups := make(map[string]*jobGroup)
	order := make([]string, 0)
	for _, r := range receipts {
		if r.JobNo == "" {
			continue
		}
		g, ok := groups[r.JobNo]
		if !ok {
			g = &jobGroup{}
			groups[r.JobNo] = g
			order = append(order, r.JobNo)
			if r.Remaining != nil {
				g.remaining = *r.Remaining
			}
		}
		g.members = append(g.members, r)
		g.total = g.total.Add(r.TotalAmount)
	}

	for _, jobNo := range order {
		g := groups[jobNo]
		color := colorPaid
		if g.remaining.IsPositive() && g.remaining.LessThan(g.total) {
			color = colorPartial
		} else if g.remaining.GreaterThanOrEqual(g.total) {
			color = colorUnpaid
		}
		for _, r := range g.members {
			r.PaymentColor = color
		}
	}
}
