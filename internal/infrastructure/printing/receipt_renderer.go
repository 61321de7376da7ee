package printing

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	appbilling "github.com/garage/backend/internal/application/billing"
	"github.com/garage/backend/internal/domain/billing"
	"github.com/garage/backend/internal/domain/party"
	"go.uber.org/zap"
)

const (
	logoPath         = "/images/logo.png"
	logoFetchTimeout = 5 * time.Second
	maxLogoBytes     = 2 << 20
)

// ReceiptDocumentRenderer builds the printable money receipt and renders it
// to PDF. The workshop logo is fetched from the asset base URL and inlined;
// a missing logo never fails the document, the receipt just prints without
// it.
type ReceiptDocumentRenderer struct {
	pdf    PDFRenderer
	store  *FileSystemStorage
	client *http.Client
	logger *zap.Logger
}

// NewReceiptDocumentRenderer creates a new ReceiptDocumentRenderer. The store
// is optional; when set, every rendered document is also written to disk.
func NewReceiptDocumentRenderer(pdf PDFRenderer, store *FileSystemStorage, logger *zap.Logger) *ReceiptDocumentRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReceiptDocumentRenderer{
		pdf:    pdf,
		store:  store,
		client: &http.Client{Timeout: logoFetchTimeout},
		logger: logger,
	}
}

// RenderReceipt renders the money receipt into a PDF document
func (r *ReceiptDocumentRenderer) RenderReceipt(ctx context.Context, receipt *billing.MoneyReceipt, vehicle *party.Vehicle, assetBaseURL string) ([]byte, error) {
	logo := r.fetchLogo(ctx, assetBaseURL)

	html, err := buildReceiptHTML(receipt, vehicle, logo)
	if err != nil {
		return nil, err
	}

	result, err := r.pdf.Render(ctx, &RenderRequest{
		HTML:  html,
		Title: "Money Receipt " + receipt.ReceiptNo,
	})
	if err != nil {
		return nil, err
	}

	if r.store != nil {
		filename := fmt.Sprintf("money-receipt-%s.pdf", receipt.ReceiptNo)
		if _, err := r.store.Store(ctx, filename, result.PDFData); err != nil {
			r.logger.Warn("failed to store rendered receipt",
				zap.String("receipt_no", receipt.ReceiptNo),
				zap.Error(err),
			)
		}
	}

	return result.PDFData, nil
}

// fetchLogo downloads the workshop logo and returns it as a data URL. Any
// failure is logged and reported as the empty string.
func (r *ReceiptDocumentRenderer) fetchLogo(ctx context.Context, assetBaseURL string) string {
	if assetBaseURL == "" {
		return ""
	}
	url := strings.TrimRight(assetBaseURL, "/") + logoPath

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		r.logger.Warn("failed to build logo request", zap.String("url", url), zap.Error(err))
		return ""
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Warn("failed to fetch logo", zap.String("url", url), zap.Error(err))
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		r.logger.Warn("unexpected logo response",
			zap.String("url", url),
			zap.Int("status", resp.StatusCode),
		)
		return ""
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes))
	if err != nil {
		r.logger.Warn("failed to read logo body", zap.String("url", url), zap.Error(err))
		return ""
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}
	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
}

// Ensure ReceiptDocumentRenderer implements the application's ReceiptRenderer
var _ appbilling.ReceiptRenderer = (*ReceiptDocumentRenderer)(nil)
