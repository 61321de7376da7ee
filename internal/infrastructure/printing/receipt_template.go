package printing

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/garage/backend/internal/domain/billing"
	"github.com/garage/backend/internal/domain/party"
	"github.com/garage/backend/pkg/numwords"
)

// receiptTemplateData feeds the money receipt HTML template
type receiptTemplateData struct {
	LogoDataURL      template.URL
	ReceiptNo        string
	Date             string
	OwnerKind        string
	ExternalID       string
	ChassisNo        string
	FullRegNo        string
	VehicleName      string
	VehicleModel     string
	InvoiceNo        string
	JobNo            string
	PaymentMethod    string
	AccountNo        string
	TransactionNo    string
	CheckNo          string
	BankName         string
	TotalAmount      string
	AdvanceAmount    string
	RemainingAmount  string
	TotalInWords     string
	AdvanceInWords   string
	RemainingInWords string
}

var receiptTemplate = template.Must(template.New("money_receipt").Parse(`
<div class="receipt">
  <style>
    .receipt { font-family: Arial, Helvetica, sans-serif; color: #222; font-size: 13px; }
    .receipt .head { text-align: center; border-bottom: 2px solid #222; padding-bottom: 8px; }
    .receipt .head img { max-height: 64px; }
    .receipt h1 { font-size: 20px; margin: 4px 0; }
    .receipt table { width: 100%; border-collapse: collapse; margin-top: 12px; }
    .receipt td, .receipt th { border: 1px solid #888; padding: 6px 8px; text-align: left; }
    .receipt .amounts th { background: #f0f0f0; }
    .receipt .words { margin-top: 10px; font-style: italic; }
    .receipt .sign { margin-top: 48px; display: flex; justify-content: space-between; }
    .receipt .sign span { border-top: 1px solid #222; padding: 4px 24px 0; }
  </style>
  <div class="head">
    {{if .LogoDataURL}}<img src="{{.LogoDataURL}}" alt="logo">{{end}}
    <h1>Money Receipt</h1>
    <div>Receipt No: <strong>{{.ReceiptNo}}</strong>{{if .Date}} &nbsp;|&nbsp; Date: {{.Date}}{{end}}</div>
  </div>
  <table>
    <tr><td>Received From ({{.OwnerKind}})</td><td>{{.ExternalID}}</td></tr>
    {{if .ChassisNo}}<tr><td>Chassis No</td><td>{{.ChassisNo}}</td></tr>{{end}}
    {{if .FullRegNo}}<tr><td>Registration No</td><td>{{.FullRegNo}}</td></tr>{{end}}
    {{if .VehicleName}}<tr><td>Vehicle</td><td>{{.VehicleName}}{{if .VehicleModel}} ({{.VehicleModel}}){{end}}</td></tr>{{end}}
    {{if .InvoiceNo}}<tr><td>Invoice No</td><td>{{.InvoiceNo}}</td></tr>{{end}}
    {{if .JobNo}}<tr><td>Job No</td><td>{{.JobNo}}</td></tr>{{end}}
    <tr><td>Payment Method</td><td>{{.PaymentMethod}}</td></tr>
    {{if .BankName}}<tr><td>Bank</td><td>{{.BankName}}</td></tr>{{end}}
    {{if .AccountNo}}<tr><td>Account No</td><td>{{.AccountNo}}</td></tr>{{end}}
    {{if .TransactionNo}}<tr><td>Transaction No</td><td>{{.TransactionNo}}</td></tr>{{end}}
    {{if .CheckNo}}<tr><td>Check No</td><td>{{.CheckNo}}</td></tr>{{end}}
  </table>
  <table class="amounts">
    <tr><th>Total Amount</th><th>Advance</th><th>Remaining</th></tr>
    <tr><td>{{.TotalAmount}}</td><td>{{.AdvanceAmount}}</td><td>{{.RemainingAmount}}</td></tr>
  </table>
  <div class="words">In Words: {{.TotalInWords}}</div>
  {{if .AdvanceInWords}}<div class="words">Advance In Words: {{.AdvanceInWords}}</div>{{end}}
  {{if .RemainingInWords}}<div class="words">Remaining In Words: {{.RemainingInWords}}</div>{{end}}
  <div class="sign">
    <span>Customer Signature</span>
    <span>Authorized Signature</span>
  </div>
</div>
`))

// buildReceiptHTML renders the money receipt into its printable HTML form.
// The vehicle is optional; the logo is an inlined data URL, empty when the
// asset could not be fetched.
func buildReceiptHTML(receipt *billing.MoneyReceipt, vehicle *party.Vehicle, logoDataURL string) (string, error) {
	data := receiptTemplateData{
		LogoDataURL:      template.URL(logoDataURL),
		ReceiptNo:        receipt.ReceiptNo,
		Date:             receipt.Date,
		OwnerKind:        receipt.OwnerKind.String(),
		ExternalID:       receipt.ExternalID,
		ChassisNo:        receipt.ChassisNo,
		FullRegNo:        receipt.FullRegNo,
		InvoiceNo:        receipt.InvoiceNo,
		JobNo:            receipt.JobNo,
		PaymentMethod:    receipt.PaymentMethod,
		AccountNo:        receipt.AccountNo,
		TransactionNo:    receipt.TransactionNo,
		CheckNo:          receipt.CheckNo,
		BankName:         receipt.BankName,
		TotalAmount:      numwords.FormatCurrency(receipt.TotalAmount),
		TotalInWords:     receipt.TotalInWords,
		AdvanceInWords:   receipt.AdvanceInWords,
		RemainingInWords: receipt.RemainingInWords,
	}
	if receipt.Advance != nil {
		data.AdvanceAmount = numwords.FormatCurrency(*receipt.Advance)
	}
	if receipt.Remaining != nil {
		data.RemainingAmount = numwords.FormatCurrency(*receipt.Remaining)
	}
	if vehicle != nil {
		data.VehicleName = vehicle.VehicleName
		if vehicle.VehicleModel > 0 {
			data.VehicleModel = fmt.Sprintf("%d", vehicle.VehicleModel)
		}
		if data.FullRegNo == "" {
			data.FullRegNo = vehicle.FullRegNo
		}
	}

	var buf bytes.Buffer
	if err := receiptTemplate.Execute(&buf, data); err != nil {
		return "", NewRenderError(ErrCodeInvalidHTML, "failed to execute receipt template", err)
	}
	return buf.String(), nil
}
