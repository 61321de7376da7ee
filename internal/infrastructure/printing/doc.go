// Package printing provides infrastructure for rendering money receipts to
// PDF using Chrome DevTools Protocol.
//
// This package contains:
// - PDFRenderer interface for rendering HTML to PDF
// - ChromedpRenderer implementation driving a headless Chrome instance
// - ReceiptDocumentRenderer building the receipt HTML from its template
// - FileSystemStorage for keeping a copy of every rendered document
package printing
