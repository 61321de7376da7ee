// Package billing holds the money receipt and invoice aggregates and the
// reconciliation rules between them.
//
// A money receipt records a payment taken at the service desk. It carries
// denormalized owner, vehicle and invoice fields so a printed receipt stays
// readable even after the linked records change. An invoice tracks the
// billed amount and its running advance/due balance; Reconcile applies a
// receipt's payment to that balance and derives the receipt's payment
// status.
//
// The package depends on the party domain for owner resolution and on
// nothing else outside shared.
package billing
