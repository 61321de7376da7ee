package shared

import "time"

// Recyclable provides the soft-delete ("recycle bin") state shared by
// recycle-bin-capable aggregates. A recycled document stays in storage and is
// hidden from default listings; only a permanent delete removes it.
type Recyclable struct {
	IsRecycled bool       `gorm:"not null;default:false;index"`
	RecycledAt *time.Time `gorm:""`
}

// MoveToRecycleBin marks the document as recycled.
func (r *Recyclable) MoveToRecycleBin() {
	now := time.Now()
	r.IsRecycled = true
	r.RecycledAt = &now
}

// RestoreFromRecycleBin flips the recycled flag. The timestamp is reset to
// the restore time; the bulk restore clears it instead.
func (r *Recyclable) RestoreFromRecycleBin() {
	now := time.Now()
	r.IsRecycled = false
	r.RecycledAt = &now
}
