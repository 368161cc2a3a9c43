// file: internals/repository/audit.go
package repository

import (
	"time"

	"gorm.io/datatypes"
)

// AuditFields di-embed oleh semua model gc_*. created_at menyimpan
// tanggal kalender saja, bukan timestamp.
type AuditFields struct {
	CreatedBy *int           `json:"created_by,omitempty" gorm:"column:created_by"`
	CreatedAt datatypes.Date `json:"created_at,omitempty" gorm:"column:created_at"`
	UpdatedBy *int           `json:"updated_by,omitempty" gorm:"column:updated_by"`
}

// EnsureCreatedAt mengisi created_at (dipotong ke tanggal) kalau caller
// belum mengisinya.
func (a *AuditFields) EnsureCreatedAt(now time.Time) {
	if time.Time(a.CreatedAt).IsZero() {
		y, m, d := now.Date()
		a.CreatedAt = datatypes.Date(time.Date(y, m, d, 0, 0, 0, 0, now.Location()))
	}
}
