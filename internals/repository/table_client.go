// file: internals/repository/table_client.go
package repository

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

/* =========================================================
 * MODEL CONTRACT
 * ========================================================= */

// Model adalah kontrak minimal untuk row yang dilayani TableClient.
type Model interface {
	TableName() string
	PrimaryKey() int
}

// auditable diimplement lewat embed AuditFields (pointer receiver).
type auditable interface {
	EnsureCreatedAt(now time.Time)
}

/* =========================================================
 * PRIMARY KEY REGISTRY
 * ========================================================= */

// Registri eksplisit tabel → kolom PK. Konvensi string lama (buang
// prefix "gc_", buang "s" di akhir, tambah "_id") rawan meleset begitu
// penamaan tabel menyimpang, jadi semua tabel yang dikenal didaftar
// di sini dan konvensi hanya jadi fallback.
var primaryKeyColumns = map[string]string{
	"gc_code_definition":                   "code_definition_id",
	"gc_dimensional_groups":                "dimensional_group_id",
	"gc_dimensionals":                      "dimensional_id",
	"gc_field":                             "field_id",
	"gc_dimensional_group_field":           "dimensional_group_field_id",
	"gc_dimensional_boolean_follows":       "dimensional_boolean_follow_id",
	"gc_dimensional_date_follows":          "dimensional_date_follow_id",
	"gc_dimensional_description_follows":   "dimensional_description_follow_id",
	"gc_dimensional_number_follows":        "dimensional_number_follow_id",
	"gc_dimensional_text_follows":          "dimensional_text_follow_id",
	"gc_dimensional_id_follows":            "dimensional_id_follow_id",
	"gc_dimensional_group_boolean_follows": "dimensional_group_boolean_follow_id",
	"gc_dimensional_group_date_follows":    "dimensional_group_date_follow_id",
	"gc_dimensional_group_id_follows":      "dimensional_group_id_follow_id",
	"gc_dimensional_group_number_follows":  "dimensional_group_number_follow_id",
	"gc_dimensional_group_text_follows":    "dimensional_group_text_follow_id",
}

// PrimaryKeyColumn mengembalikan nama kolom PK untuk sebuah tabel.
func PrimaryKeyColumn(table string) string {
	if col, ok := primaryKeyColumns[table]; ok {
		return col
	}
	name := strings.TrimPrefix(table, "gc_")
	name = strings.TrimSuffix(name, "s")
	return name + "_id"
}

/* =========================================================
 * LIST OPTIONS
 * ========================================================= */

type ListOptions struct {
	Select    []string
	OrderBy   string
	Ascending bool
	Limit     int
	Offset    int
	// Filters dipakai sebagai equality murni; nilai nil dilewati.
	Filters map[string]any
}

/* =========================================================
 * TABLE CLIENT
 * ========================================================= */

// TableClient adalah client CRUD generik untuk satu tabel entity.
// Kebijakan error: List dan Count menelan kegagalan (log + hasil
// kosong) supaya tampilan list turun jadi "no data" alih-alih crash;
// operasi lain mengembalikan error dengan pesan siap tampil.
type TableClient[T Model] struct {
	db    *gorm.DB
	table string
	pk    string
}

func NewTableClient[T Model](db *gorm.DB) *TableClient[T] {
	var zero T
	table := zero.TableName()
	return &TableClient[T]{
		db:    db,
		table: table,
		pk:    PrimaryKeyColumn(table),
	}
}

func (c *TableClient[T]) Table() string { return c.table }

func (c *TableClient[T]) List(ctx context.Context, opts *ListOptions) []T {
	rows := make([]T, 0)
	q := c.db.WithContext(ctx).Table(c.table)
	if opts != nil {
		if len(opts.Select) > 0 {
			q = q.Select(opts.Select)
		}
		for col, val := range opts.Filters {
			if val == nil {
				continue
			}
			q = q.Where(map[string]any{col: val})
		}
		if opts.OrderBy != "" {
			q = q.Order(clause.OrderByColumn{
				Column: clause.Column{Name: opts.OrderBy},
				Desc:   !opts.Ascending,
			})
		}
		if opts.Limit > 0 {
			q = q.Limit(opts.Limit)
		}
		if opts.Offset > 0 {
			q = q.Offset(opts.Offset)
		}
	}
	if err := q.Find(&rows).Error; err != nil {
		log.Printf("[WARN] list %s gagal: %v", c.table, err)
		return []T{}
	}
	return rows
}

func (c *TableClient[T]) GetByID(ctx context.Context, id int) (*T, error) {
	var row T
	err := c.db.WithContext(ctx).
		Table(c.table).
		Where(map[string]any{c.pk: id}).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, translateDBError(err)
	}
	return &row, nil
}

// Create menyimpan satu row lalu membaca ulang dari backend supaya key
// hasil generate dan kolom stempel server ikut terlihat caller.
// created_at (tanggal saja) diisi otomatis kalau caller tidak mengisi.
func (c *TableClient[T]) Create(ctx context.Context, row *T) (*T, error) {
	if a, ok := any(row).(auditable); ok {
		a.EnsureCreatedAt(time.Now())
	}
	if err := c.db.WithContext(ctx).Table(c.table).Create(row).Error; err != nil {
		return nil, translateDBError(err)
	}
	return c.GetByID(ctx, (*row).PrimaryKey())
}

// Update mem-patch kolom lewat map dan selalu menstempel updated_by
// dengan actor yang diberikan caller (tidak ada actor global).
func (c *TableClient[T]) Update(ctx context.Context, id int, data map[string]any, actorID int) (*T, error) {
	patch := make(map[string]any, len(data)+1)
	for k, v := range data {
		patch[k] = v
	}
	patch["updated_by"] = actorID

	err := c.db.WithContext(ctx).
		Table(c.table).
		Where(map[string]any{c.pk: id}).
		Updates(patch).Error
	if err != nil {
		return nil, translateDBError(err)
	}
	return c.GetByID(ctx, id)
}

// Delete mengembalikan false tanpa error kalau row-nya memang tidak ada.
func (c *TableClient[T]) Delete(ctx context.Context, id int) (bool, error) {
	var zero T
	res := c.db.WithContext(ctx).
		Table(c.table).
		Where(map[string]any{c.pk: id}).
		Delete(&zero)
	if res.Error != nil {
		return false, translateDBError(res.Error)
	}
	return res.RowsAffected > 0, nil
}

// Count menghitung row dengan semantik filter yang sama dengan List.
func (c *TableClient[T]) Count(ctx context.Context, filters map[string]any) int64 {
	var n int64
	q := c.db.WithContext(ctx).Table(c.table)
	for col, val := range filters {
		if val == nil {
			continue
		}
		q = q.Where(map[string]any{col: val})
	}
	if err := q.Count(&n).Error; err != nil {
		log.Printf("[WARN] count %s gagal: %v", c.table, err)
		return 0
	}
	return n
}
