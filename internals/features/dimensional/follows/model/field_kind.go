package model

import "log"

// FieldKind adalah jenis nilai sebuah field; view tagged-union dari
// tabel-tabel follow paralel. Di storage jenis ini cuma konvensi
// penamaan type tag, di kode kita pegang sebagai enum eksplisit.
type FieldKind string

const (
	KindText        FieldKind = "text"
	KindNumber      FieldKind = "number"
	KindBoolean     FieldKind = "boolean"
	KindDate        FieldKind = "date"
	KindDescription FieldKind = "description"
	KindID          FieldKind = "id"
)

// Nilai type tag harus sinkron dengan isi gc_dimensionals di database.
var fieldKindByTypeTag = map[int]FieldKind{
	1: KindText,
	2: KindNumber,
	3: KindBoolean,
	4: KindDate,
	5: KindDescription,
	6: KindID,
}

var typeTagByFieldKind = map[FieldKind]int{
	KindText:        1,
	KindNumber:      2,
	KindBoolean:     3,
	KindDate:        4,
	KindDescription: 5,
	KindID:          6,
}

// ResolveFieldKind memetakan type tag ke jenis nilai. Tag yang tidak
// dikenal jatuh ke text — default terdokumentasi, bukan error.
func ResolveFieldKind(typeTagID int) FieldKind {
	if k, ok := fieldKindByTypeTag[typeTagID]; ok {
		return k
	}
	log.Printf("[WARN] type tag %d tidak dikenal, fallback ke text", typeTagID)
	return KindText
}

// TypeTagFor mengembalikan type tag untuk sebuah jenis nilai (0 kalau
// jenisnya tidak dikenal).
func TypeTagFor(kind FieldKind) int {
	return typeTagByFieldKind[kind]
}

// ParseFieldKind memvalidasi string jenis nilai dari query param.
func ParseFieldKind(s string) (FieldKind, bool) {
	k := FieldKind(s)
	_, ok := typeTagByFieldKind[k]
	return k, ok
}
