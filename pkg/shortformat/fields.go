package shortformat

import (
	"copepod/pkg/contracts/domain"
)

// numericFields is the fixed set of field names parsed as floating
// point. Names not listed here are read as text. A few entries (TIMEgmt,
// GEAR, MOD, LIF, SEX) only occur in the related long-format export;
// they are kept so the classification also covers headers shared between
// the two variants.
var numericFields = map[string]struct{}{
	"YEAR":              {},
	"MON":               {},
	"DAY":               {},
	"TIMEgmt":           {},
	"TIMEloc":           {},
	"LATITUDE":          {},
	"LONGITDE":          {},
	"UPPER_Z":           {},
	"LOWER_Z":           {},
	"GEAR":              {},
	"MESH":              {},
	"NMFS_PGC":          {},
	"ITIS_TSN":          {},
	"MOD":               {},
	"LIF":               {},
	"PSC":               {},
	"SEX":               {},
	"Original_VALUE":    {},
	"VALUE_per_volu":    {},
	"VALUE_per_volu_F1": {},
	"VALUE_per_volu_F2": {},
	"VALUE_per_volu_F3": {},
	"VALUE_per_volu_F4": {},
	"VALUE_per_area":    {},
	"VALUE_per_area_F1": {},
	"VALUE_per_area_F2": {},
	"VALUE_per_area_F3": {},
	"VALUE_per_area_F4": {},
}

// classifyFields builds the per-field type map for the row reader.
func classifyFields(names []string) map[string]domain.FieldType {
	types := make(map[string]domain.FieldType, len(names))
	for _, name := range names {
		if _, ok := numericFields[name]; ok {
			types[name] = domain.FieldNumeric
		} else {
			types[name] = domain.FieldText
		}
	}
	return types
}
