package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTable() *Table {
	return &Table{
		Fields: []string{"YEAR", "SHIP", "VALUE_per_volu"},
		Types: map[string]FieldType{
			"YEAR":           FieldNumeric,
			"SHIP":           FieldText,
			"VALUE_per_volu": FieldNumeric,
		},
		Rows: []Row{
			{"YEAR": 2001.0, "SHIP": "ALBATROSS IV", "VALUE_per_volu": 21.4},
			{"YEAR": 2002.0, "SHIP": "", "VALUE_per_volu": math.NaN()},
		},
	}
}

func TestFieldTypeString(t *testing.T) {
	assert.Equal(t, "numeric", FieldNumeric.String())
	assert.Equal(t, "text", FieldText.String())
}

func TestTableLen(t *testing.T) {
	tbl := sampleTable()
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, 0, (&Table{}).Len())
}

func TestTableFieldIndex(t *testing.T) {
	tbl := sampleTable()
	assert.Equal(t, 0, tbl.FieldIndex("YEAR"))
	assert.Equal(t, 2, tbl.FieldIndex("VALUE_per_volu"))
	assert.Equal(t, -1, tbl.FieldIndex("MISSING"))
	assert.True(t, tbl.HasField("SHIP"))
	assert.False(t, tbl.HasField("missing"))
}

func TestTableFloats(t *testing.T) {
	tbl := sampleTable()

	years, err := tbl.Floats("YEAR")
	require.NoError(t, err)
	assert.Equal(t, []float64{2001, 2002}, years)

	vals, err := tbl.Floats("VALUE_per_volu")
	require.NoError(t, err)
	assert.Equal(t, 21.4, vals[0])
	assert.True(t, math.IsNaN(vals[1]), "missing cell should come back as NaN")

	_, err = tbl.Floats("MISSING")
	assert.Error(t, err)

	_, err = tbl.Floats("SHIP")
	assert.Error(t, err, "text column must not extract as floats")
}

func TestTableStrings(t *testing.T) {
	tbl := sampleTable()

	ships, err := tbl.Strings("SHIP")
	require.NoError(t, err)
	assert.Equal(t, []string{"ALBATROSS IV", ""}, ships)

	_, err = tbl.Strings("YEAR")
	assert.Error(t, err, "numeric column must not extract as strings")

	_, err = tbl.Strings("MISSING")
	assert.Error(t, err)
}

func TestTableFloatsTypeMismatchInRow(t *testing.T) {
	tbl := sampleTable()
	tbl.Rows[1]["YEAR"] = "not a float"

	_, err := tbl.Floats("YEAR")
	assert.Error(t, err)
}
