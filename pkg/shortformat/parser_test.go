package shortformat

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"copepod/internal/shared/testutil"
	"copepod/pkg/contracts/domain"
)

func TestParseFileSample(t *testing.T) {
	path := testutil.WriteSampleFile(t, testutil.ShortFormatSample())

	table, err := ParseFile(path)
	require.NoError(t, err)

	assert.Equal(t, testutil.ShortFormatSampleFields(), table.Fields,
		"column order must follow the disambiguated header order")
	require.Equal(t, 3, table.Len())

	row := table.Rows[0]
	assert.Equal(t, "1101-01", row["SHP_CRUISE"])
	assert.Equal(t, 2001.0, row["YEAR"])
	assert.Equal(t, 43.25, row["LATITUDE"])
	assert.Equal(t, -67.75, row["LONGITDE"])
	assert.Equal(t, 21.4, row["VALUE_per_volu"])
	assert.Equal(t, "#/m3", row["VALUE_per_volu_UNITS"])
	assert.Equal(t, 2140.0, row["VALUE_per_area"])
	assert.Equal(t, "Calanus finmarchicus", row["SCIENTIFIC_NAME"])

	lats, err := table.Floats("LATITUDE")
	require.NoError(t, err)
	assert.Equal(t, []float64{43.25, 43.25, 42.5}, lats)

	names, err := table.Strings("SCIENTIFIC_NAME")
	require.NoError(t, err)
	assert.Equal(t, "Centropages typicus", names[1])
}

func TestParseFileSampleMissingValues(t *testing.T) {
	path := testutil.WriteSampleFile(t, testutil.ShortFormatSample())

	table, err := ParseFile(path)
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	// Row two carries "null" and empty cells.
	row := table.Rows[1]
	assert.True(t, math.IsNaN(row["TIMEloc"].(float64)), `numeric "null" becomes NaN`)
	assert.True(t, math.IsNaN(row["LOWER_Z"].(float64)), "empty numeric cell becomes NaN")
	assert.True(t, math.IsNaN(row["Original_VALUE"].(float64)))
	assert.Equal(t, "", row["PROJ"], "empty text cell becomes an empty string")
}

func TestParseTypedCoercion(t *testing.T) {
	input := "# export\n" +
		"#YEAR,SHIP\n" +
		"#----\n" +
		",null\n" +
		"null,\n" +
		"1994,Discovery\n"

	table, err := NewParser(nil).Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 3, table.Len())

	assert.True(t, math.IsNaN(table.Rows[0]["YEAR"].(float64)))
	assert.Equal(t, "", table.Rows[0]["SHIP"], `text "null" reads as empty`)
	assert.True(t, math.IsNaN(table.Rows[1]["YEAR"].(float64)))
	assert.Equal(t, "", table.Rows[1]["SHIP"])
	assert.Equal(t, 1994.0, table.Rows[2]["YEAR"])
	assert.Equal(t, "Discovery", table.Rows[2]["SHIP"])
}

func TestParseTrailingDelimiterTrim(t *testing.T) {
	// The trailing comma on the header line produces an empty final
	// header and an empty final cell per row; both are trimmed.
	input := "# export\n" +
		"#A,VALUE-X,B,UNITS,\n" +
		"#----\n" +
		"1,2,3,mg,\n"

	table, err := NewParser(nil).Parse(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "VALUE_X", "B", "VALUE_X_UNITS"}, table.Fields)
	require.Equal(t, 1, table.Len())
	assert.Len(t, table.Rows[0], 4, "the artifact column must not survive in rows")
	assert.Equal(t, "mg", table.Rows[0]["VALUE_X_UNITS"])
}

func TestParseRowFieldCountMismatch(t *testing.T) {
	input := "# export\n" +
		"#YEAR,MON\n" +
		"#----\n" +
		"2001,5\n" +
		"2001\n"

	_, err := NewParser(nil).Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, IsFormatError(err))

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 5, pe.Line, "error must name the offending line")
	assert.Contains(t, pe.Message, "header has 2")
}

func TestParseInvalidNumericContent(t *testing.T) {
	input := "# export\n" +
		"#YEAR,SHIP\n" +
		"#----\n" +
		"onezero,Discovery\n"

	_, err := NewParser(nil).Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, IsFormatError(err))

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 4, pe.Line)
	assert.Equal(t, 1, pe.Column)
	assert.Contains(t, pe.Message, "invalid numeric value")
}

func TestParseUnresolvedUnitsFails(t *testing.T) {
	input := "# export\n" +
		"#YEAR,UNITS\n" +
		"#----\n" +
		"2001,mg\n"

	_, err := NewParser(nil).Parse(strings.NewReader(input))
	require.Error(t, err)
	assert.True(t, IsFormatError(err))
	assert.Contains(t, err.Error(), "no preceding VALUE")
}

func TestParseSkipsStrayCommentsAndBlankLines(t *testing.T) {
	input := "# export\n" +
		"#YEAR,MON\n" +
		"#----\n" +
		"2001,5\n" +
		"\n" +
		"# stray annotation\n" +
		"2002,6\n"

	table, err := NewParser(nil).Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 2, table.Len())
}

func TestParseEmptyDataSection(t *testing.T) {
	input := "# export\n#YEAR,MON\n#----\n"

	table, err := NewParser(nil).Parse(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"YEAR", "MON"}, table.Fields)
	assert.Equal(t, 0, table.Len())
}

func TestParseFileUnreadable(t *testing.T) {
	_, err := ParseFile("does/not/exist.csv")
	require.Error(t, err)
	assert.True(t, IsIOError(err))

	_, err = ParseFile(t.TempDir())
	require.Error(t, err)
	assert.True(t, IsIOError(err))
}

func TestParserLogging(t *testing.T) {
	rec := testutil.NewLogRecorder()
	p := NewParser(rec.Logger())

	_, err := p.Parse(strings.NewReader(testutil.ShortFormatSample()))
	require.NoError(t, err)

	assert.True(t, rec.HasMessage("short-format parse complete"))
	found := false
	for _, r := range rec.Records() {
		if r.Message == "short-format parse complete" {
			found = true
			assert.Equal(t, int64(3), toInt64(t, r.Attrs["rows"]))
		}
	}
	require.True(t, found)
}

func toInt64(t *testing.T, v any) int64 {
	t.Helper()
	switch n := v.(type) {
	case int:
		return int64(n)
	case int64:
		return n
	default:
		t.Fatalf("unexpected attr type %T", v)
		return 0
	}
}

// Field type classification must hold through a full parse: every cell
// under a known numeric name is a float64, everything else a string.
func TestParseFieldTypesEndToEnd(t *testing.T) {
	table, err := NewParser(nil).Parse(strings.NewReader(testutil.ShortFormatSample()))
	require.NoError(t, err)

	for _, row := range table.Rows {
		for _, f := range table.Fields {
			switch table.Types[f] {
			case domain.FieldNumeric:
				assert.IsType(t, float64(0), row[f], "field %s", f)
			default:
				assert.IsType(t, "", row[f], "field %s", f)
			}
		}
	}
}
