package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// ShortFormatSample returns a small, well-formed short-format export:
// a six-line comment block (headers on the second-to-last comment line,
// with the trailing-delimiter artifact) followed by three data rows.
// Row two carries "null" and empty cells to exercise missing-value
// handling.
func ShortFormatSample() string {
	return "# NMFS / COPEPOD plankton database: short-format export\n" +
		"# content: zooplankton observations\n" +
		"# generated: 14-Jun-2012\n" +
		"#\n" +
		"#SHP-CRUISE,YEAR,MON,DAY,TIMEloc,LATITUDE,LONGITDE,UPPER_Z,LOWER_Z,MESH,NMFS_PGC,ITIS-TSN,PSC," +
		"Original-VALUE,VALUE-per-volu,UNITS,F1,F2,F3,F4,VALUE-per-area,UNITS,F1,F2,F3,F4," +
		"SCIENTIFIC NAME,RECORD-ID,DATASET-ID,SHIP,PROJ,INST,\n" +
		"#--------------------------------------------------------------------------------\n" +
		"1101-01,2001,5,14,1050,43.250,-67.750,0,100,333,4022,85257,0,5,21.4,#/m3,0,0,1,1,2140.0,#/m2,0,0,1,1,Calanus finmarchicus,120001,NMFS-001,ALBATROSS IV,ECOMON,NMFS,\n" +
		"1101-01,2001,5,14,null,43.250,-67.750,0,,333,4022,85263,0,null,3.1,#/m3,0,0,1,1,310.0,#/m2,0,0,1,1,Centropages typicus,120002,NMFS-001,ALBATROSS IV,,NMFS,\n" +
		"1101-02,2001,5,15,0915,42.500,-68.250,0,50,333,4022,85257,0,2,8.8,#/m3,0,0,1,1,440.0,#/m2,0,0,1,1,Calanus finmarchicus,120003,NMFS-001,ALBATROSS IV,ECOMON,NMFS,\n"
}

// ShortFormatSampleFields lists the field names the sample resolves to
// after disambiguation and trailing-column trimming, in column order.
func ShortFormatSampleFields() []string {
	return []string{
		"SHP_CRUISE", "YEAR", "MON", "DAY", "TIMEloc", "LATITUDE", "LONGITDE",
		"UPPER_Z", "LOWER_Z", "MESH", "NMFS_PGC", "ITIS_TSN", "PSC",
		"Original_VALUE",
		"VALUE_per_volu", "VALUE_per_volu_UNITS",
		"VALUE_per_volu_F1", "VALUE_per_volu_F2", "VALUE_per_volu_F3", "VALUE_per_volu_F4",
		"VALUE_per_area", "VALUE_per_area_UNITS",
		"VALUE_per_area_F1", "VALUE_per_area_F2", "VALUE_per_area_F3", "VALUE_per_area_F4",
		"SCIENTIFIC_NAME", "RECORD_ID", "DATASET_ID", "SHIP", "PROJ", "INST",
	}
}

// WriteSampleFile drops content into a fresh temp directory and returns
// the file path. The file is cleaned up with the test.
func WriteSampleFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "copepod__short-format.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write sample file: %v", err)
	}
	return path
}
