// Package shortformat reads the NMFS COPEPOD "short format" database
// export into a typed in-memory table.
//
// # File format
//
// A short-format file opens with a block of comment lines prefixed by
// '#'. The second-to-last comment line carries the column headers (the
// last comment line is a separator, not headers), and the remaining
// lines are comma-delimited data rows. The raw header tokens are
// ambiguous: the same literal token (UNITS, F1..F4) appears repeatedly,
// its meaning depending on which preceding VALUE... column it
// qualifies. Headers therefore have to be disambiguated positionally
// before the data can be loaded under unique field names.
//
// # Architecture
//
// Parsing runs as a fixed pipeline, each stage feeding the next:
//
//  1. Header block scanner: bounded scan of the leading lines, locating
//     the header line and counting comment lines to skip.
//  2. Header disambiguator: rewrites UNITS/F1..F4 qualifiers after the
//     nearest preceding VALUE anchor and sanitizes every token into a
//     schema-safe field name.
//  3. Typed row reader: classifies each field as numeric or text from a
//     fixed allow-list and coerces data cells accordingly; empty cells
//     and the literal "null" become NaN (numeric) or "" (text).
//  4. Table assembler: applies the final field names and trims the
//     spurious trailing column a trailing delimiter on the header line
//     leaves behind.
//
// # Usage
//
//	table, err := shortformat.ParseFile("copepod__2023-short.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	depths, err := table.Floats("UPPER_Z")
//
// # Error Handling
//
// Every failure is a *ParseError carrying a category (IO or FORMAT) and,
// where feasible, the implicated line and column. A format error aborts
// the parse outright; no partial table is returned, since downstream
// correctness depends entirely on the header disambiguation being
// exact.
//
// # Concurrency
//
// Parsing is single-threaded and owns all of its state, so distinct
// files can be parsed concurrently from any number of goroutines.
package shortformat
