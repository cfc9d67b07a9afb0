package shortformat

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"

	"copepod/internal/validation"
	"copepod/pkg/contracts/domain"
)

// missingToken marks a missing value in data cells, alongside the empty
// string.
const missingToken = "null"

// maxLineBytes caps a single source line. Taxonomy-heavy rows are long
// but nowhere near this.
const maxLineBytes = 1024 * 1024

// Parser reads short-format COPEPOD export files into domain tables.
// Every parse owns its own state, so a single Parser is safe for
// concurrent use across files.
type Parser struct {
	logger    *slog.Logger
	validator *validation.FileValidator
}

// NewParser creates a parser. Pass nil to log through slog.Default().
func NewParser(logger *slog.Logger) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	return &Parser{
		logger:    logger,
		validator: validation.NewFileValidator(logger),
	}
}

// ParseFile parses the short-format export at path.
// Unreadable files yield an IO error; structural problems in the file
// yield a format error. There is no partial result: downstream
// correctness depends on header disambiguation being exact, so the first
// violation aborts the parse.
func ParseFile(path string) (*domain.Table, error) {
	return NewParser(nil).ParseFile(path)
}

// ParseFile parses the short-format export at path.
func (p *Parser) ParseFile(path string) (*domain.Table, error) {
	if err := p.validator.ValidateSourceFile(path); err != nil {
		return nil, NewIOError(fmt.Sprintf("cannot read %s", path), err)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, NewIOError(fmt.Sprintf("cannot open %s", path), err)
	}
	defer f.Close()

	p.logger.Debug("parsing short-format file", slog.String("path", path))
	return p.Parse(f)
}

// Parse parses a short-format export from r in a single pass: bounded
// header scan, then a sequential read of the remaining lines.
func (p *Parser) Parse(r io.Reader) (*domain.Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	block, err := scanHeaderBlock(sc)
	if err != nil {
		return nil, err
	}

	rawHeaders := splitHeaderLine(block.header)
	names, err := disambiguateHeaders(rawHeaders)
	if err != nil {
		return nil, err
	}

	// A trailing delimiter on the header line produces an empty final
	// header and an empty final cell in every data row. Both are
	// trimmed; rows are still required to match the untrimmed count.
	fields := names
	if block.trailing {
		fields = names[:len(names)-1]
	}
	if err := validateFieldNames(fields); err != nil {
		return nil, err
	}
	types := classifyFields(fields)

	p.logger.Debug("header block scanned",
		slog.Int("comment_lines", block.skip),
		slog.Int("columns", len(fields)),
		slog.Bool("trailing_delimiter", block.trailing))

	var rows []domain.Row
	lineNo := block.skip
	appendRow := func(line string) error {
		lineNo++
		if strings.HasPrefix(line, commentMarker) || strings.TrimSpace(line) == "" {
			return nil
		}
		row, err := parseRow(line, lineNo, len(names), fields, types)
		if err != nil {
			return err
		}
		rows = append(rows, row)
		return nil
	}

	if block.firstOK {
		if err := appendRow(block.first); err != nil {
			return nil, err
		}
	}
	for sc.Scan() {
		if err := appendRow(sc.Text()); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, NewIOError("reading data rows", err).WithPosition(lineNo+1, 0)
	}

	p.logger.Info("short-format parse complete",
		slog.Int("rows", len(rows)),
		slog.Int("columns", len(fields)))

	return &domain.Table{Fields: fields, Types: types, Rows: rows}, nil
}

// parseRow splits one data line and coerces each cell per the field type
// map. rawCount is the untrimmed header width the line must match;
// fields may be one shorter when the trailing artifact column is being
// dropped.
func parseRow(line string, lineNo, rawCount int, fields []string, types map[string]domain.FieldType) (domain.Row, error) {
	cells := strings.Split(line, fieldDelimiter)
	if len(cells) != rawCount {
		return nil, NewFormatError(
			fmt.Sprintf("row has %d fields, header has %d", len(cells), rawCount),
			nil).WithPosition(lineNo, 0)
	}

	row := make(domain.Row, len(fields))
	for i, name := range fields {
		if types[name] == domain.FieldNumeric {
			cell := strings.TrimSpace(cells[i])
			if cell == "" || cell == missingToken {
				row[name] = math.NaN()
				continue
			}
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, NewFormatError(
					fmt.Sprintf("invalid numeric value %q in field %s", cell, name),
					err).WithPosition(lineNo, i+1)
			}
			row[name] = v
			continue
		}
		cell := cells[i]
		if cell == missingToken {
			cell = ""
		}
		row[name] = cell
	}
	return row, nil
}
