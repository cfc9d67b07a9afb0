package shortformat

import (
	"bufio"
	"fmt"
	"strings"
)

const (
	// commentMarker prefixes every line of the leading comment block.
	commentMarker = "#"
	// fieldDelimiter separates both header tokens and data cells.
	fieldDelimiter = ","
	// headerScanWindow bounds the header scan. Comment blocks in this
	// format are short; a block that has not ended within this many
	// lines is malformed.
	headerScanWindow = 20
)

// headerBlock is the result of scanning the leading comment lines.
type headerBlock struct {
	header   string // second-to-last comment line, holding the column names
	skip     int    // number of comment lines before data begins
	trailing bool   // header line ends with the field delimiter
	first    string // first non-comment line, already consumed from the scanner
	firstOK  bool   // false when the comment block runs to EOF
}

// scanHeaderBlock reads the leading comment lines off sc and locates the
// header line. The last comment line is a separator, not headers, so the
// header is the second-to-last comment line. The first non-comment line
// is consumed in the process and handed back through the returned block.
func scanHeaderBlock(sc *bufio.Scanner) (*headerBlock, error) {
	block := &headerBlock{}
	var comments []string

	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, commentMarker) {
			block.first = line
			block.firstOK = true
			break
		}
		comments = append(comments, line)
		if len(comments) > headerScanWindow {
			return nil, NewFormatError(
				fmt.Sprintf("comment block exceeds %d lines without ending", headerScanWindow), nil)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, NewIOError("reading header block", err)
	}

	if len(comments) < 2 {
		return nil, NewFormatError(
			fmt.Sprintf("header block requires at least 2 comment lines, found %d", len(comments)), nil)
	}

	block.header = comments[len(comments)-2]
	block.skip = len(comments)
	block.trailing = strings.HasSuffix(block.header, fieldDelimiter)
	return block, nil
}
