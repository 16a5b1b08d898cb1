package render

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"
)

// checkCellText reports text that cannot be stored in an OOXML part as is.
func checkCellText(text string) error {
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if r == utf8.RuneError && size == 1 {
			return fmt.Errorf("%w: invalid UTF-8 at byte %d", ErrInvalidCellText, i)
		}
		if !isXMLChar(r) {
			return fmt.Errorf("%w: character %U at byte %d", ErrInvalidCellText, r, i)
		}
		i += size
	}
	return nil
}

// isXMLChar reports whether r is allowed in XML 1.0 character data.
func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

// escapeSheetText protects literal "_x" sequences so that _xHHHH_ escapes
// are not decoded when the workbook is read back.
func escapeSheetText(text string) string {
	return strings.ReplaceAll(text, "_x", "_x005F_x")
}

// sheetCellText validates text and returns the value to store in a sheet.
// The length limit applies to the stored value, counted in UTF-16 units.
func sheetCellText(text string) (string, error) {
	if err := checkCellText(text); err != nil {
		return "", err
	}
	stored := escapeSheetText(text)
	if n := utf16Len(stored); n > excelize.TotalCellChars {
		return "", fmt.Errorf("%w: %d characters, limit %d", ErrCellTooLong, n, excelize.TotalCellChars)
	}
	return stored, nil
}

func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}
