package render

import "errors"

// ErrNoCells indicates a snapshot without any cell to render.
var ErrNoCells = errors.New("snapshot has no cells")

// ErrNotFlowDocument indicates the input is not a readable DOCX package.
var ErrNotFlowDocument = errors.New("not a flow document")

// ErrInvalidCellText indicates cell text that XML cannot carry, such as
// control characters or invalid UTF-8.
var ErrInvalidCellText = errors.New("cell text not representable in XML")

// ErrCellTooLong indicates cell text over the spreadsheet cell limit.
var ErrCellTooLong = errors.New("cell text too long")
