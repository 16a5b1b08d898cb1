// Package render maps grid snapshots to page, spreadsheet and flow documents.
package render

import "math"

// TwipsPerPoint is the number of twips (DXA, twentieths of a point) per point.
// WordprocessingML expresses table and page widths in twips.
const TwipsPerPoint = 20

// PctPerPercent is the number of fiftieths of a percent per percent.
// A w:tblW of type "pct" uses this unit, so 100% is written as 5000.
const PctPerPercent = 50

// PointsToTwips converts points to twips, rounding to the nearest twip.
func PointsToTwips(pt float64) int {
	return int(math.Round(pt * TwipsPerPoint))
}

// PercentToPct converts a percentage into the w:tblW "pct" unit.
func PercentToPct(percent int) int {
	return percent * PctPerPercent
}
