package document

import (
	"github.com/shopspring/decimal"
)

// RGB is a fill or text color
type RGB struct {
	R, G, B int
}

var (
	colorTitle     = RGB{30, 30, 30}
	colorSubtitle  = RGB{100, 100, 100}
	colorBlack     = RGB{0, 0, 0}
	colorHeading   = RGB{0, 102, 204}
	colorError     = RGB{255, 0, 0}
	colorTableHead = RGB{220, 220, 220}
	colorRowEven   = RGB{245, 245, 245}
	colorRowOdd    = RGB{255, 255, 255}
)

// Font families and sizes
const (
	fontFamily = "Arial"

	sizeTitle    = 24
	sizeSubtitle = 14
	sizeHeading  = 16
	sizeBody     = 12
	sizeDate     = 10
	sizeFooter   = 8
)

// Layout in millimetres on an A4 portrait page
const (
	lineHeight       = 10.0
	bottomMargin     = 15.0
	titleTopGap      = 50.0
	titleBylineGap   = 20.0
	headerGap        = 5.0
	chartHeadingGap  = 5.0
	logoX            = 10.0
	logoY            = 8.0
	logoWidth        = 20.0
	chartX           = 30.0
	chartWidth       = 150.0
	colCategoryWidth = 70.0
	colAmountWidth   = 50.0
	footerOffset     = -15.0
)

// RowFill returns the background of summary row i: light grey for even
// rows, white for odd ones.
func RowFill(i int) RGB {
	if i%2 == 0 {
		return colorRowEven
	}
	return colorRowOdd
}

// FormatCurrency renders an amount as dollars with two decimals.
// Negative amounts keep a bare minus sign: $-5.00.
func FormatCurrency(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}
