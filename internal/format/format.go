// Package format renders decoded amounts for display, honoring the
// commodity style hints hledger attaches to transaction amounts.
package format

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/juev/hledger-viewer/internal/hledger"
)

var defaultStyle = hledger.AmountStyle{
	CommoditySide: "L",
	DecimalMark:   ".",
	Precision:     2,
	Rounding:      "NoRounding",
}

// Amount renders one amount: quantity styled per its AmountStyle, with
// the commodity symbol on the styled side. Amounts without a style (the
// balance reports carry none) use hledger's defaults.
func Amount(a hledger.Amount) string {
	style := defaultStyle
	if a.Style != nil {
		style = *a.Style
	}

	number := Number(a.Quantity, style)
	if a.Commodity == "" {
		return number
	}

	space := ""
	if style.CommoditySpaced {
		space = " "
	}
	if style.CommoditySide == "R" {
		return number + space + a.Commodity
	}
	return a.Commodity + space + number
}

// Number renders a quantity with the style's decimal mark, precision and
// digit grouping.
func Number(qty decimal.Decimal, style hledger.AmountStyle) string {
	str := qty.StringFixed(int32(style.Precision))

	intPart, decPart, _ := strings.Cut(str, ".")

	negative := strings.HasPrefix(intPart, "-")
	if negative {
		intPart = intPart[1:]
	}

	if style.DigitGroups != "" && len(intPart) > 3 {
		var groups []string
		for len(intPart) > 3 {
			groups = append([]string{intPart[len(intPart)-3:]}, groups...)
			intPart = intPart[:len(intPart)-3]
		}
		if len(intPart) > 0 {
			groups = append([]string{intPart}, groups...)
		}
		intPart = strings.Join(groups, style.DigitGroups)
	}

	var sb strings.Builder
	if negative {
		sb.WriteString("-")
	}
	sb.WriteString(intPart)
	if decPart != "" {
		mark := style.DecimalMark
		if mark == "" {
			mark = "."
		}
		sb.WriteString(mark)
		sb.WriteString(decPart)
	}
	return sb.String()
}
