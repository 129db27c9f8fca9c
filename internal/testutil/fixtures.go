// Package testutil builds hledger report JSON the way the real binary
// emits it, so decoder tests exercise the exact wire encodings.
package testutil

import (
	"fmt"
	"strings"
)

// AmountJSON renders one amount object. The floatingPoint value is
// deliberately wrong (mantissa+1 shifted) so any test that passes while
// consuming it would fail loudly.
func AmountJSON(commodity string, mantissa int64, places int) string {
	return fmt.Sprintf(
		`{"acommodity":%q,"aquantity":{"decimalMantissa":%d,"decimalPlaces":%d,"floatingPoint":%d.1},"aprice":null,"astyle":{"ascommodityside":"L","ascommodityspaced":false,"asdecimalmark":".","asdigitgroups":null,"asprecision":%d,"asrounding":"NoRounding"}}`,
		commodity, mantissa, places, mantissa+1, places,
	)
}

// PricedAmountJSON renders an amount carrying a price with the given tag.
func PricedAmountJSON(commodity string, mantissa int64, places int, tag string, priceJSON string) string {
	return fmt.Sprintf(
		`{"acommodity":%q,"aquantity":{"decimalMantissa":%d,"decimalPlaces":%d,"floatingPoint":%d.1},"aprice":{"tag":%q,"contents":%s}}`,
		commodity, mantissa, places, mantissa+1, tag, priceJSON,
	)
}

// AccountTupleJSON renders one simple-balance account entry, the
// positional (name, display name, indent, amounts) form.
func AccountTupleJSON(name, displayName string, indent int, amounts ...string) string {
	return fmt.Sprintf(`[%q,%q,%d,[%s]]`, name, displayName, indent, strings.Join(amounts, ","))
}

// SimpleBalanceJSON renders the [accounts, totals] pair.
func SimpleBalanceJSON(accountTuples []string, totals []string) string {
	return fmt.Sprintf(`[[%s],[%s]]`, strings.Join(accountTuples, ","), strings.Join(totals, ","))
}

// PeriodJSON renders one [start, end] pair of tagged date envelopes.
func PeriodJSON(start, end string) string {
	return fmt.Sprintf(`[{"contents":%q,"tag":"Exact"},{"contents":%q,"tag":"Exact"}]`, start, end)
}

// PeriodicRowJSON renders one prRows entry. total and average are raw
// JSON arrays or "" for absent.
func PeriodicRowJSON(account string, periodAmounts []string, total, average string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `{"prrName":%q,"prrAmounts":[%s]`, account, strings.Join(periodAmounts, ","))
	if total != "" {
		fmt.Fprintf(&sb, `,"prrTotal":%s`, total)
	}
	if average != "" {
		fmt.Fprintf(&sb, `,"prrAverage":%s`, average)
	}
	sb.WriteString("}")
	return sb.String()
}

// PeriodicBalanceJSON renders the keyed periodic form. totals is a raw
// row object or "" for absent.
func PeriodicBalanceJSON(periods, rows []string, totals string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `{"prDates":[%s],"prRows":[%s]`, strings.Join(periods, ","), strings.Join(rows, ","))
	if totals != "" {
		fmt.Fprintf(&sb, `,"prTotals":%s`, totals)
	}
	sb.WriteString("}")
	return sb.String()
}

// SectionJSON renders one cbrSubreports triple.
func SectionJSON(name, periodicJSON string, increasesTotal bool) string {
	return fmt.Sprintf(`[%q,%s,%t]`, name, periodicJSON, increasesTotal)
}

// CompoundJSON renders a compound report. totals is a raw row or "".
func CompoundJSON(title string, periods, sections []string, totals string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `{"cbrTitle":%q,"cbrDates":[%s],"cbrSubreports":[%s]`, title, strings.Join(periods, ","), strings.Join(sections, ","))
	if totals != "" {
		fmt.Fprintf(&sb, `,"cbrTotals":%s`, totals)
	}
	sb.WriteString("}")
	return sb.String()
}

// PostingJSON renders one posting object.
func PostingJSON(account, kind string, amounts []string, extra string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `{"paccount":%q,"ptype":%q,"pamount":[%s],"pstatus":"Unmarked","pcomment":"","ptags":[]`,
		account, kind, strings.Join(amounts, ","))
	if extra != "" {
		sb.WriteString(",")
		sb.WriteString(extra)
	}
	sb.WriteString("}")
	return sb.String()
}

// TransactionJSON renders one transaction object. extra is appended
// verbatim inside the object for per-test fields.
func TransactionJSON(index int, date, description string, postings []string, extra string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb,
		`{"tindex":%d,"tdate":%q,"tdate2":null,"tstatus":"Unmarked","tcode":"","tdescription":%q,"tcomment":"","ttags":[],"tprecedingcomment":"","tsourcepos":[{"sourceLine":1,"sourceColumn":1,"sourceName":"test.journal"}],"tpostings":[%s]`,
		index, date, description, strings.Join(postings, ","))
	if extra != "" {
		sb.WriteString(",")
		sb.WriteString(extra)
	}
	sb.WriteString("}")
	return sb.String()
}
