package hledger

import (
	"bytes"
	"encoding/json"
)

type rawAmount struct {
	Commodity *string         `json:"acommodity"`
	Quantity  json.RawMessage `json:"aquantity"`
	Price     json.RawMessage `json:"aprice"`
	Style     json.RawMessage `json:"astyle"`
}

type rawPrice struct {
	Tag      string          `json:"tag"`
	Contents json.RawMessage `json:"contents"`
}

type rawStyle struct {
	CommoditySide   *string         `json:"ascommodityside"`
	CommoditySpaced bool            `json:"ascommodityspaced"`
	DecimalMark     *string         `json:"asdecimalmark"`
	DigitGroups     json.RawMessage `json:"asdigitgroups"`
	Precision       json.Number     `json:"asprecision"`
	Rounding        *string         `json:"asrounding"`
}

func isNull(raw json.RawMessage) bool {
	return len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

// decodeAmount decodes one hledger amount object: commodity symbol, exact
// quantity, optional cost price and optional display style.
func decodeAmount(raw json.RawMessage) (Amount, error) {
	var ra rawAmount
	if err := json.Unmarshal(raw, &ra); err != nil {
		return Amount{}, malformedJSON(err)
	}
	if ra.Commodity == nil {
		return Amount{}, &MissingFieldError{Field: "acommodity"}
	}
	if isNull(ra.Quantity) {
		return Amount{}, &MissingFieldError{Field: "aquantity"}
	}
	quantity, err := decodeQuantity(ra.Quantity)
	if err != nil {
		return Amount{}, err
	}
	price, err := decodePrice(ra.Price)
	if err != nil {
		return Amount{}, err
	}
	var style *AmountStyle
	if !isNull(ra.Style) {
		style, err = decodeStyle(ra.Style)
		if err != nil {
			return Amount{}, err
		}
	}
	return Amount{
		Commodity: *ra.Commodity,
		Quantity:  quantity,
		Price:     price,
		Style:     style,
	}, nil
}

// decodeAmounts decodes a JSON array of amount objects. A null or absent
// array is an empty amount set.
func decodeAmounts(raw json.RawMessage) ([]Amount, error) {
	if isNull(raw) {
		return []Amount{}, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, malformedJSON(err)
	}
	amounts := make([]Amount, 0, len(items))
	for _, item := range items {
		amount, err := decodeAmount(item)
		if err != nil {
			return nil, err
		}
		amounts = append(amounts, amount)
	}
	return amounts, nil
}

// decodePrice decodes an aprice value. Prices are tagged amounts:
// {"tag": "UnitPrice"|"TotalPrice", "contents": <amount>}. A price amount
// carries no price of its own.
func decodePrice(raw json.RawMessage) (*Price, error) {
	if isNull(raw) {
		return nil, nil
	}
	var rp rawPrice
	if err := json.Unmarshal(raw, &rp); err != nil {
		return nil, malformedJSON(err)
	}
	var kind PriceKind
	switch rp.Tag {
	case "UnitPrice":
		kind = UnitPrice
	case "TotalPrice":
		kind = TotalPrice
	default:
		return nil, &UnknownPriceTagError{Tag: rp.Tag}
	}
	amount, err := decodeAmount(rp.Contents)
	if err != nil {
		return nil, err
	}
	return &Price{Kind: kind, Amount: amount}, nil
}

// decodeStyle decodes an astyle object, falling back to hledger's defaults
// for absent fields.
func decodeStyle(raw json.RawMessage) (*AmountStyle, error) {
	var rs rawStyle
	if err := json.Unmarshal(raw, &rs); err != nil {
		return nil, malformedJSON(err)
	}
	style := &AmountStyle{
		CommoditySide: "L",
		DecimalMark:   ".",
		Precision:     2,
		Rounding:      "NoRounding",
	}
	if rs.CommoditySide != nil {
		style.CommoditySide = *rs.CommoditySide
	}
	style.CommoditySpaced = rs.CommoditySpaced
	if rs.DecimalMark != nil {
		style.DecimalMark = *rs.DecimalMark
	}
	// asdigitgroups is a string separator or null; other encodings (older
	// hledger versions emit a pair) are ignored rather than rejected.
	if !isNull(rs.DigitGroups) {
		var groups string
		if err := json.Unmarshal(rs.DigitGroups, &groups); err == nil {
			style.DigitGroups = groups
		}
	}
	if rs.Precision != "" {
		if p, err := rs.Precision.Int64(); err == nil {
			style.Precision = int(p)
		}
	}
	if rs.Rounding != nil {
		style.Rounding = *rs.Rounding
	}
	return style, nil
}
