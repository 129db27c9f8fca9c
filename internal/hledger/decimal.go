package hledger

import (
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// rawQuantity mirrors hledger's aquantity object. The floatingPoint field
// is a lossy approximation and is deliberately not mapped: quantities are
// reconstructed from the mantissa/scale pair only.
type rawQuantity struct {
	Mantissa json.Number `json:"decimalMantissa"`
	Places   int         `json:"decimalPlaces"`
}

// reconstruct builds the exact decimal mantissa × 10^-scale. The mantissa
// is arbitrary precision: totals over years of postings overflow int64.
func reconstruct(mantissa *big.Int, scale int) (decimal.Decimal, error) {
	if scale < 0 {
		return decimal.Decimal{}, fmt.Errorf("%w: negative scale %d", ErrMalformedQuantity, scale)
	}
	return decimal.NewFromBigInt(mantissa, -int32(scale)), nil
}

func decodeQuantity(raw json.RawMessage) (decimal.Decimal, error) {
	var rq rawQuantity
	if err := json.Unmarshal(raw, &rq); err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %v", ErrMalformedQuantity, err)
	}
	if rq.Mantissa == "" {
		return decimal.Decimal{}, fmt.Errorf("%w: no mantissa", ErrMalformedQuantity)
	}
	mantissa, ok := new(big.Int).SetString(rq.Mantissa.String(), 10)
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: mantissa %q is not an integer", ErrMalformedQuantity, rq.Mantissa)
	}
	return reconstruct(mantissa, rq.Places)
}
