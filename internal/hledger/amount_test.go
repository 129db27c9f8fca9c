package hledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juev/hledger-viewer/internal/testutil"
)

func TestDecodeAmount(t *testing.T) {
	amount, err := decodeAmount([]byte(testutil.AmountJSON("$", 10000, 2)))
	require.NoError(t, err)

	assert.Equal(t, "$", amount.Commodity)
	assert.Equal(t, "100", amount.Quantity.String())
	assert.Nil(t, amount.Price)
	require.NotNil(t, amount.Style)
	assert.Equal(t, "L", amount.Style.CommoditySide)
	assert.Equal(t, 2, amount.Style.Precision)
}

func TestDecodeAmount_EmptyCommodity(t *testing.T) {
	amount, err := decodeAmount([]byte(`{"acommodity":"","aquantity":{"decimalMantissa":5,"decimalPlaces":0}}`))
	require.NoError(t, err)
	assert.Equal(t, "", amount.Commodity)
	assert.Equal(t, "5", amount.Quantity.String())
	assert.Nil(t, amount.Style)
}

func TestDecodeAmount_MissingFields(t *testing.T) {
	tests := []struct {
		name  string
		json  string
		field string
	}{
		{
			name:  "no commodity",
			json:  `{"aquantity":{"decimalMantissa":5,"decimalPlaces":0}}`,
			field: "acommodity",
		},
		{
			name:  "no quantity",
			json:  `{"acommodity":"$"}`,
			field: "aquantity",
		},
		{
			name:  "null quantity",
			json:  `{"acommodity":"$","aquantity":null}`,
			field: "aquantity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeAmount([]byte(tt.json))
			var missing *MissingFieldError
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.field, missing.Field)
		})
	}
}

func TestDecodePrice_Tags(t *testing.T) {
	priceAmount := `{"acommodity":"USD","aquantity":{"decimalMantissa":150,"decimalPlaces":2},"aprice":null}`

	tests := []struct {
		tag  string
		want PriceKind
	}{
		{tag: "UnitPrice", want: UnitPrice},
		{tag: "TotalPrice", want: TotalPrice},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			amount, err := decodeAmount([]byte(testutil.PricedAmountJSON("AAPL", 10, 0, tt.tag, priceAmount)))
			require.NoError(t, err)
			require.NotNil(t, amount.Price)
			assert.Equal(t, tt.want, amount.Price.Kind)
			assert.Equal(t, "USD", amount.Price.Amount.Commodity)
			assert.Equal(t, "1.5", amount.Price.Amount.Quantity.String())
		})
	}
}

func TestDecodePrice_UnknownTag(t *testing.T) {
	priceAmount := `{"acommodity":"USD","aquantity":{"decimalMantissa":150,"decimalPlaces":2}}`
	_, err := decodeAmount([]byte(testutil.PricedAmountJSON("AAPL", 10, 0, "MedianPrice", priceAmount)))

	var unknown *UnknownPriceTagError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "MedianPrice", unknown.Tag)
}

func TestDecodeAmounts_NullIsEmpty(t *testing.T) {
	amounts, err := decodeAmounts([]byte("null"))
	require.NoError(t, err)
	assert.Empty(t, amounts)
	assert.NotNil(t, amounts)
}

func TestDecodeStyle_Defaults(t *testing.T) {
	style, err := decodeStyle([]byte(`{}`))
	require.NoError(t, err)
	assert.Equal(t, "L", style.CommoditySide)
	assert.Equal(t, ".", style.DecimalMark)
	assert.Equal(t, 2, style.Precision)
	assert.Equal(t, "NoRounding", style.Rounding)
}

func TestDecodeStyle_Full(t *testing.T) {
	style, err := decodeStyle([]byte(`{"ascommodityside":"R","ascommodityspaced":true,"asdecimalmark":",","asdigitgroups":".","asprecision":3,"asrounding":"HardRounding"}`))
	require.NoError(t, err)
	assert.Equal(t, "R", style.CommoditySide)
	assert.True(t, style.CommoditySpaced)
	assert.Equal(t, ",", style.DecimalMark)
	assert.Equal(t, ".", style.DigitGroups)
	assert.Equal(t, 3, style.Precision)
	assert.Equal(t, "HardRounding", style.Rounding)
}

func TestDecodeStyle_NonStringDigitGroupsIgnored(t *testing.T) {
	style, err := decodeStyle([]byte(`{"asdigitgroups":[",",[3]]}`))
	require.NoError(t, err)
	assert.Equal(t, "", style.DigitGroups)
}
