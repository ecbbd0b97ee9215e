// internal/models/product_test.go
package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTShirtPricing(t *testing.T) {
	tests := []struct {
		name    string
		details TShirtDetails
		want    string
	}{
		{
			name:    "base price only",
			details: TShirtDetails{Size: "M", Color: "red"},
			want:    "19.99",
		},
		{
			name:    "custom text adds 3",
			details: TShirtDetails{Size: "M", Color: "red", CustomText: "Hi"},
			want:    "22.99",
		},
		{
			name:    "custom text and font color",
			details: TShirtDetails{Size: "M", Color: "red", CustomText: "Hi", FontColor: "#FF0000"},
			want:    "24.99",
		},
		{
			name:    "default font color is free",
			details: TShirtDetails{Size: "M", Color: "red", CustomText: "Hi", FontColor: DefaultFontColor},
			want:    "22.99",
		},
		{
			name:    "default font style is free",
			details: TShirtDetails{Size: "L", Color: "blue", FontStyle: DefaultFontStyle},
			want:    "19.99",
		},
		{
			name: "every surcharge",
			details: TShirtDetails{
				Size: "XL", Color: "black",
				CustomText: "Joyeux Noël",
				FontStyle:  "italic",
				FontColor:  "#FF0000",
				HasImage:   true,
			},
			want: "31.99",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := tt.details
			got := d.BasePrice().Add(d.Surcharge())
			assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
				"got %s, want %s", got, tt.want)
		})
	}
}

func TestMugPricing(t *testing.T) {
	plain := MugDetails{InteriorColor: "white"}
	printed := MugDetails{InteriorColor: "white", PrintedText: "Bonjour"}

	assert.True(t, plain.BasePrice().Add(plain.Surcharge()).Equal(decimal.RequireFromString("9.99")))
	assert.True(t, printed.BasePrice().Add(printed.Surcharge()).Equal(decimal.RequireFromString("12.99")))
}

func TestJewelryPricing(t *testing.T) {
	plain := JewelryDetails{Material: "silver"}
	engraved := JewelryDetails{Material: "silver", Engraving: "A+B"}

	assert.True(t, plain.BasePrice().Add(plain.Surcharge()).Equal(decimal.RequireFromString("29.99")))
	assert.True(t, engraved.BasePrice().Add(engraved.Surcharge()).Equal(decimal.RequireFromString("32.99")))
}

func TestRecomputePriceIgnoresClientPrice(t *testing.T) {
	p := Product{
		Kind:  ProductKindTShirt,
		Name:  "Tee",
		Price: decimal.RequireFromString("0.01"), // client-forged
		TShirt: &TShirtDetails{
			Size: "M", Color: "red", CustomText: "Hi", FontColor: "#FF0000",
		},
	}

	require.True(t, p.RecomputePrice())
	assert.True(t, p.Price.Equal(decimal.RequireFromString("24.99")), "got %s", p.Price)
}

func TestRecomputePriceStandardProductKeepsPrice(t *testing.T) {
	price := decimal.RequireFromString("42.50")
	p := Product{Kind: ProductKindStandard, Name: "Poster", Price: price}

	assert.False(t, p.RecomputePrice())
	assert.True(t, p.Price.Equal(price))
}

func TestCustomizationDispatch(t *testing.T) {
	tshirt := Product{Kind: ProductKindTShirt, TShirt: &TShirtDetails{Size: "M", Color: "red"}}
	mug := Product{Kind: ProductKindMug, Mug: &MugDetails{InteriorColor: "blue"}}
	jewelry := Product{Kind: ProductKindJewelry, Jewelry: &JewelryDetails{Material: "gold"}}
	standard := Product{Kind: ProductKindStandard}
	mismatched := Product{Kind: ProductKindMug, TShirt: &TShirtDetails{}}

	assert.NotNil(t, tshirt.Customization())
	assert.NotNil(t, mug.Customization())
	assert.NotNil(t, jewelry.Customization())
	assert.Nil(t, standard.Customization())
	assert.Nil(t, mismatched.Customization())
}

func TestOrderStatusValid(t *testing.T) {
	assert.True(t, OrderStatusPending.Valid())
	assert.True(t, OrderStatusInProgress.Valid())
	assert.True(t, OrderStatusDelivered.Valid())
	assert.False(t, OrderStatus("shipped").Valid())
	assert.False(t, OrderStatus("").Valid())
}
