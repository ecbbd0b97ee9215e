// internal/models/product.go
package models

import (
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// Product is the single catalog entity. Kind tags the variant; the matching
// details pointer carries the kind-specific fields. Standard products have no
// details and keep their supplied price.
type Product struct {
	BaseModel
	Kind        ProductKind     `json:"kind" gorm:"type:varchar(20);not null;default:'standard';index"`
	Name        string          `json:"name" gorm:"size:255;not null"`
	Description string          `json:"description" gorm:"type:text"`
	Category    string          `json:"category" gorm:"size:100;index"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	Tags        pq.StringArray  `json:"tags,omitempty" gorm:"type:text[]"`

	// ImagePath is the relative blob key; responses expose ImageURL, the
	// path rewritten against the configured base URL.
	ImagePath string `json:"-" gorm:"size:512"`
	ImageURL  string `json:"image_url,omitempty" gorm:"-"`

	TShirt  *TShirtDetails  `json:"tshirt,omitempty" gorm:"embedded;embeddedPrefix:tshirt_"`
	Mug     *MugDetails     `json:"mug,omitempty" gorm:"embedded;embeddedPrefix:mug_"`
	Jewelry *JewelryDetails `json:"jewelry,omitempty" gorm:"embedded;embeddedPrefix:jewelry_"`
}

type TShirtDetails struct {
	Size       string `json:"size" gorm:"size:5"`
	Color      string `json:"color" gorm:"size:50"`
	CustomText string `json:"custom_text,omitempty" gorm:"size:255"`
	FontStyle  string `json:"font_style,omitempty" gorm:"size:50"`
	FontColor  string `json:"font_color,omitempty" gorm:"size:20"`
	HasImage   bool   `json:"has_image"`
}

type MugDetails struct {
	InteriorColor string `json:"interior_color" gorm:"size:50"`
	PrintedText   string `json:"printed_text,omitempty" gorm:"size:255"`
}

type JewelryDetails struct {
	Material  string `json:"material" gorm:"size:100"`
	Engraving string `json:"engraving,omitempty" gorm:"size:255"`
	Shape     string `json:"shape,omitempty" gorm:"size:50"`
	Color     string `json:"color,omitempty" gorm:"size:50"`
}

// Pricing. A variant's price is always basePrice(kind) plus the surcharges of
// its populated optional customization fields; the client-supplied price is
// never stored for variants.
var (
	tshirtBasePrice  = decimal.NewFromFloat(19.99)
	mugBasePrice     = decimal.NewFromFloat(9.99)
	jewelryBasePrice = decimal.NewFromFloat(29.99)

	surchargeImage     = decimal.NewFromInt(5)
	surchargeText      = decimal.NewFromInt(3)
	surchargeFontStyle = decimal.NewFromInt(2)
	surchargeFontColor = decimal.NewFromInt(2)
)

const (
	DefaultFontStyle = "standard"
	DefaultFontColor = "#000000"
)

// Customization is implemented by each variant payload and drives pricing
// dispatch by kind.
type Customization interface {
	BasePrice() decimal.Decimal
	Surcharge() decimal.Decimal
}

func (t *TShirtDetails) BasePrice() decimal.Decimal {
	return tshirtBasePrice
}

func (t *TShirtDetails) Surcharge() decimal.Decimal {
	s := decimal.Zero
	if t.HasImage {
		s = s.Add(surchargeImage)
	}
	if t.CustomText != "" {
		s = s.Add(surchargeText)
	}
	if t.FontStyle != "" && t.FontStyle != DefaultFontStyle {
		s = s.Add(surchargeFontStyle)
	}
	if t.FontColor != "" && t.FontColor != DefaultFontColor {
		s = s.Add(surchargeFontColor)
	}
	return s
}

func (m *MugDetails) BasePrice() decimal.Decimal {
	return mugBasePrice
}

func (m *MugDetails) Surcharge() decimal.Decimal {
	if m.PrintedText != "" {
		return surchargeText
	}
	return decimal.Zero
}

func (j *JewelryDetails) BasePrice() decimal.Decimal {
	return jewelryBasePrice
}

func (j *JewelryDetails) Surcharge() decimal.Decimal {
	if j.Engraving != "" {
		return surchargeText
	}
	return decimal.Zero
}

// Customization returns the variant payload matching p.Kind, or nil for
// standard products.
func (p *Product) Customization() Customization {
	switch p.Kind {
	case ProductKindTShirt:
		if p.TShirt != nil {
			return p.TShirt
		}
	case ProductKindMug:
		if p.Mug != nil {
			return p.Mug
		}
	case ProductKindJewelry:
		if p.Jewelry != nil {
			return p.Jewelry
		}
	}
	return nil
}

// RecomputePrice overwrites p.Price from the variant pricing rule. It reports
// whether a rule applied; standard products keep their stored price.
func (p *Product) RecomputePrice() bool {
	c := p.Customization()
	if c == nil {
		return false
	}
	p.Price = c.BasePrice().Add(c.Surcharge())
	return true
}
