// Package feed holds the product feed data model: the Product record,
// its closed attribute sets and the value objects with canonical
// string renderings shared by every export format.
package feed

import (
	"strings"
	"time"

	"github.com/Rhymond/go-money"
)

// Product is one feed record. Every field is optional: scalars are
// pointers (or zero-valued enums), lists default to empty slices and
// the two feed-control flags default to false. A Product carries no
// cross-field validation; serializers accept any combination of
// present and absent fields.
type Product struct {
	// Feed control flags
	EnableSearch   bool
	EnableCheckout bool

	// Identifiers
	ID    *string
	Gtin  *string
	Mpn   *string
	Title *string

	// Descriptive text
	Description *string
	Link        *string

	// Item information
	Condition       Condition
	ProductCategory *string
	Brand           *string
	Material        *string

	// Physical attributes. Dimensions may be given as the composite
	// value object or as discrete length/width/height plus a shared
	// unit; when both are present the composite wins.
	Dimensions    *Dimensions
	Length        *float64
	Width         *float64
	Height        *float64
	DimensionUnit *string
	Weight        *float64
	WeightUnit    *string
	AgeGroup      AgeGroup

	// Media
	ImageLink           *string
	AdditionalImageLink []string
	VideoLink           *string
	Model3DLink         *string

	// Price and promotions
	Price                  *money.Money
	SalePrice              *money.Money
	SalePriceEffectiveDate *DateRange
	UnitPricing            *UnitPricing
	PricingTrend           *string

	// Availability and inventory
	Availability      Availability
	AvailabilityDate  *time.Time
	InventoryQuantity *int
	ExpirationDate    *time.Time
	PickupMethod      PickupMethod
	PickupSLA         *string

	// Variants
	ItemGroupID            *string
	ItemGroupTitle         *string
	Color                  *string
	Size                   *string
	SizeSystem             *string
	Gender                 Gender
	OfferID                *string
	CustomVariant1Category *string
	CustomVariant1Option   *string
	CustomVariant2Category *string
	CustomVariant2Option   *string
	CustomVariant3Category *string
	CustomVariant3Option   *string

	// Fulfillment
	Shipping         []Shipping
	DeliveryEstimate *time.Time

	// Merchant info
	SellerName          *string
	SellerURL           *string
	SellerPrivacyPolicy *string
	SellerTOS           *string

	// Returns
	ReturnPolicy *string
	ReturnWindow *int

	// Performance signals
	PopularityScore *float64
	ReturnRate      *float64

	// Compliance
	Warning        *string
	WarningURL     *string
	AgeRestriction *int

	// Reviews and Q&A
	ProductReviewCount  *int
	ProductReviewRating *float64
	StoreReviewCount    *int
	StoreReviewRating   *float64
	QAndA               *string
	RawReviewData       *string

	// Related products
	RelatedProductID []string
	RelationshipType RelationshipType

	// Geo overrides
	GeoPrice        []GeoPrice
	GeoAvailability []GeoAvailability
}

// Normalize trims surrounding whitespace from every free-text field.
// Absent fields stay absent and are never coerced to empty strings.
// Fresh pointers are assigned, so normalizing a copy of a Product
// never writes through pointers shared with the original.
// RawReviewData is an opaque blob and is left untouched.
// Normalize is idempotent.
func (p *Product) Normalize() {
	text := []**string{
		&p.ID, &p.Gtin, &p.Mpn, &p.Title,
		&p.Description, &p.Link,
		&p.ProductCategory, &p.Brand, &p.Material,
		&p.DimensionUnit, &p.WeightUnit,
		&p.ImageLink, &p.VideoLink, &p.Model3DLink,
		&p.PricingTrend,
		&p.PickupSLA,
		&p.ItemGroupID, &p.ItemGroupTitle,
		&p.Color, &p.Size, &p.SizeSystem, &p.OfferID,
		&p.CustomVariant1Category, &p.CustomVariant1Option,
		&p.CustomVariant2Category, &p.CustomVariant2Option,
		&p.CustomVariant3Category, &p.CustomVariant3Option,
		&p.SellerName, &p.SellerURL, &p.SellerPrivacyPolicy, &p.SellerTOS,
		&p.ReturnPolicy,
		&p.Warning, &p.WarningURL,
		&p.QAndA,
	}
	for _, f := range text {
		if *f == nil {
			continue
		}
		trimmed := strings.TrimSpace(**f)
		*f = &trimmed
	}
}
