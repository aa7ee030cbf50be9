package serializer

import (
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"

	"github.com/niksmo/product-feed/pkg/feed"
)

const dateLayout = "2006-01-02"

// Record is the flat 69-field projection of a Product shared by every
// feed format: JSON Lines marshals it through the json tags, the Avro
// serde through the avro tags, and the CSV serializer walks its fields
// in declaration order. Absent scalars are nil, lists are never nil.
type Record struct {
	EnableSearch           bool     `json:"enable_search" avro:"enable_search"`
	EnableCheckout         bool     `json:"enable_checkout" avro:"enable_checkout"`
	ID                     *string  `json:"id" avro:"id"`
	Gtin                   *string  `json:"gtin" avro:"gtin"`
	Mpn                    *string  `json:"mpn" avro:"mpn"`
	Title                  *string  `json:"title" avro:"title"`
	Description            *string  `json:"description" avro:"description"`
	Link                   *string  `json:"link" avro:"link"`
	Condition              *string  `json:"condition" avro:"condition"`
	ProductCategory        *string  `json:"product_category" avro:"product_category"`
	Brand                  *string  `json:"brand" avro:"brand"`
	Material               *string  `json:"material" avro:"material"`
	Dimensions             *string  `json:"dimensions" avro:"dimensions"`
	Length                 *string  `json:"length" avro:"length"`
	Width                  *string  `json:"width" avro:"width"`
	Height                 *string  `json:"height" avro:"height"`
	Weight                 *string  `json:"weight" avro:"weight"`
	AgeGroup               *string  `json:"age_group" avro:"age_group"`
	ImageLink              *string  `json:"image_link" avro:"image_link"`
	AdditionalImageLink    []string `json:"additional_image_link" avro:"additional_image_link"`
	VideoLink              *string  `json:"video_link" avro:"video_link"`
	Model3DLink            *string  `json:"model_3d_link" avro:"model_3d_link"`
	Price                  *string  `json:"price" avro:"price"`
	SalePrice              *string  `json:"sale_price" avro:"sale_price"`
	SalePriceEffectiveDate *string  `json:"sale_price_effective_date" avro:"sale_price_effective_date"`
	UnitPricingMeasure     *string  `json:"unit_pricing_measure" avro:"unit_pricing_measure"`
	PricingTrend           *string  `json:"pricing_trend" avro:"pricing_trend"`
	Availability           *string  `json:"availability" avro:"availability"`
	AvailabilityDate       *string  `json:"availability_date" avro:"availability_date"`
	InventoryQuantity      *int64   `json:"inventory_quantity" avro:"inventory_quantity"`
	ExpirationDate         *string  `json:"expiration_date" avro:"expiration_date"`
	PickupMethod           *string  `json:"pickup_method" avro:"pickup_method"`
	PickupSLA              *string  `json:"pickup_sla" avro:"pickup_sla"`
	ItemGroupID            *string  `json:"item_group_id" avro:"item_group_id"`
	ItemGroupTitle         *string  `json:"item_group_title" avro:"item_group_title"`
	Color                  *string  `json:"color" avro:"color"`
	Size                   *string  `json:"size" avro:"size"`
	SizeSystem             *string  `json:"size_system" avro:"size_system"`
	Gender                 *string  `json:"gender" avro:"gender"`
	OfferID                *string  `json:"offer_id" avro:"offer_id"`
	CustomVariant1Category *string  `json:"custom_variant1_category" avro:"custom_variant1_category"`
	CustomVariant1Option   *string  `json:"custom_variant1_option" avro:"custom_variant1_option"`
	CustomVariant2Category *string  `json:"custom_variant2_category" avro:"custom_variant2_category"`
	CustomVariant2Option   *string  `json:"custom_variant2_option" avro:"custom_variant2_option"`
	CustomVariant3Category *string  `json:"custom_variant3_category" avro:"custom_variant3_category"`
	CustomVariant3Option   *string  `json:"custom_variant3_option" avro:"custom_variant3_option"`
	Shipping               []string `json:"shipping" avro:"shipping"`
	DeliveryEstimate       *string  `json:"delivery_estimate" avro:"delivery_estimate"`
	SellerName             *string  `json:"seller_name" avro:"seller_name"`
	SellerURL              *string  `json:"seller_url" avro:"seller_url"`
	SellerPrivacyPolicy    *string  `json:"seller_privacy_policy" avro:"seller_privacy_policy"`
	SellerTOS              *string  `json:"seller_tos" avro:"seller_tos"`
	ReturnPolicy           *string  `json:"return_policy" avro:"return_policy"`
	ReturnWindow           *int64   `json:"return_window" avro:"return_window"`
	PopularityScore        *float64 `json:"popularity_score" avro:"popularity_score"`
	ReturnRate             *float64 `json:"return_rate" avro:"return_rate"`
	Warning                *string  `json:"warning" avro:"warning"`
	WarningURL             *string  `json:"warning_url" avro:"warning_url"`
	AgeRestriction         *int64   `json:"age_restriction" avro:"age_restriction"`
	ProductReviewCount     *int64   `json:"product_review_count" avro:"product_review_count"`
	ProductReviewRating    *float64 `json:"product_review_rating" avro:"product_review_rating"`
	StoreReviewCount       *int64   `json:"store_review_count" avro:"store_review_count"`
	StoreReviewRating      *float64 `json:"store_review_rating" avro:"store_review_rating"`
	QAndA                  *string  `json:"q_and_a" avro:"q_and_a"`
	RawReviewData          *string  `json:"raw_review_data" avro:"raw_review_data"`
	RelatedProductID       []string `json:"related_product_id" avro:"related_product_id"`
	RelationshipType       *string  `json:"relationship_type" avro:"relationship_type"`
	GeoPrice               []string `json:"geo_price" avro:"geo_price"`
	GeoAvailability        []string `json:"geo_availability" avro:"geo_availability"`
}

// NewRecord projects a Product onto the feed vocabulary, applying
// every cross-format formatting rule. The argument is a value copy,
// so normalizing it leaves the caller's Product untouched.
func NewRecord(p feed.Product) Record {
	p.Normalize()
	return Record{
		EnableSearch:           p.EnableSearch,
		EnableCheckout:         p.EnableCheckout,
		ID:                     p.ID,
		Gtin:                   p.Gtin,
		Mpn:                    p.Mpn,
		Title:                  p.Title,
		Description:            p.Description,
		Link:                   p.Link,
		Condition:              enumToken(p.Condition),
		ProductCategory:        p.ProductCategory,
		Brand:                  p.Brand,
		Material:               p.Material,
		Dimensions:             compositeDimensions(p),
		Length:                 measure(p.Length, p.DimensionUnit),
		Width:                  measure(p.Width, p.DimensionUnit),
		Height:                 measure(p.Height, p.DimensionUnit),
		Weight:                 measure(p.Weight, p.WeightUnit),
		AgeGroup:               enumToken(p.AgeGroup),
		ImageLink:              p.ImageLink,
		AdditionalImageLink:    cloneList(p.AdditionalImageLink),
		VideoLink:              p.VideoLink,
		Model3DLink:            p.Model3DLink,
		Price:                  moneyValue(p.Price),
		SalePrice:              moneyValue(p.SalePrice),
		SalePriceEffectiveDate: stringerValue(p.SalePriceEffectiveDate),
		UnitPricingMeasure:     stringerValue(p.UnitPricing),
		PricingTrend:           p.PricingTrend,
		Availability:           enumToken(p.Availability),
		AvailabilityDate:       dateValue(p.AvailabilityDate),
		InventoryQuantity:      intValue(p.InventoryQuantity),
		ExpirationDate:         dateValue(p.ExpirationDate),
		PickupMethod:           enumToken(p.PickupMethod),
		PickupSLA:              p.PickupSLA,
		ItemGroupID:            p.ItemGroupID,
		ItemGroupTitle:         p.ItemGroupTitle,
		Color:                  p.Color,
		Size:                   p.Size,
		SizeSystem:             p.SizeSystem,
		Gender:                 enumToken(p.Gender),
		OfferID:                p.OfferID,
		CustomVariant1Category: p.CustomVariant1Category,
		CustomVariant1Option:   p.CustomVariant1Option,
		CustomVariant2Category: p.CustomVariant2Category,
		CustomVariant2Option:   p.CustomVariant2Option,
		CustomVariant3Category: p.CustomVariant3Category,
		CustomVariant3Option:   p.CustomVariant3Option,
		Shipping:               stringerList(p.Shipping),
		DeliveryEstimate:       dateValue(p.DeliveryEstimate),
		SellerName:             p.SellerName,
		SellerURL:              p.SellerURL,
		SellerPrivacyPolicy:    p.SellerPrivacyPolicy,
		SellerTOS:              p.SellerTOS,
		ReturnPolicy:           p.ReturnPolicy,
		ReturnWindow:           intValue(p.ReturnWindow),
		PopularityScore:        p.PopularityScore,
		ReturnRate:             p.ReturnRate,
		Warning:                p.Warning,
		WarningURL:             p.WarningURL,
		AgeRestriction:         intValue(p.AgeRestriction),
		ProductReviewCount:     intValue(p.ProductReviewCount),
		ProductReviewRating:    p.ProductReviewRating,
		StoreReviewCount:       intValue(p.StoreReviewCount),
		StoreReviewRating:      p.StoreReviewRating,
		QAndA:                  p.QAndA,
		RawReviewData:          p.RawReviewData,
		RelatedProductID:       cloneList(p.RelatedProductID),
		RelationshipType:       enumToken(p.RelationshipType),
		GeoPrice:               stringerList(p.GeoPrice),
		GeoAvailability:        stringerList(p.GeoAvailability),
	}
}

func enumToken[T ~string](v T) *string {
	if v == "" {
		return nil
	}
	s := string(v)
	return &s
}

func moneyValue(m *money.Money) *string {
	if m == nil {
		return nil
	}
	s := feed.FormatMoney(m)
	return &s
}

func dateValue(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func intValue(v *int) *int64 {
	if v == nil {
		return nil
	}
	n := int64(*v)
	return &n
}

func stringerValue[T fmt.Stringer](v *T) *string {
	if v == nil {
		return nil
	}
	s := (*v).String()
	return &s
}

// measure renders a discrete physical value as "{value} {unit}" with
// trailing zeros trimmed. Both the value and the unit must be present.
func measure(v *float64, unit *string) *string {
	if v == nil || unit == nil {
		return nil
	}
	s := decimal.NewFromFloat(*v).String() + " " + *unit
	return &s
}

// compositeDimensions prefers the Dimensions value object and falls
// back to the discrete fields only when length, width, height and the
// unit are all present. The two representations are never reconciled.
func compositeDimensions(p feed.Product) *string {
	if p.Dimensions != nil {
		s := p.Dimensions.String()
		return &s
	}
	if p.Length != nil && p.Width != nil && p.Height != nil && p.DimensionUnit != nil {
		s := fmt.Sprintf("%sx%sx%s %s",
			decimal.NewFromFloat(*p.Length),
			decimal.NewFromFloat(*p.Width),
			decimal.NewFromFloat(*p.Height),
			*p.DimensionUnit,
		)
		return &s
	}
	return nil
}

func cloneList(vs []string) []string {
	out := make([]string, len(vs))
	copy(out, vs)
	return out
}

func stringerList[T fmt.Stringer](vs []T) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.String())
	}
	return out
}
