// Package manifest loads product records from a YAML manifest, the
// input side of the feed writer CLI. Monetary amounts are given as
// integer minor units with an ISO currency code, dates as YYYY-MM-DD.
package manifest

import (
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/spf13/viper"

	"github.com/niksmo/product-feed/pkg/feed"
)

const dateLayout = "2006-01-02"

type moneySpec struct {
	Amount   int64  `mapstructure:"amount"`
	Currency string `mapstructure:"currency"`
}

type dimensionsSpec struct {
	Length float64 `mapstructure:"length"`
	Width  float64 `mapstructure:"width"`
	Height float64 `mapstructure:"height"`
	Unit   string  `mapstructure:"unit"`
}

type dateRangeSpec struct {
	Start string `mapstructure:"start"`
	End   string `mapstructure:"end"`
}

type unitPricingSpec struct {
	Measure     float64 `mapstructure:"measure"`
	MeasureUnit string  `mapstructure:"measure_unit"`
	Base        float64 `mapstructure:"base"`
	BaseUnit    string  `mapstructure:"base_unit"`
}

type shippingSpec struct {
	Country      string `mapstructure:"country"`
	Region       string `mapstructure:"region"`
	ServiceClass string `mapstructure:"service_class"`
	Amount       int64  `mapstructure:"amount"`
	Currency     string `mapstructure:"currency"`
}

type geoPriceSpec struct {
	Amount   int64  `mapstructure:"amount"`
	Currency string `mapstructure:"currency"`
	Region   string `mapstructure:"region"`
}

type geoAvailabilitySpec struct {
	Availability string `mapstructure:"availability"`
	Region       string `mapstructure:"region"`
}

type productSpec struct {
	EnableSearch   bool    `mapstructure:"enable_search"`
	EnableCheckout bool    `mapstructure:"enable_checkout"`
	ID             *string `mapstructure:"id"`
	Gtin           *string `mapstructure:"gtin"`
	Mpn            *string `mapstructure:"mpn"`
	Title          *string `mapstructure:"title"`
	Description    *string `mapstructure:"description"`
	Link           *string `mapstructure:"link"`

	Condition       string          `mapstructure:"condition"`
	ProductCategory *string         `mapstructure:"product_category"`
	Brand           *string         `mapstructure:"brand"`
	Material        *string         `mapstructure:"material"`
	Dimensions      *dimensionsSpec `mapstructure:"dimensions"`
	Length          *float64        `mapstructure:"length"`
	Width           *float64        `mapstructure:"width"`
	Height          *float64        `mapstructure:"height"`
	DimensionUnit   *string         `mapstructure:"dimension_unit"`
	Weight          *float64        `mapstructure:"weight"`
	WeightUnit      *string         `mapstructure:"weight_unit"`
	AgeGroup        string          `mapstructure:"age_group"`

	ImageLink           *string  `mapstructure:"image_link"`
	AdditionalImageLink []string `mapstructure:"additional_image_link"`
	VideoLink           *string  `mapstructure:"video_link"`
	Model3DLink         *string  `mapstructure:"model_3d_link"`

	Price                  *moneySpec       `mapstructure:"price"`
	SalePrice              *moneySpec       `mapstructure:"sale_price"`
	SalePriceEffectiveDate *dateRangeSpec   `mapstructure:"sale_price_effective_date"`
	UnitPricing            *unitPricingSpec `mapstructure:"unit_pricing"`
	PricingTrend           *string          `mapstructure:"pricing_trend"`

	Availability      string  `mapstructure:"availability"`
	AvailabilityDate  *string `mapstructure:"availability_date"`
	InventoryQuantity *int    `mapstructure:"inventory_quantity"`
	ExpirationDate    *string `mapstructure:"expiration_date"`
	PickupMethod      string  `mapstructure:"pickup_method"`
	PickupSLA         *string `mapstructure:"pickup_sla"`

	ItemGroupID            *string `mapstructure:"item_group_id"`
	ItemGroupTitle         *string `mapstructure:"item_group_title"`
	Color                  *string `mapstructure:"color"`
	Size                   *string `mapstructure:"size"`
	SizeSystem             *string `mapstructure:"size_system"`
	Gender                 string  `mapstructure:"gender"`
	OfferID                *string `mapstructure:"offer_id"`
	CustomVariant1Category *string `mapstructure:"custom_variant1_category"`
	CustomVariant1Option   *string `mapstructure:"custom_variant1_option"`
	CustomVariant2Category *string `mapstructure:"custom_variant2_category"`
	CustomVariant2Option   *string `mapstructure:"custom_variant2_option"`
	CustomVariant3Category *string `mapstructure:"custom_variant3_category"`
	CustomVariant3Option   *string `mapstructure:"custom_variant3_option"`

	Shipping         []shippingSpec `mapstructure:"shipping"`
	DeliveryEstimate *string        `mapstructure:"delivery_estimate"`

	SellerName          *string `mapstructure:"seller_name"`
	SellerURL           *string `mapstructure:"seller_url"`
	SellerPrivacyPolicy *string `mapstructure:"seller_privacy_policy"`
	SellerTOS           *string `mapstructure:"seller_tos"`

	ReturnPolicy *string `mapstructure:"return_policy"`
	ReturnWindow *int    `mapstructure:"return_window"`

	PopularityScore *float64 `mapstructure:"popularity_score"`
	ReturnRate      *float64 `mapstructure:"return_rate"`

	Warning        *string `mapstructure:"warning"`
	WarningURL     *string `mapstructure:"warning_url"`
	AgeRestriction *int    `mapstructure:"age_restriction"`

	ProductReviewCount  *int     `mapstructure:"product_review_count"`
	ProductReviewRating *float64 `mapstructure:"product_review_rating"`
	StoreReviewCount    *int     `mapstructure:"store_review_count"`
	StoreReviewRating   *float64 `mapstructure:"store_review_rating"`
	QAndA               *string  `mapstructure:"q_and_a"`
	RawReviewData       *string  `mapstructure:"raw_review_data"`

	RelatedProductID []string `mapstructure:"related_product_id"`
	RelationshipType string   `mapstructure:"relationship_type"`

	GeoPrice        []geoPriceSpec        `mapstructure:"geo_price"`
	GeoAvailability []geoAvailabilitySpec `mapstructure:"geo_availability"`
}

type manifest struct {
	Products []productSpec `mapstructure:"products"`
}

// Load reads the manifest at path and converts it to feed records.
func Load(path string) ([]feed.Product, error) {
	const op = "manifest.Load"

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var m manifest
	if err := v.Unmarshal(&m); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps := make([]feed.Product, 0, len(m.Products))
	for i, spec := range m.Products {
		p, err := toProduct(spec)
		if err != nil {
			return nil, fmt.Errorf("%s: product %d: %w", op, i, err)
		}
		ps = append(ps, p)
	}
	return ps, nil
}

func toProduct(spec productSpec) (feed.Product, error) {
	p := feed.Product{
		EnableSearch:   spec.EnableSearch,
		EnableCheckout: spec.EnableCheckout,
		ID:             spec.ID,
		Gtin:           spec.Gtin,
		Mpn:            spec.Mpn,
		Title:          spec.Title,
		Description:    spec.Description,
		Link:           spec.Link,

		Condition:       feed.Condition(spec.Condition),
		ProductCategory: spec.ProductCategory,
		Brand:           spec.Brand,
		Material:        spec.Material,
		Length:          spec.Length,
		Width:           spec.Width,
		Height:          spec.Height,
		DimensionUnit:   spec.DimensionUnit,
		Weight:          spec.Weight,
		WeightUnit:      spec.WeightUnit,
		AgeGroup:        feed.AgeGroup(spec.AgeGroup),

		ImageLink:           spec.ImageLink,
		AdditionalImageLink: spec.AdditionalImageLink,
		VideoLink:           spec.VideoLink,
		Model3DLink:         spec.Model3DLink,

		Price:        moneyOf(spec.Price),
		SalePrice:    moneyOf(spec.SalePrice),
		PricingTrend: spec.PricingTrend,

		Availability:      feed.Availability(spec.Availability),
		InventoryQuantity: spec.InventoryQuantity,
		PickupMethod:      feed.PickupMethod(spec.PickupMethod),
		PickupSLA:         spec.PickupSLA,

		ItemGroupID:            spec.ItemGroupID,
		ItemGroupTitle:         spec.ItemGroupTitle,
		Color:                  spec.Color,
		Size:                   spec.Size,
		SizeSystem:             spec.SizeSystem,
		Gender:                 feed.Gender(spec.Gender),
		OfferID:                spec.OfferID,
		CustomVariant1Category: spec.CustomVariant1Category,
		CustomVariant1Option:   spec.CustomVariant1Option,
		CustomVariant2Category: spec.CustomVariant2Category,
		CustomVariant2Option:   spec.CustomVariant2Option,
		CustomVariant3Category: spec.CustomVariant3Category,
		CustomVariant3Option:   spec.CustomVariant3Option,

		SellerName:          spec.SellerName,
		SellerURL:           spec.SellerURL,
		SellerPrivacyPolicy: spec.SellerPrivacyPolicy,
		SellerTOS:           spec.SellerTOS,

		ReturnPolicy: spec.ReturnPolicy,
		ReturnWindow: spec.ReturnWindow,

		PopularityScore: spec.PopularityScore,
		ReturnRate:      spec.ReturnRate,

		Warning:        spec.Warning,
		WarningURL:     spec.WarningURL,
		AgeRestriction: spec.AgeRestriction,

		ProductReviewCount:  spec.ProductReviewCount,
		ProductReviewRating: spec.ProductReviewRating,
		StoreReviewCount:    spec.StoreReviewCount,
		StoreReviewRating:   spec.StoreReviewRating,
		QAndA:               spec.QAndA,
		RawReviewData:       spec.RawReviewData,

		RelatedProductID: spec.RelatedProductID,
		RelationshipType: feed.RelationshipType(spec.RelationshipType),
	}

	if spec.Dimensions != nil {
		d := feed.NewDimensions(
			spec.Dimensions.Length,
			spec.Dimensions.Width,
			spec.Dimensions.Height,
			spec.Dimensions.Unit,
		)
		p.Dimensions = &d
	}

	if spec.UnitPricing != nil {
		u := feed.NewUnitPricing(
			spec.UnitPricing.Measure,
			spec.UnitPricing.MeasureUnit,
			spec.UnitPricing.Base,
			spec.UnitPricing.BaseUnit,
		)
		p.UnitPricing = &u
	}

	if spec.SalePriceEffectiveDate != nil {
		start, err := parseDate(spec.SalePriceEffectiveDate.Start)
		if err != nil {
			return feed.Product{}, err
		}
		end, err := parseDate(spec.SalePriceEffectiveDate.End)
		if err != nil {
			return feed.Product{}, err
		}
		r := feed.NewDateRange(start, end)
		p.SalePriceEffectiveDate = &r
	}

	var err error
	if p.AvailabilityDate, err = parseDatePtr(spec.AvailabilityDate); err != nil {
		return feed.Product{}, err
	}
	if p.ExpirationDate, err = parseDatePtr(spec.ExpirationDate); err != nil {
		return feed.Product{}, err
	}
	if p.DeliveryEstimate, err = parseDatePtr(spec.DeliveryEstimate); err != nil {
		return feed.Product{}, err
	}

	for _, s := range spec.Shipping {
		p.Shipping = append(p.Shipping, feed.NewShipping(
			s.Country, s.Region, s.ServiceClass,
			money.New(s.Amount, s.Currency),
		))
	}
	for _, g := range spec.GeoPrice {
		p.GeoPrice = append(p.GeoPrice, feed.NewGeoPrice(
			money.New(g.Amount, g.Currency), g.Region,
		))
	}
	for _, g := range spec.GeoAvailability {
		p.GeoAvailability = append(p.GeoAvailability, feed.NewGeoAvailability(
			feed.Availability(g.Availability), g.Region,
		))
	}

	return p, nil
}

func moneyOf(spec *moneySpec) *money.Money {
	if spec == nil {
		return nil
	}
	return money.New(spec.Amount, spec.Currency)
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse date %q: %w", s, err)
	}
	return t, nil
}

func parseDatePtr(s *string) (*time.Time, error) {
	if s == nil {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
