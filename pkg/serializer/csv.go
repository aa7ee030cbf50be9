package serializer

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/niksmo/product-feed/pkg/feed"
)

// csvHeader fixes the feed's column order. The serializer emits
// exactly these 69 columns for every record.
var csvHeader = []string{
	"enable_search",
	"enable_checkout",
	"id",
	"gtin",
	"mpn",
	"title",
	"description",
	"link",
	"condition",
	"product_category",
	"brand",
	"material",
	"dimensions",
	"length",
	"width",
	"height",
	"weight",
	"age_group",
	"image_link",
	"additional_image_link",
	"video_link",
	"model_3d_link",
	"price",
	"sale_price",
	"sale_price_effective_date",
	"unit_pricing_measure",
	"pricing_trend",
	"availability",
	"availability_date",
	"inventory_quantity",
	"expiration_date",
	"pickup_method",
	"pickup_sla",
	"item_group_id",
	"item_group_title",
	"color",
	"size",
	"size_system",
	"gender",
	"offer_id",
	"custom_variant1_category",
	"custom_variant1_option",
	"custom_variant2_category",
	"custom_variant2_option",
	"custom_variant3_category",
	"custom_variant3_option",
	"shipping",
	"delivery_estimate",
	"seller_name",
	"seller_url",
	"seller_privacy_policy",
	"seller_tos",
	"return_policy",
	"return_window",
	"popularity_score",
	"return_rate",
	"warning",
	"warning_url",
	"age_restriction",
	"product_review_count",
	"product_review_rating",
	"store_review_count",
	"store_review_rating",
	"q_and_a",
	"raw_review_data",
	"related_product_id",
	"relationship_type",
	"geo_price",
	"geo_availability",
}

var _ Serializer = CSV{}

// CSV renders records as a header row plus one comma-delimited row per
// record. Fields containing the delimiter, a quote or a line break are
// double-quoted and embedded quotes are backslash-escaped. Lists are
// flattened into their element strings joined with commas.
type CSV struct{}

func NewCSV() CSV { return CSV{} }

func (c CSV) Serialize(p feed.Product) (string, error) {
	return c.SerializeMany([]feed.Product{p})
}

func (c CSV) SerializeMany(ps []feed.Product) (string, error) {
	var b strings.Builder
	writeRow(&b, csvHeader)
	for _, p := range ps {
		b.WriteByte('\n')
		writeRow(&b, rowCells(NewRecord(p)))
	}
	return b.String(), nil
}

func (c CSV) SerializeToFile(ps []feed.Product, path string, compress bool) error {
	content, err := c.SerializeMany(ps)
	if err != nil {
		return err
	}
	return writeFeedFile(path, []byte(content), compress)
}

// rowCells stringifies a Record in header order.
func rowCells(r Record) []string {
	return []string{
		boolCell(r.EnableSearch),
		boolCell(r.EnableCheckout),
		textCell(r.ID),
		textCell(r.Gtin),
		textCell(r.Mpn),
		textCell(r.Title),
		textCell(r.Description),
		textCell(r.Link),
		textCell(r.Condition),
		textCell(r.ProductCategory),
		textCell(r.Brand),
		textCell(r.Material),
		textCell(r.Dimensions),
		textCell(r.Length),
		textCell(r.Width),
		textCell(r.Height),
		textCell(r.Weight),
		textCell(r.AgeGroup),
		textCell(r.ImageLink),
		listCell(r.AdditionalImageLink),
		textCell(r.VideoLink),
		textCell(r.Model3DLink),
		textCell(r.Price),
		textCell(r.SalePrice),
		textCell(r.SalePriceEffectiveDate),
		textCell(r.UnitPricingMeasure),
		textCell(r.PricingTrend),
		textCell(r.Availability),
		textCell(r.AvailabilityDate),
		intCell(r.InventoryQuantity),
		textCell(r.ExpirationDate),
		textCell(r.PickupMethod),
		textCell(r.PickupSLA),
		textCell(r.ItemGroupID),
		textCell(r.ItemGroupTitle),
		textCell(r.Color),
		textCell(r.Size),
		textCell(r.SizeSystem),
		textCell(r.Gender),
		textCell(r.OfferID),
		textCell(r.CustomVariant1Category),
		textCell(r.CustomVariant1Option),
		textCell(r.CustomVariant2Category),
		textCell(r.CustomVariant2Option),
		textCell(r.CustomVariant3Category),
		textCell(r.CustomVariant3Option),
		listCell(r.Shipping),
		textCell(r.DeliveryEstimate),
		textCell(r.SellerName),
		textCell(r.SellerURL),
		textCell(r.SellerPrivacyPolicy),
		textCell(r.SellerTOS),
		textCell(r.ReturnPolicy),
		intCell(r.ReturnWindow),
		floatCell(r.PopularityScore),
		floatCell(r.ReturnRate),
		textCell(r.Warning),
		textCell(r.WarningURL),
		intCell(r.AgeRestriction),
		intCell(r.ProductReviewCount),
		floatCell(r.ProductReviewRating),
		intCell(r.StoreReviewCount),
		floatCell(r.StoreReviewRating),
		textCell(r.QAndA),
		textCell(r.RawReviewData),
		listCell(r.RelatedProductID),
		textCell(r.RelationshipType),
		listCell(r.GeoPrice),
		listCell(r.GeoAvailability),
	}
}

func boolCell(v bool) string {
	if v {
		return "true"
	}
	return "false"
}

func textCell(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func intCell(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func floatCell(v *float64) string {
	if v == nil {
		return ""
	}
	return decimal.NewFromFloat(*v).String()
}

func listCell(vs []string) string {
	return strings.Join(vs, ",")
}

func writeRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		writeField(b, cell)
	}
}

// writeField quotes a field when it contains a comma, quote or line
// break; embedded quotes become \" inside the quoted field.
func writeField(b *strings.Builder, s string) {
	if !strings.ContainsAny(s, ",\"\n\r") {
		b.WriteString(s)
		return
	}
	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			b.WriteByte('\\')
		}
		b.WriteByte(s[i])
	}
	b.WriteByte('"')
}
