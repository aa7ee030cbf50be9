package serializer_test

import (
	"strings"
	"testing"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/niksmo/product-feed/pkg/feed"
	"github.com/niksmo/product-feed/pkg/serializer"
)

func ptr[T any](v T) *T { return &v }

// sampleProduct covers every formatting rule at least once.
func sampleProduct() feed.Product {
	availabilityDate := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	expirationDate := time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC)
	deliveryEstimate := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	dimensions := feed.NewDimensions(12.0, 8.0, 5.0, "in")
	saleWindow := feed.NewDateRange(
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC),
	)
	unitPricing := feed.NewUnitPricing(750.0, "ml", 100.0, "ml")

	var p feed.Product
	p.EnableSearch = true
	p.ID = ptr("  sku-123  ")
	p.Gtin = ptr("00012345678905")
	p.Mpn = ptr("WJ-123")
	p.Title = ptr("Wool Jumper")
	p.Description = ptr(`Nice, warm "jumper"`)
	p.Link = ptr("https://shop.example.com/p/sku-123")
	p.Condition = feed.ConditionNew
	p.ProductCategory = ptr("Apparel > Jumpers")
	p.Brand = ptr("Acme")
	p.Dimensions = &dimensions
	p.Length = ptr(40.0)
	p.Width = ptr(30.0)
	p.Height = ptr(2.0)
	p.DimensionUnit = ptr("cm")
	p.Weight = ptr(1.5)
	p.WeightUnit = ptr("kg")
	p.AgeGroup = feed.AgeGroupAdult
	p.ImageLink = ptr("https://img.example.com/sku-123/1.jpg")
	p.AdditionalImageLink = []string{
		"https://img.example.com/sku-123/2.jpg",
		"https://img.example.com/sku-123/3.jpg",
	}
	p.Price = money.New(7999, money.USD)
	p.SalePrice = money.New(6999, money.USD)
	p.SalePriceEffectiveDate = &saleWindow
	p.UnitPricing = &unitPricing
	p.Availability = feed.AvailabilityInStock
	p.AvailabilityDate = &availabilityDate
	p.InventoryQuantity = ptr(3)
	p.ExpirationDate = &expirationDate
	p.PickupMethod = feed.PickupMethodInStore
	p.Gender = feed.GenderUnisex
	p.Shipping = []feed.Shipping{
		feed.NewShipping("US", "CA", "Overnight", money.New(1600, money.USD)),
		feed.NewShipping("US", "NY", "Standard", money.New(500, money.USD)),
	}
	p.DeliveryEstimate = &deliveryEstimate
	p.ReturnWindow = ptr(30)
	p.PopularityScore = ptr(4.5)
	p.ProductReviewCount = ptr(12)
	p.ProductReviewRating = ptr(4.5)
	p.RelatedProductID = []string{"sku-124", "sku-125"}
	p.RelationshipType = feed.RelationshipAccessory
	p.GeoPrice = []feed.GeoPrice{
		feed.NewGeoPrice(money.New(1600, money.USD), "CA"),
	}
	p.GeoAvailability = []feed.GeoAvailability{
		feed.NewGeoAvailability(feed.AvailabilityOutOfStock, "CA"),
	}
	return p
}

// splitRow undoes the serializer's quoting: fields are comma-split
// outside quotes and \" collapses to a quote inside them.
func splitRow(line string) []string {
	var cells []string
	var cur strings.Builder
	inQuotes := false
	for i := 0; i < len(line); i++ {
		ch := line[i]
		switch {
		case inQuotes && ch == '\\' && i+1 < len(line) && line[i+1] == '"':
			cur.WriteByte('"')
			i++
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			cells = append(cells, cur.String())
			cur.Reset()
		default:
			cur.WriteByte(ch)
		}
	}
	return append(cells, cur.String())
}

// rowCells maps header names onto the cells of one data row.
func rowCells(t *testing.T, out string) map[string]string {
	t.Helper()

	lines := strings.SplitN(out, "\n", 2)
	require.Len(t, lines, 2)

	header := splitRow(lines[0])
	cells := splitRow(lines[1])
	require.Len(t, cells, len(header))

	m := make(map[string]string, len(header))
	for i, name := range header {
		m[name] = cells[i]
	}
	return m
}

func TestCSVHeader(t *testing.T) {
	out, err := serializer.NewCSV().SerializeMany(nil)
	require.NoError(t, err)

	header := splitRow(out)
	assert.Len(t, header, 69)
	assert.Equal(t, "enable_search", header[0])
	assert.Equal(t, "geo_availability", header[68])
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestCSVEmptyRecord(t *testing.T) {
	out, err := serializer.NewCSV().Serialize(feed.Product{})
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)

	cells := splitRow(lines[1])
	require.Len(t, cells, 69)
	assert.Equal(t, "false", cells[0])
	assert.Equal(t, "false", cells[1])
	for _, cell := range cells[2:] {
		assert.Empty(t, cell)
	}
}

func TestCSVPopulatedRecord(t *testing.T) {
	out, err := serializer.NewCSV().Serialize(sampleProduct())
	require.NoError(t, err)

	cells := rowCells(t, out)

	assert.Equal(t, "true", cells["enable_search"])
	assert.Equal(t, "false", cells["enable_checkout"])
	assert.Equal(t, "sku-123", cells["id"], "leading/trailing whitespace trimmed")
	assert.Equal(t, `Nice, warm "jumper"`, cells["description"])
	assert.Equal(t, "new", cells["condition"])
	assert.Equal(t, "12x8x5 in", cells["dimensions"], "composite wins over discrete fields")
	assert.Equal(t, "40 cm", cells["length"])
	assert.Equal(t, "30 cm", cells["width"])
	assert.Equal(t, "2 cm", cells["height"])
	assert.Equal(t, "1.5 kg", cells["weight"])
	assert.Equal(t, "adult", cells["age_group"])
	assert.Equal(t,
		"https://img.example.com/sku-123/2.jpg,https://img.example.com/sku-123/3.jpg",
		cells["additional_image_link"],
	)
	assert.Equal(t, "79.99 USD", cells["price"])
	assert.Equal(t, "69.99 USD", cells["sale_price"])
	assert.Equal(t, "2026-01-01 / 2026-01-31", cells["sale_price_effective_date"])
	assert.Equal(t, "750 ml / 100 ml", cells["unit_pricing_measure"])
	assert.Equal(t, "in_stock", cells["availability"])
	assert.Equal(t, "2026-03-01", cells["availability_date"])
	assert.Equal(t, "3", cells["inventory_quantity"])
	assert.Equal(t, "2026-12-31", cells["expiration_date"])
	assert.Equal(t, "in_store", cells["pickup_method"])
	assert.Equal(t, "unisex", cells["gender"])
	assert.Equal(t,
		"US:CA:Overnight:16.00 USD,US:NY:Standard:5.00 USD",
		cells["shipping"],
	)
	assert.Equal(t, "2026-03-05", cells["delivery_estimate"])
	assert.Equal(t, "30", cells["return_window"])
	assert.Equal(t, "4.5", cells["popularity_score"])
	assert.Equal(t, "12", cells["product_review_count"])
	assert.Equal(t, "sku-124,sku-125", cells["related_product_id"])
	assert.Equal(t, "accessory", cells["relationship_type"])
	assert.Equal(t, "16.00 USD (CA)", cells["geo_price"])
	assert.Equal(t, "out_of_stock (CA)", cells["geo_availability"])
}

func TestCSVEscaping(t *testing.T) {
	t.Run("QuotesBackslashEscaped", func(t *testing.T) {
		var p feed.Product
		p.Title = ptr(`He said "hi", twice`)

		out, err := serializer.NewCSV().Serialize(p)
		require.NoError(t, err)

		assert.Contains(t, out, `"He said \"hi\", twice"`)
	})

	t.Run("EmbeddedNewlineQuoted", func(t *testing.T) {
		var p feed.Product
		p.Description = ptr("line1\nline2")

		out, err := serializer.NewCSV().Serialize(p)
		require.NoError(t, err)

		assert.Contains(t, out, "\"line1\nline2\"")
	})

	t.Run("PlainFieldUnquoted", func(t *testing.T) {
		var p feed.Product
		p.Title = ptr("plain title")

		out, err := serializer.NewCSV().Serialize(p)
		require.NoError(t, err)

		assert.NotContains(t, out, `"plain title"`)
	})
}

func TestCSVDimensionsPrecedence(t *testing.T) {
	t.Run("DiscreteFallback", func(t *testing.T) {
		var p feed.Product
		p.Length = ptr(12.0)
		p.Width = ptr(8.0)
		p.Height = ptr(5.0)
		p.DimensionUnit = ptr("in")

		out, err := serializer.NewCSV().Serialize(p)
		require.NoError(t, err)

		cells := rowCells(t, out)
		assert.Equal(t, "12x8x5 in", cells["dimensions"])
	})

	t.Run("FallbackNeedsAllThreePlusUnit", func(t *testing.T) {
		var p feed.Product
		p.Length = ptr(12.0)
		p.Width = ptr(8.0)
		p.DimensionUnit = ptr("in")

		out, err := serializer.NewCSV().Serialize(p)
		require.NoError(t, err)

		cells := rowCells(t, out)
		assert.Empty(t, cells["dimensions"])
		assert.Equal(t, "12 in", cells["length"], "discrete columns render independently")
	})

	t.Run("DiscreteWithoutUnitEmpty", func(t *testing.T) {
		var p feed.Product
		p.Length = ptr(12.0)

		out, err := serializer.NewCSV().Serialize(p)
		require.NoError(t, err)

		cells := rowCells(t, out)
		assert.Empty(t, cells["dimensions"])
		assert.Empty(t, cells["length"])
	})
}

func TestCSVSerializeMany(t *testing.T) {
	ps := []feed.Product{sampleProduct(), {}, sampleProduct()}

	out, err := serializer.NewCSV().SerializeMany(ps)
	require.NoError(t, err)

	lines := strings.Split(out, "\n")
	assert.Len(t, lines, 4, "header plus one row per record")
	assert.False(t, strings.HasSuffix(out, "\n"))

	for _, line := range lines[1:] {
		assert.Len(t, splitRow(line), 69)
	}
}

func TestCSVDoesNotMutateInput(t *testing.T) {
	p := sampleProduct()

	_, err := serializer.NewCSV().Serialize(p)
	require.NoError(t, err)

	assert.Equal(t, "  sku-123  ", *p.ID)
}
