package feed

import (
	"fmt"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Dimensions is a composite length/width/height measurement. Decimal
// components render without trailing zeros, so 12.0 becomes "12".
type Dimensions struct {
	Length decimal.Decimal
	Width  decimal.Decimal
	Height decimal.Decimal
	Unit   string
}

func NewDimensions(length, width, height float64, unit string) Dimensions {
	return Dimensions{
		Length: decimal.NewFromFloat(length),
		Width:  decimal.NewFromFloat(width),
		Height: decimal.NewFromFloat(height),
		Unit:   unit,
	}
}

func (d Dimensions) String() string {
	return fmt.Sprintf("%sx%sx%s %s", d.Length, d.Width, d.Height, d.Unit)
}

// DateRange is an inclusive calendar-date span.
type DateRange struct {
	Start time.Time
	End   time.Time
}

func NewDateRange(start, end time.Time) DateRange {
	return DateRange{Start: start, End: end}
}

func (r DateRange) String() string {
	return fmt.Sprintf("%s / %s", r.Start.Format(dateLayout), r.End.Format(dateLayout))
}

// UnitPricing relates a sold measure to its pricing base,
// e.g. "750 ml / 100 ml".
type UnitPricing struct {
	Measure     decimal.Decimal
	MeasureUnit string
	Base        decimal.Decimal
	BaseUnit    string
}

func NewUnitPricing(measure float64, measureUnit string, base float64, baseUnit string) UnitPricing {
	return UnitPricing{
		Measure:     decimal.NewFromFloat(measure),
		MeasureUnit: measureUnit,
		Base:        decimal.NewFromFloat(base),
		BaseUnit:    baseUnit,
	}
}

func (u UnitPricing) String() string {
	return fmt.Sprintf("%s %s / %s %s", u.Measure, u.MeasureUnit, u.Base, u.BaseUnit)
}

// Shipping is one shipping rule scoped to a country, region and
// service class.
type Shipping struct {
	Country      string
	Region       string
	ServiceClass string
	Price        *money.Money
}

func NewShipping(country, region, serviceClass string, price *money.Money) Shipping {
	return Shipping{
		Country:      country,
		Region:       region,
		ServiceClass: serviceClass,
		Price:        price,
	}
}

func (s Shipping) String() string {
	return fmt.Sprintf("%s:%s:%s:%s", s.Country, s.Region, s.ServiceClass, FormatMoney(s.Price))
}

// GeoPrice overrides the record's price for one region.
type GeoPrice struct {
	Price  *money.Money
	Region string
}

func NewGeoPrice(price *money.Money, region string) GeoPrice {
	return GeoPrice{Price: price, Region: region}
}

func (g GeoPrice) String() string {
	return fmt.Sprintf("%s (%s)", FormatMoney(g.Price), g.Region)
}

// GeoAvailability overrides the record's availability for one region.
type GeoAvailability struct {
	Availability Availability
	Region       string
}

func NewGeoAvailability(availability Availability, region string) GeoAvailability {
	return GeoAvailability{Availability: availability, Region: region}
}

func (g GeoAvailability) String() string {
	return fmt.Sprintf("%s (%s)", g.Availability, g.Region)
}
