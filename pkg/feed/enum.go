package feed

// Closed attribute sets used by the feed schema. Each value is the
// wire token itself, so serializers emit enum fields verbatim.

type Condition string

const (
	ConditionNew         Condition = "new"
	ConditionRefurbished Condition = "refurbished"
	ConditionUsed        Condition = "used"
)

func (c Condition) String() string { return string(c) }

type Availability string

const (
	AvailabilityInStock    Availability = "in_stock"
	AvailabilityOutOfStock Availability = "out_of_stock"
	AvailabilityPreorder   Availability = "preorder"
)

func (a Availability) String() string { return string(a) }

type AgeGroup string

const (
	AgeGroupNewborn AgeGroup = "newborn"
	AgeGroupInfant  AgeGroup = "infant"
	AgeGroupToddler AgeGroup = "toddler"
	AgeGroupKids    AgeGroup = "kids"
	AgeGroupAdult   AgeGroup = "adult"
)

func (g AgeGroup) String() string { return string(g) }

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderUnisex Gender = "unisex"
)

func (g Gender) String() string { return string(g) }

type PickupMethod string

const (
	PickupMethodInStore      PickupMethod = "in_store"
	PickupMethodReserve      PickupMethod = "reserve"
	PickupMethodNotSupported PickupMethod = "not_supported"
)

func (m PickupMethod) String() string { return string(m) }

type RelationshipType string

const (
	RelationshipPartOfSet       RelationshipType = "part_of_set"
	RelationshipRequiredPart    RelationshipType = "required_part"
	RelationshipOftenBoughtWith RelationshipType = "often_bought_with"
	RelationshipSubstitute      RelationshipType = "substitute"
	RelationshipDifferentBrand  RelationshipType = "different_brand"
	RelationshipAccessory       RelationshipType = "accessory"
)

func (r RelationshipType) String() string { return string(r) }
