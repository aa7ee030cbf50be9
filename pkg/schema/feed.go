// Package schema carries the Avro schema of the product feed record
// and the serde built on it.
package schema

// FeedRecordSchemaTextV1 mirrors serializer.Record: the 69-name feed
// vocabulary with nullable unions for optional scalars and string
// arrays for list fields.
const FeedRecordSchemaTextV1 = `{
	"type": "record",
	"namespace": "feed",
	"name": "product",
	"fields": [
		{"name": "enable_search", "type": "boolean"},
		{"name": "enable_checkout", "type": "boolean"},
		{"name": "id", "type": ["null", "string"]},
		{"name": "gtin", "type": ["null", "string"]},
		{"name": "mpn", "type": ["null", "string"]},
		{"name": "title", "type": ["null", "string"]},
		{"name": "description", "type": ["null", "string"]},
		{"name": "link", "type": ["null", "string"]},
		{"name": "condition", "type": ["null", "string"]},
		{"name": "product_category", "type": ["null", "string"]},
		{"name": "brand", "type": ["null", "string"]},
		{"name": "material", "type": ["null", "string"]},
		{"name": "dimensions", "type": ["null", "string"]},
		{"name": "length", "type": ["null", "string"]},
		{"name": "width", "type": ["null", "string"]},
		{"name": "height", "type": ["null", "string"]},
		{"name": "weight", "type": ["null", "string"]},
		{"name": "age_group", "type": ["null", "string"]},
		{"name": "image_link", "type": ["null", "string"]},
		{"name": "additional_image_link", "type": {"type": "array", "items": "string"}},
		{"name": "video_link", "type": ["null", "string"]},
		{"name": "model_3d_link", "type": ["null", "string"]},
		{"name": "price", "type": ["null", "string"]},
		{"name": "sale_price", "type": ["null", "string"]},
		{"name": "sale_price_effective_date", "type": ["null", "string"]},
		{"name": "unit_pricing_measure", "type": ["null", "string"]},
		{"name": "pricing_trend", "type": ["null", "string"]},
		{"name": "availability", "type": ["null", "string"]},
		{"name": "availability_date", "type": ["null", "string"]},
		{"name": "inventory_quantity", "type": ["null", "long"]},
		{"name": "expiration_date", "type": ["null", "string"]},
		{"name": "pickup_method", "type": ["null", "string"]},
		{"name": "pickup_sla", "type": ["null", "string"]},
		{"name": "item_group_id", "type": ["null", "string"]},
		{"name": "item_group_title", "type": ["null", "string"]},
		{"name": "color", "type": ["null", "string"]},
		{"name": "size", "type": ["null", "string"]},
		{"name": "size_system", "type": ["null", "string"]},
		{"name": "gender", "type": ["null", "string"]},
		{"name": "offer_id", "type": ["null", "string"]},
		{"name": "custom_variant1_category", "type": ["null", "string"]},
		{"name": "custom_variant1_option", "type": ["null", "string"]},
		{"name": "custom_variant2_category", "type": ["null", "string"]},
		{"name": "custom_variant2_option", "type": ["null", "string"]},
		{"name": "custom_variant3_category", "type": ["null", "string"]},
		{"name": "custom_variant3_option", "type": ["null", "string"]},
		{"name": "shipping", "type": {"type": "array", "items": "string"}},
		{"name": "delivery_estimate", "type": ["null", "string"]},
		{"name": "seller_name", "type": ["null", "string"]},
		{"name": "seller_url", "type": ["null", "string"]},
		{"name": "seller_privacy_policy", "type": ["null", "string"]},
		{"name": "seller_tos", "type": ["null", "string"]},
		{"name": "return_policy", "type": ["null", "string"]},
		{"name": "return_window", "type": ["null", "long"]},
		{"name": "popularity_score", "type": ["null", "double"]},
		{"name": "return_rate", "type": ["null", "double"]},
		{"name": "warning", "type": ["null", "string"]},
		{"name": "warning_url", "type": ["null", "string"]},
		{"name": "age_restriction", "type": ["null", "long"]},
		{"name": "product_review_count", "type": ["null", "long"]},
		{"name": "product_review_rating", "type": ["null", "double"]},
		{"name": "store_review_count", "type": ["null", "long"]},
		{"name": "store_review_rating", "type": ["null", "double"]},
		{"name": "q_and_a", "type": ["null", "string"]},
		{"name": "raw_review_data", "type": ["null", "string"]},
		{"name": "related_product_id", "type": {"type": "array", "items": "string"}},
		{"name": "relationship_type", "type": ["null", "string"]},
		{"name": "geo_price", "type": {"type": "array", "items": "string"}},
		{"name": "geo_availability", "type": {"type": "array", "items": "string"}}
	]
}`
