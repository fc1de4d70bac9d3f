package domain

type Availability string

const (
	AvailabilityInStock    Availability = "in_stock"
	AvailabilityOutOfStock Availability = "out_of_stock"
)

// ConditionNew is the only condition the catalog carries.
const ConditionNew = "new"

// FeedRecord is one flattened product, ready for feed serialization.
// Missing source fields degrade to empty strings and zero values, never errors.
type FeedRecord struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Link         string       `json:"link"`
	ImageLink    string       `json:"image_link"`
	Availability Availability `json:"availability"`
	Price        float64      `json:"price"`
	Brand        string       `json:"brand"`
	SKU          string       `json:"sku"`
	Condition    string       `json:"condition"`
	ProductType  string       `json:"product_type"`
	CustomLabel  string       `json:"custom_label"`
}

// FailurePolicy decides what a feed build does when the fetch fails.
type FailurePolicy string

const (
	// PolicyAbort propagates the fetch error to the caller.
	PolicyAbort FailurePolicy = "abort"
	// PolicyPartial logs the error and keeps whatever pages were fetched.
	PolicyPartial FailurePolicy = "partial"
	// PolicyEmpty logs the error and returns an empty feed.
	PolicyEmpty FailurePolicy = "empty"
)
