package domain

// ProductNode is one product as returned by the Shopify Admin GraphQL API,
// with its variant and image connections still nested.
type ProductNode struct {
	ID              string            `json:"id"`
	Title           string            `json:"title"`
	Handle          string            `json:"handle"`
	DescriptionHTML string            `json:"descriptionHtml"`
	Vendor          string            `json:"vendor"`
	ProductType     string            `json:"productType"`
	Images          ImageConnection   `json:"images"`
	Variants        VariantConnection `json:"variants"`
}

type ImageConnection struct {
	Edges []ImageEdge `json:"edges"`
}

type ImageEdge struct {
	Node ImageNode `json:"node"`
}

type ImageNode struct {
	URL string `json:"url"`
}

type VariantConnection struct {
	Edges []VariantEdge `json:"edges"`
}

type VariantEdge struct {
	Node VariantNode `json:"node"`
}

// VariantNode carries the fields the feed reads from a variant. Price arrives
// as a decimal string, the way the Admin API serializes Money values.
type VariantNode struct {
	Price             string     `json:"price"`
	InventoryQuantity int        `json:"inventoryQuantity"`
	SKU               string     `json:"sku"`
	Image             *ImageNode `json:"image"`
}

// PageInfo is the GraphQL connection pagination block.
type PageInfo struct {
	HasNextPage bool   `json:"hasNextPage"`
	EndCursor   string `json:"endCursor"`
}

type ProductConnection struct {
	Edges    []ProductEdge `json:"edges"`
	PageInfo PageInfo      `json:"pageInfo"`
}

type ProductEdge struct {
	Node ProductNode `json:"node"`
}

// FirstVariant returns the variant the feed is built from, or a zero value
// when the product has none.
func (p *ProductNode) FirstVariant() VariantNode {
	if len(p.Variants.Edges) == 0 {
		return VariantNode{}
	}
	return p.Variants.Edges[0].Node
}

// FirstImageURL returns the URL of the first product image, or "".
func (p *ProductNode) FirstImageURL() string {
	if len(p.Images.Edges) == 0 {
		return ""
	}
	return p.Images.Edges[0].Node.URL
}
