package feed

import (
	"strconv"
	"strings"

	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/config"
	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/domain"

	"github.com/PuerkitoBio/goquery"
)

const (
	// productIDPrefix is the global ID prefix the Admin API puts in front of
	// the numeric product ID.
	productIDPrefix = "gid://shopify/Product/"

	defaultDescriptionMaxLength = 5000
)

// Normalizer flattens raw product nodes into feed records. Every field
// derivation is total: a missing source field becomes an empty string, zero
// or a constant, never an error.
type Normalizer struct {
	storefrontBaseURL    string
	descriptionMaxLength int
	classifier           *Classifier
}

func NewNormalizer(cfg config.FeedConfig, classifier *Classifier) *Normalizer {
	maxLen := cfg.DescriptionMaxLength
	if maxLen <= 0 {
		maxLen = defaultDescriptionMaxLength
	}

	return &Normalizer{
		storefrontBaseURL:    strings.TrimSuffix(cfg.StorefrontBaseURL, "/"),
		descriptionMaxLength: maxLen,
		classifier:           classifier,
	}
}

// Normalize converts one raw product node into a flat feed record. Only the
// first variant and the first image feed the record.
func (n *Normalizer) Normalize(node domain.ProductNode) domain.FeedRecord {
	variant := node.FirstVariant()

	return domain.FeedRecord{
		ID:           strings.TrimPrefix(node.ID, productIDPrefix),
		Title:        node.Title,
		Description:  n.cleanDescription(node.DescriptionHTML),
		Link:         n.productLink(node.Handle),
		ImageLink:    node.FirstImageURL(),
		Availability: availability(variant.InventoryQuantity),
		Price:        parsePrice(variant.Price),
		Brand:        node.Vendor,
		SKU:          variant.SKU,
		Condition:    domain.ConditionNew,
		ProductType:  node.ProductType,
		CustomLabel:  n.classifier.Classify(node.ProductType),
	}
}

// cleanDescription strips markup and entities, caps the text at the
// configured rune count and trims edge newlines, in that order.
func (n *Normalizer) cleanDescription(html string) string {
	text := stripHTML(html)

	runes := []rune(text)
	if len(runes) > n.descriptionMaxLength {
		runes = runes[:n.descriptionMaxLength]
	}

	return strings.Trim(string(runes), "\n")
}

func (n *Normalizer) productLink(handle string) string {
	if handle == "" {
		return ""
	}
	return n.storefrontBaseURL + "/products/" + handle
}

// stripHTML drops tags and decodes entities. The HTML parser is lenient, so
// malformed markup degrades to whatever text it can salvage.
func stripHTML(html string) string {
	if html == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return html
	}

	return doc.Text()
}

func availability(inventoryQuantity int) domain.Availability {
	if inventoryQuantity > 0 {
		return domain.AvailabilityInStock
	}
	return domain.AvailabilityOutOfStock
}

func parsePrice(raw string) float64 {
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil || price < 0 {
		return 0
	}
	return price
}
