package feed

import (
	"strings"

	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/config"
)

// UnknownLabel is returned when the product type is empty or no rule matches.
const UnknownLabel = "unknown"

// Classifier maps a free-text product type to a feed custom label through an
// ordered list of case-insensitive substring rules.
type Classifier struct {
	rules []config.LabelRule
}

func NewClassifier(rules []config.LabelRule) *Classifier {
	return &Classifier{rules: rules}
}

// Classify returns the label of the first rule whose keyword occurs anywhere
// in productType. Rule order decides ties, not keyword length.
func (c *Classifier) Classify(productType string) string {
	if productType == "" {
		return UnknownLabel
	}

	lowered := strings.ToLower(productType)
	for _, rule := range c.rules {
		if rule.Keyword == "" {
			continue
		}
		if strings.Contains(lowered, strings.ToLower(rule.Keyword)) {
			return rule.Label
		}
	}

	return UnknownLabel
}
