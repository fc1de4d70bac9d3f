package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/domain"
)

// GoogleCSVHeader is the canonical Google Merchant column order. gtin carries
// the variant SKU and google_product_category the raw product type.
var GoogleCSVHeader = []string{
	"id",
	"title",
	"description",
	"link",
	"image_link",
	"availability",
	"price",
	"brand",
	"gtin",
	"condition",
	"google_product_category",
	"custom_label_0",
}

// utf8BOM keeps Excel from misreading UTF-8 content.
const utf8BOM = "\xEF\xBB\xBF"

// WriteGoogleCSV streams records as a Google Merchant feed directly to w,
// header row first. No temp files are involved.
func WriteGoogleCSV(w io.Writer, records []domain.FeedRecord) error {
	if _, err := io.WriteString(w, utf8BOM); err != nil {
		return fmt.Errorf("failed to write BOM: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(GoogleCSVHeader); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.ID,
			r.Title,
			r.Description,
			r.Link,
			r.ImageLink,
			string(r.Availability),
			strconv.FormatFloat(r.Price, 'f', 2, 64),
			r.Brand,
			r.SKU,
			r.Condition,
			r.ProductType,
			r.CustomLabel,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
