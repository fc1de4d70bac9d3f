package export

import (
	"net/http"

	"github.com/growmedevelopment/Shopify-Products-Fetcher/internal/domain"
)

// Envelope is the JSON response shape of the products API.
type Envelope struct {
	Status   string              `json:"status"`
	Code     int                 `json:"code"`
	Products []domain.FeedRecord `json:"products"`
	Message  string              `json:"message"`
}

// SuccessEnvelope wraps records for a successful response. Products is always
// a JSON array, never null.
func SuccessEnvelope(records []domain.FeedRecord) Envelope {
	if records == nil {
		records = []domain.FeedRecord{}
	}
	return Envelope{
		Status:   "success",
		Code:     http.StatusOK,
		Products: records,
		Message:  "products fetched successfully",
	}
}

// ErrorEnvelope wraps a feed build failure.
func ErrorEnvelope(err error) Envelope {
	return Envelope{
		Status:   "error",
		Code:     http.StatusInternalServerError,
		Products: []domain.FeedRecord{},
		Message:  err.Error(),
	}
}
