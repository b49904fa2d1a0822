package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// OfferScope says whether an offer targets a single product or the whole store.
type OfferScope string

const (
	ScopeProduct OfferScope = "product"
	ScopeGlobal  OfferScope = "global"
)

// DiscountType says how DiscountValue is interpreted.
type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

// Offer represents one promotional campaign as served by the offers API.
type Offer struct {
	ID            string       `json:"id"`
	Scope         OfferScope   `json:"scope"`
	ProductID     string       `json:"product_id,omitempty"`
	DiscountType  DiscountType `json:"discount_type"`
	DiscountValue float64      `json:"discount_value"`
	Active        bool         `json:"active"`
	StartDate     *time.Time   `json:"start_date,omitempty"`
	EndDate       *time.Time   `json:"end_date,omitempty"`

	// Display fields, passed through to the UI untouched.
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Link        string `json:"link,omitempty"`
}

// ActiveAt reports whether the offer is currently valid: the owner flag must be
// set and now must fall inside the date window. A missing bound is unbounded on
// that side. An end date before the start date is not rejected here; the two
// comparisons are independent, so such an offer is simply never valid.
func (o *Offer) ActiveAt(now time.Time) bool {
	if !o.Active {
		return false
	}
	if o.StartDate != nil && now.Before(*o.StartDate) {
		return false
	}
	if o.EndDate != nil && now.After(*o.EndDate) {
		return false
	}
	return true
}

// IsProductScoped reports whether the offer targets a single product.
func (o *Offer) IsProductScoped() bool {
	return o.Scope == ScopeProduct && o.ProductID != ""
}

// flexID accepts identifiers sent either as JSON strings or JSON numbers.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

// rawOffer is the wire shape. Upstream systems disagree on field names, so
// every field that varies is collected under all the keys we have seen.
type rawOffer struct {
	ID    flexID `json:"id"`
	Scope string `json:"scope"`
	Type  string `json:"type"` // some sources use "type" for scope

	ProductID       flexID `json:"product_id"`
	ProductIDAlt    flexID `json:"productId"`
	TargetProductID flexID `json:"target_product_id"`
	ItemID          flexID `json:"item_id"`

	DiscountType     string  `json:"discount_type"`
	DiscountTypeAlt  string  `json:"discountType"`
	DiscountValue    float64 `json:"discount_value"`
	DiscountValueAlt float64 `json:"discountValue"`
	DiscountPercent  float64 `json:"discount_percent"`

	Active   *bool `json:"active"`
	IsActive *bool `json:"is_active"`
	Enabled  *bool `json:"enabled"`

	StartDate    string `json:"start_date"`
	StartDateAlt string `json:"startDate"`
	EndDate      string `json:"end_date"`
	EndDateAlt   string `json:"endDate"`

	Title       string `json:"title"`
	Description string `json:"description"`
	Image       string `json:"image"`
	Link        string `json:"link"`
}

// dateLayouts are tried in order when parsing offer dates. Anything that fails
// all of them is treated as "no bound" rather than an error.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseOfferDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return &t
		}
	}
	return nil
}

func firstID(candidates ...flexID) string {
	for _, c := range candidates {
		if c != "" {
			return string(c)
		}
	}
	return ""
}

func firstString(candidates ...string) string {
	for _, c := range candidates {
		if c != "" {
			return c
		}
	}
	return ""
}

// ParseOffer normalizes one raw offer record into the canonical Offer shape.
// It returns an error for records the engine cannot act on (missing id,
// unrecognized scope or discount type, negative value); callers skip those
// records instead of failing the whole batch.
func ParseOffer(data json.RawMessage) (*Offer, error) {
	var raw rawOffer
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("malformed offer record: %w", err)
	}

	id := string(raw.ID)
	if id == "" {
		return nil, fmt.Errorf("offer record has no id")
	}

	offer := &Offer{
		ID:          id,
		ProductID:   firstID(raw.ProductID, raw.ProductIDAlt, raw.TargetProductID, raw.ItemID),
		Title:       raw.Title,
		Description: raw.Description,
		Image:       raw.Image,
		Link:        raw.Link,
		StartDate:   parseOfferDate(firstString(raw.StartDate, raw.StartDateAlt)),
		EndDate:     parseOfferDate(firstString(raw.EndDate, raw.EndDateAlt)),
	}

	switch strings.ToLower(firstString(raw.Scope, raw.Type)) {
	case "product", "item":
		offer.Scope = ScopeProduct
		if offer.ProductID == "" {
			return nil, fmt.Errorf("offer %s: product scope without a product id", id)
		}
	case "global", "store", "all":
		offer.Scope = ScopeGlobal
	default:
		return nil, fmt.Errorf("offer %s: unrecognized scope %q", id, raw.Scope)
	}

	value := raw.DiscountValue
	if value == 0 {
		value = raw.DiscountValueAlt
	}
	if value == 0 {
		value = raw.DiscountPercent
	}
	if value < 0 {
		return nil, fmt.Errorf("offer %s: negative discount value %v", id, value)
	}

	switch strings.ToLower(firstString(raw.DiscountType, raw.DiscountTypeAlt)) {
	case "percentage", "percent":
		offer.DiscountType = DiscountPercentage
		// The source does not enforce the 0-100 bound, so clamp here.
		if value > 100 {
			value = 100
		}
	case "fixed", "flat", "amount":
		offer.DiscountType = DiscountFixed
	default:
		return nil, fmt.Errorf("offer %s: unrecognized discount type %q", id, raw.DiscountType)
	}
	offer.DiscountValue = value

	for _, flag := range []*bool{raw.Active, raw.IsActive, raw.Enabled} {
		if flag != nil {
			offer.Active = *flag
			break
		}
	}

	return offer, nil
}
