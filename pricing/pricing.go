// Package pricing holds the pure discount arithmetic applied to a single
// price in a single currency. Nothing here touches the catalog or the network.
package pricing

import (
	"fmt"
	"strconv"

	"github.com/Arjun-733/OfferSphere/models"
)

// DiscountedPrice computes the price after applying the offer. It returns
// (0, false) when there is no offer to apply, the original price is not a
// positive number, or the discount type is unrecognized - the caller then
// shows the original price unmodified.
func DiscountedPrice(original float64, offer *models.Offer) (float64, bool) {
	if offer == nil || original <= 0 {
		return 0, false
	}
	switch offer.DiscountType {
	case models.DiscountPercentage:
		return original - (original * offer.DiscountValue / 100), true
	case models.DiscountFixed:
		discounted := original - offer.DiscountValue
		if discounted < 0 {
			discounted = 0
		}
		return discounted, true
	default:
		// Unknown discount type: fail closed, do not guess.
		return 0, false
	}
}

// DiscountAmount returns how much the offer takes off the original price.
func DiscountAmount(original float64, offer *models.Offer) float64 {
	discounted, ok := DiscountedPrice(original, offer)
	if !ok {
		return 0
	}
	return original - discounted
}

// DiscountLabel formats the badge text shown next to a discounted price:
// "25%" for percentage offers, "25 INR" for fixed offers using the
// caller-supplied currency code. Invalid offers format to the empty string.
func DiscountLabel(offer *models.Offer, currencyCode string) string {
	if offer == nil {
		return ""
	}
	value := strconv.FormatFloat(offer.DiscountValue, 'f', -1, 64)
	switch offer.DiscountType {
	case models.DiscountPercentage:
		return value + "%"
	case models.DiscountFixed:
		return fmt.Sprintf("%s %s", value, currencyCode)
	default:
		return ""
	}
}
