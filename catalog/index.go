package catalog

import (
	"sort"

	"github.com/Arjun-733/OfferSphere/models"
)

// BuildIndex maps each product id to the active offers targeting it, ordered
// by descending discount value. Global offers never appear here.
//
// Ordering compares raw discount values across both discount types, so a
// fixed offer of 30 ranks above a percentage offer of 25 even when the
// percentage would save more on an expensive item. That matches the pricing
// the storefront has always shown; changing it is a policy decision, not a
// bug fix.
func BuildIndex(activeOffers []*models.Offer) map[string][]*models.Offer {
	index := make(map[string][]*models.Offer)
	for _, offer := range activeOffers {
		if !offer.IsProductScoped() {
			continue
		}
		index[offer.ProductID] = append(index[offer.ProductID], offer)
	}
	for _, offers := range index {
		sort.SliceStable(offers, func(i, j int) bool {
			return offers[i].DiscountValue > offers[j].DiscountValue
		})
	}
	return index
}
