package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Arjun-733/OfferSphere/catalog"
	"github.com/Arjun-733/OfferSphere/models"
	"github.com/Arjun-733/OfferSphere/pricing"
	"github.com/Arjun-733/OfferSphere/utils"
	"github.com/gin-gonic/gin"
)

var (
	offerCatalog *catalog.Catalog
	currencyCode string
)

// Init wires the controllers to the offer catalog. Must be called before the
// router starts serving.
func Init(cat *catalog.Catalog, currency string) {
	offerCatalog = cat
	currencyCode = currency
}

// offerResponse is the wire shape for a single offer
func offerResponse(offer *models.Offer) gin.H {
	resp := gin.H{
		"id":             offer.ID,
		"scope":          offer.Scope,
		"discount_type":  offer.DiscountType,
		"discount_value": offer.DiscountValue,
		"label":          pricing.DiscountLabel(offer, currencyCode),
		"title":          offer.Title,
		"description":    offer.Description,
		"image":          offer.Image,
		"link":           offer.Link,
	}
	if offer.ProductID != "" {
		resp["product_id"] = offer.ProductID
	}
	if offer.StartDate != nil {
		resp["start_date"] = offer.StartDate.Format(time.RFC3339)
	}
	if offer.EndDate != nil {
		resp["end_date"] = offer.EndDate.Format(time.RFC3339)
	}
	return resp
}

// GetActiveOffers returns every offer valid right now
func GetActiveOffers(c *gin.Context) {
	utils.LogInfo("GetActiveOffers called")

	active := offerCatalog.ActiveOffers(time.Now())
	offers := make([]gin.H, 0, len(active))
	for _, offer := range active {
		offers = append(offers, offerResponse(offer))
	}

	utils.Success(c, "Active offers retrieved successfully", gin.H{
		"offers": offers,
		"count":  len(offers),
	})
}

// GetBestOffer returns the highest-value active offer for a product
func GetBestOffer(c *gin.Context) {
	productID := c.Param("id")
	utils.LogInfo("GetBestOffer called for product %s", productID)

	offer := offerCatalog.BestOfferFor(productID)
	if offer == nil {
		utils.NotFound(c, "No active offer for this product")
		return
	}

	utils.Success(c, "Best offer retrieved successfully", gin.H{
		"offer": offerResponse(offer),
	})
}

// GetProductPrice computes the discounted price for a product given its
// original price. When no offer applies, or the price input is invalid, the
// storefront shows the original price, so this never errors past validation.
func GetProductPrice(c *gin.Context) {
	productID := c.Param("id")
	utils.LogInfo("GetProductPrice called for product %s", productID)

	original, err := strconv.ParseFloat(c.Query("original"), 64)
	if err != nil {
		utils.LogError("Invalid original price %q: %v", c.Query("original"), err)
		utils.BadRequest(c, "Invalid original price", "original must be a number")
		return
	}
	if original <= 0 {
		utils.BadRequest(c, "Invalid original price", "original must be positive")
		return
	}

	offer := offerCatalog.BestOfferFor(productID)
	discounted, ok := pricing.DiscountedPrice(original, offer)
	if !ok {
		utils.Success(c, "Price retrieved successfully", gin.H{
			"product_id":     productID,
			"original_price": original,
			"final_price":    original,
			"discounted":     false,
		})
		return
	}

	utils.Success(c, "Price retrieved successfully", gin.H{
		"product_id":      productID,
		"original_price":  original,
		"final_price":     discounted,
		"discount_amount": original - discounted,
		"discount_label":  pricing.DiscountLabel(offer, currencyCode),
		"discounted":      true,
		"offer":           offerResponse(offer),
	})
}

// RefreshOffers triggers an immediate catalog refresh, outside the normal
// interval. Upstream failure keeps the previous snapshot in place.
func RefreshOffers(c *gin.Context) {
	utils.LogInfo("RefreshOffers called")

	if err := offerCatalog.Refresh(c.Request.Context()); err != nil {
		utils.LogError("Manual refresh failed: %v", err)
		utils.Error(c, http.StatusServiceUnavailable, "Offer refresh failed, serving previous snapshot", gin.H{
			"last_refreshed": offerCatalog.LastRefreshed().Format(time.RFC3339),
		})
		return
	}

	utils.Success(c, "Offer catalog refreshed successfully", gin.H{
		"last_refreshed": offerCatalog.LastRefreshed().Format(time.RFC3339),
		"active_count":   len(offerCatalog.ActiveOffers(time.Now())),
	})
}
