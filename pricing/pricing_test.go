package pricing

import (
	"testing"

	"github.com/Arjun-733/OfferSphere/models"
	"github.com/stretchr/testify/assert"
)

func percentOffer(value float64) *models.Offer {
	return &models.Offer{ID: "p", Scope: models.ScopeGlobal, DiscountType: models.DiscountPercentage, DiscountValue: value, Active: true}
}

func fixedOffer(value float64) *models.Offer {
	return &models.Offer{ID: "f", Scope: models.ScopeGlobal, DiscountType: models.DiscountFixed, DiscountValue: value, Active: true}
}

func TestDiscountedPricePercentage(t *testing.T) {
	price, ok := DiscountedPrice(200, percentOffer(25))
	assert.True(t, ok)
	assert.Equal(t, 150.0, price)

	price, ok = DiscountedPrice(400, percentOffer(100))
	assert.True(t, ok)
	assert.Equal(t, 0.0, price)

	price, ok = DiscountedPrice(80, percentOffer(0))
	assert.True(t, ok)
	assert.Equal(t, 80.0, price)
}

func TestDiscountedPriceFixedFloorsAtZero(t *testing.T) {
	price, ok := DiscountedPrice(50, fixedOffer(80))
	assert.True(t, ok)
	assert.Equal(t, 0.0, price)

	price, ok = DiscountedPrice(100, fixedOffer(30))
	assert.True(t, ok)
	assert.Equal(t, 70.0, price)
}

func TestDiscountedPriceInvalidInputs(t *testing.T) {
	_, ok := DiscountedPrice(100, nil)
	assert.False(t, ok)

	_, ok = DiscountedPrice(-5, percentOffer(10))
	assert.False(t, ok)

	_, ok = DiscountedPrice(0, percentOffer(10))
	assert.False(t, ok)
}

func TestDiscountedPriceUnknownTypeFailsClosed(t *testing.T) {
	offer := &models.Offer{ID: "u", DiscountType: models.DiscountType("bogo"), DiscountValue: 10, Active: true}
	_, ok := DiscountedPrice(100, offer)
	assert.False(t, ok)
}

func TestDiscountAmount(t *testing.T) {
	assert.Equal(t, 50.0, DiscountAmount(200, percentOffer(25)))
	assert.Equal(t, 50.0, DiscountAmount(50, fixedOffer(80)))
	assert.Equal(t, 0.0, DiscountAmount(100, nil))
}

func TestDiscountLabel(t *testing.T) {
	assert.Equal(t, "25%", DiscountLabel(percentOffer(25), "INR"))
	assert.Equal(t, "12.5%", DiscountLabel(percentOffer(12.5), "INR"))
	assert.Equal(t, "30 INR", DiscountLabel(fixedOffer(30), "INR"))
	assert.Equal(t, "30 USD", DiscountLabel(fixedOffer(30), "USD"))
	assert.Equal(t, "", DiscountLabel(nil, "INR"))

	unknown := &models.Offer{ID: "u", DiscountType: models.DiscountType("bogo"), DiscountValue: 10}
	assert.Equal(t, "", DiscountLabel(unknown, "INR"))
}
