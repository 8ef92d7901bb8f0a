package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingLink_EncodesSpacesAsPercent20(t *testing.T) {
	b := NewLinkBuilder("https://wa.me", "60166327901")

	link := b.BookingLink("Salam BMC Canopy")

	assert.Equal(t, "https://wa.me/60166327901?text=Salam%20BMC%20Canopy", link)
}

func TestBookingLink_EncodesNewlinesAndSymbols(t *testing.T) {
	b := NewLinkBuilder("https://wa.me/", "60166327901")

	link := b.BookingLink("*RINGKASAN*\nRM 661.80")

	assert.Equal(t, "https://wa.me/60166327901?text=%2ARINGKASAN%2A%0ARM%20661.80", link)
}
