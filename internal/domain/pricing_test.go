package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func pricingSnapshot() *CatalogSnapshot {
	return &CatalogSnapshot{
		Canopies: []Canopy{
			{ID: 1, Name: "Arabian Canopy", Price: 200},
			{ID: 2, Name: "10x10 Canopy", Sizes: []CanopySize{
				{Name: "Medium", Price: 200},
				{Name: "Large", Price: 250},
			}},
		},
		Packages: []Package{
			{ID: 9, Name: "Pakej Perkahwinan", Price: 1500},
		},
		Accessories: []Accessory{
			{ID: 5, Name: "Kipas", Price: 30},
			{ID: 6, Name: "Lampu", Price: 10},
		},
		Colors: DefaultColors,
	}
}

func TestCalculateFinancials_AlaCarteBasePrice(t *testing.T) {
	state := NewSelectionState(testColor())
	state.SetCanopyQuantity(CanopyRef{CanopyID: 1}, 2)

	f := CalculateFinancials(state, pricingSnapshot())

	assert.InDelta(t, 400.0, f.Subtotal, 1e-9)
	assert.InDelta(t, 24.0, f.SST, 1e-9)
	assert.InDelta(t, 100.0, f.DeliveryFee, 1e-9)
	assert.InDelta(t, 524.0, f.GrandTotal, 1e-9)
	assert.InDelta(t, 262.0, f.Deposit, 1e-9)
}

func TestCalculateFinancials_AlaCarteSizedPrice(t *testing.T) {
	state := NewSelectionState(testColor())
	state.SetCanopyQuantity(CanopyRef{CanopyID: 2, SizeName: "Large"}, 1)

	f := CalculateFinancials(state, pricingSnapshot())

	assert.InDelta(t, 250.0, f.Subtotal, 1e-9)
}

func TestCalculateFinancials_UnknownSizeYieldsZeroLine(t *testing.T) {
	state := NewSelectionState(testColor())
	state.SetCanopyQuantity(CanopyRef{CanopyID: 2, SizeName: "Gigantic"}, 3)

	f := CalculateFinancials(state, pricingSnapshot())

	assert.InDelta(t, 0.0, f.Subtotal, 1e-9)
	assert.InDelta(t, 100.0, f.DeliveryFee, 1e-9)
}

func TestCalculateFinancials_MissingCanopySkipped(t *testing.T) {
	state := NewSelectionState(testColor())
	state.SetCanopyQuantity(CanopyRef{CanopyID: 99}, 2)
	state.SetCanopyQuantity(CanopyRef{CanopyID: 1}, 1)

	f := CalculateFinancials(state, pricingSnapshot())

	assert.InDelta(t, 200.0, f.Subtotal, 1e-9)
}

func TestCalculateFinancials_PackageFlatPrice(t *testing.T) {
	snapshot := pricingSnapshot()
	state := NewSelectionState(testColor())
	state.ChangeMode(ModePackage)
	state.SelectPackage(&snapshot.Packages[0], snapshot.Canopies)

	f := CalculateFinancials(state, snapshot)

	// Подобранная канопи не добавляется к цене пакета
	assert.InDelta(t, 1500.0, f.Subtotal, 1e-9)
}

func TestCalculateFinancials_AccessoriesCountInBothModes(t *testing.T) {
	snapshot := pricingSnapshot()

	state := NewSelectionState(testColor())
	state.SetCanopyQuantity(CanopyRef{CanopyID: 1}, 1)
	state.SetAccessoryQuantity(5, 2)
	state.SetAccessoryQuantity(6, 0)

	f := CalculateFinancials(state, snapshot)
	assert.InDelta(t, 260.0, f.Subtotal, 1e-9)

	state.ChangeMode(ModePackage)
	state.SelectPackage(&snapshot.Packages[0], snapshot.Canopies)
	state.SetAccessoryQuantity(5, 2)

	f = CalculateFinancials(state, snapshot)
	assert.InDelta(t, 1560.0, f.Subtotal, 1e-9)
}

func TestCalculateFinancials_IsPure(t *testing.T) {
	snapshot := pricingSnapshot()
	state := NewSelectionState(testColor())
	state.SetCanopyQuantity(CanopyRef{CanopyID: 1}, 2)

	first := CalculateFinancials(state, snapshot)
	second := CalculateFinancials(state, snapshot)

	assert.Equal(t, first, second)
	assert.Equal(t, 2, state.Canopies[CanopyRef{CanopyID: 1}])
}
