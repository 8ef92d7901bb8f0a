package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testColor() Color {
	return Color{Name: "Putih", Hex: "#FFFFFF"}
}

func TestCanopyRef_String(t *testing.T) {
	assert.Equal(t, "7", CanopyRef{CanopyID: 7}.String())
	assert.Equal(t, "7_Large", CanopyRef{CanopyID: 7, SizeName: "Large"}.String())
}

func TestParseCanopyRef(t *testing.T) {
	ref, err := ParseCanopyRef("7_Large")
	require.NoError(t, err)
	assert.Equal(t, CanopyRef{CanopyID: 7, SizeName: "Large"}, ref)

	ref, err = ParseCanopyRef("7")
	require.NoError(t, err)
	assert.Equal(t, CanopyRef{CanopyID: 7}, ref)

	// Имя размера с разделителем внутри не теряется
	ref, err = ParseCanopyRef("7_Extra_Large")
	require.NoError(t, err)
	assert.Equal(t, CanopyRef{CanopyID: 7, SizeName: "Extra_Large"}, ref)

	_, err = ParseCanopyRef("abc_Large")
	assert.Error(t, err)
}

func TestSetCanopyQuantity_FloorsAtZero(t *testing.T) {
	state := NewSelectionState(testColor())
	ref := CanopyRef{CanopyID: 1, SizeName: "Large"}

	state.SetCanopyQuantity(ref, 3)
	assert.Equal(t, 3, state.Canopies[ref])

	state.SetCanopyQuantity(ref, -5)
	assert.Equal(t, 0, state.Canopies[ref])
	assert.True(t, !state.HasCanopySelection())
}

func TestSetCanopyQuantity_KeepsOtherKeys(t *testing.T) {
	state := NewSelectionState(testColor())
	first := CanopyRef{CanopyID: 1, SizeName: "Large"}
	second := CanopyRef{CanopyID: 2}

	state.SetCanopyQuantity(first, 2)
	state.SetCanopyQuantity(second, 1)

	assert.Equal(t, 2, state.Canopies[first])
	assert.Equal(t, 1, state.Canopies[second])
}

func TestSelectSingleCanopy_ReplacesSelection(t *testing.T) {
	state := NewSelectionState(testColor())
	state.SetCanopyQuantity(CanopyRef{CanopyID: 1}, 4)
	state.SetCanopyQuantity(CanopyRef{CanopyID: 2}, 2)

	canopy := &Canopy{ID: 3, Name: "Arabian Canopy", Sizes: []CanopySize{{Name: "Small", Price: 150}}}
	state.SelectSingleCanopy(canopy, nil)

	require.Len(t, state.Canopies, 1)
	assert.Equal(t, 1, state.Canopies[CanopyRef{CanopyID: 3, SizeName: "Small"}])
	assert.Equal(t, 2, state.CurrentStep)
}

func TestChangeMode_ResetsSelectionAndStep(t *testing.T) {
	state := NewSelectionState(testColor())
	state.SetCanopyQuantity(CanopyRef{CanopyID: 1}, 2)
	state.SetAccessoryQuantity(5, 3)
	state.Package = &Package{ID: 9, Name: "Pakej A"}
	state.CurrentStep = 3

	state.ChangeMode(ModePackage)

	assert.Equal(t, ModePackage, state.Mode)
	assert.Equal(t, 1, state.CurrentStep)
	assert.Empty(t, state.Canopies)
	assert.Empty(t, state.Accessories)
	assert.Nil(t, state.Package)
}

func TestSelectPackage_InfersCanopyFromItems(t *testing.T) {
	canopies := []Canopy{
		{ID: 1, Name: "Arabian Canopy", Sizes: []CanopySize{{Name: "Small", Price: 150}}},
		{ID: 2, Name: "10x10 Canopy", Sizes: []CanopySize{{Name: "Medium", Price: 200}, {Name: "Large", Price: 250}}},
	}
	pkg := &Package{ID: 9, Name: "Pakej Perkahwinan", Items: []string{"50 kerusi", "10x10 Canopy (Large)", "meja"}}

	state := NewSelectionState(testColor())
	state.ChangeMode(ModePackage)
	state.SelectPackage(pkg, canopies)

	require.Len(t, state.Canopies, 1)
	assert.Equal(t, 1, state.Canopies[CanopyRef{CanopyID: 2, SizeName: "Large"}])
	assert.Equal(t, pkg, state.Package)
	assert.Equal(t, 2, state.CurrentStep)
}

func TestSelectPackage_UnknownSizeFallsBackToFirst(t *testing.T) {
	canopies := []Canopy{
		{ID: 2, Name: "10x10 Canopy", Sizes: []CanopySize{{Name: "Medium", Price: 200}, {Name: "Large", Price: 250}}},
	}
	pkg := &Package{ID: 9, Name: "Pakej", Items: []string{"10x10 Canopy (Gigantic)"}}

	state := NewSelectionState(testColor())
	state.SelectPackage(pkg, canopies)

	assert.Equal(t, 1, state.Canopies[CanopyRef{CanopyID: 2, SizeName: "Medium"}])
}

func TestSelectPackage_NoCanopyItemFallsBackToFirstCanopy(t *testing.T) {
	canopies := []Canopy{
		{ID: 1, Name: "Arabian Canopy", Sizes: []CanopySize{{Name: "Small", Price: 150}}},
	}
	pkg := &Package{ID: 9, Name: "Pakej", Items: []string{"kerusi", "meja"}}

	state := NewSelectionState(testColor())
	state.SelectPackage(pkg, canopies)

	assert.Equal(t, 1, state.Canopies[CanopyRef{CanopyID: 1, SizeName: "Small"}])
}

func TestSelectPackage_EmptyCatalogKeepsSelectionEmpty(t *testing.T) {
	pkg := &Package{ID: 9, Name: "Pakej", Items: []string{"kerusi"}}

	state := NewSelectionState(testColor())
	state.SelectPackage(pkg, nil)

	assert.Empty(t, state.Canopies)
	assert.Equal(t, pkg, state.Package)
}

func TestClone_IsIndependent(t *testing.T) {
	state := NewSelectionState(testColor())
	state.SetCanopyQuantity(CanopyRef{CanopyID: 1}, 2)
	state.SetAccessoryQuantity(5, 1)

	clone := state.Clone()
	clone.SetCanopyQuantity(CanopyRef{CanopyID: 1}, 9)
	clone.SetAccessoryQuantity(5, 9)

	assert.Equal(t, 2, state.Canopies[CanopyRef{CanopyID: 1}])
	assert.Equal(t, 1, state.Accessories[5])
}
