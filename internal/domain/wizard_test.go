package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestActiveSteps(t *testing.T) {
	assert.Equal(t, []string{"Canopy", "Color", "Accessories", "Details"}, ActiveSteps(ModeAlaCarte))
	assert.Equal(t, []string{"Package", "Color", "Accessories", "Details"}, ActiveSteps(ModePackage))
}

func TestNext_ClampsAtLastStep(t *testing.T) {
	state := NewSelectionState(testColor())

	for i := 0; i < 10; i++ {
		state.Next()
	}
	assert.Equal(t, TotalSteps, state.CurrentStep)
}

func TestBack_ClampsAtFirstStep(t *testing.T) {
	state := NewSelectionState(testColor())

	state.Back()
	assert.Equal(t, 1, state.CurrentStep)
}

func TestBack_PackageModeStepTwoAlwaysReturnsToOne(t *testing.T) {
	state := NewSelectionState(testColor())
	state.ChangeMode(ModePackage)
	state.CurrentStep = 2

	state.Back()
	assert.Equal(t, 1, state.CurrentStep)

	// Повторный вызов не уводит ниже первого шага
	state.Back()
	assert.Equal(t, 1, state.CurrentStep)
}

func TestBack_AlaCarteWalksBackOneStep(t *testing.T) {
	state := NewSelectionState(testColor())
	state.CurrentStep = 3

	state.Back()
	assert.Equal(t, 2, state.CurrentStep)
}
