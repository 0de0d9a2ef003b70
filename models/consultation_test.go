package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiabeticStatusValidate(t *testing.T) {
	assert.NoError(t, Diabetic.Validate())
	assert.NoError(t, NonDiabetic.Validate())
	assert.Error(t, DiabeticStatus("").Validate())
	assert.Error(t, DiabeticStatus("diabetic").Validate())
}

func TestPaymentStatusValidate(t *testing.T) {
	assert.NoError(t, PaymentPending.Validate())
	assert.NoError(t, PaymentCompleted.Validate())
	assert.NoError(t, PaymentFailed.Validate())
	assert.Error(t, PaymentStatus("Done").Validate())
}

func TestPaymentStatusTransitions(t *testing.T) {
	assert.True(t, PaymentPending.CanTransitionTo(PaymentCompleted))
	assert.True(t, PaymentPending.CanTransitionTo(PaymentFailed))

	// Completed and Failed are terminal.
	assert.False(t, PaymentCompleted.CanTransitionTo(PaymentFailed))
	assert.False(t, PaymentCompleted.CanTransitionTo(PaymentPending))
	assert.False(t, PaymentFailed.CanTransitionTo(PaymentCompleted))
	assert.False(t, PaymentPending.CanTransitionTo(PaymentPending))
}
