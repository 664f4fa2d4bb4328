//go:build unit

package checkout_test

import (
	"errors"
	"testing"

	"storefront-checkout/internal/domain/card"
	"storefront-checkout/internal/domain/checkout"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var validCard = card.NewCard("4111 1111 1111 1111", "JOHN DOE", "12/30", "123")

func flowAtPayment(t *testing.T) *checkout.Flow {
	t.Helper()
	f := checkout.NewFlow()
	require.NoError(t, f.SelectAddress("addr-1"))
	_, err := f.Next(true, nil)
	require.NoError(t, err)
	require.NoError(t, f.SelectShipping("standard"))
	_, err = f.Next(true, nil)
	require.NoError(t, err)
	require.Equal(t, checkout.StepPayment, f.Step())
	return f
}

func TestFlow_Next(t *testing.T) {
	t.Run("step 1 without address is a no-op", func(t *testing.T) {
		f := checkout.NewFlow()

		_, err := f.Next(true, nil)
		assert.ErrorIs(t, err, checkout.ErrStepInvalid)
		assert.Equal(t, checkout.StepAddress, f.Step())
	})

	t.Run("step 2 without shipping is a no-op", func(t *testing.T) {
		f := checkout.NewFlow()
		require.NoError(t, f.SelectAddress("addr-1"))
		outcome, err := f.Next(true, nil)
		require.NoError(t, err)
		assert.Equal(t, checkout.OutcomeAdvanced, outcome)

		_, err = f.Next(true, nil)
		assert.ErrorIs(t, err, checkout.ErrStepInvalid)
		assert.Equal(t, checkout.StepShipping, f.Step())
	})

	t.Run("payment with invalid card does not confirm", func(t *testing.T) {
		f := flowAtPayment(t)
		f.SetCard(card.NewCard("4111", "JOHN DOE", "12/30", "123"))

		called := false
		_, err := f.Next(true, func() error { called = true; return nil })
		assert.ErrorIs(t, err, checkout.ErrCardInvalid)
		assert.False(t, called)
		assert.Equal(t, checkout.StepPayment, f.Step())
	})

	t.Run("payment disabled after expiry", func(t *testing.T) {
		f := flowAtPayment(t)
		f.SetCard(validCard)

		called := false
		_, err := f.Next(false, func() error { called = true; return nil })
		assert.ErrorIs(t, err, checkout.ErrPaymentUnavailable)
		assert.False(t, called)
	})

	t.Run("payment confirms instead of advancing", func(t *testing.T) {
		f := flowAtPayment(t)
		f.SetCard(validCard)

		calls := 0
		outcome, err := f.Next(true, func() error { calls++; return nil })
		require.NoError(t, err)
		assert.Equal(t, checkout.OutcomeConfirmed, outcome)
		assert.Equal(t, 1, calls)
		assert.Equal(t, checkout.StepPayment, f.Step())
	})

	t.Run("confirm failure is surfaced and state kept", func(t *testing.T) {
		f := flowAtPayment(t)
		f.SetCard(validCard)
		boom := errors.New("cart service unavailable")

		_, err := f.Next(true, func() error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.Equal(t, checkout.StepPayment, f.Step())
		assert.Equal(t, "addr-1", f.AddressID())
		assert.Equal(t, "standard", f.ShippingID())
	})
}

func TestFlow_Back(t *testing.T) {
	t.Run("floors at step 1", func(t *testing.T) {
		f := checkout.NewFlow()
		f.Back()
		assert.Equal(t, checkout.StepAddress, f.Step())
	})

	t.Run("no validity needed to go back", func(t *testing.T) {
		f := flowAtPayment(t)
		f.Back()
		assert.Equal(t, checkout.StepShipping, f.Step())
		f.Back()
		f.Back()
		assert.Equal(t, checkout.StepAddress, f.Step())
	})
}

func TestFlow_Selections(t *testing.T) {
	f := checkout.NewFlow()

	assert.ErrorIs(t, f.SelectAddress("  "), checkout.ErrAddressRequired)
	assert.ErrorIs(t, f.SelectShipping("teleport"), checkout.ErrUnknownShipping)
	assert.Empty(t, f.ShippingID())

	require.NoError(t, f.SelectShipping("express"))
	assert.Equal(t, "express", f.ShippingID())

	m, ok := checkout.FindShippingMethod("express")
	require.True(t, ok)
	assert.Equal(t, int64(1500), m.PriceCents)
}

func TestFlow_Reset(t *testing.T) {
	f := flowAtPayment(t)
	f.SetCard(validCard)

	f.Reset()

	assert.Equal(t, checkout.StepAddress, f.Step())
	assert.Empty(t, f.AddressID())
	assert.Empty(t, f.ShippingID())
	assert.True(t, f.Card().IsEmpty())
}
