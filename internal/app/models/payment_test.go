package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusTransitions(t *testing.T) {
	assert.True(t, StatusInitiated.CanTransition(StatusPaid))

	assert.False(t, StatusPaid.CanTransition(StatusInitiated))
	assert.False(t, StatusPaid.CanTransition(StatusPaid))
	assert.False(t, StatusInitiated.CanTransition(StatusInitiated))

	assert.False(t, StatusInitiated.Terminal())
	assert.True(t, StatusPaid.Terminal())
}

func TestGrandTotalUSD(t *testing.T) {
	clients := []ClientLineItem{
		{
			ClientID:   "client-1",
			BaseFeeUSD: 143,
			AdditionalServices: []ServiceCharge{
				{ServiceID: "svc-1", FeeAmountUSD: 25},
			},
		},
		{ClientID: "client-2", BaseFeeUSD: 100},
	}

	assert.Equal(t, "268", GrandTotalUSD(clients).String())

	// Dropping a service changes the next computation; nothing is cached.
	clients[0].AdditionalServices = nil
	assert.Equal(t, "243", GrandTotalUSD(clients).String())
}
