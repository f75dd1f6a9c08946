package client

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "gmao/internal/domain/client/valueobjects"
)

func now() time.Time {
	return time.Now().UTC()
}

func TestNewClient(t *testing.T) {
	t.Run("valid client", func(t *testing.T) {
		c, err := NewClient("Transports Morel", vo.ContractCreditTime)

		require.NoError(t, err)
		assert.Equal(t, "Transports Morel", c.Name())
		assert.Equal(t, vo.ContractCreditTime, c.ContractType())
		assert.Nil(t, c.Balance())
	})

	t.Run("empty name rejected", func(t *testing.T) {
		_, err := NewClient("", vo.ContractNone)
		assert.Error(t, err)
	})

	t.Run("invalid contract type rejected", func(t *testing.T) {
		_, err := NewClient("Client", vo.ContractType("prepaid"))
		assert.Error(t, err)
	})
}

func TestClientConsumeCredit(t *testing.T) {
	t.Run("subtracts from existing balance", func(t *testing.T) {
		balance := decimal.RequireFromString("10")
		c, err := ReconstructClient(1, "Client", vo.ContractCreditTime, &balance, now(), now())
		require.NoError(t, err)

		require.NoError(t, c.ConsumeCredit(decimal.RequireFromString("2.5")))

		require.NotNil(t, c.Balance())
		assert.True(t, c.Balance().Equal(decimal.RequireFromString("7.5")))
	})

	t.Run("nil balance initialized to zero then subtracted", func(t *testing.T) {
		c, err := ReconstructClient(1, "Client", vo.ContractCreditPoint, nil, now(), now())
		require.NoError(t, err)

		require.NoError(t, c.ConsumeCredit(decimal.NewFromInt(3)))

		require.NotNil(t, c.Balance())
		assert.True(t, c.Balance().Equal(decimal.NewFromInt(-3)))
	})

	t.Run("balance may go negative", func(t *testing.T) {
		balance := decimal.NewFromInt(1)
		c, err := ReconstructClient(1, "Client", vo.ContractCreditTime, &balance, now(), now())
		require.NoError(t, err)

		require.NoError(t, c.ConsumeCredit(decimal.NewFromInt(4)))

		assert.True(t, c.Balance().Equal(decimal.NewFromInt(-3)))
	})

	t.Run("unmetered client cannot be charged", func(t *testing.T) {
		c, err := ReconstructClient(1, "Client", vo.ContractNone, nil, now(), now())
		require.NoError(t, err)

		assert.Error(t, c.ConsumeCredit(decimal.NewFromInt(1)))
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		balance := decimal.NewFromInt(5)
		c, err := ReconstructClient(1, "Client", vo.ContractCreditTime, &balance, now(), now())
		require.NoError(t, err)

		assert.Error(t, c.ConsumeCredit(decimal.Zero))
	})
}

func TestClientSetContract(t *testing.T) {
	c, err := NewClient("Client", vo.ContractNone)
	require.NoError(t, err)

	balance := decimal.NewFromInt(20)
	require.NoError(t, c.SetContract(vo.ContractCreditPoint, &balance))
	assert.True(t, c.Balance().Equal(decimal.NewFromInt(20)))

	// switching back to unmetered clears the balance
	require.NoError(t, c.SetContract(vo.ContractNone, nil))
	assert.Nil(t, c.Balance())

	// balance on an unmetered contract is rejected
	assert.Error(t, c.SetContract(vo.ContractNone, &balance))
}
