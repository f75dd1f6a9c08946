package client

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	vo "gmao/internal/domain/client/valueobjects"
	"gmao/internal/shared/biztime"
)

// Client is a customer of the field-service organization. When its contract
// type is metered, closing one of its tickets consumes from the contract
// balance. The balance may go negative: over-consumption is recorded, not
// blocked.
type Client struct {
	id           uint
	name         string
	contractType vo.ContractType
	balance      *decimal.Decimal
	createdAt    time.Time
	updatedAt    time.Time
}

func NewClient(name string, contractType vo.ContractType) (*Client, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("client name is required")
	}
	if len(name) > 128 {
		return nil, fmt.Errorf("client name exceeds maximum length of 128 characters")
	}
	if !contractType.IsValid() {
		return nil, fmt.Errorf("invalid contract type")
	}

	now := biztime.NowUTC()
	return &Client{
		name:         name,
		contractType: contractType,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructClient(
	id uint,
	name string,
	contractType vo.ContractType,
	balance *decimal.Decimal,
	createdAt, updatedAt time.Time,
) (*Client, error) {
	if id == 0 {
		return nil, fmt.Errorf("client ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("client name is required")
	}
	if !contractType.IsValid() {
		return nil, fmt.Errorf("invalid contract type")
	}

	return &Client{
		id:           id,
		name:         name,
		contractType: contractType,
		balance:      balance,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (c *Client) ID() uint {
	return c.id
}

func (c *Client) Name() string {
	return c.name
}

func (c *Client) ContractType() vo.ContractType {
	return c.contractType
}

// Balance returns the remaining contract balance, or nil when none has been
// set. Only meaningful for metered contract types.
func (c *Client) Balance() *decimal.Decimal {
	return c.balance
}

func (c *Client) CreatedAt() time.Time {
	return c.createdAt
}

func (c *Client) UpdatedAt() time.Time {
	return c.updatedAt
}

func (c *Client) SetID(id uint) error {
	if c.id != 0 {
		return fmt.Errorf("client ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("client ID cannot be zero")
	}
	c.id = id
	return nil
}

func (c *Client) Rename(name string) error {
	if len(name) == 0 {
		return fmt.Errorf("client name is required")
	}
	if len(name) > 128 {
		return fmt.Errorf("client name exceeds maximum length of 128 characters")
	}

	c.name = name
	c.updatedAt = biztime.NowUTC()
	return nil
}

// SetContract changes the contract type and resets the balance, as done from
// the client edit form. A nil balance clears any previous balance.
func (c *Client) SetContract(contractType vo.ContractType, balance *decimal.Decimal) error {
	if !contractType.IsValid() {
		return fmt.Errorf("invalid contract type")
	}
	if !contractType.IsMetered() && balance != nil {
		return fmt.Errorf("balance is only meaningful for metered contracts")
	}

	c.contractType = contractType
	c.balance = balance
	c.updatedAt = biztime.NowUTC()
	return nil
}

// ConsumeCredit subtracts a validated charge amount from the contract
// balance. A nil balance is initialized to zero before subtraction, so the
// result goes negative rather than failing.
func (c *Client) ConsumeCredit(amount decimal.Decimal) error {
	if !c.contractType.IsMetered() {
		return fmt.Errorf("client has no metered contract")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("charge amount must be positive")
	}

	current := decimal.Zero
	if c.balance != nil {
		current = *c.balance
	}
	newBalance := current.Sub(amount)
	c.balance = &newBalance
	c.updatedAt = biztime.NowUTC()
	return nil
}
