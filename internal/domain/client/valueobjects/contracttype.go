package valueobjects

import "fmt"

// ContractType describes how a client's maintenance contract is metered.
// An unmetered client (none) is never charged on ticket closure.
type ContractType string

const (
	ContractNone        ContractType = "none"
	ContractCreditTime  ContractType = "credit_time"
	ContractCreditPoint ContractType = "credit_point"
)

var validContractTypes = map[ContractType]bool{
	ContractNone:        true,
	ContractCreditTime:  true,
	ContractCreditPoint: true,
}

func (ct ContractType) String() string {
	return string(ct)
}

func (ct ContractType) IsValid() bool {
	return validContractTypes[ct]
}

// IsMetered reports whether ticket closure consumes from the client balance.
func (ct ContractType) IsMetered() bool {
	return ct == ContractCreditTime || ct == ContractCreditPoint
}

func (ct ContractType) IsTime() bool {
	return ct == ContractCreditTime
}

func (ct ContractType) IsPoint() bool {
	return ct == ContractCreditPoint
}

func NewContractType(s string) (ContractType, error) {
	ct := ContractType(s)
	if !ct.IsValid() {
		return "", fmt.Errorf("invalid contract type: %s", s)
	}
	return ct, nil
}
