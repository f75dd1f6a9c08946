package ledger

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	vo "gmao/internal/domain/client/valueobjects"
	"gmao/internal/shared/errors"
)

// ChargeInput carries the raw close-time inputs from which a charge amount is
// derived. All fields are optional strings as submitted; which ones are
// consulted depends on the contract kind.
type ChargeInput struct {
	// DurationHours is an explicit duration in hours. When supplied it takes
	// precedence over the start/end pair.
	DurationHours string
	// StartTime and EndTime are wall-clock times in HH:MM form; the duration
	// is end minus start, floored at zero.
	StartTime string
	EndTime   string
	// Points is the point count consumed, for credit_point contracts.
	Points string
	// Note is free text recorded on the ledger entry.
	Note string
}

const clockLayout = "15:04"

// ComputeCharge converts close-time input into a positive charge amount for
// the given metered contract kind, or fails with a validation error naming
// the offending input. It has no side effects: the caller commits the balance
// decrement and the ledger entry together with the status change.
func ComputeCharge(kind vo.ContractType, input ChargeInput) (decimal.Decimal, error) {
	switch kind {
	case vo.ContractCreditTime:
		return computeHours(input)
	case vo.ContractCreditPoint:
		return computePoints(input)
	default:
		return decimal.Zero, errors.NewValidationError("contract kind is not metered", kind.String())
	}
}

func computeHours(input ChargeInput) (decimal.Decimal, error) {
	if explicit := strings.TrimSpace(input.DurationHours); explicit != "" {
		hours, err := decimal.NewFromString(explicit)
		if err != nil {
			return decimal.Zero, errors.NewInvalidConsumptionError("duration must be a number of hours", "duration_hours")
		}
		if hours.LessThanOrEqual(decimal.Zero) {
			return decimal.Zero, errors.NewInvalidConsumptionError("duration must be greater than zero", "duration_hours")
		}
		return hours, nil
	}

	start := strings.TrimSpace(input.StartTime)
	end := strings.TrimSpace(input.EndTime)
	if start == "" || end == "" {
		return decimal.Zero, errors.NewInvalidConsumptionError("either a duration or a start/end time pair is required", "duration_hours")
	}

	startClock, err := time.Parse(clockLayout, start)
	if err != nil {
		return decimal.Zero, errors.NewInvalidConsumptionError("start time must be in HH:MM form", "start_time")
	}
	endClock, err := time.Parse(clockLayout, end)
	if err != nil {
		return decimal.Zero, errors.NewInvalidConsumptionError("end time must be in HH:MM form", "end_time")
	}

	minutes := int64(endClock.Sub(startClock).Minutes())
	if minutes < 0 {
		// an end before the start floors at zero, which is then rejected
		minutes = 0
	}
	if minutes == 0 {
		return decimal.Zero, errors.NewInvalidConsumptionError("time pair must span a positive duration", "end_time")
	}

	return decimal.NewFromInt(minutes).Div(decimal.NewFromInt(60)), nil
}

func computePoints(input ChargeInput) (decimal.Decimal, error) {
	raw := strings.TrimSpace(input.Points)
	if raw == "" {
		return decimal.Zero, errors.NewInvalidConsumptionError("point count is required", "points_used")
	}

	points, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, errors.NewInvalidConsumptionError("point count must be a number", "points_used")
	}
	if points.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, errors.NewInvalidConsumptionError("point count must be greater than zero", "points_used")
	}
	return points, nil
}
