package mappers

import "time"

// Persistence models store timestamps as millisecond epochs; domain entities
// carry time.Time in UTC.

func milliToTime(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func milliToTimePtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := milliToTime(*ms)
	return &t
}

func timeToMilli(t time.Time) int64 {
	return t.UnixMilli()
}

func timeToMilliPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
