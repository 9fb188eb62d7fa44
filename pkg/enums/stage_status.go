package enums

import "fmt"

// StageStatus is the positional state of a stage in the customer view.
type StageStatus string

const (
	StageStatusPending    StageStatus = "pending"
	StageStatusInProgress StageStatus = "in-progress"
	StageStatusCompleted  StageStatus = "completed"
)

var validStageStatuses = []StageStatus{
	StageStatusPending,
	StageStatusInProgress,
	StageStatusCompleted,
}

// String implements fmt.Stringer.
func (s StageStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known StageStatus.
func (s StageStatus) IsValid() bool {
	for _, candidate := range validStageStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseStageStatus converts raw input into a StageStatus.
func ParseStageStatus(value string) (StageStatus, error) {
	for _, candidate := range validStageStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid stage status %q", value)
}
