package domain

import (
	"database/sql/driver"

	"go-jobboard-backend/pkg/validation"
)

// StatusName is the lifecycle state of a job or application. Active is the
// zero value, so "required" cannot be used on it.
type StatusName int

const (
	StatusActive StatusName = iota
	StatusInactive
	StatusPending
	StatusReviewed
	StatusCancelled
	StatusAccepted
	StatusRejected
	StatusInterview
)

var statusNames = newEnumSet("StatusName", map[StatusName]string{
	StatusActive:    "Active",
	StatusInactive:  "Inactive",
	StatusPending:   "Pending",
	StatusReviewed:  "Reviewed",
	StatusCancelled: "Cancelled",
	StatusAccepted:  "Accepted",
	StatusRejected:  "Rejected",
	StatusInterview: "Interview",
})

func (s StatusName) String() string                { return statusNames.name(s) }
func (s StatusName) IsValid() bool                 { return statusNames.valid(s) }
func (s StatusName) MarshalJSON() ([]byte, error)  { return statusNames.marshal(s), nil }
func (s *StatusName) UnmarshalJSON(b []byte) error { return statusNames.unmarshal(b, s) }
func (s StatusName) Value() (driver.Value, error)  { return statusNames.value(s) }
func (s *StatusName) Scan(src any) error           { return statusNames.scan(src, s) }

type Status struct {
	ID         int64      `json:"Id" gorm:"primaryKey"`
	StatusName StatusName `json:"StatusName" gorm:"not null"`
}

func (Status) TableName() string { return "statuses" }

type StatusModel struct {
	StatusName StatusName `json:"StatusName"`
}

var StatusModelRules = []validation.Rule{
	{Field: "StatusName", Tag: "valid_enum", Message: "Status Name must be one of Active, Inactive, Pending, Reviewed, Cancelled, Accepted, Rejected, Interview"},
}

func (m StatusModel) ToEntity() (*Status, error) {
	return &Status{StatusName: m.StatusName}, nil
}

type StatusRepository interface {
	Repository[Status]
}
