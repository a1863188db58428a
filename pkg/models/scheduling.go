package models

import "time"

// Closure types for HolidayClosure
const (
	ClosureFullDay = "full_day"
	ClosurePartial = "partial"
)

// HolidayClosure represents an ad-hoc closure that suppresses the normal
// weekly schedule for an inclusive date range. Rows are created and edited
// by store staff; this service only reads them. Lookups are always live so
// a closure registered mid-conversation takes effect immediately.
type HolidayClosure struct {
	BaseModel
	Name          string    `gorm:"not null" json:"name" validate:"required"`
	StartDate     time.Time `gorm:"type:date;not null;index" json:"start_date" validate:"required"`
	EndDate       time.Time `gorm:"type:date;not null;index" json:"end_date" validate:"required"`
	ClosureType   string    `gorm:"default:'full_day'" json:"closure_type"` // full_day, partial
	DurationHours *int      `json:"duration_hours,omitempty"`               // only for partial closures
	IsActive      bool      `gorm:"default:true" json:"is_active"`
}

// Covers reports whether the closure is in effect on the given civil date.
func (h HolidayClosure) Covers(date time.Time) bool {
	d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	s := time.Date(h.StartDate.Year(), h.StartDate.Month(), h.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(h.EndDate.Year(), h.EndDate.Month(), h.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return !d.Before(s) && !d.After(e)
}
