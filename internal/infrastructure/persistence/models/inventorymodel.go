package models

import "time"

type OutwardAssignmentModel struct {
	ID               uint   `gorm:"primaryKey"`
	TechnicianID     uint   `gorm:"index;not null"`
	ProductID        uint   `gorm:"index;not null"`
	QuantityAssigned int    `gorm:"not null"`
	QuantityReturned int    `gorm:"not null;default:0"`
	Status           string `gorm:"size:20;not null;index;default:pending"`
	AssignedAt       time.Time `gorm:"not null"`
	ReturnedAt       *time.Time
}

func (OutwardAssignmentModel) TableName() string {
	return "outward_assignments"
}
