package mappers

import (
	"klevant/internal/domain/inventory"
	"klevant/internal/infrastructure/persistence/models"
)

type OutwardAssignmentMapper struct{}

func NewOutwardAssignmentMapper() *OutwardAssignmentMapper {
	return &OutwardAssignmentMapper{}
}

func (m *OutwardAssignmentMapper) ToModel(a *inventory.OutwardAssignment) *models.OutwardAssignmentModel {
	return &models.OutwardAssignmentModel{
		ID:               a.ID(),
		TechnicianID:     a.TechnicianID(),
		ProductID:        a.ProductID(),
		QuantityAssigned: a.QuantityAssigned(),
		QuantityReturned: a.QuantityReturned(),
		Status:           a.Status().String(),
		AssignedAt:       a.AssignedAt(),
		ReturnedAt:       a.ReturnedAt(),
	}
}

func (m *OutwardAssignmentMapper) ToDomain(model *models.OutwardAssignmentModel) (*inventory.OutwardAssignment, error) {
	return inventory.ReconstructOutwardAssignment(
		model.ID,
		model.TechnicianID,
		model.ProductID,
		model.QuantityAssigned,
		model.QuantityReturned,
		inventory.AssignmentStatus(model.Status),
		model.AssignedAt,
		model.ReturnedAt,
	)
}
