// Package vehiclerepo provides the GORM-backed persistence for fleet
// vehicle reference data.
package vehiclerepo

import (
	"github.com/google/uuid"

	"frete/internal/core/domain/model/account"
	"frete/internal/core/domain/model/kernel"
)

// VehicleDTO represents the database structure for vehicles.
type VehicleDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	Model      string
	Plate      string  `gorm:"uniqueIndex"`
	CapacityKg float64 `gorm:"type:decimal(10,2)"`
}

// TableName specifies the database table name for vehicles.
func (VehicleDTO) TableName() string {
	return "vehicles"
}

func fromDomain(aggregate *account.Vehicle) VehicleDTO {
	return VehicleDTO{
		ID:         aggregate.ID().Bytes(),
		Model:      aggregate.Model(),
		Plate:      aggregate.Plate(),
		CapacityKg: aggregate.CapacityKg(),
	}
}

func toDomain(dto VehicleDTO) (*account.Vehicle, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return account.NewVehicle(id, dto.Model, dto.Plate, dto.CapacityKg)
}
