package models

import (
	"time"
	"warranty-app/controllers/idgen"
	"warranty-app/types"

	"gorm.io/gorm"
)

const (
	OperationCreate     = 1
	OperationShip       = 2
	OperationActivate   = 3
	OperationRepairOpen = 4
	OperationRepairDone = 5
	OperationScrap      = 6
)

// OperationRecord is the append-only audit trail. One row per lifecycle
// transition. Operator is a free-text label ("user-<username>",
// "client-<name>"), not a foreign key, so history outlives account deletion.
// There is no update or delete path for these rows anywhere in the codebase.
type OperationRecord struct {
	ID            types.SnowflakeID `json:"ID" gorm:"primaryKey"`
	ProductID     uint              `json:"product_id" gorm:"index"`
	Operator      string            `json:"operator" gorm:"index"`
	OperationType int               `json:"operation_type" gorm:"index"`
	Description   string            `json:"description" gorm:"type:text"`
	CreatedAt     time.Time         `json:"created_at"`
}

func (r *OperationRecord) BeforeCreate(tx *gorm.DB) (err error) {
	r.ID = types.SnowflakeID(idgen.GenerateID())
	return
}
