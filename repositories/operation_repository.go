package repositories

import (
	"warranty-app/models"

	"gorm.io/gorm"
)

// OperationRepository reads the audit trail. There is no update or delete
// entry point, here or anywhere else.
type OperationRepository struct {
	db *gorm.DB
}

func NewOperationRepository(db *gorm.DB) *OperationRepository {
	return &OperationRepository{db: db}
}

type OperationFilter struct {
	ProductID     uint
	Operator      string
	OperationType int
}

func (r *OperationRepository) List(filter OperationFilter, limit, offset int) ([]models.OperationRecord, int64, error) {
	query := r.db.Model(&models.OperationRecord{})
	if filter.ProductID != 0 {
		query = query.Where("product_id = ?", filter.ProductID)
	}
	if filter.Operator != "" {
		query = query.Where("operator = ?", filter.Operator)
	}
	if filter.OperationType != 0 {
		query = query.Where("operation_type = ?", filter.OperationType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.OperationRecord
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func (r *OperationRepository) ListByProduct(productID uint) ([]models.OperationRecord, error) {
	var records []models.OperationRecord
	// Snowflake ids are time-ordered, so id ASC is chronological even when
	// several rows share a created_at.
	if err := r.db.Where("product_id = ?", productID).Order("id ASC").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
