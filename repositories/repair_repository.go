package repositories

import (
	"errors"
	"fmt"
	"time"
	"warranty-app/controllers/helpers"
	"warranty-app/models"
	"warranty-app/types"

	"gorm.io/gorm"
)

type RepairRepository struct {
	db *gorm.DB
}

func NewRepairRepository(db *gorm.DB) *RepairRepository {
	return &RepairRepository{db: db}
}

// RepairRequest is the open-repair payload. Blank contact fields fall back
// to the product's stored contact, snapshotted onto the record.
type RepairRequest struct {
	QRCodeID     string
	Reason       string
	TechnicianID *uint
	Contact      CustomerContact
}

// Open starts a repair for an ACTIVATED unit: creates the record in
// IN_PROGRESS, flips the product to IN_REPAIR and appends the REPAIR_OPEN
// audit row, all in one transaction. A unit already in repair is rejected;
// one open repair per unit at a time.
func (r *RepairRepository) Open(req RepairRequest, operator string) (*models.RepairRecord, error) {
	var product models.Product
	if err := r.db.Where("qrcode_id = ?", req.QRCodeID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("qrcode_id %s: %w", req.QRCodeID, ErrNotFound)
		}
		return nil, err
	}
	if product.Status != models.StatusActivated {
		return nil, fmt.Errorf("cannot open repair for product in status %s: %w",
			models.StatusLabel(product.Status), ErrInvalidTransition)
	}

	record := models.RepairRecord{
		ProductID:       product.ID,
		TechnicianID:    req.TechnicianID,
		RepairReason:    req.Reason,
		Status:          models.RepairInProgress,
		CustomerName:    fallback(req.Contact.Name, product.Name),
		CustomerPhone:   fallback(req.Contact.Phone, product.Phone),
		CustomerEmail:   fallback(req.Contact.Email, product.Email),
		CustomerCity:    fallback(req.Contact.City, product.City),
		CustomerCountry: fallback(req.Contact.Country, product.Country),
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Product{}).
			Where("id = ? AND status = ?", product.ID, models.StatusActivated).
			Update("status", models.StatusInRepair)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("product %s left activated status concurrently: %w", req.QRCodeID, ErrInvalidTransition)
		}

		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		return helpers.InsertOperationRecord(tx, product.ID, operator, models.OperationRepairOpen,
			"Repair opened for customer "+record.CustomerName+", reason: "+req.Reason)
	})
	if err != nil {
		return nil, err
	}

	return &record, nil
}

// Complete closes an IN_PROGRESS repair: stores the solution and repair
// date, returns the product to ACTIVATED (always, regardless of its
// pre-repair status) and appends the REPAIR_DONE audit row.
func (r *RepairRepository) Complete(recordID types.SnowflakeID, solution string, operator string) (*models.RepairRecord, error) {
	var record models.RepairRecord
	if err := r.db.First(&record, int64(recordID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("repair record %d: %w", int64(recordID), ErrNotFound)
		}
		return nil, err
	}
	if record.Status != models.RepairInProgress {
		return nil, fmt.Errorf("repair record is not in progress: %w", ErrInvalidTransition)
	}

	now := time.Now()
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.RepairRecord{}).
			Where("id = ? AND status = ?", int64(recordID), models.RepairInProgress).
			Updates(map[string]interface{}{
				"status":          models.RepairCompleted,
				"repair_solution": solution,
				"repair_date":     now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("repair record already closed: %w", ErrInvalidTransition)
		}

		if err := tx.Model(&models.Product{}).
			Where("id = ? AND status = ?", record.ProductID, models.StatusInRepair).
			Update("status", models.StatusActivated).Error; err != nil {
			return err
		}

		return helpers.InsertOperationRecord(tx, record.ProductID, operator, models.OperationRepairDone,
			"Repair completed, solution: "+solution)
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(recordID)
}

// MarkUnrepairable closes a PENDING or IN_PROGRESS repair as UNREPAIRABLE
// and scraps the unit.
func (r *RepairRepository) MarkUnrepairable(recordID types.SnowflakeID, note string, operator string) (*models.RepairRecord, error) {
	var record models.RepairRecord
	if err := r.db.First(&record, int64(recordID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("repair record %d: %w", int64(recordID), ErrNotFound)
		}
		return nil, err
	}
	if record.Status != models.RepairPending && record.Status != models.RepairInProgress {
		return nil, fmt.Errorf("repair record already closed: %w", ErrInvalidTransition)
	}

	now := time.Now()
	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.RepairRecord{}).
			Where("id = ? AND status IN ?", int64(recordID), []int{models.RepairPending, models.RepairInProgress}).
			Updates(map[string]interface{}{
				"status":          models.RepairUnrepairable,
				"repair_solution": note,
				"repair_date":     now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("repair record already closed: %w", ErrInvalidTransition)
		}

		if err := tx.Model(&models.Product{}).
			Where("id = ?", record.ProductID).
			Update("status", models.StatusScrapped).Error; err != nil {
			return err
		}

		description := "Product scrapped after unrepairable fault"
		if note != "" {
			description += ": " + note
		}
		return helpers.InsertOperationRecord(tx, record.ProductID, operator, models.OperationScrap, description)
	})
	if err != nil {
		return nil, err
	}

	return r.GetByID(recordID)
}

func (r *RepairRepository) GetByID(recordID types.SnowflakeID) (*models.RepairRecord, error) {
	var record models.RepairRecord
	if err := r.db.Preload("Product").Preload("Technician").First(&record, int64(recordID)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("repair record %d: %w", int64(recordID), ErrNotFound)
		}
		return nil, err
	}
	return &record, nil
}

// RepairFilter narrows the repair listing.
type RepairFilter struct {
	ProductID    uint
	TechnicianID uint
	Status       int
}

func (r *RepairRepository) List(filter RepairFilter, limit, offset int) ([]models.RepairRecord, int64, error) {
	query := r.db.Model(&models.RepairRecord{}).Preload("Product").Preload("Technician")
	if filter.ProductID != 0 {
		query = query.Where("product_id = ?", filter.ProductID)
	}
	if filter.TechnicianID != 0 {
		query = query.Where("technician_id = ?", filter.TechnicianID)
	}
	if filter.Status != 0 {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.RepairRecord
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&records).Error; err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func fallback(value, stored string) string {
	if value != "" {
		return value
	}
	return stored
}
