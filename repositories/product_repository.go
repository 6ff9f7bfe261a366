package repositories

import (
	"errors"
	"fmt"
	"time"
	"warranty-app/controllers/helpers"
	"warranty-app/models"
	"warranty-app/services"

	"gorm.io/gorm"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// SkippedUnit reports one id a bulk create refused, with the reason.
type SkippedUnit struct {
	QRCodeID string `json:"qrcode_id"`
	Reason   string `json:"reason"`
}

// CustomerContact is the activation payload. Fields are written to the
// product verbatim, replacing any prior values.
type CustomerContact struct {
	Name    string
	Phone   string
	Email   string
	City    string
	Country string
}

// Create registers a single unit in GENERATED status and appends the CREATE
// audit row in the same transaction.
func (r *ProductRepository) Create(qrcodeID string, productTypeID uint, remark string, operator string) (*models.Product, error) {
	var productType models.ProductType
	if err := r.db.First(&productType, productTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("product type %d: %w", productTypeID, ErrNotFound)
		}
		return nil, err
	}

	var count int64
	if err := r.db.Model(&models.Product{}).Where("qrcode_id = ?", qrcodeID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, fmt.Errorf("qrcode_id %s: %w", qrcodeID, ErrDuplicateIdentifier)
	}

	product := models.Product{
		QRCodeID:      qrcodeID,
		ProductTypeID: &productType.ID,
		Status:        models.StatusGenerated,
		FactoryRemark: remark,
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&product).Error; err != nil {
			return err
		}
		return helpers.InsertOperationRecord(tx, product.ID, operator, models.OperationCreate,
			"Product "+product.QRCodeID+" created")
	})
	if err != nil {
		return nil, err
	}

	product.ProductType = &productType
	return &product, nil
}

// BulkCreate registers a batch of units. Duplicates (against the database or
// earlier in the same batch) are skipped and reported, never batch failures.
// The whole batch's inserts and audit rows commit in one transaction.
func (r *ProductRepository) BulkCreate(productTypeID uint, qrcodeIDs []string, remark string, operator string) ([]models.Product, []SkippedUnit, error) {
	var productType models.ProductType
	if err := r.db.First(&productType, productTypeID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("product type %d: %w", productTypeID, ErrNotFound)
		}
		return nil, nil, err
	}

	var created []models.Product
	var skipped []SkippedUnit
	seen := map[string]bool{}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		for _, qrcodeID := range qrcodeIDs {
			if seen[qrcodeID] {
				skipped = append(skipped, SkippedUnit{QRCodeID: qrcodeID, Reason: "duplicate within batch"})
				continue
			}
			seen[qrcodeID] = true

			var count int64
			if err := tx.Model(&models.Product{}).Where("qrcode_id = ?", qrcodeID).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				skipped = append(skipped, SkippedUnit{QRCodeID: qrcodeID, Reason: "qrcode_id already exists"})
				continue
			}

			product := models.Product{
				QRCodeID:      qrcodeID,
				ProductTypeID: &productType.ID,
				Status:        models.StatusGenerated,
				FactoryRemark: remark,
			}
			if err := tx.Create(&product).Error; err != nil {
				return err
			}
			if err := helpers.InsertOperationRecord(tx, product.ID, operator, models.OperationCreate,
				"Product "+product.QRCodeID+" created in bulk"); err != nil {
				return err
			}
			created = append(created, product)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	return created, skipped, nil
}

// BulkShip moves every listed unit currently in GENERATED status to SHIPPED.
// Ids in another status are excluded silently; only an empty eligible set is
// an error. One SHIP audit row per updated unit, all in one transaction.
func (r *ProductRepository) BulkShip(qrcodeIDs []string, agentID uint, shippingDate *time.Time, operator string) (int64, error) {
	var agent models.User
	if err := r.db.Where("id = ? AND user_type = ?", agentID, models.UserTypeAgent).First(&agent).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("agent %d: %w", agentID, ErrUnknownAgent)
		}
		return 0, err
	}

	date := time.Now()
	if shippingDate != nil {
		date = *shippingDate
	}

	var shipped int64
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var eligible []models.Product
		if err := tx.Where("qrcode_id IN ? AND status = ?", qrcodeIDs, models.StatusGenerated).Find(&eligible).Error; err != nil {
			return err
		}
		if len(eligible) == 0 {
			return ErrNoEligibleUnits
		}

		for _, product := range eligible {
			result := tx.Model(&models.Product{}).
				Where("id = ? AND status = ?", product.ID, models.StatusGenerated).
				Updates(map[string]interface{}{
					"agent_id":      agentID,
					"shipping_date": date,
					"status":        models.StatusShipped,
				})
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				// lost the race to another writer, treat as ineligible
				continue
			}
			if err := helpers.InsertOperationRecord(tx, product.ID, operator, models.OperationShip,
				"Product "+product.QRCodeID+" shipped to agent "+agent.Username); err != nil {
				return err
			}
			shipped++
		}

		if shipped == 0 {
			return ErrNoEligibleUnits
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	return shipped, nil
}

// Activate moves one SHIPPED unit to ACTIVATED, stores the customer contact
// verbatim and derives the warranty window. The status precondition is
// enforced by the conditional UPDATE, so two concurrent activations of the
// same unit cannot both succeed. Not idempotent.
func (r *ProductRepository) Activate(qrcodeID string, contact CustomerContact, installer string, operator string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("ProductType").Where("qrcode_id = ?", qrcodeID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("qrcode_id %s: %w", qrcodeID, ErrNotFound)
		}
		return nil, err
	}
	if product.Status != models.StatusShipped {
		return nil, fmt.Errorf("cannot activate product in status %s: %w",
			models.StatusLabel(product.Status), ErrInvalidTransition)
	}

	warrantyDays := 1095
	if product.ProductType != nil {
		warrantyDays = product.ProductType.WarrantyPeriod
	}
	now := time.Now()
	start, end := services.ComputeWindow(now, warrantyDays)

	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Product{}).
			Where("qrcode_id = ? AND status = ?", qrcodeID, models.StatusShipped).
			Updates(map[string]interface{}{
				"status":              models.StatusActivated,
				"activation_date":     now,
				"warranty_start_date": start,
				"warranty_end_date":   end,
				"name":                contact.Name,
				"phone":               contact.Phone,
				"email":               contact.Email,
				"city":                contact.City,
				"country":             contact.Country,
				"installer":           installer,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("product %s is no longer in shipped status: %w", qrcodeID, ErrInvalidTransition)
		}

		return helpers.InsertOperationRecord(tx, product.ID, operator, models.OperationActivate,
			"Product activated by customer "+contact.Name)
	})
	if err != nil {
		return nil, err
	}

	return r.GetByQRCode(qrcodeID)
}

// Scrap terminates a unit. Any non-scrapped status may be scrapped; a
// scrapped unit never leaves that status.
func (r *ProductRepository) Scrap(qrcodeID string, reason string, operator string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Where("qrcode_id = ?", qrcodeID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("qrcode_id %s: %w", qrcodeID, ErrNotFound)
		}
		return nil, err
	}
	if !models.CanTransition(product.Status, models.StatusScrapped) {
		return nil, fmt.Errorf("cannot scrap product in status %s: %w",
			models.StatusLabel(product.Status), ErrInvalidTransition)
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Product{}).
			Where("id = ? AND status = ?", product.ID, product.Status).
			Update("status", models.StatusScrapped)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("product %s changed status concurrently: %w", qrcodeID, ErrInvalidTransition)
		}

		description := "Product " + product.QRCodeID + " scrapped"
		if reason != "" {
			description += ": " + reason
		}
		return helpers.InsertOperationRecord(tx, product.ID, operator, models.OperationScrap, description)
	})
	if err != nil {
		return nil, err
	}

	return r.GetByQRCode(qrcodeID)
}

func (r *ProductRepository) GetByQRCode(qrcodeID string) (*models.Product, error) {
	var product models.Product
	if err := r.db.Preload("ProductType").Preload("Agent").Where("qrcode_id = ?", qrcodeID).First(&product).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("qrcode_id %s: %w", qrcodeID, ErrNotFound)
		}
		return nil, err
	}
	return &product, nil
}

// SearchForWarranty finds the units a warranty check refers to. At least one
// of qrcode / email / phone must be supplied.
func (r *ProductRepository) SearchForWarranty(qrcodeID, email, phone string) ([]models.Product, error) {
	if qrcodeID == "" && email == "" && phone == "" {
		return nil, ErrNoMatchingParameter
	}

	query := r.db.Preload("ProductType")
	if qrcodeID != "" {
		query = query.Where("qrcode_id = ?", qrcodeID)
	}
	if email != "" {
		query = query.Where("email = ?", email)
	}
	if phone != "" {
		query = query.Where("phone = ?", phone)
	}

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrNotFound
	}
	return products, nil
}

// ProductFilter narrows the staff product listing.
type ProductFilter struct {
	Status        int
	ProductTypeID uint
	AgentID       uint
	Search        string
}

func (r *ProductRepository) List(filter ProductFilter, limit, offset int) ([]models.Product, int64, error) {
	query := r.db.Model(&models.Product{}).Preload("ProductType").Preload("Agent")
	if filter.Status != 0 {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.ProductTypeID != 0 {
		query = query.Where("product_type_id = ?", filter.ProductTypeID)
	}
	if filter.AgentID != 0 {
		query = query.Where("agent_id = ?", filter.AgentID)
	}
	if filter.Search != "" {
		query = query.Where("qrcode_id LIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}
