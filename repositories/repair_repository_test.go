package repositories

import (
	"errors"
	"testing"
	"warranty-app/models"

	"gorm.io/gorm"
)

func activatedProduct(t *testing.T, db *gorm.DB, qrcodeID string) *models.Product {
	t.Helper()
	pt := seedProductType(t, db, 365)
	agent := seedAgent(t, db)
	repo := NewProductRepository(db)

	if _, err := repo.Create(qrcodeID, pt.ID, "", "user-admin"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := repo.BulkShip([]string{qrcodeID}, agent.ID, nil, "user-admin"); err != nil {
		t.Fatalf("ship: %v", err)
	}
	product, err := repo.Activate(qrcodeID, CustomerContact{
		Name:  "Zhang San",
		Phone: "13900000000",
		Email: "zhang@example.com",
	}, "", "client-Zhang San")
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	return product
}

func TestOpenRepairMovesProductToInRepair(t *testing.T) {
	db := setupTestDB(t)
	product := activatedProduct(t, db, "RP100001")
	repo := NewRepairRepository(db)

	record, err := repo.Open(RepairRequest{
		QRCodeID: "RP100001",
		Reason:   "screen flickers",
	}, "client-Zhang San")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if record.Status != models.RepairInProgress {
		t.Fatalf("record status = %d, want %d", record.Status, models.RepairInProgress)
	}
	// Blank contact falls back to the product's stored contact.
	if record.CustomerName != "Zhang San" || record.CustomerEmail != "zhang@example.com" {
		t.Fatalf("contact snapshot = %q %q", record.CustomerName, record.CustomerEmail)
	}

	var reloaded models.Product
	if err := db.First(&reloaded, product.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Status != models.StatusInRepair {
		t.Fatalf("product status = %d, want %d", reloaded.Status, models.StatusInRepair)
	}
}

func TestOpenRepairRequiresActivatedUnit(t *testing.T) {
	db := setupTestDB(t)
	pt := seedProductType(t, db, 365)
	productRepo := NewProductRepository(db)
	repo := NewRepairRepository(db)

	if _, err := productRepo.Create("RP100002", pt.ID, "", "user-admin"); err != nil {
		t.Fatalf("create: %v", err)
	}

	// GENERATED unit: no repair, and no audit row either.
	_, err := repo.Open(RepairRequest{QRCodeID: "RP100002", Reason: "dead on arrival"}, "user-admin")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}

	var count int64
	db.Model(&models.OperationRecord{}).Where("operation_type = ?", models.OperationRepairOpen).Count(&count)
	if count != 0 {
		t.Fatalf("repair-open audit rows = %d, want 0", count)
	}

	_, err = repo.Open(RepairRequest{QRCodeID: "MISSING", Reason: "x"}, "user-admin")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestOpenRepairRejectedWhileAlreadyInRepair(t *testing.T) {
	db := setupTestDB(t)
	activatedProduct(t, db, "RP100003")
	repo := NewRepairRepository(db)

	if _, err := repo.Open(RepairRequest{QRCodeID: "RP100003", Reason: "first fault"}, "user-admin"); err != nil {
		t.Fatalf("first open: %v", err)
	}
	_, err := repo.Open(RepairRequest{QRCodeID: "RP100003", Reason: "second fault"}, "user-admin")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}

func TestCompleteRepairReturnsProductToActivated(t *testing.T) {
	db := setupTestDB(t)
	product := activatedProduct(t, db, "RP100004")
	repo := NewRepairRepository(db)

	record, err := repo.Open(RepairRequest{QRCodeID: "RP100004", Reason: "battery drain"}, "user-admin")
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	record, err = repo.Complete(record.ID, "replaced battery", "user-tech")
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if record.Status != models.RepairCompleted {
		t.Fatalf("record status = %d, want %d", record.Status, models.RepairCompleted)
	}
	if record.RepairSolution != "replaced battery" || record.RepairDate == nil {
		t.Fatalf("solution/date not stored: %+v", record)
	}

	var reloaded models.Product
	if err := db.First(&reloaded, product.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Status != models.StatusActivated {
		t.Fatalf("product status = %d, want %d", reloaded.Status, models.StatusActivated)
	}

	// Double completion must fail and must not duplicate the audit row.
	if _, err := repo.Complete(record.ID, "again", "user-tech"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("double complete err = %v, want ErrInvalidTransition", err)
	}
	var doneRows int64
	db.Model(&models.OperationRecord{}).Where("operation_type = ?", models.OperationRepairDone).Count(&doneRows)
	if doneRows != 1 {
		t.Fatalf("repair-done audit rows = %d, want 1", doneRows)
	}
}

func TestMarkUnrepairableScrapsUnit(t *testing.T) {
	db := setupTestDB(t)
	product := activatedProduct(t, db, "RP100005")
	repo := NewRepairRepository(db)

	record, err := repo.Open(RepairRequest{QRCodeID: "RP100005", Reason: "water damage"}, "user-admin")
	if err != nil {
		t.Fatalf("open: %v", err)
	}

	record, err = repo.MarkUnrepairable(record.ID, "mainboard corroded", "user-tech")
	if err != nil {
		t.Fatalf("mark unrepairable: %v", err)
	}
	if record.Status != models.RepairUnrepairable {
		t.Fatalf("record status = %d, want %d", record.Status, models.RepairUnrepairable)
	}

	var reloaded models.Product
	if err := db.First(&reloaded, product.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Status != models.StatusScrapped {
		t.Fatalf("product status = %d, want %d", reloaded.Status, models.StatusScrapped)
	}

	// Closed twice is a transition error.
	if _, err := repo.MarkUnrepairable(record.ID, "", "user-tech"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}
}
