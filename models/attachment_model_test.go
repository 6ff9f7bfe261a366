package models

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupAttachmentDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&User{}, &ProductType{}, &Product{}, &RepairRecord{}, &Attachment{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestIsAttachableKind(t *testing.T) {
	for _, kind := range []string{EntityRepairRecord, EntityProduct, EntityProductType} {
		if !IsAttachableKind(kind) {
			t.Errorf("IsAttachableKind(%q) = false, want true", kind)
		}
	}
	for _, kind := range []string{"user", "repair", "", "Repair_Record"} {
		if IsAttachableKind(kind) {
			t.Errorf("IsAttachableKind(%q) = true, want false", kind)
		}
	}
}

func TestAttachmentTargetExistsUnknownKind(t *testing.T) {
	db := setupAttachmentDB(t)

	if _, err := AttachmentTargetExists(db, "invoice", 1); err == nil {
		t.Fatal("expected error for unregistered kind")
	}
}

func TestAttachmentTargetExistsMissingRow(t *testing.T) {
	db := setupAttachmentDB(t)

	for _, kind := range []string{EntityRepairRecord, EntityProduct, EntityProductType} {
		exists, err := AttachmentTargetExists(db, kind, 999)
		if err != nil {
			t.Fatalf("%s: %v", kind, err)
		}
		if exists {
			t.Errorf("%s: missing row reported as existing", kind)
		}
	}
}

func TestAttachmentTargetExists(t *testing.T) {
	db := setupAttachmentDB(t)

	pt := ProductType{Name: "WP-A1", ModelNumber: "A1"}
	if err := db.Create(&pt).Error; err != nil {
		t.Fatalf("seed product type: %v", err)
	}
	product := Product{QRCodeID: "AT100001", ProductTypeID: &pt.ID, Status: StatusActivated}
	if err := db.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}
	record := RepairRecord{ProductID: product.ID, RepairReason: "noise", Status: RepairInProgress}
	if err := db.Create(&record).Error; err != nil {
		t.Fatalf("seed repair record: %v", err)
	}

	cases := []struct {
		kind string
		id   int64
	}{
		{EntityProductType, int64(pt.ID)},
		{EntityProduct, int64(product.ID)},
		{EntityRepairRecord, int64(record.ID)},
	}
	for _, tc := range cases {
		exists, err := AttachmentTargetExists(db, tc.kind, tc.id)
		if err != nil {
			t.Fatalf("%s: %v", tc.kind, err)
		}
		if !exists {
			t.Errorf("%s: existing row %d not found", tc.kind, tc.id)
		}
	}
}
