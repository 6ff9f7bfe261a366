package repositories

import (
	"errors"
	"testing"
	"time"
	"warranty-app/config"
	"warranty-app/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	config.AppLocation = time.UTC

	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.ProductType{},
		&models.Product{},
		&models.OperationRecord{},
		&models.RepairRecord{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedProductType(t *testing.T, db *gorm.DB, warrantyDays int) models.ProductType {
	t.Helper()
	pt := models.ProductType{Name: "WP-A1", ModelNumber: "A1", WarrantyPeriod: warrantyDays}
	if err := db.Create(&pt).Error; err != nil {
		t.Fatalf("seed product type: %v", err)
	}
	return pt
}

func seedAgent(t *testing.T, db *gorm.DB) models.User {
	t.Helper()
	agent := models.User{Username: "agent1", Name: "Agent One", UserType: models.UserTypeAgent}
	if err := db.Create(&agent).Error; err != nil {
		t.Fatalf("seed agent: %v", err)
	}
	return agent
}

func operationTypes(t *testing.T, db *gorm.DB, productID uint) []int {
	t.Helper()
	var records []models.OperationRecord
	if err := db.Where("product_id = ?", productID).Order("id ASC").Find(&records).Error; err != nil {
		t.Fatalf("load operation records: %v", err)
	}
	types := make([]int, 0, len(records))
	for _, rec := range records {
		types = append(types, rec.OperationType)
	}
	return types
}

func TestFullLifecycleCreateShipActivate(t *testing.T) {
	db := setupTestDB(t)
	pt := seedProductType(t, db, 365)
	agent := seedAgent(t, db)
	repo := NewProductRepository(db)

	product, err := repo.Create("AB23CD45", pt.ID, "", "user-admin")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if product.Status != models.StatusGenerated {
		t.Fatalf("status after create = %d, want %d", product.Status, models.StatusGenerated)
	}

	shipped, err := repo.BulkShip([]string{"AB23CD45"}, agent.ID, nil, "user-admin")
	if err != nil {
		t.Fatalf("ship: %v", err)
	}
	if shipped != 1 {
		t.Fatalf("shipped = %d, want 1", shipped)
	}

	product, err = repo.Activate("AB23CD45", CustomerContact{
		Name:  "Liu Wei",
		Phone: "13800000000",
		Email: "liu@example.com",
	}, "installer-x", "client-Liu Wei")
	if err != nil {
		t.Fatalf("activate: %v", err)
	}
	if product.Status != models.StatusActivated {
		t.Fatalf("status after activate = %d, want %d", product.Status, models.StatusActivated)
	}
	if product.WarrantyStartDate == nil || product.WarrantyEndDate == nil {
		t.Fatal("warranty window not derived")
	}
	wantEnd := product.WarrantyStartDate.AddDate(0, 0, 365)
	if !product.WarrantyEndDate.Equal(wantEnd) {
		t.Fatalf("warranty end = %v, want %v", product.WarrantyEndDate, wantEnd)
	}
	if product.Name != "Liu Wei" || product.Phone != "13800000000" {
		t.Fatalf("contact not stored verbatim: %q %q", product.Name, product.Phone)
	}

	got := operationTypes(t, db, product.ID)
	want := []int{models.OperationCreate, models.OperationShip, models.OperationActivate}
	if len(got) != len(want) {
		t.Fatalf("operation records = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("operation records = %v, want %v", got, want)
		}
	}
}

func TestCreateDuplicateIdentifier(t *testing.T) {
	db := setupTestDB(t)
	pt := seedProductType(t, db, 365)
	repo := NewProductRepository(db)

	if _, err := repo.Create("AB23CD45", pt.ID, "", "user-admin"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := repo.Create("AB23CD45", pt.ID, "", "user-admin")
	if !errors.Is(err, ErrDuplicateIdentifier) {
		t.Fatalf("err = %v, want ErrDuplicateIdentifier", err)
	}
}

func TestBulkCreateSkipsDuplicates(t *testing.T) {
	db := setupTestDB(t)
	pt := seedProductType(t, db, 365)
	repo := NewProductRepository(db)

	created, skipped, err := repo.BulkCreate(pt.ID, []string{"A1", "A2", "A1"}, "", "user-admin")
	if err != nil {
		t.Fatalf("bulk create: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("created = %d, want 2", len(created))
	}
	if len(skipped) != 1 || skipped[0].QRCodeID != "A1" {
		t.Fatalf("skipped = %+v, want one entry for A1", skipped)
	}

	// A pre-existing id in a later batch is also a skip, not a failure.
	created, skipped, err = repo.BulkCreate(pt.ID, []string{"A2", "A3"}, "", "user-admin")
	if err != nil {
		t.Fatalf("second bulk create: %v", err)
	}
	if len(created) != 1 || created[0].QRCodeID != "A3" {
		t.Fatalf("created = %+v, want just A3", created)
	}
	if len(skipped) != 1 || skipped[0].QRCodeID != "A2" {
		t.Fatalf("skipped = %+v, want just A2", skipped)
	}

	var total int64
	db.Model(&models.Product{}).Count(&total)
	if total != 3 {
		t.Fatalf("products in db = %d, want 3", total)
	}
}

func TestBulkShipFiltersIneligible(t *testing.T) {
	db := setupTestDB(t)
	pt := seedProductType(t, db, 365)
	agent := seedAgent(t, db)
	repo := NewProductRepository(db)

	if _, _, err := repo.BulkCreate(pt.ID, []string{"S1", "S2"}, "", "user-admin"); err != nil {
		t.Fatalf("bulk create: %v", err)
	}
	// S2 already shipped once; the second run must not ship it again.
	if _, err := repo.BulkShip([]string{"S2"}, agent.ID, nil, "user-admin"); err != nil {
		t.Fatalf("pre-ship: %v", err)
	}

	shipped, err := repo.BulkShip([]string{"S1", "S2", "MISSING"}, agent.ID, nil, "user-admin")
	if err != nil {
		t.Fatalf("ship: %v", err)
	}
	if shipped != 1 {
		t.Fatalf("shipped = %d, want 1", shipped)
	}
}

func TestBulkShipNoEligibleUnits(t *testing.T) {
	db := setupTestDB(t)
	seedProductType(t, db, 365)
	agent := seedAgent(t, db)
	repo := NewProductRepository(db)

	_, err := repo.BulkShip([]string{"NOPE"}, agent.ID, nil, "user-admin")
	if !errors.Is(err, ErrNoEligibleUnits) {
		t.Fatalf("err = %v, want ErrNoEligibleUnits", err)
	}
}

func TestBulkShipUnknownAgent(t *testing.T) {
	db := setupTestDB(t)
	pt := seedProductType(t, db, 365)
	repo := NewProductRepository(db)

	// A client account is not a valid shipping destination.
	client := models.User{Username: "client1", UserType: models.UserTypeClient}
	if err := db.Create(&client).Error; err != nil {
		t.Fatalf("seed client: %v", err)
	}
	if _, _, err := repo.BulkCreate(pt.ID, []string{"U1"}, "", "user-admin"); err != nil {
		t.Fatalf("bulk create: %v", err)
	}

	_, err := repo.BulkShip([]string{"U1"}, client.ID, nil, "user-admin")
	if !errors.Is(err, ErrUnknownAgent) {
		t.Fatalf("err = %v, want ErrUnknownAgent", err)
	}
}

func TestActivateRequiresShippedStatus(t *testing.T) {
	db := setupTestDB(t)
	pt := seedProductType(t, db, 365)
	agent := seedAgent(t, db)
	repo := NewProductRepository(db)

	if _, err := repo.Create("AC100001", pt.ID, "", "user-admin"); err != nil {
		t.Fatalf("create: %v", err)
	}

	// GENERATED unit cannot be activated.
	_, err := repo.Activate("AC100001", CustomerContact{Name: "X"}, "", "client-X")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("err = %v, want ErrInvalidTransition", err)
	}

	if _, err := repo.BulkShip([]string{"AC100001"}, agent.ID, nil, "user-admin"); err != nil {
		t.Fatalf("ship: %v", err)
	}
	if _, err := repo.Activate("AC100001", CustomerContact{Name: "X"}, "", "client-X"); err != nil {
		t.Fatalf("activate: %v", err)
	}

	// Second activation of the same unit must fail.
	_, err = repo.Activate("AC100001", CustomerContact{Name: "Y"}, "", "client-Y")
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("second activate err = %v, want ErrInvalidTransition", err)
	}

	got := operationTypes(t, db, 1)
	activations := 0
	for _, op := range got {
		if op == models.OperationActivate {
			activations++
		}
	}
	if activations != 1 {
		t.Fatalf("activate audit rows = %d, want 1", activations)
	}
}

func TestScrapIsTerminal(t *testing.T) {
	db := setupTestDB(t)
	pt := seedProductType(t, db, 365)
	repo := NewProductRepository(db)

	if _, err := repo.Create("SC100001", pt.ID, "", "user-admin"); err != nil {
		t.Fatalf("create: %v", err)
	}
	product, err := repo.Scrap("SC100001", "damaged in factory", "user-admin")
	if err != nil {
		t.Fatalf("scrap: %v", err)
	}
	if product.Status != models.StatusScrapped {
		t.Fatalf("status = %d, want %d", product.Status, models.StatusScrapped)
	}

	if _, err := repo.Scrap("SC100001", "", "user-admin"); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("double scrap err = %v, want ErrInvalidTransition", err)
	}
}

func TestSearchForWarranty(t *testing.T) {
	db := setupTestDB(t)
	pt := seedProductType(t, db, 365)
	agent := seedAgent(t, db)
	repo := NewProductRepository(db)

	if _, err := repo.Create("WC100001", pt.ID, "", "user-admin"); err != nil {
		t.Fatalf("create: %v", err)
	}

	// No parameters at all is a request error.
	if _, err := repo.SearchForWarranty("", "", ""); !errors.Is(err, ErrNoMatchingParameter) {
		t.Fatalf("err = %v, want ErrNoMatchingParameter", err)
	}

	// An unactivated unit is still findable by qrcode; coverage is a
	// question for the caller, not the search.
	products, err := repo.SearchForWarranty("WC100001", "", "")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(products) != 1 || products[0].WarrantyEndDate != nil {
		t.Fatalf("unexpected result: %+v", products)
	}

	if _, err := repo.BulkShip([]string{"WC100001"}, agent.ID, nil, "user-admin"); err != nil {
		t.Fatalf("ship: %v", err)
	}
	if _, err := repo.Activate("WC100001", CustomerContact{Name: "N", Email: "n@example.com"}, "", "client-N"); err != nil {
		t.Fatalf("activate: %v", err)
	}

	products, err = repo.SearchForWarranty("", "n@example.com", "")
	if err != nil {
		t.Fatalf("search by email: %v", err)
	}
	if len(products) != 1 || products[0].QRCodeID != "WC100001" {
		t.Fatalf("unexpected result: %+v", products)
	}

	if _, err := repo.SearchForWarranty("", "nobody@example.com", ""); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}
