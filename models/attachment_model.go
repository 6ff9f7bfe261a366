package models

import (
	"fmt"

	"gorm.io/gorm"
)

const (
	FileTypePDF   = 1
	FileTypeImage = 2
	FileTypeVideo = 3
	FileTypeOther = 4
)

// Attachable entity kinds. Attachments reference their owner through a
// (kind, id) pair over this finite set instead of a polymorphic FK.
const (
	EntityRepairRecord = "repair_record"
	EntityProduct      = "product"
	EntityProductType  = "product_type"
)

type Attachment struct {
	gorm.Model
	Name        string `json:"name"`
	FileURL     string `json:"file_url"`
	FileType    int    `json:"file_type" gorm:"default:4"`
	Description string `json:"description" gorm:"type:text"`
	EntityKind  string `json:"entity_kind" gorm:"index:idx_attachment_owner"`
	EntityID    int64  `json:"entity_id" gorm:"index:idx_attachment_owner"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}

// attachmentTargets maps an entity kind to a lookup that checks the target
// row exists before an attachment may reference it.
var attachmentTargets = map[string]func(db *gorm.DB, id int64) (bool, error){
	EntityRepairRecord: func(db *gorm.DB, id int64) (bool, error) {
		var count int64
		err := db.Model(&RepairRecord{}).Where("id = ?", id).Count(&count).Error
		return count > 0, err
	},
	EntityProduct: func(db *gorm.DB, id int64) (bool, error) {
		var count int64
		err := db.Model(&Product{}).Where("id = ?", id).Count(&count).Error
		return count > 0, err
	},
	EntityProductType: func(db *gorm.DB, id int64) (bool, error) {
		var count int64
		err := db.Model(&ProductType{}).Where("id = ?", id).Count(&count).Error
		return count > 0, err
	},
}

func IsAttachableKind(kind string) bool {
	_, ok := attachmentTargets[kind]
	return ok
}

// AttachmentTargetExists reports whether the (kind, id) owner row exists.
func AttachmentTargetExists(db *gorm.DB, kind string, id int64) (bool, error) {
	lookup, ok := attachmentTargets[kind]
	if !ok {
		return false, fmt.Errorf("unknown entity kind: %s", kind)
	}
	return lookup(db, id)
}
