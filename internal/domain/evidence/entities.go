package evidence

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound      = errors.New("evidence not found")
	ErrAlreadyExists = errors.New("evidence number already taken")
)

type Type string

const (
	TypeImage    Type = "image"
	TypeDocument Type = "document"
	TypeLink     Type = "link"
)

type Key struct {
	ActivityID     string
	EvidenceNumber int
}

// Table: evidence. Base row shared by every variant.
type Evidence struct {
	ActivityID      string    `gorm:"column:activity_id;type:char(36);primaryKey"`
	EvidenceNumber  int       `gorm:"column:evidence_number;primaryKey;autoIncrement:false"`
	Link            string    `gorm:"column:link;type:text;not null"`
	Description     string    `gorm:"column:description;type:text"`
	UploadTimestamp time.Time `gorm:"column:upload_timestamp"`
	Type            Type      `gorm:"column:type;size:16;not null"`
}

func (Evidence) TableName() string { return "evidence" }

func (e Evidence) Key() Key { return Key{ActivityID: e.ActivityID, EvidenceNumber: e.EvidenceNumber} }

// Table: image_evidence. Extension row present only for image evidence.
type ImageEvidence struct {
	ActivityID            string `gorm:"column:activity_id;type:char(36);primaryKey"`
	EvidenceNumber        int    `gorm:"column:evidence_number;primaryKey;autoIncrement:false"`
	LinkToRelatedResource string `gorm:"column:link_to_related_resource;type:text"`
}

func (ImageEvidence) TableName() string { return "image_evidence" }

// Variant is the closed set of evidence payloads; only this package implements it.
type Variant interface {
	Type() Type
	isVariant()
}

type ImageVariant struct {
	LinkToRelatedResource string
}

type DocumentVariant struct{}

type LinkVariant struct{}

func (ImageVariant) Type() Type    { return TypeImage }
func (DocumentVariant) Type() Type { return TypeDocument }
func (LinkVariant) Type() Type     { return TypeLink }

func (ImageVariant) isVariant()    {}
func (DocumentVariant) isVariant() {}
func (LinkVariant) isVariant()     {}

// Record is one evidence item: base row plus its variant payload.
type Record struct {
	Evidence
	Variant Variant
}

// HasFile reports whether the variant owns an uploaded file.
func HasFile(v Variant) bool {
	switch v.(type) {
	case ImageVariant, DocumentVariant:
		return true
	case LinkVariant:
		return false
	default:
		panic(fmt.Sprintf("evidence: unknown variant %T", v))
	}
}

// Filter for listing evidence of one activity; empty Type matches all variants.
type Filter struct {
	ActivityID string
	Type       Type
}
