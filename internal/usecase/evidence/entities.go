package evidence

import (
	"io"
	"time"

	domainEvidence "greentracker-backend/internal/domain/evidence"
	"greentracker-backend/internal/usecase/feedback"
)

// FileInput describes image and document evidence; the file itself travels as an Upload.
type FileInput struct {
	Description           string `json:"description" form:"description" validate:"max=4000"`
	LinkToRelatedResource string `json:"linkToRelatedResource" form:"linkToRelatedResource" validate:"omitempty,url,max=2048"`
}

type LinkInput struct {
	Link        string `json:"link" validate:"required,url,max=2048"`
	Description string `json:"description" validate:"max=4000"`
}

type Upload struct {
	Name    string
	Content io.Reader
}

type DTO struct {
	ActivityID            string              `json:"activityId"`
	EvidenceNumber        int                 `json:"evidenceNumber"`
	Type                  domainEvidence.Type `json:"type"`
	Link                  string              `json:"link"`
	Description           string              `json:"description"`
	UploadTimestamp       time.Time           `json:"uploadTimestamp"`
	LinkToRelatedResource *string             `json:"linkToRelatedResource,omitempty"`
	Feedback              []feedback.DTO      `json:"feedback"`
}

func toDTO(rec domainEvidence.Record, fb []feedback.DTO) DTO {
	if fb == nil {
		fb = []feedback.DTO{}
	}
	out := DTO{
		ActivityID:      rec.ActivityID,
		EvidenceNumber:  rec.EvidenceNumber,
		Type:            rec.Variant.Type(),
		Link:            rec.Link,
		Description:     rec.Description,
		UploadTimestamp: rec.UploadTimestamp,
		Feedback:        fb,
	}
	switch v := rec.Variant.(type) {
	case domainEvidence.ImageVariant:
		link := v.LinkToRelatedResource
		out.LinkToRelatedResource = &link
	case domainEvidence.DocumentVariant, domainEvidence.LinkVariant:
	default:
		panic("evidence: unknown variant")
	}
	return out
}
