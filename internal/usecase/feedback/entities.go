package feedback

import domainFeedback "greentracker-backend/internal/domain/feedback"

type Input struct {
	Feedback domainFeedback.Value `json:"feedback" validate:"required,feedback"`
}

type DTO struct {
	ActivityID     string               `json:"activityId"`
	EvidenceNumber int                  `json:"evidenceNumber"`
	Feedback       domainFeedback.Value `json:"feedback"`
	AdminID        string               `json:"adminId"`
}

func ToDTO(f domainFeedback.EvidenceFeedback) DTO {
	return DTO{ActivityID: f.ActivityID, EvidenceNumber: f.EvidenceNumber, Feedback: f.Feedback, AdminID: f.AdminID}
}
