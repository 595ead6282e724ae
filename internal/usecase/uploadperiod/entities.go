package uploadperiod

import (
	"time"

	domainUploadPeriod "greentracker-backend/internal/domain/uploadperiod"
)

type Input struct {
	StartTimestamp time.Time `json:"startTimestamp" validate:"required"`
	EndTimestamp   time.Time `json:"endTimestamp" validate:"required,gtfield=StartTimestamp"`
}

type DTO struct {
	StartTimestamp time.Time `json:"startTimestamp"`
	EndTimestamp   time.Time `json:"endTimestamp"`
	Open           bool      `json:"open"`
}

func toDTO(p domainUploadPeriod.UploadPeriod, now time.Time) DTO {
	return DTO{StartTimestamp: p.StartTimestamp, EndTimestamp: p.EndTimestamp, Open: p.Contains(now)}
}
