package models

import "brm-service/internal/pkg/utils"

type TimeModel struct {
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (m *TimeModel) SetCreatedAtUpdatedAt() {
	currentTime := utils.Now()
	m.CreatedAt = currentTime
	m.UpdatedAt = currentTime
}

// SetUpdatedAt moves updatedAt strictly forward, even within one clock tick.
func (m *TimeModel) SetUpdatedAt() {
	m.UpdatedAt = utils.NextTimestamp(m.UpdatedAt)
}
