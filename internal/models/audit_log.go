package models

import "time"

type AuditLog struct {
	UserID   *uint  `json:"userId"`
	Action   string `json:"action"`
	Entity   string `json:"entity"`
	EntityID *uint  `json:"entityId"`
	Metadata any    `json:"metadata,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
