package models

import "time"

type Session struct {
	SessionID string    `json:"sessionId"`
	AccountID string    `json:"accountId"`
	ProfileID string    `json:"profileId,omitempty"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (s *Session) IsNotProvider() bool {
	return s.Role != "Provider"
}
