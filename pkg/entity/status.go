package entity

import (
	"fmt"
	"strings"
)

// PartnerStatus tracks where a partnership stands.
type PartnerStatus string

const (
	// StatusPending is the default for new partners.
	StatusPending PartnerStatus = "Pending"
	// StatusApproved marks an accepted partner.
	StatusApproved PartnerStatus = "Approved"
	// StatusRejected marks a declined partner.
	StatusRejected PartnerStatus = "Rejected"
)

// AllStatuses returns the statuses in display order.
func AllStatuses() []PartnerStatus {
	return []PartnerStatus{StatusPending, StatusApproved, StatusRejected}
}

// ParseStatus matches raw case-insensitively against the known statuses.
func ParseStatus(raw string) (PartnerStatus, error) {
	s := strings.TrimSpace(raw)
	for _, candidate := range AllStatuses() {
		if strings.EqualFold(string(candidate), s) {
			return candidate, nil
		}
	}
	return StatusPending, fmt.Errorf("entity: unknown partner status %q", raw)
}

func (s PartnerStatus) String() string {
	if s == "" {
		return string(StatusPending)
	}
	return string(s)
}
