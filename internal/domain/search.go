package domain

// NoticeStatus is the closed set of Doffin notice statuses.
type NoticeStatus string

const (
	StatusActive    NoticeStatus = "ACTIVE"
	StatusExpired   NoticeStatus = "EXPIRED"
	StatusCancelled NoticeStatus = "CANCELLED"
	StatusAwarded   NoticeStatus = "AWARDED"
)

// ValidNoticeStatuses lists every accepted status, in the order reported in
// validation errors.
var ValidNoticeStatuses = []NoticeStatus{
	StatusActive,
	StatusAwarded,
	StatusCancelled,
	StatusExpired,
}

// SearchParams is the validated Doffin search filter set. Slice fields are
// nil when the parameter was absent or empty after trimming.
type SearchParams struct {
	SearchStr   string
	CPVCodes    []string
	LocationIDs []string
	Status      []NoticeStatus
	HitsPerPage int
	Page        int
}
