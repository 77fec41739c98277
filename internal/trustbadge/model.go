package trustbadge

import "time"

// TrustBadge holds the verification tag and link issued by a trust
// authority; effectively one per store but modeled as a list.
type TrustBadge struct {
	ID        string    `json:"id"`
	StoreID   string    `json:"storeId"`
	TagCode   string    `json:"tagCode"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"createdAt"`
}

type TrustBadgeResponse struct {
	TrustBadge TrustBadge `json:"trustBadge"`
}

type TrustBadgesResponse struct {
	TrustBadges []TrustBadge `json:"trustBadges"`
}
