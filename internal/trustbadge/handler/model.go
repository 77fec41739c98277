package handler

type TrustBadgeRequest struct {
	TagCode string `json:"tagCode" validate:"required,max=500"`
	Link    string `json:"link" validate:"required,url"`
}
