package auth

type SignUpRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required,min=5,max=20"`
	Password    string `json:"password" validate:"required,min=8,max=72"`
	Title       string `json:"title" validate:"required,max=200"`
	Slug        string `json:"slug" validate:"required,min=3,max=63,hostname"`
}

type LoginRequest struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type SignUpResponse struct {
	Token     string `json:"token"`
	StoreID   string `json:"storeId"`
	RepoURL   string `json:"repoUrl"`
	DeployURL string `json:"deployUrl"`
}
