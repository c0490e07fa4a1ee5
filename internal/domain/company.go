package domain

type Company struct {
	ID          int64
	Name        string
	Description string
	LogoURL     string
}

// CompanyUpdate carries a partial update; nil fields are left untouched.
type CompanyUpdate struct {
	Name        *string
	Description *string
	LogoURL     *string
}
