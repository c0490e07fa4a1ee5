package db

import "time"

type UserModel struct {
	ID       int64  `gorm:"primaryKey"`
	GoogleID string `gorm:"column:google_id;size:100;uniqueIndex;not null"`
	Email    string `gorm:"size:120;uniqueIndex;not null"`
	Name     string `gorm:"size:100"`
}

func (UserModel) TableName() string {
	return "users"
}

type CompanyModel struct {
	ID          int64  `gorm:"primaryKey"`
	Name        string `gorm:"size:100;uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	LogoURL     string `gorm:"column:logo_url;size:512"`
}

func (CompanyModel) TableName() string {
	return "companies"
}

type MembershipModel struct {
	UserID    int64 `gorm:"primaryKey"`
	CompanyID int64 `gorm:"primaryKey;index"`
}

func (MembershipModel) TableName() string {
	return "user_company"
}

// Set-valued enum fields and free-form documents are stored as jsonb;
// the closed vocabularies are enforced at the boundary, not by the
// column type.
type JobModel struct {
	ID               int64  `gorm:"primaryKey"`
	Title            string `gorm:"size:100;not null"`
	SalaryMin        *int
	SalaryMax        *int
	ContractTypes    []byte `gorm:"type:jsonb;not null"`
	WorkModes        []byte `gorm:"type:jsonb;not null"`
	ExperienceLevels []byte `gorm:"type:jsonb"`
	JobTypes         []byte `gorm:"type:jsonb;not null"`
	Description      string `gorm:"type:text;not null"`
	Requirements     []byte `gorm:"type:jsonb"`
	Locations        []byte `gorm:"type:jsonb"`
	StartDate        time.Time `gorm:"not null"`
	EndDate          *time.Time
	CompanyID        int64 `gorm:"index;not null"`
}

func (JobModel) TableName() string {
	return "jobs"
}
