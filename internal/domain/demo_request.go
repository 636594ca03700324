package domain

// Industry is the closed set of sectors a demo request may come from
type Industry string

const (
	IndustryBanking   Industry = "Banking"
	IndustryLawFirm   Industry = "Law Firm"
	IndustryFintech   Industry = "Fintech"
	IndustryCorporate Industry = "Corporate"
	IndustryOther     Industry = "Other"
)

// Industries lists every accepted Industry in display order
var Industries = []Industry{
	IndustryBanking,
	IndustryLawFirm,
	IndustryFintech,
	IndustryCorporate,
	IndustryOther,
}

// DemoRequest is a demo request submitted from the landing page
type DemoRequest struct {
	FullName          string   `gorm:"not null" json:"full_name" bson:"full_name"`
	WorkEmail         string   `gorm:"not null" json:"work_email" bson:"work_email"`
	CompanyName       string   `gorm:"not null" json:"company_name" bson:"company_name"`
	RoleTitle         *string  `json:"role_title" bson:"role_title"`
	Industry          Industry `gorm:"size:32;not null" json:"industry" bson:"industry"`
	PrimaryUseCase    *string  `gorm:"size:1000" json:"primary_use_case" bson:"primary_use_case"`
	PreferredTimeZone *string  `json:"preferred_time_zone" bson:"preferred_time_zone"`
	Message           *string  `gorm:"size:2000" json:"message" bson:"message"`
	Consent           bool     `gorm:"not null" json:"consent" bson:"consent"`
}

// TableName Specify collection name
func (DemoRequest) TableName() string {
	return "demorequest"
}
