package schemas

import "github.com/flameshq/flames/internal/domain"

// Document is the validated input form of a record. Fields are pointers so
// that a missing value reaches the validator as nil.
type Document interface {
	ToRecord() domain.Record
}

// userModel Users collection schema
type userModel struct {
	Name     *string `json:"name" validate:"required" desc:"Full name"`
	Email    *string `json:"email" validate:"required" desc:"Email address"`
	Address  *string `json:"address" validate:"required" desc:"Address"`
	Age      *int    `json:"age" validate:"omitempty,gte=0,lte=120" desc:"Age in years"`
	IsActive *bool   `json:"is_active" default:"true" desc:"Whether user is active"`
}

func (m *userModel) ToRecord() domain.Record {
	return &domain.User{
		Name:     *m.Name,
		Email:    *m.Email,
		Address:  *m.Address,
		Age:      m.Age,
		IsActive: *m.IsActive,
	}
}

// productModel Products collection schema
type productModel struct {
	Title       *string  `json:"title" validate:"required" desc:"Product title"`
	Description *string  `json:"description" desc:"Product description"`
	Price       *float64 `json:"price" validate:"required,gte=0" desc:"Price in dollars"`
	Category    *string  `json:"category" validate:"required" desc:"Product category"`
	InStock     *bool    `json:"in_stock" default:"true" desc:"Whether product is in stock"`
}

func (m *productModel) ToRecord() domain.Record {
	return &domain.Product{
		Title:       *m.Title,
		Description: m.Description,
		Price:       *m.Price,
		Category:    *m.Category,
		InStock:     *m.InStock,
	}
}

// demoRequestModel Demo requests from the landing page
type demoRequestModel struct {
	FullName          *string          `json:"full_name" validate:"required,min=2" desc:"Visitor's full name"`
	WorkEmail         *string          `json:"work_email" validate:"required,email" desc:"Work email address"`
	CompanyName       *string          `json:"company_name" validate:"required,min=2" desc:"Company or organization"`
	RoleTitle         *string          `json:"role_title" desc:"Role or title"`
	Industry          *domain.Industry `json:"industry" validate:"required,oneof='Banking' 'Law Firm' 'Fintech' 'Corporate' 'Other'" desc:"Industry selection"`
	PrimaryUseCase    *string          `json:"primary_use_case" validate:"omitempty,max=1000" desc:"Short description of use case"`
	PreferredTimeZone *string          `json:"preferred_time_zone" desc:"Time zone preference"`
	Message           *string          `json:"message" validate:"omitempty,max=2000" desc:"Additional notes"`
	Consent           *bool            `json:"consent" validate:"required" desc:"Consent to be contacted"`
}

func (m *demoRequestModel) ToRecord() domain.Record {
	return &domain.DemoRequest{
		FullName:          *m.FullName,
		WorkEmail:         *m.WorkEmail,
		CompanyName:       *m.CompanyName,
		RoleTitle:         m.RoleTitle,
		Industry:          *m.Industry,
		PrimaryUseCase:    m.PrimaryUseCase,
		PreferredTimeZone: m.PreferredTimeZone,
		Message:           m.Message,
		Consent:           *m.Consent,
	}
}

var demoRequestExample = map[string]interface{}{
	"full_name":           "Alex Morgan",
	"work_email":          "alex@bank.com",
	"company_name":        "Global Bank",
	"role_title":          "Product Manager",
	"industry":            "Banking",
	"primary_use_case":    "Verifiable Proof-of-Funds for onboarding",
	"preferred_time_zone": "UTC-5 (EST)",
	"message":             "Looking to pilot with our private banking team.",
	"consent":             true,
}
