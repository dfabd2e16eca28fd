package models

// Organization represents the root entity for multi-tenancy (one church)
type Organization struct {
	BaseModel
	Name string `json:"name" gorm:"not null;size:200" validate:"required,min=1,max=200"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return "organizations"
}
