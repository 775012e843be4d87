package models

// Organization is the master metadata row for one tenant
type Organization struct {
	BaseModel      `bson:",inline"`
	Name           string         `json:"organization_name" bson:"organization_name" gorm:"column:organization_name;uniqueIndex;not null;size:100"`
	CollectionName CollectionName `json:"collection_name" bson:"collection_name" gorm:"column:collection_name;not null;size:63"`
	AdminEmail     string         `json:"admin_email" bson:"admin_email" gorm:"column:admin_email;not null;size:255"`
}

// TableName returns the table name for Organization
func (Organization) TableName() string {
	return OrganizationsCollection
}
