package testutils

import (
	"org-tenancy-backend/internal/database/models"
)

// OrganizationFactory provides methods to create test Organization data
type OrganizationFactory struct{}

// NewOrganizationFactory creates a new OrganizationFactory
func NewOrganizationFactory() *OrganizationFactory {
	return &OrganizationFactory{}
}

// Create creates a test Organization with default values
func (f *OrganizationFactory) Create() *models.Organization {
	return f.WithName("Test Organization")
}

// WithName builds an organization whose collection name is derived from name
func (f *OrganizationFactory) WithName(name string) *models.Organization {
	collection, err := models.NewCollectionName(name)
	if err != nil {
		panic("testutils: unusable organization name " + name + ": " + err.Error())
	}
	return &models.Organization{
		Name:           name,
		CollectionName: collection,
		AdminEmail:     "admin@test.com",
	}
}

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test admin User with default values
func (f *UserFactory) Create() *models.User {
	return &models.User{
		Email:            "admin@test.com",
		Password:         "$2a$10$7EqJtq98hPqEX7fNZaFWoOhi5BWX4Z4hG5qWm1YQmXwQe2h7P6cZ2",
		Role:             models.RoleAdmin,
		OrganizationName: "Test Organization",
	}
}

// ForOrganization creates an admin User belonging to the named organization
func (f *UserFactory) ForOrganization(orgName, email string) *models.User {
	user := f.Create()
	user.OrganizationName = orgName
	user.Email = email
	return user
}

// FactorySet provides access to all factories
type FactorySet struct {
	Organization *OrganizationFactory
	User         *UserFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Organization: NewOrganizationFactory(),
		User:         NewUserFactory(),
	}
}

// CreateOrganizationWithAdmin returns an organization and its matching admin user
func (fs *FactorySet) CreateOrganizationWithAdmin(name, email string) (*models.Organization, *models.User) {
	org := fs.Organization.WithName(name)
	org.AdminEmail = email
	return org, fs.User.ForOrganization(name, email)
}
