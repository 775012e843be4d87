//go:build integration
// +build integration

package repository

import (
	"context"
	"time"

	"org-tenancy-backend/internal/database/models"
	"org-tenancy-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// storeContractSuite runs the same repository behaviour checks against every store driver
type storeContractSuite struct {
	suite.Suite
	ctx          context.Context
	set          *Set
	reset        func()
	tenantExists func(name models.CollectionName) bool
	factories    *testutils.FactorySet
}

func (s *storeContractSuite) SetupTest() {
	s.ctx = context.Background()
	s.factories = testutils.NewFactorySet()
	s.reset()
}

func (s *storeContractSuite) TearDownTest() {
	s.reset()
}

func (s *storeContractSuite) seed(name, email string) (*models.Organization, *models.User) {
	org, user := s.factories.CreateOrganizationWithAdmin(name, email)
	s.Require().NoError(s.set.Users.Create(s.ctx, user))
	s.Require().NoError(s.set.Tenants.Provision(s.ctx, org.CollectionName, models.NewTenantMetadata(time.Now())))
	s.Require().NoError(s.set.Organizations.Create(s.ctx, org))
	return org, user
}

func (s *storeContractSuite) TestPing() {
	s.NoError(s.set.Health.Ping(s.ctx))
}

func (s *storeContractSuite) TestCreateAndGetOrganization() {
	org, _ := s.seed("Acme Corp", "a@x.com")
	s.NotEmpty(org.ID)
	s.False(org.CreatedAt.IsZero())

	found, err := s.set.Organizations.GetByName(s.ctx, "Acme Corp")
	s.Require().NoError(err)
	s.Equal("Acme Corp", found.Name)
	s.Equal(models.CollectionName("org_acme_corp"), found.CollectionName)
	s.Equal("a@x.com", found.AdminEmail)
	s.True(s.tenantExists("org_acme_corp"))

	_, err = s.set.Organizations.GetByName(s.ctx, "acme corp")
	s.ErrorIs(err, ErrRecordNotFound, "names are case-sensitive")
}

func (s *storeContractSuite) TestDuplicateOrganizationName() {
	s.seed("Acme Corp", "a@x.com")

	dup := s.factories.Organization.WithName("Acme Corp")
	s.ErrorIs(s.set.Organizations.Create(s.ctx, dup), ErrDuplicateKey)
}

func (s *storeContractSuite) TestRenameOrganization() {
	s.seed("Acme Corp", "a@x.com")

	s.Require().NoError(s.set.Tenants.Rename(s.ctx, "org_acme_corp", "org_acme_inc"))
	s.Require().NoError(s.set.Organizations.Rename(s.ctx, "Acme Corp", "Acme Inc", "org_acme_inc"))

	_, err := s.set.Organizations.GetByName(s.ctx, "Acme Corp")
	s.ErrorIs(err, ErrRecordNotFound)
	renamed, err := s.set.Organizations.GetByName(s.ctx, "Acme Inc")
	s.Require().NoError(err)
	s.Equal(models.CollectionName("org_acme_inc"), renamed.CollectionName)

	s.False(s.tenantExists("org_acme_corp"))
	s.True(s.tenantExists("org_acme_inc"))

	s.ErrorIs(s.set.Organizations.Rename(s.ctx, "Nobody", "Somebody", "org_somebody"), ErrRecordNotFound)
}

func (s *storeContractSuite) TestRenameIntoTakenName() {
	s.seed("Acme Corp", "a@x.com")
	s.seed("Globex", "g@x.com")

	s.ErrorIs(s.set.Organizations.Rename(s.ctx, "Acme Corp", "Globex", "org_globex"), ErrDuplicateKey)
	s.Error(s.set.Tenants.Rename(s.ctx, "org_acme_corp", "org_globex"))

	original, err := s.set.Organizations.GetByName(s.ctx, "Acme Corp")
	s.Require().NoError(err)
	s.Equal(models.CollectionName("org_acme_corp"), original.CollectionName)
}

func (s *storeContractSuite) TestRenameMissingTenantFails() {
	s.Error(s.set.Tenants.Rename(s.ctx, "org_missing", "org_elsewhere"))
}

func (s *storeContractSuite) TestUserUpdateAndLookup() {
	s.seed("Acme Corp", "a@x.com")
	s.seed("Globex", "g@x.com")

	email := "new@x.com"
	hash := "$2a$10$replacedhashreplacedhashreplacedhashreplacedhashrepl"
	newName := "Acme Inc"
	s.Require().NoError(s.set.Users.UpdateByOrganization(s.ctx, "Acme Corp", UserUpdate{
		Email:            &email,
		PasswordHash:     &hash,
		OrganizationName: &newName,
	}))

	_, err := s.set.Users.GetByEmail(s.ctx, "a@x.com")
	s.ErrorIs(err, ErrRecordNotFound)

	user, err := s.set.Users.GetByEmail(s.ctx, "new@x.com")
	s.Require().NoError(err)
	s.Equal(hash, user.Password)
	s.Equal("Acme Inc", user.OrganizationName)
	s.Equal(models.RoleAdmin, user.Role)

	other, err := s.set.Users.GetByEmail(s.ctx, "g@x.com")
	s.Require().NoError(err)
	s.Equal("Globex", other.OrganizationName)

	s.NoError(s.set.Users.UpdateByOrganization(s.ctx, "Acme Inc", UserUpdate{}))
}

func (s *storeContractSuite) TestDeleteOrganization() {
	org, _ := s.seed("Acme Corp", "a@x.com")
	s.seed("Globex", "g@x.com")

	s.Require().NoError(s.set.Tenants.Drop(s.ctx, org.CollectionName))
	s.Require().NoError(s.set.Organizations.DeleteByName(s.ctx, "Acme Corp"))
	removed, err := s.set.Users.DeleteByOrganization(s.ctx, "Acme Corp")
	s.Require().NoError(err)
	s.Equal(int64(1), removed)

	_, err = s.set.Organizations.GetByName(s.ctx, "Acme Corp")
	s.ErrorIs(err, ErrRecordNotFound)
	_, err = s.set.Users.GetByEmail(s.ctx, "a@x.com")
	s.ErrorIs(err, ErrRecordNotFound)
	s.False(s.tenantExists("org_acme_corp"))

	s.True(s.tenantExists("org_globex"))
	s.ErrorIs(s.set.Organizations.DeleteByName(s.ctx, "Acme Corp"), ErrRecordNotFound)
}
