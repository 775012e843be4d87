package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"org-tenancy-backend/internal/auth"
	"org-tenancy-backend/internal/database/models"
	apperrors "org-tenancy-backend/internal/errors"
	"org-tenancy-backend/internal/mocks"
	"org-tenancy-backend/internal/repository"
	"org-tenancy-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// OrganizationServiceTestSuite defines the test suite for OrganizationService
type OrganizationServiceTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	ctx            context.Context
	mockOrgRepo    *mocks.MockOrganizationRepositoryInterface
	mockUserRepo   *mocks.MockUserRepositoryInterface
	mockTenantRepo *mocks.MockTenantRepositoryInterface
	orgService     *service.OrganizationService
}

// SetupTest sets up the test suite
func (suite *OrganizationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ctx = context.Background()
	suite.mockOrgRepo = mocks.NewMockOrganizationRepositoryInterface(suite.ctrl)
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockTenantRepo = mocks.NewMockTenantRepositoryInterface(suite.ctrl)
	suite.orgService = service.NewOrganizationService(suite.mockOrgRepo, suite.mockUserRepo, suite.mockTenantRepo, service.NewValidator())
}

// TearDownTest cleans up after each test
func (suite *OrganizationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func acmeCorp() *models.Organization {
	return &models.Organization{
		Name:           "Acme Corp",
		CollectionName: models.CollectionName("org_acme_corp"),
		AdminEmail:     "a@x.com",
	}
}

func strPtr(s string) *string { return &s }

// TestCreateOrganization tests the full create sequence
func (suite *OrganizationServiceTestSuite) TestCreateOrganization() {
	req := &service.CreateOrganizationRequest{Name: "Acme Corp", Email: "a@x.com", Password: "pw123"}

	gomock.InOrder(
		suite.mockOrgRepo.EXPECT().
			GetByName(gomock.Any(), "Acme Corp").
			Return(nil, repository.ErrRecordNotFound),
		suite.mockUserRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, user *models.User) error {
				assert.Equal(suite.T(), "a@x.com", user.Email)
				assert.Equal(suite.T(), models.RoleAdmin, user.Role)
				assert.Equal(suite.T(), "Acme Corp", user.OrganizationName)
				assert.NotEqual(suite.T(), "pw123", user.Password)
				assert.True(suite.T(), auth.VerifyPassword("pw123", user.Password))
				return nil
			}),
		suite.mockTenantRepo.EXPECT().
			Provision(gomock.Any(), models.CollectionName("org_acme_corp"), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ models.CollectionName, seed *models.TenantMetadata) error {
				assert.Equal(suite.T(), "metadata", seed.Type)
				assert.False(suite.T(), seed.CreatedAt.IsZero())
				return nil
			}),
		suite.mockOrgRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, org *models.Organization) error {
				assert.Equal(suite.T(), "Acme Corp", org.Name)
				assert.Equal(suite.T(), models.CollectionName("org_acme_corp"), org.CollectionName)
				assert.Equal(suite.T(), "a@x.com", org.AdminEmail)
				return nil
			}),
	)

	resp, err := suite.orgService.Create(suite.ctx, req)

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Acme Corp", resp.Name)
	assert.Equal(suite.T(), "org_acme_corp", resp.CollectionName)
	assert.Equal(suite.T(), "a@x.com", resp.AdminEmail)
}

// TestCreateOrganizationConflict checks that a duplicate name writes nothing
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationConflict() {
	suite.mockOrgRepo.EXPECT().
		GetByName(gomock.Any(), "Acme Corp").
		Return(acmeCorp(), nil).
		Times(1)

	resp, err := suite.orgService.Create(suite.ctx, &service.CreateOrganizationRequest{Name: "Acme Corp", Email: "b@x.com", Password: "other"})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationExists)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

// TestCreateOrganizationDuplicateKeyOnInsert maps a lost race on the unique index to a conflict
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationDuplicateKeyOnInsert() {
	suite.mockOrgRepo.EXPECT().GetByName(gomock.Any(), "Acme Corp").Return(nil, repository.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.mockTenantRepo.EXPECT().Provision(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	suite.mockOrgRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(repository.ErrDuplicateKey)

	_, err := suite.orgService.Create(suite.ctx, &service.CreateOrganizationRequest{Name: "Acme Corp", Email: "a@x.com", Password: "pw123"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationExists)
}

// TestCreateOrganizationValidationError rejects malformed requests before touching the store
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationValidationError() {
	cases := map[string]*service.CreateOrganizationRequest{
		"missing name":   {Email: "a@x.com", Password: "pw123"},
		"invalid email":  {Name: "Acme Corp", Email: "not-an-email", Password: "pw123"},
		"missing secret": {Name: "Acme Corp", Email: "a@x.com"},
	}

	for name, req := range cases {
		suite.Run(name, func() {
			_, err := suite.orgService.Create(suite.ctx, req)
			assert.True(suite.T(), apperrors.IsValidation(err), err)
		})
	}
}

// TestCreateOrganizationPasswordOverByteLimit counts bytes, so 40 two-byte runes are too long
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationPasswordOverByteLimit() {
	password := strings.Repeat("é", 40)
	require.Equal(suite.T(), 40, len([]rune(password)))

	suite.mockOrgRepo.EXPECT().GetByName(gomock.Any(), "Acme Corp").Return(nil, repository.ErrRecordNotFound)

	_, err := suite.orgService.Create(suite.ctx, &service.CreateOrganizationRequest{Name: "Acme Corp", Email: "a@x.com", Password: password})

	assert.ErrorIs(suite.T(), err, apperrors.ErrPasswordTooLong)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateOrganizationUnsafeName rejects names whose collection name falls outside the allowlist
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationUnsafeName() {
	suite.mockOrgRepo.EXPECT().GetByName(gomock.Any(), "acme$corp").Return(nil, repository.ErrRecordNotFound)

	_, err := suite.orgService.Create(suite.ctx, &service.CreateOrganizationRequest{Name: "acme$corp", Email: "a@x.com", Password: "pw123"})

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCollectionName)
}

// TestCreateOrganizationProvisionFailure stops before the organization row is written
func (suite *OrganizationServiceTestSuite) TestCreateOrganizationProvisionFailure() {
	suite.mockOrgRepo.EXPECT().GetByName(gomock.Any(), "Acme Corp").Return(nil, repository.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.mockTenantRepo.EXPECT().Provision(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("connection reset"))

	_, err := suite.orgService.Create(suite.ctx, &service.CreateOrganizationRequest{Name: "Acme Corp", Email: "a@x.com", Password: "pw123"})

	require.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to provision tenant collection")
	assert.False(suite.T(), apperrors.IsAlreadyExists(err))
}

// TestGetByName tests retrieving an organization
func (suite *OrganizationServiceTestSuite) TestGetByName() {
	suite.mockOrgRepo.EXPECT().GetByName(gomock.Any(), "Acme Corp").Return(acmeCorp(), nil)

	resp, err := suite.orgService.GetByName(suite.ctx, "Acme Corp")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "org_acme_corp", resp.CollectionName)
}

// TestGetByNameNotFound tests retrieving an unknown organization
func (suite *OrganizationServiceTestSuite) TestGetByNameNotFound() {
	suite.mockOrgRepo.EXPECT().GetByName(gomock.Any(), "Nobody").Return(nil, repository.ErrRecordNotFound)

	_, err := suite.orgService.GetByName(suite.ctx, "Nobody")

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

// TestGetByNameStoreFailure surfaces unexpected store errors unchanged in kind
func (suite *OrganizationServiceTestSuite) TestGetByNameStoreFailure() {
	suite.mockOrgRepo.EXPECT().GetByName(gomock.Any(), "Acme Corp").Return(nil, errors.New("server selection timeout"))

	_, err := suite.orgService.GetByName(suite.ctx, "Acme Corp")

	require.Error(suite.T(), err)
	assert.False(suite.T(), apperrors.IsNotFound(err))
}

// TestUpdateRename renames the tenant, the organization row and re-points users
func (suite *OrganizationServiceTestSuite) TestUpdateRename() {
	gomock.InOrder(
		suite.mockOrgRepo.EXPECT().GetByName(gomock.Any(), "Acme Corp").Return(acmeCorp(), nil),
		suite.mockOrgRepo.EXPECT().GetByName(gomock.Any(), "Acme Inc").Return(nil, repository.ErrRecordNotFound),
		suite.mockTenantRepo.EXPECT().
			Rename(gomock.Any(), models.CollectionName("org_acme_corp"), models.CollectionName("org_acme_inc")).
			Return(nil),
		suite.mockOrgRepo.EXPECT().
			Rename(gomock.Any(), "Acme Corp", "Acme Inc", models.CollectionName("org_acme_inc")).
			Return(nil),
		suite.mockUserRepo.EXPECT().
			UpdateByOrganization(gomock.Any(), "Acme Corp", gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, update repository.UserUpdate) error {
				require.NotNil(suite.T(), update.OrganizationName)
				assert.Equal(suite.T(), "Acme Inc", *update.OrganizationName)
				assert.Nil(suite.T(), update.Email)
				assert.Nil(suite.T(), update.PasswordHash)
				return nil
			}),
	)

	resp, err := suite.orgService.Update(suite.ctx, "Acme Corp", &service.UpdateOrganizationRequest{Name: strPtr("Acme Inc")})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.StatusUpdated, resp.Status)
	assert.Equal(suite.T(), "Acme Inc", resp.NewName)
	assert.Empty(suite.T(), resp.Warning)
}

// TestUpdateRenameConflict leaves the original record untouched
func (suite *OrganizationServiceTestSuite) TestUpdateRenameConflict() {
	suite.mockOrgRepo.EXPECT().GetByName(gomock.Any(), "Acme Corp").Return(acmeCorp(), nil)
	suite.mockOrgRepo.EXPECT().GetByName(gomock.Any(), "Globex").Return(&models.Organization{Name: "Globex", CollectionName: "org_globex"}, nil)

	resp, err := suite.orgService.Update(suite.ctx, "Acme Corp", &service.UpdateOrganizationRequest{Name: strPtr("Globex"), Email: strPtr("new@x.com")})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNewOrganizationNameExists)
	assert.True(suite.T(), apperrors.IsAlreadyExists(err))
}

// TestUpdateTenantRenameFailureIsReported keeps going and surfaces a warning
func (suite *OrganizationServiceTestSuite) TestUpdateTenantRenameFailureIsReported() {
	suite.mockOrgRepo.EXPECT().GetByName(gomock.Any(), "Acme Corp").Return(acmeCorp(), nil)
	suite.mockOrgRepo.EXPECT().GetByName(gomock.Any(), "Acme Inc").Return(nil, repository.ErrRecordNotFound)
	suite.mockTenantRepo.EXPECT().Rename(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("source namespace does not exist"))
	suite.mockOrgRepo.EXPECT().Rename(gomock.Any(), "Acme Corp", "Acme Inc", models.CollectionName("org_acme_inc")).Return(nil)
	suite.mockUserRepo.EXPECT().UpdateByOrganization(gomock.Any(), "Acme Corp", gomock.Any()).Return(nil)

	resp, err := suite.orgService.Update(suite.ctx, "Acme Corp", &service.UpdateOrganizationRequest{Name: strPtr("Acme Inc")})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Acme Inc", resp.NewName)
	assert.Contains(suite.T(), resp.Warning, "org_acme_corp")
	assert.Contains(suite.T(), resp.Warning, "source namespace does not exist")
}

// TestUpdateCredentialsOnly changes the admin user without renaming
func (suite *OrganizationServiceTestSuite) TestUpdateCredentialsOnly() {
	suite.mockOrgRepo.EXPECT().GetByName(gomock.Any(), "Acme Corp").Return(acmeCorp(), nil)
	suite.mockUserRepo.EXPECT().
		UpdateByOrganization(gomock.Any(), "Acme Corp", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, update repository.UserUpdate) error {
			assert.Nil(suite.T(), update.OrganizationName)
			require.NotNil(suite.T(), update.Email)
			assert.Equal(suite.T(), "new@x.com", *update.Email)
			require.NotNil(suite.T(), update.PasswordHash)
			assert.True(suite.T(), auth.VerifyPassword("newpw", *update.PasswordHash))
			return nil
		})

	resp, err := suite.orgService.Update(suite.ctx, "Acme Corp", &service.UpdateOrganizationRequest{
		Name:     strPtr("Acme Corp"),
		Email:    strPtr("new@x.com"),
		Password: strPtr("newpw"),
	})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Acme Corp", resp.NewName)
}

// TestUpdatePasswordOverByteLimit is rejected before the rename is written
func (suite *OrganizationServiceTestSuite) TestUpdatePasswordOverByteLimit() {
	suite.mockOrgRepo.EXPECT().GetByName(gomock.Any(), "Acme Corp").Return(acmeCorp(), nil)

	_, err := suite.orgService.Update(suite.ctx, "Acme Corp", &service.UpdateOrganizationRequest{
		Name:     strPtr("Acme Inc"),
		Password: strPtr(strings.Repeat("é", 40)),
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrPasswordTooLong)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestUpdateNothingToChange only looks the organization up
func (suite *OrganizationServiceTestSuite) TestUpdateNothingToChange() {
	suite.mockOrgRepo.EXPECT().GetByName(gomock.Any(), "Acme Corp").Return(acmeCorp(), nil)

	resp, err := suite.orgService.Update(suite.ctx, "Acme Corp", &service.UpdateOrganizationRequest{Name: strPtr("")})

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Acme Corp", resp.NewName)
}

// TestUpdateNotFound propagates the missing organization
func (suite *OrganizationServiceTestSuite) TestUpdateNotFound() {
	suite.mockOrgRepo.EXPECT().GetByName(gomock.Any(), "Nobody").Return(nil, repository.ErrRecordNotFound)

	_, err := suite.orgService.Update(suite.ctx, "Nobody", &service.UpdateOrganizationRequest{Name: strPtr("Somebody")})

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

// TestUpdateInvalidEmail is rejected before any lookup
func (suite *OrganizationServiceTestSuite) TestUpdateInvalidEmail() {
	_, err := suite.orgService.Update(suite.ctx, "Acme Corp", &service.UpdateOrganizationRequest{Email: strPtr("nope")})

	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestDelete removes the tenant, the organization row and its users
func (suite *OrganizationServiceTestSuite) TestDelete() {
	gomock.InOrder(
		suite.mockOrgRepo.EXPECT().GetByName(gomock.Any(), "Acme Corp").Return(acmeCorp(), nil),
		suite.mockTenantRepo.EXPECT().Drop(gomock.Any(), models.CollectionName("org_acme_corp")).Return(nil),
		suite.mockOrgRepo.EXPECT().DeleteByName(gomock.Any(), "Acme Corp").Return(nil),
		suite.mockUserRepo.EXPECT().DeleteByOrganization(gomock.Any(), "Acme Corp").Return(int64(1), nil),
	)

	resp, err := suite.orgService.Delete(suite.ctx, "Acme Corp")

	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), service.StatusDeleted, resp.Status)
}

// TestDeleteUsesStoredCollectionName drops whatever collection the record points at
func (suite *OrganizationServiceTestSuite) TestDeleteUsesStoredCollectionName() {
	org := acmeCorp()
	org.CollectionName = models.CollectionName("org_legacy_name")
	suite.mockOrgRepo.EXPECT().GetByName(gomock.Any(), "Acme Corp").Return(org, nil)
	suite.mockTenantRepo.EXPECT().Drop(gomock.Any(), models.CollectionName("org_legacy_name")).Return(nil)
	suite.mockOrgRepo.EXPECT().DeleteByName(gomock.Any(), "Acme Corp").Return(nil)
	suite.mockUserRepo.EXPECT().DeleteByOrganization(gomock.Any(), "Acme Corp").Return(int64(0), nil)

	_, err := suite.orgService.Delete(suite.ctx, "Acme Corp")

	assert.NoError(suite.T(), err)
}

// TestDeleteNotFound propagates the missing organization
func (suite *OrganizationServiceTestSuite) TestDeleteNotFound() {
	suite.mockOrgRepo.EXPECT().GetByName(gomock.Any(), "Nobody").Return(nil, repository.ErrRecordNotFound)

	_, err := suite.orgService.Delete(suite.ctx, "Nobody")

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNotFound)
}

// TestDeleteEmptyName is rejected without a lookup
func (suite *OrganizationServiceTestSuite) TestDeleteEmptyName() {
	_, err := suite.orgService.Delete(suite.ctx, " ")

	assert.ErrorIs(suite.T(), err, apperrors.ErrOrganizationNameEmpty)
}

// TestOrganizationServiceTestSuite runs the test suite
func TestOrganizationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OrganizationServiceTestSuite))
}
