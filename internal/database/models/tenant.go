package models

import (
	"regexp"
	"strings"
	"time"

	apperrors "org-tenancy-backend/internal/errors"
)

// Master collection names
const (
	OrganizationsCollection = "organizations"
	UsersCollection         = "users"
)

const collectionPrefix = "org_"

var collectionNamePattern = regexp.MustCompile(`^org_[a-z0-9_-]{1,59}$`)

// CollectionName identifies one tenant's collection. Values are only produced by
// NewCollectionName or ParseCollectionName, so they always match the allowlist.
type CollectionName string

// NewCollectionName derives the tenant collection name for an organization:
// "org_" + lower-cased name with spaces replaced by underscores.
func NewCollectionName(organizationName string) (CollectionName, error) {
	if strings.TrimSpace(organizationName) == "" {
		return "", apperrors.ErrOrganizationNameEmpty
	}
	derived := collectionPrefix + strings.ReplaceAll(strings.ToLower(organizationName), " ", "_")
	return ParseCollectionName(derived)
}

// ParseCollectionName validates a stored collection name
func ParseCollectionName(name string) (CollectionName, error) {
	if !collectionNamePattern.MatchString(name) {
		return "", apperrors.ErrInvalidCollectionName
	}
	return CollectionName(name), nil
}

func (c CollectionName) String() string {
	return string(c)
}

// TenantMetadata is the document every tenant collection is seeded with
type TenantMetadata struct {
	Type      string    `json:"type" bson:"type"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// NewTenantMetadata builds the seed document for a freshly provisioned tenant
func NewTenantMetadata(now time.Time) *TenantMetadata {
	return &TenantMetadata{Type: "metadata", CreatedAt: now.UTC()}
}

// TenantDocument is the row shape of a tenant table on the Postgres driver
type TenantDocument struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	Document  []byte    `gorm:"type:jsonb;not null"`
	CreatedAt time.Time `gorm:"not null"`
}
