package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"org-tenancy-backend/internal/config"
	apperrors "org-tenancy-backend/internal/errors"
	"org-tenancy-backend/internal/logger"
	"org-tenancy-backend/internal/repository"
	"org-tenancy-backend/internal/service"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// OrganizationData is one organization entry of a seed file
type OrganizationData struct {
	Name     string `yaml:"organization_name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// OrganizationsFile is the layout of scripts/data/**/organizations*.yaml
type OrganizationsFile struct {
	Organizations []OrganizationData `yaml:"organizations"`
}

func main() {
	log.Println("loading initial data from YAML files")

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Setup("warn", os.Stdout)

	repos, closeStore, err := connectWithRetry(cfg, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to store: %v", err)
	}
	defer func() {
		if err := closeStore(context.Background()); err != nil {
			log.Printf("Failed to close store: %v", err)
		}
	}()

	orgService := service.NewOrganizationService(repos.Organizations, repos.Users, repos.Tenants, service.NewValidator())

	created, skipped, err := loadDataFromYAMLFiles(context.Background(), orgService, "scripts/data")
	if err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Printf("initial data loaded: organizations created=%d skipped=%d", created, skipped)
}

func connectWithRetry(cfg *config.Config, maxAttempts int, delay time.Duration) (*repository.Set, repository.CloseFunc, error) {
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		repos, closeStore, err := repository.Open(ctx, cfg)
		cancel()
		if err == nil {
			return repos, closeStore, nil
		}
		if apperrors.IsConfiguration(err) {
			return nil, nil, err
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Store not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, nil, fmt.Errorf("store not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(ctx context.Context, orgService service.OrganizationServiceInterface, dataDir string) (int, int, error) {
	orgs, err := loadOrganizations(dataDir)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to read organizations: %w", err)
	}

	created, skipped := 0, 0
	for _, org := range orgs {
		ok, err := createOrganization(ctx, orgService, org)
		if err != nil {
			return created, skipped, fmt.Errorf("organization %q: %w", org.Name, err)
		}
		if ok {
			created++
			log.Printf("  + %s", org.Name)
		} else {
			skipped++
		}
	}
	return created, skipped, nil
}

func loadOrganizations(dataDir string) ([]OrganizationData, error) {
	var allOrgs []OrganizationData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(filepath.Base(path), "organizations") {
			var file OrganizationsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}

			allOrgs = append(allOrgs, file.Organizations...)
		}
		return nil
	})

	return allOrgs, err
}

// createOrganization reports false when the organization already exists
func createOrganization(ctx context.Context, orgService service.OrganizationServiceInterface, orgData OrganizationData) (bool, error) {
	_, err := orgService.Create(ctx, &service.CreateOrganizationRequest{
		Name:     orgData.Name,
		Email:    orgData.Email,
		Password: orgData.Password,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrOrganizationExists) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
