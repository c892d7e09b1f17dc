package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/skillbridge/skillbridge/internal/models"
	"github.com/skillbridge/skillbridge/internal/repo"
	"github.com/skillbridge/skillbridge/internal/transport"
)

// newTestRepo opens a fresh in-memory database with foreign keys enforced,
// so constraint violations in tests come from the real engine.
func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Company{},
		&models.JobPosting{},
		&models.Course{},
		&models.Certificate{},
	))

	t.Cleanup(func() { _ = sqlDB.Close() })

	return &repo.GormRepo{DB: db}
}

func uniqueEmail() string {
	return fmt.Sprintf("u_%s@example.com", uuid.NewString()[:8])
}

func seedUser(t *testing.T, r *repo.GormRepo) *models.User {
	t.Helper()

	svc := &UserService{Repo: r}
	user, err := svc.Create(context.Background(), transport.CreateUserRequest{
		Name:       "Ana Souza",
		Email:      uniqueEmail(),
		Password:   "Secret123",
		NationalID: uuid.NewString()[:14],
	})
	require.NoError(t, err)
	return user
}

func seedCompany(t *testing.T, r *repo.GormRepo) *models.Company {
	t.Helper()

	svc := &CompanyService{Repo: r}
	company, err := svc.Create(context.Background(), transport.CompanyRequest{
		LegalName: "Acme Ltda",
		TaxID:     uuid.NewString()[:18],
		Email:     "contact@acme.example",
	})
	require.NoError(t, err)
	return company
}

func seedCourse(t *testing.T, r *repo.GormRepo) *models.Course {
	t.Helper()

	svc := &CourseService{Repo: r}
	course, err := svc.Create(context.Background(), transport.CourseRequest{
		Name:        "Sustainable Farming",
		Description: "Soil health and crop rotation",
		Hours:       40,
	})
	require.NoError(t, err)
	return course
}

func seedCertificate(t *testing.T, r *repo.GormRepo, userID, courseID uint) *models.Certificate {
	t.Helper()

	svc := &CertificateService{Repo: r}
	cert, err := svc.Create(context.Background(), transport.CreateCertificateRequest{
		Description: "Completed with distinction",
		UserID:      userID,
		CourseID:    courseID,
	})
	require.NoError(t, err)
	return cert
}

func countRows(t *testing.T, r *repo.GormRepo, model any) int64 {
	t.Helper()

	var total int64
	require.NoError(t, r.DB.Model(model).Count(&total).Error)
	return total
}
