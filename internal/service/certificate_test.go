package service

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillbridge/skillbridge/internal/dberr"
	"github.com/skillbridge/skillbridge/internal/models"
	"github.com/skillbridge/skillbridge/internal/transport"
)

var validationCodeRe = regexp.MustCompile(`^[0-9A-F]{20}$`)

func TestCertificateService_Create(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &CertificateService{Repo: r}
	ctx := context.Background()

	user := seedUser(t, r)
	course := seedCourse(t, r)

	cert, err := svc.Create(ctx, transport.CreateCertificateRequest{
		Description: "Completed with distinction",
		UserID:      user.ID,
		CourseID:    course.ID,
	})
	require.NoError(t, err)
	require.NotZero(t, cert.ID)
	assert.False(t, cert.IssuedAt.IsZero())
	assert.Regexp(t, validationCodeRe, cert.ValidationCode)

	got, err := svc.Get(ctx, cert.ID)
	require.NoError(t, err)
	require.NotNil(t, got.User)
	require.NotNil(t, got.Course)
	assert.Equal(t, user.Name, got.User.Name)
	assert.Equal(t, course.Name, got.Course.Name)
}

func TestCertificateService_Create_CodesAreUnique(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &CertificateService{Repo: r}
	ctx := context.Background()

	user := seedUser(t, r)
	course := seedCourse(t, r)

	seen := make(map[string]bool)
	for range 5 {
		cert, err := svc.Create(ctx, transport.CreateCertificateRequest{
			UserID:   user.ID,
			CourseID: course.ID,
		})
		require.NoError(t, err)
		assert.False(t, seen[cert.ValidationCode])
		seen[cert.ValidationCode] = true
	}
}

func TestCertificateService_Create_MissingReferences(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &CertificateService{Repo: r}
	ctx := context.Background()

	user := seedUser(t, r)
	course := seedCourse(t, r)

	tests := []struct {
		name        string
		userID      uint
		courseID    uint
		wantField   string
		wantMessage string
	}{
		{name: "unknown user", userID: 9999, courseID: course.ID, wantField: "user_id", wantMessage: "User not found"},
		{name: "unknown course", userID: user.ID, courseID: 9999, wantField: "course_id", wantMessage: "Course not found"},
		// The user check runs first, so it wins when both are missing.
		{name: "both unknown", userID: 9999, courseID: 8888, wantField: "user_id", wantMessage: "User not found"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, transport.CreateCertificateRequest{
				UserID:   tt.userID,
				CourseID: tt.courseID,
			})
			require.Error(t, err)

			var conflict *dberr.Conflict
			require.ErrorAs(t, err, &conflict)
			assert.Equal(t, dberr.KindForeignKey, conflict.Kind)
			assert.Equal(t, tt.wantField, conflict.Field)
			assert.Equal(t, tt.wantMessage, conflict.Message)
		})
	}

	assert.EqualValues(t, 0, countRows(t, r, &models.Certificate{}))
}

func TestCertificateService_Create_Validation(t *testing.T) {
	t.Parallel()

	svc := &CertificateService{Repo: newTestRepo(t)}
	ctx := context.Background()

	_, err := svc.Create(ctx, transport.CreateCertificateRequest{CourseID: 1})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(ctx, transport.CreateCertificateRequest{UserID: 1})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCertificateService_Update_OnlyDescription(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &CertificateService{Repo: r}
	ctx := context.Background()

	user := seedUser(t, r)
	course := seedCourse(t, r)
	cert := seedCertificate(t, r, user.ID, course.ID)

	require.NoError(t, svc.Update(ctx, cert.ID, transport.UpdateCertificateRequest{
		Description: "Reissued after review",
	}))

	got, err := svc.Get(ctx, cert.ID)
	require.NoError(t, err)
	assert.Equal(t, "Reissued after review", got.Description)
	assert.Equal(t, cert.ValidationCode, got.ValidationCode)
	assert.Equal(t, cert.UserID, got.UserID)
	assert.Equal(t, cert.CourseID, got.CourseID)
	assert.WithinDuration(t, cert.IssuedAt, got.IssuedAt, time.Second)
}

func TestCertificateService_Delete(t *testing.T) {
	t.Parallel()

	r := newTestRepo(t)
	svc := &CertificateService{Repo: r}
	ctx := context.Background()

	user := seedUser(t, r)
	course := seedCourse(t, r)
	cert := seedCertificate(t, r, user.ID, course.ID)

	require.NoError(t, svc.Delete(ctx, cert.ID))
	assert.EqualValues(t, 0, countRows(t, r, &models.Certificate{}))
}
