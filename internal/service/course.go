package service

import (
	"context"

	"github.com/skillbridge/skillbridge/internal/dberr"
	"github.com/skillbridge/skillbridge/internal/logging"
	"github.com/skillbridge/skillbridge/internal/models"
	"github.com/skillbridge/skillbridge/internal/repo"
	"github.com/skillbridge/skillbridge/internal/search"
	"github.com/skillbridge/skillbridge/internal/transport"
)

type CourseService struct {
	Repo  *repo.GormRepo
	Index *search.CourseIndex
}

func (s *CourseService) Get(ctx context.Context, id uint) (*models.Course, error) {
	return s.Repo.GetCourse(ctx, id)
}

func (s *CourseService) List(ctx context.Context, offset, limit int) (int64, []models.Course, error) {
	return s.Repo.ListCourses(ctx, offset, limit)
}

func (s *CourseService) Search(ctx context.Context, query string, from, size int) (int64, []models.Course, error) {
	return s.Index.Search(ctx, query, from, size)
}

func (s *CourseService) Create(ctx context.Context, req transport.CourseRequest) (*models.Course, error) {
	l := logging.FromContext(ctx).With("svc", "course.create")

	if req.Name == "" {
		return nil, validationError("name is required")
	}
	if req.Hours < 0 {
		return nil, validationError("hours cannot be negative")
	}

	course := &models.Course{
		Name:        req.Name,
		Description: req.Description,
		Hours:       req.Hours,
	}

	if err := s.Repo.CreateCourse(ctx, course); err != nil {
		if conflict := dberr.Translate(dberr.Courses, err); conflict != nil {
			l.Warn("create_conflict", "field", conflict.Field)
			return nil, conflict
		}
		l.Error("create_error", "error", err)
		return nil, err
	}

	if err := s.Index.Store(ctx, course); err != nil {
		l.Error("index_failed", "id", course.ID, "error", err)
	}

	l.Info("course_created", "id", course.ID)
	return course, nil
}

func (s *CourseService) Update(ctx context.Context, id uint, req transport.CourseRequest) error {
	l := logging.FromContext(ctx).With("svc", "course.update", "id", id)

	if req.Name == "" {
		return validationError("name is required")
	}
	if req.Hours < 0 {
		return validationError("hours cannot be negative")
	}

	course, err := s.Repo.GetCourse(ctx, id)
	if err != nil {
		return err
	}

	course.Name = req.Name
	course.Description = req.Description
	course.Hours = req.Hours

	if err := s.Repo.SaveCourse(ctx, course); err != nil {
		if conflict := dberr.Translate(dberr.Courses, err); conflict != nil {
			l.Warn("update_conflict", "field", conflict.Field)
			return conflict
		}
		l.Error("update_error", "error", err)
		return err
	}

	if err := s.Index.Store(ctx, course); err != nil {
		l.Error("index_failed", "id", course.ID, "error", err)
	}

	l.Info("course_updated")
	return nil
}

// Delete fails with a referential conflict while any certificate still
// references the course; the row is left untouched.
func (s *CourseService) Delete(ctx context.Context, id uint) error {
	l := logging.FromContext(ctx).With("svc", "course.delete", "id", id)

	if err := s.Repo.DeleteCourse(ctx, id); err != nil {
		if conflict := dberr.Translate(dberr.Courses, err); conflict != nil {
			l.Warn("delete_conflict", "field", conflict.Field)
			return conflict
		}
		return err
	}

	if err := s.Index.Remove(ctx, id); err != nil {
		l.Error("index_remove_failed", "id", id, "error", err)
	}

	l.Info("course_deleted")
	return nil
}
