package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/elastic/go-elasticsearch/v9"

	"github.com/skillbridge/skillbridge/internal/models"
)

const DefaultCourseIndex = "courses"

// CourseIndex mirrors courses into Elasticsearch for full-text search.
// A nil *CourseIndex is a valid no-op mirror.
type CourseIndex struct {
	ES    *elasticsearch.Client
	Index string
}

func NewCourseIndex(es *elasticsearch.Client, index string) *CourseIndex {
	if es == nil {
		return nil
	}
	if index == "" {
		index = DefaultCourseIndex
	}
	return &CourseIndex{ES: es, Index: index}
}

func NewClient(url, user, password string) (*elasticsearch.Client, error) {
	client, err := elasticsearch.NewClient(elasticsearch.Config{
		Addresses: []string{url},
		Username:  user,
		Password:  password,
	})
	if err != nil {
		return nil, fmt.Errorf("elasticsearch client: %w", err)
	}

	res, err := client.Info()
	if err != nil {
		return nil, fmt.Errorf("elasticsearch info: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("elasticsearch error: %s: %s", res.Status(), body)
	}

	return client, nil
}

func (ci *CourseIndex) Store(ctx context.Context, course *models.Course) error {
	if ci == nil {
		return nil
	}

	data, err := json.Marshal(course)
	if err != nil {
		return fmt.Errorf("index course: %w", err)
	}

	res, err := ci.ES.Index(
		ci.Index,
		bytes.NewReader(data),
		ci.ES.Index.WithContext(ctx),
		ci.ES.Index.WithDocumentID(strconv.FormatUint(uint64(course.ID), 10)),
	)
	if err != nil {
		return fmt.Errorf("index course: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return fmt.Errorf("index course: %s", res.Status())
	}
	return nil
}

func (ci *CourseIndex) Remove(ctx context.Context, id uint) error {
	if ci == nil {
		return nil
	}

	res, err := ci.ES.Delete(
		ci.Index,
		strconv.FormatUint(uint64(id), 10),
		ci.ES.Delete.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("delete course from index: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("delete course from index: %s", res.Status())
	}
	return nil
}

func (ci *CourseIndex) Search(ctx context.Context, query string, from, size int) (int64, []models.Course, error) {
	body := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     query,
				"fields":    []string{"name^2", "description"},
				"fuzziness": "AUTO",
			},
		},
		"from": from,
		"size": size,
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return 0, nil, fmt.Errorf("search courses: %w", err)
	}

	res, err := ci.ES.Search(
		ci.ES.Search.WithContext(ctx),
		ci.ES.Search.WithIndex(ci.Index),
		ci.ES.Search.WithBody(&buf),
	)
	if err != nil {
		return 0, nil, fmt.Errorf("search courses: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		return 0, nil, fmt.Errorf("search courses: %s", res.Status())
	}

	var r struct {
		Hits struct {
			Total struct {
				Value int64 `json:"value"`
			} `json:"total"`
			Hits []struct {
				Source models.Course `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return 0, nil, fmt.Errorf("search courses: decode: %w", err)
	}

	courses := make([]models.Course, len(r.Hits.Hits))
	for i, hit := range r.Hits.Hits {
		courses[i] = hit.Source
	}
	return r.Hits.Total.Value, courses, nil
}
