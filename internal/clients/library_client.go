// Package clients provides HTTP clients for the remote lesson and video
// library services
package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/coursedesk/media-library/internal/config"
	"github.com/coursedesk/media-library/internal/models"
)

// ErrCancelled indicates that a request was superseded or aborted by the
// caller. It is not a failure: callers keep their previous state and
// surface nothing to the user.
var ErrCancelled = errors.New("request cancelled")

// defaultPerPage is used when the caller does not specify a page size
const defaultPerPage = 12

// LibraryClient calls the remote lesson and video library services
type LibraryClient struct {
	lessonBaseURL string
	videoBaseURL  string
	apiKey        string
	httpClient    *http.Client
}

// NewLibraryClient creates a new library client
func NewLibraryClient(cfg config.CollaboratorConfig, apiKey string) *LibraryClient {
	return &LibraryClient{
		lessonBaseURL: cfg.LessonServiceURL,
		videoBaseURL:  cfg.VideoServiceURL,
		apiKey:        apiKey,
		httpClient:    &http.Client{Timeout: cfg.RequestTimeout},
	}
}

// lessonListEnvelope is the lesson service list response
type lessonListEnvelope struct {
	Success bool            `json:"success"`
	Data    []models.Lesson `json:"data"`
	Message string          `json:"message,omitempty"`
}

// videoListEnvelope is the video service list response
type videoListEnvelope struct {
	Success bool           `json:"success"`
	Data    []models.Video `json:"data"`
	Meta    struct {
		CurrentPage int   `json:"currentPage"`
		LastPage    int   `json:"lastPage"`
		Total       int64 `json:"total"`
	} `json:"meta"`
	Message string `json:"message,omitempty"`
}

// mutationEnvelope is the response for assign/detach/delete operations
type mutationEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// FetchLessons retrieves the full lesson list from the lesson service
func (c *LibraryClient) FetchLessons(ctx context.Context) ([]models.Lesson, error) {
	var envelope lessonListEnvelope
	if err := c.doJSON(ctx, http.MethodGet, c.lessonBaseURL+"/lessons", nil, &envelope); err != nil {
		return nil, err
	}
	if !envelope.Success {
		return nil, serviceError("failed to fetch lessons", envelope.Message)
	}
	return envelope.Data, nil
}

// FetchVideos retrieves one page of videos from the video library service
//
// "filters" are the search and filter parameters.
// "page" is the page number to retrieve.
// "perPage" is the number of items per page.
//
// Returns the page of videos, pagination metadata and an error if any.
func (c *LibraryClient) FetchVideos(ctx context.Context, filters models.VideoFilters, page, perPage int) ([]models.Video, models.PageMeta, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = defaultPerPage
	}

	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("perPage", strconv.Itoa(perPage))
	if filters.Search != "" {
		query.Set("search", filters.Search)
	}
	if filters.CourseID != "" {
		query.Set("courseId", filters.CourseID)
	}
	if filters.CategoryID != "" {
		query.Set("categoryId", filters.CategoryID)
	}
	if filters.Assigned {
		query.Set("assigned", "true")
	}
	if filters.Unassigned {
		query.Set("unassigned", "true")
	}

	var envelope videoListEnvelope
	reqURL := c.videoBaseURL + "/videos?" + query.Encode()
	if err := c.doJSON(ctx, http.MethodGet, reqURL, nil, &envelope); err != nil {
		return nil, models.PageMeta{}, err
	}
	if !envelope.Success {
		return nil, models.PageMeta{}, serviceError("failed to fetch videos", envelope.Message)
	}

	meta := models.PageMeta{
		CurrentPage: envelope.Meta.CurrentPage,
		TotalPages:  envelope.Meta.LastPage,
		Total:       envelope.Meta.Total,
		HasNext:     envelope.Meta.CurrentPage < envelope.Meta.LastPage,
	}
	if meta.CurrentPage < 1 {
		meta.CurrentPage = page
	}
	return envelope.Data, meta, nil
}

// AssignVideo links a video to a lesson
func (c *LibraryClient) AssignVideo(ctx context.Context, videoID, lessonID string) error {
	body := models.AssignVideoRequest{LessonID: lessonID}
	reqURL := fmt.Sprintf("%s/videos/%s/assign", c.videoBaseURL, url.PathEscape(videoID))
	return c.mutate(ctx, http.MethodPost, reqURL, body, "failed to assign video")
}

// DetachVideo removes the lesson link from a video
func (c *LibraryClient) DetachVideo(ctx context.Context, videoID string) error {
	reqURL := fmt.Sprintf("%s/videos/%s/lesson", c.videoBaseURL, url.PathEscape(videoID))
	return c.mutate(ctx, http.MethodDelete, reqURL, nil, "failed to detach video")
}

// DeleteVideo removes a video from the library entirely
func (c *LibraryClient) DeleteVideo(ctx context.Context, videoID string) error {
	reqURL := fmt.Sprintf("%s/videos/%s", c.videoBaseURL, url.PathEscape(videoID))
	return c.mutate(ctx, http.MethodDelete, reqURL, nil, "failed to delete video")
}

// mutate performs a mutation request and interprets the envelope
func (c *LibraryClient) mutate(ctx context.Context, method, reqURL string, body any, failMsg string) error {
	var envelope mutationEnvelope
	if err := c.doJSON(ctx, method, reqURL, body, &envelope); err != nil {
		return err
	}
	if !envelope.Success {
		return serviceError(failMsg, envelope.Message)
	}
	return nil
}

// doJSON performs an HTTP request and decodes the JSON response into out.
// Context cancellation is mapped to ErrCancelled so callers can treat a
// superseded request as a silent no-op.
func (c *LibraryClient) doJSON(ctx context.Context, method, reqURL string, body, out any) error {
	var reqBody *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || ctx.Err() == context.Canceled {
			return ErrCancelled
		}
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("service returned status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// serviceError builds a failure error, passing through the service message
// when one is provided
func serviceError(fallback, message string) error {
	if message != "" {
		return fmt.Errorf("%s: %s", fallback, message)
	}
	return errors.New(fallback)
}
