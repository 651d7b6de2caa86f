package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coursedesk/media-library/internal/assignment"
	"github.com/coursedesk/media-library/internal/models"
	"github.com/coursedesk/media-library/internal/services"
)

// mockLibraryService is a mock implementation of LibraryService
type mockLibraryService struct {
	lessons    []models.Lesson
	courses    []models.Course
	categories []models.Category
	hasReal    bool
	videos     []models.Video
	meta       models.PageMeta
	stats      models.VideoStatistics
	selection  *assignment.Selection
	available  []models.Lesson

	refreshErr error
	loadErr    error
	openErr    error
	submitErr  error
	detachErr  error
	deleteErr  error

	courseFilter   string
	categoryFilter string
	page           int
}

func (m *mockLibraryService) RefreshLessons(ctx context.Context) error { return m.refreshErr }
func (m *mockLibraryService) Lessons() []models.Lesson                 { return m.lessons }
func (m *mockLibraryService) Courses() []models.Course                 { return m.courses }
func (m *mockLibraryService) Categories(courseID string) []models.Category {
	return m.categories
}
func (m *mockLibraryService) HasRealCategories(courseID string) bool { return m.hasReal }
func (m *mockLibraryService) LoadVideos(ctx context.Context) error   { return m.loadErr }
func (m *mockLibraryService) Videos() []models.Video                 { return m.videos }
func (m *mockLibraryService) PageMeta() models.PageMeta              { return m.meta }
func (m *mockLibraryService) Statistics() models.VideoStatistics     { return m.stats }
func (m *mockLibraryService) SetSearch(search string)                {}
func (m *mockLibraryService) SetCourseFilter(courseID string) {
	m.courseFilter = courseID
	m.categoryFilter = ""
}
func (m *mockLibraryService) SetCategoryFilter(categoryID string) { m.categoryFilter = categoryID }
func (m *mockLibraryService) SetAssignmentFilter(assigned, unassigned bool) {}
func (m *mockLibraryService) GoToPage(page int)                             { m.page = page }
func (m *mockLibraryService) Thumbnail(video models.Video) string           { return video.ThumbnailURL }
func (m *mockLibraryService) OpenAssignment(videoID string) (*assignment.Selection, error) {
	if m.openErr != nil {
		return nil, m.openErr
	}
	return m.selection, nil
}
func (m *mockLibraryService) CloseAssignment()                  { m.selection = nil }
func (m *mockLibraryService) Selection() *assignment.Selection  { return m.selection }
func (m *mockLibraryService) SelectCourse(courseID string)      { m.selection.SelectCourse(courseID) }
func (m *mockLibraryService) SelectCategory(categoryID string)  { m.selection.SelectCategory(categoryID) }
func (m *mockLibraryService) SelectLesson(lessonID string)      { m.selection.SelectLesson(lessonID) }
func (m *mockLibraryService) AvailableLessons() []models.Lesson { return m.available }
func (m *mockLibraryService) SubmitAssignment(ctx context.Context) error {
	return m.submitErr
}
func (m *mockLibraryService) DetachVideo(ctx context.Context, videoID string) error {
	return m.detachErr
}
func (m *mockLibraryService) DeleteVideo(ctx context.Context, videoID string) error {
	return m.deleteErr
}

func newTestRouter(svc LibraryService) chi.Router {
	h := NewLibraryHandler(svc, zap.NewNop(), nil)
	r := chi.NewRouter()
	h.RegisterRoutes(r)
	return r
}

func TestLibraryHandler_GetCourses(t *testing.T) {
	svc := &mockLibraryService{courses: []models.Course{{ID: "A", Name: "Course A"}}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/library/courses", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var courses []models.Course
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &courses))
	assert.Equal(t, svc.courses, courses)
}

func TestLibraryHandler_GetCategories_Views(t *testing.T) {
	svc := &mockLibraryService{
		categories: []models.Category{{ID: "c1", Name: "Cat1"}},
		hasReal:    true,
	}
	router := newTestRouter(svc)

	// Default filter view
	req := httptest.NewRequest(http.MethodGet, "/library/courses/A/categories", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "hasRealCategories")

	// Assignment view carries the predicate
	req = httptest.NewRequest(http.MethodGet, "/library/courses/A/categories?view=assignment", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["hasRealCategories"])
}

func TestLibraryHandler_GetVideos_AppliesFilters(t *testing.T) {
	svc := &mockLibraryService{meta: models.PageMeta{CurrentPage: 2}}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/library/videos?courseId=A&categoryId=c1&page=2", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "A", svc.courseFilter)
	assert.Equal(t, "c1", svc.categoryFilter)
	assert.Equal(t, 2, svc.page)
}

func TestLibraryHandler_GetVideos_InvalidPage(t *testing.T) {
	router := newTestRouter(&mockLibraryService{})

	req := httptest.NewRequest(http.MethodGet, "/library/videos?page=zero", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLibraryHandler_GetVideos_ServiceFailure(t *testing.T) {
	svc := &mockLibraryService{loadErr: errors.New("video service down")}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/library/videos", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Contains(t, rec.Body.String(), "video service down")
}

func TestLibraryHandler_OpenAssignment_NotFound(t *testing.T) {
	svc := &mockLibraryService{openErr: services.ErrVideoNotFound}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/library/videos/v9/assignment/open", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLibraryHandler_Select(t *testing.T) {
	svc := &mockLibraryService{
		selection: &assignment.Selection{
			TargetVideo: &models.Video{ID: "v1"},
			CourseID:    "A",
			CategoryID:  "c1",
			LessonID:    "l1",
		},
	}
	router := newTestRouter(svc)

	body := strings.NewReader(`{"courseId":"B"}`)
	req := httptest.NewRequest(http.MethodPost, "/library/videos/v1/assignment/select", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "B", svc.selection.CourseID)
	assert.Empty(t, svc.selection.CategoryID)
	assert.Empty(t, svc.selection.LessonID)
}

func TestLibraryHandler_Select_NoAssignmentInProgress(t *testing.T) {
	router := newTestRouter(&mockLibraryService{})

	body := strings.NewReader(`{"courseId":"A"}`)
	req := httptest.NewRequest(http.MethodPost, "/library/videos/v1/assignment/select", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLibraryHandler_Select_WrongVideo(t *testing.T) {
	svc := &mockLibraryService{
		selection: &assignment.Selection{TargetVideo: &models.Video{ID: "v1"}},
	}
	router := newTestRouter(svc)

	body := strings.NewReader(`{"courseId":"A"}`)
	req := httptest.NewRequest(http.MethodPost, "/library/videos/other/assignment/select", body)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestLibraryHandler_SubmitAssignment_ErrorMapping(t *testing.T) {
	tests := []struct {
		name           string
		submitErr      error
		expectedStatus int
	}{
		{name: "no lesson selected", submitErr: services.ErrNoLessonSelected, expectedStatus: http.StatusUnprocessableEntity},
		{name: "no course selected", submitErr: services.ErrNoCourseSelected, expectedStatus: http.StatusUnprocessableEntity},
		{name: "service failure", submitErr: errors.New("conflict"), expectedStatus: http.StatusBadGateway},
		{name: "success", submitErr: nil, expectedStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockLibraryService{
				selection: &assignment.Selection{TargetVideo: &models.Video{ID: "v1"}},
				submitErr: tt.submitErr,
			}
			router := newTestRouter(svc)

			req := httptest.NewRequest(http.MethodPost, "/library/videos/v1/assignment/submit", nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestLibraryHandler_DetachVideo(t *testing.T) {
	svc := &mockLibraryService{}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/library/videos/v1/assignment", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestLibraryHandler_DeleteVideo_Failure(t *testing.T) {
	svc := &mockLibraryService{deleteErr: errors.New("service down")}
	router := newTestRouter(svc)

	req := httptest.NewRequest(http.MethodDelete, "/library/videos/v1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
}
