package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/coursedesk/media-library/internal/assignment"
	"github.com/coursedesk/media-library/internal/models"
	"github.com/coursedesk/media-library/internal/services"
)

// LibraryService defines the interface for media-library operations
type LibraryService interface {
	// RefreshLessons loads the lesson catalog from the lesson service
	//
	// "ctx" is the context for the request.
	//
	// Returns an error if any. A cancelled load is silent.
	RefreshLessons(ctx context.Context) error
	// Lessons returns the normalized lesson catalog
	Lessons() []models.Lesson
	// Courses returns the distinct courses referenced by the catalog
	Courses() []models.Course
	// Categories returns the filter-options category view for a course
	//
	// "courseID" is the ID of the course.
	//
	// Returns the categories including the uncategorized bucket when applicable.
	Categories(courseID string) []models.Category
	// HasRealCategories reports whether the course has lessons with an
	// explicit category
	//
	// "courseID" is the ID of the course.
	HasRealCategories(courseID string) bool
	// LoadVideos fetches the roster page for the current filters and page
	//
	// "ctx" is the context for the request.
	//
	// Returns an error if any. A cancelled load is silent.
	LoadVideos(ctx context.Context) error
	// Videos returns the current roster page
	Videos() []models.Video
	// PageMeta returns the pagination metadata of the current page
	PageMeta() models.PageMeta
	// Statistics returns the page-scoped roster statistics
	Statistics() models.VideoStatistics
	// SetSearch updates the roster search filter
	SetSearch(search string)
	// SetCourseFilter updates the roster course filter (cascading reset)
	SetCourseFilter(courseID string)
	// SetCategoryFilter updates the roster category filter
	SetCategoryFilter(categoryID string)
	// SetAssignmentFilter updates the assigned/unassigned filters
	SetAssignmentFilter(assigned, unassigned bool)
	// GoToPage moves the roster to the given page
	GoToPage(page int)
	// Thumbnail resolves the preview image URL for a video
	Thumbnail(video models.Video) string
	// OpenAssignment starts the assignment interaction for a video
	//
	// "videoID" is the ID of the video on the current page.
	//
	// Returns the seeded selection and an error if any.
	OpenAssignment(videoID string) (*assignment.Selection, error)
	// CloseAssignment discards the selection in progress
	CloseAssignment()
	// Selection returns the selection in progress, or nil
	Selection() *assignment.Selection
	// SelectCourse sets the selected course (clears category and lesson)
	SelectCourse(courseID string)
	// SelectCategory sets the selected category (clears lesson)
	SelectCategory(categoryID string)
	// SelectLesson sets the selected lesson
	SelectLesson(lessonID string)
	// AvailableLessons returns the lessons selectable for the target video
	AvailableLessons() []models.Lesson
	// SubmitAssignment validates and submits the assignment in progress
	//
	// "ctx" is the context for the request.
	//
	// Returns an error if any. A cancelled mutation is silent.
	SubmitAssignment(ctx context.Context) error
	// DetachVideo removes the lesson link from a video
	//
	// "ctx" is the context for the request.
	// "videoID" is the ID of the video.
	//
	// Returns an error if any.
	DetachVideo(ctx context.Context, videoID string) error
	// DeleteVideo removes a video from the library
	//
	// "ctx" is the context for the request.
	// "videoID" is the ID of the video.
	//
	// Returns an error if any.
	DeleteVideo(ctx context.Context, videoID string) error
}

// LibraryHandler handles HTTP requests for the media library
type LibraryHandler struct {
	BaseHandler
	service  LibraryService
	apiKeyMw func(http.Handler) http.Handler
}

// NewLibraryHandler creates a new library handler
func NewLibraryHandler(svc LibraryService, logger *zap.Logger, apiKeyMw func(http.Handler) http.Handler) *LibraryHandler {
	return &LibraryHandler{
		BaseHandler: BaseHandler{Logger: logger},
		service:     svc,
		apiKeyMw:    apiKeyMw,
	}
}

// RegisterRoutes registers all library handler routes
func (h *LibraryHandler) RegisterRoutes(r chi.Router) {
	r.Route("/library", func(r chi.Router) {
		r.Get("/lessons", h.GetLessons)
		r.Get("/courses", h.GetCourses)
		r.Get("/courses/{id}/categories", h.GetCategories)
		r.Get("/videos", h.GetVideos)
		r.Get("/videos/stats", h.GetStatistics)

		// Mutations require service-to-service authentication
		r.Group(func(r chi.Router) {
			if h.apiKeyMw != nil {
				r.Use(h.apiKeyMw)
			}
			r.Post("/lessons/refresh", h.RefreshLessons)
			r.Post("/videos/{id}/assignment/open", h.OpenAssignment)
			r.Post("/videos/{id}/assignment/select", h.Select)
			r.Get("/videos/{id}/assignment/available", h.GetAvailableLessons)
			r.Post("/videos/{id}/assignment/submit", h.SubmitAssignment)
			r.Delete("/videos/{id}/assignment", h.DetachVideo)
			r.Delete("/videos/{id}", h.DeleteVideo)
		})
	})
}

// GetLessons handles GET /library/lessons
// @Summary Get the lesson catalog
// @Description Retrieve the normalized, sorted lesson catalog
// @Tags library
// @Produce json
// @Success 200 {array} models.Lesson
// @Router /library/lessons [get]
func (h *LibraryHandler) GetLessons(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.service.Lessons())
}

// RefreshLessons handles POST /library/lessons/refresh
// @Summary Refresh the lesson catalog
// @Description Reload the lesson catalog from the lesson service
// @Tags library
// @Produce json
// @Success 200 {array} models.Lesson
// @Failure 502 {object} map[string]string "Lesson service failure"
// @Security ApiKeyAuth
// @Router /library/lessons/refresh [post]
func (h *LibraryHandler) RefreshLessons(w http.ResponseWriter, r *http.Request) {
	if err := h.service.RefreshLessons(r.Context()); err != nil {
		h.Logger.Error("failed to refresh lesson catalog", zap.Error(err))
		h.RespondError(w, http.StatusBadGateway, err.Error())
		return
	}
	h.RespondJSON(w, http.StatusOK, h.service.Lessons())
}

// GetCourses handles GET /library/courses
// @Summary Get the course index
// @Description Retrieve the distinct courses referenced by the lesson catalog
// @Tags library
// @Produce json
// @Success 200 {array} models.Course
// @Router /library/courses [get]
func (h *LibraryHandler) GetCourses(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.service.Courses())
}

// GetCategories handles GET /library/courses/{id}/categories
// @Summary Get the category index for a course
// @Description Retrieve the categories of a course. view=filter returns the filter options including the uncategorized bucket; view=assignment additionally reports whether the course has real categories.
// @Tags library
// @Produce json
// @Param id path string true "Course ID"
// @Param view query string false "View: filter (default) or assignment"
// @Success 200 {object} map[string]any
// @Router /library/courses/{id}/categories [get]
func (h *LibraryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	courseID := chi.URLParam(r, "id")
	categories := h.service.Categories(courseID)

	if r.URL.Query().Get("view") == "assignment" {
		h.RespondJSON(w, http.StatusOK, map[string]any{
			"categories":        categories,
			"hasRealCategories": h.service.HasRealCategories(courseID),
		})
		return
	}
	h.RespondJSON(w, http.StatusOK, map[string]any{"categories": categories})
}

// videoResponse decorates a video with its resolved thumbnail
type videoResponse struct {
	models.Video
	ResolvedThumbnailURL string `json:"resolvedThumbnailUrl,omitempty"`
}

// GetVideos handles GET /library/videos
// @Summary Get a page of videos
// @Description Load one page of the video library with the given filters. Changing courseId resets categoryId; any filter change resets pagination.
// @Tags library
// @Produce json
// @Param page query int false "Page number"
// @Param search query string false "Search query"
// @Param courseId query string false "Course filter"
// @Param categoryId query string false "Category filter"
// @Param assigned query bool false "Only assigned videos"
// @Param unassigned query bool false "Only unassigned videos"
// @Success 200 {object} map[string]any
// @Failure 502 {object} map[string]string "Video service failure"
// @Router /library/videos [get]
func (h *LibraryHandler) GetVideos(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if query.Has("courseId") {
		h.service.SetCourseFilter(query.Get("courseId"))
	}
	if query.Has("categoryId") {
		h.service.SetCategoryFilter(query.Get("categoryId"))
	}
	if query.Has("search") {
		h.service.SetSearch(query.Get("search"))
	}
	if query.Has("assigned") || query.Has("unassigned") {
		h.service.SetAssignmentFilter(query.Get("assigned") == "true", query.Get("unassigned") == "true")
	}
	if pageStr := query.Get("page"); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 1 {
			h.RespondError(w, http.StatusBadRequest, "invalid page")
			return
		}
		h.service.GoToPage(page)
	}

	if err := h.service.LoadVideos(r.Context()); err != nil {
		h.Logger.Error("failed to load videos", zap.Error(err))
		h.RespondError(w, http.StatusBadGateway, err.Error())
		return
	}

	videos := h.service.Videos()
	items := make([]videoResponse, 0, len(videos))
	for _, video := range videos {
		items = append(items, videoResponse{
			Video:                video,
			ResolvedThumbnailURL: h.service.Thumbnail(video),
		})
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"data":  items,
		"meta":  h.service.PageMeta(),
		"stats": h.service.Statistics(),
	})
}

// GetStatistics handles GET /library/videos/stats
// @Summary Get page-scoped video statistics
// @Description Retrieve assigned/unassigned counts and total size for the currently loaded page
// @Tags library
// @Produce json
// @Success 200 {object} models.VideoStatistics
// @Router /library/videos/stats [get]
func (h *LibraryHandler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	h.RespondJSON(w, http.StatusOK, h.service.Statistics())
}

// OpenAssignment handles POST /library/videos/{id}/assignment/open
// @Summary Open the assignment interaction for a video
// @Description Start assigning a video to a lesson, seeding the selection from its existing link
// @Tags assignment
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} assignment.Selection
// @Failure 404 {object} map[string]string "Video not on current page"
// @Security ApiKeyAuth
// @Router /library/videos/{id}/assignment/open [post]
func (h *LibraryHandler) OpenAssignment(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "id")

	sel, err := h.service.OpenAssignment(videoID)
	if err != nil {
		if errors.Is(err, services.ErrVideoNotFound) {
			h.RespondError(w, http.StatusNotFound, "video not found")
			return
		}
		h.Logger.Error("failed to open assignment", zap.Error(err), zap.String("video_id", videoID))
		h.RespondError(w, http.StatusInternalServerError, "failed to open assignment")
		return
	}

	h.RespondJSON(w, http.StatusOK, sel)
}

// Select handles POST /library/videos/{id}/assignment/select
// @Summary Change the assignment selection
// @Description Update the selected course, category or lesson. Changing course clears category and lesson; changing category clears lesson.
// @Tags assignment
// @Accept json
// @Produce json
// @Param id path string true "Video ID"
// @Param request body models.SelectRequest true "Selection change"
// @Success 200 {object} map[string]any
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} map[string]string "No assignment in progress"
// @Security ApiKeyAuth
// @Router /library/videos/{id}/assignment/select [post]
func (h *LibraryHandler) Select(w http.ResponseWriter, r *http.Request) {
	sel := h.service.Selection()
	if sel == nil || sel.TargetVideo == nil || sel.TargetVideo.ID != chi.URLParam(r, "id") {
		h.RespondError(w, http.StatusConflict, "no assignment in progress for this video")
		return
	}

	var req models.SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Apply ancestors first so the cascade clears dependents in order
	if req.CourseID != nil {
		h.service.SelectCourse(*req.CourseID)
	}
	if req.CategoryID != nil {
		h.service.SelectCategory(*req.CategoryID)
	}
	if req.LessonID != nil {
		h.service.SelectLesson(*req.LessonID)
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"selection": h.service.Selection(),
		"available": h.service.AvailableLessons(),
	})
}

// GetAvailableLessons handles GET /library/videos/{id}/assignment/available
// @Summary Get the lessons selectable for the video being assigned
// @Description Compute the available lessons for the current selection, exempting the lesson already linked to the video
// @Tags assignment
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {array} models.Lesson
// @Failure 409 {object} map[string]string "No assignment in progress"
// @Security ApiKeyAuth
// @Router /library/videos/{id}/assignment/available [get]
func (h *LibraryHandler) GetAvailableLessons(w http.ResponseWriter, r *http.Request) {
	sel := h.service.Selection()
	if sel == nil || sel.TargetVideo == nil || sel.TargetVideo.ID != chi.URLParam(r, "id") {
		h.RespondError(w, http.StatusConflict, "no assignment in progress for this video")
		return
	}

	h.RespondJSON(w, http.StatusOK, h.service.AvailableLessons())
}

// SubmitAssignment handles POST /library/videos/{id}/assignment/submit
// @Summary Submit the assignment in progress
// @Description Validate the course-category-lesson chain locally, link the video to the selected lesson and reload the current page
// @Tags assignment
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} map[string]any
// @Failure 409 {object} map[string]string "No assignment in progress"
// @Failure 422 {object} map[string]string "No lesson selected"
// @Failure 502 {object} map[string]string "Video service failure"
// @Security ApiKeyAuth
// @Router /library/videos/{id}/assignment/submit [post]
func (h *LibraryHandler) SubmitAssignment(w http.ResponseWriter, r *http.Request) {
	sel := h.service.Selection()
	if sel == nil || sel.TargetVideo == nil || sel.TargetVideo.ID != chi.URLParam(r, "id") {
		h.RespondError(w, http.StatusConflict, "no assignment in progress for this video")
		return
	}

	if err := h.service.SubmitAssignment(r.Context()); err != nil {
		switch {
		case errors.Is(err, services.ErrNoLessonSelected):
			h.RespondError(w, http.StatusUnprocessableEntity, "no lesson selected")
		case errors.Is(err, services.ErrNoCourseSelected):
			h.RespondError(w, http.StatusUnprocessableEntity, "no course selected")
		case errors.Is(err, services.ErrNoActiveAssignment):
			h.RespondError(w, http.StatusConflict, "no assignment in progress")
		default:
			h.Logger.Error("failed to submit assignment", zap.Error(err))
			h.RespondError(w, http.StatusBadGateway, err.Error())
		}
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"data": h.service.Videos(),
		"meta": h.service.PageMeta(),
	})
}

// DetachVideo handles DELETE /library/videos/{id}/assignment
// @Summary Detach a video from its lesson
// @Description Remove the lesson link from a video and reload the current page
// @Tags assignment
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} map[string]any
// @Failure 502 {object} map[string]string "Video service failure"
// @Security ApiKeyAuth
// @Router /library/videos/{id}/assignment [delete]
func (h *LibraryHandler) DetachVideo(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "id")

	if err := h.service.DetachVideo(r.Context(), videoID); err != nil {
		h.Logger.Error("failed to detach video", zap.Error(err), zap.String("video_id", videoID))
		h.RespondError(w, http.StatusBadGateway, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"data": h.service.Videos(),
		"meta": h.service.PageMeta(),
	})
}

// DeleteVideo handles DELETE /library/videos/{id}
// @Summary Delete a video
// @Description Remove a video from the library entirely and reload the current page
// @Tags library
// @Produce json
// @Param id path string true "Video ID"
// @Success 200 {object} map[string]any
// @Failure 502 {object} map[string]string "Video service failure"
// @Security ApiKeyAuth
// @Router /library/videos/{id} [delete]
func (h *LibraryHandler) DeleteVideo(w http.ResponseWriter, r *http.Request) {
	videoID := chi.URLParam(r, "id")

	if err := h.service.DeleteVideo(r.Context(), videoID); err != nil {
		h.Logger.Error("failed to delete video", zap.Error(err), zap.String("video_id", videoID))
		h.RespondError(w, http.StatusBadGateway, err.Error())
		return
	}

	h.RespondJSON(w, http.StatusOK, map[string]any{
		"data": h.service.Videos(),
		"meta": h.service.PageMeta(),
	})
}
