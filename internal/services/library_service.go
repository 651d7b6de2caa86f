package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/coursedesk/media-library/internal/assignment"
	"github.com/coursedesk/media-library/internal/catalog"
	"github.com/coursedesk/media-library/internal/clients"
	"github.com/coursedesk/media-library/internal/models"
	"github.com/coursedesk/media-library/internal/roster"
	"github.com/coursedesk/media-library/internal/thumbnail"
)

// Validation and state errors reported before any network call
var (
	ErrNoActiveAssignment = errors.New("no assignment in progress")
	ErrNoCourseSelected   = errors.New("no course selected")
	ErrNoLessonSelected   = errors.New("no lesson selected")
	ErrVideoNotFound      = errors.New("video not found on the current page")
)

// LibraryClient defines the operations the engine consumes from the
// remote lesson and video library services
type LibraryClient interface {
	// FetchLessons retrieves the full lesson list
	//
	// "ctx" is the context for the request.
	//
	// Returns the lessons and an error if any.
	FetchLessons(ctx context.Context) ([]models.Lesson, error)
	// FetchVideos retrieves one page of videos
	//
	// "ctx" is the context for the request.
	// "filters" are the search and filter parameters.
	// "page" is the page number to retrieve.
	// "perPage" is the number of items per page.
	//
	// Returns the videos, pagination metadata and an error if any.
	FetchVideos(ctx context.Context, filters models.VideoFilters, page, perPage int) ([]models.Video, models.PageMeta, error)
	// AssignVideo links a video to a lesson
	//
	// "ctx" is the context for the request.
	// "videoID" is the ID of the video.
	// "lessonID" is the ID of the lesson.
	//
	// Returns an error if any.
	AssignVideo(ctx context.Context, videoID, lessonID string) error
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

// defaultPerPage is the roster page size
const defaultPerPage = 12

// LibraryService owns the media-library state for one dashboard session:
// the lesson catalog, the video roster and the assignment interaction in
// progress. All derivations are synchronous; only the catalog and roster
// loads and the three mutations touch the network.
type LibraryService struct {
	client    LibraryClient
	catalog   *catalog.Catalog
	resolver  *assignment.Resolver
	roster    *roster.Roster
	lessons   []models.Lesson
	selection *assignment.Selection
	perPage   int
}

// NewLibraryService creates a new library service
func NewLibraryService(client LibraryClient, locale string) *LibraryService {
	return &LibraryService{
		client:   client,
		catalog:  catalog.New(locale),
		resolver: assignment.NewResolver(locale),
		roster:   roster.New(),
		perPage:  defaultPerPage,
	}
}

// RefreshLessons loads the lesson catalog from the lesson service. A
// failed load keeps the previous catalog in place; a cancelled load is a
// silent no-op.
func (s *LibraryService) RefreshLessons(ctx context.Context) error {
	raw, err := s.client.FetchLessons(ctx)
	if err != nil {
		if errors.Is(err, clients.ErrCancelled) {
			return nil
		}
		return fmt.Errorf("failed to load lesson catalog: %w", err)
	}

	s.lessons = s.catalog.Normalize(raw)
	return nil
}

// Lessons returns the normalized lesson catalog
func (s *LibraryService) Lessons() []models.Lesson {
	return s.lessons
}

// Courses returns the distinct courses referenced by the catalog
func (s *LibraryService) Courses() []models.Course {
	return s.catalog.CourseIndex(s.lessons)
}

// Categories returns the filter-options category view for a course,
// including the uncategorized bucket when applicable
func (s *LibraryService) Categories(courseID string) []models.Category {
	return s.catalog.CategoryIndex(s.lessons, courseID)
}

// HasRealCategories reports whether the course has at least one lesson
// with an explicit category
func (s *LibraryService) HasRealCategories(courseID string) bool {
	return catalog.HasRealCategories(s.lessons, courseID)
}

// LoadVideos fetches the roster page given by the current filters and
// page position. On failure the roster is cleared to an explicit error
// state; a cancelled load leaves the previous page untouched.
func (s *LibraryService) LoadVideos(ctx context.Context) error {
	videos, meta, err := s.client.FetchVideos(ctx, s.roster.Filters(), s.roster.Page(), s.perPage)
	if err != nil {
		if errors.Is(err, clients.ErrCancelled) {
			return nil
		}
		loadErr := fmt.Errorf("failed to load videos: %w", err)
		s.roster.Clear(loadErr)
		return loadErr
	}

	s.roster.SetPage(videos, meta)
	return nil
}

// Videos returns the current roster page
func (s *LibraryService) Videos() []models.Video {
	return s.roster.Videos()
}

// PageMeta returns the pagination metadata of the current roster page
func (s *LibraryService) PageMeta() models.PageMeta {
	return s.roster.Meta()
}

// RosterError returns the error of the last failed roster load, if any
func (s *LibraryService) RosterError() error {
	return s.roster.Err()
}

// Statistics returns the page-scoped roster statistics
func (s *LibraryService) Statistics() models.VideoStatistics {
	return s.roster.Statistics()
}

// Filters returns the current roster filters
func (s *LibraryService) Filters() models.VideoFilters {
	return s.roster.Filters()
}

// SetSearch updates the roster search filter
func (s *LibraryService) SetSearch(search string) {
	s.roster.SetSearch(search)
}

// SetCourseFilter updates the roster course filter, resetting the
// category filter in cascade
func (s *LibraryService) SetCourseFilter(courseID string) {
	s.roster.SetCourseFilter(courseID)
}

// SetCategoryFilter updates the roster category filter
func (s *LibraryService) SetCategoryFilter(categoryID string) {
	s.roster.SetCategoryFilter(categoryID)
}

// SetAssignmentFilter updates the assigned/unassigned roster filters
func (s *LibraryService) SetAssignmentFilter(assigned, unassigned bool) {
	s.roster.SetAssignmentFilter(assigned, unassigned)
}

// GoToPage moves the roster to the given page
func (s *LibraryService) GoToPage(page int) {
	s.roster.GoToPage(page)
}

// Thumbnail resolves the preview image URL for a video, or empty if the
// caller should render a placeholder
func (s *LibraryService) Thumbnail(video models.Video) string {
	return thumbnail.Resolve(video)
}

// OpenAssignment starts the assignment interaction for a video on the
// current page, seeding the selection from its existing lesson link
func (s *LibraryService) OpenAssignment(videoID string) (*assignment.Selection, error) {
	video := s.roster.FindVideo(videoID)
	if video == nil {
		return nil, ErrVideoNotFound
	}

	s.selection = assignment.NewSelection(video)
	return s.selection, nil
}

// CloseAssignment discards the selection in progress
func (s *LibraryService) CloseAssignment() {
	s.selection = nil
}

// Selection returns the assignment selection in progress, or nil
func (s *LibraryService) Selection() *assignment.Selection {
	return s.selection
}

// SelectCourse sets the selected course, clearing category and lesson.
// It is a no-op when no assignment is in progress.
func (s *LibraryService) SelectCourse(courseID string) {
	s.selection.SelectCourse(courseID)
}

// SelectCategory sets the selected category, clearing the lesson.
// It is a no-op when no assignment is in progress.
func (s *LibraryService) SelectCategory(categoryID string) {
	s.selection.SelectCategory(categoryID)
}

// SelectLesson sets the selected lesson.
// It is a no-op when no assignment is in progress.
func (s *LibraryService) SelectLesson(lessonID string) {
	s.selection.SelectLesson(lessonID)
}

// AvailableLessons returns the lessons selectable for the video being
// assigned, given the current selection and the lessons already linked
// to videos on the loaded page
func (s *LibraryService) AvailableLessons() []models.Lesson {
	return s.resolver.AvailableLessons(s.lessons, s.roster.AssignedLessonIDs(), s.selection)
}

// SubmitAssignment validates the selection chain locally, links the
// target video to the selected lesson and reloads the current roster
// page so the new assignment is observed. A cancelled mutation is
// swallowed and leaves the selection open.
func (s *LibraryService) SubmitAssignment(ctx context.Context) error {
	if s.selection == nil || s.selection.TargetVideo == nil {
		return ErrNoActiveAssignment
	}
	if s.selection.CourseID == "" {
		return ErrNoCourseSelected
	}
	if s.selection.LessonID == "" {
		return ErrNoLessonSelected
	}

	err := s.client.AssignVideo(ctx, s.selection.TargetVideo.ID, s.selection.LessonID)
	if err != nil {
		if errors.Is(err, clients.ErrCancelled) {
			return nil
		}
		return fmt.Errorf("failed to assign video: %w", err)
	}

	s.selection = nil
	return s.LoadVideos(ctx)
}

// DetachVideo removes the lesson link from a video and reloads the
// current roster page
func (s *LibraryService) DetachVideo(ctx context.Context, videoID string) error {
	if err := s.client.DetachVideo(ctx, videoID); err != nil {
		if errors.Is(err, clients.ErrCancelled) {
			return nil
		}
		return fmt.Errorf("failed to detach video: %w", err)
	}
	return s.LoadVideos(ctx)
}

// DeleteVideo removes a video from the library and reloads the current
// roster page
func (s *LibraryService) DeleteVideo(ctx context.Context, videoID string) error {
	if err := s.client.DeleteVideo(ctx, videoID); err != nil {
		if errors.Is(err, clients.ErrCancelled) {
			return nil
		}
		return fmt.Errorf("failed to delete video: %w", err)
	}
	return s.LoadVideos(ctx)
}
