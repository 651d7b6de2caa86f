// Package roster holds one fetched page of the video library together
// with its pagination metadata and filter parameters.
package roster

import (
	"github.com/coursedesk/media-library/internal/models"
)

// Roster is the paginated, filtered collection of video records for the
// current session. It is either populated or in an explicit error state,
// never both.
type Roster struct {
	videos  []models.Video
	meta    models.PageMeta
	filters models.VideoFilters
	page    int
	loadErr error
}

// New creates an empty roster positioned on page 1
func New() *Roster {
	return &Roster{page: 1}
}

// SetPage replaces the roster with a freshly fetched page and clears any
// previous error state
func (r *Roster) SetPage(videos []models.Video, meta models.PageMeta) {
	r.videos = videos
	r.meta = meta
	if meta.CurrentPage > 0 {
		r.page = meta.CurrentPage
	}
	r.loadErr = nil
}

// Clear empties the roster and records the load failure
func (r *Roster) Clear(err error) {
	r.videos = nil
	r.meta = models.PageMeta{}
	r.loadErr = err
}

// Videos returns the current page of videos
func (r *Roster) Videos() []models.Video {
	return r.videos
}

// Meta returns the pagination metadata of the current page
func (r *Roster) Meta() models.PageMeta {
	return r.meta
}

// Err returns the error of the last failed load, or nil if the roster is
// populated
func (r *Roster) Err() error {
	return r.loadErr
}

// Page returns the page the roster is positioned on
func (r *Roster) Page() int {
	return r.page
}

// GoToPage moves the roster to the given page without touching filters
func (r *Roster) GoToPage(page int) {
	if page < 1 {
		page = 1
	}
	r.page = page
}

// Filters returns the current filter parameters
func (r *Roster) Filters() models.VideoFilters {
	return r.filters
}

// SetSearch updates the search filter and resets pagination
func (r *Roster) SetSearch(search string) {
	r.filters.Search = search
	r.page = 1
}

// SetCourseFilter updates the course filter. The category filter is reset
// in cascade, mirroring the selection rule in the assignment flow, and
// pagination returns to page 1.
func (r *Roster) SetCourseFilter(courseID string) {
	r.filters.CourseID = courseID
	r.filters.CategoryID = ""
	r.page = 1
}

// SetCategoryFilter updates the category filter and resets pagination
func (r *Roster) SetCategoryFilter(categoryID string) {
	r.filters.CategoryID = categoryID
	r.page = 1
}

// SetAssignmentFilter updates the assigned/unassigned filters and resets
// pagination
func (r *Roster) SetAssignmentFilter(assigned, unassigned bool) {
	r.filters.Assigned = assigned
	r.filters.Unassigned = unassigned
	r.page = 1
}

// Statistics derives aggregate statistics from the current page only.
// The counts and size are page-scoped, not library-wide totals.
func (r *Roster) Statistics() models.VideoStatistics {
	stats := models.VideoStatistics{}
	for _, video := range r.videos {
		if video.IsAssigned() {
			stats.Assigned++
		} else {
			stats.Unassigned++
		}
		stats.TotalFileSize += video.FileSize
	}
	return stats
}

// AssignedLessonIDs returns the set of lesson IDs linked to videos on the
// current page. Lessons assigned to videos on pages that are not loaded
// are not included; this is a documented scope limit of the design.
func (r *Roster) AssignedLessonIDs() map[string]struct{} {
	ids := make(map[string]struct{})
	for _, video := range r.videos {
		if video.IsAssigned() {
			ids[video.Lesson.ID] = struct{}{}
		}
	}
	return ids
}

// FindVideo returns the video with the given ID from the current page, or
// nil if it is not on this page
func (r *Roster) FindVideo(id string) *models.Video {
	for i := range r.videos {
		if r.videos[i].ID == id {
			return &r.videos[i]
		}
	}
	return nil
}
