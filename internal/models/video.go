package models

// VideoLesson represents the lesson link embedded in a video record
type VideoLesson struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	CourseID         string `json:"courseId,omitempty"`
	LessonCategoryID string `json:"lessonCategoryId,omitempty"`
}

// Video represents a stored media asset in the library
type Video struct {
	ID                string       `json:"id"`
	FileName          string       `json:"fileName"`
	FileSize          int64        `json:"fileSize"`
	FormattedSize     string       `json:"formattedSize,omitempty"`
	FormattedDuration string       `json:"formattedDuration,omitempty"`
	CreatedAt         string       `json:"createdAt,omitempty"`
	SourceURL         string       `json:"sourceUrl,omitempty"`
	ThumbnailURL      string       `json:"thumbnailUrl,omitempty"`
	Lesson            *VideoLesson `json:"lesson,omitempty"`
}

// IsAssigned reports whether the video is linked to a lesson
func (v Video) IsAssigned() bool {
	return v.Lesson != nil && v.Lesson.ID != ""
}

// PageMeta represents pagination metadata for a video page
type PageMeta struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	Total       int64 `json:"total"`
	HasNext     bool  `json:"hasNext"`
}

// VideoStatistics represents aggregate statistics derived from the
// currently loaded page of videos (not the whole remote library)
type VideoStatistics struct {
	Assigned      int   `json:"assigned"`
	Unassigned    int   `json:"unassigned"`
	TotalFileSize int64 `json:"totalFileSize"`
}

// VideoFilters represents the search and filter parameters for a video page
type VideoFilters struct {
	Search     string `json:"search,omitempty"`
	CourseID   string `json:"courseId,omitempty"`
	CategoryID string `json:"categoryId,omitempty"`
	Assigned   bool   `json:"assigned,omitempty"`
	Unassigned bool   `json:"unassigned,omitempty"`
}

// AssignVideoRequest represents a request to link a video to a lesson
type AssignVideoRequest struct {
	LessonID string `json:"lessonId"`
}

// SelectRequest represents a selection change in the assignment flow
type SelectRequest struct {
	CourseID   *string `json:"courseId,omitempty"`
	CategoryID *string `json:"categoryId,omitempty"`
	LessonID   *string `json:"lessonId,omitempty"`
}
