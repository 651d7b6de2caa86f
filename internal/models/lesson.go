package models

// UncategorizedID is the sentinel category ID for lessons that have no
// explicit category. It is reserved and never collides with a real
// category ID issued by the lesson service.
const UncategorizedID = "__uncategorized__"

// UncategorizedLabel is the display name of the sentinel category
const UncategorizedLabel = "Uncategorized"

// LessonCategory represents the denormalized category embedded in a lesson
type LessonCategory struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Lesson represents a lesson as returned by the lesson service
type Lesson struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	CourseID         string          `json:"courseId,omitempty"`
	CourseName       string          `json:"courseName,omitempty"`
	LessonCategoryID string          `json:"lessonCategoryId,omitempty"`
	Category         *LessonCategory `json:"category,omitempty"`
}

// ResolvedCategoryID returns the category ID the engine treats as the
// source of truth: LessonCategoryID when present, otherwise the
// denormalized category, otherwise the uncategorized sentinel.
func (l Lesson) ResolvedCategoryID() string {
	if l.LessonCategoryID != "" {
		return l.LessonCategoryID
	}
	if l.Category != nil && l.Category.ID != "" {
		return l.Category.ID
	}
	return UncategorizedID
}

// Course represents a course derived from the lessons that reference it
type Course struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Category represents a category within a course, including the synthetic
// uncategorized bucket
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// IsUncategorized reports whether the category is the sentinel bucket
func (c Category) IsUncategorized() bool {
	return c.ID == UncategorizedID
}
