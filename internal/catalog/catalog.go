// Package catalog derives lookup-friendly views over the lesson list
// returned by the lesson service: the normalized catalog itself, the
// distinct course index and the per-course category index.
package catalog

import (
	"fmt"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/coursedesk/media-library/internal/models"
)

// NewCollator builds a case-insensitive collator for the given display
// locale. Invalid locale tags fall back to English instead of failing.
func NewCollator(locale string) *collate.Collator {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return collate.New(tag, collate.IgnoreCase)
}

// Catalog normalizes and derives indexes over raw lesson lists
type Catalog struct {
	collator *collate.Collator
}

// New creates a catalog using the given display locale for sorting
func New(locale string) *Catalog {
	return &Catalog{collator: NewCollator(locale)}
}

// Normalize copies the raw lesson list into display order: a stable,
// locale-aware, case-insensitive sort by lesson name. Lessons with
// missing optional fields are retained as-is; a lesson without a course
// ID stays in the catalog but is excluded from the derived indexes.
func (c *Catalog) Normalize(raw []models.Lesson) []models.Lesson {
	lessons := make([]models.Lesson, len(raw))
	copy(lessons, raw)
	c.SortLessons(lessons)
	return lessons
}

// SortLessons sorts lessons in place by name, stable and locale-aware
func (c *Catalog) SortLessons(lessons []models.Lesson) {
	sort.SliceStable(lessons, func(i, j int) bool {
		return c.collator.CompareString(lessons[i].Name, lessons[j].Name) < 0
	})
}

// CourseIndex derives the distinct set of courses referenced by the
// catalog, sorted alphabetically. The displayed name is first-seen-wins:
// it is taken from the first lesson carrying a denormalized course name
// and never recomputed from later lessons.
func (c *Catalog) CourseIndex(lessons []models.Lesson) []models.Course {
	seen := make(map[string]int) // course ID -> index into result
	courses := make([]models.Course, 0)

	for _, lesson := range lessons {
		if lesson.CourseID == "" {
			continue
		}
		if _, ok := seen[lesson.CourseID]; ok {
			continue
		}
		name := lesson.CourseName
		if name == "" {
			name = fmt.Sprintf("Course #%s", lesson.CourseID)
		}
		seen[lesson.CourseID] = len(courses)
		courses = append(courses, models.Course{ID: lesson.CourseID, Name: name})
	}

	sort.SliceStable(courses, func(i, j int) bool {
		return c.collator.CompareString(courses[i].Name, courses[j].Name) < 0
	})
	return courses
}

// CategoryIndex derives the ordered category list for a course: all
// distinct real categories sorted alphabetically, plus the synthetic
// uncategorized bucket appended last if and only if at least one lesson
// in the course has no category. This is the "filter options" view used
// by list filtering UIs.
func (c *Catalog) CategoryIndex(lessons []models.Lesson, courseID string) []models.Category {
	if courseID == "" {
		return nil
	}

	seen := make(map[string]struct{})
	categories := make([]models.Category, 0)
	hasUncategorized := false

	for _, lesson := range lessons {
		if lesson.CourseID != courseID {
			continue
		}
		catID := lesson.ResolvedCategoryID()
		if catID == models.UncategorizedID {
			hasUncategorized = true
			continue
		}
		if _, ok := seen[catID]; ok {
			continue
		}
		name := ""
		if lesson.Category != nil && lesson.Category.Name != "" {
			name = lesson.Category.Name
		} else {
			name = fmt.Sprintf("Category #%s", catID)
		}
		seen[catID] = struct{}{}
		categories = append(categories, models.Category{ID: catID, Name: name})
	}

	sort.SliceStable(categories, func(i, j int) bool {
		return c.collator.CompareString(categories[i].Name, categories[j].Name) < 0
	})

	// The sentinel bucket always sorts last, after the real categories
	if hasUncategorized {
		categories = append(categories, models.Category{
			ID:   models.UncategorizedID,
			Name: models.UncategorizedLabel,
		})
	}
	return categories
}

// HasRealCategories reports whether a course has at least one lesson
// with an explicit category. The assignment flow uses it to decide
// whether the category selector must be shown at all.
func HasRealCategories(lessons []models.Lesson, courseID string) bool {
	if courseID == "" {
		return false
	}
	for _, lesson := range lessons {
		if lesson.CourseID != courseID {
			continue
		}
		if lesson.ResolvedCategoryID() != models.UncategorizedID {
			return true
		}
	}
	return false
}
