package assignment

import (
	"sort"

	"golang.org/x/text/collate"

	"github.com/coursedesk/media-library/internal/catalog"
	"github.com/coursedesk/media-library/internal/models"
)

// Resolver computes the lessons selectable for the video being assigned.
// It is pure: absence of a selection yields an empty list, never an error.
type Resolver struct {
	collator *collate.Collator
}

// NewResolver creates a resolver sorting its results with the given
// display locale
func NewResolver(locale string) *Resolver {
	return &Resolver{collator: catalog.NewCollator(locale)}
}

// AvailableLessons returns the ordered list of lessons the user may pick
// for the selection's target video.
//
// "lessons" is the full normalized lesson catalog.
// "assignedIDs" is the set of lesson IDs linked to any video on the
// currently loaded roster page. This scope is deliberate: a lesson
// assigned to a video on another page is not excluded.
// "sel" is the selection in progress.
//
// The lesson currently linked to the target video is exempt from the
// category and assigned-elsewhere filters so that reopening the
// interaction always shows the existing link.
func (r *Resolver) AvailableLessons(lessons []models.Lesson, assignedIDs map[string]struct{}, sel *Selection) []models.Lesson {
	if sel == nil || sel.CourseID == "" {
		return []models.Lesson{}
	}

	hasRealCategories := catalog.HasRealCategories(lessons, sel.CourseID)
	currentLessonID := sel.CurrentLessonID()

	available := make([]models.Lesson, 0)
	for _, lesson := range lessons {
		if lesson.CourseID != sel.CourseID {
			continue
		}

		isCurrent := currentLessonID != "" && lesson.ID == currentLessonID

		if sel.CategoryID == "" {
			// A course with real categories requires one to be picked
			// before its lessons are offered, except the current lesson
			if hasRealCategories && !isCurrent {
				continue
			}
		} else if lesson.ResolvedCategoryID() != sel.CategoryID && !isCurrent {
			continue
		}

		if _, taken := assignedIDs[lesson.ID]; taken && !isCurrent {
			continue
		}

		available = append(available, lesson)
	}

	sort.SliceStable(available, func(i, j int) bool {
		return r.collator.CompareString(available[i].Name, available[j].Name) < 0
	})
	return available
}
