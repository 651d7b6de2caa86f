package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coursedesk/media-library/internal/models"
)

func TestCatalog_Normalize(t *testing.T) {
	c := New("en")

	raw := []models.Lesson{
		{ID: "3", Name: "zebra basics", CourseID: "A"},
		{ID: "1", Name: "Alpha", CourseID: "A"},
		{ID: "2", Name: "beta", CourseID: "A"},
	}

	lessons := c.Normalize(raw)

	assert.Len(t, lessons, 3)
	assert.Equal(t, "Alpha", lessons[0].Name)
	assert.Equal(t, "beta", lessons[1].Name)
	assert.Equal(t, "zebra basics", lessons[2].Name)
	// Input slice is not mutated
	assert.Equal(t, "zebra basics", raw[0].Name)
}

func TestCatalog_Normalize_CaseInsensitive(t *testing.T) {
	c := New("en")

	lessons := c.Normalize([]models.Lesson{
		{ID: "1", Name: "banana"},
		{ID: "2", Name: "Apple"},
		{ID: "3", Name: "cherry"},
	})

	assert.Equal(t, []string{"Apple", "banana", "cherry"}, []string{lessons[0].Name, lessons[1].Name, lessons[2].Name})
}

func TestCatalog_Normalize_TolerantOfMissingFields(t *testing.T) {
	c := New("en")

	lessons := c.Normalize([]models.Lesson{
		{ID: "1", Name: "Orphan"}, // no course at all
		{ID: "2", Name: "Bare", CourseID: "A"},
	})

	// Lessons without a resolvable course are retained in the catalog
	assert.Len(t, lessons, 2)
}

func TestCatalog_CourseIndex(t *testing.T) {
	tests := []struct {
		name     string
		lessons  []models.Lesson
		expected []models.Course
	}{
		{
			name: "one entry per distinct course",
			lessons: []models.Lesson{
				{ID: "1", Name: "L1", CourseID: "A", CourseName: "Course A"},
				{ID: "2", Name: "L2", CourseID: "A", CourseName: "Course A"},
				{ID: "3", Name: "L3", CourseID: "B", CourseName: "Course B"},
			},
			expected: []models.Course{
				{ID: "A", Name: "Course A"},
				{ID: "B", Name: "Course B"},
			},
		},
		{
			name: "first seen name wins",
			lessons: []models.Lesson{
				{ID: "1", Name: "L1", CourseID: "A", CourseName: "Original Name"},
				{ID: "2", Name: "L2", CourseID: "A", CourseName: "Renamed Later"},
			},
			expected: []models.Course{
				{ID: "A", Name: "Original Name"},
			},
		},
		{
			name: "placeholder for missing course name",
			lessons: []models.Lesson{
				{ID: "1", Name: "L1", CourseID: "42"},
			},
			expected: []models.Course{
				{ID: "42", Name: "Course #42"},
			},
		},
		{
			name: "lessons without a course are excluded",
			lessons: []models.Lesson{
				{ID: "1", Name: "L1"},
				{ID: "2", Name: "L2", CourseID: "A", CourseName: "Course A"},
			},
			expected: []models.Course{
				{ID: "A", Name: "Course A"},
			},
		},
		{
			name:     "empty catalog",
			lessons:  []models.Lesson{},
			expected: []models.Course{},
		},
	}

	c := New("en")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.CourseIndex(tt.lessons))
		})
	}
}

func TestCatalog_CourseIndex_SortedByName(t *testing.T) {
	c := New("en")

	courses := c.CourseIndex([]models.Lesson{
		{ID: "1", Name: "L1", CourseID: "Z", CourseName: "advanced grammar"},
		{ID: "2", Name: "L2", CourseID: "A", CourseName: "Basics"},
	})

	assert.Equal(t, "advanced grammar", courses[0].Name)
	assert.Equal(t, "Basics", courses[1].Name)
}

func TestCatalog_CategoryIndex(t *testing.T) {
	lessons := []models.Lesson{
		{ID: "1", Name: "Intro", CourseID: "A", CourseName: "Course A"},
		{ID: "2", Name: "Adv", CourseID: "A", LessonCategoryID: "c1", Category: &models.LessonCategory{ID: "c1", Name: "Cat1"}},
		{ID: "3", Name: "Other", CourseID: "B", LessonCategoryID: "c9", Category: &models.LessonCategory{ID: "c9", Name: "Cat9"}},
	}

	c := New("en")
	categories := c.CategoryIndex(lessons, "A")

	// Real categories first, uncategorized bucket appended last because
	// lesson 1 has no category
	assert.Equal(t, []models.Category{
		{ID: "c1", Name: "Cat1"},
		{ID: models.UncategorizedID, Name: models.UncategorizedLabel},
	}, categories)
}

func TestCatalog_CategoryIndex_NoUncategorizedWhenAllCategorized(t *testing.T) {
	c := New("en")

	categories := c.CategoryIndex([]models.Lesson{
		{ID: "1", Name: "L1", CourseID: "A", LessonCategoryID: "c1", Category: &models.LessonCategory{ID: "c1", Name: "Cat1"}},
		{ID: "2", Name: "L2", CourseID: "A", LessonCategoryID: "c2", Category: &models.LessonCategory{ID: "c2", Name: "Cat2"}},
	}, "A")

	assert.Len(t, categories, 2)
	for _, cat := range categories {
		assert.False(t, cat.IsUncategorized())
	}
}

func TestCatalog_CategoryIndex_PlaceholderName(t *testing.T) {
	c := New("en")

	categories := c.CategoryIndex([]models.Lesson{
		{ID: "1", Name: "L1", CourseID: "A", LessonCategoryID: "c7"},
	}, "A")

	assert.Equal(t, []models.Category{{ID: "c7", Name: "Category #c7"}}, categories)
}

func TestCatalog_CategoryIndex_DenormalizedCategoryFallback(t *testing.T) {
	c := New("en")

	// lessonCategoryId absent, denormalized category present: the
	// denormalized id is the fallback source of truth
	categories := c.CategoryIndex([]models.Lesson{
		{ID: "1", Name: "L1", CourseID: "A", Category: &models.LessonCategory{ID: "c3", Name: "Cat3"}},
	}, "A")

	assert.Equal(t, []models.Category{{ID: "c3", Name: "Cat3"}}, categories)
}

func TestCatalog_CategoryIndex_EmptyCourse(t *testing.T) {
	c := New("en")

	assert.Nil(t, c.CategoryIndex([]models.Lesson{{ID: "1", Name: "L1", CourseID: "A"}}, ""))
	assert.Empty(t, c.CategoryIndex(nil, "A"))
}

func TestHasRealCategories(t *testing.T) {
	tests := []struct {
		name     string
		lessons  []models.Lesson
		courseID string
		expected bool
	}{
		{
			name: "course with a real category",
			lessons: []models.Lesson{
				{ID: "1", Name: "L1", CourseID: "A"},
				{ID: "2", Name: "L2", CourseID: "A", LessonCategoryID: "c1"},
			},
			courseID: "A",
			expected: true,
		},
		{
			name: "course with only uncategorized lessons",
			lessons: []models.Lesson{
				{ID: "1", Name: "L1", CourseID: "A"},
				{ID: "2", Name: "L2", CourseID: "A"},
			},
			courseID: "A",
			expected: false,
		},
		{
			name: "categories of another course do not count",
			lessons: []models.Lesson{
				{ID: "1", Name: "L1", CourseID: "A"},
				{ID: "2", Name: "L2", CourseID: "B", LessonCategoryID: "c1"},
			},
			courseID: "A",
			expected: false,
		},
		{
			name:     "no course selected",
			lessons:  []models.Lesson{{ID: "1", Name: "L1", CourseID: "A", LessonCategoryID: "c1"}},
			courseID: "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasRealCategories(tt.lessons, tt.courseID))
		})
	}
}
