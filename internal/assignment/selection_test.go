package assignment

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coursedesk/media-library/internal/models"
)

func TestNewSelection_Unassigned(t *testing.T) {
	video := &models.Video{ID: "v1", FileName: "clip.mp4"}

	sel := NewSelection(video)

	assert.Equal(t, video, sel.TargetVideo)
	assert.Empty(t, sel.CourseID)
	assert.Empty(t, sel.CategoryID)
	assert.Empty(t, sel.LessonID)
}

func TestNewSelection_SeedsFromExistingLink(t *testing.T) {
	video := &models.Video{
		ID: "v1",
		Lesson: &models.VideoLesson{
			ID:               "l2",
			Name:             "Adv",
			CourseID:         "A",
			LessonCategoryID: "c1",
		},
	}

	sel := NewSelection(video)

	assert.Equal(t, "A", sel.CourseID)
	assert.Equal(t, "c1", sel.CategoryID)
	assert.Equal(t, "l2", sel.LessonID)
}

func TestNewSelection_SeedsUncategorizedLesson(t *testing.T) {
	video := &models.Video{
		ID:     "v1",
		Lesson: &models.VideoLesson{ID: "l1", CourseID: "A"},
	}

	sel := NewSelection(video)

	assert.Equal(t, "A", sel.CourseID)
	assert.Equal(t, models.UncategorizedID, sel.CategoryID)
	assert.Equal(t, "l1", sel.LessonID)
}

func TestNewSelection_NilVideo(t *testing.T) {
	sel := NewSelection(nil)

	assert.Nil(t, sel.TargetVideo)
	assert.Empty(t, sel.CourseID)
}

func TestSelection_SelectCourse_ClearsCategoryAndLesson(t *testing.T) {
	sel := &Selection{CourseID: "A", CategoryID: "c1", LessonID: "l1"}

	sel.SelectCourse("B")

	assert.Equal(t, "B", sel.CourseID)
	assert.Empty(t, sel.CategoryID)
	assert.Empty(t, sel.LessonID)
}

func TestSelection_SelectCategory_ClearsOnlyLesson(t *testing.T) {
	sel := &Selection{CourseID: "A", CategoryID: "c1", LessonID: "l1"}

	sel.SelectCategory("c2")

	assert.Equal(t, "A", sel.CourseID)
	assert.Equal(t, "c2", sel.CategoryID)
	assert.Empty(t, sel.LessonID)
}

func TestSelection_SelectLesson(t *testing.T) {
	sel := &Selection{CourseID: "A", CategoryID: "c1"}

	sel.SelectLesson("l3")

	assert.Equal(t, "A", sel.CourseID)
	assert.Equal(t, "c1", sel.CategoryID)
	assert.Equal(t, "l3", sel.LessonID)
}

func TestSelection_NilReceiverIsNoOp(t *testing.T) {
	var sel *Selection

	assert.NotPanics(t, func() {
		sel.SelectCourse("A")
		sel.SelectCategory("c1")
		sel.SelectLesson("l1")
	})
	assert.Empty(t, sel.CurrentLessonID())
}

func TestSelection_CurrentLessonID(t *testing.T) {
	tests := []struct {
		name     string
		sel      *Selection
		expected string
	}{
		{
			name:     "assigned video",
			sel:      &Selection{TargetVideo: &models.Video{ID: "v1", Lesson: &models.VideoLesson{ID: "l5"}}},
			expected: "l5",
		},
		{
			name:     "unassigned video",
			sel:      &Selection{TargetVideo: &models.Video{ID: "v1"}},
			expected: "",
		},
		{
			name:     "no target video",
			sel:      &Selection{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.sel.CurrentLessonID())
		})
	}
}
