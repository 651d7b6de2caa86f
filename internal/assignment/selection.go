// Package assignment holds the state of the "assign video to lesson"
// interaction and computes which lessons are selectable for it.
package assignment

import (
	"github.com/coursedesk/media-library/internal/models"
)

// Selection tracks the course, category and lesson chosen while a video
// is being (re)assigned. Exactly one Selection is active at a time; it is
// created when the assignment interaction opens and discarded on close or
// successful submission.
type Selection struct {
	TargetVideo *models.Video
	CourseID    string
	CategoryID  string
	LessonID    string
}

// NewSelection creates a selection for the given video, seeded from its
// existing lesson link so that reopening the interaction reproduces the
// current assignment exactly.
func NewSelection(video *models.Video) *Selection {
	sel := &Selection{TargetVideo: video}
	if video == nil || !video.IsAssigned() {
		return sel
	}

	sel.CourseID = video.Lesson.CourseID
	sel.LessonID = video.Lesson.ID
	if video.Lesson.LessonCategoryID != "" {
		sel.CategoryID = video.Lesson.LessonCategoryID
	} else {
		sel.CategoryID = models.UncategorizedID
	}
	return sel
}

// SelectCourse sets the course and clears the dependent category and
// lesson selections
func (s *Selection) SelectCourse(courseID string) {
	if s == nil {
		return
	}
	s.CourseID = courseID
	s.CategoryID = ""
	s.LessonID = ""
}

// SelectCategory sets the category and clears the dependent lesson
// selection
func (s *Selection) SelectCategory(categoryID string) {
	if s == nil {
		return
	}
	s.CategoryID = categoryID
	s.LessonID = ""
}

// SelectLesson sets the lesson
func (s *Selection) SelectLesson(lessonID string) {
	if s == nil {
		return
	}
	s.LessonID = lessonID
}

// CurrentLessonID returns the ID of the lesson already linked to the
// target video, or empty if the video is unassigned
func (s *Selection) CurrentLessonID() string {
	if s == nil || s.TargetVideo == nil || !s.TargetVideo.IsAssigned() {
		return ""
	}
	return s.TargetVideo.Lesson.ID
}
