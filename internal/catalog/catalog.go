// Package catalog holds the lesson catalog: the builtin lesson set plus an
// optional YAML lesson directory. Catalog order is meaningful; ranking ties
// break on catalog position, so the catalog preserves insertion order.
package catalog

import "github.com/jmorland/bmadcoach/internal/domain"

// Catalog is an ordered, ID-indexed lesson collection.
type Catalog struct {
	lessons []domain.Lesson
	byID    map[string]int
}

// New builds a catalog from lessons in the given order. A later lesson with
// a duplicate ID replaces the earlier one in place, keeping the original
// position.
func New(lessons []domain.Lesson) *Catalog {
	c := &Catalog{byID: make(map[string]int, len(lessons))}
	for _, lesson := range lessons {
		if idx, ok := c.byID[lesson.ID]; ok {
			c.lessons[idx] = lesson
			continue
		}
		c.byID[lesson.ID] = len(c.lessons)
		c.lessons = append(c.lessons, lesson)
	}
	return c
}

// Lessons returns the lessons in catalog order. Callers must not mutate the
// returned slice.
func (c *Catalog) Lessons() []domain.Lesson {
	return c.lessons
}

// Lesson returns the lesson with the given ID.
func (c *Catalog) Lesson(id string) (*domain.Lesson, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	return &c.lessons[idx], true
}

// Len returns the number of lessons.
func (c *Catalog) Len() int {
	return len(c.lessons)
}

// Merge layers extra lessons over base: same-ID lessons replace the base
// entry in place, new IDs append in their own order.
func Merge(base, extra *Catalog) *Catalog {
	combined := make([]domain.Lesson, 0, base.Len()+extra.Len())
	combined = append(combined, base.lessons...)
	combined = append(combined, extra.lessons...)
	return New(combined)
}
