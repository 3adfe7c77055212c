package domain

const ResourceCourse = "course"

// Course is a catalog entry. Name is unique.
type Course struct {
	ID          string
	Name        string
	Description string
	Content     []string
	Tools       []string
}

func (c Course) EntityID() string { return c.ID }

func (c Course) UniqueKeys() []Key {
	return []Key{{Field: "name", Value: c.Name}}
}

// CoursePatch is a partial update of a course. A non-nil slice replaces the stored one.
type CoursePatch struct {
	Name        *string
	Description *string
	Content     *[]string
	Tools       *[]string
}

func (p CoursePatch) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Content == nil && p.Tools == nil
}

func (p CoursePatch) Validate() error {
	switch {
	case blank(p.Name):
		return Invalid("name", "name must not be empty")
	case blank(p.Description):
		return Invalid("description", "description must not be empty")
	case p.Content != nil && len(*p.Content) == 0:
		return Invalid("content", "content must not be empty")
	}
	return nil
}

func (p CoursePatch) UniqueKeys() []Key {
	if p.Name == nil {
		return nil
	}
	return []Key{{Field: "name", Value: *p.Name}}
}
