package data

// Snapshot is the ordered set of tags decoded from one image. Tags keep the
// order in which they were handed to NewSnapshot.
type Snapshot struct {
	tags   []Tag
	byName map[string]int
}

// NewSnapshot builds a snapshot. A repeated name keeps the position of its
// first occurrence and the record of its last.
func NewSnapshot(tags []Tag) *Snapshot {
	s := &Snapshot{
		tags:   make([]Tag, 0, len(tags)),
		byName: make(map[string]int, len(tags)),
	}

	for _, tag := range tags {
		if i, ok := s.byName[tag.Name]; ok {
			s.tags[i] = tag
			continue
		}

		s.byName[tag.Name] = len(s.tags)
		s.tags = append(s.tags, tag)
	}

	return s
}

func (s *Snapshot) Len() int {
	if s == nil {
		return 0
	}

	return len(s.tags)
}

func (s *Snapshot) Has(name string) bool {
	_, ok := s.Get(name)
	return ok
}

func (s *Snapshot) Get(name string) (Tag, bool) {
	if s == nil {
		return Tag{}, false
	}

	i, ok := s.byName[name]
	if !ok {
		return Tag{}, false
	}

	return s.tags[i], true
}

// Tags returns a copy of all tags in snapshot order.
func (s *Snapshot) Tags() []Tag {
	if s == nil {
		return nil
	}

	tags := make([]Tag, len(s.tags))
	copy(tags, s.tags)

	return tags
}

func (s *Snapshot) Names() []string {
	if s == nil {
		return nil
	}

	names := make([]string, len(s.tags))
	for i, tag := range s.tags {
		names[i] = tag.Name
	}

	return names
}
