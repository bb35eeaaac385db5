package repository

// sequence hands out ids that only grow. Callers hold the owning repository's
// write lock, so it carries no lock of its own.
type sequence struct {
	next uint
}

func newSequence() sequence {
	return sequence{next: 1}
}

func (s *sequence) take() uint {
	id := s.next
	s.next++
	return id
}

// observe moves the counter past an id that entered the store from seed data.
func (s *sequence) observe(id uint) {
	if id >= s.next {
		s.next = id + 1
	}
}
