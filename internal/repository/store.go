package repository

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/noah-isme/school-admin-api/internal/models"
)

const maxIDAttempts = 1000

var (
	// ErrNotFound is returned by lookups that find no matching record.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateID is returned when a seeded record reuses an identifier.
	ErrDuplicateID = errors.New("duplicate identifier")
	// ErrIDExhausted is returned when no free identifier could be generated.
	ErrIDExhausted = errors.New("identifier space exhausted")
)

// Store keeps students, teachers and subject/score records in process memory.
// Collections preserve insertion order. Mutation methods are the only write
// path and each one completes under the store lock.
type Store struct {
	mu       sync.RWMutex
	students []models.Student
	teachers []models.Teacher
	subjects []models.Subject
	catalog  []models.CatalogSubject

	// issued ids are never handed out again, even after removal.
	issued map[string]struct{}

	ids IDGenerator
	now func() time.Time
}

// Option customises a Store.
type Option func(*Store)

// WithIDGenerator overrides the identifier generator.
func WithIDGenerator(g IDGenerator) Option {
	return func(s *Store) {
		if g != nil {
			s.ids = g
		}
	}
}

// WithClock overrides the clock used for employee codes.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithCatalog sets the subjects provisioned for every new student.
func WithCatalog(catalog []models.CatalogSubject) Option {
	return func(s *Store) {
		s.catalog = append([]models.CatalogSubject(nil), catalog...)
	}
}

// NewStore constructs an empty store.
func NewStore(opts ...Option) *Store {
	s := &Store{
		issued: make(map[string]struct{}),
		ids:    NewRandomIDGenerator(0),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Students returns a snapshot of every student in insertion order.
func (s *Store) Students() []models.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Student, len(s.students))
	for i, st := range s.students {
		out[i] = cloneStudent(st)
	}
	return out
}

// Student looks up a student by id.
func (s *Store) Student(id string) (models.Student, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.students {
		if st.ID == id {
			return cloneStudent(st), nil
		}
	}
	return models.Student{}, fmt.Errorf("student %s: %w", id, ErrNotFound)
}

// AddStudent stores data under a freshly generated id and provisions an
// unscored record for every catalog subject. Any id already present on data is
// discarded.
func (s *Store) AddStudent(data models.Student) (models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := s.nextID(s.ids.StudentID)
	if err != nil {
		return models.Student{}, fmt.Errorf("add student: %w", err)
	}
	student := cloneStudent(data)
	student.ID = id
	s.students = append(s.students, student)
	s.provision(id)
	return cloneStudent(student), nil
}

// RemoveStudent deletes the student with id. Absent ids are ignored. Score
// records are left untouched. It reports whether a record was removed.
func (s *Store) RemoveStudent(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, st := range s.students {
		if st.ID == id {
			s.students = append(s.students[:i:i], s.students[i+1:]...)
			return true
		}
	}
	return false
}

// Teachers returns a snapshot of every teacher in insertion order.
func (s *Store) Teachers() []models.Teacher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Teacher, len(s.teachers))
	for i, t := range s.teachers {
		out[i] = cloneTeacher(t)
	}
	return out
}

// Teacher looks up a teacher by id.
func (s *Store) Teacher(id string) (models.Teacher, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.teachers {
		if t.ID == id {
			return cloneTeacher(t), nil
		}
	}
	return models.Teacher{}, fmt.Errorf("teacher %s: %w", id, ErrNotFound)
}

// AddTeacher stores data under a fresh id and a fresh employee code derived
// from the current year.
func (s *Store) AddTeacher(data models.Teacher) (models.Teacher, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id, err := s.nextID(s.ids.TeacherID)
	if err != nil {
		return models.Teacher{}, fmt.Errorf("add teacher: %w", err)
	}
	year := s.now().Year()
	code, err := s.nextID(func() string { return s.ids.EmployeeCode(year) })
	if err != nil {
		return models.Teacher{}, fmt.Errorf("add teacher employee code: %w", err)
	}
	teacher := cloneTeacher(data)
	teacher.ID = id
	teacher.EmployeeID = code
	if teacher.Subjects == nil {
		teacher.Subjects = []string{}
	}
	if teacher.Qualifications == nil {
		teacher.Qualifications = []string{}
	}
	s.teachers = append(s.teachers, teacher)
	return cloneTeacher(teacher), nil
}

// RemoveTeacher deletes the teacher with id. Absent ids are ignored.
func (s *Store) RemoveTeacher(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.teachers {
		if t.ID == id {
			s.teachers = append(s.teachers[:i:i], s.teachers[i+1:]...)
			return true
		}
	}
	return false
}

// Catalog returns the subjects provisioned for new students.
func (s *Store) Catalog() []models.CatalogSubject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.CatalogSubject(nil), s.catalog...)
}

// Subjects returns every subject/score record in insertion order.
func (s *Store) Subjects() []models.Subject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Subject, len(s.subjects))
	for i, sub := range s.subjects {
		out[i] = cloneSubject(sub)
	}
	return out
}

// StudentSubjects returns the records associated with studentID in insertion
// order. It does not check that the student still exists.
func (s *Store) StudentSubjects(studentID string) []models.Subject {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Subject, 0, len(s.catalog))
	for _, sub := range s.subjects {
		if sub.StudentID == studentID {
			out = append(out, cloneSubject(sub))
		}
	}
	return out
}

// UpdateScores replaces each stored record of studentID whose id matches an
// updated record. The stored id and owner are kept. Updated records that match
// nothing are skipped without error and reported in Ignored. A record owned by
// another student counts as unmatched, even when its id exists.
func (s *Store) UpdateScores(studentID string, updated []models.Subject) models.ScoreUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := models.ScoreUpdate{Applied: []string{}, Ignored: []string{}}
	for _, rec := range updated {
		idx := s.subjectIndex(studentID, rec.ID)
		if idx < 0 {
			result.Ignored = append(result.Ignored, rec.ID)
			continue
		}
		replacement := cloneSubject(rec)
		replacement.ID = s.subjects[idx].ID
		replacement.StudentID = s.subjects[idx].StudentID
		s.subjects[idx] = replacement
		result.Applied = append(result.Applied, rec.ID)
	}
	return result
}

// Seed loads records that already carry identifiers. Ids must be unique.
func (s *Store) Seed(students []models.Student, teachers []models.Teacher, subjects []models.Subject) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, st := range students {
		if err := s.claim(st.ID); err != nil {
			return fmt.Errorf("seed student: %w", err)
		}
		s.students = append(s.students, cloneStudent(st))
	}
	for _, t := range teachers {
		if err := s.claim(t.ID); err != nil {
			return fmt.Errorf("seed teacher: %w", err)
		}
		if err := s.claim(t.EmployeeID); err != nil {
			return fmt.Errorf("seed teacher employee code: %w", err)
		}
		s.teachers = append(s.teachers, cloneTeacher(t))
	}
	for _, sub := range subjects {
		if sub.ID == "" {
			sub.ID = uuid.NewString()
		}
		if err := s.claim(sub.ID); err != nil {
			return fmt.Errorf("seed subject: %w", err)
		}
		s.subjects = append(s.subjects, cloneSubject(sub))
	}
	return nil
}

func (s *Store) subjectIndex(studentID, id string) int {
	for i, sub := range s.subjects {
		if sub.ID == id && sub.StudentID == studentID {
			return i
		}
	}
	return -1
}

func (s *Store) provision(studentID string) {
	for _, c := range s.catalog {
		id := uuid.NewString()
		s.issued[id] = struct{}{}
		s.subjects = append(s.subjects, models.Subject{
			ID:        id,
			StudentID: studentID,
			Name:      c.Name,
			MaxScore:  c.MaxScore,
			Teacher:   c.Teacher,
		})
	}
}

func (s *Store) nextID(gen func() string) (string, error) {
	for i := 0; i < maxIDAttempts; i++ {
		id := gen()
		if _, taken := s.issued[id]; !taken {
			s.issued[id] = struct{}{}
			return id, nil
		}
	}
	return "", ErrIDExhausted
}

func (s *Store) claim(id string) error {
	if id == "" {
		return fmt.Errorf("empty id: %w", ErrDuplicateID)
	}
	if _, taken := s.issued[id]; taken {
		return fmt.Errorf("%s: %w", id, ErrDuplicateID)
	}
	s.issued[id] = struct{}{}
	return nil
}
