package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"studytrack-backend/internal/middleware"
	"studytrack-backend/internal/models"
)

type stubStudyTopicRepo struct {
	topics  map[uuid.UUID]*models.StudyTopic
	deleted []uuid.UUID
}

func newStubStudyTopicRepo(topics ...*models.StudyTopic) *stubStudyTopicRepo {
	s := &stubStudyTopicRepo{topics: make(map[uuid.UUID]*models.StudyTopic)}
	for _, topic := range topics {
		s.topics[topic.ID] = topic
	}
	return s
}

func (s *stubStudyTopicRepo) Create(ctx context.Context, topic *models.StudyTopic) error {
	topic.ID = uuid.New()
	s.topics[topic.ID] = topic
	return nil
}

func (s *stubStudyTopicRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.StudyTopic, error) {
	if topic, ok := s.topics[id]; ok {
		return topic, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *stubStudyTopicRepo) List(ctx context.Context) ([]*models.StudyTopic, error) {
	var out []*models.StudyTopic
	for _, topic := range s.topics {
		out = append(out, topic)
	}
	return out, nil
}

func (s *stubStudyTopicRepo) Update(ctx context.Context, topic *models.StudyTopic) error { return nil }

func (s *stubStudyTopicRepo) Delete(ctx context.Context, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	delete(s.topics, id)
	return nil
}

type stubLessonRepo struct {
	lessons map[uuid.UUID]*models.Lesson
	created *models.Lesson
	listed  bool
}

func newStubLessonRepo(lessons ...*models.Lesson) *stubLessonRepo {
	s := &stubLessonRepo{lessons: make(map[uuid.UUID]*models.Lesson)}
	for _, lesson := range lessons {
		s.lessons[lesson.ID] = lesson
	}
	return s
}

func (s *stubLessonRepo) Create(ctx context.Context, lesson *models.Lesson) error {
	lesson.ID = uuid.New()
	s.created = lesson
	s.lessons[lesson.ID] = lesson
	return nil
}

func (s *stubLessonRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Lesson, error) {
	if lesson, ok := s.lessons[id]; ok {
		return lesson, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *stubLessonRepo) ListByStudyTopic(ctx context.Context, studyTopicID uuid.UUID) ([]*models.Lesson, error) {
	s.listed = true
	var out []*models.Lesson
	for _, lesson := range s.lessons {
		if lesson.StudyTopicID == studyTopicID {
			out = append(out, lesson)
		}
	}
	return out, nil
}

func (s *stubLessonRepo) Update(ctx context.Context, lesson *models.Lesson) error { return nil }

func (s *stubLessonRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(s.lessons, id)
	return nil
}

// A missing ancestor stops resolution before the child table is touched.
func TestLessonService_Create_MissingStudyTopic(t *testing.T) {
	lessons := newStubLessonRepo()
	svc := NewLessonService(lessons, newStubStudyTopicRepo())

	_, err := svc.Create(context.Background(), uuid.New(), models.LessonRequest{Title: "Pointers"})

	notFound, ok := err.(*NotFoundError)
	if !ok {
		t.Fatalf("expected NotFoundError, got %T (%v)", err, err)
	}
	if notFound.Message != "Study topic not found" {
		t.Fatalf("unexpected message: %q", notFound.Message)
	}
	if lessons.created != nil {
		t.Fatal("lesson storage must not be touched when the ancestor is missing")
	}
}

func TestLessonService_ListByStudyTopic_MissingStudyTopic(t *testing.T) {
	lessons := newStubLessonRepo()
	svc := NewLessonService(lessons, newStubStudyTopicRepo())

	_, err := svc.ListByStudyTopic(context.Background(), uuid.New())

	notFound, ok := err.(*NotFoundError)
	if !ok {
		t.Fatalf("expected NotFoundError, got %T (%v)", err, err)
	}
	if notFound.Message != "Study topic not found" {
		t.Fatalf("unexpected message: %q", notFound.Message)
	}
	if lessons.listed {
		t.Fatal("lesson storage must not be queried when the ancestor is missing")
	}
}

func TestLessonService_Create_UnderExistingTopic(t *testing.T) {
	topic := &models.StudyTopic{ID: uuid.New(), Name: "Go", OwnerID: uuid.New()}
	lessons := newStubLessonRepo()
	svc := NewLessonService(lessons, newStubStudyTopicRepo(topic))

	lesson, err := svc.Create(context.Background(), topic.ID, models.LessonRequest{Title: "Pointers"})
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}
	if lesson.StudyTopicID != topic.ID {
		t.Fatalf("expected study topic id %s, got %s", topic.ID, lesson.StudyTopicID)
	}
}

func TestLessonService_Update_MissingLesson(t *testing.T) {
	svc := NewLessonService(newStubLessonRepo(), newStubStudyTopicRepo())

	_, err := svc.Update(context.Background(), uuid.New(), models.LessonRequest{Title: "Renamed"})

	notFound, ok := err.(*NotFoundError)
	if !ok {
		t.Fatalf("expected NotFoundError, got %T (%v)", err, err)
	}
	if notFound.Message != "Lesson not found" {
		t.Fatalf("unexpected message: %q", notFound.Message)
	}
}

func TestStudyTopicService_Update_NonOwnerNonAdmin(t *testing.T) {
	topic := &models.StudyTopic{ID: uuid.New(), Name: "Go", OwnerID: uuid.New()}
	svc := NewStudyTopicService(newStubStudyTopicRepo(topic))

	claim := middleware.Claim{UserID: uuid.New(), IsAdmin: false}
	_, err := svc.Update(context.Background(), claim, topic.ID, models.StudyTopicRequest{Name: "Hijacked"})

	unauthorized, ok := err.(*UnauthorizedError)
	if !ok {
		t.Fatalf("expected UnauthorizedError, got %T (%v)", err, err)
	}
	if unauthorized.Message != "User is not admin" {
		t.Fatalf("unexpected message: %q", unauthorized.Message)
	}
}

func TestStudyTopicService_Delete_AdminOverride(t *testing.T) {
	topic := &models.StudyTopic{ID: uuid.New(), Name: "Go", OwnerID: uuid.New()}
	topics := newStubStudyTopicRepo(topic)
	svc := NewStudyTopicService(topics)

	claim := middleware.Claim{UserID: uuid.New(), IsAdmin: true}
	if err := svc.Delete(context.Background(), claim, topic.ID); err != nil {
		t.Fatalf("expected admin delete to succeed, got %v", err)
	}
	if len(topics.deleted) != 1 || topics.deleted[0] != topic.ID {
		t.Fatal("expected the topic to be deleted")
	}
}
