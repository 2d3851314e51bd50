package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"studytrack-backend/internal/models"
)

type stubVideoRepo struct {
	videos map[uuid.UUID]*models.Video
}

func newStubVideoRepo(videos ...*models.Video) *stubVideoRepo {
	s := &stubVideoRepo{videos: make(map[uuid.UUID]*models.Video)}
	for _, v := range videos {
		s.videos[v.ID] = v
	}
	return s
}

func (s *stubVideoRepo) Create(ctx context.Context, video *models.Video) error {
	video.ID = uuid.New()
	s.videos[video.ID] = video
	return nil
}

func (s *stubVideoRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Video, error) {
	if v, ok := s.videos[id]; ok {
		return v, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *stubVideoRepo) ListByLesson(ctx context.Context, lessonID uuid.UUID) ([]*models.Video, error) {
	return nil, nil
}

func (s *stubVideoRepo) Update(ctx context.Context, video *models.Video) error { return nil }

func (s *stubVideoRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }

type stubTimelineRepo struct {
	timelines map[uuid.UUID]*models.Timeline
	created   *models.Timeline
	deleted   []uuid.UUID
}

func newStubTimelineRepo(timelines ...*models.Timeline) *stubTimelineRepo {
	s := &stubTimelineRepo{timelines: make(map[uuid.UUID]*models.Timeline)}
	for _, tl := range timelines {
		s.timelines[tl.ID] = tl
	}
	return s
}

func (s *stubTimelineRepo) Create(ctx context.Context, timeline *models.Timeline) error {
	timeline.ID = uuid.New()
	s.created = timeline
	s.timelines[timeline.ID] = timeline
	return nil
}

func (s *stubTimelineRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Timeline, error) {
	if tl, ok := s.timelines[id]; ok {
		return tl, nil
	}
	return nil, pgx.ErrNoRows
}

func (s *stubTimelineRepo) ListByVideo(ctx context.Context, videoID uuid.UUID) ([]*models.Timeline, error) {
	var out []*models.Timeline
	for _, tl := range s.timelines {
		if tl.VideoID == videoID {
			out = append(out, tl)
		}
	}
	return out, nil
}

func (s *stubTimelineRepo) Update(ctx context.Context, timeline *models.Timeline) error { return nil }

func (s *stubTimelineRepo) Delete(ctx context.Context, id uuid.UUID) error {
	s.deleted = append(s.deleted, id)
	delete(s.timelines, id)
	return nil
}

func strptr(s string) *string { return &s }

func TestTimelineService_Create_Success(t *testing.T) {
	video := &models.Video{ID: uuid.New()}
	timelines := newStubTimelineRepo()
	svc := NewTimelineService(timelines, newStubVideoRepo(video))

	timeline, err := svc.Create(context.Background(), video.ID, models.TimelineRequest{
		Description: strptr("Introduction"),
		Time:        strptr("00:30"),
	})
	if err != nil {
		t.Fatalf("expected create to succeed, got %v", err)
	}
	if timeline.VideoID != video.ID {
		t.Fatalf("expected video id %s, got %s", video.ID, timeline.VideoID)
	}
}

// Description and time are validated as a pair; either one missing yields the
// single combined error.
func TestTimelineService_Create_FieldPairRequired(t *testing.T) {
	video := &models.Video{ID: uuid.New()}

	tests := []struct {
		name string
		req  models.TimelineRequest
	}{
		{"missing description", models.TimelineRequest{Time: strptr("00:30")}},
		{"empty description", models.TimelineRequest{Description: strptr(""), Time: strptr("00:30")}},
		{"missing time", models.TimelineRequest{Description: strptr("Introduction")}},
		{"null time", models.TimelineRequest{Description: strptr("Introduction"), Time: nil}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			timelines := newStubTimelineRepo()
			svc := NewTimelineService(timelines, newStubVideoRepo(video))

			_, err := svc.Create(context.Background(), video.ID, tc.req)

			unauthorized, ok := err.(*UnauthorizedError)
			if !ok {
				t.Fatalf("expected UnauthorizedError, got %T (%v)", err, err)
			}
			if unauthorized.Message != "Time and description are required fields" {
				t.Fatalf("unexpected message: %q", unauthorized.Message)
			}
			if timelines.created != nil {
				t.Fatal("nothing may be written when validation fails")
			}
		})
	}
}

// The parent video resolves before field validation, so a missing video wins
// even when the payload is also invalid.
func TestTimelineService_Create_MissingVideo(t *testing.T) {
	timelines := newStubTimelineRepo()
	svc := NewTimelineService(timelines, newStubVideoRepo())

	_, err := svc.Create(context.Background(), uuid.New(), models.TimelineRequest{
		Description: strptr(""),
		Time:        nil,
	})

	notFound, ok := err.(*NotFoundError)
	if !ok {
		t.Fatalf("expected NotFoundError, got %T (%v)", err, err)
	}
	if notFound.Message != "Video not found" {
		t.Fatalf("unexpected message: %q", notFound.Message)
	}
}

func TestTimelineService_ListByVideo_MissingVideo(t *testing.T) {
	svc := NewTimelineService(newStubTimelineRepo(), newStubVideoRepo())

	_, err := svc.ListByVideo(context.Background(), uuid.New())

	notFound, ok := err.(*NotFoundError)
	if !ok {
		t.Fatalf("expected NotFoundError, got %T (%v)", err, err)
	}
	if notFound.Message != "Video not found" {
		t.Fatalf("unexpected message: %q", notFound.Message)
	}
}

func TestTimelineService_Update_MissingTimeline(t *testing.T) {
	svc := NewTimelineService(newStubTimelineRepo(), newStubVideoRepo())

	_, err := svc.Update(context.Background(), uuid.New(), models.TimelineRequest{
		Description: strptr("Updated"),
		Time:        strptr("01:00"),
	})

	notFound, ok := err.(*NotFoundError)
	if !ok {
		t.Fatalf("expected NotFoundError, got %T (%v)", err, err)
	}
	if notFound.Message != "Chapter not found" {
		t.Fatalf("unexpected message: %q", notFound.Message)
	}
}

func TestTimelineService_Delete_Idempotence(t *testing.T) {
	timeline := &models.Timeline{ID: uuid.New(), VideoID: uuid.New()}
	timelines := newStubTimelineRepo(timeline)
	svc := NewTimelineService(timelines, newStubVideoRepo())

	if err := svc.Delete(context.Background(), timeline.ID); err != nil {
		t.Fatalf("expected delete to succeed, got %v", err)
	}

	// Deleting again reports not found, never success
	err := svc.Delete(context.Background(), timeline.ID)
	notFound, ok := err.(*NotFoundError)
	if !ok {
		t.Fatalf("expected NotFoundError, got %T (%v)", err, err)
	}
	if notFound.Message != "Chapter not found" {
		t.Fatalf("unexpected message: %q", notFound.Message)
	}
}
