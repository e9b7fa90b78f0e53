package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/viet-college/department-cms/internal/cache"
	"github.com/viet-college/department-cms/internal/domain"
	"github.com/viet-college/department-cms/internal/repository"
	apperrors "github.com/viet-college/department-cms/pkg/util"
)

// Cache keys for the unfiltered public lists. Filtered queries (published,
// semester, category) go straight to Postgres; only the hot default lists are
// worth caching.
const (
	cacheKeyHeroSlides = "cms:hero-slides"
	cacheKeyFaculty    = "cms:faculty"
	cacheKeyNews       = "cms:news"
	cacheKeyEvents     = "cms:events"
	cacheKeyNotes      = "cms:notes"
	cacheKeyMedia      = "cms:media"
)

// ContentService coordinates CRUD for all public site content. Writes
// invalidate the matching cache key so public readers converge immediately.
type ContentService struct {
	slides  repository.HeroSlideRepository
	faculty repository.FacultyRepository
	news    repository.NewsRepository
	events  repository.EventRepository
	notes   repository.NoteRepository
	media   repository.MediaRepository
	cache   *cache.ContentCache
}

// ContentDependencies bundles repository requirements for the content service.
type ContentDependencies struct {
	HeroSlides repository.HeroSlideRepository
	Faculty    repository.FacultyRepository
	News       repository.NewsRepository
	Events     repository.EventRepository
	Notes      repository.NoteRepository
	Media      repository.MediaRepository
}

// NewContentService builds the service.
func NewContentService(deps ContentDependencies, contentCache *cache.ContentCache) *ContentService {
	return &ContentService{
		slides:  deps.HeroSlides,
		faculty: deps.Faculty,
		news:    deps.News,
		events:  deps.Events,
		notes:   deps.Notes,
		media:   deps.Media,
		cache:   contentCache,
	}
}

// --- hero slides ---

func (s *ContentService) ListHeroSlides(ctx context.Context, published *bool) ([]domain.HeroSlide, error) {
	if published == nil {
		var cached []domain.HeroSlide
		if s.cache.Get(ctx, cacheKeyHeroSlides, &cached) {
			return cached, nil
		}
	}
	slides, err := s.slides.List(ctx, published)
	if err != nil {
		return nil, err
	}
	if published == nil {
		s.cache.Set(ctx, cacheKeyHeroSlides, slides)
	}
	return slides, nil
}

func (s *ContentService) GetHeroSlide(ctx context.Context, id string) (*domain.HeroSlide, error) {
	slide, err := s.slides.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Hero slide")
	}
	return slide, nil
}

func (s *ContentService) CreateHeroSlide(ctx context.Context, slide *domain.HeroSlide) error {
	slide.ID = uuid.NewString()
	if err := s.slides.Create(ctx, slide); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cacheKeyHeroSlides)
	return nil
}

func (s *ContentService) UpdateHeroSlide(ctx context.Context, slide *domain.HeroSlide) error {
	if err := s.slides.Update(ctx, slide); err != nil {
		return notFoundOr(err, "Hero slide")
	}
	s.cache.Invalidate(ctx, cacheKeyHeroSlides)
	return nil
}

func (s *ContentService) DeleteHeroSlide(ctx context.Context, id string) error {
	if err := s.slides.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Hero slide")
	}
	s.cache.Invalidate(ctx, cacheKeyHeroSlides)
	return nil
}

// --- faculty ---

func (s *ContentService) ListFaculty(ctx context.Context) ([]domain.Faculty, error) {
	var cached []domain.Faculty
	if s.cache.Get(ctx, cacheKeyFaculty, &cached) {
		return cached, nil
	}
	members, err := s.faculty.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, cacheKeyFaculty, members)
	return members, nil
}

func (s *ContentService) GetFaculty(ctx context.Context, id string) (*domain.Faculty, error) {
	member, err := s.faculty.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Faculty member")
	}
	return member, nil
}

func (s *ContentService) CreateFaculty(ctx context.Context, member *domain.Faculty) error {
	member.ID = uuid.NewString()
	if err := s.faculty.Create(ctx, member); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cacheKeyFaculty)
	return nil
}

func (s *ContentService) UpdateFaculty(ctx context.Context, member *domain.Faculty) error {
	if err := s.faculty.Update(ctx, member); err != nil {
		return notFoundOr(err, "Faculty member")
	}
	s.cache.Invalidate(ctx, cacheKeyFaculty)
	return nil
}

func (s *ContentService) DeleteFaculty(ctx context.Context, id string) error {
	if err := s.faculty.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Faculty member")
	}
	s.cache.Invalidate(ctx, cacheKeyFaculty)
	return nil
}

// --- news ---

func (s *ContentService) ListNews(ctx context.Context, published *bool) ([]domain.News, error) {
	if published == nil {
		var cached []domain.News
		if s.cache.Get(ctx, cacheKeyNews, &cached) {
			return cached, nil
		}
	}
	articles, err := s.news.List(ctx, published)
	if err != nil {
		return nil, err
	}
	if published == nil {
		s.cache.Set(ctx, cacheKeyNews, articles)
	}
	return articles, nil
}

func (s *ContentService) GetNews(ctx context.Context, id string) (*domain.News, error) {
	article, err := s.news.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "News article")
	}
	return article, nil
}

func (s *ContentService) CreateNews(ctx context.Context, article *domain.News) error {
	article.ID = uuid.NewString()
	if err := s.news.Create(ctx, article); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cacheKeyNews)
	return nil
}

func (s *ContentService) UpdateNews(ctx context.Context, article *domain.News) error {
	if err := s.news.Update(ctx, article); err != nil {
		return notFoundOr(err, "News article")
	}
	s.cache.Invalidate(ctx, cacheKeyNews)
	return nil
}

func (s *ContentService) DeleteNews(ctx context.Context, id string) error {
	if err := s.news.Delete(ctx, id); err != nil {
		return notFoundOr(err, "News article")
	}
	s.cache.Invalidate(ctx, cacheKeyNews)
	return nil
}

// --- events ---

func (s *ContentService) ListEvents(ctx context.Context, published *bool) ([]domain.Event, error) {
	if published == nil {
		var cached []domain.Event
		if s.cache.Get(ctx, cacheKeyEvents, &cached) {
			return cached, nil
		}
	}
	events, err := s.events.List(ctx, published)
	if err != nil {
		return nil, err
	}
	if published == nil {
		s.cache.Set(ctx, cacheKeyEvents, events)
	}
	return events, nil
}

func (s *ContentService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	event, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Event")
	}
	return event, nil
}

func (s *ContentService) CreateEvent(ctx context.Context, event *domain.Event) error {
	event.ID = uuid.NewString()
	if err := s.events.Create(ctx, event); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cacheKeyEvents)
	return nil
}

func (s *ContentService) UpdateEvent(ctx context.Context, event *domain.Event) error {
	if err := s.events.Update(ctx, event); err != nil {
		return notFoundOr(err, "Event")
	}
	s.cache.Invalidate(ctx, cacheKeyEvents)
	return nil
}

func (s *ContentService) DeleteEvent(ctx context.Context, id string) error {
	if err := s.events.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Event")
	}
	s.cache.Invalidate(ctx, cacheKeyEvents)
	return nil
}

// --- notes ---

func (s *ContentService) ListNotes(ctx context.Context, published *bool, semester string) ([]domain.Note, error) {
	if semester != "" {
		return s.notes.ListBySemester(ctx, semester)
	}
	if published == nil {
		var cached []domain.Note
		if s.cache.Get(ctx, cacheKeyNotes, &cached) {
			return cached, nil
		}
	}
	notes, err := s.notes.List(ctx, published)
	if err != nil {
		return nil, err
	}
	if published == nil {
		s.cache.Set(ctx, cacheKeyNotes, notes)
	}
	return notes, nil
}

func (s *ContentService) GetNote(ctx context.Context, id string) (*domain.Note, error) {
	note, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Note")
	}
	return note, nil
}

func (s *ContentService) CreateNote(ctx context.Context, note *domain.Note) error {
	note.ID = uuid.NewString()
	if err := s.notes.Create(ctx, note); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cacheKeyNotes)
	return nil
}

func (s *ContentService) UpdateNote(ctx context.Context, note *domain.Note) error {
	if err := s.notes.Update(ctx, note); err != nil {
		return notFoundOr(err, "Note")
	}
	s.cache.Invalidate(ctx, cacheKeyNotes)
	return nil
}

func (s *ContentService) DeleteNote(ctx context.Context, id string) error {
	if err := s.notes.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Note")
	}
	s.cache.Invalidate(ctx, cacheKeyNotes)
	return nil
}

// --- media ---

func (s *ContentService) ListMedia(ctx context.Context, published *bool, category string) ([]domain.Media, error) {
	if category != "" {
		return s.media.ListByCategory(ctx, category)
	}
	if published == nil {
		var cached []domain.Media
		if s.cache.Get(ctx, cacheKeyMedia, &cached) {
			return cached, nil
		}
	}
	items, err := s.media.List(ctx, published)
	if err != nil {
		return nil, err
	}
	if published == nil {
		s.cache.Set(ctx, cacheKeyMedia, items)
	}
	return items, nil
}

func (s *ContentService) GetMedia(ctx context.Context, id string) (*domain.Media, error) {
	item, err := s.media.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Media")
	}
	return item, nil
}

func (s *ContentService) CreateMedia(ctx context.Context, item *domain.Media) error {
	item.ID = uuid.NewString()
	if err := s.media.Create(ctx, item); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, cacheKeyMedia)
	return nil
}

func (s *ContentService) UpdateMedia(ctx context.Context, item *domain.Media) error {
	if err := s.media.Update(ctx, item); err != nil {
		return notFoundOr(err, "Media")
	}
	s.cache.Invalidate(ctx, cacheKeyMedia)
	return nil
}

func (s *ContentService) DeleteMedia(ctx context.Context, id string) error {
	if err := s.media.Delete(ctx, id); err != nil {
		return notFoundOr(err, "Media")
	}
	s.cache.Invalidate(ctx, cacheKeyMedia)
	return nil
}

func notFoundOr(err error, resource string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFound(resource)
	}
	return err
}
