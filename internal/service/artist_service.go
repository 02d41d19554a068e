package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/models"
	"github.com/SLondon725/retoBoleteriaManejoSenaSoft/internal/repository"
)

type ArtistService interface {
	Create(ctx context.Context, artist *models.Artist) error
	GetByID(ctx context.Context, id uint) (*models.Artist, error)
	List(ctx context.Context) ([]models.Artist, error)
	Update(ctx context.Context, artist *models.Artist) error
	Delete(ctx context.Context, id uint) error
}

type artistService struct {
	artists  repository.ArtistRepository
	bookings repository.BookingRepository
	catalog  repository.CatalogRepository
}

func NewArtistService(
	artists repository.ArtistRepository,
	bookings repository.BookingRepository,
	catalog repository.CatalogRepository,
) ArtistService {
	return &artistService{artists: artists, bookings: bookings, catalog: catalog}
}

func (s *artistService) Create(ctx context.Context, artist *models.Artist) error {
	if err := s.validate(ctx, artist); err != nil {
		return err
	}

	existing, err := s.artists.FindByName(ctx, artist.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check artist name: %w", err)
	}
	if existing != nil {
		return ErrArtistNameTaken
	}

	return s.artists.Create(ctx, artist)
}

func (s *artistService) GetByID(ctx context.Context, id uint) (*models.Artist, error) {
	artist, err := s.artists.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	return artist, nil
}

func (s *artistService) List(ctx context.Context) ([]models.Artist, error) {
	return s.artists.FindAll(ctx)
}

func (s *artistService) Update(ctx context.Context, artist *models.Artist) error {
	current, err := s.GetByID(ctx, artist.ID)
	if err != nil {
		return err
	}

	if err := s.validate(ctx, artist); err != nil {
		return err
	}

	if artist.Name != current.Name {
		existing, err := s.artists.FindByName(ctx, artist.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("check artist name: %w", err)
		}
		if existing != nil {
			return ErrArtistNameTaken
		}
	}

	return s.artists.Update(ctx, artist)
}

func (s *artistService) Delete(ctx context.Context, id uint) error {
	if _, err := s.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.bookings.CountByArtist(ctx, id)
	if err != nil {
		return fmt.Errorf("count bookings: %w", err)
	}
	if count > 0 {
		return ErrArtistHasEvents
	}

	return s.artists.Delete(ctx, id)
}

func (s *artistService) validate(ctx context.Context, artist *models.Artist) error {
	ok, err := s.catalog.GenreExists(ctx, artist.GenreID)
	if err != nil {
		return fmt.Errorf("check genre: %w", err)
	}
	if !ok {
		return ErrGenreNotFound
	}

	ok, err = s.catalog.MunicipioExists(ctx, artist.HomeTownID)
	if err != nil {
		return fmt.Errorf("check home town: %w", err)
	}
	if !ok {
		return ErrMunicipioNotFound
	}

	return nil
}
