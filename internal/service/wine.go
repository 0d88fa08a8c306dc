package service

import (
	"context"
	"errors"
	"fmt"

	"wineapi/internal/anonymize"
	"wineapi/internal/classifier"
	"wineapi/internal/model"
	"wineapi/internal/repository"
)

var (
	ErrInvalidID = errors.New("id must be a positive integer")
	ErrNotFound  = errors.New("wine record not found")
)

// WineService defines the use cases for wine records. Samples reaching it are
// already validated; it owns classification, anonymization and persistence.
type WineService interface {
	// Create classifies the sample, anonymizes its document and stores it.
	Create(ctx context.Context, sample model.WineSample) (*model.WineRecord, error)

	// List returns every stored record ordered by id.
	List(ctx context.Context) ([]model.WineRecord, error)

	// Update replaces the record with the given id, recomputing its
	// classification and anonymized document from sample.
	Update(ctx context.Context, id int64, sample model.WineSample) (*model.WineRecord, error)

	// Delete removes the record with the given id.
	Delete(ctx context.Context, id int64) error
}

// wineService is a concrete implementation of WineService.
type wineService struct {
	repo       repository.WineRepository
	classifier classifier.Classifier
}

// NewWineService constructs a new WineService.
func NewWineService(repo repository.WineRepository, c classifier.Classifier) WineService {
	return &wineService{repo: repo, classifier: c}
}

// prepare builds the record to persist. The raw document does not survive it.
func (s *wineService) prepare(ctx context.Context, sample model.WineSample) (*model.WineRecord, error) {
	label, err := s.classifier.Classify(ctx, sample.Features())
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}
	sample.IdentityDocument = anonymize.Document(sample.IdentityDocument)
	return &model.WineRecord{WineSample: sample, Classification: label}, nil
}

func (s *wineService) Create(ctx context.Context, sample model.WineSample) (*model.WineRecord, error) {
	rec, err := s.prepare(ctx, sample)
	if err != nil {
		return nil, err
	}
	id, err := s.repo.Insert(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("insert wine record: %w", err)
	}
	rec.ID = id
	return rec, nil
}

func (s *wineService) List(ctx context.Context) ([]model.WineRecord, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list wine records: %w", err)
	}
	if items == nil {
		items = []model.WineRecord{}
	}
	return items, nil
}

func (s *wineService) Update(ctx context.Context, id int64, sample model.WineSample) (*model.WineRecord, error) {
	if id < 1 {
		return nil, ErrInvalidID
	}
	rec, err := s.prepare(ctx, sample)
	if err != nil {
		return nil, err
	}
	ok, err := s.repo.Update(ctx, id, rec)
	if err != nil {
		return nil, fmt.Errorf("update wine record: %w", err)
	}
	if !ok {
		return nil, ErrNotFound
	}
	rec.ID = id
	return rec, nil
}

func (s *wineService) Delete(ctx context.Context, id int64) error {
	if id < 1 {
		return ErrInvalidID
	}
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete wine record: %w", err)
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
