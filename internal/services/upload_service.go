package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"time"

	"bagatelle/internal/domain"
	applog "bagatelle/internal/log"
	"bagatelle/internal/repos"
	"bagatelle/internal/storage"

	"github.com/google/uuid"
)

var ErrMissingMainImage = errors.New("main image is required")

// MaxSecondaryImages is the cap on secondary files per submission; extras are
// ignored, not rejected.
const MaxSecondaryImages = 5

// StageError tags a pipeline failure with the step it happened at, so the
// caller can report which part of the upload failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string { return e.Stage + ": " + e.Err.Error() }
func (e *StageError) Unwrap() error { return e.Err }

// ProductInput carries the submitted metadata fields.
type ProductInput struct {
	Title       string
	Brand       string
	Price       float64
	Quantity    int
	Category    string
	Condition   string
	Description string
	Features    string
	Location    string
	Delivery    string
}

type UploadService struct {
	Prods *repos.ProductRepo
	Store storage.Store
}

func NewUploadService(prods *repos.ProductRepo, store storage.Store) *UploadService {
	return &UploadService{Prods: prods, Store: store}
}

// Ingest runs the upload pipeline: sanitize and upload the main image, then
// up to MaxSecondaryImages secondary images, then insert one product record.
// The pipeline is not atomic; on failure the keys uploaded so far are logged
// for manual reconciliation and never silently reported as success.
func (s *UploadService) Ingest(userID string, in ProductInput, main *multipart.FileHeader, secondary []*multipart.FileHeader) (domain.Product, error) {
	var p domain.Product
	if main == nil {
		return p, ErrMissingMainImage
	}

	// One folder per submission; per-file keys add their own uniqueness.
	folder := time.Now().UTC().Format("20060102150405")
	var uploaded []string

	fail := func(stage string, err error) (domain.Product, error) {
		if len(uploaded) > 0 {
			applog.Error(nil, "upload.orphaned", err, map[string]any{"folder": folder, "keys": uploaded})
		}
		return p, &StageError{Stage: stage, Err: err}
	}

	mainKey, mainURL, err := s.putFile(folder, main)
	if err != nil {
		return fail("main image", err)
	}
	uploaded = append(uploaded, mainKey)

	if len(secondary) > MaxSecondaryImages {
		secondary = secondary[:MaxSecondaryImages]
	}
	images := make([]domain.Image, 0, len(secondary))
	for i, fh := range secondary {
		key, url, err := s.putFile(folder, fh)
		if err != nil {
			return fail(fmt.Sprintf("secondary image %d", i+1), err)
		}
		uploaded = append(uploaded, key)
		images = append(images, domain.Image{URL: url})
	}

	imagesJSON, err := json.Marshal(images)
	if err != nil {
		return fail("encode images", err)
	}

	p = domain.Product{
		ID:           uuid.NewString(),
		Title:        in.Title,
		Brand:        in.Brand,
		Price:        in.Price,
		Quantity:     in.Quantity,
		Category:     in.Category,
		Condition:    in.Condition,
		Description:  in.Description,
		Features:     in.Features,
		Location:     in.Location,
		Delivery:     in.Delivery,
		Available:    true,
		MainImageURL: mainURL,
		ImagesJSON:   string(imagesJSON),
		UserID:       userID,
	}
	if err := s.Prods.Insert(p); err != nil {
		return fail("insert product", err)
	}

	return p, nil
}

// putFile uploads one multipart file under folder with a globally unique key
// built from a coarse timestamp, a random token and the sanitized name.
func (s *UploadService) putFile(folder string, fh *multipart.FileHeader) (key, url string, err error) {
	f, err := fh.Open()
	if err != nil {
		return "", "", fmt.Errorf("open %s: %w", fh.Filename, err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", "", fmt.Errorf("read %s: %w", fh.Filename, err)
	}

	token := uuid.NewString()[:8]
	key = fmt.Sprintf("%s/%d_%s_%s", folder, time.Now().Unix(), token, SanitizeFilename(fh.Filename))

	url, err = s.Store.Put(key, data, fh.Header.Get("Content-Type"))
	if err != nil {
		return "", "", err
	}
	return key, url, nil
}
