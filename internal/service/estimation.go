package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/rs/zerolog/log"
	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/metrics"
	"github.com/u4rad/camp-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
)

const (
	// EstimationDir is the storage directory of estimate PDFs.
	EstimationDir = "estimations"
	// GeneratedPDFName is the file name of the generated estimate.
	GeneratedPDFName = "ESTIMATION_Q8ElAn1.pdf"
	// GeneratedPDFText is the content of the generated estimate.
	GeneratedPDFText = "Hello, this is your PDF."
	// DefaultCompanyName labels uploads sent without a company name.
	DefaultCompanyName = "Unknown Company"
)

// FileStore persists files by slash separated relative path.
type FileStore interface {
	Save(dir, name string, r io.Reader) (string, error)
	Write(rel string, data []byte) error
	Open(rel string) (io.ReadCloser, error)
	Remove(rel string) error
}

// EstimationService renders and stores estimate PDFs.
type EstimationService struct {
	repo  repository.Repository[model.Estimation]
	files FileStore
}

// NewEstimationService creates an estimation service.
func NewEstimationService(repo repository.Repository[model.Estimation], files FileStore) *EstimationService {
	return &EstimationService{repo: repo, files: files}
}

// Generate renders the estimate PDF, stores it and returns its bytes and
// file name.
func (s *EstimationService) Generate(_ context.Context) ([]byte, string, error) {
	data, err := s.generate()
	metrics.RecordOperation(metrics.OpPDFGenerate, err)
	if err != nil {
		return nil, "", err
	}
	return data, GeneratedPDFName, nil
}

func (s *EstimationService) generate() ([]byte, error) {
	data, err := RenderEstimatePDF()
	if err != nil {
		return nil, err
	}
	if err := s.files.Write(path.Join(EstimationDir, GeneratedPDFName), data); err != nil {
		return nil, fmt.Errorf("store pdf: %w", err)
	}
	return data, nil
}

// RenderEstimatePDF draws the one-line estimate document.
func RenderEstimatePDF() ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 10, GeneratedPDFText)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Upload stores the file as sent and records an Estimation for it.
func (s *EstimationService) Upload(ctx context.Context, companyName, filename string, r io.Reader) (*model.Estimation, error) {
	est, err := s.upload(ctx, companyName, filename, r)
	metrics.RecordOperation(metrics.OpPDFUpload, err)
	return est, err
}

func (s *EstimationService) upload(ctx context.Context, companyName, filename string, r io.Reader) (*model.Estimation, error) {
	companyName = strings.TrimSpace(companyName)
	if companyName == "" {
		companyName = DefaultCompanyName
	}
	rel, err := s.files.Save(EstimationDir, filename, r)
	if err != nil {
		return nil, fmt.Errorf("store upload: %w", err)
	}

	est := &model.Estimation{CompanyName: companyName, PDFFile: rel}
	if err := s.repo.Create(ctx, est); err != nil {
		if rmErr := s.files.Remove(rel); rmErr != nil {
			log.Warn().Err(rmErr).Str("file", rel).Msg("Upload: orphaned file not removed")
		}
		return nil, err
	}
	return est, nil
}

// List returns every estimation, newest first.
func (s *EstimationService) List(ctx context.Context) ([]model.Estimation, error) {
	return s.repo.List(ctx, repository.Query{
		Sort: bson.D{{Key: "_id", Value: -1}},
	})
}

// Open returns the stored file of the estimation and its base name.
func (s *EstimationService) Open(ctx context.Context, id int64) (io.ReadCloser, string, error) {
	est, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, "", err
	}
	if est == nil {
		return nil, "", ErrNotFound
	}
	f, err := s.files.Open(est.PDFFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, "", fmt.Errorf("%w: file %s is missing", ErrNotFound, est.PDFFile)
	}
	if err != nil {
		return nil, "", fmt.Errorf("open %s: %w", est.PDFFile, err)
	}
	return f, path.Base(est.PDFFile), nil
}
