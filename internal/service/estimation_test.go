//go:build !integration

package service_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/u4rad/camp-service/internal/domain/model"
	"github.com/u4rad/camp-service/internal/mocks"
	"github.com/u4rad/camp-service/internal/service"
	"github.com/u4rad/camp-service/internal/storage"
)

func newEstimationService(t *testing.T) (*service.EstimationService, *mocks.MockRepository[model.Estimation], string) {
	t.Helper()
	root := t.TempDir()
	files, err := storage.NewLocal(root)
	require.NoError(t, err)
	repo := new(mocks.MockRepository[model.Estimation])
	return service.NewEstimationService(repo, files), repo, root
}

func TestEstimationService_Generate(t *testing.T) {
	svc, _, root := newEstimationService(t)

	data, name, err := svc.Generate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ESTIMATION_Q8ElAn1.pdf", name)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	stored, err := os.ReadFile(filepath.Join(root, "estimations", "ESTIMATION_Q8ElAn1.pdf"))
	require.NoError(t, err)
	assert.Equal(t, data, stored)
}

func TestEstimationService_Upload(t *testing.T) {
	svc, repo, root := newEstimationService(t)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*model.Estimation")).Run(func(args mock.Arguments) {
		args.Get(1).(*model.Estimation).ID = 12
	}).Return(nil)

	est, err := svc.Upload(context.Background(), "  ", "estimate.pdf", strings.NewReader("%PDF-1.4 body"))
	require.NoError(t, err)
	assert.Equal(t, int64(12), est.ID)
	assert.Equal(t, service.DefaultCompanyName, est.CompanyName)
	assert.Equal(t, "estimations/estimate.pdf", est.PDFFile)

	stored, err := os.ReadFile(filepath.Join(root, "estimations", "estimate.pdf"))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 body", string(stored), "uploads are stored unchanged")
}

func TestEstimationService_Open(t *testing.T) {
	svc, repo, _ := newEstimationService(t)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	est, err := svc.Upload(context.Background(), "Acme", "acme.pdf", strings.NewReader("pdf"))
	require.NoError(t, err)

	repo.On("FindByID", mock.Anything, int64(1)).Return(est, nil)
	repo.On("FindByID", mock.Anything, int64(2)).Return(nil, nil)

	rc, name, err := svc.Open(context.Background(), 1)
	require.NoError(t, err)
	defer func() { _ = rc.Close() }()
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "pdf", string(body))
	assert.Equal(t, "acme.pdf", name)

	_, _, err = svc.Open(context.Background(), 2)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestEstimationService_UploadRemovesFileWhenRecordFails(t *testing.T) {
	svc, repo, root := newEstimationService(t)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	_, err := svc.Upload(context.Background(), "Acme", "acme.pdf", strings.NewReader("pdf"))
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(root, "estimations", "acme.pdf"))
	assert.True(t, os.IsNotExist(statErr), "no file is left without an estimation")
}

func TestEstimationService_OpenMissingFile(t *testing.T) {
	svc, repo, root := newEstimationService(t)
	repo.On("FindByID", mock.Anything, int64(3)).
		Return(&model.Estimation{ID: 3, CompanyName: "Acme", PDFFile: "estimations/gone.pdf"}, nil)

	_, err := os.Stat(filepath.Join(root, "estimations", "gone.pdf"))
	require.True(t, os.IsNotExist(err))

	_, _, err = svc.Open(context.Background(), 3)
	assert.ErrorIs(t, err, service.ErrNotFound)
}
