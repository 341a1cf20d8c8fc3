package service

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cyber_academy_backend/internal/model"
	"cyber_academy_backend/internal/util"

	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `
modules:
  - title: Spotting Phishing
    level: beginner
    order: 1
    description: Recognise phishing emails.
    content: Check the sender.
  - title: Threat Modelling
    level: Advanced
    order: 1
    pointsReward: 25
    description: Map threats to assets.
    content: Start with the data flow.
`

func TestParseCatalog(t *testing.T) {
	modules, err := ParseCatalog(strings.NewReader(sampleCatalog))
	require.NoError(t, err)
	require.Len(t, modules, 2)

	assert.Equal(t, model.DefaultPointsReward, modules[0].PointsReward)
	assert.Equal(t, model.Advanced, modules[1].Level)
	assert.Equal(t, 25, modules[1].PointsReward)
}

func TestParseCatalog_Rejects(t *testing.T) {
	tests := map[string]string{
		"empty":          "",
		"bad level":      "modules:\n  - {title: A, level: expert, description: d, content: c}\n",
		"missing title":  "modules:\n  - {level: beginner, description: d, content: c}\n",
		"no content":     "modules:\n  - {title: A, level: beginner, description: d}\n",
		"negative":       "modules:\n  - {title: A, level: beginner, description: d, content: c, pointsReward: -5}\n",
		"unknown field":  "modules:\n  - {title: A, level: beginner, description: d, content: c, author: x}\n",
		"not a document": "modules: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCatalog(strings.NewReader(doc))
			assert.True(t, util.IsKind(err, util.KindValidation), "got %v", err)
		})
	}
}

func TestCatalogImport_SkipsExistingTitles(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, os.WriteFile(filepath.Join(f.cfg.Storage.LocalPath, "catalog.yaml"), []byte(sampleCatalog), 0o644))

	f.createModule(t, "Threat Modelling", model.Advanced, 1, 20)

	res, err := f.catalog.Import(ctx, "catalog.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"Spotting Phishing"}, res.Imported)
	assert.Equal(t, []string{"Threat Modelling"}, res.Skipped)

	again, err := f.catalog.Import(ctx, "catalog.yaml")
	require.NoError(t, err)
	assert.Empty(t, again.Imported)
	assert.Len(t, again.Skipped, 2)

	count, err := f.modules.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestCatalogImport_MissingSource(t *testing.T) {
	f := newFixture(t)

	_, err := f.catalog.Import(context.Background(), "../../etc/passwd")
	assert.True(t, util.IsKind(err, util.KindNotFound), "got %v", err)

	_, err = f.catalog.Import(context.Background(), " ")
	assert.True(t, util.IsKind(err, util.KindValidation))
}

type unreachableStorage struct{}

func (unreachableStorage) Open(context.Context, string) (io.ReadCloser, error) {
	return nil, errors.New("dial tcp 127.0.0.1:9000: connection refused")
}

func TestCatalogImport_StorageFailureIsInternal(t *testing.T) {
	f := newFixture(t)
	catalog := NewCatalogService(f.modules, &StorageService{Provider: unreachableStorage{}})

	_, err := catalog.Import(context.Background(), "catalog.yaml")
	require.Error(t, err)
	_, isAppErr := util.AsAppError(err)
	assert.False(t, isAppErr, "got %v", err)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestMinioError(t *testing.T) {
	tests := []struct {
		code     string
		notFound bool
	}{
		{"NoSuchKey", true},
		{"NoSuchBucket", true},
		{"AccessDenied", false},
		{"InvalidAccessKeyId", false},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			err := minioError(minio.ErrorResponse{Code: tt.code}, "catalog.yaml")
			assert.Equal(t, tt.notFound, errors.Is(err, ErrDocumentNotFound))
		})
	}
}

func TestSeedIfEmpty(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, os.WriteFile(filepath.Join(f.cfg.Storage.LocalPath, "seed.yaml"), []byte(sampleCatalog), 0o644))

	require.NoError(t, f.catalog.SeedIfEmpty(ctx, ""))
	count, err := f.modules.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, f.catalog.SeedIfEmpty(ctx, "seed.yaml"))
	count, err = f.modules.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	// a non-empty catalog is left alone even if the source is unreadable
	require.NoError(t, f.catalog.SeedIfEmpty(ctx, "missing.yaml"))
}
