package service

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"cyber_academy_backend/internal/config"
	"cyber_academy_backend/internal/util"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/pkg/errors"
)

// ErrDocumentNotFound is returned by providers when the named document does
// not exist. Network and credential failures are returned wrapped.
var ErrDocumentNotFound = errors.New("document not found")

// StorageProvider reads authored documents such as the module catalog.
type StorageProvider interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

type LocalStorageProvider struct {
	Config *config.StorageConfig
}

func (p *LocalStorageProvider) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	base, err := filepath.Abs(p.Config.LocalPath)
	if err != nil {
		return nil, err
	}
	path := filepath.Join(base, filepath.Clean("/"+name))
	if path != base && !strings.HasPrefix(path, base+string(filepath.Separator)) {
		return nil, errors.Wrapf(ErrDocumentNotFound, "path %q escapes storage root", name)
	}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, errors.Wrap(ErrDocumentNotFound, name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", name)
	}
	return f, nil
}

type MinioStorageProvider struct {
	Config *config.StorageConfig
	Client *minio.Client
}

func NewMinioStorageProvider(cfg *config.StorageConfig) (*MinioStorageProvider, error) {
	client, err := minio.New(cfg.MinioEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinioAccessID, cfg.MinioSecret, ""),
		Secure: cfg.MinioUseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStorageProvider{Config: cfg, Client: client}, nil
}

func (p *MinioStorageProvider) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	obj, err := p.Client.GetObject(ctx, p.Config.MinioBucket, strings.TrimPrefix(name, "/"), minio.GetObjectOptions{})
	if err != nil {
		return nil, minioError(err, name)
	}
	// GetObject is lazy; Stat surfaces a missing object before decoding starts.
	if _, err := obj.Stat(); err != nil {
		obj.Close()
		return nil, minioError(err, name)
	}
	return obj, nil
}

func minioError(err error, name string) error {
	switch minio.ToErrorResponse(err).Code {
	case "NoSuchKey", "NoSuchBucket":
		return errors.Wrap(ErrDocumentNotFound, name)
	}
	return errors.Wrapf(err, "minio get %s", name)
}

type StorageService struct {
	Provider StorageProvider
}

func NewStorageService(cfg *config.Config) (*StorageService, error) {
	switch cfg.Storage.Type {
	case util.StorageMinio:
		p, err := NewMinioStorageProvider(&cfg.Storage)
		if err != nil {
			return nil, err
		}
		return &StorageService{Provider: p}, nil
	case util.StorageLocal, "":
		return &StorageService{Provider: &LocalStorageProvider{Config: &cfg.Storage}}, nil
	}
	return nil, fmt.Errorf("unsupported storage type %q", cfg.Storage.Type)
}

func (s *StorageService) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return s.Provider.Open(ctx, name)
}
