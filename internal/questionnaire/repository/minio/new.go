package minio

import (
	"depression-srv/internal/questionnaire/repository"
	"depression-srv/pkg/log"
	pkgMinio "depression-srv/pkg/minio"
)

type implDocumentRepository struct {
	storage pkgMinio.FileDownloader
	bucket  string
	object  string
	l       log.Logger
}

// New - Factory
func New(storage pkgMinio.FileDownloader, bucket, object string, l log.Logger) repository.DocumentRepository {
	return &implDocumentRepository{
		storage: storage,
		bucket:  bucket,
		object:  object,
		l:       l,
	}
}
