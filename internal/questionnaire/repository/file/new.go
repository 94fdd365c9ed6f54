package file

import (
	"depression-srv/internal/questionnaire/repository"
	"depression-srv/pkg/log"
)

type implDocumentRepository struct {
	path string
	l    log.Logger
}

// New - Factory
func New(path string, l log.Logger) repository.DocumentRepository {
	return &implDocumentRepository{
		path: path,
		l:    l,
	}
}
