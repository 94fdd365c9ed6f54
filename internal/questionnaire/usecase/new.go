package usecase

import (
	"sync"

	"depression-srv/internal/model"
	"depression-srv/internal/questionnaire"
	"depression-srv/internal/questionnaire/repository"
	pkgErrors "depression-srv/pkg/errors"
	"depression-srv/pkg/log"

	"github.com/go-playground/validator/v10"
)

// implUseCase - Implementation of the UseCase interface
type implUseCase struct {
	repo     repository.DocumentRepository
	validate *validator.Validate
	l        log.Logger

	// requiredIDs must all be present in the document
	requiredIDs []string

	mu        sync.RWMutex
	questions []model.Question
}

// New - Factory function
func New(repo repository.DocumentRepository, l log.Logger) questionnaire.UseCase {
	v := validator.New()
	pkgErrors.UseJSONFieldNames(v)
	return &implUseCase{
		repo:        repo,
		validate:    v,
		l:           l,
		requiredIDs: model.AnswerFields,
	}
}
