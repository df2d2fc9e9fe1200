package usecase

import (
	"context"
	"slices"
	"strings"

	"portfolio-backend/internal/domain"
)

type projectUsecase struct {
	projects []domain.Project
}

func NewProjectUsecase(projects []domain.Project) domain.ProjectUsecase {
	return &projectUsecase{projects: projects}
}

func (u *projectUsecase) List(ctx context.Context, tag string) []domain.Project {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return slices.Clone(u.projects)
	}

	filtered := make([]domain.Project, 0, len(u.projects))
	for _, p := range u.projects {
		for _, t := range p.Tags {
			if strings.EqualFold(t, tag) {
				filtered = append(filtered, p)
				break
			}
		}
	}
	return filtered
}
