package domain

import "context"

type Testimonial struct {
	Quote  string `json:"quote" yaml:"quote"`
	Author string `json:"author" yaml:"author"`
}

type ProjectImages struct {
	Desktop *string `json:"desktop" yaml:"desktop"`
	Mobile  *string `json:"mobile" yaml:"mobile"`
}

// Project is a portfolio entry shown on the projects page
type Project struct {
	Title           string        `json:"title" yaml:"title"`
	HeroStatement   string        `json:"heroStatement" yaml:"heroStatement"`
	Description     string        `json:"description" yaml:"description"`
	BusinessMetrics []string      `json:"businessMetrics" yaml:"businessMetrics"`
	Testimonial     *Testimonial  `json:"testimonial" yaml:"testimonial"`
	Tags            []string      `json:"tags" yaml:"tags"`
	ProjectURL      string        `json:"projectUrl" yaml:"projectUrl"`
	SourceCodeURL   string        `json:"sourceCodeUrl" yaml:"sourceCodeUrl"`
	Images          ProjectImages `json:"images" yaml:"images"`
}

type ProjectUsecase interface {
	// List returns projects in display order, optionally filtered by tag (case-insensitive)
	List(ctx context.Context, tag string) []Project
}
