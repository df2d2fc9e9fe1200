// Package content holds the site data shipped with the binary.
package content

import (
	_ "embed"
	"fmt"
	"strings"

	"portfolio-backend/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed projects.yaml
var projectsYAML []byte

// Projects decodes the embedded project list
func Projects() ([]domain.Project, error) {
	return ParseProjects(projectsYAML)
}

// ParseProjects decodes a YAML project list. Every project needs a title.
func ParseProjects(data []byte) ([]domain.Project, error) {
	var projects []domain.Project
	if err := yaml.Unmarshal(data, &projects); err != nil {
		return nil, fmt.Errorf("failed to decode projects: %w", err)
	}

	for i, p := range projects {
		if strings.TrimSpace(p.Title) == "" {
			return nil, fmt.Errorf("project #%d: title is required", i+1)
		}
		if p.BusinessMetrics == nil {
			projects[i].BusinessMetrics = []string{}
		}
		if p.Tags == nil {
			projects[i].Tags = []string{}
		}
	}
	return projects, nil
}
