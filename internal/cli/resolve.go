package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/alexanderramin/caseflow/internal/repository"
)

// resolveCaseID accepts a full case UUID or a unique prefix of one.
func resolveCaseID(ctx context.Context, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("case ID is required")
	}

	cases, err := app.Cases.List(ctx, repository.CaseFilter{IncludeArchived: true})
	if err != nil {
		return "", err
	}

	for _, c := range cases {
		if c.ID == input {
			return c.ID, nil
		}
	}

	var matches []string
	lower := strings.ToLower(input)
	for _, c := range cases {
		if strings.HasPrefix(c.ID, lower) {
			matches = append(matches, c.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("case %q: %w", input, repository.ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("case ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveCaseAndDomain handles the common "<case> <domain>" argument pair.
func resolveCaseAndDomain(ctx context.Context, app *App, caseArg, domainArg string) (string, domain.FormDomain, error) {
	d, err := domain.ParseFormDomain(domainArg)
	if err != nil {
		return "", "", err
	}
	id, err := resolveCaseID(ctx, app, caseArg)
	if err != nil {
		return "", "", err
	}
	return id, d, nil
}
