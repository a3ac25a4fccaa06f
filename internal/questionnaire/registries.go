package questionnaire

import (
	"fmt"

	"github.com/alexanderramin/caseflow/internal/domain"
)

var (
	rightsRegistry    = MustNewRegistry(domain.DomainRights, DialectNone, nil, rightsDefs)
	careerRegistry    = MustNewRegistry(domain.DomainCareer, DialectRule, careerAliases, careerDefs)
	emotionalRegistry = MustNewRegistry(domain.DomainEmotional, DialectKeyValue, nil, emotionalDefs)
)

// Rights returns the Rights/benefits registry.
func Rights() *Registry { return rightsRegistry }

// Career returns the Career guidance registry.
func Career() *Registry { return careerRegistry }

// Emotional returns the Emotional support registry.
func Emotional() *Registry { return emotionalRegistry }

// ForDomain returns the registry for d.
func ForDomain(d domain.FormDomain) (*Registry, error) {
	switch d {
	case domain.DomainRights:
		return rightsRegistry, nil
	case domain.DomainCareer:
		return careerRegistry, nil
	case domain.DomainEmotional:
		return emotionalRegistry, nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownDomain, d)
	}
}
