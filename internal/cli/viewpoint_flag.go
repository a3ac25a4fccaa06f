package cli

import (
	"strings"

	"github.com/alexanderramin/caseflow/internal/domain"
	"github.com/spf13/pflag"
)

// viewpointValue is a pflag.Value that only accepts known viewpoints.
type viewpointValue struct {
	vp *domain.Viewpoint
}

var _ pflag.Value = viewpointValue{}

func newViewpointValue(def domain.Viewpoint, p *domain.Viewpoint) viewpointValue {
	*p = def
	return viewpointValue{vp: p}
}

func (v viewpointValue) String() string {
	if v.vp == nil {
		return ""
	}
	return string(*v.vp)
}

func (v viewpointValue) Set(s string) error {
	parsed, err := domain.ParseViewpoint(s)
	if err != nil {
		return err
	}
	*v.vp = parsed
	return nil
}

func (v viewpointValue) Type() string { return "viewpoint" }

func viewpointUsage() string {
	names := make([]string, len(domain.Viewpoints))
	for i, vp := range domain.Viewpoints {
		names[i] = string(vp)
	}
	return "Viewpoint (" + strings.Join(names, ", ") + ")"
}
