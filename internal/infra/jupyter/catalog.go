package jupyter

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/PaesslerAG/jsonpath"

	"github.com/sruddy1/ir-pipeline-template/internal/domain"
	"github.com/sruddy1/ir-pipeline-template/internal/ports"
)

// Catalog lists installed kernelspecs by asking jupyter for its JSON view.
type Catalog struct {
	runner ports.CommandRunner
	binary string
}

type CatalogOption func(*Catalog)

// WithBinary overrides the jupyter executable, e.g. the one inside a venv.
func WithBinary(path string) CatalogOption {
	return func(c *Catalog) { c.binary = path }
}

func NewCatalog(runner ports.CommandRunner, opts ...CatalogOption) *Catalog {
	c := &Catalog{
		runner: runner,
		binary: "jupyter",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

var _ ports.KernelCatalog = (*Catalog)(nil)

func (c *Catalog) List(ctx context.Context) ([]ports.KernelSpec, error) {
	res, err := c.runner.Run(ctx, domain.Command{
		Name: c.binary,
		Args: []string{"kernelspec", "list", "--json"},
	})
	if err != nil {
		return nil, err
	}

	return parseKernelspecs(res.Stdout)
}

func parseKernelspecs(raw []byte) ([]ports.KernelSpec, error) {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, &domain.OpError{
			Op:   "jupyter.kernelspecs",
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("kernelspec output is not valid JSON: %w", err),
		}
	}

	specsVal, err := jsonpath.Get("$.kernelspecs", doc)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "jupyter.kernelspecs",
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("no kernelspecs object: %w", err),
		}
	}

	specs, ok := specsVal.(map[string]any)
	if !ok {
		return nil, &domain.OpError{
			Op:   "jupyter.kernelspecs",
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("kernelspecs is %T, expected object", specsVal),
		}
	}

	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names) // stable output for tests/UI

	out := make([]ports.KernelSpec, 0, len(names))
	for _, name := range names {
		ks := ports.KernelSpec{Name: name}

		if v, err := jsonpath.Get(fmt.Sprintf("$.kernelspecs[%q].resource_dir", name), doc); err == nil {
			if s, ok := v.(string); ok {
				ks.ResourceDir = s
			}
		}
		if v, err := jsonpath.Get(fmt.Sprintf("$.kernelspecs[%q].spec.display_name", name), doc); err == nil {
			if s, ok := v.(string); ok {
				ks.DisplayName = s
			}
		}

		out = append(out, ks)
	}
	return out, nil
}
