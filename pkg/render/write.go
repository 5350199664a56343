package render

import (
	"context"
	"os"
	"path/filepath"

	"github.com/matzehuels/visnet/pkg/errors"
	"github.com/matzehuels/visnet/pkg/network"
)

// WriteFile renders net and writes the document to name. The name is
// validated before anything touches the filesystem; in local resource
// mode the vis-network files are placed in a lib directory next to the
// document.
func (r *Renderer) WriteFile(ctx context.Context, net *network.Network, name string) error {
	if err := errors.ValidateOutputName(name); err != nil {
		return err
	}
	if err := r.validate(); err != nil {
		return err
	}

	doc, err := r.GenerateHTML(ctx, net)
	if err != nil {
		return err
	}

	if r.cfg.Resources == errors.ResourcesLocal {
		if _, err := r.fetcher.EnsureLocal(ctx, filepath.Dir(name)); err != nil {
			return err
		}
	}

	if err := os.WriteFile(name, []byte(doc), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", name)
	}
	return nil
}
