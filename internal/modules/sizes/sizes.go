package sizesinfo

import (
	"context"

	"github.com/digitalocean/godo"

	"github.com/digitalocean/ansible-collection-sub001/internal/docloud"
	"github.com/digitalocean/ansible-collection-sub001/internal/model"
	"github.com/digitalocean/ansible-collection-sub001/internal/module"
)

type sizesModule struct{}

// New creates the sizes_info module.
func New() module.Module {
	return &sizesModule{}
}

func init() {
	if err := module.Register("sizes_info", New()); err != nil {
		panic(err)
	}
}

func (m *sizesModule) Metadata() module.Metadata {
	return module.Metadata{
		Name:        "sizes_info",
		Description: "List all of available Droplet sizes",
	}
}

func (m *sizesModule) Run(ctx context.Context, req *module.Request) (*model.Envelope, error) {
	if req.Task.State != "present" {
		return model.Success("No action taken (state is absent)"), nil
	}
	return run(ctx, req.Session.Client.Sizes)
}

type sizeLister interface {
	List(ctx context.Context, opt *godo.ListOptions) ([]godo.Size, *godo.Response, error)
}

func run(ctx context.Context, svc sizeLister) (*model.Envelope, error) {
	sizes, err := docloud.CollectAll(ctx, svc.List)
	if err != nil {
		return model.FromAPIError(docloud.APIErrorFrom(err)), nil
	}
	if len(sizes) == 0 {
		return model.Success("No Droplet sizes").WithFact("sizes", []godo.Size{}), nil
	}
	return model.Success("Current Droplet sizes").WithFact("sizes", sizes), nil
}
