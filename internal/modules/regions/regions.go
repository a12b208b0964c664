package regionsinfo

import (
	"context"

	"github.com/digitalocean/godo"

	"github.com/digitalocean/ansible-collection-sub001/internal/docloud"
	"github.com/digitalocean/ansible-collection-sub001/internal/model"
	"github.com/digitalocean/ansible-collection-sub001/internal/module"
)

type regionsModule struct{}

// New creates the regions_info module.
func New() module.Module {
	return &regionsModule{}
}

func init() {
	if err := module.Register("regions_info", New()); err != nil {
		panic(err)
	}
}

func (m *regionsModule) Metadata() module.Metadata {
	return module.Metadata{
		Name:        "regions_info",
		Description: "List all of the regions that are available",
	}
}

func (m *regionsModule) Run(ctx context.Context, req *module.Request) (*model.Envelope, error) {
	if req.Task.State != "present" {
		return model.Success("No action taken (state is absent)"), nil
	}
	return run(ctx, req.Session.Client.Regions)
}

type regionLister interface {
	List(ctx context.Context, opt *godo.ListOptions) ([]godo.Region, *godo.Response, error)
}

func run(ctx context.Context, svc regionLister) (*model.Envelope, error) {
	regions, err := docloud.CollectAll(ctx, svc.List)
	if err != nil {
		return model.FromAPIError(docloud.APIErrorFrom(err)), nil
	}
	if len(regions) == 0 {
		return model.Success("No regions").WithFact("regions", []godo.Region{}), nil
	}
	return model.Success("Current regions").WithFact("regions", regions), nil
}
