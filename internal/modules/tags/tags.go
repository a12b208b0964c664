package tagsinfo

import (
	"context"

	"github.com/digitalocean/godo"

	"github.com/digitalocean/ansible-collection-sub001/internal/docloud"
	"github.com/digitalocean/ansible-collection-sub001/internal/model"
	"github.com/digitalocean/ansible-collection-sub001/internal/module"
)

type tagsModule struct{}

// New creates the tags_info module.
func New() module.Module {
	return &tagsModule{}
}

func init() {
	if err := module.Register("tags_info", New()); err != nil {
		panic(err)
	}
}

func (m *tagsModule) Metadata() module.Metadata {
	return module.Metadata{
		Name:        "tags_info",
		Description: "Retrieve the tags on the account",
	}
}

func (m *tagsModule) Run(ctx context.Context, req *module.Request) (*model.Envelope, error) {
	if req.Task.State != "present" {
		return model.Success("No action taken (state is absent)"), nil
	}
	return run(ctx, req.Session.Client.Tags)
}

type tagLister interface {
	List(ctx context.Context, opt *godo.ListOptions) ([]godo.Tag, *godo.Response, error)
}

func run(ctx context.Context, svc tagLister) (*model.Envelope, error) {
	tags, err := docloud.CollectAll(ctx, svc.List)
	if err != nil {
		return model.FromAPIError(docloud.APIErrorFrom(err)), nil
	}
	if len(tags) == 0 {
		return model.Success("No tags").WithFact("tags", []godo.Tag{}), nil
	}
	return model.Success("Current tags").WithFact("tags", tags), nil
}
