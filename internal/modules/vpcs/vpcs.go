package vpcsinfo

import (
	"context"

	"github.com/digitalocean/godo"

	"github.com/digitalocean/ansible-collection-sub001/internal/docloud"
	"github.com/digitalocean/ansible-collection-sub001/internal/model"
	"github.com/digitalocean/ansible-collection-sub001/internal/module"
)

type vpcsModule struct{}

// New creates the vpcs_info module.
func New() module.Module {
	return &vpcsModule{}
}

func init() {
	if err := module.Register("vpcs_info", New()); err != nil {
		panic(err)
	}
}

func (m *vpcsModule) Metadata() module.Metadata {
	return module.Metadata{
		Name:        "vpcs_info",
		Description: "List all of the VPCs on the account",
	}
}

func (m *vpcsModule) Run(ctx context.Context, req *module.Request) (*model.Envelope, error) {
	if req.Task.State != "present" {
		return model.Success("No action taken (state is absent)"), nil
	}
	return run(ctx, req.Session.Client.VPCs)
}

type vpcLister interface {
	List(ctx context.Context, opt *godo.ListOptions) ([]*godo.VPC, *godo.Response, error)
}

func run(ctx context.Context, svc vpcLister) (*model.Envelope, error) {
	vpcs, err := docloud.CollectAll(ctx, svc.List)
	if err != nil {
		return model.FromAPIError(docloud.APIErrorFrom(err)), nil
	}
	if len(vpcs) == 0 {
		return model.Success("No VPCs").WithFact("vpcs", []*godo.VPC{}), nil
	}
	return model.Success("Current VPCs").WithFact("vpcs", vpcs), nil
}
