package loadbalancersinfo

import (
	"context"

	"github.com/digitalocean/godo"

	"github.com/digitalocean/ansible-collection-sub001/internal/docloud"
	"github.com/digitalocean/ansible-collection-sub001/internal/model"
	"github.com/digitalocean/ansible-collection-sub001/internal/module"
)

type loadBalancersModule struct{}

// New creates the load_balancers_info module.
func New() module.Module {
	return &loadBalancersModule{}
}

func init() {
	if err := module.Register("load_balancers_info", New()); err != nil {
		panic(err)
	}
}

func (m *loadBalancersModule) Metadata() module.Metadata {
	return module.Metadata{
		Name:        "load_balancers_info",
		Description: "Returns a list of the load balancers on the account",
	}
}

func (m *loadBalancersModule) Run(ctx context.Context, req *module.Request) (*model.Envelope, error) {
	if req.Task.State != "present" {
		return model.Success("No action taken (state is absent)"), nil
	}
	return run(ctx, req.Session.Client.LoadBalancers)
}

type loadBalancerLister interface {
	List(ctx context.Context, opt *godo.ListOptions) ([]godo.LoadBalancer, *godo.Response, error)
}

func run(ctx context.Context, svc loadBalancerLister) (*model.Envelope, error) {
	loadBalancers, err := docloud.CollectAll(ctx, svc.List)
	if err != nil {
		return model.FromAPIError(docloud.APIErrorFrom(err)), nil
	}
	if len(loadBalancers) == 0 {
		return model.Success("No load balancers").
			WithFact("load_balancers", []godo.LoadBalancer{}), nil
	}
	return model.Success("Current load balancers").
		WithFact("load_balancers", loadBalancers), nil
}
