package balanceinfo

import (
	"context"

	"github.com/digitalocean/godo"

	"github.com/digitalocean/ansible-collection-sub001/internal/docloud"
	"github.com/digitalocean/ansible-collection-sub001/internal/model"
	"github.com/digitalocean/ansible-collection-sub001/internal/module"
)

type balanceModule struct{}

// New creates the balance_info module.
func New() module.Module {
	return &balanceModule{}
}

func init() {
	if err := module.Register("balance_info", New()); err != nil {
		panic(err)
	}
}

func (m *balanceModule) Metadata() module.Metadata {
	return module.Metadata{
		Name:        "balance_info",
		Description: "Retrieve the balances on a customer's account",
	}
}

func (m *balanceModule) Run(ctx context.Context, req *module.Request) (*model.Envelope, error) {
	if req.Task.State != "present" {
		return model.Success("No action taken (state is absent)"), nil
	}
	return run(ctx, req.Session.Client.Balance)
}

type balanceGetter interface {
	Get(ctx context.Context) (*godo.Balance, *godo.Response, error)
}

func run(ctx context.Context, svc balanceGetter) (*model.Envelope, error) {
	balance, _, err := svc.Get(ctx)
	if err != nil {
		return model.FromAPIError(docloud.APIErrorFrom(err)), nil
	}
	if balance == nil {
		return model.Failure("Current balance information not found"), nil
	}
	return model.Success("Current balance information").WithFact("balance", balance), nil
}
