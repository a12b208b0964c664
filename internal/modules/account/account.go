package accountinfo

import (
	"context"

	"github.com/digitalocean/godo"

	"github.com/digitalocean/ansible-collection-sub001/internal/docloud"
	"github.com/digitalocean/ansible-collection-sub001/internal/model"
	"github.com/digitalocean/ansible-collection-sub001/internal/module"
)

type accountModule struct{}

// New creates the account_info module.
func New() module.Module {
	return &accountModule{}
}

func init() {
	if err := module.Register("account_info", New()); err != nil {
		panic(err)
	}
}

func (m *accountModule) Metadata() module.Metadata {
	return module.Metadata{
		Name:        "account_info",
		Description: "Show information about the current user account",
	}
}

func (m *accountModule) Run(ctx context.Context, req *module.Request) (*model.Envelope, error) {
	if req.Task.State != "present" {
		return model.Success("No action taken (state is absent)"), nil
	}
	return run(ctx, req.Session.Client.Account)
}

type accountGetter interface {
	Get(ctx context.Context) (*godo.Account, *godo.Response, error)
}

func run(ctx context.Context, svc accountGetter) (*model.Envelope, error) {
	account, _, err := svc.Get(ctx)
	if err != nil {
		return model.FromAPIError(docloud.APIErrorFrom(err)), nil
	}
	if account == nil {
		return model.Failure("Current account information not found"), nil
	}
	return model.Success("Current account information").WithFact("account", account), nil
}
