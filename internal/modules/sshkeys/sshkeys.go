package sshkeysinfo

import (
	"context"

	"github.com/digitalocean/godo"

	"github.com/digitalocean/ansible-collection-sub001/internal/docloud"
	"github.com/digitalocean/ansible-collection-sub001/internal/model"
	"github.com/digitalocean/ansible-collection-sub001/internal/module"
)

type sshKeysModule struct{}

// New creates the ssh_keys_info module.
func New() module.Module {
	return &sshKeysModule{}
}

func init() {
	if err := module.Register("ssh_keys_info", New()); err != nil {
		panic(err)
	}
}

func (m *sshKeysModule) Metadata() module.Metadata {
	return module.Metadata{
		Name:        "ssh_keys_info",
		Description: "List all of the keys in the account",
	}
}

func (m *sshKeysModule) Run(ctx context.Context, req *module.Request) (*model.Envelope, error) {
	if req.Task.State != "present" {
		return model.Success("No action taken (state is absent)"), nil
	}
	return run(ctx, req.Session.Client.Keys)
}

type keyLister interface {
	List(ctx context.Context, opt *godo.ListOptions) ([]godo.Key, *godo.Response, error)
}

func run(ctx context.Context, svc keyLister) (*model.Envelope, error) {
	keys, err := docloud.CollectAll(ctx, svc.List)
	if err != nil {
		return model.FromAPIError(docloud.APIErrorFrom(err)), nil
	}
	if len(keys) == 0 {
		return model.Success("No SSH keys").WithFact("ssh_keys", []godo.Key{}), nil
	}
	return model.Success("Current SSH keys").WithFact("ssh_keys", keys), nil
}
