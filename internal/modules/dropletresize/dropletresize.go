package dropletresize

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/digitalocean/godo"
	"github.com/samber/lo"

	"github.com/digitalocean/ansible-collection-sub001/internal/config"
	"github.com/digitalocean/ansible-collection-sub001/internal/docloud"
	"github.com/digitalocean/ansible-collection-sub001/internal/model"
	"github.com/digitalocean/ansible-collection-sub001/internal/module"
	doerrors "github.com/digitalocean/ansible-collection-sub001/pkg/errors"
)

type resizeModule struct{}

// New creates the droplet_resize module.
func New() module.Module {
	return &resizeModule{}
}

func init() {
	if err := module.Register("droplet_resize", New()); err != nil {
		panic(err)
	}
}

func (m *resizeModule) Metadata() module.Metadata {
	return module.Metadata{
		Name:        "droplet_resize",
		Description: "Resize a Droplet and wait for it to reach the requested size",
	}
}

func (m *resizeModule) Run(ctx context.Context, req *module.Request) (*model.Envelope, error) {
	opts := req.Task.DropletResize
	if opts == nil {
		return nil, doerrors.NewModuleError("droplet_resize", errors.New("resize options missing from task"))
	}
	if req.Task.State != "present" {
		return model.Success("No action taken (state is absent)"), nil
	}

	r := &resizer{
		droplets:  req.Session.Client.Droplets,
		actions:   req.Session.Client.DropletActions,
		opts:      opts,
		timeout:   time.Duration(req.Task.Timeout) * time.Second,
		checkMode: req.CheckMode,
	}
	return r.run(ctx), nil
}

// dropletService is the slice of godo.DropletsService the resizer needs.
type dropletService interface {
	Get(ctx context.Context, dropletID int) (*godo.Droplet, *godo.Response, error)
	List(ctx context.Context, opt *godo.ListOptions) ([]godo.Droplet, *godo.Response, error)
}

// actionService is the slice of godo.DropletActionsService the resizer needs.
type actionService interface {
	Resize(ctx context.Context, dropletID int, sizeSlug string, resizeDisk bool) (*godo.Action, *godo.Response, error)
}

type resizer struct {
	droplets dropletService
	actions  actionService
	opts     *config.DropletResizeOptions
	timeout  time.Duration

	// interval overrides the poll cadence; zero means the default.
	interval time.Duration

	checkMode bool
}

func (r *resizer) run(ctx context.Context) *model.Envelope {
	droplet, env := r.findDroplet(ctx)
	if env != nil {
		return env
	}

	current := sizeSlug(droplet)
	region := regionSlug(droplet)

	if r.checkMode {
		if r.opts.Size != current {
			return model.ChangedResult(fmt.Sprintf(
				"Droplet %s (%d) in %s would be sent action 'resize', requested size is '%s' and current size is '%s'",
				droplet.Name, droplet.ID, region, r.opts.Size, current))
		}
		return model.Success(fmt.Sprintf(
			"Droplet %s (%d) in %s would not be sent action 'resize', requested size is '%s' and current size is '%s'",
			droplet.Name, droplet.ID, region, r.opts.Size, current))
	}

	if r.opts.Size == current {
		return model.Success(fmt.Sprintf(
			"Droplet %s (%d) in %s not sent action 'resize', requested size is '%s' and current size is '%s'",
			droplet.Name, droplet.ID, region, r.opts.Size, current)).
			WithFact("droplet", droplet)
	}

	return r.resize(ctx, droplet, current, region)
}

// resize drives the Requested -> Polling -> terminal state machine: submit
// the action once, then poll the droplet until its size matches the target.
func (r *resizer) resize(ctx context.Context, droplet *godo.Droplet, current, region string) *model.Envelope {
	var action *godo.Action

	result := docloud.Await(ctx, docloud.Action[*godo.Droplet]{
		Submit: func(ctx context.Context) error {
			submitted, _, err := r.actions.Resize(ctx, droplet.ID, r.opts.Size, *r.opts.Disk)
			if err != nil {
				return err
			}
			action = submitted
			return nil
		},
		Fetch: func(ctx context.Context) (*godo.Droplet, error) {
			fresh, _, err := r.droplets.Get(ctx, droplet.ID)
			return fresh, err
		},
		Converged: func(fresh *godo.Droplet) bool {
			return fresh != nil && sizeSlug(fresh) == r.opts.Size
		},
		Timeout:  r.timeout,
		Interval: r.interval,
	})

	switch result.Status {
	case docloud.PollConverged:
		fresh := result.Snapshot
		return model.ChangedResult(fmt.Sprintf(
			"Resized Droplet %s (%d) in %s from size %s to size %s",
			fresh.Name, fresh.ID, regionSlug(fresh), current, r.opts.Size)).
			WithFact("droplet", fresh).
			WithFact("action", action)
	case docloud.PollTimedOut:
		env := model.Failure(fmt.Sprintf(
			"Resize action for Droplet %d from %s to %s has failed to complete within %ds",
			droplet.ID, current, r.opts.Size, int(r.timeout.Seconds())))
		if action != nil {
			env.WithFact("action", action)
		}
		return env
	default:
		return model.FromAPIError(docloud.APIErrorFrom(result.Err)).
			WithFact("action", []any{})
	}
}

// findDroplet resolves the target droplet by id, or by name within a region.
// A non-nil envelope is a terminal failure.
func (r *resizer) findDroplet(ctx context.Context) (*godo.Droplet, *model.Envelope) {
	if r.opts.DropletID != 0 {
		droplet, _, err := r.droplets.Get(ctx, r.opts.DropletID)
		if err != nil {
			return nil, model.FromAPIError(docloud.APIErrorFrom(err)).WithFact("action", []any{})
		}
		if droplet == nil {
			return nil, model.Failure(fmt.Sprintf("No Droplet with ID %d", r.opts.DropletID)).
				WithFact("action", []any{})
		}
		return droplet, nil
	}

	droplets, err := docloud.CollectAll(ctx, r.droplets.List)
	if err != nil {
		return nil, model.FromAPIError(docloud.APIErrorFrom(err)).WithFact("action", []any{})
	}

	matches := lo.Filter(droplets, func(d godo.Droplet, _ int) bool {
		return regionSlug(&d) == r.opts.Region && d.Name == r.opts.Name
	})

	switch len(matches) {
	case 1:
		return &matches[0], nil
	case 0:
		return nil, model.Failure(fmt.Sprintf(
			"No Droplet named %s in %s", r.opts.Name, r.opts.Region)).
			WithFact("action", []any{})
	default:
		return nil, model.Failure(fmt.Sprintf(
			"There are currently %d Droplets named %s in %s",
			len(matches), r.opts.Name, r.opts.Region)).
			WithFact("action", []any{})
	}
}

func sizeSlug(d *godo.Droplet) string {
	if d.SizeSlug != "" {
		return d.SizeSlug
	}
	if d.Size != nil {
		return d.Size.Slug
	}
	return ""
}

func regionSlug(d *godo.Droplet) string {
	if d.Region != nil {
		return d.Region.Slug
	}
	return ""
}
