package dropletresize

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/digitalocean/godo"
	"github.com/stretchr/testify/require"

	"github.com/digitalocean/ansible-collection-sub001/internal/config"
)

type fakeDroplets struct {
	mu   sync.Mutex
	gets int

	droplet *godo.Droplet
	getErr  error
	// errOnGet fails the nth Get (1-based); zero disables.
	errOnGet int
	// targetAfter flips the droplet to targetSize after this many Gets.
	targetAfter int
	targetSize  string

	list    []godo.Droplet
	listErr error
}

func (f *fakeDroplets) Get(ctx context.Context, dropletID int) (*godo.Droplet, *godo.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.gets++
	if f.getErr != nil && (f.errOnGet == 0 || f.gets == f.errOnGet) {
		return nil, nil, f.getErr
	}
	d := *f.droplet
	if f.targetAfter > 0 && f.gets > f.targetAfter {
		d.SizeSlug = f.targetSize
	}
	return &d, &godo.Response{}, nil
}

func (f *fakeDroplets) List(ctx context.Context, opt *godo.ListOptions) ([]godo.Droplet, *godo.Response, error) {
	if f.listErr != nil {
		return nil, nil, f.listErr
	}
	return f.list, &godo.Response{Links: &godo.Links{}}, nil
}

type fakeActions struct {
	mu      sync.Mutex
	resizes int
	action  *godo.Action
	err     error
}

func (f *fakeActions) Resize(ctx context.Context, dropletID int, sizeSlug string, resizeDisk bool) (*godo.Action, *godo.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resizes++
	if f.err != nil {
		return nil, nil, f.err
	}
	return f.action, &godo.Response{}, nil
}

func testDroplet() *godo.Droplet {
	return &godo.Droplet{
		ID:       3164444,
		Name:     "web-1",
		SizeSlug: "s-1vcpu-1gb",
		Region:   &godo.Region{Slug: "nyc3"},
	}
}

func newResizer(droplets *fakeDroplets, actions *fakeActions, opts *config.DropletResizeOptions, timeout time.Duration) *resizer {
	return &resizer{
		droplets: droplets,
		actions:  actions,
		opts:     opts,
		timeout:  timeout,
		interval: time.Millisecond,
	}
}

func boolPtr(b bool) *bool { return &b }

func resizeOpts() *config.DropletResizeOptions {
	return &config.DropletResizeOptions{
		DropletID: 3164444,
		Size:      "s-2vcpu-2gb",
		Disk:      boolPtr(true),
	}
}

func TestResizeConvergesAfterTwoPollCycles(t *testing.T) {
	t.Parallel()

	droplets := &fakeDroplets{
		droplet:     testDroplet(),
		targetAfter: 3, // initial lookup + two poll cycles
		targetSize:  "s-2vcpu-2gb",
	}
	actions := &fakeActions{action: &godo.Action{ID: 987654, Type: "resize", Status: "in-progress"}}

	env := newResizer(droplets, actions, resizeOpts(), 300*time.Second).run(context.Background())

	require.True(t, env.Changed)
	require.False(t, env.Failed)
	require.Contains(t, env.Msg, "Resized")
	require.Contains(t, env.Msg, "from size s-1vcpu-1gb to size s-2vcpu-2gb")
	require.Equal(t, 1, actions.resizes)

	droplet := env.Facts["droplet"].(*godo.Droplet)
	require.Equal(t, "s-2vcpu-2gb", droplet.SizeSlug)
	require.Equal(t, actions.action, env.Facts["action"])
}

func TestResizeTimesOutWithoutConvergence(t *testing.T) {
	t.Parallel()

	droplets := &fakeDroplets{droplet: testDroplet()}
	actions := &fakeActions{action: &godo.Action{ID: 987654, Status: "in-progress"}}

	env := newResizer(droplets, actions, resizeOpts(), 20*time.Millisecond).run(context.Background())

	require.False(t, env.Changed)
	require.True(t, env.Failed)
	require.Contains(t, env.Msg, "has failed")
	require.Nil(t, env.Error)
	require.Equal(t, 1, actions.resizes)
}

func TestResizeSubmitErrorIsFatal(t *testing.T) {
	t.Parallel()

	droplets := &fakeDroplets{droplet: testDroplet()}
	actions := &fakeActions{err: &godo.ErrorResponse{
		Response: &http.Response{StatusCode: http.StatusUnprocessableEntity},
		Message:  "The size you requested is not available",
	}}

	env := newResizer(droplets, actions, resizeOpts(), time.Second).run(context.Background())

	require.False(t, env.Changed)
	require.True(t, env.Failed)
	require.NotNil(t, env.Error)
	require.Equal(t, 422, env.Error.StatusCode)
	require.Equal(t, 1, droplets.gets) // only the initial lookup happened
}

func TestResizeFetchErrorMidPollIsDistinctFromTimeout(t *testing.T) {
	t.Parallel()

	droplets := &fakeDroplets{
		droplet:  testDroplet(),
		errOnGet: 3,
		getErr: &godo.ErrorResponse{
			Response: &http.Response{StatusCode: http.StatusInternalServerError},
			Message:  "Server Error",
		},
	}
	actions := &fakeActions{action: &godo.Action{ID: 987654, Status: "in-progress"}}

	env := newResizer(droplets, actions, resizeOpts(), 300*time.Second).run(context.Background())

	require.True(t, env.Failed)
	require.NotNil(t, env.Error)
	require.Equal(t, 500, env.Error.StatusCode)
	require.NotContains(t, env.Msg, "has failed to complete")
}

func TestResizeNoOpWhenAlreadyAtSize(t *testing.T) {
	t.Parallel()

	droplets := &fakeDroplets{droplet: testDroplet()}
	actions := &fakeActions{}
	opts := resizeOpts()
	opts.Size = "s-1vcpu-1gb"

	env := newResizer(droplets, actions, opts, time.Second).run(context.Background())

	require.False(t, env.Changed)
	require.False(t, env.Failed)
	require.Contains(t, env.Msg, "not sent action 'resize'")
	require.Equal(t, 0, actions.resizes)
}

func TestResizeCheckModeDoesNotSubmit(t *testing.T) {
	t.Parallel()

	droplets := &fakeDroplets{droplet: testDroplet()}
	actions := &fakeActions{}

	r := newResizer(droplets, actions, resizeOpts(), time.Second)
	r.checkMode = true
	env := r.run(context.Background())

	require.True(t, env.Changed)
	require.Contains(t, env.Msg, "would be sent action 'resize'")
	require.Equal(t, 0, actions.resizes)
	require.Equal(t, 1, droplets.gets)
}

func TestResizeCheckModeSameSize(t *testing.T) {
	t.Parallel()

	droplets := &fakeDroplets{droplet: testDroplet()}
	actions := &fakeActions{}
	opts := resizeOpts()
	opts.Size = "s-1vcpu-1gb"

	r := newResizer(droplets, actions, opts, time.Second)
	r.checkMode = true
	env := r.run(context.Background())

	require.False(t, env.Changed)
	require.Contains(t, env.Msg, "would not be sent action 'resize'")
	require.Equal(t, 0, actions.resizes)
}

func TestResizeFindsDropletByNameAndRegion(t *testing.T) {
	t.Parallel()

	target := *testDroplet()
	other := godo.Droplet{ID: 99, Name: "web-1", SizeSlug: "s-1vcpu-1gb", Region: &godo.Region{Slug: "ams3"}}

	droplets := &fakeDroplets{
		droplet:     &target,
		list:        []godo.Droplet{other, target},
		targetAfter: 1,
		targetSize:  "s-2vcpu-2gb",
	}
	actions := &fakeActions{action: &godo.Action{ID: 987654, Status: "in-progress"}}
	opts := &config.DropletResizeOptions{
		Name:   "web-1",
		Region: "nyc3",
		Size:   "s-2vcpu-2gb",
		Disk:   boolPtr(false),
	}

	env := newResizer(droplets, actions, opts, 300*time.Second).run(context.Background())

	require.True(t, env.Changed)
	require.Contains(t, env.Msg, "Resized Droplet web-1 (3164444) in nyc3")
}

func TestResizeNameLookupNoMatch(t *testing.T) {
	t.Parallel()

	droplets := &fakeDroplets{droplet: testDroplet(), list: nil}
	actions := &fakeActions{}
	opts := &config.DropletResizeOptions{
		Name:   "missing",
		Region: "nyc3",
		Size:   "s-2vcpu-2gb",
		Disk:   boolPtr(true),
	}

	env := newResizer(droplets, actions, opts, time.Second).run(context.Background())

	require.True(t, env.Failed)
	require.Contains(t, env.Msg, "No Droplet named missing in nyc3")
	require.Equal(t, 0, actions.resizes)
}

func TestResizeNameLookupAmbiguous(t *testing.T) {
	t.Parallel()

	one := *testDroplet()
	two := *testDroplet()
	two.ID = 3164445

	droplets := &fakeDroplets{droplet: &one, list: []godo.Droplet{one, two}}
	actions := &fakeActions{}
	opts := &config.DropletResizeOptions{
		Name:   "web-1",
		Region: "nyc3",
		Size:   "s-2vcpu-2gb",
		Disk:   boolPtr(true),
	}

	env := newResizer(droplets, actions, opts, time.Second).run(context.Background())

	require.True(t, env.Failed)
	require.Contains(t, env.Msg, "There are currently 2 Droplets named web-1 in nyc3")
}

func TestResizeDropletLookupError(t *testing.T) {
	t.Parallel()

	droplets := &fakeDroplets{
		droplet: testDroplet(),
		getErr: &godo.ErrorResponse{
			Response: &http.Response{StatusCode: http.StatusNotFound},
			Message:  "The resource you requested could not be found.",
		},
	}
	actions := &fakeActions{}

	env := newResizer(droplets, actions, resizeOpts(), time.Second).run(context.Background())

	require.True(t, env.Failed)
	require.NotNil(t, env.Error)
	require.Equal(t, 404, env.Error.StatusCode)
	require.Equal(t, 0, actions.resizes)
}
