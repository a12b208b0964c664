package module

import (
	"context"

	"github.com/digitalocean/ansible-collection-sub001/internal/config"
	"github.com/digitalocean/ansible-collection-sub001/internal/docloud"
	"github.com/digitalocean/ansible-collection-sub001/internal/logger"
	"github.com/digitalocean/ansible-collection-sub001/internal/model"
)

// Metadata identifies a module for discovery and dispatch.
type Metadata struct {
	Name        string
	Description string
}

// Request carries everything a module needs for one invocation.
type Request struct {
	Task    *config.Task
	Session *docloud.Session

	// CheckMode asks mutating modules to report what would change without
	// submitting anything. Info modules ignore it.
	CheckMode bool

	Log *logger.Logger
}

// Module is the contract every automation module satisfies.
//
// Run maps a validated task onto exactly one result envelope. Every failure
// path must surface as a failed envelope; the error return is reserved for
// dispatch-level problems such as a missing options struct.
type Module interface {
	Metadata() Metadata
	Run(ctx context.Context, req *Request) (*model.Envelope, error)
}
