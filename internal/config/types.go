package config

import (
	"gopkg.in/yaml.v3"
)

// DefaultTimeout is the convergence budget, in seconds, applied when a task
// does not set one.
const DefaultTimeout = 300

// Task describes a single module invocation loaded from a YAML task file.
type Task struct {
	Module  string           `yaml:"module" validate:"required,module_name"`
	State   string           `yaml:"state" validate:"required,oneof=present absent"`
	Timeout int              `yaml:"timeout" validate:"max=86400"`
	Token   string           `yaml:"token,omitempty"`
	Client  *ClientOverrides `yaml:"client_options,omitempty"`

	DropletResize *DropletResizeOptions `yaml:",inline,omitempty"`
}

// ClientOverrides is the developer escape hatch for client construction.
type ClientOverrides struct {
	BaseURL   string `yaml:"base_url,omitempty" validate:"omitempty,url"`
	UserAgent string `yaml:"user_agent,omitempty"`
}

// DropletResizeOptions selects a droplet and the size to resize it to.
// Exactly one of DropletID or Name identifies the droplet; Name lookups
// additionally require Region.
type DropletResizeOptions struct {
	DropletID int    `yaml:"droplet_id,omitempty" validate:"omitempty,min=1"`
	Name      string `yaml:"name,omitempty"`
	Region    string `yaml:"region,omitempty"`
	Size      string `yaml:"size" validate:"required,size_slug"`
	Disk      *bool  `yaml:"disk" validate:"required"`
}

// UnmarshalYAML applies defaults and decodes module-specific options without
// conflicting with the shared task fields.
func (t *Task) UnmarshalYAML(value *yaml.Node) error {
	type baseTask struct {
		Module  string           `yaml:"module"`
		State   *string          `yaml:"state"`
		Timeout *int             `yaml:"timeout"`
		Token   string           `yaml:"token"`
		Client  *ClientOverrides `yaml:"client_options"`
	}

	var base baseTask
	if err := value.Decode(&base); err != nil {
		return err
	}

	t.Module = base.Module
	t.Token = base.Token
	t.Client = base.Client

	t.State = "present"
	if base.State != nil {
		t.State = *base.State
	}

	t.Timeout = DefaultTimeout
	if base.Timeout != nil {
		t.Timeout = *base.Timeout
	}

	t.DropletResize = nil

	switch base.Module {
	case "droplet_resize":
		var opts DropletResizeOptions
		if err := value.Decode(&opts); err != nil {
			return err
		}
		t.DropletResize = &opts
	}

	return nil
}
