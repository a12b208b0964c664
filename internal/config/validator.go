package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	doerrors "github.com/digitalocean/ansible-collection-sub001/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	sizeSlugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

	moduleNames = map[string]struct{}{
		"account_info":        {},
		"balance_info":        {},
		"droplet_resize":      {},
		"load_balancers_info": {},
		"regions_info":        {},
		"sizes_info":          {},
		"ssh_keys_info":       {},
		"tags_info":           {},
		"vpcs_info":           {},
	}
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("module_name", func(fl validator.FieldLevel) bool {
			_, ok := moduleNames[fl.Field().String()]
			return ok
		})

		_ = v.RegisterValidation("size_slug", func(fl validator.FieldLevel) bool {
			return sizeSlugPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ModuleNames returns the sorted-in-source set of recognized module names.
func ModuleNames() []string {
	names := make([]string, 0, len(moduleNames))
	for name := range moduleNames {
		names = append(names, name)
	}
	return names
}

// ValidateTask performs schema and cross-field validation on a task.
func ValidateTask(task *Task) error {
	if task == nil {
		return doerrors.NewValidationError("task", "task is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(task); err != nil {
		return convertValidationError(err)
	}

	if task.Module == "droplet_resize" {
		return validateDropletResize(task.DropletResize)
	}

	return nil
}

func validateDropletResize(opts *DropletResizeOptions) error {
	if opts == nil {
		return doerrors.NewValidationError("droplet_resize", "resize options are required", nil)
	}

	v := validatorInstance()
	if err := v.Struct(opts); err != nil {
		return convertValidationError(err)
	}

	if opts.DropletID == 0 && opts.Name == "" {
		return doerrors.NewValidationError("droplet_id",
			"one of droplet_id or name is required", nil)
	}
	if opts.DropletID != 0 && opts.Name != "" {
		return doerrors.NewValidationError("droplet_id",
			"droplet_id and name are mutually exclusive", nil)
	}
	if opts.Name != "" && opts.Region == "" {
		return doerrors.NewValidationError("region",
			"region is required when selecting a droplet by name", nil)
	}

	return nil
}

// convertValidationError normalizes validator errors into task validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return doerrors.NewValidationError(field, msg, err)
	}

	return doerrors.NewValidationError("task", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
