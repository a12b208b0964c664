package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	doerrors "github.com/digitalocean/ansible-collection-sub001/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// ParseTask loads a task file from disk, validates it, and returns the
// resulting model.
func ParseTask(path string) (*Task, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, doerrors.NewParseError(path, 0, err)
	}

	var task Task
	if err := yaml.Unmarshal(data, &task); err != nil {
		return nil, doerrors.NewParseError(path, extractLine(err), err)
	}

	if err := ValidateTask(&task); err != nil {
		return nil, err
	}

	return &task, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
