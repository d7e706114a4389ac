package domain

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// TaskDraft represents a task to be created. Drafts come from command-line
// flags or from a YAML file holding one or more of them.
// Fields are ordered to minimize memory padding.
type TaskDraft struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description,omitempty"`
	Context     string   `yaml:"context,omitempty"`
	Priority    string   `yaml:"priority,omitempty"`
	Namespace   string   `yaml:"namespace,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
}

// Validate checks that the draft can be sent to the backend.
func (d *TaskDraft) Validate() error {
	if strings.TrimSpace(d.Title) == "" {
		return ErrEmptyTitle
	}
	return nil
}

// draftFile is the YAML file shape: either a bare list of drafts or a
// document with a top-level "tasks" key.
type draftFile struct {
	Tasks []TaskDraft `yaml:"tasks"`
}

// ParseTaskDrafts parses a YAML file containing one or more task drafts.
//
// Accepted forms:
//
//	- title: First task
//	  tags: [backend]
//	- title: Second task
//
// or:
//
//	tasks:
//	  - title: First task
func ParseTaskDrafts(content []byte) ([]TaskDraft, error) {
	if len(strings.TrimSpace(string(content))) == 0 {
		return nil, ErrEmptyFile
	}

	var drafts []TaskDraft
	if err := yaml.Unmarshal(content, &drafts); err != nil {
		var file draftFile
		if err2 := yaml.Unmarshal(content, &file); err2 != nil {
			return nil, fmt.Errorf("parse drafts: %w", err)
		}
		drafts = file.Tasks
	}

	if len(drafts) == 0 {
		return nil, ErrNoTasksInFile
	}
	for i := range drafts {
		if err := drafts[i].Validate(); err != nil {
			return nil, fmt.Errorf("task %d: %w", i+1, err)
		}
	}
	return drafts, nil
}
