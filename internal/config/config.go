// ABOUTME: Settings loading with global + project config merge for the checktree CLI
// ABOUTME: Unset fields keep tree defaults; project values override global ones

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/mauromedda/checktree-go/pkg/checktree"
)

// Output formats accepted by Settings.Format.
const (
	FormatHTML = "html"
	FormatText = "text"
)

// Settings holds the merged configuration. Pointer fields distinguish
// "unset" from an explicit false so a project file can turn a global flag off.
type Settings struct {
	TreeID             string `json:"tree_id,omitempty"`
	OptimisticToggle   *bool  `json:"optimistic_toggle,omitempty"`
	NoCascade          *bool  `json:"no_cascade,omitempty"`
	CheckModel         string `json:"check_model,omitempty"`
	OnlyLeafCheckboxes *bool  `json:"only_leaf_checkboxes,omitempty"`
	SingleValueOnly    *bool  `json:"single_value_only,omitempty"`
	ShowNodeIcon       *bool  `json:"show_node_icon,omitempty"`
	ExpandDisabled     *bool  `json:"expand_disabled,omitempty"`
	Theme              string `json:"theme,omitempty"`
	Format             string `json:"format,omitempty"`
}

// Load reads and merges global and project-local settings, then resolves
// environment variables. Missing files are not an error.
func Load(projectRoot string) (*Settings, error) {
	global, err := loadFile(GlobalSettingsFile())
	if err != nil {
		return nil, fmt.Errorf("loading global config: %w", err)
	}
	project, err := loadFile(ProjectSettingsFile(projectRoot))
	if err != nil {
		return nil, fmt.Errorf("loading project config: %w", err)
	}

	merged := merge(global, project)
	ResolveEnvVars(merged)
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return merged, nil
}

// loadFile reads Settings from a JSON file; a missing file yields empty Settings.
func loadFile(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Settings{}, nil
	}
	if err != nil {
		return nil, err
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &s, nil
}

// merge overlays project settings onto global settings.
func merge(global, project *Settings) *Settings {
	if global == nil {
		global = &Settings{}
	}
	if project == nil {
		return global
	}

	result := *global
	mergeString(&result.TreeID, project.TreeID)
	mergeString(&result.CheckModel, project.CheckModel)
	mergeString(&result.Theme, project.Theme)
	mergeString(&result.Format, project.Format)
	mergeBool(&result.OptimisticToggle, project.OptimisticToggle)
	mergeBool(&result.NoCascade, project.NoCascade)
	mergeBool(&result.OnlyLeafCheckboxes, project.OnlyLeafCheckboxes)
	mergeBool(&result.SingleValueOnly, project.SingleValueOnly)
	mergeBool(&result.ShowNodeIcon, project.ShowNodeIcon)
	mergeBool(&result.ExpandDisabled, project.ExpandDisabled)
	return &result
}

func mergeString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func mergeBool(dst **bool, v *bool) {
	if v != nil {
		b := *v
		*dst = &b
	}
}

// Validate rejects unknown check models and output formats.
func (s *Settings) Validate() error {
	if _, err := checktree.ParseCheckModel(s.CheckModel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch s.Format {
	case "", FormatHTML, FormatText:
	default:
		return fmt.Errorf("config: unknown format %q (want %s or %s)", s.Format, FormatHTML, FormatText)
	}
	return nil
}

// OutputFormat returns the configured format, html when unset.
func (s *Settings) OutputFormat() string {
	if s.Format == "" {
		return FormatHTML
	}
	return s.Format
}

// TreeOptions builds tree options from the defaults overlaid with s.
// fallbackID is used when no tree id is configured.
func (s *Settings) TreeOptions(fallbackID string) checktree.TreeOptions {
	id := s.TreeID
	if id == "" {
		id = fallbackID
	}
	opts := checktree.DefaultTreeOptions(id)
	opts.CheckModel, _ = checktree.ParseCheckModel(s.CheckModel)
	apply(&opts.OptimisticToggle, s.OptimisticToggle)
	apply(&opts.NoCascade, s.NoCascade)
	apply(&opts.OnlyLeafCheckboxes, s.OnlyLeafCheckboxes)
	apply(&opts.SingleValueOnly, s.SingleValueOnly)
	apply(&opts.ShowNodeIcon, s.ShowNodeIcon)
	apply(&opts.ExpandDisabled, s.ExpandDisabled)
	return opts
}

func apply(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

// Bool returns a pointer to b, for building Settings literals.
func Bool(b bool) *bool {
	return &b
}
