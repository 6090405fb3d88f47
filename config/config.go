// Package config resolves startup options from the config file and CLI
// flags into the initial view policy.
package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/viper"

	"github.com/ftahirops/irqtop/model"
	"github.com/ftahirops/irqtop/util"
)

// Options mirrors the CLI/config-file surface, one field per tunable.
type Options struct {
	Filter   string  `mapstructure:"filter"`
	Interval float64 `mapstructure:"interval"` // seconds
	Count    int     `mapstructure:"count"`    // 0 = run until quit
	Total    bool    `mapstructure:"total"`    // show TOTAL column (implies no per-CPU columns at startup)
	Details  string  `mapstructure:"details"`  // "show", "hide", "auto"
	CPUs     string  `mapstructure:"cpus"`     // e.g. "0,1,5-7"; empty = all
	Sort     string  `mapstructure:"sort"`     // one of t T n N d D
	Batch    bool    `mapstructure:"batch"`
}

// Default returns the options used when neither file nor flags say
// otherwise: 1s sampling, all CPUs, device details if they fit, busiest
// IRQs first.
func Default() Options {
	return Options{
		Interval: 1.0,
		Details:  "auto",
		Sort:     "t",
	}
}

// Path returns the default config file location, XDG aware:
// ~/.config/irqtop/config.yaml. Empty when no home directory exists.
func Path() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "irqtop", "config.yaml")
}

// Load reads options from the given config file path, or the default
// location when path is empty. A missing file yields the defaults; a
// malformed one is reported and otherwise ignored.
func Load(path string) Options {
	opts := Default()

	v := viper.New()
	if path == "" {
		path = Path()
	}
	if path == "" {
		return opts
	}
	v.SetConfigFile(path)
	v.SetDefault("interval", opts.Interval)
	v.SetDefault("details", opts.Details)
	v.SetDefault("sort", opts.Sort)

	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("irqtop: warning: config %s: %v", path, err)
		}
		return opts
	}
	if err := v.Unmarshal(&opts); err != nil {
		log.Printf("irqtop: warning: config %s: %v", path, err)
		return Default()
	}
	return opts
}

// ParseSortSpec maps the one-letter sort spec to a key and direction:
// t/T by total (lowercase = busiest first), n/N by name, d/D by device
// (uppercase reverses).
func ParseSortSpec(s string) (model.SortKey, bool, error) {
	switch s {
	case "t":
		return model.SortTotal, true, nil
	case "T":
		return model.SortTotal, false, nil
	case "n":
		return model.SortName, false, nil
	case "N":
		return model.SortName, true, nil
	case "d":
		return model.SortDevice, false, nil
	case "D":
		return model.SortDevice, true, nil
	}
	return 0, false, fmt.Errorf("unknown sort key %q (want one of t T n N d D)", s)
}

// Policy validates the options into the initial view policy plus the
// startup CPU selection (a blank interactive CPU-list entry reverts to it).
func (o Options) Policy() (model.ViewPolicy, model.CPUSelection, error) {
	var pol model.ViewPolicy

	if o.Filter != "" {
		re, err := regexp.Compile(o.Filter)
		if err != nil {
			return pol, model.CPUSelection{}, fmt.Errorf("bad filter: %w", err)
		}
		pol.Filter = re
	}

	iv, err := util.ParseInterval(fmt.Sprintf("%g", o.Interval))
	if err != nil {
		return pol, model.CPUSelection{}, err
	}
	pol.Interval = iv

	if o.Count < 0 {
		return pol, model.CPUSelection{}, fmt.Errorf("count must be positive, got %d", o.Count)
	}
	pol.Remaining = o.Count

	key, desc, err := ParseSortSpec(o.Sort)
	if err != nil {
		return pol, model.CPUSelection{}, err
	}
	pol.Sort, pol.SortDesc = key, desc

	switch o.Details {
	case "show":
		pol.Device = model.DeviceShow
	case "hide":
		pol.Device = model.DeviceHide
	case "auto", "":
		pol.Device = model.DeviceFitIfRoom
	default:
		return pol, model.CPUSelection{}, fmt.Errorf("details must be show, hide or auto, got %q", o.Details)
	}

	pol.ShowTotal = o.Total

	sel := model.CPUSelection{Mode: model.CPUAll}
	switch {
	case o.Total && o.CPUs == "":
		// -t means the total column alone, as in the batch flags
		sel = model.CPUSelection{Mode: model.CPUNone}
	case o.CPUs != "":
		idx, err := util.ParseCPUList(o.CPUs)
		if err != nil {
			return pol, model.CPUSelection{}, err
		}
		sel = model.CPUSelection{Mode: model.CPUExplicit, Indices: idx}
	}
	pol.CPUs = sel

	return pol, sel, nil
}
