package hg

import (
	"strings"
)

// ReadConfig reads the configuration as seen with "hg showconfig" and
// replaces the cached mapping in full. It is called implicitly by the
// Config accessors on first use; call it explicitly to pick up changes
// made after that.
func (r *Repo) ReadConfig() (map[string]map[string]string, error) {
	out, err := r.run("showconfig")
	if err != nil {
		return nil, err
	}
	r.cfg = parseConfig(out)
	return r.cfg, nil
}

// ensureConfig populates the cache on first access.
func (r *Repo) ensureConfig() error {
	if r.cfg != nil {
		return nil
	}
	_, err := r.ReadConfig()
	return err
}

// Config returns the value of a configuration variable, or the empty
// string when the variable is not set.
func (r *Repo) Config(section, key string) (string, error) {
	if err := r.ensureConfig(); err != nil {
		return "", err
	}
	return r.cfg[section][key], nil
}

// ConfigBool returns a config value as a boolean. Empty values, "0" and
// the strings "false" and "none" (any capitalization) are false,
// anything else is true.
func (r *Repo) ConfigBool(section, key string) (bool, error) {
	value, err := r.Config(section, key)
	if err != nil {
		return false, err
	}
	return boolValue(value), nil
}

// ConfigList returns a config value as a list, delimited by commas, or
// by whitespace when no comma is present.
func (r *Repo) ConfigList(section, key string) ([]string, error) {
	value, err := r.Config(section, key)
	if err != nil {
		return nil, err
	}
	return listValue(value), nil
}

// parseConfig decodes "hg showconfig" output. Each line has the shape
// "section.key=value"; keys may themselves contain dots, only the first
// one separates the section.
func parseConfig(out string) map[string]map[string]string {
	cfg := map[string]map[string]string{}
	for _, row := range strings.Split(out, "\n") {
		if row == "" {
			continue
		}
		name, value, _ := strings.Cut(row, "=")
		section, key, _ := strings.Cut(name, ".")
		sectionCfg, ok := cfg[section]
		if !ok {
			sectionCfg = map[string]string{}
			cfg[section] = sectionCfg
		}
		sectionCfg[key] = strings.TrimSpace(value)
	}
	return cfg
}

func boolValue(value string) bool {
	if value == "" || value == "0" {
		return false
	}
	if strings.EqualFold(value, "false") || strings.EqualFold(value, "none") {
		return false
	}
	return true
}

func listValue(value string) []string {
	if value == "" {
		return []string{}
	}
	if strings.Contains(value, ",") {
		return strings.Split(value, ",")
	}
	return strings.Fields(value)
}
