package ansible

import (
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	errUtils "github.com/molecule-go/molecule/errors"
	log "github.com/molecule-go/molecule/pkg/logger"
	"github.com/molecule-go/molecule/pkg/perf"
	u "github.com/molecule-go/molecule/pkg/utils"
)

// configTemplate renders the merged config options as INI-style text:
// a `[section]` header followed by `key = value` lines, sections separated
// by a blank line. Values pass through the funcmap pipeline: iniValue for
// the INI spelling, trim to normalize stray whitespace.
const configTemplate = `
{{- range .Sections }}
[{{ .Name }}]
{{- range .Entries }}
{{ .Key }} = {{ .Value | iniValue | trim }}
{{- end }}
{{ end -}}
`

type configSection struct {
	Name    string
	Entries []configEntry
}

type configEntry struct {
	Key   string
	Value any
}

// WriteConfig renders ansible.cfg from the merged config options and writes
// it to the ephemeral directory.
func (p *Provisioner) WriteConfig() error {
	defer perf.Track(&p.cfg, "ansible.WriteConfig")()

	configOptions, err := p.ConfigOptions()
	if err != nil {
		return err
	}

	rendered, err := renderConfig(configOptions)
	if err != nil {
		return err
	}

	if err := u.EnsureDir(p.cfg.EphemeralDirectory); err != nil {
		return err
	}

	log.Debug("Writing config", "file", p.ConfigFile())
	return u.WriteFile(p.ConfigFile(), rendered, 0o644)
}

// renderConfig produces the ansible.cfg text. Sections and keys are emitted
// in sorted order to keep the file deterministic.
func renderConfig(configOptions map[string]map[string]any) (string, error) {
	sectionNames := make([]string, 0, len(configOptions))
	for name := range configOptions {
		sectionNames = append(sectionNames, name)
	}
	sort.Strings(sectionNames)

	sections := make([]configSection, 0, len(sectionNames))
	for _, name := range sectionNames {
		entries := configOptions[name]
		keys := make([]string, 0, len(entries))
		for key := range entries {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		section := configSection{Name: name, Entries: make([]configEntry, 0, len(keys))}
		for _, key := range keys {
			section.Entries = append(section.Entries, configEntry{
				Key:   key,
				Value: entries[key],
			})
		}
		sections = append(sections, section)
	}

	tmpl, err := template.New(ConfigFileName).
		Funcs(sprig.TxtFuncMap()).
		Funcs(template.FuncMap{"iniValue": iniValue}).
		Parse(configTemplate)
	if err != nil {
		return "", fmt.Errorf("%w: %w", errUtils.ErrTemplateRender, err)
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, struct{ Sections []configSection }{Sections: sections}); err != nil {
		return "", fmt.Errorf("%w: %w", errUtils.ErrTemplateRender, err)
	}

	return strings.TrimSpace(sb.String()) + "\n", nil
}

// iniValue formats a config value for ansible.cfg. Booleans keep the
// capitalized True/False spelling the generated file has always used.
func iniValue(v any) string {
	if b, ok := v.(bool); ok {
		if b {
			return "True"
		}
		return "False"
	}
	return fmt.Sprint(v)
}
