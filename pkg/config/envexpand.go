package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv substitutes environment variables into raw YAML using Go
// template syntax, so `{{.GITHUB_TOKEN}}` becomes the value of
// GITHUB_TOKEN. Template syntax is used instead of $VAR expansion
// because config values legitimately contain dollar signs (regex
// anchors, passwords) that must survive untouched.
//
// Variables that are unset render as empty strings; required-field
// validation catches those downstream. Content that fails to parse or
// execute as a template is returned unmodified, which lets plain YAML
// with no placeholders pass through.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	vars := map[string]string{}
	for _, kv := range os.Environ() {
		if name, value, ok := strings.Cut(kv, "="); ok && name != "" {
			vars[name] = value
		}
	}

	var out bytes.Buffer
	if err := tmpl.Execute(&out, vars); err != nil {
		return data
	}
	return out.Bytes()
}
