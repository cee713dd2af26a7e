// SPDX-License-Identifier: EPL-2.0

package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"gopkg.in/yaml.v3"
)

// defaultConfigPaths are read in order when present; later flags on the
// command line win.
var defaultConfigPaths = []string{".waveform.yaml", "~/.waveform.yaml"}

// yamlLoader resolves flag defaults from a YAML mapping. Keys are flag
// names, with dashes or underscores:
//
//	wjs-width: 1800
//	wjs_plain: true
//	log-level: info
func yamlLoader(r io.Reader) (kong.Resolver, error) {
	values := map[string]any{}
	if err := yaml.NewDecoder(r).Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing YAML config: %w", err)
	}

	return kong.ResolverFunc(func(_ *kong.Context, _ *kong.Path, flag *kong.Flag) (any, error) {
		for _, key := range []string{flag.Name, strings.ReplaceAll(flag.Name, "-", "_")} {
			if v, ok := values[key]; ok && v != nil {
				return fmt.Sprint(v), nil
			}
		}

		return nil, nil
	}), nil
}
