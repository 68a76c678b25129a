package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kirsle/configdir"
	homedir "github.com/mitchellh/go-homedir"
	"go.uber.org/zap"
)

var (
	ErrReservedVariableName      = errors.New("variable name is reserved")
	ErrUndefinedVariable         = errors.New("undefined variable")
	ErrCircularVariableReference = errors.New("variable expansion exceeded maximum passes (possible circular reference)")
)

// maxExpandPasses bounds the number of substitution passes over a single
// value. A well-formed reference chain resolves within the bound; anything
// still introducing references after it is treated as circular.
const maxExpandPasses = 10

// BuildScope constructs the resolved variable scope: system variables
// first, then each user-defined variable in document order. Expansion of
// a user variable's value sees only the entries inserted before it.
func BuildScope(cfg *Config, log *zap.Logger) (map[string]string, error) {
	scope := make(map[string]string)

	if home, err := homedir.Dir(); err == nil && home != "" {
		scope["home"] = home
		log.Debug("added system variable", zap.String("name", "home"), zap.String("value", home))
	} else {
		log.Warn("could not determine home directory")
	}
	if confDir := configdir.LocalConfig(); confDir != "" {
		scope["config"] = confDir
		log.Debug("added system variable", zap.String("name", "config"), zap.String("value", confDir))
	} else {
		log.Warn("could not determine config directory")
	}

	for _, v := range cfg.Vars {
		if v.Name == "home" || v.Name == "config" {
			return nil, fmt.Errorf("%w: %s", ErrReservedVariableName, v.Name)
		}
	}

	for _, v := range cfg.Vars {
		resolved, err := Expand(v.Value, scope)
		if err != nil {
			return nil, fmt.Errorf("variable %s: %w", v.Name, err)
		}
		scope[v.Name] = resolved
		log.Debug("resolved variable", zap.String("name", v.Name), zap.String("value", resolved))
	}
	return scope, nil
}

// Expand replaces every ${name} reference in s with its value from scope,
// re-scanning until the result is reference-free. Replacement values may
// themselves introduce new references; at most maxExpandPasses passes are
// made before the expansion is considered circular.
func Expand(s string, scope map[string]string) (string, error) {
	result := s
	for passes := 0; strings.Contains(result, "${"); passes++ {
		if passes >= maxExpandPasses {
			return "", ErrCircularVariableReference
		}
		expanded, changed, err := expandOnce(result, scope)
		if err != nil {
			return "", err
		}
		result = expanded
		if !changed {
			break
		}
	}
	return result, nil
}

// expandOnce performs a single left-to-right pass. The name between ${
// and the next } is taken literally: no nesting, no escaping, no
// whitespace trimming. An unterminated ${ consumes the rest of the
// string as the name.
func expandOnce(s string, scope map[string]string) (string, bool, error) {
	var (
		b       strings.Builder
		changed bool
	)
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		if s[i] == '$' && i+1 < len(s) && s[i+1] == '{' {
			end := strings.IndexByte(s[i+2:], '}')
			var name string
			if end == -1 {
				name = s[i+2:]
				i = len(s)
			} else {
				name = s[i+2 : i+2+end]
				i += 2 + end
			}
			value, ok := scope[name]
			if !ok {
				return "", false, fmt.Errorf("%w: %s", ErrUndefinedVariable, name)
			}
			b.WriteString(value)
			changed = true
		} else {
			b.WriteByte(s[i])
		}
	}
	return b.String(), changed, nil
}
