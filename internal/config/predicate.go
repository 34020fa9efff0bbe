package config

import (
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/rs/zerolog"

	"aas-refmap/internal/tree"
)

// envOf builds the environment include expressions are evaluated against.
// Every variable is always present so that expressions type-check at compile
// time.
func envOf(n tree.Node) map[string]any {
	env := map[string]any{
		"idShort":    "",
		"kind":       "",
		"shape":      "",
		"semanticId": "",
		"value":      "",
		"valueType":  "",
		"children":   0,
	}

	if n == nil {
		return env
	}

	env["idShort"] = n.IdShort()
	env["kind"] = n.Kind().String()
	env["shape"] = n.Shape().String()
	env["children"] = len(n.Children())

	if sem, ok := n.SemanticTag(); ok {
		env["semanticId"] = sem.String()
	}

	if v, ok := n.(tree.Valued); ok {
		env["value"] = v.Value()
		env["valueType"] = v.ValueType()
	}

	return env
}

func compileInclude(src string) (*vm.Program, error) {
	if strings.TrimSpace(src) == "" {
		return nil, nil
	}

	return expr.Compile(src, expr.Env(envOf(nil)), expr.AsBool())
}

// IncludePredicate compiles Mapper.Include. It returns nil when no
// expression is configured. Evaluation errors exclude the node and are
// logged.
func (c *Config) IncludePredicate(logger zerolog.Logger) (func(tree.Node) bool, error) {
	program, err := compileInclude(c.Mapper.Include)
	if err != nil || program == nil {
		return nil, err
	}

	return func(n tree.Node) bool {
		out, err := expr.Run(program, envOf(n))
		if err != nil {
			logger.Warn().Err(err).Str("idShort", n.IdShort()).Msg("include expression failed")
			return false
		}

		ok, _ := out.(bool)

		return ok
	}, nil
}
