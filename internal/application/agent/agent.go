// Package agent despacha comandos de texto a las herramientas mediante una
// tabla ordenada de reglas disparador → campos → operación.
package agent

import (
	"context"
	"strings"

	"github.com/jhoicas/oms-agent/internal/application/result"
	"github.com/jhoicas/oms-agent/pkg/logger"
)

// Agent despachador sin estado: cada línea se resuelve en una sola pasada.
type Agent struct {
	ops   Operations
	rules []Rule
	log   *logger.Logger
}

// New construye el despachador con la tabla DefaultRules.
func New(ops Operations, log *logger.Logger) *Agent {
	return NewWithRules(ops, DefaultRules(), log)
}

// NewWithRules construye el despachador con una tabla propia.
func NewWithRules(ops Operations, rules []Rule, log *logger.Logger) *Agent {
	if log == nil {
		log = logger.Nop()
	}
	return &Agent{ops: ops, rules: rules, log: log.Component("agent")}
}

// Match devuelve la primera regla cuyo disparador aparece en line.
func (a *Agent) Match(line string) (Rule, bool) {
	text := fold(line)
	for _, r := range a.rules {
		if strings.Contains(text, r.Trigger) {
			return r, true
		}
	}
	return Rule{}, false
}

// Handle interpreta line y ejecuta la operación correspondiente.
func (a *Agent) Handle(ctx context.Context, line string) result.Result {
	rule, ok := a.Match(line)
	if !ok {
		a.log.Debug().Str("command", line).Msg("comando no reconocido")
		return result.Unknown()
	}

	ex := Extract(line, rule.Fields...)
	if !ex.OK() {
		a.log.Debug().Str("trigger", rule.Trigger).Str("field", ex.Missing).Msg("campo faltante")
		return result.FieldMissing(ex.Missing)
	}

	res := rule.Invoke(ctx, a.ops, ex.Fields)
	if res.IsError() {
		a.log.Warn().Str("trigger", rule.Trigger).Str("code", res.Code).Str("error", res.Message).Msg("comando fallido")
		return res
	}
	a.log.Debug().Str("trigger", rule.Trigger).Msg("comando ejecutado")
	return res
}
