package agent

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/oms-agent/internal/domain"
)

// Fields valores extraídos del comando, indexados por clave normalizada.
type Fields map[string]string

// Extraction resultado del escaneo: los campos hallados o el primero que falta.
type Extraction struct {
	Fields  Fields
	Missing string
}

// OK indica que no falta ningún campo requerido.
func (e Extraction) OK() bool { return e.Missing == "" }

// fold normaliza mayúsculas/minúsculas de forma Unicode. Un Caser no debe
// compartirse entre goroutines, por eso se crea en cada llamada.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Extract recorre los tokens separados por espacios buscando key=value.
// La clave se compara sin distinguir mayúsculas; el valor se conserva tal cual.
// Gana la primera aparición de cada clave y un valor vacío cuenta como ausente.
func Extract(line string, keys ...string) Extraction {
	found := make(Fields, len(keys))
	for _, tok := range strings.Fields(line) {
		i := strings.IndexByte(tok, '=')
		if i <= 0 || i == len(tok)-1 {
			continue
		}
		key := fold(tok[:i])
		if _, dup := found[key]; dup {
			continue
		}
		found[key] = tok[i+1:]
	}

	out := Extraction{Fields: make(Fields, len(keys))}
	for _, k := range keys {
		v, ok := found[k]
		if !ok {
			out.Missing = k
			return out
		}
		out.Fields[k] = v
	}
	return out
}

// String devuelve el valor textual de key.
func (f Fields) String(key string) string { return f[key] }

// Int convierte key a entero.
func (f Fields) Int(key string) (int64, error) {
	n, err := strconv.ParseInt(f[key], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s debe ser un entero, se recibió %q", domain.ErrInvalidInput, key, f[key])
	}
	return n, nil
}

// Float convierte key a número decimal finito.
func (f Fields) Float(key string) (float64, error) {
	d, err := decimal.NewFromString(f[key])
	if err != nil {
		return 0, fmt.Errorf("%w: %s debe ser numérico, se recibió %q", domain.ErrInvalidInput, key, f[key])
	}
	return d.InexactFloat64(), nil
}
