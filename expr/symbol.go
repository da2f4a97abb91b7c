// Package expr: free symbols and their LaTeX spelling.
package expr

import "fmt"

// Symbol is a named free variable, e.g. t, chi, R.
type Symbol struct {
	name string
}

// Sym returns the symbol with the given name.
// Panics on an empty name (programmer error).
func Sym(name string) *Symbol {
	if name == "" {
		panic(panicEmptySymbolName)
	}
	return &Symbol{name: name}
}

// Name returns the symbol's name.
func (s *Symbol) Name() string { return s.name }

func (s *Symbol) String() string { return s.name }

// greekLaTeX maps common coordinate names onto their LaTeX macros.
// Names not present render verbatim.
var greekLaTeX = map[string]string{
	"alpha": "\\alpha", "beta": "\\beta", "gamma": "\\gamma",
	"delta": "\\delta", "epsilon": "\\epsilon", "zeta": "\\zeta",
	"eta": "\\eta", "theta": "\\theta", "kappa": "\\kappa",
	"lambda": "\\lambda", "mu": "\\mu", "nu": "\\nu", "xi": "\\xi",
	"rho": "\\rho", "sigma": "\\sigma", "tau": "\\tau",
	"phi": "\\phi", "chi": "\\chi", "psi": "\\psi", "omega": "\\omega",
}

func (s *Symbol) LaTeX() string {
	if g, ok := greekLaTeX[s.name]; ok {
		return g
	}
	// Differential coordinate symbols such as dtheta render as d\theta.
	if len(s.name) > 1 && s.name[0] == 'd' {
		if g, ok := greekLaTeX[s.name[1:]]; ok {
			return "d" + g
		}
	}
	return s.name
}

func (s *Symbol) Equal(other Expr) bool {
	o, ok := other.(*Symbol)
	return ok && s.name == o.name
}

func (s *Symbol) subst(name string, value Expr) Expr {
	if s.name == name {
		return value
	}
	return s
}

func (s *Symbol) diff(name string) (Expr, error) {
	if s.name == name {
		return Int(1), nil
	}
	return Int(0), nil
}

func (s *Symbol) eval(env map[string]float64) (float64, error) {
	if v, ok := env[s.name]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnboundSymbol, s.name)
}
