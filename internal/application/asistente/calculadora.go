package asistente

import (
	"errors"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// ErrExpresion indica que la expresión no es aritmética permitida o no puede evaluarse.
var ErrExpresion = errors.New("expresión no permitida")

const (
	maxBitsEntero   = 1 << 16
	maxDigitosTexto = 4300
	// Anidamiento máximo de paréntesis, signos unarios y potencias.
	maxProfundidad = 200
)

// valor es un entero de precisión arbitraria o un float64.
type valor struct {
	entero *big.Int
	f      float64
}

func (v valor) esEntero() bool { return v.entero != nil }

func desdeEntero(i *big.Int) (valor, error) {
	if i.BitLen() > maxBitsEntero {
		return valor{}, ErrExpresion
	}
	return valor{entero: i}, nil
}

func (v valor) float() (float64, error) {
	if !v.esEntero() {
		return v.f, nil
	}
	f, _ := new(big.Float).SetInt(v.entero).Float64()
	if math.IsInf(f, 0) {
		return 0, ErrExpresion
	}
	return f, nil
}

// Evaluar calcula una expresión con números, + - * / % ** y paréntesis.
// Los enteros se mantienen exactos; / siempre produce decimal.
func Evaluar(expr string) (string, error) {
	toks, err := tokenizar(expr)
	if err != nil {
		return "", err
	}
	p := &parser{toks: toks}
	v, err := p.expr()
	if err != nil {
		return "", err
	}
	if p.actual().tipo != tokFin {
		return "", ErrExpresion
	}
	return formatear(v)
}

func formatear(v valor) (string, error) {
	if v.esEntero() {
		s := v.entero.String()
		if len(strings.TrimPrefix(s, "-")) > maxDigitosTexto {
			return "", ErrExpresion
		}
		return s, nil
	}
	return reprFloat(v.f), nil
}

// reprFloat imita la representación más corta de un float: 3.5, 2.0, 1e+16, 1e-05.
func reprFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return "nan"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	e := strconv.FormatFloat(f, 'e', -1, 64)
	exp := 0
	if i := strings.IndexByte(e, 'e'); i >= 0 {
		exp, _ = strconv.Atoi(e[i+1:])
	}
	if f != 0 && (exp < -4 || exp >= 16) {
		return e
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// ── tokens ──

type tipoToken int

const (
	tokNumero tipoToken = iota
	tokOp
	tokAbre
	tokCierra
	tokFin
)

type token struct {
	tipo  tipoToken
	texto string
}

func tokenizar(s string) ([]token, error) {
	var toks []token
	nivel := 0
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\f':
			i++
		case c == '\n' || c == '\r':
			if nivel == 0 {
				return nil, ErrExpresion
			}
			i++
		case c >= '0' && c <= '9' || c == '.':
			j := i
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			if j < len(s) && s[j] == '.' {
				j++
				for j < len(s) && s[j] >= '0' && s[j] <= '9' {
					j++
				}
			}
			lit := s[i:j]
			if lit == "." {
				return nil, ErrExpresion
			}
			// 012 no es un literal entero válido; 000 y 01.5 sí.
			if !strings.ContainsRune(lit, '.') && len(lit) > 1 && lit[0] == '0' && strings.Trim(lit, "0") != "" {
				return nil, ErrExpresion
			}
			toks = append(toks, token{tipo: tokNumero, texto: lit})
			i = j
		case c == '(':
			nivel++
			toks = append(toks, token{tipo: tokAbre, texto: "("})
			i++
		case c == ')':
			nivel--
			toks = append(toks, token{tipo: tokCierra, texto: ")"})
			i++
		case c == '*':
			if i+1 < len(s) && s[i+1] == '*' {
				toks = append(toks, token{tipo: tokOp, texto: "**"})
				i += 2
				continue
			}
			toks = append(toks, token{tipo: tokOp, texto: "*"})
			i++
		case c == '/':
			if i+1 < len(s) && s[i+1] == '/' {
				return nil, ErrExpresion
			}
			toks = append(toks, token{tipo: tokOp, texto: "/"})
			i++
		case c == '+' || c == '-' || c == '%':
			toks = append(toks, token{tipo: tokOp, texto: string(c)})
			i++
		default:
			return nil, ErrExpresion
		}
	}
	return append(toks, token{tipo: tokFin}), nil
}

// ── parser ──

type parser struct {
	toks []token
	pos  int
	prof int
}

func (p *parser) actual() token { return p.toks[p.pos] }

func (p *parser) esOp(ops ...string) (string, bool) {
	t := p.actual()
	if t.tipo != tokOp {
		return "", false
	}
	for _, op := range ops {
		if t.texto == op {
			p.pos++
			return op, true
		}
	}
	return "", false
}

func (p *parser) expr() (valor, error) {
	izq, err := p.termino()
	if err != nil {
		return valor{}, err
	}
	for {
		op, ok := p.esOp("+", "-")
		if !ok {
			return izq, nil
		}
		der, err := p.termino()
		if err != nil {
			return valor{}, err
		}
		if izq, err = binaria(op, izq, der); err != nil {
			return valor{}, err
		}
	}
}

func (p *parser) termino() (valor, error) {
	izq, err := p.factor()
	if err != nil {
		return valor{}, err
	}
	for {
		op, ok := p.esOp("*", "/", "%")
		if !ok {
			return izq, nil
		}
		der, err := p.factor()
		if err != nil {
			return valor{}, err
		}
		if izq, err = binaria(op, izq, der); err != nil {
			return valor{}, err
		}
	}
}

func (p *parser) factor() (valor, error) {
	p.prof++
	defer func() { p.prof-- }()
	if p.prof > maxProfundidad {
		return valor{}, ErrExpresion
	}
	if op, ok := p.esOp("+", "-"); ok {
		v, err := p.factor()
		if err != nil || op == "+" {
			return v, err
		}
		if v.esEntero() {
			return valor{entero: new(big.Int).Neg(v.entero)}, nil
		}
		return valor{f: -v.f}, nil
	}
	return p.potencia()
}

func (p *parser) potencia() (valor, error) {
	base, err := p.atomo()
	if err != nil {
		return valor{}, err
	}
	if _, ok := p.esOp("**"); !ok {
		return base, nil
	}
	exp, err := p.factor()
	if err != nil {
		return valor{}, err
	}
	return potencia(base, exp)
}

func (p *parser) atomo() (valor, error) {
	t := p.actual()
	switch t.tipo {
	case tokNumero:
		p.pos++
		return literal(t.texto)
	case tokAbre:
		p.pos++
		v, err := p.expr()
		if err != nil {
			return valor{}, err
		}
		if p.actual().tipo != tokCierra {
			return valor{}, ErrExpresion
		}
		p.pos++
		return v, nil
	default:
		return valor{}, ErrExpresion
	}
}

func literal(lit string) (valor, error) {
	if !strings.ContainsRune(lit, '.') {
		if len(lit) > maxDigitosTexto {
			return valor{}, ErrExpresion
		}
		i, ok := new(big.Int).SetString(lit, 10)
		if !ok {
			return valor{}, ErrExpresion
		}
		return desdeEntero(i)
	}
	// Un literal fuera de rango vale inf.
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return valor{}, ErrExpresion
	}
	return valor{f: f}, nil
}

// ── operaciones ──

func binaria(op string, a, b valor) (valor, error) {
	if op == "/" {
		return dividir(a, b)
	}
	if a.esEntero() && b.esEntero() {
		x, y := a.entero, b.entero
		switch op {
		case "+":
			return desdeEntero(new(big.Int).Add(x, y))
		case "-":
			return desdeEntero(new(big.Int).Sub(x, y))
		case "*":
			if x.BitLen()+y.BitLen() > maxBitsEntero {
				return valor{}, ErrExpresion
			}
			return desdeEntero(new(big.Int).Mul(x, y))
		case "%":
			if y.Sign() == 0 {
				return valor{}, ErrExpresion
			}
			r := new(big.Int).Rem(x, y)
			if r.Sign() != 0 && r.Sign() != y.Sign() {
				r.Add(r, y)
			}
			return valor{entero: r}, nil
		}
		return valor{}, ErrExpresion
	}
	x, err := a.float()
	if err != nil {
		return valor{}, err
	}
	y, err := b.float()
	if err != nil {
		return valor{}, err
	}
	switch op {
	case "+":
		return valor{f: x + y}, nil
	case "-":
		return valor{f: x - y}, nil
	case "*":
		return valor{f: x * y}, nil
	case "%":
		return modFloat(x, y)
	}
	return valor{}, ErrExpresion
}

func dividir(a, b valor) (valor, error) {
	if a.esEntero() && b.esEntero() {
		if b.entero.Sign() == 0 {
			return valor{}, ErrExpresion
		}
		f, _ := new(big.Rat).SetFrac(a.entero, b.entero).Float64()
		if math.IsInf(f, 0) {
			return valor{}, ErrExpresion
		}
		return valor{f: f}, nil
	}
	x, err := a.float()
	if err != nil {
		return valor{}, err
	}
	y, err := b.float()
	if err != nil {
		return valor{}, err
	}
	if y == 0 {
		return valor{}, ErrExpresion
	}
	return valor{f: x / y}, nil
}

// modFloat: el resto toma el signo del divisor.
func modFloat(x, y float64) (valor, error) {
	if y == 0 {
		return valor{}, ErrExpresion
	}
	r := math.Mod(x, y)
	if r != 0 {
		if (r < 0) != (y < 0) {
			r += y
		}
	} else {
		r = math.Copysign(0, y)
	}
	return valor{f: r}, nil
}

func potencia(base, exp valor) (valor, error) {
	if base.esEntero() && exp.esEntero() && exp.entero.Sign() >= 0 {
		if !exp.entero.IsInt64() {
			return valor{}, ErrExpresion
		}
		n := exp.entero.Int64()
		bits := int64(base.entero.BitLen())
		if bits > 1 && n > maxBitsEntero/bits {
			return valor{}, ErrExpresion
		}
		return desdeEntero(new(big.Int).Exp(base.entero, exp.entero, nil))
	}
	x, err := base.float()
	if err != nil {
		return valor{}, err
	}
	y, err := exp.float()
	if err != nil {
		return valor{}, err
	}
	if y == 0 {
		return valor{f: 1}, nil
	}
	if x == 0 && y < 0 {
		return valor{}, ErrExpresion
	}
	// Base negativa con exponente fraccionario daría un complejo.
	if x < 0 && !math.IsInf(y, 0) && y != math.Trunc(y) {
		return valor{}, ErrExpresion
	}
	r := math.Pow(x, y)
	if math.IsInf(r, 0) && !math.IsInf(x, 0) && !math.IsInf(y, 0) {
		return valor{}, ErrExpresion
	}
	return valor{f: r}, nil
}
