// Package dice evaluates the priority expressions accepted by the rfi
// shell: a plain integer, or a dice term like "2d6", "d20" or "1d20+3".
package dice

import (
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidExpression indicates a string that is neither an integer nor
// a well-formed dice term.
var ErrInvalidExpression = errors.New("invalid dice expression")

// Expression is a parsed priority expression. Either Constant holds the
// whole value (IsConstant true), or Count dice with Sides sides are
// rolled and Modifier added to their sum.
type Expression struct {
	IsConstant bool
	Constant   int

	Count    int
	Sides    int
	Modifier int
}

// Parse validates and decomposes an expression string.
//
// Accepted forms:
//
//	15, -2          constant
//	d20, 2d6        dice term, count defaults to 1
//	1d20+3, 2d6-1   dice term with integer modifier
//
// Returns ErrInvalidExpression for anything else.
func Parse(expr string) (Expression, error) {
	s := strings.TrimSpace(expr)
	if s == "" {
		return Expression{}, fmt.Errorf("%w: empty", ErrInvalidExpression)
	}

	if n, err := strconv.Atoi(s); err == nil {
		return Expression{IsConstant: true, Constant: n}, nil
	}

	countStr, rest, found := strings.Cut(s, "d")
	if !found {
		return Expression{}, fmt.Errorf("%w: %q", ErrInvalidExpression, expr)
	}

	count := 1
	if countStr != "" {
		n, err := strconv.Atoi(countStr)
		if err != nil || n <= 0 {
			return Expression{}, fmt.Errorf("%w: %q", ErrInvalidExpression, expr)
		}
		count = n
	}

	sidesStr := rest
	modifier := 0
	if cut := strings.IndexAny(rest, "+-"); cut >= 0 {
		sidesStr = rest[:cut]
		m, err := strconv.Atoi(rest[cut:])
		if err != nil {
			return Expression{}, fmt.Errorf("%w: %q", ErrInvalidExpression, expr)
		}
		modifier = m
	}

	sides, err := strconv.Atoi(sidesStr)
	if err != nil || sides <= 0 {
		return Expression{}, fmt.Errorf("%w: %q", ErrInvalidExpression, expr)
	}

	return Expression{Count: count, Sides: sides, Modifier: modifier}, nil
}

// Roller evaluates expressions against a private random source.
//
// A Roller built with a non-zero seed is deterministic: the same seed
// and the same sequence of expressions always produce the same results.
type Roller struct {
	rng *rand.Rand
}

// New creates a Roller. A zero seed seeds from the clock.
func New(seed int64) *Roller {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Roller{rng: rand.New(rand.NewSource(seed))}
}

// Roll parses and evaluates an expression, returning the summed result.
func (r *Roller) Roll(expr string) (int, error) {
	parsed, err := Parse(expr)
	if err != nil {
		return 0, err
	}
	return r.Eval(parsed), nil
}

// Eval evaluates an already parsed expression.
func (r *Roller) Eval(e Expression) int {
	if e.IsConstant {
		return e.Constant
	}
	total := e.Modifier
	for i := 0; i < e.Count; i++ {
		total += r.rng.Intn(e.Sides) + 1
	}
	return total
}
