package param

import (
	"fmt"
	"math"
	"strconv"
	"sync/atomic"

	"github.com/justyntemme/audioui/pkg/core"
)

// Param is a named host-side parameter: a range plus atomically stored
// normalized state and optional text formatting.
//
// Widgets never inspect a Param. They hold a core.NormalParam view
// obtained from View and the host writes changes back through SetNormal.
type Param struct {
	Name      string
	ShortName string
	Unit      string

	rng      Range
	defaultN core.Normal

	// Atomic normalized value for lock-free reads across goroutines
	value uint32 // float32 bits

	formatFunc func(float32) string
	parseFunc  func(string) (float32, error)
}

// Normal returns the current normalized value.
func (p *Param) Normal() core.Normal {
	bits := atomic.LoadUint32(&p.value)
	return core.NewNormal(math.Float32frombits(bits))
}

// SetNormal stores a normalized value.
func (p *Param) SetNormal(n core.Normal) {
	atomic.StoreUint32(&p.value, math.Float32bits(n.Value()))
}

// Default returns the normalized default value.
func (p *Param) Default() core.Normal {
	return p.defaultN
}

// Value returns the current plain domain value.
func (p *Param) Value() float32 {
	return p.rng.ToValue(p.Normal())
}

// SetValue stores a plain domain value.
func (p *Param) SetValue(value float32) {
	p.SetNormal(p.rng.ToNormal(value))
}

// Range returns the parameter's value range.
func (p *Param) Range() Range {
	return p.rng
}

// View returns the NormalParam state a widget holds.
func (p *Param) View() core.NormalParam {
	return core.NormalParam{Value: p.Normal(), Default: p.defaultN}
}

// Format renders the current value as text.
func (p *Param) Format() string {
	return p.FormatNormal(p.Normal())
}

// FormatNormal renders the plain value behind n as text.
func (p *Param) FormatNormal(n core.Normal) string {
	plain := p.rng.ToValue(n)
	if p.formatFunc != nil {
		return p.formatFunc(plain)
	}
	if _, ok := p.rng.(IntRange); ok {
		return fmt.Sprintf("%.0f", plain)
	}
	return fmt.Sprintf("%.2f", plain)
}

// ParseNormal parses text to a normalized value.
func (p *Param) ParseNormal(str string) (core.Normal, error) {
	if p.parseFunc != nil {
		plain, err := p.parseFunc(str)
		if err != nil {
			return core.NormalMin(), err
		}
		return p.rng.ToNormal(plain), nil
	}
	plain, err := strconv.ParseFloat(str, 32)
	if err != nil {
		return core.NormalMin(), err
	}
	return p.rng.ToNormal(float32(plain)), nil
}
