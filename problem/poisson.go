// Copyright 2024 The rusvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package problem

import "math"

// Poisson is the Poisson-regression problem: non-negative integer labels y,
// an exponential primal loss, and a dual loss with a log barrier keeping
// aᵢ/wᵢ below yᵢ.
type Poisson struct {
	y      []float64
	w      []float64
	params Params
}

// NewPoisson builds a Poisson problem over non-negative labels y and
// params.
func NewPoisson(y []float64, params Params) *Poisson {
	return &Poisson{y: y, params: params}
}

// WithWeights returns a copy of p with per-sample weights w.
func (p Poisson) WithWeights(w []float64) *Poisson {
	p.w = w
	return &p
}

func (p *Poisson) weight(i int) float64 {
	if p.w == nil {
		return 1.0
	}
	return p.w[i]
}

func (p *Poisson) Size() int { return len(p.y) }

func (p *Poisson) Sign(_ int) float64 { return 0 }

func (p *Poisson) Lb(_ int) float64 { return math.Inf(-1) }

func (p *Poisson) Ub(i int) float64 { return p.y[i] }

func (p *Poisson) Params() Params { return p.params }

func (p *Poisson) Loss(i int, ti float64) float64 {
	return p.weight(i) * (math.Exp(ti) - p.y[i]*ti)
}

func (p *Poisson) DLoss(i int, ti float64) float64 {
	return p.weight(i) * (math.Exp(ti) - p.y[i])
}

func (p *Poisson) D2Loss(i int, ti float64) float64 {
	return p.weight(i) * math.Exp(ti)
}

func (p *Poisson) DualLoss(i int, ai float64) float64 {
	wi := p.weight(i)
	yma := p.y[i] - ai/wi
	if yma == 0.0 {
		return 0.0
	}
	return wi * yma * (math.Log(yma) - 1.0)
}

func (p *Poisson) DDualLoss(i int, ai float64) float64 {
	wi := p.weight(i)
	yma := p.y[i] - ai/wi
	return -math.Log(yma)
}

func (p *Poisson) D2DualLoss(i int, ai float64) float64 {
	wi := p.weight(i)
	yma := p.y[i] - ai/wi
	return 1.0 / (wi * yma)
}

func (p *Poisson) IsQuad() bool { return false }
