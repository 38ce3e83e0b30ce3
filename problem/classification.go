// Copyright 2024 The rusvm Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package problem

// Classification is the smoothed-hinge binary classifier: box aᵢ∈[0,wᵢ] if
// yᵢ>0 else [-wᵢ,0], sign(i)=yᵢ, loss(i,t) = MaxPoly2(1−yᵢ·t, s)·wᵢ.
type Classification struct {
	y      []float64
	w      []float64 // nil means unit weight for every sample
	params Params
}

// NewClassification builds a Classification problem from labels y (each
// ±1) and params.
func NewClassification(y []float64, params Params) *Classification {
	return &Classification{y: y, params: params}
}

// WithWeights returns a copy of c with per-sample weights w (same length as
// y); a nil or omitted w means every sample has weight 1.
func (c Classification) WithWeights(w []float64) *Classification {
	c.w = w
	return &c
}

func (c *Classification) weight(i int) float64 {
	if c.w == nil {
		return 1.0
	}
	return c.w[i]
}

func (c *Classification) Size() int { return len(c.y) }

func (c *Classification) Sign(i int) float64 { return c.y[i] }

func (c *Classification) Lb(i int) float64 {
	if c.y[i] > 0 {
		return 0
	}
	return -c.weight(i)
}

func (c *Classification) Ub(i int) float64 {
	if c.y[i] > 0 {
		return c.weight(i)
	}
	return 0
}

func (c *Classification) Params() Params { return c.params }

func (c *Classification) Loss(i int, ti float64) float64 {
	return c.weight(i) * MaxPoly2(1-c.y[i]*ti, c.params.Smoothing)
}

func (c *Classification) DLoss(i int, ti float64) float64 {
	return -c.y[i] * c.weight(i) * DMaxPoly2(1-c.y[i]*ti, c.params.Smoothing)
}

func (c *Classification) D2Loss(i int, ti float64) float64 {
	return c.weight(i) * D2MaxPoly2(1-c.y[i]*ti, c.params.Smoothing)
}

func (c *Classification) DualLoss(i int, ai float64) float64 {
	yi, wi := c.y[i], c.weight(i)
	return wi*DualMaxPoly2(ai*yi/wi, c.params.Smoothing) - yi*ai
}

func (c *Classification) DDualLoss(i int, ai float64) float64 {
	yi, wi := c.y[i], c.weight(i)
	return yi*DDualMaxPoly2(ai*yi/wi, c.params.Smoothing) - yi
}

func (c *Classification) D2DualLoss(i int, ai float64) float64 {
	yi, wi := c.y[i], c.weight(i)
	return D2DualMaxPoly2(ai*yi/wi, c.params.Smoothing) / wi
}

func (c *Classification) IsQuad() bool { return false }
