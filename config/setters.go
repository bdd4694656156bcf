package config

// The setters below validate a single change against the whole parameter set.
// On error the receiver is left untouched.

// SetIdealNumNodes sets the target population (1–300).
func (p *Params) SetIdealNumNodes(n int) error {
	return p.apply(func(c *Params) { c.IdealNumNodes = n })
}

// SetExtraEdgesPercent sets the extra-edge budget percentage (0–1000).
func (p *Params) SetExtraEdgesPercent(pct float64) error {
	return p.apply(func(c *Params) { c.ExtraEdgesPercent = pct })
}

// SetRadiiWeightPower sets the radius exponent in the edge weight (0–1).
func (p *Params) SetRadiiWeightPower(w float64) error {
	return p.apply(func(c *Params) { c.RadiiWeightPower = w })
}

// SetDriftSpeed sets the drift multiplier (0–100).
func (p *Params) SetDriftSpeed(s float64) error {
	return p.apply(func(c *Params) { c.DriftSpeed = s })
}

// SetRepulsionForce sets the force pass strength (0–100).
func (p *Params) SetRepulsionForce(f float64) error {
	return p.apply(func(c *Params) { c.RepulsionForce = f })
}

// SetRepulsion toggles the force pass. Always succeeds for a valid receiver.
func (p *Params) SetRepulsion(on bool) error {
	return p.apply(func(c *Params) { c.Repulsion = on })
}

// SetForcePasses sets how many force passes run per step (1–300).
func (p *Params) SetForcePasses(n int) error {
	return p.apply(func(c *Params) { c.ForcePasses = n })
}

// SetSpanningMethod selects "kruskal" or "prim".
func (p *Params) SetSpanningMethod(m string) error {
	return p.apply(func(c *Params) { c.SpanningMethod = m })
}

// apply mutates a copy, validates it and commits only on success.
func (p *Params) apply(mut func(*Params)) error {
	next := *p
	mut(&next)
	if err := next.Validate(); err != nil {
		return err
	}
	*p = next

	return nil
}
