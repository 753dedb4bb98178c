// Copyright 2026 The Parframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import "math"

// Material holds the properties of one structural material. Units follow the
// tonf-metre-second convention
type Material struct {
	Name string  `json:"name"`         // identifying name
	E    float64 `json:"e"`            // elastic modulus [tonf/m2]
	Nu   float64 `json:"nu"`           // Poisson's coefficient
	Rho  float64 `json:"rho"`          // density [tonf s2/m4]
	Fc   float64 `json:"fc,omitempty"` // concrete compressive strength [kgf/cm2]; 0 when not applicable
	Fy   float64 `json:"fy,omitempty"` // steel yield strength [tonf/m2]; 0 when not applicable
}

// G returns the shear modulus
func (o *Material) G() float64 {
	return o.E / (2.0 * (1.0 + o.Nu))
}

// Check validates the material properties
func (o *Material) Check() error {
	if o.E <= 0 {
		return confErr("elastic modulus must be positive. %g is invalid", o.E)
	}
	if o.Nu < 0 || o.Nu > 0.5 {
		return confErr("Poisson's coefficient must be within [0, 0.5]. %g is invalid", o.Nu)
	}
	if o.Rho <= 0 {
		return confErr("density must be positive. %g is invalid", o.Rho)
	}
	return nil
}

// ConcreteC210 returns the default f'c=210 concrete. E follows the ACI
// formula converted to tonf/m2
func ConcreteC210() *Material {
	return &Material{
		Name: "concrete_c210",
		E:    15000.0 * math.Sqrt(210.0) * 0.001 / (0.01 * 0.01),
		Nu:   0.2,
		Rho:  2.4 / 9.81,
		Fc:   210.0,
	}
}

// SteelA36 returns A36 structural steel
func SteelA36() *Material {
	return &Material{
		Name: "steel_a36",
		E:    2040000.0,
		Nu:   0.3,
		Rho:  7.85 / 9.81,
		Fy:   2530.0,
	}
}
