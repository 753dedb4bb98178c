// Copyright 2026 The Parframe Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

// analysis kind names
const (
	KindStatic  = "static"
	KindModal   = "modal"
	KindDynamic = "dynamic"
)

// kindsOrder fixes the canonical order of analysis kinds
var kindsOrder = []string{KindStatic, KindModal, KindDynamic}

// Overrides holds caller-supplied parameter overrides per analysis kind.
// Outer key = analysis kind; inner key = parameter name. Override wins on a
// per-key basis; unknown keys are rejected
type Overrides map[string]map[string]interface{}

// StaticConfig holds the solver parameters of one static analysis
type StaticConfig struct {
	System      string  `json:"system"`      // system of equations solver; e.g. "BandGeneral"
	Numberer    string  `json:"numberer"`    // dof numbering scheme; e.g. "RCM"
	Constraints string  `json:"constraints"` // constraints handler; e.g. "Plain"
	Integrator  string  `json:"integrator"`  // integrator; e.g. "LoadControl"
	Algorithm   string  `json:"algorithm"`   // solution algorithm; e.g. "Linear"
	NmaxIt      int     `json:"nmaxit"`      // number of load/iteration steps
	Tol         float64 `json:"tol"`         // convergence tolerance
}

// SetDefault sets default values
func (o *StaticConfig) SetDefault() {
	o.System = "BandGeneral"
	o.Numberer = "RCM"
	o.Constraints = "Plain"
	o.Integrator = "LoadControl"
	o.Algorithm = "Linear"
	o.NmaxIt = 10
	o.Tol = 1e-6
}

// ModalConfig holds the solver parameters of one modal analysis
type ModalConfig struct {
	NumModes    int    `json:"nummodes"`    // number of modes to extract
	EigenSolver string `json:"eigensolver"` // eigen-solver choice; e.g. "genBandArpack"
	System      string `json:"system"`      // system of equations solver
	Numberer    string `json:"numberer"`    // dof numbering scheme
	Constraints string `json:"constraints"` // constraints handler
}

// SetDefault sets default values
func (o *ModalConfig) SetDefault() {
	o.NumModes = 6
	o.EigenSolver = "genBandArpack"
	o.System = "BandGeneral"
	o.Numberer = "RCM"
	o.Constraints = "Plain"
}

// DynamicConfig holds the solver parameters of one dynamic (time-integration)
// analysis
type DynamicConfig struct {
	Dt         float64 `json:"dt"`         // time step size [s]
	NumSteps   int     `json:"numsteps"`   // number of time steps
	Damping    float64 `json:"damping"`    // damping ratio
	Integrator string  `json:"integrator"` // time integrator; e.g. "Newmark"
	Algorithm  string  `json:"algorithm"`  // solution algorithm; e.g. "Newton"
}

// SetDefault sets default values
func (o *DynamicConfig) SetDefault() {
	o.Dt = 0.01
	o.NumSteps = 1000
	o.Damping = 0.05
	o.Integrator = "Newmark"
	o.Algorithm = "Newton"
}

// VizConfig holds the visualization intent consumed only by the external
// post-processing collaborators, never by the analysis engine. It is built
// regardless of which analysis kinds are enabled
type VizConfig struct {
	Enabled        bool    `json:"enabled"`        // produce visualizations at all
	StaticDeformed bool    `json:"staticdeformed"` // draw static deformed shape
	ModalShapes    bool    `json:"modalshapes"`    // draw mode shapes
	DeformScale    float64 `json:"deformscale"`    // displacement scaling factor
	SaveHTML       bool    `json:"savehtml"`       // save interactive html files
	ShowNodes      bool    `json:"shownodes"`      // draw node markers
	LineWidth      float64 `json:"linewidth"`      // element line width
}

// SetDefault sets default values (visualization disabled)
func (o *VizConfig) SetDefault() {
	o.Enabled = false
	o.DeformScale = 100
	o.SaveHTML = true
	o.ShowNodes = true
	o.LineWidth = 2
}

// AnalysisConfig holds the set of enabled analysis kinds, one parameter
// record per enabled kind and the visualization intent
type AnalysisConfig struct {
	Enabled []string       `json:"enabled"`           // enabled kinds, in canonical {static, modal, dynamic} order
	Static  *StaticConfig  `json:"static,omitempty"`  // static parameters; nil unless enabled
	Modal   *ModalConfig   `json:"modal,omitempty"`   // modal parameters; nil unless enabled
	Dynamic *DynamicConfig `json:"dynamic,omitempty"` // dynamic parameters; nil unless enabled
	Viz     VizConfig      `json:"viz"`               // visualization intent; always present
}

// Has tells whether a given analysis kind is enabled
func (o *AnalysisConfig) Has(kind string) bool {
	for _, k := range o.Enabled {
		if k == kind {
			return true
		}
	}
	return false
}

// NewConfig builds a validated analysis configuration. kinds must be a
// non-empty subset of {static, modal, dynamic}; for each enabled kind the
// default parameter record is merged with the caller-supplied overrides.
// Unknown kinds and unknown override keys yield ConfigurationError without
// constructing a partial configuration
func NewConfig(kinds []string, overrides Overrides) (*AnalysisConfig, error) {
	if len(kinds) == 0 {
		return nil, confErr("at least one analysis kind must be enabled")
	}
	requested := make(map[string]bool)
	for _, k := range kinds {
		switch k {
		case KindStatic, KindModal, KindDynamic:
			requested[k] = true
		default:
			return nil, confErr("unknown analysis kind %q", k)
		}
	}
	for kind := range overrides {
		switch kind {
		case KindStatic, KindModal, KindDynamic, "viz":
		default:
			return nil, confErr("overrides given for unknown analysis kind %q", kind)
		}
	}

	o := new(AnalysisConfig)
	for _, k := range kindsOrder {
		if requested[k] {
			o.Enabled = append(o.Enabled, k)
		}
	}
	o.Viz.SetDefault()
	if err := o.Viz.merge(overrides["viz"]); err != nil {
		return nil, err
	}
	if requested[KindStatic] {
		o.Static = new(StaticConfig)
		o.Static.SetDefault()
		if err := o.Static.merge(overrides[KindStatic]); err != nil {
			return nil, err
		}
	}
	if requested[KindModal] {
		o.Modal = new(ModalConfig)
		o.Modal.SetDefault()
		if err := o.Modal.merge(overrides[KindModal]); err != nil {
			return nil, err
		}
	}
	if requested[KindDynamic] {
		o.Dynamic = new(DynamicConfig)
		o.Dynamic.SetDefault()
		if err := o.Dynamic.merge(overrides[KindDynamic]); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// merge applies static overrides
func (o *StaticConfig) merge(ov map[string]interface{}) error {
	for key, val := range ov {
		var err error
		switch key {
		case "system":
			o.System, err = ovString(KindStatic, key, val)
		case "numberer":
			o.Numberer, err = ovString(KindStatic, key, val)
		case "constraints":
			o.Constraints, err = ovString(KindStatic, key, val)
		case "integrator":
			o.Integrator, err = ovString(KindStatic, key, val)
		case "algorithm":
			o.Algorithm, err = ovString(KindStatic, key, val)
		case "nmaxit":
			o.NmaxIt, err = ovInt(KindStatic, key, val)
		case "tol":
			o.Tol, err = ovFloat(KindStatic, key, val)
		default:
			return confErr("unknown static parameter %q", key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// merge applies modal overrides
func (o *ModalConfig) merge(ov map[string]interface{}) error {
	for key, val := range ov {
		var err error
		switch key {
		case "nummodes":
			o.NumModes, err = ovInt(KindModal, key, val)
		case "eigensolver":
			o.EigenSolver, err = ovString(KindModal, key, val)
		case "system":
			o.System, err = ovString(KindModal, key, val)
		case "numberer":
			o.Numberer, err = ovString(KindModal, key, val)
		case "constraints":
			o.Constraints, err = ovString(KindModal, key, val)
		default:
			return confErr("unknown modal parameter %q", key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// merge applies dynamic overrides
func (o *DynamicConfig) merge(ov map[string]interface{}) error {
	for key, val := range ov {
		var err error
		switch key {
		case "dt":
			o.Dt, err = ovFloat(KindDynamic, key, val)
		case "numsteps":
			o.NumSteps, err = ovInt(KindDynamic, key, val)
		case "damping":
			o.Damping, err = ovFloat(KindDynamic, key, val)
		case "integrator":
			o.Integrator, err = ovString(KindDynamic, key, val)
		case "algorithm":
			o.Algorithm, err = ovString(KindDynamic, key, val)
		default:
			return confErr("unknown dynamic parameter %q", key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// merge applies visualization overrides
func (o *VizConfig) merge(ov map[string]interface{}) error {
	for key, val := range ov {
		var err error
		switch key {
		case "enabled":
			o.Enabled, err = ovBool("viz", key, val)
		case "staticdeformed":
			o.StaticDeformed, err = ovBool("viz", key, val)
		case "modalshapes":
			o.ModalShapes, err = ovBool("viz", key, val)
		case "deformscale":
			o.DeformScale, err = ovFloat("viz", key, val)
		case "savehtml":
			o.SaveHTML, err = ovBool("viz", key, val)
		case "shownodes":
			o.ShowNodes, err = ovBool("viz", key, val)
		case "linewidth":
			o.LineWidth, err = ovFloat("viz", key, val)
		default:
			return confErr("unknown viz parameter %q", key)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// override value conversion //////////////////////////////////////////////////

func ovString(kind, key string, val interface{}) (string, error) {
	if s, ok := val.(string); ok {
		return s, nil
	}
	return "", confErr("%s parameter %q needs a string. %v is invalid", kind, key, val)
}

func ovBool(kind, key string, val interface{}) (bool, error) {
	if b, ok := val.(bool); ok {
		return b, nil
	}
	return false, confErr("%s parameter %q needs a boolean. %v is invalid", kind, key, val)
}

func ovFloat(kind, key string, val interface{}) (float64, error) {
	switch v := val.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	}
	return 0, confErr("%s parameter %q needs a number. %v is invalid", kind, key, val)
}

func ovInt(kind, key string, val interface{}) (int, error) {
	switch v := val.(type) {
	case int:
		return v, nil
	case float64: // json numbers decode to float64
		return int(v), nil
	}
	return 0, confErr("%s parameter %q needs an integer. %v is invalid", kind, key, val)
}
