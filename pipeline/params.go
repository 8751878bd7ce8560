package pipeline

import "math"

// Params holds the loosely-typed parameters for a single task, as a recipe
// runner would parse them from a task list.
type Params struct {
	Num  map[string]float64
	Str  map[string]string
	Bool map[string]bool
	List map[string][]float64
}

// GetNum safely extracts a numeric parameter, returning def if missing or
// invalid.
func (p Params) GetNum(key string, def float64) float64 {
	if p.Num == nil {
		return def
	}

	v, ok := p.Num[key]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}

	return v
}

// GetInt is GetNum truncated to an integer.
func (p Params) GetInt(key string, def int) int {
	return int(p.GetNum(key, float64(def)))
}

// GetStr safely extracts a string parameter, returning def if missing.
func (p Params) GetStr(key, def string) string {
	if p.Str == nil {
		return def
	}

	v, ok := p.Str[key]
	if !ok {
		return def
	}

	return v
}

// GetBool safely extracts a boolean parameter, returning def if missing.
func (p Params) GetBool(key string, def bool) bool {
	if p.Bool == nil {
		return def
	}

	v, ok := p.Bool[key]
	if !ok {
		return def
	}

	return v
}

// GetList safely extracts a numeric list parameter, returning def if
// missing.
func (p Params) GetList(key string, def []float64) []float64 {
	if p.List == nil {
		return def
	}

	v, ok := p.List[key]
	if !ok {
		return def
	}

	return v
}
