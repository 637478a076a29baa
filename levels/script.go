package levels

import (
	"fmt"
	"math/rand"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// runLayoutScript executes a layout script and decodes the `platforms`
// array it produces. Randomness comes from the `randf()` global, which
// draws from a source owned by this run and seeded with the generation
// seed. Scripts must not reach for tengo's rand module: its seed call
// goes through the deprecated package-global source and is ignored, so
// layouts built with it would not reproduce. The raw seed is also
// exposed as `seed`, and the math stdlib module is importable.
func runLayoutScript(name string, seed int64) ([]Platform, error) {
	src, err := LoadScript(name)
	if err != nil {
		return nil, fmt.Errorf("levels: load script %s: %w", name, err)
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap("math"))

	rng := rand.New(rand.NewSource(seed))
	randf := &tengo.UserFunction{
		Name: "randf",
		Value: func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 0 {
				return nil, tengo.ErrWrongNumArguments
			}
			return &tengo.Float{Value: rng.Float64()}, nil
		},
	}
	if err := script.Add("randf", randf); err != nil {
		return nil, fmt.Errorf("levels: script %s: %w", name, err)
	}
	if err := script.Add("seed", seed); err != nil {
		return nil, fmt.Errorf("levels: script %s: %w", name, err)
	}

	compiled, err := script.Run()
	if err != nil {
		return nil, fmt.Errorf("levels: run script %s: %w", name, err)
	}

	out := compiled.Get("platforms")
	if out == nil || out.IsUndefined() {
		return nil, fmt.Errorf("levels: script %s produced no platforms array", name)
	}
	raw, ok := out.Value().([]interface{})
	if !ok {
		return nil, fmt.Errorf("levels: script %s: platforms must be an array", name)
	}

	platforms := make([]Platform, 0, len(raw))
	for i, entry := range raw {
		m, ok := entry.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("levels: script %s: platform %d is not a map", name, i)
		}
		p := Platform{
			X:      numField(m, "x"),
			Y:      numField(m, "y"),
			W:      numField(m, "w"),
			H:      numField(m, "h"),
			StartX: numField(m, "start_x"),
			StartY: numField(m, "start_y"),
			EndX:   numField(m, "end_x"),
			EndY:   numField(m, "end_y"),
			Speed:  numField(m, "speed"),
		}
		if p.Speed <= 0 {
			return nil, fmt.Errorf("levels: script %s: platform %d: speed must be positive, got %g", name, i, p.Speed)
		}
		platforms = append(platforms, p)
	}
	return platforms, nil
}

func numField(m map[string]interface{}, key string) float64 {
	switch v := m[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	}
	return 0
}
