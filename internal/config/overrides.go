package config

import "fmt"

// InvalidOverride is returned when a recognized policy-override key is
// present but its value has the wrong type (§6).
type InvalidOverride struct {
	Key   string
	Value any
}

func (e *InvalidOverride) Error() string {
	return fmt.Sprintf("config: invalid override for %q: %v", e.Key, e.Value)
}

type overrideSetter func(c *Config, v any) error

// recognizedOverrides enumerates exactly the keys named in §6. Any key not
// present here is ignored silently, per the same section.
var recognizedOverrides = map[string]overrideSetter{
	"match_strategy.strategy": func(c *Config, v any) error {
		s, ok := v.(string)
		if !ok || (s != "quantile" && s != "static") {
			return &InvalidOverride{"match_strategy.strategy", v}
		}
		c.MatchStrategy.Strategy = s
		return nil
	},
	"match_strategy.topk": func(c *Config, v any) error {
		n, err := asInt(v)
		if err != nil || n < 1 {
			return &InvalidOverride{"match_strategy.topk", v}
		}
		c.MatchStrategy.TopK = n
		return nil
	},
	"match_strategy.jd_q": func(c *Config, v any) error {
		return setUnitFloat(&c.MatchStrategy.JDQ, "match_strategy.jd_q", v)
	},
	"match_strategy.resume_q": func(c *Config, v any) error {
		return setUnitFloat(&c.MatchStrategy.ResumeQ, "match_strategy.resume_q", v)
	},
	"match_strategy.task_q": func(c *Config, v any) error {
		return setUnitFloat(&c.MatchStrategy.TaskQ, "match_strategy.task_q", v)
	},
	"match_strategy.jd_floor": func(c *Config, v any) error {
		return setUnitFloat(&c.MatchStrategy.JDFloor, "match_strategy.jd_floor", v)
	},
	"match_strategy.resume_floor": func(c *Config, v any) error {
		return setUnitFloat(&c.MatchStrategy.ResumeFloor, "match_strategy.resume_floor", v)
	},
	"match_strategy.task_floor": func(c *Config, v any) error {
		return setUnitFloat(&c.MatchStrategy.TaskFloor, "match_strategy.task_floor", v)
	},
	"match_strategy.lexical_guard": func(c *Config, v any) error {
		b, ok := v.(bool)
		if !ok {
			return &InvalidOverride{"match_strategy.lexical_guard", v}
		}
		c.MatchStrategy.LexicalGuard = b
		return nil
	},
	"crag.min_hits": func(c *Config, v any) error {
		n, err := asInt(v)
		if err != nil || n < 0 {
			return &InvalidOverride{"crag.min_hits", v}
		}
		c.CRAG.MinHits = n
		return nil
	},
	"crag.min_margin": func(c *Config, v any) error {
		f, err := asFloat(v)
		if err != nil || f < 0 {
			return &InvalidOverride{"crag.min_margin", v}
		}
		c.CRAG.MinMargin = f
		return nil
	},
	"crag.max_retries": func(c *Config, v any) error {
		n, err := asInt(v)
		if err != nil || n < 0 {
			return &InvalidOverride{"crag.max_retries", v}
		}
		c.CRAG.MaxRetries = n
		return nil
	},
	"crag.max_topk": func(c *Config, v any) error {
		n, err := asInt(v)
		if err != nil || n < 1 {
			return &InvalidOverride{"crag.max_topk", v}
		}
		c.CRAG.MaxTopK = n
		return nil
	},
	"crag.bump_topk_by": func(c *Config, v any) error {
		n, err := asInt(v)
		if err != nil || n < 0 {
			return &InvalidOverride{"crag.bump_topk_by", v}
		}
		c.CRAG.BumpTopKBy = n
		return nil
	},
	"crag.allow_recipe_switch": func(c *Config, v any) error {
		b, ok := v.(bool)
		if !ok {
			return &InvalidOverride{"crag.allow_recipe_switch", v}
		}
		c.CRAG.AllowRecipeSwitch = b
		return nil
	},
	"score_weights.level_grace": func(c *Config, v any) error {
		f, err := asFloat(v)
		if err != nil || f < 0 {
			return &InvalidOverride{"score_weights.level_grace", v}
		}
		c.ScoreWeights.LevelGrace = f
		return nil
	},
	"extraction.mode": func(c *Config, v any) error {
		s, ok := v.(string)
		if !ok || (s != "all_in_one" && s != "current") {
			return &InvalidOverride{"extraction.mode", v}
		}
		c.Extraction.Mode = s
		return nil
	},
	"extraction.extractor_model": func(c *Config, v any) error {
		s, ok := v.(string)
		if !ok || s == "" {
			return &InvalidOverride{"extraction.extractor_model", v}
		}
		c.Extraction.ExtractorModel = s
		return nil
	},
	"extraction.cap_nice_to_have": func(c *Config, v any) error {
		b, ok := v.(bool)
		if !ok {
			return &InvalidOverride{"extraction.cap_nice_to_have", v}
		}
		c.Extraction.CapNiceToHave = b
		return nil
	},
}

func setUnitFloat(dst *float64, key string, v any) error {
	f, err := asFloat(v)
	if err != nil || f < 0 || f > 1 {
		return &InvalidOverride{key, v}
	}
	*dst = f
	return nil
}

func asFloat(v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("not a number")
	}
}

func asInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		if n == float64(int(n)) {
			return int(n), nil
		}
		return 0, fmt.Errorf("not an integer")
	default:
		return 0, fmt.Errorf("not an integer")
	}
}

// WithOverrides returns a new Config: a deep copy of c with policy_overrides
// deep-merged on top, per §4.2 step 3. Keys may be dotted
// ("match_strategy.topk") or nested one level ({"match_strategy":
// {"topk": 12}}). Unknown keys are ignored; a
// recognized key with a type-mismatched value returns *InvalidOverride and
// no partial mutation survives (the copy is discarded on first error).
func (c Config) WithOverrides(overrides map[string]any) (Config, error) {
	next := c // struct copy: Config has no pointers/maps, so this is a full
	// deep copy, which is what makes override isolation (§8 P5) hold.
	flat := make(map[string]any, len(overrides))
	for key, value := range overrides {
		if nested, ok := value.(map[string]any); ok {
			for sub, v := range nested {
				flat[key+"."+sub] = v
			}
			continue
		}
		flat[key] = value
	}
	for key, value := range flat {
		setter, known := recognizedOverrides[key]
		if !known {
			continue
		}
		if err := setter(&next, value); err != nil {
			return c, err
		}
	}
	return next, nil
}
