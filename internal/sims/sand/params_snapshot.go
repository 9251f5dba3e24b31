package sand

import (
	"strconv"

	"sandfall/internal/core"
)

// Parameters reports configuration, selection and live counters.
func (w *World) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.grid.W),
				intParam("h", "Height", w.grid.H),
				int64Param("seed", "Seed", w.cfg.Seed),
				boolParam("water", "Water", w.cfg.Water),
			},
		},
		{
			Name: "Pen",
			Params: []core.Parameter{
				intParam("pen", "Pen size", w.sel.PenSize),
				stringParam("primary", "Primary", w.sel.Primary.String()),
				stringParam("secondary", "Secondary", w.sel.Secondary.String()),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				boolParam("paused", "Paused", w.paused),
				int64Param("tick", "Tick", int64(w.tick)),
				intParam("moves", "Moves", w.stats.Moves),
				intParam("reactions", "Reactions", w.stats.Reactions()),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

func stringParam(key, label, value string) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeString,
		Value: value,
	}
}
