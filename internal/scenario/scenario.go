// scenario.go - loads a Parameters configuration from a Lua scenario script

package scenario

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/fieldtrace/fdtd-core/internal/params"
)

// Load runs src as a Lua script in a fresh state and reads its global
// "scene" table into a Parameters value. The script is expected to set:
//
//	scene = {
//	  width = 200, height = 200,
//	  source = { x = 100, y = 100, amplitude = 1.0, frequency = 0.05, signal_type = "ContinuousSine" },
//	  obstacles = { "M 10 10 L 20 10 L 20 20 L 10 20 Z" },
//	  duration_steps = 4000,
//	}
//
// Any missing or mis-typed field comes back as a params.ConfigError naming
// the field. Load does not itself run params.Validate on the result.
func Load(src []byte) (params.Parameters, error) {
	L := lua.NewState()
	defer L.Close()

	if err := L.DoString(string(src)); err != nil {
		return params.Parameters{}, &params.ConfigError{Reason: "scenario script: " + err.Error()}
	}

	sceneVal := L.GetGlobal("scene")
	scene, ok := sceneVal.(*lua.LTable)
	if !ok {
		return params.Parameters{}, &params.ConfigError{Reason: "scenario: missing global table 'scene'"}
	}

	width, err := requireInt(scene, "width")
	if err != nil {
		return params.Parameters{}, err
	}
	height, err := requireInt(scene, "height")
	if err != nil {
		return params.Parameters{}, err
	}
	duration, err := requireInt(scene, "duration_steps")
	if err != nil {
		return params.Parameters{}, err
	}

	source, err := readSource(scene)
	if err != nil {
		return params.Parameters{}, err
	}

	obstacles, err := readObstacles(scene)
	if err != nil {
		return params.Parameters{}, err
	}

	return params.Parameters{
		Width:         width,
		Height:        height,
		Source:        source,
		Obstacles:     obstacles,
		DurationSteps: duration,
	}, nil
}

func readSource(scene *lua.LTable) (params.SourceDefinition, error) {
	sourceVal := scene.RawGetString("source")
	srcTable, ok := sourceVal.(*lua.LTable)
	if !ok {
		return params.SourceDefinition{}, &params.ConfigError{Reason: "scenario: scene.source missing or not a table"}
	}

	x, err := requireInt(srcTable, "scene.source.x")
	if err != nil {
		return params.SourceDefinition{}, err
	}
	y, err := requireInt(srcTable, "scene.source.y")
	if err != nil {
		return params.SourceDefinition{}, err
	}
	amplitude, err := requireNumber(srcTable, "scene.source.amplitude")
	if err != nil {
		return params.SourceDefinition{}, err
	}
	frequency, err := requireNumber(srcTable, "scene.source.frequency")
	if err != nil {
		return params.SourceDefinition{}, err
	}
	typeName, err := requireString(srcTable, "scene.source.signal_type")
	if err != nil {
		return params.SourceDefinition{}, err
	}
	kind, perr := params.ParseSignalType(typeName)
	if perr != nil {
		return params.SourceDefinition{}, &params.ConfigError{Reason: "scenario: scene.source.signal_type: " + perr.Error()}
	}

	return params.SourceDefinition{
		X: x, Y: y, Amplitude: amplitude, Frequency: frequency, SignalType: kind,
	}, nil
}

func readObstacles(scene *lua.LTable) ([]string, error) {
	obsVal := scene.RawGetString("obstacles")
	if obsVal == lua.LNil {
		return nil, nil
	}
	obsTable, ok := obsVal.(*lua.LTable)
	if !ok {
		return nil, &params.ConfigError{Reason: "scenario: scene.obstacles must be a table of path strings"}
	}

	var out []string
	n := obsTable.Len()
	for i := 1; i <= n; i++ {
		v := obsTable.RawGetInt(i)
		s, ok := v.(lua.LString)
		if !ok {
			return nil, &params.ConfigError{Reason: fmt.Sprintf("scenario: scene.obstacles[%d] must be a string", i)}
		}
		out = append(out, string(s))
	}
	return out, nil
}

// requireInt/requireNumber/requireString take the dotted field name purely
// for the error message; lookup itself is always by the table's own key
// (the last path segment).
func requireInt(t *lua.LTable, field string) (int, error) {
	v := t.RawGetString(lastSegment(field))
	n, ok := v.(lua.LNumber)
	if !ok {
		return 0, &params.ConfigError{Reason: "scenario: " + field + " missing or not a number"}
	}
	return int(n), nil
}

func requireNumber(t *lua.LTable, field string) (float64, error) {
	v := t.RawGetString(lastSegment(field))
	n, ok := v.(lua.LNumber)
	if !ok {
		return 0, &params.ConfigError{Reason: "scenario: " + field + " missing or not a number"}
	}
	return float64(n), nil
}

func requireString(t *lua.LTable, field string) (string, error) {
	v := t.RawGetString(lastSegment(field))
	s, ok := v.(lua.LString)
	if !ok {
		return "", &params.ConfigError{Reason: "scenario: " + field + " missing or not a string"}
	}
	return string(s), nil
}

func lastSegment(dotted string) string {
	for i := len(dotted) - 1; i >= 0; i-- {
		if dotted[i] == '.' {
			return dotted[i+1:]
		}
	}
	return dotted
}
