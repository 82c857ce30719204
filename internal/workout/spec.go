package workout

import "encoding/json"

// Step kinds accepted in a StepSpec.
const (
	KindWarmup   = "warmup"
	KindInterval = "interval"
	KindRecovery = "recovery"
	KindRest     = "rest"
	KindCooldown = "cooldown"
	KindRepeat   = "repeat"
)

// Goal types: what terminates a step.
const (
	GoalTime      = "time"
	GoalDistance  = "distance"
	GoalLapButton = "lap_button"
)

// Target types: the intensity band a step instructs the athlete to hold.
const (
	TargetNone      = "no.target"
	TargetHeartRate = "heart_rate"
	TargetPace      = "pace"
)

// StepSpec is one caller-supplied workout step, constructible from JSON.
// Kind selects the shape: executable kinds (warmup, interval, recovery,
// rest, cooldown) use GoalType/GoalValue/Target*, while "repeat" uses
// Iterations and ChildSteps. Specs are consumed once per compilation.
type StepSpec struct {
	Kind        string      `json:"kind"`
	GoalType    string      `json:"goalType,omitempty"`
	GoalValue   float64     `json:"goalValue,omitempty"` // seconds for time, meters for distance
	TargetType  string      `json:"targetType,omitempty"`
	TargetMin   TargetValue `json:"targetMin,omitempty"`
	TargetMax   TargetValue `json:"targetMax,omitempty"`
	Description string      `json:"description,omitempty"`
	Iterations  int         `json:"iterations,omitempty"`
	ChildSteps  []StepSpec  `json:"childSteps,omitempty"`
}

// TargetValue is one intensity bound: a number (bpm for heart rate, m/s
// for pace) or a pace string like "4:30" (minutes per km) when the step
// targets pace.
type TargetValue struct {
	text  string
	num   float64
	isNum bool
	set   bool
}

// NumericTarget builds a numeric bound.
func NumericTarget(v float64) TargetValue {
	return TargetValue{num: v, isNum: true, set: true}
}

// PaceTarget builds a "M:SS" pace-string bound.
func PaceTarget(text string) TargetValue {
	return TargetValue{text: text, set: true}
}

// IsSet reports whether the bound was supplied at all.
func (v TargetValue) IsSet() bool { return v.set }

func (v *TargetValue) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = PaceTarget(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return err
	}
	*v = NumericTarget(f)
	return nil
}

func (v TargetValue) MarshalJSON() ([]byte, error) {
	switch {
	case !v.set:
		return []byte("null"), nil
	case v.isNum:
		return json.Marshal(v.num)
	default:
		return json.Marshal(v.text)
	}
}
