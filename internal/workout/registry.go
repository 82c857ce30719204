package workout

// Static protocol registries. Each table is a bijective symbolic-name →
// code mapping fixed by the Connect API; none of them is mutated at
// runtime.

// stepTypes maps executable step kinds to their protocol codes. "repeat"
// is deliberately absent: it is the group step type, not a regular kind.
var stepTypes = map[string]StepType{
	KindWarmup:   {ID: 1, Key: "warmup", DisplayOrder: 1},
	KindCooldown: {ID: 2, Key: "cooldown", DisplayOrder: 2},
	KindInterval: {ID: 3, Key: "interval", DisplayOrder: 3},
	KindRecovery: {ID: 4, Key: "recovery", DisplayOrder: 4},
	KindRest:     {ID: 5, Key: "rest", DisplayOrder: 5},
}

// repeatStepType tags RepeatGroupDTO steps.
var repeatStepType = StepType{ID: 6, Key: "repeat", DisplayOrder: 6}

// endConditions maps goal types to their protocol codes.
var endConditions = map[string]EndCondition{
	GoalLapButton: {ID: 1, Key: "lap.button", DisplayOrder: 1, Displayable: true},
	GoalTime:      {ID: 2, Key: "time", DisplayOrder: 2, Displayable: true},
	GoalDistance:  {ID: 3, Key: "distance", DisplayOrder: 3, Displayable: true},
}

// iterationsEndCondition terminates repeat groups. It is fixed by the
// assembler, never caller-selectable.
var iterationsEndCondition = EndCondition{ID: 7, Key: "iterations", DisplayOrder: 7}

// targetTypes maps target types to their protocol codes.
var targetTypes = map[string]TargetType{
	TargetNone:      {ID: 1, Key: "no.target", DisplayOrder: 1},
	TargetHeartRate: {ID: 4, Key: "heart.rate.zone", DisplayOrder: 4},
	TargetPace:      {ID: 6, Key: "pace.zone", DisplayOrder: 6},
}

// sportTypes maps sport names to their protocol codes. Lookup is
// case-sensitive.
var sportTypes = map[string]SportType{
	"running":           {ID: 1, Key: "running", DisplayOrder: 1},
	"cycling":           {ID: 2, Key: "cycling", DisplayOrder: 2},
	"other":             {ID: 3, Key: "other", DisplayOrder: 3},
	"swimming":          {ID: 4, Key: "swimming", DisplayOrder: 4},
	"strength_training": {ID: 5, Key: "strength_training", DisplayOrder: 5},
	"cardio_training":   {ID: 6, Key: "cardio_training", DisplayOrder: 6},
}

// Catalog exposes every registry for introspection (the MCP registries
// resource and clients that want to validate input up front).
type Catalog struct {
	StepKinds   map[string]StepType     `json:"stepKinds"`
	GoalTypes   map[string]EndCondition `json:"goalTypes"`
	TargetTypes map[string]TargetType   `json:"targetTypes"`
	SportTypes  map[string]SportType    `json:"sportTypes"`
}

// Registries returns a copy of all registry tables.
func Registries() Catalog {
	c := Catalog{
		StepKinds:   make(map[string]StepType, len(stepTypes)),
		GoalTypes:   make(map[string]EndCondition, len(endConditions)),
		TargetTypes: make(map[string]TargetType, len(targetTypes)),
		SportTypes:  make(map[string]SportType, len(sportTypes)),
	}
	for k, v := range stepTypes {
		c.StepKinds[k] = v
	}
	for k, v := range endConditions {
		c.GoalTypes[k] = v
	}
	for k, v := range targetTypes {
		c.TargetTypes[k] = v
	}
	for k, v := range sportTypes {
		c.SportTypes[k] = v
	}
	return c
}
