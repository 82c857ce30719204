// Package workout compiles declarative workout descriptions into the
// nested document schema the Garmin Connect workout-upload protocol
// expects. The compiler is a pure function of its inputs: registry
// lookups are read-only, the order and group counters are scoped to one
// Compile call, and no I/O happens anywhere in the package.
package workout

// defaultSteps is the fixed fallback used when a caller supplies no
// steps: 5 min warmup, 20 min work interval, 5 min cooldown, all
// time-based with no intensity target.
func defaultSteps() []StepSpec {
	return []StepSpec{
		{Kind: KindWarmup, GoalType: GoalTime, GoalValue: 300},
		{Kind: KindInterval, GoalType: GoalTime, GoalValue: 1200},
		{Kind: KindCooldown, GoalType: GoalTime, GoalValue: 300},
	}
}

// Compile turns ordered step specs into a complete upload document.
// Top-level steps are numbered 1..N in caller order, with each repeat
// group counting as one entry; group childStepIds are allocated from a
// single counter in encounter order. Any validation failure aborts the
// whole compilation. Compile performs no upload.
func Compile(name, sport, description string, specs []StepSpec) (*Document, error) {
	st, ok := sportTypes[sport]
	if !ok {
		return nil, &UnknownSportTypeError{SportType: sport}
	}

	if len(specs) == 0 {
		specs = defaultSteps()
	}

	steps := make([]Step, 0, len(specs))
	groups := 0
	for i, spec := range specs {
		order := i + 1
		if spec.Kind == KindRepeat {
			groups++
			group, err := encodeRepeat(spec, order, groups)
			if err != nil {
				return nil, err
			}
			steps = append(steps, group)
			continue
		}
		step, err := encodeStep(spec, order, nil)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}

	return &Document{
		WorkoutName: name,
		Description: description,
		SportType:   st,
		Segments: []Segment{{
			SegmentOrder: 1,
			SportType:    st,
			Steps:        steps,
		}},
	}, nil
}
