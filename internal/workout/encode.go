package workout

import "fmt"

func ptr[T any](v T) *T { return &v }

// encodeStep compiles one regular step spec into an ExecutableStepDTO
// wire step. order is the step's position in its sequence; group is the
// enclosing repeat group's childStepId, nil at top level.
func encodeStep(spec StepSpec, order int, group *int) (*ExecutableStep, error) {
	st, ok := stepTypes[spec.Kind]
	if !ok {
		return nil, &UnknownStepKindError{Kind: spec.Kind}
	}

	cond, ok := endConditions[spec.GoalType]
	if !ok {
		return nil, &UnknownGoalTypeError{GoalType: spec.GoalType}
	}

	targetName := spec.TargetType
	if targetName == "" {
		targetName = TargetNone
	}
	tt, ok := targetTypes[targetName]
	if !ok {
		return nil, &UnknownTargetTypeError{TargetType: spec.TargetType}
	}

	// lap_button steps end on a manual trigger; the goal value is ignored.
	var condValue *float64
	if spec.GoalType != GoalLapButton {
		if spec.GoalValue <= 0 {
			return nil, &InvalidGoalValueError{Value: spec.GoalValue}
		}
		condValue = ptr(spec.GoalValue)
	}

	isPace := targetName == TargetPace
	low, err := resolveTarget(spec.TargetMin, isPace)
	if err != nil {
		return nil, err
	}
	high, err := resolveTarget(spec.TargetMax, isPace)
	if err != nil {
		return nil, err
	}

	return &ExecutableStep{
		Type:              executableStepType,
		StepOrder:         order,
		StepType:          st,
		ChildStepID:       group,
		Description:       spec.Description,
		EndCondition:      cond,
		EndConditionValue: condValue,
		TargetType:        tt,
		TargetValueOne:    low,
		TargetValueTwo:    high,
	}, nil
}

// resolveTarget produces the numeric wire value for one intensity bound.
// Pace targets accept "M:SS" strings and convert them to m/s; every other
// target type requires numeric bounds.
func resolveTarget(v TargetValue, pace bool) (*float64, error) {
	switch {
	case !v.set:
		return nil, nil
	case v.isNum:
		return ptr(v.num), nil
	case pace:
		speed, err := ParsePace(v.text)
		if err != nil {
			return nil, err
		}
		return ptr(speed), nil
	default:
		return nil, fmt.Errorf("target bound %q: string values are only valid for pace targets", v.text)
	}
}

// encodeRepeat compiles a repeat spec into a RepeatGroupDTO. groupID is
// the freshly allocated childStepId shared by the group and all its
// children; child step orders restart at 1 inside the group, independent
// of the outer sequence.
func encodeRepeat(spec StepSpec, order, groupID int) (*RepeatGroup, error) {
	if len(spec.ChildSteps) == 0 {
		return nil, ErrEmptyRepeatGroup
	}
	if spec.Iterations < 1 {
		return nil, &InvalidIterationsError{Count: spec.Iterations}
	}

	children := make([]Step, 0, len(spec.ChildSteps))
	for i, child := range spec.ChildSteps {
		if child.Kind == KindRepeat {
			return nil, ErrNestedRepeat
		}
		enc, err := encodeStep(child, i+1, ptr(groupID))
		if err != nil {
			return nil, err
		}
		children = append(children, enc)
	}

	return &RepeatGroup{
		Type:               repeatGroupType,
		StepOrder:          order,
		StepType:           repeatStepType,
		ChildStepID:        ptr(groupID),
		NumberOfIterations: spec.Iterations,
		EndCondition:       iterationsEndCondition,
		EndConditionValue:  ptr(float64(spec.Iterations)),
		Steps:              children,
	}, nil
}
