package workout

// Wire DTOs matching the Connect workout-service upload schema field for
// field. Placeholder fields the schema requires but this compiler never
// populates are typed as pointers without omitempty so they serialize as
// explicit nulls.

const (
	executableStepType = "ExecutableStepDTO"
	repeatGroupType    = "RepeatGroupDTO"
)

// SportType is a sport registry code as it appears on the wire.
type SportType struct {
	ID           int    `json:"sportTypeId"`
	Key          string `json:"sportTypeKey"`
	DisplayOrder int    `json:"displayOrder"`
}

// StepType is a step type registry code as it appears on the wire.
type StepType struct {
	ID           int    `json:"stepTypeId"`
	Key          string `json:"stepTypeKey"`
	DisplayOrder int    `json:"displayOrder"`
}

// EndCondition is an end condition registry code as it appears on the wire.
type EndCondition struct {
	ID           int    `json:"conditionTypeId"`
	Key          string `json:"conditionTypeKey"`
	DisplayOrder int    `json:"displayOrder"`
	Displayable  bool   `json:"displayable"`
}

// TargetType is a target type registry code as it appears on the wire.
type TargetType struct {
	ID           int    `json:"workoutTargetTypeId"`
	Key          string `json:"workoutTargetTypeKey"`
	DisplayOrder int    `json:"displayOrder"`
}

// StrokeType is a swim-stroke placeholder; always zero-valued here.
type StrokeType struct {
	ID           int `json:"strokeTypeId"`
	DisplayOrder int `json:"displayOrder"`
}

// EquipmentType is an equipment placeholder; always zero-valued here.
type EquipmentType struct {
	ID           int `json:"equipmentTypeId"`
	DisplayOrder int `json:"displayOrder"`
}

// Step is one entry of a segment's workoutSteps array: either an
// *ExecutableStep or a *RepeatGroup.
type Step interface {
	stepOrder() int
}

// ExecutableStep is a single encoded workout instruction.
type ExecutableStep struct {
	Type                    string        `json:"type"`
	StepID                  *int64        `json:"stepId"`
	StepOrder               int           `json:"stepOrder"`
	StepType                StepType      `json:"stepType"`
	ChildStepID             *int          `json:"childStepId"`
	Description             string        `json:"description,omitempty"`
	EndCondition            EndCondition  `json:"endCondition"`
	EndConditionValue       *float64      `json:"endConditionValue"`
	TargetType              TargetType    `json:"targetType"`
	TargetValueOne          *float64      `json:"targetValueOne"`
	TargetValueTwo          *float64      `json:"targetValueTwo"`
	ZoneNumber              *int          `json:"zoneNumber"`
	StrokeType              StrokeType    `json:"strokeType"`
	EquipmentType           EquipmentType `json:"equipmentType"`
	Category                *string       `json:"category"`
	ExerciseName            *string       `json:"exerciseName"`
	SecondaryTargetType     *TargetType   `json:"secondaryTargetType"`
	SecondaryTargetValueOne *float64      `json:"secondaryTargetValueOne"`
	SecondaryTargetValueTwo *float64      `json:"secondaryTargetValueTwo"`
	SecondaryZoneNumber     *int          `json:"secondaryZoneNumber"`
}

func (s *ExecutableStep) stepOrder() int { return s.StepOrder }

// RepeatGroup iterates its child steps a fixed number of times. All
// children carry the group's ChildStepID and a group-local step order.
type RepeatGroup struct {
	Type               string       `json:"type"`
	StepID             *int64       `json:"stepId"`
	StepOrder          int          `json:"stepOrder"`
	StepType           StepType     `json:"stepType"`
	ChildStepID        *int         `json:"childStepId"`
	NumberOfIterations int          `json:"numberOfIterations"`
	SmartRepeat        bool         `json:"smartRepeat"`
	EndCondition       EndCondition `json:"endCondition"`
	EndConditionValue  *float64     `json:"endConditionValue"`
	Steps              []Step       `json:"workoutSteps"`
}

func (s *RepeatGroup) stepOrder() int { return s.StepOrder }

// Segment holds the ordered wire steps of one workout segment.
type Segment struct {
	SegmentOrder int       `json:"segmentOrder"`
	SportType    SportType `json:"sportType"`
	Steps        []Step    `json:"workoutSteps"`
}

// Document is the complete upload payload for one workout.
type Document struct {
	WorkoutName string    `json:"workoutName"`
	Description string    `json:"description,omitempty"`
	SportType   SportType `json:"sportType"`
	Segments    []Segment `json:"workoutSegments"`
}
