package order

// Stage is one record of the fixed five-stage lifecycle definition.
// RequiredRole is the role authorized to cause entry into Status;
// the first stage (Created) is entered at creation and has no role.
type Stage struct {
	Status       Status
	Index        int
	RequiredRole Role
	Label        string
}

// StageCount is the length of the stage table.
const StageCount = 5

// stageTable is the immutable process-wide stage definition. The sequence
// and role binding are fixed; they are not runtime configuration.
var stageTable = [StageCount]Stage{
	{Status: Created, Index: 0, RequiredRole: RoleUnknown, Label: "Created"},
	{Status: Picked, Index: 1, RequiredRole: Picker, Label: "Picked"},
	{Status: TransitToSZ, Index: 2, RequiredRole: Forwarder, Label: "In Transit"},
	{Status: CustomsCleared, Index: 3, RequiredRole: Shipper, Label: "Customs Cleared"},
	{Status: POD, Index: 4, RequiredRole: Courier, Label: "Delivered"},
}

// Stages returns the ordered stage records. The returned slice is a copy;
// the table itself cannot be mutated.
func Stages() []Stage {
	stages := make([]Stage, StageCount)
	copy(stages, stageTable[:])
	return stages
}

// StageIndex returns the zero-based position of a status in the stage
// sequence. The second return value is false when the status is not a
// member of the stage table.
func StageIndex(s Status) (int, bool) {
	for _, stage := range stageTable {
		if stage.Status == s {
			return stage.Index, true
		}
	}
	return 0, false
}

// StageLabel returns the human-readable label of a status, or an empty
// string when the status is not a member of the stage table.
func StageLabel(s Status) string {
	for _, stage := range stageTable {
		if stage.Status == s {
			return stage.Label
		}
	}
	return ""
}

// RoleFor returns the role authorized to cause entry into the given status.
// The second return value is false for Created (entered at creation, not by
// a transition) and for statuses outside the stage table.
func RoleFor(s Status) (Role, bool) {
	for _, stage := range stageTable {
		if stage.Status == s {
			return stage.RequiredRole, stage.RequiredRole != RoleUnknown
		}
	}
	return RoleUnknown, false
}

// NextStatus returns the status immediately following s in the stage
// sequence. The second return value is false when s is terminal or not a
// member of the stage table.
func NextStatus(s Status) (Status, bool) {
	idx, ok := StageIndex(s)
	if !ok || idx+1 >= StageCount {
		return Unknown, false
	}
	return stageTable[idx+1].Status, true
}

// TargetStatusFor returns the status the given role is authorized to cause.
// The second return value is false for roles bound to no stage (Receiver)
// and for invalid roles.
func TargetStatusFor(r Role) (Status, bool) {
	for _, stage := range stageTable {
		if stage.RequiredRole != RoleUnknown && stage.RequiredRole == r {
			return stage.Status, true
		}
	}
	return Unknown, false
}

// ActionableStatusFor returns the status an order must currently hold for
// the given role to act on it: the stage immediately preceding the stage the
// role advances orders into. The second return value is false for roles
// bound to no stage.
func ActionableStatusFor(r Role) (Status, bool) {
	target, ok := TargetStatusFor(r)
	if !ok {
		return Unknown, false
	}
	idx, _ := StageIndex(target)
	return stageTable[idx-1].Status, true
}
