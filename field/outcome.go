package field

// Outcome reports what an Update call did with a message.
type Outcome uint8

const (
	// OutcomeNotUsed means the message was not consumed by the field.
	OutcomeNotUsed Outcome = iota
	// OutcomeUnchanged means the message was consumed but no state changed
	// (for example a rejected character).
	OutcomeUnchanged
	// OutcomeChanged means visual state changed (cursor, selection, scroll)
	// but the value did not.
	OutcomeChanged
	// OutcomeValueChanged means the field's value changed.
	OutcomeValueChanged
)

func (o Outcome) String() string {
	switch o {
	case OutcomeNotUsed:
		return "not-used"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeChanged:
		return "changed"
	case OutcomeValueChanged:
		return "value-changed"
	default:
		return "unknown"
	}
}

// classifyOutcome folds a value comparison and a state-change flag into the
// outcome of a consumed message.
func classifyOutcome(valueBefore, valueAfter string, changed bool) Outcome {
	if valueBefore != valueAfter {
		return OutcomeValueChanged
	}
	if changed {
		return OutcomeChanged
	}
	return OutcomeUnchanged
}
