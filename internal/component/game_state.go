package component

// EditMode is what a click on the field does.
type EditMode int

const (
	EditIdle EditMode = iota
	EditPlace
	EditRemove
)

func (m EditMode) String() string {
	switch m {
	case EditPlace:
		return "place"
	case EditRemove:
		return "remove"
	default:
		return "idle"
	}
}
