package component

import "fmt"

// EntityType names an animated entity family.
type EntityType int

const (
	EntityPlayer EntityType = iota
)

// Entities lists every entity type that needs animations registered.
var Entities = []EntityType{EntityPlayer}

func (e EntityType) String() string {
	switch e {
	case EntityPlayer:
		return "player"
	default:
		return fmt.Sprintf("entity(%d)", int(e))
	}
}

// Action is a named animation state of an entity.
type Action int

const (
	ActionNone Action = iota
	ActionIdle
	ActionRun
	ActionJump
	ActionDeath
	ActionWinner
)

// Actions lists every action an entity can enter. The asset registry must
// hold an animation for each (entity, action) pair.
var Actions = []Action{ActionIdle, ActionRun, ActionJump, ActionDeath, ActionWinner}

func (a Action) String() string {
	switch a {
	case ActionNone:
		return ""
	case ActionIdle:
		return "idle"
	case ActionRun:
		return "run"
	case ActionJump:
		return "jump"
	case ActionDeath:
		return "death"
	case ActionWinner:
		return "winner"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// ParseAction maps an action name back to its Action.
func ParseAction(name string) (Action, error) {
	for _, a := range Actions {
		if a.String() == name {
			return a, nil
		}
	}
	return ActionNone, fmt.Errorf("component: unknown action %q", name)
}

// AnimKey addresses an animation template.
type AnimKey struct {
	Entity EntityType
	Action Action
}

func (k AnimKey) String() string {
	return k.Entity.String() + "/" + k.Action.String()
}
