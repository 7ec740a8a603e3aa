package staffroll

import (
	"fmt"
	"strings"
)

// Opcode selects a command type. Valid opcodes are dense from OpStop to
// OpEndFireworks.
type Opcode uint8

const (
	OpStop Opcode = iota
	OpWait
	OpSwitchScene
	OpSwitchSceneAndWait
	OpShowScoreCounters
	OpShowText
	OpHideText
	OpSetText
	OpShowTitleLogo
	OpHideTitleLogo
	OpPlayTitleLogoAnimation
	OpEnableEndingMode
	OpSpawnZoom
	OpPlayWinAnimations
	OpDestroyZoom
	OpPlayersLookUp
	OpShowTheEnd
	OpExitStage
	OpHideTheEnd
	OpBeginFireworks
	OpEndFireworks

	opcodeCount
)

// FieldKind describes how a field is edited and encoded.
type FieldKind int

const (
	FieldU8 FieldKind = iota + 1
	FieldU16
	// FieldLine is single line text.
	FieldLine
	// FieldText is multi-line text.
	FieldText
)

func (k FieldKind) String() string {
	switch k {
	case FieldU8:
		return "u8"
	case FieldU16:
		return "u16"
	case FieldLine:
		return "line"
	case FieldText:
		return "text"
	default:
		return fmt.Sprintf("FieldKind(%d)", int(k))
	}
}

// FieldSpec is one entry of a command's field schema.
type FieldSpec struct {
	Name  string
	Label string
	Kind  FieldKind
	// Max is the largest accepted value for integer fields.
	Max uint64
}

// Descriptor is the static description of one command type.
type Descriptor struct {
	Opcode      Opcode
	Key         string
	Name        string
	Description string
	Fields      []FieldSpec
	New         func() Command
}

var (
	sceneField     = FieldSpec{Name: "scene", Label: "Scene ID", Kind: FieldU8, Max: 0xFF}
	animationField = FieldSpec{Name: "animation", Label: "Animation ID", Kind: FieldU8, Max: 0xFF}
	framesField    = FieldSpec{Name: "frames", Label: "Time (in frames)", Kind: FieldU16, Max: 0xFFFF}
	titleField     = FieldSpec{Name: "title", Label: "Title", Kind: FieldLine}
	bodyField      = FieldSpec{Name: "body", Label: "Text", Kind: FieldText}
)

var descriptors = [opcodeCount]Descriptor{
	OpStop: {
		Key:         "stop",
		Name:        "Stop",
		Description: "Marks the end of the command stream",
		New:         func() Command { return Stop{} },
	},
	OpWait: {
		Key:         "wait",
		Name:        "Wait",
		Description: "Causes a delay before the next command is processed",
		Fields:      []FieldSpec{framesField},
		New:         func() Command { return Wait{} },
	},
	OpSwitchScene: {
		Key:         "switch-scene",
		Name:        "Switch Scene",
		Description: "Causes the level to switch to another zone",
		Fields:      []FieldSpec{sceneField},
		New:         func() Command { return SwitchScene{} },
	},
	OpSwitchSceneAndWait: {
		Key:         "switch-scene-and-wait",
		Name:        "Switch Scene and Wait",
		Description: "Causes the level to switch to another zone and then wait",
		Fields:      []FieldSpec{sceneField},
		New:         func() Command { return SwitchSceneAndWait{} },
	},
	OpShowScoreCounters: {
		Key:         "show-score-counters",
		Name:        "Show Coin Counters",
		Description: "Causes the coin counters to become visible",
		New:         func() Command { return ShowScoreCounters{} },
	},
	OpShowText: {
		Key:         "show-text",
		Name:        "Show Text",
		Description: "Causes the current text to fade onto the screen",
		New:         func() Command { return ShowText{} },
	},
	OpHideText: {
		Key:         "hide-text",
		Name:        "Hide Text",
		Description: "Causes the current text to fade away",
		New:         func() Command { return HideText{} },
	},
	OpSetText: {
		Key:         "set-text",
		Name:        "Set Text",
		Description: "Changes the current text",
		Fields:      []FieldSpec{titleField, bodyField},
		New:         func() Command { return SetText{} },
	},
	OpShowTitleLogo: {
		Key:         "show-title-logo",
		Name:        "Show Titlescreen Logo",
		Description: "Causes the titlescreen logo to become visible",
		New:         func() Command { return ShowTitleLogo{} },
	},
	OpHideTitleLogo: {
		Key:         "hide-title-logo",
		Name:        "Hide Titlescreen Logo",
		Description: "Hides the titlescreen logo",
		New:         func() Command { return HideTitleLogo{} },
	},
	OpPlayTitleLogoAnimation: {
		Key:         "play-title-logo-animation",
		Name:        "Play Titlescreen Logo Animation",
		Description: "Plays a titlescreen logo animation",
		Fields:      []FieldSpec{animationField},
		New:         func() Command { return PlayTitleLogoAnimation{} },
	},
	OpEnableEndingMode: {
		Key:         "enable-ending-mode",
		Name:        "Enable Ending Mode",
		Description: "Enables the ending mode. The ending mode disables Wii remote player control.",
		New:         func() Command { return EnableEndingMode{} },
	},
	OpSpawnZoom: {
		Key:         "spawn-zoom",
		Name:        "Spawn Zoom",
		Description: "Unknown function",
		New:         func() Command { return SpawnZoom{} },
	},
	OpPlayWinAnimations: {
		Key:         "play-win-animations",
		Name:        "Play Player Win Animations",
		Description: "Plays an animation for the player with the most coins",
		New:         func() Command { return PlayWinAnimations{} },
	},
	OpDestroyZoom: {
		Key:         "destroy-zoom",
		Name:        "Destroy Zoom",
		Description: "Unknown function",
		New:         func() Command { return DestroyZoom{} },
	},
	OpPlayersLookUp: {
		Key:         "players-look-up",
		Name:        "Players Look Up",
		Description: "Causes all players to look upward",
		New:         func() Command { return PlayersLookUp{} },
	},
	OpShowTheEnd: {
		Key:         "show-the-end",
		Name:        "Display 'The End'",
		Description: "Causes 'The End' to appear on the screen",
		New:         func() Command { return ShowTheEnd{} },
	},
	OpExitStage: {
		Key:         "exit-stage",
		Name:        "Exit Stage",
		Description: "Exits the stage",
		New:         func() Command { return ExitStage{} },
	},
	OpHideTheEnd: {
		Key:         "hide-the-end",
		Name:        "Hide 'The End'",
		Description: "Causes 'The End' to fade away",
		New:         func() Command { return HideTheEnd{} },
	},
	OpBeginFireworks: {
		Key:         "begin-fireworks",
		Name:        "Begin Fireworks",
		Description: "Causes fireworks to begin in the background",
		New:         func() Command { return BeginFireworks{} },
	},
	OpEndFireworks: {
		Key:         "end-fireworks",
		Name:        "End Fireworks",
		Description: "Causes the background fireworks to end",
		New:         func() Command { return EndFireworks{} },
	},
}

func init() {
	for i := range descriptors {
		descriptors[i].Opcode = Opcode(i)
	}
}

// Lookup returns the descriptor for op.
func Lookup(op Opcode) (Descriptor, error) {
	if op >= opcodeCount {
		return Descriptor{}, fmt.Errorf("%w: 0x%02X", ErrInvalidOpcode, uint8(op))
	}
	return descriptors[op], nil
}

// LookupKey finds a descriptor by its key, ignoring case. The stop type is
// reachable so callers can reject it with a precise error.
func LookupKey(key string) (Descriptor, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for _, d := range descriptors {
		if d.Key == key {
			return d, true
		}
	}
	return Descriptor{}, false
}

// Catalog returns the insertable command types in opcode order.
func Catalog() []Descriptor {
	out := make([]Descriptor, 0, len(descriptors)-1)
	for _, d := range descriptors[OpStop+1:] {
		out = append(out, d)
	}
	return out
}

// DefaultInstance returns a command of type d with zero field values.
func DefaultInstance(d Descriptor) Command {
	return d.New()
}

// Describe returns the descriptor of cmd's type.
func Describe(cmd Command) Descriptor {
	return descriptors[cmd.Opcode()]
}

// String returns the descriptor key, or a hex form for unknown opcodes.
func (op Opcode) String() string {
	if op >= opcodeCount {
		return fmt.Sprintf("opcode(0x%02X)", uint8(op))
	}
	return descriptors[op].Key
}
