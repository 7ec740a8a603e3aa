package staffroll

// Command is one entry of a staff roll. The set of implementations is closed;
// switch on the concrete type to reach a command's fields.
type Command interface {
	Opcode() Opcode
	command()
}

// Stop terminates the stream. It never appears in a decoded list.
type Stop struct{}

// Wait delays the next command by Frames frames.
type Wait struct {
	Frames uint16
}

// SwitchScene switches the level to another zone.
type SwitchScene struct {
	Scene uint8
}

// SwitchSceneAndWait switches zone and then waits.
type SwitchSceneAndWait struct {
	Scene uint8
}

type ShowScoreCounters struct{}

type ShowText struct{}

type HideText struct{}

// SetText replaces the current credits text. Title and Body hold raw file
// bytes, one byte per character.
type SetText struct {
	Title string
	Body  string
}

type ShowTitleLogo struct{}

type HideTitleLogo struct{}

// PlayTitleLogoAnimation plays the titlescreen logo animation Animation.
type PlayTitleLogoAnimation struct {
	Animation uint8
}

type EnableEndingMode struct{}

type SpawnZoom struct{}

type PlayWinAnimations struct{}

type DestroyZoom struct{}

type PlayersLookUp struct{}

type ShowTheEnd struct{}

type ExitStage struct{}

type HideTheEnd struct{}

type BeginFireworks struct{}

type EndFireworks struct{}

func (Stop) Opcode() Opcode                   { return OpStop }
func (Wait) Opcode() Opcode                   { return OpWait }
func (SwitchScene) Opcode() Opcode            { return OpSwitchScene }
func (SwitchSceneAndWait) Opcode() Opcode     { return OpSwitchSceneAndWait }
func (ShowScoreCounters) Opcode() Opcode      { return OpShowScoreCounters }
func (ShowText) Opcode() Opcode               { return OpShowText }
func (HideText) Opcode() Opcode               { return OpHideText }
func (SetText) Opcode() Opcode                { return OpSetText }
func (ShowTitleLogo) Opcode() Opcode          { return OpShowTitleLogo }
func (HideTitleLogo) Opcode() Opcode          { return OpHideTitleLogo }
func (PlayTitleLogoAnimation) Opcode() Opcode { return OpPlayTitleLogoAnimation }
func (EnableEndingMode) Opcode() Opcode       { return OpEnableEndingMode }
func (SpawnZoom) Opcode() Opcode              { return OpSpawnZoom }
func (PlayWinAnimations) Opcode() Opcode      { return OpPlayWinAnimations }
func (DestroyZoom) Opcode() Opcode            { return OpDestroyZoom }
func (PlayersLookUp) Opcode() Opcode          { return OpPlayersLookUp }
func (ShowTheEnd) Opcode() Opcode             { return OpShowTheEnd }
func (ExitStage) Opcode() Opcode              { return OpExitStage }
func (HideTheEnd) Opcode() Opcode             { return OpHideTheEnd }
func (BeginFireworks) Opcode() Opcode         { return OpBeginFireworks }
func (EndFireworks) Opcode() Opcode           { return OpEndFireworks }

func (Stop) command()                   {}
func (Wait) command()                   {}
func (SwitchScene) command()            {}
func (SwitchSceneAndWait) command()     {}
func (ShowScoreCounters) command()      {}
func (ShowText) command()               {}
func (HideText) command()               {}
func (SetText) command()                {}
func (ShowTitleLogo) command()          {}
func (HideTitleLogo) command()          {}
func (PlayTitleLogoAnimation) command() {}
func (EnableEndingMode) command()       {}
func (SpawnZoom) command()              {}
func (PlayWinAnimations) command()      {}
func (DestroyZoom) command()            {}
func (PlayersLookUp) command()          {}
func (ShowTheEnd) command()             {}
func (ExitStage) command()              {}
func (HideTheEnd) command()             {}
func (BeginFireworks) command()         {}
func (EndFireworks) command()           {}
