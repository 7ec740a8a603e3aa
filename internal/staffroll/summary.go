package staffroll

import "strconv"

// Summary returns the one line label used when listing cmd.
func Summary(cmd Command) string {
	name := Describe(cmd).Name
	switch c := cmd.(type) {
	case SetText:
		return name + ` (to "` + c.Title + `")`
	case Wait:
		if c.Frames == 1 {
			return name + " (for 1 frame)"
		}
		return name + " (for " + strconv.Itoa(int(c.Frames)) + " frames)"
	case SwitchScene:
		return name + " (to Scene ID " + strconv.Itoa(int(c.Scene)) + ")"
	case SwitchSceneAndWait:
		return name + " (to Scene ID " + strconv.Itoa(int(c.Scene)) + ")"
	case PlayTitleLogoAnimation:
		return name + " " + strconv.Itoa(int(c.Animation))
	default:
		return name
	}
}
