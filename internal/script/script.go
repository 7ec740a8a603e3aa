// Package script converts staff roll command lists to and from a human
// editable text form.
//
// A script is a list of entries, each naming a command type by its catalog
// key plus whichever fields that type carries. TOML, YAML and JSON renderings
// share one schema. Text is UTF-8 in scripts and ISO-8859-1 in staff roll
// files; the conversion happens here.
package script

import (
	"errors"
	"fmt"
	"strconv"

	"staffroll/internal/document"
	"staffroll/internal/staffroll"
	"staffroll/internal/textenc"
)

var (
	ErrUnknownType     = errors.New("script: unknown command type")
	ErrUnexpectedField = errors.New("script: field not valid for command type")
)

// Script is the text form of a command list.
type Script struct {
	Commands []Entry `toml:"command" yaml:"commands" json:"commands"`
}

// Entry is one command. Only the fields in the type's schema may be set.
type Entry struct {
	Type      string  `toml:"type" yaml:"type" json:"type"`
	Frames    *int    `toml:"frames,omitempty" yaml:"frames,omitempty" json:"frames,omitempty"`
	Scene     *int    `toml:"scene,omitempty" yaml:"scene,omitempty" json:"scene,omitempty"`
	Animation *int    `toml:"animation,omitempty" yaml:"animation,omitempty" json:"animation,omitempty"`
	Title     *string `toml:"title,omitempty" yaml:"title,omitempty" json:"title,omitempty"`
	Body      *string `toml:"body,multiline,omitempty" yaml:"body,omitempty" json:"body,omitempty"`
}

// FromCommands renders cmds as a script.
func FromCommands(cmds []staffroll.Command) Script {
	entries := make([]Entry, 0, len(cmds))
	for _, cmd := range cmds {
		entries = append(entries, entryFor(cmd))
	}
	return Script{Commands: entries}
}

func entryFor(cmd staffroll.Command) Entry {
	e := Entry{Type: staffroll.Describe(cmd).Key}
	switch c := cmd.(type) {
	case staffroll.Wait:
		e.Frames = intPtr(int(c.Frames))
	case staffroll.SwitchScene:
		e.Scene = intPtr(int(c.Scene))
	case staffroll.SwitchSceneAndWait:
		e.Scene = intPtr(int(c.Scene))
	case staffroll.PlayTitleLogoAnimation:
		e.Animation = intPtr(int(c.Animation))
	case staffroll.SetText:
		title := textenc.FromFile(c.Title)
		body := textenc.FromFile(c.Body)
		e.Title = &title
		e.Body = &body
	}
	return e
}

// Build converts the script into a command list. Fields missing from an
// entry keep their zero value.
func (s Script) Build() ([]staffroll.Command, error) {
	cmds := make([]staffroll.Command, 0, len(s.Commands))
	for i, e := range s.Commands {
		cmd, err := e.command()
		if err != nil {
			return nil, fmt.Errorf("command %d: %w", i+1, err)
		}
		cmds = append(cmds, cmd)
	}
	return cmds, nil
}

func (e Entry) command() (staffroll.Command, error) {
	desc, ok := staffroll.LookupKey(e.Type)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, e.Type)
	}
	if desc.Opcode == staffroll.OpStop {
		return nil, staffroll.ErrStopInList
	}

	values := e.assignments()
	allowed := make(map[string]struct{}, len(desc.Fields))
	for _, spec := range desc.Fields {
		allowed[spec.Name] = struct{}{}
	}
	cmd := staffroll.DefaultInstance(desc)
	for _, v := range values {
		if _, ok := allowed[v.name]; !ok {
			return nil, fmt.Errorf("%w: %s has no field %q", ErrUnexpectedField, desc.Key, v.name)
		}
		var err error
		cmd, err = document.SetField(cmd, v.name, v.value)
		if err != nil {
			return nil, err
		}
	}
	return cmd, nil
}

type assignment struct {
	name  string
	value string
}

func (e Entry) assignments() []assignment {
	var out []assignment
	if e.Frames != nil {
		out = append(out, assignment{"frames", strconv.Itoa(*e.Frames)})
	}
	if e.Scene != nil {
		out = append(out, assignment{"scene", strconv.Itoa(*e.Scene)})
	}
	if e.Animation != nil {
		out = append(out, assignment{"animation", strconv.Itoa(*e.Animation)})
	}
	if e.Title != nil {
		out = append(out, assignment{"title", *e.Title})
	}
	if e.Body != nil {
		out = append(out, assignment{"body", *e.Body})
	}
	return out
}

func intPtr(v int) *int {
	return &v
}
