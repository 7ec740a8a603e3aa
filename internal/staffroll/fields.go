package staffroll

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

// decodePayload builds the command for op from its payload bytes. Field-less
// commands ignore whatever payload is present.
func decodePayload(op Opcode, payload []byte) (Command, error) {
	switch op {
	case OpWait:
		if len(payload) < 2 {
			return nil, shortPayload(op, 2, len(payload))
		}
		return Wait{Frames: binary.BigEndian.Uint16(payload)}, nil
	case OpSwitchScene:
		if len(payload) < 1 {
			return nil, shortPayload(op, 1, 0)
		}
		return SwitchScene{Scene: payload[0]}, nil
	case OpSwitchSceneAndWait:
		if len(payload) < 1 {
			return nil, shortPayload(op, 1, 0)
		}
		return SwitchSceneAndWait{Scene: payload[0]}, nil
	case OpPlayTitleLogoAnimation:
		if len(payload) < 1 {
			return nil, shortPayload(op, 1, 0)
		}
		return PlayTitleLogoAnimation{Animation: payload[0]}, nil
	case OpSetText:
		return decodeSetText(payload)
	}
	d, err := Lookup(op)
	if err != nil {
		return nil, err
	}
	return d.New(), nil
}

// appendPayload appends cmd's payload bytes to dst.
func appendPayload(dst []byte, cmd Command) []byte {
	switch c := cmd.(type) {
	case Wait:
		return binary.BigEndian.AppendUint16(dst, c.Frames)
	case SwitchScene:
		return append(dst, c.Scene)
	case SwitchSceneAndWait:
		return append(dst, c.Scene)
	case PlayTitleLogoAnimation:
		return append(dst, c.Animation)
	case SetText:
		return appendSetText(dst, c)
	default:
		return dst
	}
}

// Set-text payload layout:
//
//	[titleLen][lineCount][title... 0x00][body... 0x00]
//
// titleLen counts the title's trailing null. lineCount is informational and
// is recomputed on encode.
func decodeSetText(payload []byte) (Command, error) {
	if len(payload) < 2 {
		return nil, shortPayload(OpSetText, 2, len(payload))
	}
	titleLen := int(payload[0])
	rest := payload[2:]
	if titleLen > len(rest) {
		return nil, fmt.Errorf("%w: set-text title length %d exceeds payload (%d bytes)", ErrMalformedStream, titleLen, len(rest))
	}
	title := rest[:titleLen]
	if len(title) > 0 {
		title = title[:len(title)-1]
	}
	rest = rest[titleLen:]
	end := bytes.IndexByte(rest, 0)
	if end < 0 {
		return nil, fmt.Errorf("%w: set-text body is not null terminated", ErrMalformedStream)
	}
	return SetText{Title: string(title), Body: string(rest[:end])}, nil
}

func appendSetText(dst []byte, c SetText) []byte {
	title := stripNulls(c.Title)
	body := stripNulls(c.Body)
	dst = append(dst, byte(len(title)+1), byte(strings.Count(body, "\n")+1))
	dst = append(dst, title...)
	dst = append(dst, 0)
	dst = append(dst, body...)
	return append(dst, 0)
}

// SetTextPayloadLen reports the payload size the set-text encoder produces
// for title and body.
func SetTextPayloadLen(title, body string) int {
	return 2 + len(stripNulls(title)) + 1 + len(stripNulls(body)) + 1
}

func stripNulls(s string) string {
	if strings.IndexByte(s, 0) < 0 {
		return s
	}
	return strings.ReplaceAll(s, "\x00", "")
}

func shortPayload(op Opcode, want, got int) error {
	return fmt.Errorf("%w: %s payload needs %d bytes, got %d", ErrMalformedStream, op, want, got)
}
