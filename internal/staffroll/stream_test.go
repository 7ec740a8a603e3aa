package staffroll_test

import (
	"bytes"
	"errors"
	"reflect"
	"testing"

	"staffroll/internal/staffroll"
)

func TestEncodeEmptyListIsTerminatorOnly(t *testing.T) {
	data, err := staffroll.Encode(nil)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if !bytes.Equal(data, []byte{0x02, 0x00}) {
		t.Fatalf("unexpected encoding: % X", data)
	}
	cmds, err := staffroll.Decode(data)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(cmds) != 0 {
		t.Fatalf("expected empty list, got %v", cmds)
	}
}

func TestEncodeWait(t *testing.T) {
	data, err := staffroll.Encode([]staffroll.Command{staffroll.Wait{Frames: 300}})
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	want := []byte{0x04, 0x01, 0x01, 0x2C, 0x02, 0x00}
	if !bytes.Equal(data, want) {
		t.Fatalf("unexpected encoding: got % X want % X", data, want)
	}
	cmds, err := staffroll.Decode(data)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(cmds) != 1 || cmds[0] != (staffroll.Wait{Frames: 300}) {
		t.Fatalf("unexpected decode: %#v", cmds)
	}
}

func TestEncodeSwitchScene(t *testing.T) {
	data, err := staffroll.Encode([]staffroll.Command{staffroll.SwitchScene{Scene: 5}})
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	if !bytes.Equal(data[:3], []byte{0x03, 0x02, 0x05}) {
		t.Fatalf("unexpected record bytes: % X", data[:3])
	}
}

func TestSetTextPayload(t *testing.T) {
	cmd := staffroll.SetText{Title: "Hi", Body: "A\nB"}
	payload := staffroll.EncodeCommand(cmd)
	want := []byte{0x03, 0x02, 0x48, 0x69, 0x00, 0x41, 0x0A, 0x42, 0x00}
	if !bytes.Equal(payload, want) {
		t.Fatalf("unexpected payload: got % X want % X", payload, want)
	}
	if got := staffroll.SetTextPayloadLen(cmd.Title, cmd.Body); got != len(want) {
		t.Fatalf("SetTextPayloadLen = %d, want %d", got, len(want))
	}

	buf := append([]byte{byte(len(payload) + 2), 0x07}, payload...)
	buf = append(buf, 0x02, 0x00)
	cmds, err := staffroll.Decode(buf)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(cmds) != 1 || cmds[0] != cmd {
		t.Fatalf("unexpected decode: %#v", cmds)
	}
}

func TestSetTextDropsEmbeddedNulls(t *testing.T) {
	in := staffroll.SetText{Title: "a\x00b", Body: "x\x00\ny"}
	data, err := staffroll.Encode([]staffroll.Command{in})
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	cmds, err := staffroll.Decode(data)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	want := staffroll.SetText{Title: "ab", Body: "x\ny"}
	if len(cmds) != 1 || cmds[0] != want {
		t.Fatalf("unexpected decode: %#v", cmds)
	}
}

func TestRoundTripEveryCatalogType(t *testing.T) {
	var cmds []staffroll.Command
	for _, d := range staffroll.Catalog() {
		cmds = append(cmds, staffroll.DefaultInstance(d))
	}
	cmds = append(cmds,
		staffroll.Wait{Frames: 0xFFFF},
		staffroll.Wait{Frames: 1},
		staffroll.SwitchScene{Scene: 0xFF},
		staffroll.SwitchSceneAndWait{Scene: 7},
		staffroll.PlayTitleLogoAnimation{Animation: 3},
		staffroll.SetText{Title: "Staff", Body: "Line one\nLine two\n\xe9t\xe9"},
		staffroll.SetText{},
	)

	data, err := staffroll.Encode(cmds)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	got, err := staffroll.Decode(data)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if !reflect.DeepEqual(got, cmds) {
		t.Fatalf("round trip mismatch:\n got %#v\nwant %#v", got, cmds)
	}
}

func TestEncodeRecordsCarrySelfInclusiveLength(t *testing.T) {
	cmds := []staffroll.Command{
		staffroll.ShowText{},
		staffroll.Wait{Frames: 60},
		staffroll.SetText{Title: "T", Body: "B"},
		staffroll.SwitchScene{Scene: 2},
	}
	data, err := staffroll.Encode(cmds)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	records, err := staffroll.Records(data)
	if err != nil {
		t.Fatalf("Records returned error: %v", err)
	}
	if len(records) != len(cmds)+1 {
		t.Fatalf("expected %d records, got %d", len(cmds)+1, len(records))
	}
	total := 0
	for i, rec := range records {
		if int(data[rec.Offset]) != rec.Len() {
			t.Fatalf("record %d: length byte %d, record occupies %d bytes", i, data[rec.Offset], rec.Len())
		}
		if rec.Opcode == staffroll.OpStop && i != len(records)-1 {
			t.Fatalf("stop record at position %d", i)
		}
		total += rec.Len()
	}
	if total != len(data) {
		t.Fatalf("records cover %d bytes, buffer has %d", total, len(data))
	}
	if records[len(records)-1].Opcode != staffroll.OpStop {
		t.Fatal("expected stop record last")
	}
}

func TestEncodeRejectsStop(t *testing.T) {
	_, err := staffroll.Encode([]staffroll.Command{staffroll.ShowText{}, staffroll.Stop{}})
	if !errors.Is(err, staffroll.ErrStopInList) {
		t.Fatalf("expected ErrStopInList, got %v", err)
	}
}

func TestEncodeRejectsOversizedText(t *testing.T) {
	body := string(bytes.Repeat([]byte{'x'}, 250))
	_, err := staffroll.Encode([]staffroll.Command{staffroll.SetText{Title: "t", Body: body}})
	if !errors.Is(err, staffroll.ErrRecordTooLarge) {
		t.Fatalf("expected ErrRecordTooLarge, got %v", err)
	}
}

func TestDecodeMalformed(t *testing.T) {
	cases := []struct {
		name string
		data []byte
		want error
	}{
		{name: "empty", data: nil, want: staffroll.ErrMalformedStream},
		{name: "claims five bytes", data: []byte{0x05}, want: staffroll.ErrMalformedStream},
		{name: "length below two", data: []byte{0x01, 0x00}, want: staffroll.ErrMalformedStream},
		{name: "zero length", data: []byte{0x00}, want: staffroll.ErrMalformedStream},
		{name: "missing terminator", data: []byte{0x02, 0x05}, want: staffroll.ErrMalformedStream},
		{name: "truncated payload", data: []byte{0x04, 0x01, 0x01}, want: staffroll.ErrMalformedStream},
		{name: "short wait payload", data: []byte{0x03, 0x01, 0x01, 0x02, 0x00}, want: staffroll.ErrMalformedStream},
		{name: "short scene payload", data: []byte{0x02, 0x02, 0x02, 0x00}, want: staffroll.ErrMalformedStream},
		{name: "unterminated body", data: []byte{0x06, 0x07, 0x01, 0x01, 0x00, 0x41, 0x02, 0x00}, want: staffroll.ErrMalformedStream},
		{name: "title past payload", data: []byte{0x05, 0x07, 0x09, 0x01, 0x00, 0x02, 0x00}, want: staffroll.ErrMalformedStream},
		{name: "invalid opcode", data: []byte{0x02, 0x15, 0x02, 0x00}, want: staffroll.ErrInvalidOpcode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmds, err := staffroll.Decode(tc.data)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
			if cmds != nil {
				t.Fatalf("expected no partial result, got %#v", cmds)
			}
		})
	}
}

func TestDecodeIgnoresExtraPayloadOnFieldlessCommand(t *testing.T) {
	data := []byte{0x04, 0x05, 0xAA, 0xBB, 0x02, 0x00}
	cmds, err := staffroll.Decode(data)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(cmds) != 1 || cmds[0] != (staffroll.ShowText{}) {
		t.Fatalf("unexpected decode: %#v", cmds)
	}
}

func TestDecodeStopsAtTerminator(t *testing.T) {
	data := []byte{0x02, 0x13, 0x02, 0x00, 0xFF, 0xFF}
	cmds, err := staffroll.Decode(data)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if len(cmds) != 1 || cmds[0] != (staffroll.BeginFireworks{}) {
		t.Fatalf("unexpected decode: %#v", cmds)
	}
}

func TestDecodeDoesNotAliasInput(t *testing.T) {
	data, err := staffroll.Encode([]staffroll.Command{staffroll.SetText{Title: "abc", Body: "def"}})
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	cmds, err := staffroll.Decode(data)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	for i := range data {
		data[i] = 0
	}
	if got := cmds[0].(staffroll.SetText); got.Title != "abc" || got.Body != "def" {
		t.Fatalf("decoded text changed with input buffer: %#v", got)
	}
}
