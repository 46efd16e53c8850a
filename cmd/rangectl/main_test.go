package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	"cc7"
	"cc7/codec"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd, opts := newRootCmd()
	defer opts.teardown()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestHexCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"hex", "-f", "hex", "deadbeef"}, "DEADBEEF\n"},
		{[]string{"hex", "--lower", "-f", "hex", "DEADBEEF"}, "deadbeef\n"},
		{[]string{"hex", "AB"}, "4142\n"},
		{[]string{"--cache", "hex", "-l", "AB"}, "4142\n"},
	}
	for _, tt := range tests {
		got, err := run(t, "", tt.args...)
		if err != nil {
			t.Fatalf("%v: %v", tt.args, err)
		}
		if got != tt.want {
			t.Errorf("%v = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestBase64CommandFromStdin(t *testing.T) {
	got, err := run(t, "foobar", "base64", "--wrap", "4")
	if err != nil {
		t.Fatal(err)
	}
	if got != "Zm9v\nYmFy\n" {
		t.Errorf("base64 = %q", got)
	}
}

func TestSliceCommand(t *testing.T) {
	tests := []struct {
		args    []string
		want    string
		wantErr error
	}{
		{[]string{"slice", "--prefix", "5", "HelloWorld"}, "576F726C64\n", nil},
		{[]string{"slice", "--from", "1", "--count", "2", "abcd"}, "6263\n", nil},
		{[]string{"slice", "--from", "1", "--to", "3", "abcd"}, "6263\n", nil},
		{[]string{"slice", "--from", "4", "--count", "0", "abcd"}, "\n", nil},
		{[]string{"slice", "--prefix", "5", "--suffix", "10", "HelloWorld"}, "", cc7.ErrOutOfRange},
		{[]string{"slice", "--from", "3", "--count", "10", "01234"}, "", cc7.ErrOutOfRange},
	}
	for _, tt := range tests {
		got, err := run(t, "", tt.args...)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("%v: error = %v, want %v", tt.args, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Fatalf("%v: %v", tt.args, err)
		}
		if got != tt.want {
			t.Errorf("%v = %q, want %q", tt.args, got, tt.want)
		}
	}
}

func TestCompareCommand(t *testing.T) {
	tests := []struct {
		a, b string
		want string
	}{
		{"01", "0102", "-1\n"},
		{"0102", "01", "1\n"},
		{"0102", "0102", "0\n"},
	}
	for _, tt := range tests {
		got, err := run(t, "", "compare", "-f", "hex", tt.a, tt.b)
		if err != nil {
			t.Fatal(err)
		}
		if got != tt.want {
			t.Errorf("compare %s %s = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestAtCommand(t *testing.T) {
	got, err := run(t, "", "at", "1", "-f", "base64", "3q2+7w==")
	if err != nil {
		t.Fatal(err)
	}
	if got != "0xAD\n" {
		t.Errorf("at = %q", got)
	}
	if _, err := run(t, "", "at", "4", "-f", "hex", "deadbeef"); !errors.Is(err, cc7.ErrOutOfRange) {
		t.Errorf("at past end error = %v", err)
	}
	if _, err := run(t, "", "at", "x", "abc"); err == nil {
		t.Error("non-numeric index should fail")
	}
}

func TestInfoJSON(t *testing.T) {
	got, err := run(t, "", "--json", "info", "-f", "hex", "DEADBEEF")
	if err != nil {
		t.Fatal(err)
	}
	var res struct {
		Size  int    `json:"size"`
		Empty bool   `json:"empty"`
		Hex   string `json:"hex"`
	}
	if err := json.Unmarshal([]byte(got), &res); err != nil {
		t.Fatalf("output %q is not JSON: %v", got, err)
	}
	if res.Size != 4 || res.Empty || res.Hex != "DEADBEEF" {
		t.Errorf("info = %+v", res)
	}
}

func TestCacheRestoredOnError(t *testing.T) {
	if _, err := run(t, "", "--cache", "at", "9", "abc"); !errors.Is(err, cc7.ErrOutOfRange) {
		t.Fatalf("at past end error = %v", err)
	}
	if _, ok := cc7.SetEncoder(nil).(codec.Plain); !ok {
		t.Error("encoder not restored after failed command")
	}
}

func TestBadInput(t *testing.T) {
	if _, err := run(t, "", "hex", "-f", "yaml", "x"); err == nil {
		t.Error("unknown input format should fail")
	}
	if _, err := run(t, "", "hex", "-f", "hex", "xyz"); err == nil {
		t.Error("malformed hex should fail")
	}
}
