package task

import (
	"reflect"
	"testing"
)

func TestBuildCommandFlagOrderFollowsDeclaration(t *testing.T) {
	// output declared before input so the positional sort, not the table
	// order, must decide the trailing tokens
	s := &Spec{
		Task:   "demo",
		Binary: "demotool",
		Params: []Param{
			{Name: "output_file", Kind: File, Position: -1},
			{Name: "second", Flag: "-second", Kind: Bool},
			{Name: "first", Flag: "-first", Kind: Bool},
			{Name: "input_file", Kind: File, Position: -2},
		},
	}
	vals := Values{
		"first":       true,
		"second":      true,
		"input_file":  "/a/in.mnc",
		"output_file": "/a/out.mnc",
	}

	argv, err := BuildCommand(s, vals)
	if err != nil {
		t.Fatalf("BuildCommand() error: %v", err)
	}
	want := []string{"demotool", "-second", "-first", "/a/in.mnc", "/a/out.mnc"}
	if !reflect.DeepEqual(argv, want) {
		t.Errorf("argv = %v, want %v", argv, want)
	}
}

func TestBuildCommandRendering(t *testing.T) {
	s := &Spec{
		Task:   "render",
		Binary: "rendertool",
		Params: []Param{
			{Name: "off", Flag: "-off", Kind: Bool},
			{Name: "count", Flag: "-count", Kind: Int},
			{Name: "scale", Flag: "-scale", Kind: Float},
			{Name: "name", Flag: "-name", Kind: String},
			{Name: "span", Flag: "-span", Kind: FloatPair},
			{Name: "grid", Flag: "-grid", Kind: IntPair},
			{Name: "prec", Flag: "-prec", Kind: IntOrPair},
			{Name: "vars", Flag: "-vars", Kind: StringList, Sep: ","},
		},
	}

	tests := []struct {
		name string
		vals Values
		want []string
	}{
		{"bool false is not emitted", Values{"off": false}, []string{"rendertool"}},
		{"int", Values{"count": 7}, []string{"rendertool", "-count", "7"}},
		{"float shortest exact", Values{"scale": 0.1}, []string{"rendertool", "-scale", "0.1"}},
		{"float pair is two tokens", Values{"span": [2]float64{-1.5, 2.25}},
			[]string{"rendertool", "-span", "-1.5", "2.25"}},
		{"int pair is two tokens", Values{"grid": [2]int{0, 255}},
			[]string{"rendertool", "-grid", "0", "255"}},
		{"scalar int-or-pair", Values{"prec": 3}, []string{"rendertool", "-prec", "3"}},
		{"pair int-or-pair is one token", Values{"prec": [2]int{3, 4}},
			[]string{"rendertool", "-prec", "3,4"}},
		{"string list joins with sep", Values{"vars": []string{"x", "y", "z"}},
			[]string{"rendertool", "-vars", "x,y,z"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			argv, err := BuildCommand(s, tt.vals)
			if err != nil {
				t.Fatalf("BuildCommand() error: %v", err)
			}
			if !reflect.DeepEqual(argv, tt.want) {
				t.Errorf("argv = %v, want %v", argv, tt.want)
			}
		})
	}
}

func TestBuildCommandFileListPositional(t *testing.T) {
	s := &Spec{
		Task:   "many",
		Binary: "manytool",
		Params: []Param{
			{Name: "inputs", Kind: FileList, Position: -2},
			{Name: "output", Kind: File, Position: -1},
			{Name: "verbose", Flag: "-verbose", Kind: Bool},
		},
	}
	vals := Values{
		"inputs":  []string{"a.mnc", "b.mnc", "c.mnc"},
		"output":  "avg.mnc",
		"verbose": true,
	}

	argv, err := BuildCommand(s, vals)
	if err != nil {
		t.Fatalf("BuildCommand() error: %v", err)
	}
	want := []string{"manytool", "-verbose", "a.mnc", "b.mnc", "c.mnc", "avg.mnc"}
	if !reflect.DeepEqual(argv, want) {
		t.Errorf("argv = %v, want %v", argv, want)
	}
}

func TestBuildCommandRejectsWrongType(t *testing.T) {
	s := &Spec{
		Task:   "bad",
		Binary: "badtool",
		Params: []Param{{Name: "count", Flag: "-count", Kind: Int}},
	}
	if _, err := BuildCommand(s, Values{"count": "seven"}); err == nil {
		t.Error("expected an error for a mistyped value")
	}
}
