package sexp

import (
	"strings"
	"testing"
)

// Helper to parse a single s-expression from a string
func parseOne(t *testing.T, input string) Node {
	t.Helper()
	nodes, err := ParseString(input)
	if err != nil {
		t.Fatalf("Failed to parse %q: %v", input, err)
	}
	if len(nodes) != 1 {
		t.Fatalf("Expected 1 expression from %q, got %d", input, len(nodes))
	}
	return nodes[0]
}

func TestParseAtoms(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"symbol", "(layer F.Cu)", "(layer F.Cu)"},
		{"quoted string", `(name "GND")`, `(name "GND")`},
		{"string with spaces", `(value "10 uF")`, `(value "10 uF")`},
		{"numbers", "(at 100 50 90)", "(at 100 50 90)"},
		{"nested", "(a (b (c 1)))", "(a (b (c 1)))"},
		{"escaped quote", `(s "a\"b")`, `(s "a\"b")`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node := parseOne(t, tt.input)
			if got := node.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParseSkipsComments(t *testing.T) {
	input := "# leading comment\n(net 1) # trailing\n(net 2)"
	nodes, err := ParseString(input)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(nodes) != 2 {
		t.Fatalf("Expected 2 expressions, got %d", len(nodes))
	}
}

func TestParseDoubledQuoteEscape(t *testing.T) {
	node := parseOne(t, `(s "a""b")`)
	str, err := GetString(node, 1)
	if err != nil {
		t.Fatalf("GetString: %v", err)
	}
	if str != `a"b` {
		t.Errorf("Got %q, want %q", str, `a"b`)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unterminated list", "(a (b 1)"},
		{"stray close", ")"},
		{"unterminated string", `(s "abc`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseString(tt.input); err == nil {
				t.Errorf("Expected error for %q, got nil", tt.input)
			}
		})
	}
}

func TestListName(t *testing.T) {
	node := parseOne(t, `(comp (ref "C1"))`)
	list := node.(*List)
	if list.Name() != "comp" {
		t.Errorf("Name() = %q, want comp", list.Name())
	}
}

func TestFindNode(t *testing.T) {
	node := parseOne(t, `(comp (ref "C1") (value "10uF"))`)
	ref, found := FindNode(node, "ref")
	if !found {
		t.Fatal("FindNode(ref) not found")
	}
	val, err := GetString(ref, 1)
	if err != nil || val != "C1" {
		t.Errorf("GetString = %q, %v; want C1", val, err)
	}

	if _, found := FindNode(node, "footprint"); found {
		t.Error("FindNode(footprint) should not be found")
	}
}

func TestFindAllNodes(t *testing.T) {
	node := parseOne(t, `(net (code "1") (node (ref "C1")) (node (ref "C2")))`)
	nodes := FindAllNodes(node, "node")
	if len(nodes) != 2 {
		t.Fatalf("Expected 2 nodes, got %d", len(nodes))
	}
}

func TestGetInt(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		index   int
		want    int
		wantErr bool
	}{
		{"plain", "(version 20211014)", 1, 20211014, false},
		{"quoted", `(code "3")`, 1, 3, false},
		{"not a number", "(version abc)", 1, 0, true},
		{"out of bounds", "(version 1)", 5, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetInt(parseOne(t, tt.input), tt.index)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("GetInt() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestChildString(t *testing.T) {
	node := parseOne(t, `(design (source "power_supply") (tool "trace"))`)
	if got := ChildString(node, "source"); got != "power_supply" {
		t.Errorf("ChildString(source) = %q", got)
	}
	if got := ChildString(node, "missing"); got != "" {
		t.Errorf("ChildString(missing) = %q, want empty", got)
	}
}

func TestWriteInlinesSmallLists(t *testing.T) {
	node := NewList(Symbol("at"), Symbol("100"), Symbol("50"))
	var sb strings.Builder
	if err := Write(&sb, node); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := sb.String(); got != "(at 100 50)\n" {
		t.Errorf("Write = %q", got)
	}
}

func TestWriteBreaksNestedLists(t *testing.T) {
	node := NewList(Symbol("nets"),
		NewList(Symbol("net"),
			NewList(Symbol("code"), Str("1")),
			NewList(Symbol("name"), Str("GND")),
			NewList(Symbol("node"), NewList(Symbol("ref"), Str("C1"))),
		),
	)
	got := Format(node)
	want := `(nets
  (net
    (code "1")
    (name "GND")
    (node (ref "C1"))))`
	if got != want {
		t.Errorf("Format =\n%s\nwant\n%s", got, want)
	}
}

func TestWriteRoundTrip(t *testing.T) {
	input := `(export (version "E") (design (source "x") (tool "y")) (nets (net (code "1") (name "+12V") (node (ref "J1") (pin "9") (pintype "passive")))))`
	node := parseOne(t, input)

	reparsed := parseOne(t, Format(node))
	if reparsed.String() != node.String() {
		t.Errorf("round trip changed document:\n%s\nvs\n%s", node.String(), reparsed.String())
	}
}

func TestStrQuoting(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"GND", `"GND"`},
		{`a"b`, `"a\"b"`},
		{"a\nb", `"a\nb"`},
		{`back\slash`, `"back\\slash"`},
	}
	for _, tt := range tests {
		if got := Str(tt.in).String(); got != tt.want {
			t.Errorf("Str(%q).String() = %s, want %s", tt.in, got, tt.want)
		}
	}
}
