package render

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/bubble"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

func TestMain(m *testing.M) {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	os.Exit(m.Run())
}

func saturatedBubble(t *testing.T) *bubble.Bubble[int] {
	t.Helper()
	b, err := bubble.New[int](5)
	if err != nil {
		t.Fatal(err)
	}
	b.Insert(10, 20, 30, 40, 50, 60, 15, 25, 35, 45)
	return b
}

func TestText(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var buf bytes.Buffer
	if err := Text(saturatedBubble(t), &buf); err != nil {
		t.Fatal(err)
	}
	want := "10: {15}\n20: {25}\n30: {35}\n40: {45}\n50: {60}\n"
	if buf.String() != want {
		t.Errorf("unexpected text output:\n%s", buf.String())
	}
}

func TestTextFilling(t *testing.T) {
	b, _ := bubble.New[string](5)
	var buf bytes.Buffer
	if err := Text(b, &buf); err != nil || buf.Len() != 0 {
		t.Fatalf("expected no output for empty bubble, got %q", buf.String())
	}
	b.Insert("hello there", "we", "are")
	if err := Text(b, &buf); err != nil {
		t.Fatal(err)
	}
	want := "hello there: {}\nwe: {}\nare: {}\n"
	if buf.String() != want {
		t.Errorf("unexpected text output:\n%s", buf.String())
	}
}

func TestConsole(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	save := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = save }()
	//
	b, _ := bubble.New[int](2)
	b.Insert(5, 100, 7, 8, 9, 101, 102)
	var buf bytes.Buffer
	err := Console(b, &buf, &ConsoleConfig{LineWidth: 40, Context: uax11.LatinContext})
	if err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", buf.String())
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, have %d", len(lines))
	}
	if lines[0] != "  5 │ 7 8 9" {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if lines[1] != "100 │ 101 102" {
		t.Errorf("unexpected second line %q", lines[1])
	}
}

func TestConsoleTruncates(t *testing.T) {
	save := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = save }()
	//
	b, _ := bubble.New[int](1)
	b.Insert(0, 10, 11, 12, 13, 14, 15)
	var buf bytes.Buffer
	if err := Console(b, &buf, &ConsoleConfig{LineWidth: 14}); err != nil {
		t.Fatal(err)
	}
	// 4 ens for "0 │ ", 10 ens left for "10 11 12 …"
	if got := strings.TrimSuffix(buf.String(), "\n"); got != "0 │ 10 11 12 …" {
		t.Errorf("unexpected truncated line %q", got)
	}
}

func TestConsoleWideKeys(t *testing.T) {
	save := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = save }()
	//
	b, _ := bubble.New[int](1)
	b.Insert(123456, 1234567)
	var buf bytes.Buffer
	if err := Console(b, &buf, &ConsoleConfig{LineWidth: 5}); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSuffix(buf.String(), "\n"); got != "123456 │ …" {
		t.Errorf("expected overflow keys to shrink to an ellipsis, got %q", got)
	}
}

func TestTextVacant(t *testing.T) {
	b, _ := bubble.New[int](2)
	b.Insert(1, 2, 3)
	b.Remove(1)
	var buf bytes.Buffer
	if err := Text(b, &buf); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "(1): {}\n2: {3}\n" {
		t.Errorf("unexpected text output:\n%s", buf.String())
	}
}

func TestTruncateFitsExactly(t *testing.T) {
	grapheme.SetupGraphemeClasses()
	got := truncate([]string{"ab", "cd"}, 5, uax11.LatinContext)
	if got != "ab cd" {
		t.Errorf("expected all keys to fit, got %q", got)
	}
	got = truncate([]string{"ab", "cd", "ef"}, 5, uax11.LatinContext)
	if got != "ab …" {
		t.Errorf("expected ellipsis, got %q", got)
	}
}

func TestHTML(t *testing.T) {
	b, _ := bubble.New[string](2)
	b.Insert("a<b", "m", "c")
	var buf bytes.Buffer
	if err := HTML(b, &buf); err != nil {
		t.Fatal(err)
	}
	want := `<table class="bubble"><tr><th>a&lt;b</th><td>c</td></tr>` +
		`<tr class="nooverflow"><th>m</th><td></td></tr></table>`
	if buf.String() != want {
		t.Errorf("unexpected HTML:\n%s", buf.String())
	}
}

func TestDot(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	var buf bytes.Buffer
	if err := Dot(saturatedBubble(t), &buf); err != nil {
		t.Fatal(err)
	}
	dot := buf.String()
	t.Logf("\n%s", dot)
	if !strings.Contains(dot, "<b0> 10|<b1> 20|<b2> 30|<b3> 40|<b4> 50") {
		t.Errorf("missing bucket record")
	}
	for i := 0; i < 5; i++ {
		if !strings.Contains(dot, "buckets:b"+string(rune('0'+i))+" -> ") {
			t.Errorf("missing edge from bucket %d", i)
		}
	}
}
