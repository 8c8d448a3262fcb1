package strand

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestProjectRoundTrip(t *testing.T) {
	styles := []Style{
		DefaultStyle,
		DefaultStyle.
			WithGradient("#ff8800", "#0088ff").
			WithWidth(14.5).
			WithTaper(35, EaseInOut).
			WithStartCap(ButtCap).
			WithEndCap(SquareCap).
			WithSmoothing(3).
			WithSimplification(0.25).
			WithAnimation(Animation{Speed: 0.8, Phase: 0.3, Easing: Elastic, Mode: Flow}).
			WithSymmetry(Symmetry{Kind: Radial, Copies: 6, PhaseShift: 0.125}),
		DefaultStyle.WithSymmetry(Symmetry{Kind: Grid, Gap: 120}),
		DefaultStyle.WithSymmetry(Symmetry{Kind: MirrorXY}),
	}
	styles[3].Physics = true

	raw := []Point{{0, 0}, {3.5, 1.25}, {7, -2}, {12, 4}, {20, 0.125}}
	var strokes []*Stroke
	for _, style := range styles {
		s, err := NewStroke(raw, style)
		if err != nil {
			t.Fatal(err)
		}
		strokes = append(strokes, s)
	}

	data, err := MarshalProject(strokes)
	if err != nil {
		t.Fatal(err)
	}
	got, err := UnmarshalProject(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(strokes) {
		t.Fatalf("got %d strokes, want %d", len(got), len(strokes))
	}
	for i, s := range got {
		diff(t, strokes[i].RawPoints(), s.RawPoints())
		diff(t, strokes[i].Style(), s.Style())
		// Derived geometry is rebuilt, and rebuilt identically.
		diff(t, strokes[i].Points(), s.Points())
		if strokes[i].Geometry() == s.Geometry() {
			t.Errorf("stroke %d shares geometry with the original", i)
		}
	}
}

func TestProjectFormat(t *testing.T) {
	s, err := NewStroke([]Point{{1, 2}, {3, 4}}, DefaultStyle.WithSymmetry(Symmetry{Kind: MirrorX}))
	if err != nil {
		t.Fatal(err)
	}
	data, err := MarshalProject([]*Stroke{s})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		`"rawPoints"`,
		`"x": 1`,
		`"startCap": "round"`,
		`"easing": "linear"`,
		`"mode": "loop"`,
		`"type": "mirror-x"`,
	} {
		if !bytes.Contains(data, []byte(want)) {
			t.Errorf("project doesn't contain %s:\n%s", want, data)
		}
	}
	if bytes.Contains(data, []byte(`"endColor"`)) {
		t.Errorf("project contains an empty end color:\n%s", data)
	}
}

func TestProjectDefaults(t *testing.T) {
	data := `[{"rawPoints": [{"x": 0, "y": 0}, {"x": 10, "y": 0}]}]`
	strokes, err := UnmarshalProject([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, DefaultStyle, strokes[0].Style())

	data = `[{"rawPoints": [{"x": 0, "y": 0}, {"x": 10, "y": 0}], "width": 0, "speed": 2, "taper": 40}]`
	strokes, err = UnmarshalProject([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	style := strokes[0].Style()
	if style.Width != 0 || style.Animation.Speed != 2 || style.Taper != 40 {
		t.Errorf("explicit values were replaced: %+v", style)
	}
	if style.TaperEasing != Linear {
		t.Errorf("got taper easing %s, want linear", style.TaperEasing)
	}
}

func TestProjectUnknownValues(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, nil)))
	defer SetLogger(nil)

	data := `[{
		"rawPoints": [{"x": 0, "y": 0}, {"x": 10, "y": 0}],
		"mode": "bounce",
		"endCap": "arrow",
		"easing": "sine",
		"symmetry": {"type": "radial", "copies": 1}
	}]`
	strokes, err := UnmarshalProject([]byte(data))
	if err != nil {
		t.Fatal(err)
	}
	style := strokes[0].Style()
	if style.Animation.Mode != Loop {
		t.Errorf("got mode %s, want loop", style.Animation.Mode)
	}
	if style.EndCap != RoundCap {
		t.Errorf("got end cap %s, want round", style.EndCap)
	}
	if style.Animation.Easing != Sine {
		t.Errorf("got easing %s, want sine", style.Animation.Easing)
	}
	if n := len(strokes[0].Instances(Sz(100, 100))); n != 1 {
		t.Errorf("invalid symmetry produced %d instances, want 1", n)
	}

	logs := buf.String()
	for _, want := range []string{"bounce", "arrow", "symmetry"} {
		if !strings.Contains(logs, want) {
			t.Errorf("log doesn't mention %q:\n%s", want, logs)
		}
	}
}

func TestProjectErrors(t *testing.T) {
	tests := []string{
		``,
		`null`,
		`{}`,
		`"strokes"`,
		`[1, 2]`,
		`[{"rawPoints": []}]`,
		`[{"color": "#fff"}]`,
		`[{"rawPoints": [{"x": 0, "y": 0}], "width": "wide"}]`,
		`[{"rawPoints": [{"x": 0, "y": 0}]}, {"rawPoints": null}]`,
	}
	for _, data := range tests {
		if _, err := UnmarshalProject([]byte(data)); !errors.Is(err, ErrInvalidProject) {
			t.Errorf("UnmarshalProject(%s): got error %v, want ErrInvalidProject", data, err)
		}
	}

	strokes, err := UnmarshalProject([]byte(`[]`))
	if err != nil || len(strokes) != 0 {
		t.Errorf("empty project: got %v, %v", strokes, err)
	}
}

func TestDrawingReadWriteProject(t *testing.T) {
	d := NewDrawing(Sz(100, 100))
	if _, err := d.Add(hline(10, 30, 10), plainStyle); err != nil {
		t.Fatal(err)
	}
	if _, err := d.Add(hline(10, 30, 50), plainStyle.WithColor("#ff0000")); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := d.WriteProject(&buf); err != nil {
		t.Fatal(err)
	}

	loaded := NewDrawing(Sz(100, 100))
	if err := loaded.ReadProject(bytes.NewReader(buf.Bytes())); err != nil {
		t.Fatal(err)
	}
	if loaded.Len() != 2 {
		t.Fatalf("got %d strokes, want 2", loaded.Len())
	}
	diff(t, "#ff0000", loaded.Stroke(1).Style().Color)

	// A failed load leaves the drawing alone.
	if err := loaded.ReadProject(strings.NewReader(`{"not": "a project"}`)); err == nil {
		t.Fatal("loading garbage succeeded")
	}
	if loaded.Len() != 2 {
		t.Errorf("failed load changed the drawing to %d strokes", loaded.Len())
	}
}
