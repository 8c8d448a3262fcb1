package strand

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrInvalidProject is returned when project data is not a JSON array of
// stroke records, or when a record has no raw points.
var ErrInvalidProject = errors.New("invalid project")

// A project file is a JSON array of stroke records. Only the raw points and
// the parameters are stored; canonical points and ribbons are always
// re-derived on load.
//
// Missing fields take their value from [DefaultStyle], with two fixed
// exceptions kept for older files: a missing taper is 0 and missing easings
// are linear. Unrecognized enumeration values are treated as missing.
type strokeRecord struct {
	RawPoints      []pointRecord   `json:"rawPoints"`
	Color          string          `json:"color,omitempty"`
	EndColor       string          `json:"endColor,omitempty"`
	Width          *float64        `json:"width,omitempty"`
	Taper          *float64        `json:"taper,omitempty"`
	TaperEasing    string          `json:"taperEasing,omitempty"`
	StartCap       string          `json:"startCap,omitempty"`
	EndCap         string          `json:"endCap,omitempty"`
	Smoothing      *float64        `json:"smoothing,omitempty"`
	Simplification *float64        `json:"simplification,omitempty"`
	Speed          *float64        `json:"speed,omitempty"`
	Phase          *float64        `json:"phase,omitempty"`
	Easing         string          `json:"easing,omitempty"`
	Mode           string          `json:"mode,omitempty"`
	Symmetry       *symmetryRecord `json:"symmetry,omitempty"`
	Physics        bool            `json:"physics,omitempty"`
}

type pointRecord struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type symmetryRecord struct {
	Type       string  `json:"type"`
	Copies     int     `json:"copies,omitempty"`
	PhaseShift float64 `json:"phaseShift,omitempty"`
	Gap        float64 `json:"gap,omitempty"`
}

func newStrokeRecord(s *Stroke) strokeRecord {
	style := s.Style()
	raw := s.RawPoints()
	rec := strokeRecord{
		RawPoints:      make([]pointRecord, len(raw)),
		Color:          style.Color,
		EndColor:       style.EndColor,
		Width:          &style.Width,
		Taper:          &style.Taper,
		TaperEasing:    style.TaperEasing.String(),
		StartCap:       style.StartCap.String(),
		EndCap:         style.EndCap.String(),
		Smoothing:      &style.Smoothing,
		Simplification: &style.Simplification,
		Speed:          &style.Animation.Speed,
		Phase:          &style.Animation.Phase,
		Easing:         style.Animation.Easing.String(),
		Mode:           style.Animation.Mode.String(),
		Symmetry: &symmetryRecord{
			Type:       style.Symmetry.Kind.String(),
			Copies:     style.Symmetry.Copies,
			PhaseShift: style.Symmetry.PhaseShift,
			Gap:        style.Symmetry.Gap,
		},
		Physics: style.Physics,
	}
	for i, pt := range raw {
		rec.RawPoints[i] = pointRecord{pt.X, pt.Y}
	}
	return rec
}

// style converts the record's parameters, filling in defaults. idx is only
// used for log messages.
func (rec *strokeRecord) style(idx int) Style {
	style := DefaultStyle
	style.Taper = 0
	style.TaperEasing = Linear
	style.Animation.Easing = Linear

	if rec.Color != "" {
		style.Color = rec.Color
	}
	style.EndColor = rec.EndColor
	setFloat(&style.Width, rec.Width)
	setFloat(&style.Taper, rec.Taper)
	setFloat(&style.Smoothing, rec.Smoothing)
	setFloat(&style.Simplification, rec.Simplification)
	setFloat(&style.Animation.Speed, rec.Speed)
	setFloat(&style.Animation.Phase, rec.Phase)
	style.Physics = rec.Physics

	setEnum(&style.TaperEasing, rec.TaperEasing, ParseEasing, idx, "taperEasing")
	setEnum(&style.StartCap, rec.StartCap, ParseCap, idx, "startCap")
	setEnum(&style.EndCap, rec.EndCap, ParseCap, idx, "endCap")
	setEnum(&style.Animation.Easing, rec.Easing, ParseEasing, idx, "easing")
	setEnum(&style.Animation.Mode, rec.Mode, ParseAnimationMode, idx, "mode")

	if sym := rec.Symmetry; sym != nil {
		style.Symmetry = Symmetry{
			Copies:     sym.Copies,
			PhaseShift: sym.PhaseShift,
			Gap:        sym.Gap,
		}
		setEnum(&style.Symmetry.Kind, sym.Type, ParseSymmetryKind, idx, "symmetry.type")
		if err := style.Symmetry.Validate(); err != nil {
			Logger().Warn("stroke symmetry is invalid, drawing a single copy",
				"stroke", idx, "err", err)
		}
	}
	return style
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setEnum[T any](dst *T, s string, parse func(string) (T, bool), idx int, field string) {
	if s == "" {
		return
	}
	v, ok := parse(s)
	if !ok {
		Logger().Warn("unknown value in project, using default",
			"stroke", idx, "field", field, "value", s)
		return
	}
	*dst = v
}

// MarshalProject encodes strokes as a project file.
func MarshalProject(strokes []*Stroke) ([]byte, error) {
	recs := make([]strokeRecord, len(strokes))
	for i, s := range strokes {
		recs[i] = newStrokeRecord(s)
	}
	return json.MarshalIndent(recs, "", "\t")
}

// UnmarshalProject decodes a project file and rebuilds every stroke's
// geometry from its raw points.
func UnmarshalProject(data []byte) ([]*Stroke, error) {
	var msgs []json.RawMessage
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidProject, err)
	}
	if msgs == nil {
		return nil, fmt.Errorf("%w: not an array", ErrInvalidProject)
	}

	strokes := make([]*Stroke, 0, len(msgs))
	for i, msg := range msgs {
		var rec strokeRecord
		if err := json.Unmarshal(msg, &rec); err != nil {
			return nil, fmt.Errorf("%w: stroke %d: %w", ErrInvalidProject, i, err)
		}
		if len(rec.RawPoints) == 0 {
			return nil, fmt.Errorf("%w: stroke %d has no raw points", ErrInvalidProject, i)
		}
		raw := make([]Point, len(rec.RawPoints))
		for j, p := range rec.RawPoints {
			raw[j] = Pt(p.X, p.Y)
		}
		s, err := NewStroke(raw, rec.style(i))
		if err != nil {
			return nil, fmt.Errorf("%w: stroke %d: %w", ErrInvalidProject, i, err)
		}
		strokes = append(strokes, s)
	}
	return strokes, nil
}

// WriteProject writes the drawing's strokes as a project file.
func (d *Drawing) WriteProject(w io.Writer) error {
	b, err := MarshalProject(d.strokes)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// ReadProject replaces the drawing's strokes with those of a project file.
// On error, the drawing is left unchanged.
func (d *Drawing) ReadProject(r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	strokes, err := UnmarshalProject(b)
	if err != nil {
		return err
	}
	d.strokes = strokes
	Logger().Debug("loaded project", "strokes", len(strokes))
	return nil
}
