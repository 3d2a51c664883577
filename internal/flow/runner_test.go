package flow

import (
	"errors"
	"testing"

	"ring-tool/internal/sizes"
)

func testTable() *sizes.Table {
	return sizes.NewTable([]sizes.System{
		{
			Code: "UK",
			Name: "United Kingdom, Ireland, Australia",
			Entries: []sizes.Entry{
				{Label: "A", DiameterMM: 12.0},
				{Label: "P", DiameterMM: 17.2},
			},
		},
		{
			Code: "US",
			Name: "United States, Canada, Mexico",
			Entries: []sizes.Entry{
				{Label: "3", DiameterMM: 14.1},
				{Label: "7", DiameterMM: 17.3},
			},
		},
	})
}

// scriptedChooser replays canned answers and records every prompt it was
// shown. An empty answer means the user dismissed the prompt.
type scriptedChooser struct {
	answers   []string
	err       error
	titles    []string
	options   [][]string
	preferred []string
}

func (c *scriptedChooser) PresentChoice(title string, options []string, preferred string) (string, bool, error) {
	c.titles = append(c.titles, title)
	c.options = append(c.options, options)
	c.preferred = append(c.preferred, preferred)
	if c.err != nil {
		return "", false, c.err
	}
	if len(c.answers) == 0 {
		return "", false, nil
	}
	a := c.answers[0]
	c.answers = c.answers[1:]
	if a == "" {
		return "", false, nil
	}
	return a, true, nil
}

type planeRecorder struct {
	circles []Circle
	err     error
}

func (p *planeRecorder) DrawCircle(c Circle) error {
	if p.err != nil {
		return p.err
	}
	p.circles = append(p.circles, c)
	return nil
}

func TestRunDrawsSelectedCircle(t *testing.T) {
	ch := &scriptedChooser{answers: []string{"UK", "P"}}
	dr := &planeRecorder{}

	res, err := Runner{DefaultSystem: "UK"}.Run(testTable(), ch, dr)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if res.Cancelled {
		t.Fatal("Run() reported cancelled")
	}

	want := Circle{System: "UK", Label: "P", DiameterMM: 17.2}
	if res.Circle != want {
		t.Errorf("Result.Circle = %+v, want %+v", res.Circle, want)
	}
	if len(dr.circles) != 1 {
		t.Fatalf("drew %d circles, want 1", len(dr.circles))
	}
	if dr.circles[0] != want {
		t.Errorf("drawn circle = %+v, want %+v", dr.circles[0], want)
	}
}

func TestRunPromptSequence(t *testing.T) {
	ch := &scriptedChooser{answers: []string{"US", "7"}}
	dr := &planeRecorder{}

	if _, err := (Runner{}).Run(testTable(), ch, dr); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if len(ch.titles) != 2 {
		t.Fatalf("prompt count = %d, want 2", len(ch.titles))
	}
	if ch.titles[0] != SystemPrompt {
		t.Errorf("first prompt = %q, want %q", ch.titles[0], SystemPrompt)
	}
	if ch.titles[1] != SizePrompt {
		t.Errorf("second prompt = %q, want %q", ch.titles[1], SizePrompt)
	}
	// The size prompt offers exactly the chosen system's labels.
	wantSizes := []string{"3", "7"}
	if len(ch.options[1]) != len(wantSizes) {
		t.Fatalf("size options = %v, want %v", ch.options[1], wantSizes)
	}
	for i := range wantSizes {
		if ch.options[1][i] != wantSizes[i] {
			t.Errorf("size options[%d] = %q, want %q", i, ch.options[1][i], wantSizes[i])
		}
	}
}

func TestRunPreferredSystem(t *testing.T) {
	tests := []struct {
		name          string
		defaultSystem string
		want          string
	}{
		{"known system preselected", "UK", "UK"},
		{"unknown system ignored", "FR", ""},
		{"empty default", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch := &scriptedChooser{answers: []string{"US", "3"}}
			_, err := Runner{DefaultSystem: tt.defaultSystem}.Run(testTable(), ch, &planeRecorder{})
			if err != nil {
				t.Fatalf("Run() error: %v", err)
			}
			if ch.preferred[0] != tt.want {
				t.Errorf("system prompt preferred = %q, want %q", ch.preferred[0], tt.want)
			}
		})
	}
}

func TestRunCancelAtSystemPrompt(t *testing.T) {
	ch := &scriptedChooser{answers: []string{""}}
	dr := &planeRecorder{}

	res, err := Runner{}.Run(testTable(), ch, dr)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !res.Cancelled {
		t.Error("Result.Cancelled = false, want true")
	}
	if len(dr.circles) != 0 {
		t.Errorf("drew %d circles after cancel, want 0", len(dr.circles))
	}
}

func TestRunCancelAtSizePrompt(t *testing.T) {
	ch := &scriptedChooser{answers: []string{"UK", ""}}
	dr := &planeRecorder{}

	res, err := Runner{}.Run(testTable(), ch, dr)
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if !res.Cancelled {
		t.Error("Result.Cancelled = false, want true")
	}
	if len(dr.circles) != 0 {
		t.Errorf("drew %d circles after cancel, want 0", len(dr.circles))
	}
}

func TestRunDrawFailure(t *testing.T) {
	hostErr := errors.New("plane not ready")
	ch := &scriptedChooser{answers: []string{"UK", "P"}}
	dr := &planeRecorder{err: hostErr}

	res, err := Runner{}.Run(testTable(), ch, dr)
	if err == nil {
		t.Fatal("Run() expected error when drawing fails")
	}

	var drawErr *DrawError
	if !errors.As(err, &drawErr) {
		t.Fatalf("Run() error = %T, want *DrawError", err)
	}
	if !errors.Is(err, hostErr) {
		t.Error("DrawError should wrap the host error")
	}
	if drawErr.Circle.Label != "P" {
		t.Errorf("DrawError.Circle.Label = %q, want %q", drawErr.Circle.Label, "P")
	}
	if res.Cancelled {
		t.Error("draw failure must not report as cancelled")
	}
}

func TestRunChooserFailure(t *testing.T) {
	promptErr := errors.New("terminal closed")
	ch := &scriptedChooser{err: promptErr}
	dr := &planeRecorder{}

	_, err := Runner{}.Run(testTable(), ch, dr)
	if !errors.Is(err, promptErr) {
		t.Errorf("Run() error = %v, want wrapped prompt error", err)
	}
	if len(dr.circles) != 0 {
		t.Errorf("drew %d circles after prompt failure, want 0", len(dr.circles))
	}
}

func TestRunKeepsNoState(t *testing.T) {
	r := Runner{DefaultSystem: "UK"}
	dr := &planeRecorder{}

	for i := 0; i < 2; i++ {
		ch := &scriptedChooser{answers: []string{"UK", "A"}}
		if _, err := r.Run(testTable(), ch, dr); err != nil {
			t.Fatalf("Run() #%d error: %v", i+1, err)
		}
		if len(ch.titles) != 2 {
			t.Fatalf("Run() #%d asked %d prompts, want 2", i+1, len(ch.titles))
		}
	}
	if len(dr.circles) != 2 {
		t.Errorf("drew %d circles over two runs, want 2", len(dr.circles))
	}
}

func TestCircleRadius(t *testing.T) {
	c := Circle{DiameterMM: 17.2}
	if c.RadiusMM() != 8.6 {
		t.Errorf("RadiusMM() = %v, want 8.6", c.RadiusMM())
	}
}
