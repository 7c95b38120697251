package services

import (
	"errors"
	"strings"
	"testing"

	"mission-route-service/internal/domain"
)

const validReply = `Here is the optimized route:
{"totalDistance": 97.7, "estimatedTime": 118.4, "fuelCost": 14.66,
 "route": [
   {"from": "Main depot", "to": "Paris job", "distance": 48.9, "time": 59, "mode": "walking"},
   {"from": "Paris job", "to": "Main depot", "distance": 48.8, "time": 59.4, "mode": "walking"}
 ],
 "optimizedOrder": ["Paris job"]}
Let me know if you need anything else.`

func TestParseOptimizerReply_Valid(t *testing.T) {
	stops := []domain.MissionStop{stop("m1", "Paris job", coords(paris))}

	r, err := parseOptimizerReply(validReply, stops, domain.ModeDriving)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if r.Source != domain.SourceExternal {
		t.Fatalf("source = %s, want external", r.Source)
	}
	if r.TotalTimeMinutes != 118 {
		t.Fatalf("time = %d, want 118", r.TotalTimeMinutes)
	}
	if len(r.Legs) != 2 || r.Legs[1].TimeMinutes != 59 {
		t.Fatalf("unexpected legs: %+v", r.Legs)
	}
	for _, l := range r.Legs {
		if l.Mode != domain.ModeDriving {
			t.Fatalf("leg mode = %s, want the requested mode", l.Mode)
		}
	}
	if len(r.StopOrder) != 1 || r.StopOrder[0] != "Paris job" {
		t.Fatalf("order = %v", r.StopOrder)
	}
}

func TestParseOptimizerReply_Errors(t *testing.T) {
	stops := []domain.MissionStop{stop("m1", "Paris job", coords(paris))}

	cases := []struct {
		name string
		text string
		want error
	}{
		{"no json", "Sorry, I cannot help with that.", errNoJSONBlock},
		{"broken json", `{"totalDistance": 1,}`, errReplyDecode},
		{"missing field", strings.Replace(validReply, `"fuelCost": 14.66,`, "", 1), errReplyInvalid},
		{"negative", strings.Replace(validReply, `"totalDistance": 97.7`, `"totalDistance": -1`, 1), errReplyInvalid},
		{"wrong title", strings.Replace(validReply, `["Paris job"]`, `["Lyon job"]`, 1), errReplyInvalid},
		{"empty order", strings.Replace(validReply, `["Paris job"]`, `[]`, 1), errReplyInvalid},
		{"missing leg", `{"totalDistance": 1, "estimatedTime": 1, "fuelCost": 0, "route": [{"from":"a","to":"b","distance":1,"time":1}], "optimizedOrder": ["Paris job"]}`, errReplyInvalid},
		{"huge total time", strings.Replace(validReply, `"estimatedTime": 118.4`, `"estimatedTime": 1e300`, 1), errReplyInvalid},
		{"huge leg time", strings.Replace(validReply, `"time": 59.4`, `"time": 1e300`, 1), errReplyInvalid},
		{"blank label", strings.Replace(validReply, `"to": "Paris job"`, `"to": " "`, 1), errReplyInvalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseOptimizerReply(tc.text, stops, domain.ModeDriving)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestParseOptimizerReply_DuplicateTitles(t *testing.T) {
	stops := []domain.MissionStop{
		stop("m1", "Boiler check", coords(paris)),
		stop("m2", "Boiler check", coords(versailles)),
	}
	leg := `{"from":"x","to":"y","distance":1,"time":1}`
	base := `{"totalDistance": 3, "estimatedTime": 3, "fuelCost": 0, "route": [` + leg + `,` + leg + `,` + leg + `], "optimizedOrder": %s}`

	if _, err := parseOptimizerReply(strings.Replace(base, "%s", `["Boiler check","Boiler check"]`, 1), stops, domain.ModeWalking); err != nil {
		t.Fatalf("duplicate titles should validate: %v", err)
	}
	if _, err := parseOptimizerReply(strings.Replace(base, "%s", `["Boiler check","Other"]`, 1), stops, domain.ModeWalking); !errors.Is(err, errReplyInvalid) {
		t.Fatalf("err = %v, want invalid reply", err)
	}
}

func TestBuildOptimizerPrompt(t *testing.T) {
	stops := []domain.MissionStop{
		stop("m1", "Paris job", coords(paris)),
		stop("m2", "Versailles job", coords(versailles)),
	}

	p := buildOptimizerPrompt(stops, domain.DefaultDepot, domain.ModeBicycling)

	for _, want := range []string{
		"Main depot",
		"Transport mode: bicycling",
		"1. Paris job (lat 48.856600, lon 2.352200)",
		"2. Versailles job",
		`"optimizedOrder"`,
	} {
		if !strings.Contains(p, want) {
			t.Fatalf("prompt missing %q:\n%s", want, p)
		}
	}
}

func TestParseOptimizerReply_FuelOnlyWhenDriving(t *testing.T) {
	stops := []domain.MissionStop{stop("m1", "Paris job", coords(paris))}

	for _, mode := range []domain.TransportMode{domain.ModeWalking, domain.ModeBicycling, domain.ModeTransit} {
		r, err := parseOptimizerReply(validReply, stops, mode)
		if err != nil {
			t.Fatalf("%s: unexpected err: %v", mode, err)
		}
		if r.FuelCost != 0 {
			t.Fatalf("%s: fuel = %v, want 0", mode, r.FuelCost)
		}
	}

	r, err := parseOptimizerReply(validReply, stops, domain.ModeDriving)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if r.FuelCost != 14.66 {
		t.Fatalf("driving fuel = %v, want 14.66", r.FuelCost)
	}
}
