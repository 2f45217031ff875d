package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	out    io.Writer
	errOut io.Writer
}

// NewOutput creates a new Output formatter
func NewOutput(format string, out, errOut io.Writer) *Output {
	return &Output{format: format, out: out, errOut: errOut}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error. GraphQL errors are listed one per line.
func (o *Output) PrintError(err error) {
	var respErr *ResponseError
	isGraphQL := errors.As(err, &respErr)

	if o.format == "json" {
		if isGraphQL {
			data, _ := json.Marshal(map[string]any{"errors": respErr.Response.Errors})
			_, _ = fmt.Fprintln(o.errOut, string(data))
			return
		}
		data, _ := json.Marshal(map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		})
		_, _ = fmt.Fprintln(o.errOut, string(data))
		return
	}

	if isGraphQL {
		for _, e := range respErr.Response.Errors {
			if len(e.Locations) > 0 {
				_, _ = fmt.Fprintf(o.errOut, "Error: %s (line %d, column %d)\n", e.Message, e.Locations[0].Line, e.Locations[0].Column)
			} else {
				_, _ = fmt.Fprintf(o.errOut, "Error: %s\n", e.Message)
			}
		}
		return
	}
	_, _ = fmt.Fprintf(o.errOut, "Error: %s\n", err)
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.out)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case *Player:
		o.printPlayer(v)
	case []Player:
		o.printPlayers(v)
	case AddResult:
		_, _ = fmt.Fprintln(o.out, v.Add)
	case HelloResult:
		_, _ = fmt.Fprintln(o.out, v.Hello)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches the GraphQL Player type)
type Player struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Instrument string `json:"instrument"`
}

// AddResult is the data of an add query
type AddResult struct {
	Add int32 `json:"add"`
}

// HelloResult is the data of a hello query
type HelloResult struct {
	Hello string `json:"hello"`
}

// HealthResult response type
type HealthResult struct {
	Status    string `json:"status"`
	Players   int    `json:"players"`
	StartedAt string `json:"started_at"`
	Uptime    string `json:"uptime"`
}

func (o *Output) printPlayer(p *Player) {
	if p == nil {
		_, _ = fmt.Fprintln(o.out, "Player not found")
		return
	}
	_, _ = fmt.Fprintf(o.out, "Player: %s (%s)\n", p.Name, p.ID)
	_, _ = fmt.Fprintf(o.out, "Instrument: %s\n", p.Instrument)
}

func (o *Output) printPlayers(players []Player) {
	_, _ = fmt.Fprintf(o.out, "Players (%d):\n", len(players))
	for _, p := range players {
		_, _ = fmt.Fprintf(o.out, "  - %s %s (%s)\n", p.ID, p.Name, p.Instrument)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	_, _ = fmt.Fprintf(o.out, "Status: %s\n", h.Status)
	_, _ = fmt.Fprintf(o.out, "Players: %d\n", h.Players)
	if h.Uptime != "" {
		_, _ = fmt.Fprintf(o.out, "Uptime: %s\n", h.Uptime)
	}
}
