package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Room:
		o.printRoom(v)
	case CreateRoomResult:
		o.printCreateRoomResult(v)
	case JoinRoomResult:
		o.printJoinRoomResult(v)
	case SubmitResult:
		o.printSubmitResult(v)
	case StatusResult:
		o.printStatusResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	JoinedAt time.Time `json:"joined_at"`
}

// DayProgress response type
type DayProgress struct {
	Day         int        `json:"day"`
	Completed   bool       `json:"completed"`
	Reflection  string     `json:"reflection,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// Room response type
type Room struct {
	Code      string        `json:"code"`
	Player1   *Player       `json:"player1"`
	Player2   *Player       `json:"player2"`
	Progress  []DayProgress `json:"progress"`
	CreatedAt time.Time     `json:"created_at"`
	ExpiresAt time.Time     `json:"expires_at"`
}

// CreateRoomResult response type
type CreateRoomResult struct {
	Room     Room   `json:"room"`
	PlayerID string `json:"player_id"`
}

// JoinRoomResult response type
type JoinRoomResult struct {
	Room     Room   `json:"room"`
	PlayerID string `json:"player_id"`
	Rejoined bool   `json:"rejoined"`
}

// SubmitResult response type
type SubmitResult struct {
	Completed  bool   `json:"completed"`
	Reflection string `json:"reflection,omitempty"`
}

// StatusResult response type
type StatusResult struct {
	Submitted        bool   `json:"submitted"`
	PartnerSubmitted bool   `json:"partner_submitted"`
	Completed        bool   `json:"completed"`
	Reflection       string `json:"reflection,omitempty"`
}

// HealthResult is the health response plus client-side measurements
type HealthResult struct {
	Status    string `json:"status"`
	Server    string `json:"server,omitempty"`
	LatencyMS int64  `json:"latency_ms,omitempty"`
}

func (o *Output) printRoom(r Room) {
	fmt.Printf("Room: %s\n", r.Code)
	if r.Player1 != nil {
		fmt.Printf("Player 1: %s\n", r.Player1.Name)
	}
	if r.Player2 != nil {
		fmt.Printf("Player 2: %s\n", r.Player2.Name)
	} else {
		fmt.Println("Player 2: (waiting to join)")
	}
	fmt.Printf("Expires: %s\n", r.ExpiresAt.Format("2006-01-02 15:04"))

	completed := 0
	for _, p := range r.Progress {
		if p.Completed {
			completed++
		}
	}
	fmt.Printf("Days completed: %d of %d\n", completed, len(r.Progress))
	for _, p := range r.Progress {
		if p.Completed {
			fmt.Printf("  Day %d: done\n", p.Day)
		} else {
			fmt.Printf("  Day %d: open\n", p.Day)
		}
	}
}

func (o *Output) printCreateRoomResult(r CreateRoomResult) {
	o.printRoom(r.Room)
	fmt.Printf("Your player id: %s\n", r.PlayerID)
}

func (o *Output) printJoinRoomResult(r JoinRoomResult) {
	if r.Rejoined {
		fmt.Println("Rejoined room")
	}
	o.printRoom(r.Room)
	fmt.Printf("Your player id: %s\n", r.PlayerID)
}

func (o *Output) printSubmitResult(r SubmitResult) {
	if r.Completed {
		fmt.Println("Day complete!")
		if r.Reflection != "" {
			fmt.Printf("\n%s\n", r.Reflection)
		}
	} else {
		fmt.Println("Submitted. Waiting for your partner.")
	}
}

func (o *Output) printStatusResult(r StatusResult) {
	yn := func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	}
	fmt.Printf("You submitted: %s\n", yn(r.Submitted))
	fmt.Printf("Partner submitted: %s\n", yn(r.PartnerSubmitted))
	fmt.Printf("Completed: %s\n", yn(r.Completed))
	if r.Reflection != "" {
		fmt.Printf("\n%s\n", r.Reflection)
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
	if h.Server != "" {
		fmt.Printf("Server: %s\n", h.Server)
	}
	fmt.Printf("Round trip: %dms\n", h.LatencyMS)
}
