// Package replay records and plays back per-frame input intents so a session
// can be reproduced headless.
package replay

import "github.com/younwookim/journey/internal/domain/entity"

// FormatVersion is written into every recording.
const FormatVersion = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	J bool `json:"j,omitempty"` // Jump
	A bool `json:"a,omitempty"` // Accepted signal arrived
}

// Intent returns the recorded intent.
func (fi FrameInput) Intent() entity.InputIntent {
	return entity.InputIntent{Left: fi.L, Right: fi.R, Jump: fi.J}
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Width     int          `json:"width"`
	Height    int          `json:"height"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
