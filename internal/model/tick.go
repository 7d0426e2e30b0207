package model

import (
	"encoding/json"
	"errors"
)

// Tick is a deployed token definition. Field order is the order of the deploy JSON.
type Tick struct {
	Tick         string            `json:"tick"`
	Max          *uint64           `json:"max"`
	Generator    string            `json:"generator"`
	Repeat       uint64            `json:"repeat"`
	HasUserInput bool              `json:"has_user_input"`
	DeployArgs   []json.RawMessage `json:"deploy_args"`
}

// GeneratorID resolves the generator URI into the inscription it points at.
func (t Tick) GeneratorID() (InscriptionID, error) {
	return ParseInscriptionID(t.Generator)
}

// DecodeTick parses deploy inscription content. Content that is not a tick
// definition yields a MetadataDecodeError.
func DecodeTick(content []byte) (Tick, error) {
	var tick Tick
	if err := json.Unmarshal(content, &tick); err != nil {
		return Tick{}, &MetadataDecodeError{Err: err}
	}
	if tick.Tick == "" || tick.Generator == "" {
		return Tick{}, &MetadataDecodeError{Err: errors.New("not a tick deploy")}
	}
	return tick, nil
}
