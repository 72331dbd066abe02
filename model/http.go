package model

type DecodeRequestBody struct {
	Bytes string `json:"bytes"`
}

type DecodedEvent struct {
	Type    string `json:"type"`
	Channel uint8  `json:"channel"`
	// fixed-size array so it encodes as a JSON array, not base64
	Data    [2]uint8 `json:"data"`
	Subtype string   `json:"subtype,omitempty"`
	Sysex   string   `json:"sysex,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
