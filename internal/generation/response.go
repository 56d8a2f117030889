package generation

// Blob is inline binary data returned by the backend.
type Blob struct {
	MIMEType string
	Data     []byte
}

// Part is one ordered element of a candidate's content.
type Part struct {
	Text       string
	InlineData *Blob
}

// Response is the normalized answer of a backend call.
type Response struct {
	// Text is the concatenated text body of the first candidate
	Text string

	// Parts are the ordered content parts of the first candidate
	Parts []Part

	// Grounding holds the classified grounding chunks of the first candidate
	Grounding []GroundingChunk
}
