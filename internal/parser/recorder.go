package parser

// Policy decides which message survives when several problems are found.
type Policy int

const (
	// LastWins keeps the most recently recorded message.
	LastWins Policy = iota
	// FirstWins keeps the first recorded message and ignores the rest.
	FirstWins
)

func (p Policy) String() string {
	switch p {
	case LastWins:
		return "last-wins"
	case FirstWins:
		return "first-wins"
	}
	return "unknown"
}

// Recorder keeps the single user-facing message a parse call reports.
type Recorder struct {
	policy Policy
	msg    string
}

// NewRecorder returns an empty recorder using policy.
func NewRecorder(policy Policy) *Recorder {
	return &Recorder{policy: policy}
}

// Record stores msg according to the recorder's policy.
func (r *Recorder) Record(msg string) {
	if msg == "" {
		return
	}
	if r.policy == FirstWins && r.msg != "" {
		return
	}
	r.msg = msg
}

// Override stores msg regardless of policy.
func (r *Recorder) Override(msg string) {
	if msg != "" {
		r.msg = msg
	}
}

// Fallback stores msg only when nothing has been recorded yet.
func (r *Recorder) Fallback(msg string) {
	if r.msg == "" {
		r.msg = msg
	}
}

// Empty reports whether nothing has been recorded.
func (r *Recorder) Empty() bool { return r.msg == "" }

// Message returns the surviving message, or "".
func (r *Recorder) Message() string { return r.msg }
