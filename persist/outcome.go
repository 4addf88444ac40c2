package persist

// Outcome is the result of a Load
type Outcome int

const (
	// Skipped means nothing was done: storage disabled or no snapshot present.
	Skipped Outcome = iota
	// Applied means the snapshot was decoded and reconciled.
	Applied
	// Rejected means the snapshot was malformed and the store left untouched.
	Rejected
)

func (o Outcome) String() string {
	switch o {
	case Skipped:
		return "skipped"
	case Applied:
		return "applied"
	case Rejected:
		return "rejected"
	}
	return "unknown"
}
