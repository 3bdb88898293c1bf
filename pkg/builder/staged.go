package builder

// Staged builder: each step returns an interface exposing only the legal next
// step, so required fields cannot be skipped. The compiler enforces the
// construction order; Build is only reachable once every mandatory stage has
// run.

// Request is the product of the staged builder: an outbound notification
// request with mandatory recipient and subject and optional body.
type Request struct {
	recipient string
	subject   string
	body      string
}

func (r Request) Recipient() string { return r.recipient }
func (r Request) Subject() string   { return r.subject }
func (r Request) Body() string      { return r.body }

// RecipientStep is the entry stage: a recipient must be chosen first.
type RecipientStep interface {
	To(recipient string) SubjectStep
}

// SubjectStep follows the recipient and demands a subject.
type SubjectStep interface {
	Subject(subject string) FinalStep
}

// FinalStep allows the optional body and terminates the chain.
type FinalStep interface {
	Body(body string) FinalStep
	Build() Request
}

type requestBuilder struct {
	req Request
}

// NewRequest starts the staged construction chain.
func NewRequest() RecipientStep {
	return &requestBuilder{}
}

func (b *requestBuilder) To(recipient string) SubjectStep {
	b.req.recipient = recipient
	return b
}

func (b *requestBuilder) Subject(subject string) FinalStep {
	b.req.subject = subject
	return b
}

func (b *requestBuilder) Body(body string) FinalStep {
	b.req.body = body
	return b
}

func (b *requestBuilder) Build() Request {
	return b.req
}
