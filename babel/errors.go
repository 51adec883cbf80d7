package babel

import "fmt"

// MACValidationFailError reports that either the outer (neighbour-scope)
// or inner (source-scope) signature on an inbound message did not verify.
// The message is always dropped; the caller decides whether to take
// further action such as blacklisting the link.
type MACValidationFailError[L LinkID] struct {
	Link L
}

func (e MACValidationFailError[L]) Error() string {
	return fmt.Sprintf("MAC validation failed on link %v", e.Link)
}
