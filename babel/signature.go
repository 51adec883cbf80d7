package babel

// SourceID is the (origin address, origin seqno) pair that identifies a
// particular advertisement of a route. It is what gets source-scope signed
// so that a forwarding neighbour cannot forge a fresher seqno on behalf of
// the origin.
type SourceID[A Address] struct {
	Addr  A
	Seqno Seqno
}

// Signature wraps a signed value together with its MAC. It models spec
// §6's Signature<T>: a stamped identity plus whatever bytes the host's
// signature system needs to later validate it.
type Signature[V any] struct {
	Value V
	MAC   []byte
}

// Signer is the capability bundle the core consumes from the host (spec
// §6): the ability to stamp this node's identity onto a source pair or an
// outbound packet envelope, and to validate that a peer's stamp really
// came from the address it claims. A null implementation that signs
// identically and always validates (see NullSigner) is acceptable for
// unauthenticated deployments.
type Signer[A Address] interface {
	SignSource(id SourceID[A]) Signature[SourceID[A]]
	ValidateSource(sig Signature[SourceID[A]], subject A) bool

	SignPacket(p Packet[A]) Signature[Packet[A]]
	ValidatePacket(sig Signature[Packet[A]], subject A) bool
}

// NullSigner accepts everything and signs with an empty MAC. It satisfies
// Signer for any Address type and is the reference implementation for
// deployments that trust their transport to do authentication some other
// way (e.g. a pre-shared mesh over WireGuard).
type NullSigner[A Address] struct{}

func (NullSigner[A]) SignSource(id SourceID[A]) Signature[SourceID[A]] {
	return Signature[SourceID[A]]{Value: id}
}

func (NullSigner[A]) ValidateSource(Signature[SourceID[A]], A) bool {
	return true
}

func (NullSigner[A]) SignPacket(p Packet[A]) Signature[Packet[A]] {
	return Signature[Packet[A]]{Value: p}
}

func (NullSigner[A]) ValidatePacket(Signature[Packet[A]], A) bool {
	return true
}
