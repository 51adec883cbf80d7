// Package wire is a reference binary codec for the packet schema in spec
// §6. The core itself only emits and consumes structured babel.Packet
// values — framing and endianness are explicitly a transport concern
// (spec §6, §9) — so this package exists purely as the example transport
// encoding, grounded in the teacher's own message codec
// (transitorykris/kbgp's message/open.go and messages.go), generalized
// with Go generics instead of one codec per fixed wire type.
package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/encodeous/babelgo/babel"
)

// AddressCodec is supplied by the host: it knows how to turn its own
// NodeAddress type into bytes and back, the same way a BGP speaker's NLRI
// codec is address-family specific rather than built into the protocol
// core.
type AddressCodec[A babel.Address] interface {
	Encode(addr A) []byte
	Decode(b []byte) (A, error)
}

const (
	tagUrgentRouteUpdate byte = 1
	tagBatchRouteUpdate  byte = 2
	tagSeqnoRequest      byte = 3
)

func writeLenPrefixed(buf *bytes.Buffer, b []byte) {
	var lenBuf [2]byte
	binary.BigEndian.PutUint16(lenBuf[:], uint16(len(b)))
	buf.Write(lenBuf[:])
	buf.Write(b)
}

func readLenPrefixed(r *bytes.Reader) ([]byte, error) {
	var lenBuf [2]byte
	if _, err := r.Read(lenBuf[:]); err != nil {
		return nil, fmt.Errorf("wire: reading length prefix: %w", err)
	}
	n := binary.BigEndian.Uint16(lenBuf[:])
	if n == 0 {
		return nil, nil
	}
	out := make([]byte, n)
	if _, err := r.Read(out); err != nil {
		return nil, fmt.Errorf("wire: reading %d byte payload: %w", n, err)
	}
	return out, nil
}

func writeUint16(buf *bytes.Buffer, v uint16) {
	var b [2]byte
	binary.BigEndian.PutUint16(b[:], v)
	buf.Write(b[:])
}

func readUint16(r *bytes.Reader) (uint16, error) {
	var b [2]byte
	if _, err := r.Read(b[:]); err != nil {
		return 0, fmt.Errorf("wire: reading uint16: %w", err)
	}
	return binary.BigEndian.Uint16(b[:]), nil
}

func writeSource[A babel.Address](buf *bytes.Buffer, codec AddressCodec[A], src babel.Signature[babel.SourceID[A]]) {
	writeLenPrefixed(buf, codec.Encode(src.Value.Addr))
	writeUint16(buf, uint16(src.Value.Seqno))
	writeLenPrefixed(buf, src.MAC)
}

func readSource[A babel.Address](r *bytes.Reader, codec AddressCodec[A]) (babel.Signature[babel.SourceID[A]], error) {
	var sig babel.Signature[babel.SourceID[A]]
	addrBytes, err := readLenPrefixed(r)
	if err != nil {
		return sig, err
	}
	addr, err := codec.Decode(addrBytes)
	if err != nil {
		return sig, fmt.Errorf("wire: decoding source address: %w", err)
	}
	seq, err := readUint16(r)
	if err != nil {
		return sig, err
	}
	mac, err := readLenPrefixed(r)
	if err != nil {
		return sig, err
	}
	sig.Value = babel.SourceID[A]{Addr: addr, Seqno: babel.Seqno(seq)}
	sig.MAC = mac
	return sig, nil
}

// EncodeEnvelope serializes a signed packet into its wire form.
func EncodeEnvelope[A babel.Address](env babel.Envelope[A], codec AddressCodec[A]) ([]byte, error) {
	var buf bytes.Buffer
	writeLenPrefixed(&buf, env.MAC)

	switch p := env.Value.(type) {
	case babel.UrgentRouteUpdate[A]:
		buf.WriteByte(tagUrgentRouteUpdate)
		writeSource(&buf, codec, p.Source)
		writeUint16(&buf, uint16(p.Metric))
	case babel.BatchRouteUpdate[A]:
		buf.WriteByte(tagBatchRouteUpdate)
		writeUint16(&buf, uint16(len(p.Routes)))
		for _, entry := range p.Routes {
			writeSource(&buf, codec, entry.Source)
			writeUint16(&buf, uint16(entry.Metric))
		}
	case babel.SeqnoRequest[A]:
		buf.WriteByte(tagSeqnoRequest)
		writeLenPrefixed(&buf, codec.Encode(p.Origin))
		writeUint16(&buf, uint16(p.Seqno))
	default:
		return nil, fmt.Errorf("wire: unknown packet type %T", env.Value)
	}
	return buf.Bytes(), nil
}

// DecodeEnvelope parses a wire-form signed packet back into a babel.Envelope.
func DecodeEnvelope[A babel.Address](data []byte, codec AddressCodec[A]) (babel.Envelope[A], error) {
	var env babel.Envelope[A]
	r := bytes.NewReader(data)

	mac, err := readLenPrefixed(r)
	if err != nil {
		return env, err
	}
	env.MAC = mac

	tag, err := r.ReadByte()
	if err != nil {
		return env, fmt.Errorf("wire: reading packet tag: %w", err)
	}

	switch tag {
	case tagUrgentRouteUpdate:
		src, err := readSource(r, codec)
		if err != nil {
			return env, err
		}
		metric, err := readUint16(r)
		if err != nil {
			return env, err
		}
		env.Value = babel.UrgentRouteUpdate[A]{Source: src, Metric: babel.Metric(metric)}
	case tagBatchRouteUpdate:
		count, err := readUint16(r)
		if err != nil {
			return env, err
		}
		routes := make([]babel.RouteEntry[A], 0, count)
		for i := 0; i < int(count); i++ {
			src, err := readSource(r, codec)
			if err != nil {
				return env, err
			}
			metric, err := readUint16(r)
			if err != nil {
				return env, err
			}
			routes = append(routes, babel.RouteEntry[A]{Source: src, Metric: babel.Metric(metric)})
		}
		env.Value = babel.BatchRouteUpdate[A]{Routes: routes}
	case tagSeqnoRequest:
		originBytes, err := readLenPrefixed(r)
		if err != nil {
			return env, err
		}
		origin, err := codec.Decode(originBytes)
		if err != nil {
			return env, fmt.Errorf("wire: decoding seqno request origin: %w", err)
		}
		seq, err := readUint16(r)
		if err != nil {
			return env, err
		}
		env.Value = babel.SeqnoRequest[A]{Origin: origin, Seqno: babel.Seqno(seq)}
	default:
		return env, fmt.Errorf("wire: unknown packet tag %d", tag)
	}
	return env, nil
}
