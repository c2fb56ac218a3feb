package simulation

import "github.com/lao-tseu-is-alive/go-ripple-swarm/pb"

// MultiplierKind names one of the three flocking knobs.
type MultiplierKind uint8

const (
	Cohesion MultiplierKind = iota
	Alignment
	Separation
)

func (k MultiplierKind) String() string {
	switch k {
	case Cohesion:
		return "cohesion"
	case Alignment:
		return "alignment"
	case Separation:
		return "separation"
	}
	return "unknown"
}

func (k MultiplierKind) ToProto() pb.Multiplier {
	return pb.Multiplier(k)
}

func MultiplierKindFromProto(m pb.Multiplier) MultiplierKind {
	return MultiplierKind(m)
}

// Multipliers scale the flocking passes. They never go below zero.
type Multipliers struct {
	Cohesion   int
	Alignment  int
	Separation int
}

// Adjust adds delta to the multiplier of kind k, flooring at zero, and returns the new value.
func (m *Multipliers) Adjust(k MultiplierKind, delta int) int {
	var p *int
	switch k {
	case Cohesion:
		p = &m.Cohesion
	case Alignment:
		p = &m.Alignment
	case Separation:
		p = &m.Separation
	default:
		return 0
	}
	*p = max(*p+delta, 0)
	return *p
}

func (m Multipliers) ToProto() *pb.Multipliers {
	return &pb.Multipliers{
		Cohesion:   int32(m.Cohesion),
		Alignment:  int32(m.Alignment),
		Separation: int32(m.Separation),
	}
}
