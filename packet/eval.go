package packet

import "fmt"

// Eval computes the value of p. Sum and Product wrap on uint64 overflow.
// Sum, Product, Minimum and Maximum need at least one child; comparisons need
// exactly two and yield 1 or 0.
func Eval(p Packet) (uint64, error) {
	switch p := p.(type) {
	case *Literal:
		return p.Value, nil
	case *Operator:
		return evalOperator(p)
	default:
		panic(fmt.Sprintf("packet: unknown node %T", p))
	}
}

func evalOperator(o *Operator) (uint64, error) {
	vals := make([]uint64, len(o.Children))
	for i, c := range o.Children {
		v, err := Eval(c)
		if err != nil {
			return 0, err
		}
		vals[i] = v
	}

	switch o.Type {
	case Sum, Product, Minimum, Maximum:
		if len(vals) == 0 {
			return 0, fmt.Errorf("%w: %s with no operands", ErrArity, o.Type)
		}
		acc := vals[0]
		for _, v := range vals[1:] {
			switch o.Type {
			case Sum:
				acc += v
			case Product:
				acc *= v
			case Minimum:
				acc = min(acc, v)
			case Maximum:
				acc = max(acc, v)
			}
		}
		return acc, nil
	case GreaterThan, LessThan, EqualTo:
		if len(vals) != 2 {
			return 0, fmt.Errorf("%w: %s with %d operands", ErrArity, o.Type, len(vals))
		}
		var ok bool
		switch o.Type {
		case GreaterThan:
			ok = vals[0] > vals[1]
		case LessThan:
			ok = vals[0] < vals[1]
		case EqualTo:
			ok = vals[0] == vals[1]
		}
		if ok {
			return 1, nil
		}
		return 0, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrType, o.Type)
	}
}

// VersionSum returns the sum of the versions of p and all its descendants.
func VersionSum(p Packet) uint64 {
	switch p := p.(type) {
	case *Literal:
		return uint64(p.Version)
	case *Operator:
		sum := uint64(p.Version)
		for _, c := range p.Children {
			sum += VersionSum(c)
		}
		return sum
	default:
		panic(fmt.Sprintf("packet: unknown node %T", p))
	}
}
