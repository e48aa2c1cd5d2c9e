package types

import (
	"fmt"
	"strings"
)

// FunctionKind discriminates the FunctionType shapes. Only Fixed can be
// written by user code; the remaining shapes belong to native primitives.
type FunctionKind int

const (
	// FixedFunction has an exact, ordered parameter list and one return type.
	FixedFunction FunctionKind = iota
	// VariadicFunction accepts any number of arguments of one input type.
	VariadicFunction
	// UnionArgsFunction accepts a single argument drawn from a set of types.
	UnionArgsFunction
	// ArithmeticVariadic is the shape of +, -, * and /: any number of
	// arguments that must share one integer type, returning that type.
	ArithmeticVariadic
	// ArithmeticBinary is the shape of the comparison primitives: exactly
	// two arguments sharing one integer type, returning bool.
	ArithmeticBinary
)

// FunctionArg is a named, typed parameter of a fixed-arity function.
type FunctionArg struct {
	Name      string
	Signature TypeSignature
}

// FunctionType describes the callable shape of a function. Exactly the
// fields relevant to Kind are populated.
type FunctionType struct {
	Kind    FunctionKind
	Args    []FunctionArg // FixedFunction
	Input   TypeSignature // VariadicFunction
	Union   []TypeSignature
	Returns TypeSignature // all kinds except ArithmeticBinary (always bool)
}

func Fixed(args []FunctionArg, returns TypeSignature) *FunctionType {
	return &FunctionType{Kind: FixedFunction, Args: args, Returns: returns}
}

func Variadic(input, returns TypeSignature) *FunctionType {
	return &FunctionType{Kind: VariadicFunction, Input: input, Returns: returns}
}

func UnionArgs(union []TypeSignature, returns TypeSignature) *FunctionType {
	return &FunctionType{Kind: UnionArgsFunction, Union: union, Returns: returns}
}

func (f *FunctionType) String() string {
	switch f.Kind {
	case FixedFunction:
		var args []string
		for _, arg := range f.Args {
			args = append(args, fmt.Sprintf("(%s %s)", arg.Name, arg.Signature))
		}
		return fmt.Sprintf("(%s) %s", strings.Join(args, " "), f.Returns)
	case VariadicFunction:
		return fmt.Sprintf("(%s ...) %s", f.Input, f.Returns)
	case UnionArgsFunction:
		var union []string
		for _, t := range f.Union {
			union = append(union, t.String())
		}
		return fmt.Sprintf("(%s) %s", strings.Join(union, " | "), f.Returns)
	case ArithmeticVariadic:
		return "(int ... | uint ...) int|uint"
	case ArithmeticBinary:
		return "(int int | uint uint) bool"
	default:
		return "unknown function shape"
	}
}

// FunctionSignature is the shape a trait requires of a method: argument
// types without names, plus a return type. A realized fixed-arity
// FunctionType satisfies it when every argument and the return type are
// admitted pairwise.
type FunctionSignature struct {
	Args    []TypeSignature
	Returns TypeSignature
}

func (s FunctionSignature) String() string {
	var args []string
	for _, arg := range s.Args {
		args = append(args, arg.String())
	}
	return fmt.Sprintf("(%s) %s", strings.Join(args, " "), s.Returns)
}
