package ast

import (
	"encoding/hex"
	"fmt"
)

// ValueKind discriminates literal values.
type ValueKind int

const (
	IntValue ValueKind = iota
	UIntValue
	BoolValue
	StringValue
	BufferValue
	PrincipalValue
)

// PrincipalData is a literal principal: a standard issuer, optionally
// qualified with a contract name.
type PrincipalData struct {
	Issuer   string
	Contract string
}

// Value is a literal appearing in contract source. Analysis only ever
// inspects a literal's kind and shape, never evaluates it.
type Value struct {
	Kind      ValueKind
	Int       int64
	UInt      uint64
	Bool      bool
	Str       string
	Buffer    []byte
	Principal *PrincipalData
}

func IntLiteral(v int64) *Value     { return &Value{Kind: IntValue, Int: v} }
func UIntLiteral(v uint64) *Value   { return &Value{Kind: UIntValue, UInt: v} }
func BoolLiteral(v bool) *Value     { return &Value{Kind: BoolValue, Bool: v} }
func StringLiteral(s string) *Value { return &Value{Kind: StringValue, Str: s} }
func BufferLiteral(b []byte) *Value { return &Value{Kind: BufferValue, Buffer: b} }

func PrincipalLiteral(issuer, contract string) *Value {
	return &Value{Kind: PrincipalValue, Principal: &PrincipalData{Issuer: issuer, Contract: contract}}
}

func (v *Value) String() string {
	switch v.Kind {
	case IntValue:
		return fmt.Sprintf("%d", v.Int)
	case UIntValue:
		return fmt.Sprintf("u%d", v.UInt)
	case BoolValue:
		return fmt.Sprintf("%t", v.Bool)
	case StringValue:
		return fmt.Sprintf("%q", v.Str)
	case BufferValue:
		return "0x" + hex.EncodeToString(v.Buffer)
	case PrincipalValue:
		if v.Principal.Contract != "" {
			return "'" + v.Principal.Issuer + "." + v.Principal.Contract
		}
		return "'" + v.Principal.Issuer
	default:
		return "<invalid>"
	}
}
