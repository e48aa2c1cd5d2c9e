package types

import (
	"fmt"
	"strings"
)

// TransientIssuer identifies contracts analyzed outside any deployment,
// e.g. from the CLI or a test fixture. All sugared contract references
// resolve against the issuer of the contract being analyzed.
const TransientIssuer = "S1G2081040G2081040G2081040G208105NK8PE5"

// ContractIdentifier is the fully qualified identity of a contract:
// the issuing principal plus the contract name.
type ContractIdentifier struct {
	Issuer string
	Name   string
}

// LocalContract qualifies a bare contract name with the transient issuer.
func LocalContract(name string) ContractIdentifier {
	return ContractIdentifier{Issuer: TransientIssuer, Name: name}
}

// ParseContractIdentifier parses "ISSUER.contract-name".
func ParseContractIdentifier(literal string) (ContractIdentifier, error) {
	parts := strings.Split(literal, ".")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return ContractIdentifier{}, fmt.Errorf("invalid contract identifier %q", literal)
	}
	return ContractIdentifier{Issuer: parts[0], Name: parts[1]}, nil
}

func (c ContractIdentifier) String() string {
	return c.Issuer + "." + c.Name
}

// TraitIdentifier is the nominal identity of a trait: the contract that
// defines it plus the trait name. Two traits with identical method sets
// but different identifiers are never interchangeable.
type TraitIdentifier struct {
	Contract ContractIdentifier
	Name     string
}

func (t TraitIdentifier) String() string {
	return t.Contract.String() + "." + t.Name
}
