package analysis

import (
	"sort"

	"clarion/internal/ast"
	"clarion/internal/types"
)

// MapType is the schema of a persisted map: key and value tuple types.
type MapType struct {
	Key   types.TypeSignature
	Value types.TypeSignature
}

// TraitMethod is one required method of a defined trait, in declaration
// order.
type TraitMethod struct {
	Name      string
	Signature types.FunctionSignature
}

// TraitDefinition is a defined trait's ordered method list. Method order
// follows the declaration; compliance checking iterates it as declared.
type TraitDefinition struct {
	Methods []TraitMethod
}

// GetMethod returns the signature of a required method, if present.
func (t *TraitDefinition) GetMethod(name string) (types.FunctionSignature, bool) {
	for _, method := range t.Methods {
		if method.Name == name {
			return method.Signature, true
		}
	}
	return types.FunctionSignature{}, false
}

// ContractAnalysis accumulates everything one contract declares. It is
// created empty, mutated exclusively by the type checker's Add*
// operations during the AST walk, then read-only for both trait
// compliance passes. On success it is persisted to the analysis database
// for future cross-contract lookups; on failure it is discarded.
type ContractAnalysis struct {
	ContractID types.ContractIdentifier

	PrivateFunctions  map[string]*types.FunctionType
	PublicFunctions   map[string]*types.FunctionType
	ReadOnlyFunctions map[string]*types.FunctionType

	VariableTypes          map[string]types.TypeSignature
	PersistedVariableTypes map[string]types.TypeSignature
	MapTypes               map[string]MapType
	FungibleTokens         map[string]struct{}
	NonFungibleTokens      map[string]types.TypeSignature

	DefinedTraits     map[string]*TraitDefinition
	ReferencedTraits  map[string]types.TraitIdentifier
	ImplementedTraits map[types.TraitIdentifier]struct{}

	// Expressions is the top-level AST; TopLevelOrdering, when set by the
	// definition sorter, gives the dependency order the type checker must
	// walk them in.
	Expressions      []*ast.SymbolicExpression
	TopLevelOrdering []int

	TypeMap *TypeMap
}

func NewContractAnalysis(contractID types.ContractIdentifier, expressions []*ast.SymbolicExpression) *ContractAnalysis {
	return &ContractAnalysis{
		ContractID:             contractID,
		PrivateFunctions:       make(map[string]*types.FunctionType),
		PublicFunctions:        make(map[string]*types.FunctionType),
		ReadOnlyFunctions:      make(map[string]*types.FunctionType),
		VariableTypes:          make(map[string]types.TypeSignature),
		PersistedVariableTypes: make(map[string]types.TypeSignature),
		MapTypes:               make(map[string]MapType),
		FungibleTokens:         make(map[string]struct{}),
		NonFungibleTokens:      make(map[string]types.TypeSignature),
		DefinedTraits:          make(map[string]*TraitDefinition),
		ReferencedTraits:       make(map[string]types.TraitIdentifier),
		ImplementedTraits:      make(map[types.TraitIdentifier]struct{}),
		Expressions:            expressions,
	}
}

func (c *ContractAnalysis) AddPrivateFunction(name string, functionType *types.FunctionType) {
	c.PrivateFunctions[name] = functionType
}

func (c *ContractAnalysis) AddPublicFunction(name string, functionType *types.FunctionType) {
	c.PublicFunctions[name] = functionType
}

func (c *ContractAnalysis) AddReadOnlyFunction(name string, functionType *types.FunctionType) {
	c.ReadOnlyFunctions[name] = functionType
}

func (c *ContractAnalysis) AddVariableType(name string, variableType types.TypeSignature) {
	c.VariableTypes[name] = variableType
}

func (c *ContractAnalysis) AddPersistedVariableType(name string, variableType types.TypeSignature) {
	c.PersistedVariableTypes[name] = variableType
}

func (c *ContractAnalysis) AddMapType(name string, keyType, valueType types.TypeSignature) {
	c.MapTypes[name] = MapType{Key: keyType, Value: valueType}
}

func (c *ContractAnalysis) AddFungibleToken(name string) {
	c.FungibleTokens[name] = struct{}{}
}

func (c *ContractAnalysis) AddNonFungibleToken(name string, assetType types.TypeSignature) {
	c.NonFungibleTokens[name] = assetType
}

// AddDefinedTrait registers a trait definition. The name must be fresh
// within both the defined and referenced trait namespaces; a collision is
// rejected before any compliance check can observe the trait.
func (c *ContractAnalysis) AddDefinedTrait(name string, definition *TraitDefinition) *CheckError {
	if _, used := c.DefinedTraits[name]; used {
		return ErrNameAlreadyUsed(name)
	}
	if _, used := c.ReferencedTraits[name]; used {
		return ErrNameAlreadyUsed(name)
	}
	c.DefinedTraits[name] = definition
	return nil
}

// AddReferencedTrait registers an imported trait under a local alias,
// subject to the same uniqueness rule as AddDefinedTrait.
func (c *ContractAnalysis) AddReferencedTrait(alias string, identifier types.TraitIdentifier) *CheckError {
	if _, used := c.DefinedTraits[alias]; used {
		return ErrNameAlreadyUsed(alias)
	}
	if _, used := c.ReferencedTraits[alias]; used {
		return ErrNameAlreadyUsed(alias)
	}
	c.ReferencedTraits[alias] = identifier
	return nil
}

func (c *ContractAnalysis) AddImplementedTrait(identifier types.TraitIdentifier) {
	c.ImplementedTraits[identifier] = struct{}{}
}

func (c *ContractAnalysis) GetPublicFunctionType(name string) *types.FunctionType {
	return c.PublicFunctions[name]
}

func (c *ContractAnalysis) GetReadOnlyFunctionType(name string) *types.FunctionType {
	return c.ReadOnlyFunctions[name]
}

func (c *ContractAnalysis) GetPrivateFunction(name string) *types.FunctionType {
	return c.PrivateFunctions[name]
}

func (c *ContractAnalysis) GetMapType(name string) (MapType, bool) {
	mapType, ok := c.MapTypes[name]
	return mapType, ok
}

func (c *ContractAnalysis) GetVariableType(name string) (types.TypeSignature, bool) {
	variableType, ok := c.VariableTypes[name]
	return variableType, ok
}

func (c *ContractAnalysis) GetPersistedVariableType(name string) (types.TypeSignature, bool) {
	variableType, ok := c.PersistedVariableTypes[name]
	return variableType, ok
}

// GetNFTType returns the declared asset identifier type of a
// non-fungible token.
func (c *ContractAnalysis) GetNFTType(name string) (types.TypeSignature, bool) {
	assetType, ok := c.NonFungibleTokens[name]
	return assetType, ok
}

// FTExists reports whether a fungible token was declared. Fungible tokens
// carry no schema beyond existence.
func (c *ContractAnalysis) FTExists(name string) bool {
	_, ok := c.FungibleTokens[name]
	return ok
}

func (c *ContractAnalysis) GetDefinedTrait(name string) *TraitDefinition {
	return c.DefinedTraits[name]
}

// GetReferencedTrait resolves a local trait alias to its nominal identity.
// Locally defined traits resolve to this contract's own identity, so a
// contract can reference its own traits without importing them.
func (c *ContractAnalysis) GetReferencedTrait(alias string) (types.TraitIdentifier, bool) {
	if identifier, ok := c.ReferencedTraits[alias]; ok {
		return identifier, true
	}
	if _, ok := c.DefinedTraits[alias]; ok {
		return types.TraitIdentifier{Contract: c.ContractID, Name: alias}, true
	}
	return types.TraitIdentifier{}, false
}

// ImplementedTraitsSorted returns the implemented set in canonical order
// so error reporting is deterministic.
func (c *ContractAnalysis) ImplementedTraitsSorted() []types.TraitIdentifier {
	identifiers := make([]types.TraitIdentifier, 0, len(c.ImplementedTraits))
	for identifier := range c.ImplementedTraits {
		identifiers = append(identifiers, identifier)
	}
	sort.Slice(identifiers, func(i, j int) bool {
		return identifiers[i].String() < identifiers[j].String()
	})
	return identifiers
}

// CheckTraitCompliance is the record's structural first pass: every
// required method must at least exist as a public function. Signature
// shapes are compared later, by the post-type-check pass, once every
// function type is fully inferred.
func (c *ContractAnalysis) CheckTraitCompliance(identifier types.TraitIdentifier, definition *TraitDefinition) *CheckError {
	for _, method := range definition.Methods {
		if c.GetPublicFunctionType(method.Name) == nil {
			return ErrBadTraitImplementation(identifier.Name, method.Name)
		}
	}
	return nil
}

// ExpressionsInOrder iterates top-level expressions, honoring the
// definition sorter's ordering when one was computed.
func (c *ContractAnalysis) ExpressionsInOrder() []*ast.SymbolicExpression {
	if c.TopLevelOrdering == nil {
		return c.Expressions
	}
	ordered := make([]*ast.SymbolicExpression, 0, len(c.Expressions))
	for _, index := range c.TopLevelOrdering {
		ordered = append(ordered, c.Expressions[index])
	}
	return ordered
}
