package analysis

import (
	"clarion/internal/ast"
	"clarion/internal/types"
)

// TypeChecker performs the general type-check walk over a contract's
// top-level forms, populating the analysis record as it goes. It runs
// after the definition sorter and before both trait compliance passes:
// phase 1 against an incomplete function catalog is invalid input, so
// the pass pipeline in Run is the only supported ordering.
type TypeChecker struct {
	analysis *ContractAnalysis
	db       Database
	cost     *CostTracker
	typeMap  *TypeMap
}

// RunTypeChecker walks the contract's top-level forms in dependency
// order, leaving the record fully populated on success.
func RunTypeChecker(analysis *ContractAnalysis, db Database, cost *CostTracker) *CheckError {
	checker := &TypeChecker{
		analysis: analysis,
		db:       db,
		cost:     cost,
		typeMap:  NewTypeMap(),
	}
	analysis.TypeMap = checker.typeMap

	root := NewTypingContext()
	for _, expression := range analysis.ExpressionsInOrder() {
		if err := checker.checkTopLevel(expression, root); err != nil {
			return err.WithExpression(expression)
		}
	}
	return nil
}

func (tc *TypeChecker) checkTopLevel(expression *ast.SymbolicExpression, context *TypingContext) *CheckError {
	items, ok := expression.MatchList()
	if ok && len(items) > 0 {
		if head, isAtom := items[0].MatchAtom(); isAtom {
			switch head {
			case "define-public":
				return tc.checkDefineFunction(expression, items[1:], tc.analysis.AddPublicFunction, true)
			case "define-private":
				return tc.checkDefineFunction(expression, items[1:], tc.analysis.AddPrivateFunction, false)
			case "define-read-only":
				return tc.checkDefineFunction(expression, items[1:], tc.analysis.AddReadOnlyFunction, false)
			case "define-constant":
				return tc.checkDefineConstant(expression, items[1:], context)
			case "define-data-var":
				return tc.checkDefineDataVar(expression, items[1:], context)
			case "define-map":
				return tc.checkDefineMap(expression, items[1:])
			case "define-fungible-token":
				return tc.checkDefineFungibleToken(expression, items[1:], context)
			case "define-non-fungible-token":
				return tc.checkDefineNonFungibleToken(expression, items[1:])
			case "define-trait":
				return tc.checkDefineTrait(expression, items[1:])
			case "use-trait":
				return tc.checkUseTrait(expression, items[1:])
			case "impl-trait":
				return tc.checkImplTrait(expression, items[1:])
			}
		}
	}

	// Any other top-level form is an expression evaluated at deploy time.
	_, err := tc.typeCheckExpr(expression, context)
	return err
}

type addFunction func(name string, functionType *types.FunctionType)

func (tc *TypeChecker) checkDefineFunction(expression *ast.SymbolicExpression, args []*ast.SymbolicExpression, add addFunction, mustReturnResponse bool) *CheckError {
	if len(args) != 2 {
		return ErrIncorrectArgumentCount(2, len(args))
	}
	signature, ok := args[0].MatchList()
	if !ok || len(signature) == 0 {
		return ErrBadSyntax("expecting a function signature (name (arg type) ...)").WithExpression(args[0])
	}
	name, ok := signature[0].MatchAtom()
	if !ok {
		return ErrBadSyntax("expecting a function name").WithExpression(signature[0])
	}
	if tc.functionDefined(name) {
		return ErrNameAlreadyUsed(name).WithExpression(signature[0])
	}

	context := NewTypingContext()
	functionArgs := make([]types.FunctionArg, 0, len(signature)-1)
	for _, parameter := range signature[1:] {
		pair, ok := parameter.MatchList()
		if !ok || len(pair) != 2 {
			return ErrBadSyntax("expecting (arg-name arg-type) pairs").WithExpression(parameter)
		}
		argName, ok := pair[0].MatchAtom()
		if !ok {
			return ErrBadSyntax("expecting an argument name").WithExpression(pair[0])
		}
		argType, err := parseTypeAnnotation(pair[1])
		if err != nil {
			return err
		}
		size, sizeErr := argType.Size()
		if sizeErr != nil {
			return ErrValueTooLarge().WithExpression(pair[1])
		}
		if err := tc.cost.Charge(AnalysisBindName, size); err != nil {
			return err
		}
		if argType.Kind == types.TraitReferenceType {
			if _, resolved := tc.analysis.GetReferencedTrait(argType.TraitAlias); !resolved {
				return ErrTraitReferenceUnknown(argType.TraitAlias).WithExpression(pair[1])
			}
			context.BindTraitReference(argName, argType.TraitAlias)
		} else {
			context.BindVariable(argName, argType)
		}
		functionArgs = append(functionArgs, types.FunctionArg{Name: argName, Signature: argType})
	}

	returnType, err := tc.typeCheckExpr(args[1], context)
	if err != nil {
		return err
	}
	if mustReturnResponse && returnType.Kind != types.ResponseType {
		return ErrPublicFunctionMustReturnResponse(returnType).WithExpression(args[1])
	}

	add(name, types.Fixed(functionArgs, returnType))
	return nil
}

func (tc *TypeChecker) functionDefined(name string) bool {
	return tc.analysis.GetPublicFunctionType(name) != nil ||
		tc.analysis.GetReadOnlyFunctionType(name) != nil ||
		tc.analysis.GetPrivateFunction(name) != nil
}

func (tc *TypeChecker) checkDefineConstant(expression *ast.SymbolicExpression, args []*ast.SymbolicExpression, context *TypingContext) *CheckError {
	if len(args) != 2 {
		return ErrIncorrectArgumentCount(2, len(args))
	}
	name, ok := args[0].MatchAtom()
	if !ok {
		return ErrBadSyntax("expecting a constant name").WithExpression(args[0])
	}
	if _, defined := tc.analysis.GetVariableType(name); defined {
		return ErrNameAlreadyUsed(name).WithExpression(args[0])
	}
	valueType, err := tc.typeCheckExpr(args[1], context)
	if err != nil {
		return err
	}
	tc.analysis.AddVariableType(name, valueType)
	context.BindVariable(name, valueType)
	return nil
}

func (tc *TypeChecker) checkDefineDataVar(expression *ast.SymbolicExpression, args []*ast.SymbolicExpression, context *TypingContext) *CheckError {
	if len(args) != 3 {
		return ErrIncorrectArgumentCount(3, len(args))
	}
	name, ok := args[0].MatchAtom()
	if !ok {
		return ErrBadSyntax("expecting a variable name").WithExpression(args[0])
	}
	if _, defined := tc.analysis.GetPersistedVariableType(name); defined {
		return ErrNameAlreadyUsed(name).WithExpression(args[0])
	}
	variableType, err := parseTypeAnnotation(args[1])
	if err != nil {
		return err
	}
	if variableType.ContainsTraitReference() {
		return ErrTraitReferenceNotAllowed().WithExpression(args[1])
	}
	if err := tc.chargeTypeCheck(variableType, args[1]); err != nil {
		return err
	}
	if err := tc.typeCheckExpects(args[2], context, variableType); err != nil {
		return err
	}
	tc.analysis.AddPersistedVariableType(name, variableType)
	return nil
}

func (tc *TypeChecker) checkDefineMap(expression *ast.SymbolicExpression, args []*ast.SymbolicExpression) *CheckError {
	if len(args) != 3 {
		return ErrIncorrectArgumentCount(3, len(args))
	}
	name, ok := args[0].MatchAtom()
	if !ok {
		return ErrBadSyntax("expecting a map name").WithExpression(args[0])
	}
	if _, defined := tc.analysis.GetMapType(name); defined {
		return ErrNameAlreadyUsed(name).WithExpression(args[0])
	}

	schemas := make([]types.TypeSignature, 0, 2)
	for _, schemaExpr := range args[1:] {
		pairs, ok := schemaExpr.MatchList()
		if !ok {
			return ErrBadSyntax("expecting a map schema ((name type) ...)").WithExpression(schemaExpr)
		}
		fields, err := parseTupleFields(pairs)
		if err != nil {
			return err.WithExpression(schemaExpr)
		}
		schema := types.Tuple(fields)
		if schema.ContainsTraitReference() {
			return ErrTraitReferenceNotAllowed().WithExpression(schemaExpr)
		}
		if err := tc.chargeTypeCheck(schema, schemaExpr); err != nil {
			return err
		}
		schemas = append(schemas, schema)
	}

	tc.analysis.AddMapType(name, schemas[0], schemas[1])
	return nil
}

func (tc *TypeChecker) checkDefineFungibleToken(expression *ast.SymbolicExpression, args []*ast.SymbolicExpression, context *TypingContext) *CheckError {
	if len(args) != 1 && len(args) != 2 {
		return ErrIncorrectArgumentCount(1, len(args))
	}
	name, ok := args[0].MatchAtom()
	if !ok {
		return ErrBadTokenName().WithExpression(args[0])
	}
	if tc.analysis.FTExists(name) {
		return ErrNameAlreadyUsed(name).WithExpression(args[0])
	}
	if len(args) == 2 {
		// Optional total supply.
		if err := tc.typeCheckExpects(args[1], context, types.UInt()); err != nil {
			return err
		}
	}
	tc.analysis.AddFungibleToken(name)
	return nil
}

func (tc *TypeChecker) checkDefineNonFungibleToken(expression *ast.SymbolicExpression, args []*ast.SymbolicExpression) *CheckError {
	if len(args) != 2 {
		return ErrIncorrectArgumentCount(2, len(args))
	}
	name, ok := args[0].MatchAtom()
	if !ok {
		return ErrBadTokenName().WithExpression(args[0])
	}
	if _, defined := tc.analysis.GetNFTType(name); defined {
		return ErrNameAlreadyUsed(name).WithExpression(args[0])
	}
	assetType, err := parseTypeAnnotation(args[1])
	if err != nil {
		return err
	}
	if assetType.ContainsTraitReference() {
		return ErrTraitReferenceNotAllowed().WithExpression(args[1])
	}
	if err := tc.chargeTypeCheck(assetType, args[1]); err != nil {
		return err
	}
	tc.analysis.AddNonFungibleToken(name, assetType)
	return nil
}

func (tc *TypeChecker) checkDefineTrait(expression *ast.SymbolicExpression, args []*ast.SymbolicExpression) *CheckError {
	if len(args) != 2 {
		return ErrIncorrectArgumentCount(2, len(args))
	}
	name, ok := args[0].MatchAtom()
	if !ok {
		return ErrBadSyntax("expecting a trait name").WithExpression(args[0])
	}
	methodExprs, ok := args[1].MatchList()
	if !ok {
		return ErrBadSyntax("expecting a list of method signatures").WithExpression(args[1])
	}

	definition := &TraitDefinition{}
	seen := make(map[string]struct{}, len(methodExprs))
	for _, methodExpr := range methodExprs {
		items, ok := methodExpr.MatchList()
		if !ok || len(items) != 3 {
			return ErrBadSyntax("expecting (method-name (arg-types ...) return-type)").WithExpression(methodExpr)
		}
		methodName, ok := items[0].MatchAtom()
		if !ok {
			return ErrBadSyntax("expecting a method name").WithExpression(items[0])
		}
		if _, dup := seen[methodName]; dup {
			return ErrNameAlreadyUsed(methodName).WithExpression(items[0])
		}
		seen[methodName] = struct{}{}

		argExprs, ok := items[1].MatchList()
		if !ok {
			return ErrBadSyntax("expecting a list of argument types").WithExpression(items[1])
		}
		signature := types.FunctionSignature{}
		for _, argExpr := range argExprs {
			argType, err := parseTypeAnnotation(argExpr)
			if err != nil {
				return err
			}
			size, sizeErr := argType.Size()
			if sizeErr != nil {
				return ErrValueTooLarge().WithExpression(argExpr)
			}
			if err := tc.cost.Charge(AnalysisTypeAnnotate, size); err != nil {
				return err
			}
			signature.Args = append(signature.Args, argType)
		}
		returnType, err := parseTypeAnnotation(items[2])
		if err != nil {
			return err
		}
		signature.Returns = returnType
		definition.Methods = append(definition.Methods, TraitMethod{Name: methodName, Signature: signature})
	}

	if err := tc.analysis.AddDefinedTrait(name, definition); err != nil {
		return err.WithExpression(args[0])
	}

	selfID := types.TraitIdentifier{Contract: tc.analysis.ContractID, Name: name}
	return tc.checkTraitAcyclic(selfID, definition)
}

func (tc *TypeChecker) checkUseTrait(expression *ast.SymbolicExpression, args []*ast.SymbolicExpression) *CheckError {
	if len(args) != 2 {
		return ErrIncorrectArgumentCount(2, len(args))
	}
	alias, ok := args[0].MatchAtom()
	if !ok {
		return ErrBadSyntax("expecting a trait alias").WithExpression(args[0])
	}
	identifier, err := tc.resolveTraitField(args[1])
	if err != nil {
		return err
	}
	if err := tc.analysis.AddReferencedTrait(alias, identifier); err != nil {
		return err.WithExpression(args[0])
	}
	return nil
}

func (tc *TypeChecker) checkImplTrait(expression *ast.SymbolicExpression, args []*ast.SymbolicExpression) *CheckError {
	if len(args) != 1 {
		return ErrIncorrectArgumentCount(1, len(args))
	}
	identifier, err := tc.resolveTraitField(args[0])
	if err != nil {
		return err
	}
	tc.analysis.AddImplementedTrait(identifier)
	return nil
}

// resolveTraitField qualifies a field reference with this contract's
// issuer when the sugared form left the issuer off.
func (tc *TypeChecker) resolveTraitField(expression *ast.SymbolicExpression) (types.TraitIdentifier, *CheckError) {
	field, ok := expression.MatchField()
	if !ok {
		return types.TraitIdentifier{}, ErrBadSyntax("expecting a trait field reference").WithExpression(expression)
	}
	issuer := field.Issuer
	if issuer == "" {
		issuer = tc.analysis.ContractID.Issuer
	}
	return types.TraitIdentifier{
		Contract: types.ContractIdentifier{Issuer: issuer, Name: field.Contract},
		Name:     field.Trait,
	}, nil
}

// checkTraitAcyclic walks the trait reference graph reachable from a
// newly defined trait, following aliases through each defining contract's
// own namespace. Identities on the current walk path mean a cycle; a
// cycle would make identity comparison of trait-typed parameters
// non-terminating, so it is rejected at definition time.
func (tc *TypeChecker) checkTraitAcyclic(selfID types.TraitIdentifier, definition *TraitDefinition) *CheckError {
	done := make(map[types.TraitIdentifier]struct{})
	inPath := map[types.TraitIdentifier]struct{}{selfID: {}}
	return tc.walkTraitReferences(tc.analysis, selfID, definition, inPath, done)
}

func (tc *TypeChecker) walkTraitReferences(owner *ContractAnalysis, currentID types.TraitIdentifier, definition *TraitDefinition, inPath, done map[types.TraitIdentifier]struct{}) *CheckError {
	for _, method := range definition.Methods {
		for _, argType := range method.Signature.Args {
			for _, alias := range traitAliases(argType) {
				identifier, resolved := owner.GetReferencedTrait(alias)
				if !resolved {
					return ErrTraitReferenceUnknown(alias)
				}
				if _, looping := inPath[identifier]; looping {
					return ErrCircularReference(currentID.Name + ", " + identifier.Name)
				}
				if _, checked := done[identifier]; checked {
					continue
				}

				next, nextOwner, err := tc.loadTraitDefinition(identifier)
				if err != nil {
					return err
				}
				inPath[identifier] = struct{}{}
				if err := tc.walkTraitReferences(nextOwner, identifier, next, inPath, done); err != nil {
					return err
				}
				delete(inPath, identifier)
				done[identifier] = struct{}{}
			}
		}
	}
	return nil
}

// loadTraitDefinition resolves a trait identity to its definition, either
// locally or through the analysis database.
func (tc *TypeChecker) loadTraitDefinition(identifier types.TraitIdentifier) (*TraitDefinition, *ContractAnalysis, *CheckError) {
	if identifier.Contract == tc.analysis.ContractID {
		if definition := tc.analysis.GetDefinedTrait(identifier.Name); definition != nil {
			return definition, tc.analysis, nil
		}
		return nil, nil, ErrTraitReferenceUnknown(identifier.Name)
	}
	remote := tc.db.LoadContract(identifier.Contract)
	if remote == nil {
		return nil, nil, ErrNoSuchContract(identifier.Contract)
	}
	definition := remote.GetDefinedTrait(identifier.Name)
	if definition == nil {
		return nil, nil, ErrTraitReferenceUnknown(identifier.Name)
	}
	return definition, remote, nil
}

// traitAliases collects every trait reference alias nested in a type.
func traitAliases(signature types.TypeSignature) []string {
	switch signature.Kind {
	case types.TraitReferenceType:
		return []string{signature.TraitAlias}
	case types.OptionalType, types.ListType:
		return traitAliases(*signature.Inner)
	case types.ResponseType:
		return append(traitAliases(*signature.OkType), traitAliases(*signature.ErrType)...)
	case types.TupleType:
		var aliases []string
		for _, field := range signature.Fields {
			aliases = append(aliases, traitAliases(field.Type)...)
		}
		return aliases
	default:
		return nil
	}
}

// typeCheckExpr infers the type of an expression, records it in the type
// map, and meters the visit.
func (tc *TypeChecker) typeCheckExpr(expression *ast.SymbolicExpression, context *TypingContext) (types.TypeSignature, *CheckError) {
	if err := tc.cost.Charge(AnalysisVisit, 1); err != nil {
		return types.TypeSignature{}, err
	}

	var inferred types.TypeSignature
	var err *CheckError

	switch expression.Kind {
	case ast.LiteralExpr:
		inferred = typeOfValue(expression.Value)

	case ast.AtomExpr:
		inferred, err = tc.lookupVariable(expression.Atom, context)
		if err != nil {
			return types.TypeSignature{}, err.WithExpression(expression)
		}

	case ast.TraitRefExpr:
		if _, resolved := tc.analysis.GetReferencedTrait(expression.Trait); !resolved {
			return types.TypeSignature{}, ErrTraitReferenceUnknown(expression.Trait).WithExpression(expression)
		}
		inferred = types.TraitReference(expression.Trait)

	case ast.FieldExpr:
		// A bare field reference denotes the contract principal.
		inferred = types.Principal()

	case ast.ListExpr:
		inferred, err = tc.typeCheckApplication(expression, context)
		if err != nil {
			return types.TypeSignature{}, err.WithExpression(expression)
		}

	default:
		return types.TypeSignature{}, ErrBadSyntax("unexpected expression").WithExpression(expression)
	}

	if err := tc.typeMap.SetType(expression, inferred); err != nil {
		return types.TypeSignature{}, err
	}
	return inferred, nil
}

func (tc *TypeChecker) lookupVariable(name string, context *TypingContext) (types.TypeSignature, *CheckError) {
	if signature, ok := context.LookupVariable(name); ok {
		return signature, nil
	}
	if signature, ok := tc.analysis.GetVariableType(name); ok {
		return signature, nil
	}
	return types.TypeSignature{}, ErrUndefinedVariable(name)
}

func (tc *TypeChecker) typeCheckApplication(expression *ast.SymbolicExpression, context *TypingContext) (types.TypeSignature, *CheckError) {
	items := expression.List
	if len(items) == 0 {
		return types.TypeSignature{}, ErrBadSyntax("expecting a function application")
	}
	name, ok := items[0].MatchAtom()
	if !ok {
		return types.TypeSignature{}, ErrBadSyntax("expecting a function name")
	}
	args := items[1:]

	if native, ok := nativeFunctions[name]; ok {
		if native.check != nil {
			return native.check(tc, expression, args, context)
		}
		return tc.checkFunctionApplication(native.functionType, args, context)
	}

	// User functions defined earlier in the dependency order are callable
	// from any body.
	if functionType := tc.userFunction(name); functionType != nil {
		return tc.checkFunctionApplication(functionType, args, context)
	}

	return types.TypeSignature{}, ErrUndefinedFunction(name)
}

func (tc *TypeChecker) userFunction(name string) *types.FunctionType {
	if functionType := tc.analysis.GetPrivateFunction(name); functionType != nil {
		return functionType
	}
	if functionType := tc.analysis.GetPublicFunctionType(name); functionType != nil {
		return functionType
	}
	return tc.analysis.GetReadOnlyFunctionType(name)
}

// checkFunctionApplication checks an argument list against a function
// type, one branch per callable shape.
func (tc *TypeChecker) checkFunctionApplication(functionType *types.FunctionType, args []*ast.SymbolicExpression, context *TypingContext) (types.TypeSignature, *CheckError) {
	switch functionType.Kind {
	case types.FixedFunction:
		if err := checkArgumentCount(len(functionType.Args), args); err != nil {
			return types.TypeSignature{}, err
		}
		for i, arg := range functionType.Args {
			if err := tc.typeCheckExpects(args[i], context, arg.Signature); err != nil {
				return types.TypeSignature{}, err
			}
		}
		return functionType.Returns, nil

	case types.VariadicFunction:
		for _, arg := range args {
			if err := tc.typeCheckExpects(arg, context, functionType.Input); err != nil {
				return types.TypeSignature{}, err
			}
		}
		return functionType.Returns, nil

	case types.UnionArgsFunction:
		if err := checkArgumentCount(1, args); err != nil {
			return types.TypeSignature{}, err
		}
		actual, err := tc.typeCheckExpr(args[0], context)
		if err != nil {
			return types.TypeSignature{}, err
		}
		for _, member := range functionType.Union {
			if member.Admits(actual) {
				return functionType.Returns, nil
			}
		}
		return types.TypeSignature{}, ErrTypeMismatch(functionType.Union[0], actual)

	case types.ArithmeticVariadic:
		if len(args) < 1 {
			return types.TypeSignature{}, ErrIncorrectArgumentCount(1, len(args))
		}
		return tc.checkArithmetic(args, context)

	case types.ArithmeticBinary:
		if err := checkArgumentCount(2, args); err != nil {
			return types.TypeSignature{}, err
		}
		if _, err := tc.checkArithmetic(args, context); err != nil {
			return types.TypeSignature{}, err
		}
		return types.Bool(), nil

	default:
		return types.TypeSignature{}, ErrBadSyntax("unknown function shape")
	}
}

// checkArithmetic requires every argument to share the integer type of
// the first and returns it.
func (tc *TypeChecker) checkArithmetic(args []*ast.SymbolicExpression, context *TypingContext) (types.TypeSignature, *CheckError) {
	first, err := tc.typeCheckExpr(args[0], context)
	if err != nil {
		return types.TypeSignature{}, err
	}
	if first.Kind != types.IntType && first.Kind != types.UIntType {
		return types.TypeSignature{}, ErrTypeMismatch(types.Int(), first)
	}
	for _, arg := range args[1:] {
		if err := tc.typeCheckExpects(arg, context, first); err != nil {
			return types.TypeSignature{}, err
		}
	}
	return first, nil
}

// typeCheckExpects infers an expression's type and requires the expected
// type to admit it. Trait references escape structural admission: both
// sides resolve through this contract's trait namespace and must reach
// the same nominal identity.
func (tc *TypeChecker) typeCheckExpects(expression *ast.SymbolicExpression, context *TypingContext, expected types.TypeSignature) *CheckError {
	actual, err := tc.typeCheckExpr(expression, context)
	if err != nil {
		return err
	}

	if expected.Kind == types.TraitReferenceType && actual.Kind == types.TraitReferenceType {
		expectedID, ok := tc.analysis.GetReferencedTrait(expected.TraitAlias)
		if !ok {
			return ErrTraitReferenceUnknown(expected.TraitAlias).WithExpression(expression)
		}
		actualID, ok := tc.analysis.GetReferencedTrait(actual.TraitAlias)
		if !ok {
			return ErrTraitReferenceUnknown(actual.TraitAlias).WithExpression(expression)
		}
		if expectedID != actualID {
			return ErrTypeMismatch(expected, actual).WithExpression(expression)
		}
		return nil
	}

	if !expected.Admits(actual) {
		return ErrTypeMismatch(expected, actual).WithExpression(expression)
	}
	return nil
}

func (tc *TypeChecker) chargeTypeCheck(signature types.TypeSignature, expression *ast.SymbolicExpression) *CheckError {
	size, err := signature.Size()
	if err != nil {
		return ErrValueTooLarge().WithExpression(expression)
	}
	return tc.cost.Charge(AnalysisTypeCheck, size)
}

// checkArgumentCount is the shared arity guard of every native handler.
func checkArgumentCount(expected int, args []*ast.SymbolicExpression) *CheckError {
	if len(args) != expected {
		return ErrIncorrectArgumentCount(expected, len(args))
	}
	return nil
}

func typeOfValue(value *ast.Value) types.TypeSignature {
	switch value.Kind {
	case ast.IntValue:
		return types.Int()
	case ast.UIntValue:
		return types.UInt()
	case ast.BoolValue:
		return types.Bool()
	case ast.StringValue:
		return types.Buffer(uint32(len(value.Str)))
	case ast.BufferValue:
		return types.Buffer(uint32(len(value.Buffer)))
	case ast.PrincipalValue:
		return types.Principal()
	default:
		return types.None()
	}
}
