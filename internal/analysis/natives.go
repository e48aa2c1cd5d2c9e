package analysis

import (
	"clarion/internal/ast"
	"clarion/internal/types"
)

// specialCheck is a native handler that needs more than a function type:
// special forms, storage primitives, and the asset/token checkers.
type specialCheck func(tc *TypeChecker, expression *ast.SymbolicExpression, args []*ast.SymbolicExpression, context *TypingContext) (types.TypeSignature, *CheckError)

type nativeFunction struct {
	functionType *types.FunctionType
	check        specialCheck
}

func typed(functionType *types.FunctionType) nativeFunction {
	return nativeFunction{functionType: functionType}
}

func special(check specialCheck) nativeFunction {
	return nativeFunction{check: check}
}

// nativeFunctions is the callable surface of the language. Entries with a
// function type are checked generically per shape; the rest carry their
// own handler. Populated in init: the handlers recurse into the type
// checker, which dispatches through this table, so a literal initializer
// would form an initialization cycle.
var nativeFunctions map[string]nativeFunction

func init() {
	nativeFunctions = map[string]nativeFunction{
		// Arithmetic and comparison primitives are the only users of the
		// two built-in arithmetic shapes.
		"+":  typed(&types.FunctionType{Kind: types.ArithmeticVariadic}),
		"-":  typed(&types.FunctionType{Kind: types.ArithmeticVariadic}),
		"*":  typed(&types.FunctionType{Kind: types.ArithmeticVariadic}),
		"/":  typed(&types.FunctionType{Kind: types.ArithmeticVariadic}),
		">":  typed(&types.FunctionType{Kind: types.ArithmeticBinary}),
		"<":  typed(&types.FunctionType{Kind: types.ArithmeticBinary}),
		">=": typed(&types.FunctionType{Kind: types.ArithmeticBinary}),
		"<=": typed(&types.FunctionType{Kind: types.ArithmeticBinary}),

		"not": typed(types.Fixed(
			[]types.FunctionArg{{Name: "value", Signature: types.Bool()}}, types.Bool())),
		"and": typed(types.Variadic(types.Bool(), types.Bool())),
		"or":  typed(types.Variadic(types.Bool(), types.Bool())),

		"to-uint": typed(types.Fixed(
			[]types.FunctionArg{{Name: "value", Signature: types.Int()}}, types.UInt())),
		"to-int": typed(types.Fixed(
			[]types.FunctionArg{{Name: "value", Signature: types.UInt()}}, types.Int())),

		"sha256": typed(types.UnionArgs(
			[]types.TypeSignature{types.Buffer(65536), types.Int(), types.UInt()}, types.Buffer(32))),
		"hash160": typed(types.UnionArgs(
			[]types.TypeSignature{types.Buffer(65536), types.Int(), types.UInt()}, types.Buffer(20))),

		"ok":    special(checkSpecialOk),
		"err":   special(checkSpecialErr),
		"some":  special(checkSpecialSome),
		"begin": special(checkSpecialBegin),
		"if":    special(checkSpecialIf),
		"let":   special(checkSpecialLet),
		"print": special(checkSpecialPrint),
		"is-eq": special(checkSpecialIsEq),

		"var-get": special(checkSpecialVarGet),
		"var-set": special(checkSpecialVarSet),

		"contract-call?": special(checkSpecialContractCall),

		// Asset/token primitives (natives_assets.go)
		"nft-get-owner?": special(checkSpecialGetOwner),
		"ft-get-balance": special(checkSpecialGetBalance),
		"nft-mint?":      special(checkSpecialMintAsset),
		"ft-mint?":       special(checkSpecialMintToken),
		"nft-transfer?":  special(checkSpecialTransferAsset),
		"ft-transfer?":   special(checkSpecialTransferToken),
	}
}

// NativeFunctionNames lists the callable natives, for completion surfaces.
func NativeFunctionNames() []string {
	names := make([]string, 0, len(nativeFunctions))
	for name := range nativeFunctions {
		names = append(names, name)
	}
	return names
}

func checkSpecialOk(tc *TypeChecker, expression *ast.SymbolicExpression, args []*ast.SymbolicExpression, context *TypingContext) (types.TypeSignature, *CheckError) {
	if err := checkArgumentCount(1, args); err != nil {
		return types.TypeSignature{}, err
	}
	inner, err := tc.typeCheckExpr(args[0], context)
	if err != nil {
		return types.TypeSignature{}, err
	}
	return types.Response(inner, types.None()), nil
}

func checkSpecialErr(tc *TypeChecker, expression *ast.SymbolicExpression, args []*ast.SymbolicExpression, context *TypingContext) (types.TypeSignature, *CheckError) {
	if err := checkArgumentCount(1, args); err != nil {
		return types.TypeSignature{}, err
	}
	inner, err := tc.typeCheckExpr(args[0], context)
	if err != nil {
		return types.TypeSignature{}, err
	}
	return types.Response(types.None(), inner), nil
}

func checkSpecialSome(tc *TypeChecker, expression *ast.SymbolicExpression, args []*ast.SymbolicExpression, context *TypingContext) (types.TypeSignature, *CheckError) {
	if err := checkArgumentCount(1, args); err != nil {
		return types.TypeSignature{}, err
	}
	inner, err := tc.typeCheckExpr(args[0], context)
	if err != nil {
		return types.TypeSignature{}, err
	}
	return types.Optional(inner), nil
}

func checkSpecialBegin(tc *TypeChecker, expression *ast.SymbolicExpression, args []*ast.SymbolicExpression, context *TypingContext) (types.TypeSignature, *CheckError) {
	if len(args) < 1 {
		return types.TypeSignature{}, ErrIncorrectArgumentCount(1, len(args))
	}
	var last types.TypeSignature
	for _, arg := range args {
		inferred, err := tc.typeCheckExpr(arg, context)
		if err != nil {
			return types.TypeSignature{}, err
		}
		last = inferred
	}
	return last, nil
}

func checkSpecialIf(tc *TypeChecker, expression *ast.SymbolicExpression, args []*ast.SymbolicExpression, context *TypingContext) (types.TypeSignature, *CheckError) {
	if err := checkArgumentCount(3, args); err != nil {
		return types.TypeSignature{}, err
	}
	if err := tc.typeCheckExpects(args[0], context, types.Bool()); err != nil {
		return types.TypeSignature{}, err
	}
	thenType, err := tc.typeCheckExpr(args[1], context)
	if err != nil {
		return types.TypeSignature{}, err
	}
	elseType, err := tc.typeCheckExpr(args[2], context)
	if err != nil {
		return types.TypeSignature{}, err
	}
	// The result is the wider of the two admissible branch types.
	if thenType.Admits(elseType) {
		return thenType, nil
	}
	if elseType.Admits(thenType) {
		return elseType, nil
	}
	return types.TypeSignature{}, ErrTypeMismatch(thenType, elseType)
}

func checkSpecialLet(tc *TypeChecker, expression *ast.SymbolicExpression, args []*ast.SymbolicExpression, context *TypingContext) (types.TypeSignature, *CheckError) {
	if len(args) < 2 {
		return types.TypeSignature{}, ErrIncorrectArgumentCount(2, len(args))
	}
	bindings, ok := args[0].MatchList()
	if !ok {
		return types.TypeSignature{}, ErrBadSyntax("expecting a list of let bindings").WithExpression(args[0])
	}

	inner := context.Extend()
	for _, binding := range bindings {
		pair, ok := binding.MatchList()
		if !ok || len(pair) != 2 {
			return types.TypeSignature{}, ErrBadSyntax("expecting (name value) binding pairs").WithExpression(binding)
		}
		name, ok := pair[0].MatchAtom()
		if !ok {
			return types.TypeSignature{}, ErrBadSyntax("expecting a binding name").WithExpression(pair[0])
		}
		valueType, err := tc.typeCheckExpr(pair[1], inner)
		if err != nil {
			return types.TypeSignature{}, err
		}
		size, sizeErr := valueType.Size()
		if sizeErr != nil {
			return types.TypeSignature{}, ErrValueTooLarge().WithExpression(pair[1])
		}
		if err := tc.cost.Charge(AnalysisBindName, size); err != nil {
			return types.TypeSignature{}, err
		}
		inner.BindVariable(name, valueType)
	}

	var last types.TypeSignature
	for _, body := range args[1:] {
		inferred, err := tc.typeCheckExpr(body, inner)
		if err != nil {
			return types.TypeSignature{}, err
		}
		last = inferred
	}
	return last, nil
}

func checkSpecialPrint(tc *TypeChecker, expression *ast.SymbolicExpression, args []*ast.SymbolicExpression, context *TypingContext) (types.TypeSignature, *CheckError) {
	if err := checkArgumentCount(1, args); err != nil {
		return types.TypeSignature{}, err
	}
	return tc.typeCheckExpr(args[0], context)
}

func checkSpecialIsEq(tc *TypeChecker, expression *ast.SymbolicExpression, args []*ast.SymbolicExpression, context *TypingContext) (types.TypeSignature, *CheckError) {
	if len(args) < 1 {
		return types.TypeSignature{}, ErrIncorrectArgumentCount(1, len(args))
	}
	first, err := tc.typeCheckExpr(args[0], context)
	if err != nil {
		return types.TypeSignature{}, err
	}
	for _, arg := range args[1:] {
		if err := tc.typeCheckExpects(arg, context, first); err != nil {
			return types.TypeSignature{}, err
		}
	}
	return types.Bool(), nil
}

func checkSpecialVarGet(tc *TypeChecker, expression *ast.SymbolicExpression, args []*ast.SymbolicExpression, context *TypingContext) (types.TypeSignature, *CheckError) {
	if err := checkArgumentCount(1, args); err != nil {
		return types.TypeSignature{}, err
	}
	name, ok := args[0].MatchAtom()
	if !ok {
		return types.TypeSignature{}, ErrBadSyntax("expecting a data variable name").WithExpression(args[0])
	}
	variableType, ok := tc.analysis.GetPersistedVariableType(name)
	if !ok {
		return types.TypeSignature{}, ErrUndefinedVariable(name).WithExpression(args[0])
	}
	if err := tc.chargeTypeCheck(variableType, args[0]); err != nil {
		return types.TypeSignature{}, err
	}
	return variableType, nil
}

func checkSpecialVarSet(tc *TypeChecker, expression *ast.SymbolicExpression, args []*ast.SymbolicExpression, context *TypingContext) (types.TypeSignature, *CheckError) {
	if err := checkArgumentCount(2, args); err != nil {
		return types.TypeSignature{}, err
	}
	name, ok := args[0].MatchAtom()
	if !ok {
		return types.TypeSignature{}, ErrBadSyntax("expecting a data variable name").WithExpression(args[0])
	}
	variableType, ok := tc.analysis.GetPersistedVariableType(name)
	if !ok {
		return types.TypeSignature{}, ErrUndefinedVariable(name).WithExpression(args[0])
	}
	if err := tc.chargeTypeCheck(variableType, args[0]); err != nil {
		return types.TypeSignature{}, err
	}
	if err := tc.typeCheckExpects(args[1], context, variableType); err != nil {
		return types.TypeSignature{}, err
	}
	return types.Bool(), nil
}

// checkSpecialContractCall checks dynamic dispatch through a trait-typed
// parameter: (contract-call? trait-var method-name args ...). The method
// is resolved in the trait's defining contract, so the call site is
// checked against the nominal trait, not a structural lookalike.
func checkSpecialContractCall(tc *TypeChecker, expression *ast.SymbolicExpression, args []*ast.SymbolicExpression, context *TypingContext) (types.TypeSignature, *CheckError) {
	if len(args) < 2 {
		return types.TypeSignature{}, ErrIncorrectArgumentCount(2, len(args))
	}

	calleeType, err := tc.typeCheckExpr(args[0], context)
	if err != nil {
		return types.TypeSignature{}, err
	}
	if calleeType.Kind != types.TraitReferenceType {
		return types.TypeSignature{}, ErrTypeMismatch(types.TraitReference("trait"), calleeType).WithExpression(args[0])
	}
	identifier, ok := tc.analysis.GetReferencedTrait(calleeType.TraitAlias)
	if !ok {
		return types.TypeSignature{}, ErrTraitReferenceUnknown(calleeType.TraitAlias).WithExpression(args[0])
	}
	definition, _, loadErr := tc.loadTraitDefinition(identifier)
	if loadErr != nil {
		return types.TypeSignature{}, loadErr.WithExpression(args[0])
	}

	methodName, ok := args[1].MatchAtom()
	if !ok {
		return types.TypeSignature{}, ErrBadSyntax("expecting a method name").WithExpression(args[1])
	}
	signature, ok := definition.GetMethod(methodName)
	if !ok {
		return types.TypeSignature{}, ErrUndefinedFunction(methodName).WithExpression(args[1])
	}

	methodArgs := args[2:]
	if err := checkArgumentCount(len(signature.Args), methodArgs); err != nil {
		return types.TypeSignature{}, err
	}
	for i, expected := range signature.Args {
		if err := tc.typeCheckExpects(methodArgs[i], context, expected); err != nil {
			return types.TypeSignature{}, err
		}
	}
	return signature.Returns, nil
}
