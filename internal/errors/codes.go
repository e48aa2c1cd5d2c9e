package errors

// Error codes for the Clarion toolchain.
// These codes are used in diagnostics and documentation to provide
// consistent error identification across the CLI and the language server.
//
// Error code ranges:
// E0100-E0199: Parser errors
// E0200-E0299: Type system errors
// E0300-E0399: Name resolution errors
// E0400-E0499: Trait errors
// E0500-E0599: Asset/token errors
// E0600-E0699: Resource errors

const (
	// E0100: Syntax errors surfaced by the parser
	ErrorSyntax = "E0100"

	// E0101: Expression ID space exhausted
	ErrorTooManyExpressions = "E0101"

	// E0200: Expected vs. actual type mismatch
	ErrorTypeMismatch = "E0200"

	// E0201: Wrong number of arguments to a function or native
	ErrorIncorrectArgumentCount = "E0201"

	// E0202: Unknown type name in an annotation
	ErrorUnknownTypeName = "E0202"

	// E0203: Trait reference where persisted storage types are required
	ErrorTraitReferenceNotAllowed = "E0203"

	// E0204: Public function whose body is not a response
	ErrorPublicFunctionMustReturnResponse = "E0204"

	// E0205: Type too large for analysis
	ErrorValueTooLarge = "E0205"

	// E0300: Variable not bound in the current typing context
	ErrorUndefinedVariable = "E0300"

	// E0301: Function neither native nor defined in the contract
	ErrorUndefinedFunction = "E0301"

	// E0302: Name already used within a namespace
	ErrorNameAlreadyUsed = "E0302"

	// E0303: Contract not present in the analysis database
	ErrorNoSuchContract = "E0303"

	// E0400: Implemented or referenced trait cannot be resolved
	ErrorTraitReferenceUnknown = "E0400"

	// E0401: Realized function does not satisfy a trait method
	ErrorBadTraitImplementation = "E0401"

	// E0402: Definition or trait reference graph contains a cycle
	ErrorCircularReference = "E0402"

	// E0500: Fungible token not declared in the contract
	ErrorNoSuchFT = "E0500"

	// E0501: Non-fungible token not declared in the contract
	ErrorNoSuchNFT = "E0501"

	// E0502: Asset name argument is not a literal atom
	ErrorBadTokenName = "E0502"

	// E0600: Static-analysis cost budget exceeded
	ErrorCostBudgetExceeded = "E0600"
)

// GetErrorDescription returns a human-readable description of the error code.
func GetErrorDescription(code string) string {
	switch code {
	case ErrorSyntax:
		return "Source could not be parsed"
	case ErrorTooManyExpressions:
		return "Contract contains too many expressions to analyze"
	case ErrorTypeMismatch:
		return "Expression type does not match expected type"
	case ErrorIncorrectArgumentCount:
		return "Wrong number of arguments"
	case ErrorUnknownTypeName:
		return "Type annotation names an unknown type"
	case ErrorTraitReferenceNotAllowed:
		return "Trait references cannot appear in persisted storage types"
	case ErrorPublicFunctionMustReturnResponse:
		return "Public functions must return a response type"
	case ErrorValueTooLarge:
		return "Type exceeds the maximum analyzable size"
	case ErrorUndefinedVariable:
		return "Variable is used but not bound in the current context"
	case ErrorUndefinedFunction:
		return "Function is neither a native nor defined in the contract"
	case ErrorNameAlreadyUsed:
		return "Name is already used in this namespace"
	case ErrorNoSuchContract:
		return "Contract has not been analyzed"
	case ErrorTraitReferenceUnknown:
		return "Trait reference cannot be resolved to a definition"
	case ErrorBadTraitImplementation:
		return "Function does not satisfy the trait method it implements"
	case ErrorCircularReference:
		return "Definition or trait reference graph contains a cycle"
	case ErrorNoSuchFT:
		return "Fungible token is not declared in this contract"
	case ErrorNoSuchNFT:
		return "Non-fungible token is not declared in this contract"
	case ErrorBadTokenName:
		return "Asset name must be a literal token name"
	case ErrorCostBudgetExceeded:
		return "Static-analysis cost budget exceeded"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code.
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0200" && code < "E0300":
		return "Type System"
	case code >= "E0300" && code < "E0400":
		return "Name Resolution"
	case code >= "E0400" && code < "E0500":
		return "Traits"
	case code >= "E0500" && code < "E0600":
		return "Assets"
	case code >= "E0600" && code < "E0700":
		return "Resources"
	default:
		return "Unknown"
	}
}
